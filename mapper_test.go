package graph

import (
	"testing"
)

func TestAreaMapping(t *testing.T) {
	area := Area{Width: 400, Height: 300}
	if got := area.MapX(0.25); !nearly(got, 100) {
		t.Errorf("MapX(0.25): want 100, got %g", got)
	}
	if got := area.MapY(0); !nearly(got, 300) {
		t.Errorf("MapY(0): want bottom edge 300, got %g", got)
	}
	if got := area.MapY(1); !nearly(got, 0) {
		t.Errorf("MapY(1): want top edge 0, got %g", got)
	}
}

func TestMapperGeometry(t *testing.T) {
	var (
		area   = Area{Width: 400, Height: 300}
		offset = 5.0
	)
	data := []struct {
		Placement Placement
		Base      float64
		Opposite  float64
		Further   float64 // Outward(Base, 3)
		Anchor    string
		Shift     float64 // baseline shift, in em
	}{
		{Placement: Bottom, Base: 305, Opposite: 0, Further: 308, Anchor: "middle", Shift: 0.8},
		{Placement: Top, Base: -5, Opposite: 300, Further: -8, Anchor: "middle", Shift: 0},
		{Placement: Left, Base: -5, Opposite: 400, Further: -8, Anchor: "end", Shift: 0.35},
		{Placement: Right, Base: 405, Opposite: 0, Further: 408, Anchor: "start", Shift: 0.35},
	}
	for _, d := range data {
		t.Run(d.Placement.String(), func(t *testing.T) {
			a := Axis{Placement: d.Placement, Offset: offset}
			m := mapperFor(a, area)
			if got := m.Base(); !nearly(got, d.Base) {
				t.Errorf("base: want %g, got %g", d.Base, got)
			}
			if got := m.Opposite(); !nearly(got, d.Opposite) {
				t.Errorf("opposite: want %g, got %g", d.Opposite, got)
			}
			if got := m.Outward(m.Base(), 3); !nearly(got, d.Further) {
				t.Errorf("outward: want %g, got %g", d.Further, got)
			}
			if got := m.Anchor(); got != d.Anchor {
				t.Errorf("anchor: want %q, got %q", d.Anchor, got)
			}
			if got := m.BaselineShift(); !nearly(got, d.Shift) {
				t.Errorf("baseline shift: want %gem, got %gem", d.Shift, got)
			}
		})
	}
}

func TestMapperCombine(t *testing.T) {
	area := Area{Width: 400, Height: 300}

	pos := mapperFor(Axis{Placement: Bottom}, area).Combine(120, 305)
	if pos.X != 120 || pos.Y != 305 {
		t.Errorf("horizontal combine: want (120, 305), got (%g, %g)", pos.X, pos.Y)
	}
	pos = mapperFor(Axis{Placement: Left}, area).Combine(120, -8)
	if pos.X != -8 || pos.Y != 120 {
		t.Errorf("vertical combine: want (-8, 120), got (%g, %g)", pos.X, pos.Y)
	}
}

// Mapping a value through the axis then the mapper must be monotonic
// and point in the direction of the placement's own edge.
func TestTransformParallelRoundTrip(t *testing.T) {
	var (
		area  = Area{Width: 400, Height: 300}
		iv, _ = NewInterval(0, 100)
	)
	for _, p := range []Placement{Bottom, Top, Left, Right} {
		t.Run(p.String(), func(t *testing.T) {
			a, err := NewAxis(iv, LinearScale(), p)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			var (
				m    = mapperFor(a, area)
				prev float64
			)
			for i, v := range []float64{0, 12.5, 50, 99, 100} {
				n, err := a.Transform(v)
				if err != nil {
					t.Fatalf("Transform(%g): unexpected error: %s", v, err)
				}
				pos := m.Parallel(n)
				if i > 0 {
					up := pos > prev
					if p.Vertical() {
						up = pos < prev
					}
					if !up {
						t.Fatalf("%s: value %g mapped to %g, not past %g", p, v, pos, prev)
					}
				}
				prev = pos
			}
		})
	}
}
