package decode

import (
	"strings"
	"testing"

	"github.com/midbel/graph"
)

const sample = `# time	value	error
0	1.5	0.1
10	2.5	0.2

garbage line
20	x	0.3
30	4.5	0.4
40
`

func checkPoints(t *testing.T, got []graph.Point, want []graph.Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("point count mismatch! want %d, got %d (%v)", len(want), len(got), got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("point %d: want %v, got %v", i, want[i], got[i])
		}
	}
}

func TestPoints(t *testing.T) {
	got, err := Points(strings.NewReader(sample), 0, 1, Tab)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	checkPoints(t, got, []graph.Point{
		graph.NewPoint(0, 1.5),
		graph.NewPoint(10, 2.5),
		graph.NewPoint(30, 4.5),
	})
}

func TestPointsColumns(t *testing.T) {
	got, err := Points(strings.NewReader(sample), 0, 2, Tab)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	checkPoints(t, got, []graph.Point{
		graph.NewPoint(0, 0.1),
		graph.NewPoint(10, 0.2),
		graph.NewPoint(20, 0.3),
		graph.NewPoint(30, 0.4),
	})
}

func TestPointsDelimiters(t *testing.T) {
	data := []struct {
		Name  string
		Input string
		Delim rune
	}{
		{Name: "comma", Input: "1,2\n3,4", Delim: Comma},
		{Name: "semicolon", Input: "1;2\n3;4", Delim: Semicolon},
		{Name: "space", Input: "1   2\n3 4", Delim: Space},
	}
	want := []graph.Point{
		graph.NewPoint(1, 2),
		graph.NewPoint(3, 4),
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			got, err := Points(strings.NewReader(d.Input), 0, 1, d.Delim)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			checkPoints(t, got, want)
		})
	}
}

func TestPointsString(t *testing.T) {
	got, err := PointsString(`1\t2\n3\t4`, 0, 1, Tab)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	checkPoints(t, got, []graph.Point{
		graph.NewPoint(1, 2),
		graph.NewPoint(3, 4),
	})
}

func TestDelimiter(t *testing.T) {
	data := []struct {
		Name string
		Want rune
	}{
		{Name: "tab", Want: Tab},
		{Name: "comma", Want: Comma},
		{Name: "space", Want: Space},
		{Name: "semicolon", Want: Semicolon},
		{Name: "whatever", Want: Tab},
	}
	for _, d := range data {
		if got := Delimiter(d.Name); got != d.Want {
			t.Errorf("delimiter %q: want %q, got %q", d.Name, d.Want, got)
		}
	}
}

func TestSeries(t *testing.T) {
	s, err := Series(strings.NewReader(sample), "latency", 0, 1, Tab)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if s.Name != "latency" {
		t.Errorf("series name: want %q, got %q", "latency", s.Name)
	}
	if len(s.Points) != 3 {
		t.Errorf("series points: want 3, got %d", len(s.Points))
	}
}
