package graph

import (
	"errors"
	"testing"
)

func TestNewInterval(t *testing.T) {
	iv, err := NewInterval(-5, 25)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if iv.Len() != 30 {
		t.Errorf("length mismatch! want 30, got %g", iv.Len())
	}

	_, err = NewInterval(10, 0)
	if !errors.Is(err, ErrInterval) {
		t.Errorf("want ErrInterval for reversed bounds, got %v", err)
	}

	if _, err = NewInterval(5, 5); err != nil {
		t.Errorf("degenerate interval should build, got %s", err)
	}
}

func TestIntervalContains(t *testing.T) {
	iv, _ := NewInterval(0, 100)
	data := []struct {
		Value float64
		Want  bool
	}{
		{Value: 0, Want: true},
		{Value: 100, Want: true},
		{Value: 50, Want: true},
		{Value: -0.001, Want: false},
		{Value: 100.001, Want: false},
	}
	for _, d := range data {
		if got := iv.Contains(d.Value); got != d.Want {
			t.Errorf("Contains(%g): want %t, got %t", d.Value, d.Want, got)
		}
	}
}
