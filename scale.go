package graph

import (
	"errors"
	"fmt"
	"math"
)

var ErrDomain = errors.New("value outside scale domain")

// Scale normalizes a value within an interval to the [0, 1] range.
// Out of range values normalize outside [0, 1]: no clamping is done
// here, callers filter with Interval.Contains where exclusion is wanted.
type Scale interface {
	Normalize(float64, Interval) (float64, error)
}

type linearScale struct{}

func LinearScale() Scale {
	return linearScale{}
}

func (linearScale) Normalize(value float64, iv Interval) (float64, error) {
	if iv.Len() == 0 {
		return 0, nil
	}
	return (value - iv.Min) / iv.Len(), nil
}

type logScale struct {
	base float64
}

func LogScale(base float64) Scale {
	if base <= 1 {
		base = 10
	}
	return logScale{
		base: base,
	}
}

func (s logScale) Normalize(value float64, iv Interval) (float64, error) {
	if value <= 0 || iv.Min <= 0 || iv.Max <= 0 {
		return 0, fmt.Errorf("%w: log scale needs positive values (%g in [%g, %g])", ErrDomain, value, iv.Min, iv.Max)
	}
	var (
		min = logb(iv.Min, s.base)
		max = logb(iv.Max, s.base)
	)
	if max-min == 0 {
		return 0, nil
	}
	return (logb(value, s.base) - min) / (max - min), nil
}

// logb snaps results that land a hair off an integer: the log of an
// exact power of the base must yield that exponent or tick generation
// drops boundary decades.
func logb(v, base float64) float64 {
	x := math.Log(v) / math.Log(base)
	if r := math.Round(x); math.Abs(x-r) < 1e-9 {
		return r
	}
	return x
}
