package graph

import (
	"errors"
	"fmt"
)

var ErrInterval = errors.New("invalid interval")

// Interval is a closed range on the number line. Data values are
// normalized against it before being mapped into the plot area.
type Interval struct {
	Min float64
	Max float64
}

func NewInterval(min, max float64) (Interval, error) {
	if min > max {
		return Interval{}, fmt.Errorf("%w: min %g greater than max %g", ErrInterval, min, max)
	}
	iv := Interval{
		Min: min,
		Max: max,
	}
	return iv, nil
}

func (i Interval) Len() float64 {
	return i.Max - i.Min
}

func (i Interval) Contains(v float64) bool {
	return v >= i.Min && v <= i.Max
}

func (i Interval) extend(v float64) Interval {
	if v < i.Min {
		i.Min = v
	}
	if v > i.Max {
		i.Max = v
	}
	return i
}
