package graph

import (
	"math"
	"sort"
)

// Tick is a position on an axis in data units, not yet normalized.
type Tick struct {
	Value float64
}

// Ticker produces the ordered set of axis values that receive a visual
// mark. An empty result is a normal outcome and simply omits the marks.
type Ticker interface {
	Ticks(Interval) []Tick
}

type stepTicker struct {
	step   float64
	offset float64
}

// StepTicker emits the members of the arithmetic sequence offset+n*step
// that fall inside the interval.
func StepTicker(step, offset float64) Ticker {
	return stepTicker{
		step:   step,
		offset: offset,
	}
}

func (t stepTicker) Ticks(iv Interval) []Tick {
	// written this way round so a NaN step bails out too
	if !(t.step > 0) {
		return nil
	}
	var (
		all []Tick
		fst = math.Ceil((iv.Min - t.offset) / t.step)
		eps = t.step * 1e-9
	)
	for i := 0; ; i++ {
		// inverted test so a NaN offset or bound stops the walk
		v := t.offset + (fst+float64(i))*t.step
		if !(v <= iv.Max+eps) {
			break
		}
		all = append(all, Tick{Value: v})
	}
	return all
}

type logMajorTicker struct {
	base float64
}

// LogMajorTicker emits the powers of base inside the interval.
func LogMajorTicker(base float64) Ticker {
	if base <= 1 {
		base = 10
	}
	return logMajorTicker{
		base: base,
	}
}

func (t logMajorTicker) Ticks(iv Interval) []Tick {
	if iv.Min <= 0 {
		return nil
	}
	var (
		all []Tick
		fst = int(math.Ceil(logb(iv.Min, t.base)))
		lst = int(math.Floor(logb(iv.Max, t.base)))
	)
	for e := fst; e <= lst; e++ {
		all = append(all, Tick{Value: math.Pow(t.base, float64(e))})
	}
	return all
}

type logMinorTicker struct {
	base float64
}

// LogMinorTicker emits, for each decade covered by the interval, the
// multiples 2..base-1 of that decade. Decade powers themselves are left
// to LogMajorTicker.
func LogMinorTicker(base float64) Ticker {
	if base <= 1 {
		base = 10
	}
	return logMinorTicker{
		base: base,
	}
}

func (t logMinorTicker) Ticks(iv Interval) []Tick {
	if iv.Min <= 0 {
		return nil
	}
	var (
		all []Tick
		fst = int(math.Floor(logb(iv.Min, t.base)))
		lst = int(math.Floor(logb(iv.Max, t.base)))
	)
	for e := fst; e <= lst; e++ {
		decade := math.Pow(t.base, float64(e))
		for c := 2; float64(c) < t.base; c++ {
			v := decade * float64(c)
			if iv.Contains(v) {
				all = append(all, Tick{Value: v})
			}
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Value < all[j].Value
	})
	return all
}
