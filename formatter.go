package graph

import (
	"math"
	"strconv"
)

// Formatter renders a tick value to its display text.
type Formatter interface {
	Format(float64) string
}

type basicFormatter struct {
	precision int
}

func BasicFormatter(precision int) Formatter {
	if precision < 0 {
		precision = 0
	}
	return basicFormatter{
		precision: precision,
	}
}

func (f basicFormatter) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', f.precision, 64)
}

type integerFormatter struct{}

func IntegerFormatter() Formatter {
	return integerFormatter{}
}

func (integerFormatter) Format(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}

type scientificFormatter struct {
	precision int
}

// ScientificFormatter renders values as mantissa×10^exponent. With
// precision 0 a mantissa rounding to 1 drops the explicit factor, so a
// plain decade renders as 10^e.
func ScientificFormatter(precision int) Formatter {
	if precision < 0 {
		precision = 0
	}
	return scientificFormatter{
		precision: precision,
	}
}

func (f scientificFormatter) Format(v float64) string {
	if v == 0 {
		return "0"
	}
	var (
		exp      = int(math.Floor(math.Log10(math.Abs(v))))
		mantissa = v / math.Pow(10, float64(exp))
		power    = "10^" + strconv.Itoa(exp)
	)
	if f.precision == 0 && math.Round(mantissa) == 1 {
		return power
	}
	return strconv.FormatFloat(mantissa, 'f', f.precision, 64) + "×" + power
}
