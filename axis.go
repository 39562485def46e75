package graph

// Placement names the plot-area edge an axis is attached to.
type Placement int

const (
	Bottom Placement = iota
	Top
	Left
	Right
)

func (p Placement) Vertical() bool {
	return p == Left || p == Right
}

func (p Placement) String() string {
	switch p {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// TickLabels pairs the ticker giving label positions with the formatter
// giving their text. Labels stay off while either field is nil.
type TickLabels struct {
	Ticker    Ticker
	Formatter Formatter
}

func (t TickLabels) enabled() bool {
	return t.Ticker != nil && t.Formatter != nil
}

// Axis aggregates an interval, a scale and the visual toggles of one
// chart axis. Tickers and formatters are shared read-only strategies;
// the interval and scale are owned by value. An Axis is read-only for
// the duration of a render.
type Axis struct {
	Label     string
	Interval  Interval
	Scale     Scale
	Placement Placement
	Offset    float64
	Visible   bool

	MainTicks  Ticker
	SubTicks   Ticker
	TickLabels TickLabels
	MirrorMain bool
	MirrorSub  bool
}

// NewAxis validates the interval against the scale so that an invalid
// range, such as a log axis with non positive bounds, fails the chart
// build before anything is drawn.
func NewAxis(iv Interval, scale Scale, placement Placement) (Axis, error) {
	if scale == nil {
		scale = LinearScale()
	}
	if _, err := scale.Normalize(iv.Min, iv); err != nil {
		return Axis{}, err
	}
	if _, err := scale.Normalize(iv.Max, iv); err != nil {
		return Axis{}, err
	}
	a := Axis{
		Interval:  iv,
		Scale:     scale,
		Placement: placement,
		Visible:   true,
	}
	return a, nil
}

func (a Axis) Transform(value float64) (float64, error) {
	return a.Scale.Normalize(value, a.Interval)
}
