package graph

import (
	"github.com/midbel/svg"
)

// AxisRenderer draws one axis: line, main ticks, sub ticks, tick labels
// and axis label, each step optional. It renders the x axis of the
// graph, or the y axis when Y is set. All placement geometry goes
// through the coordinate mapper so the drawing code here is the same
// for every edge.
type AxisRenderer struct {
	Y     bool
	Style AxisStyle
}

func (r AxisRenderer) Render(g Graph, area Area) svg.Element {
	a := g.X
	if r.Y {
		a = g.Y
	}
	if !a.Visible {
		return nil
	}
	var (
		m   = mapperFor(a, area)
		grp = getGroup("axis", a.Placement.String())
	)
	if r.Style.Line != nil {
		grp.Append(axisLine(m, *r.Style.Line))
	}
	if a.MainTicks != nil {
		grp.Append(tickLines(a, m, a.MainTicks, r.Style.MainTick, false))
		if a.MirrorMain {
			grp.Append(tickLines(a, m, a.MainTicks, r.Style.MainTick, true))
		}
	}
	if a.SubTicks != nil {
		grp.Append(tickLines(a, m, a.SubTicks, r.Style.SubTick, false))
		if a.MirrorSub {
			grp.Append(tickLines(a, m, a.SubTicks, r.Style.SubTick, true))
		}
	}
	if a.TickLabels.enabled() {
		grp.Append(tickLabels(a, m, r.Style))
	}
	if a.Label != "" {
		grp.Append(axisLabel(a, m, r.Style))
	}
	return grp.AsElement()
}

type tickPos struct {
	value float64
	pos   float64
}

// tickPositions pairs each raw tick value, kept for label text, with
// its mapped coordinate along the axis.
func tickPositions(a Axis, m coordMapper, t Ticker) []tickPos {
	var all []tickPos
	for _, tk := range t.Ticks(a.Interval) {
		n, err := a.Transform(tk.Value)
		if err != nil {
			continue
		}
		all = append(all, tickPos{value: tk.Value, pos: m.Parallel(n)})
	}
	return all
}

func axisLine(m coordMapper, style StrokeStyle) svg.Element {
	var (
		base = m.Base()
		fst  = m.Combine(m.Parallel(0), base)
		lst  = m.Combine(m.Parallel(1), base)
	)
	return getLine(fst.X, fst.Y, lst.X, lst.Y, style.stroke())
}

// tickLines draws short segments pointing into the plot interior. A
// mirrored set starts from the opposite plot-area edge instead, so one
// logical axis can mark both frame edges.
func tickLines(a Axis, m coordMapper, t Ticker, style TickStyle, mirror bool) svg.Element {
	var (
		grp   = getGroup("ticks")
		sk    = style.Stroke.stroke()
		start = m.Base()
		end   = m.Outward(start, -style.Length)
	)
	if mirror {
		start = m.Opposite()
		end = m.Outward(start, style.Length)
	}
	for _, tp := range tickPositions(a, m, t) {
		var (
			fst = m.Combine(tp.pos, start)
			lst = m.Combine(tp.pos, end)
		)
		grp.Append(getLine(fst.X, fst.Y, lst.X, lst.Y, sk))
	}
	return grp.AsElement()
}

// tickLabels places formatted tick text on the axis side only, using
// the raw value for display and the mapped position for placement.
func tickLabels(a Axis, m coordMapper, style AxisStyle) svg.Element {
	var (
		grp  = getGroup("labels")
		perp = m.Outward(m.Base(), style.TickLabelOffset)
	)
	for _, tp := range tickPositions(a, m, a.TickLabels.Ticker) {
		txt := getText(a.TickLabels.Formatter.Format(tp.value), m.Combine(tp.pos, perp), style.TickLabel, m.Anchor())
		txt.Shift.Y = m.BaselineShift() * style.TickLabel.size()
		grp.Append(txt.AsElement())
	}
	return grp.AsElement()
}

// axisLabel centers the label along the axis, past the tick labels. A
// vertical axis label is rotated to read bottom to top.
func axisLabel(a Axis, m coordMapper, style AxisStyle) svg.Element {
	var (
		perp = m.Outward(m.Base(), style.AxisLabelOffset)
		pos  = m.Combine(m.Parallel(0.5), perp)
		txt  = getText(a.Label, pos, style.AxisLabel, "middle")
	)
	if a.Placement.Vertical() {
		txt.Transform.RA = -90
		txt.Transform.RX = pos.X
		txt.Transform.RY = pos.Y
	} else {
		txt.Shift.Y = m.BaselineShift() * style.AxisLabel.size()
	}
	return txt.AsElement()
}
