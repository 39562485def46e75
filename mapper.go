package graph

import (
	"github.com/midbel/svg"
)

// Area is the plot-area rectangle into which normalized coordinates are
// mapped. Labels, ticks and titles live outside of it.
type Area struct {
	Width  float64
	Height float64
}

func (a Area) MapX(norm float64) float64 {
	return norm * a.Width
}

// MapY inverts the axis so that larger data values plot higher.
func (a Area) MapY(norm float64) float64 {
	return (1 - norm) * a.Height
}

// coordMapper converts a normalized axis value into plot-area
// coordinates for one placement. Keeping the per-placement geometry
// behind these few methods is what lets the tick, label and line
// generators be written once instead of four times.
//
// Parallel gives the coordinate along the axis direction. Base is the
// coordinate of the axis line itself, pushed outward by the axis
// offset, and Opposite the coordinate of the facing plot-area edge.
// Outward shifts a perpendicular coordinate further away from the plot
// interior; a negative delta points inward. Combine assembles the two
// coordinates into a point. Anchor and BaselineShift fix the text
// conventions that keep a tick label visually centered on its tick:
// the shift is a dy correction in em that moves the baseline so the
// glyph body, not the baseline, sits at the computed position.
type coordMapper interface {
	Parallel(float64) float64
	Base() float64
	Opposite() float64
	Outward(base, delta float64) float64
	Combine(parallel, perpendicular float64) svg.Pos
	Anchor() string
	BaselineShift() float64
}

func mapperFor(a Axis, area Area) coordMapper {
	switch a.Placement {
	case Top:
		return topMapper{area: area, offset: a.Offset}
	case Left:
		return leftMapper{area: area, offset: a.Offset}
	case Right:
		return rightMapper{area: area, offset: a.Offset}
	default:
		return bottomMapper{area: area, offset: a.Offset}
	}
}

type bottomMapper struct {
	area   Area
	offset float64
}

func (m bottomMapper) Parallel(n float64) float64 {
	return m.area.MapX(n)
}

func (m bottomMapper) Base() float64 {
	return m.area.Height + m.offset
}

func (m bottomMapper) Opposite() float64 {
	return 0
}

func (m bottomMapper) Outward(base, delta float64) float64 {
	return base + delta
}

func (m bottomMapper) Combine(par, perp float64) svg.Pos {
	return svg.NewPos(par, perp)
}

func (m bottomMapper) Anchor() string {
	return "middle"
}

func (m bottomMapper) BaselineShift() float64 {
	return 0.8
}

type topMapper struct {
	area   Area
	offset float64
}

func (m topMapper) Parallel(n float64) float64 {
	return m.area.MapX(n)
}

func (m topMapper) Base() float64 {
	return -m.offset
}

func (m topMapper) Opposite() float64 {
	return m.area.Height
}

func (m topMapper) Outward(base, delta float64) float64 {
	return base - delta
}

func (m topMapper) Combine(par, perp float64) svg.Pos {
	return svg.NewPos(par, perp)
}

func (m topMapper) Anchor() string {
	return "middle"
}

func (m topMapper) BaselineShift() float64 {
	return 0
}

type leftMapper struct {
	area   Area
	offset float64
}

func (m leftMapper) Parallel(n float64) float64 {
	return m.area.MapY(n)
}

func (m leftMapper) Base() float64 {
	return -m.offset
}

func (m leftMapper) Opposite() float64 {
	return m.area.Width
}

func (m leftMapper) Outward(base, delta float64) float64 {
	return base - delta
}

func (m leftMapper) Combine(par, perp float64) svg.Pos {
	return svg.NewPos(perp, par)
}

func (m leftMapper) Anchor() string {
	return "end"
}

func (m leftMapper) BaselineShift() float64 {
	return 0.35
}

type rightMapper struct {
	area   Area
	offset float64
}

func (m rightMapper) Parallel(n float64) float64 {
	return m.area.MapY(n)
}

func (m rightMapper) Base() float64 {
	return m.area.Width + m.offset
}

func (m rightMapper) Opposite() float64 {
	return 0
}

func (m rightMapper) Outward(base, delta float64) float64 {
	return base + delta
}

func (m rightMapper) Combine(par, perp float64) svg.Pos {
	return svg.NewPos(perp, par)
}

func (m rightMapper) Anchor() string {
	return "start"
}

func (m rightMapper) BaselineShift() float64 {
	return 0.35
}
