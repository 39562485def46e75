// Package graph renders a declaratively described 2-D chart into a
// tree of SVG drawing primitives: axes, tick marks, tick labels, frame,
// title and series markers. The graph model is built once, stays
// immutable, and each render is a pure read of it.
package graph

import (
	"github.com/midbel/slices"
)

// Point is one data coordinate pair.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Series is an ordered list of points. The list may be empty and the x
// values carry no ordering constraint.
type Series struct {
	Name   string
	Points []Point
}

// Extent returns the smallest intervals covering the series, for hosts
// that fit axes to the data. The bool is false for an empty series.
func (s Series) Extent() (Interval, Interval, bool) {
	if len(s.Points) == 0 {
		return Interval{}, Interval{}, false
	}
	var (
		fst = slices.Fst(s.Points)
		xiv = Interval{Min: fst.X, Max: fst.X}
		yiv = Interval{Min: fst.Y, Max: fst.Y}
	)
	for _, pt := range slices.Rest(s.Points) {
		xiv = xiv.extend(pt.X)
		yiv = yiv.extend(pt.Y)
	}
	return xiv, yiv, true
}

// Shape selects the marker drawn at each plotted point.
type Shape string

const (
	ShapeCircle      Shape = "circle"
	ShapeSquare      Shape = "square"
	ShapeDiamond     Shape = "diamond"
	ShapeTriangle    Shape = "triangle"
	ShapeInvTriangle Shape = "inverted_triangle"
	ShapeNone        Shape = "none"
)

// Plot ties a series to the marker shape used to draw it.
type Plot struct {
	Series Series
	Shape  Shape
}

// Frame toggles the four plot-area border edges independently.
type Frame struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
}

func (f Frame) None() bool {
	return !f.Top && !f.Bottom && !f.Left && !f.Right
}

// Graph is the immutable aggregate handed to the render pipeline.
type Graph struct {
	Title string
	X     Axis
	Y     Axis
	Plots []Plot
}
