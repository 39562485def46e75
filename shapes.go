package graph

import (
	"github.com/midbel/svg"
)

// MarkerFunc draws one marker centered at the given position.
type MarkerFunc func(svg.Pos) svg.Element

// Marker returns the drawing function for a shape, or nil for
// ShapeNone and unrecognized shapes.
func Marker(shape Shape, style MarkerStyle) MarkerFunc {
	switch shape {
	case ShapeCircle:
		return getCircle(style)
	case ShapeSquare:
		return getSquare(style)
	case ShapeDiamond:
		return getDiamond(style)
	case ShapeTriangle:
		return getTriangle(style, false)
	case ShapeInvTriangle:
		return getTriangle(style, true)
	default:
		return nil
	}
}

func getCircle(style MarkerStyle) MarkerFunc {
	return func(pos svg.Pos) svg.Element {
		var el svg.Circle
		el.Pos = pos
		el.Radius = style.Size / 2
		el.Fill = svg.NewFill(style.Fill)
		el.Stroke = svg.NewStroke(style.Stroke, int(style.StrokeWidth))
		return el.AsElement()
	}
}

func getSquare(style MarkerStyle) MarkerFunc {
	return func(pos svg.Pos) svg.Element {
		half := style.Size / 2
		pos.X -= half
		pos.Y -= half

		var el svg.Rect
		el.Pos = pos
		el.Dim = svg.NewDim(style.Size, style.Size)
		el.Fill = svg.NewFill(style.Fill)
		el.Stroke = svg.NewStroke(style.Stroke, int(style.StrokeWidth))
		return el.AsElement()
	}
}

func getDiamond(style MarkerStyle) MarkerFunc {
	return func(pos svg.Pos) svg.Element {
		half := style.Size / 2
		pos.X -= half
		pos.Y -= half

		var el svg.Rect
		el.Pos = pos
		el.Dim = svg.NewDim(style.Size, style.Size)
		el.Fill = svg.NewFill(style.Fill)
		el.Stroke = svg.NewStroke(style.Stroke, int(style.StrokeWidth))
		el.Transform.RA = 45
		el.Transform.RX = pos.X + half
		el.Transform.RY = pos.Y + half
		return el.AsElement()
	}
}

// equilateral height over the half marker size
const triangleRatio = 0.866

func getTriangle(style MarkerStyle, inverted bool) MarkerFunc {
	return func(pos svg.Pos) svg.Element {
		var (
			half = style.Size / 2
			high = style.Size * triangleRatio / 2
			tip  = svg.NewPos(pos.X, pos.Y-half)
			fst  = svg.NewPos(pos.X-half, pos.Y+high)
			lst  = svg.NewPos(pos.X+half, pos.Y+high)
		)
		if inverted {
			tip.Y = pos.Y + half
			fst.Y = pos.Y - high
			lst.Y = pos.Y - high
		}
		var el svg.Path
		el.Stroke = svg.NewStroke(style.Stroke, int(style.StrokeWidth))
		el.Fill = svg.NewFill(style.Fill)
		el.AbsMoveTo(tip)
		el.AbsLineTo(fst)
		el.AbsLineTo(lst)
		el.ClosePath()
		return el.AsElement()
	}
}
