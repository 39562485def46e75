package graph

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

// Renderer draws one independent part of a graph (frame, title, axis,
// plots) into the shared plot-area context. A nil element means the
// part has nothing to draw.
type Renderer interface {
	Render(Graph, Area) svg.Element
}

// Scene is the append-only destination for rendered primitives. It is
// owned by the host document; the core never inspects or mutates prior
// host state through it.
type Scene interface {
	Append(svg.Element)
}

// Draw runs the given parts in order against an immutable graph and
// appends whatever they produce to the scene.
func Draw(dst Scene, g Graph, area Area, parts ...Renderer) {
	for _, p := range parts {
		if el := p.Render(g, area); el != nil {
			dst.Append(el)
		}
	}
}

// RenderParts composes the parts into a fresh group for hosts that want
// a single element to place.
func RenderParts(g Graph, area Area, parts ...Renderer) svg.Element {
	grp := getGroup("graph")
	Draw(&grp, g, area, parts...)
	return grp.AsElement()
}

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type TitlePosition int

const (
	TitleTop TitlePosition = iota
	TitleBottom
)

// Chart assembles the full document: outer dimensions, padding around
// the plot area, styling and the part pipeline in its natural order so
// axes draw over the frame and markers over axes.
type Chart struct {
	Width  float64
	Height float64

	Padding

	Style       GraphStyle
	Frame       Frame
	TitlePos    TitlePosition
	TitleOffset float64
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

func (c Chart) Render(w io.Writer, g Graph) {
	var (
		el   = svg.NewSVG(svg.WithDimension(c.Width, c.Height))
		grp  = svg.NewGroup(svg.WithTranslate(c.Padding.Left, c.Padding.Top))
		area = Area{Width: c.DrawingWidth(), Height: c.DrawingHeight()}
	)
	Draw(&grp, g, area, c.parts()...)
	el.Append(grp.AsElement())

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

func (c Chart) parts() []Renderer {
	offset := c.TitleOffset
	if offset == 0 {
		offset = FontSize * 2
	}
	return []Renderer{
		FrameRenderer{Frame: c.Frame, Stroke: c.Style.Frame},
		TitleRenderer{Position: c.TitlePos, Offset: offset, Text: c.Style.Title},
		AxisRenderer{Style: c.Style.X},
		AxisRenderer{Y: true, Style: c.Style.Y},
		PlotsRenderer{Style: c.Style.Marker, Palette: c.Style.Palette},
	}
}

// FrameRenderer draws up to four independent edges around the plot
// area. Each edge is extended by half the stroke width so corners meet
// square instead of leaving a notch.
type FrameRenderer struct {
	Frame  Frame
	Stroke StrokeStyle
}

func (r FrameRenderer) Render(_ Graph, area Area) svg.Element {
	if r.Frame.None() {
		return nil
	}
	var (
		grp  = getGroup("frame")
		sk   = r.Stroke.stroke()
		half = r.Stroke.Width / 2
	)
	if r.Frame.Top {
		grp.Append(getLine(-half, 0, area.Width+half, 0, sk))
	}
	if r.Frame.Bottom {
		grp.Append(getLine(-half, area.Height, area.Width+half, area.Height, sk))
	}
	if r.Frame.Left {
		grp.Append(getLine(0, -half, 0, area.Height+half, sk))
	}
	if r.Frame.Right {
		grp.Append(getLine(area.Width, -half, area.Width, area.Height+half, sk))
	}
	return grp.AsElement()
}

// TitleRenderer centers the graph title above or below the plot area.
type TitleRenderer struct {
	Position TitlePosition
	Offset   float64
	Text     TextStyle
}

func (r TitleRenderer) Render(g Graph, area Area) svg.Element {
	if g.Title == "" {
		return nil
	}
	var (
		x = area.Width / 2
		y = -r.Offset
	)
	if r.Position == TitleBottom {
		y = area.Height + r.Offset
	}
	txt := getText(g.Title, svg.NewPos(x, y), r.Text, "middle")
	if r.Position == TitleBottom {
		txt.Shift.Y = 0.8 * r.Text.size()
	}
	grp := getGroup("title")
	grp.Append(txt.AsElement())
	return grp.AsElement()
}

func getGroup(class ...string) svg.Group {
	var g svg.Group
	g.Class = class
	return g
}

func getLine(x1, y1, x2, y2 float64, stroke svg.Stroke) svg.Element {
	li := svg.NewLine(svg.NewPos(x1, y1), svg.NewPos(x2, y2))
	li.Stroke = stroke
	return li.AsElement()
}

func getText(str string, pos svg.Pos, style TextStyle, anchor string) svg.Text {
	txt := svg.NewText(str)
	txt.Pos = pos
	txt.Font = style.font()
	txt.Anchor = anchor
	if style.Color != "" {
		txt.Fill = svg.NewFill(style.Color)
	}
	return txt
}
