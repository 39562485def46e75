package graph

import (
	"github.com/midbel/svg"
)

const FontSize = 12.0

type StrokeStyle struct {
	Color   string
	Width   float64
	Opacity float64
}

func NewStrokeStyle(color string, width float64) StrokeStyle {
	return StrokeStyle{
		Color:   color,
		Width:   width,
		Opacity: 1,
	}
}

func (s StrokeStyle) stroke() svg.Stroke {
	sk := svg.NewStroke(s.Color, int(s.Width))
	if s.Opacity > 0 && s.Opacity < 1 {
		sk.Opacity = s.Opacity
	}
	return sk
}

type TextStyle struct {
	Size  float64
	Color string
}

func (s TextStyle) size() float64 {
	if s.Size <= 0 {
		return FontSize
	}
	return s.Size
}

func (s TextStyle) font() svg.Font {
	return svg.NewFont(s.size())
}

type MarkerStyle struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Size        float64
}

type TickStyle struct {
	Stroke StrokeStyle
	Length float64
}

// AxisStyle styles one axis. A nil Line skips the axis line itself
// while ticks and labels keep rendering.
type AxisStyle struct {
	Line      *StrokeStyle
	MainTick  TickStyle
	SubTick   TickStyle
	TickLabel TextStyle
	AxisLabel TextStyle

	TickLabelOffset float64
	AxisLabelOffset float64
}

type GraphStyle struct {
	Frame   StrokeStyle
	X       AxisStyle
	Y       AxisStyle
	Marker  MarkerStyle
	Title   TextStyle
	Palette Palette
}

func DefaultStyle() GraphStyle {
	var (
		line = NewStrokeStyle("black", 2)
		axis = AxisStyle{
			Line:            &line,
			MainTick:        TickStyle{Stroke: line, Length: 12},
			SubTick:         TickStyle{Stroke: line, Length: 8},
			TickLabel:       TextStyle{Size: FontSize, Color: "black"},
			AxisLabel:       TextStyle{Size: FontSize + 2, Color: "black"},
			TickLabelOffset: 8,
			AxisLabelOffset: 30,
		}
	)
	return GraphStyle{
		Frame: line,
		X:     axis,
		Y:     axis,
		Marker: MarkerStyle{
			Fill:        "white",
			Stroke:      "black",
			StrokeWidth: 1,
			Size:        10,
		},
		Title:   TextStyle{Size: FontSize + 2, Color: "black"},
		Palette: Category10,
	}
}
