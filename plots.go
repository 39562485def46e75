package graph

import (
	"github.com/midbel/svg"
)

// PlotsRenderer draws one marker per in-range series point. Points
// outside either axis interval are excluded, not clipped. When a
// palette is set the marker stroke cycles through it per series.
type PlotsRenderer struct {
	Style   MarkerStyle
	Palette Palette
}

func (r PlotsRenderer) Render(g Graph, area Area) svg.Element {
	grp := getGroup("plots")
	for i, p := range g.Plots {
		style := r.Style
		if len(r.Palette) > 0 {
			style.Stroke = r.Palette.Color(i)
		}
		draw := Marker(p.Shape, style)
		if draw == nil {
			continue
		}
		sub := getGroup("serie")
		sub.Id = p.Series.Name
		for _, pt := range p.Series.Points {
			pos, ok := plotPosition(g, area, pt)
			if !ok {
				continue
			}
			sub.Append(draw(pos))
		}
		grp.Append(sub.AsElement())
	}
	return grp.AsElement()
}

// plotPosition maps a data point into plot-area coordinates. The false
// return covers both out-of-range values and points a scale cannot
// normalize; either way the point is silently dropped.
func plotPosition(g Graph, area Area, pt Point) (svg.Pos, bool) {
	if !g.X.Interval.Contains(pt.X) || !g.Y.Interval.Contains(pt.Y) {
		return svg.Pos{}, false
	}
	nx, err := g.X.Transform(pt.X)
	if err != nil {
		return svg.Pos{}, false
	}
	ny, err := g.Y.Transform(pt.Y)
	if err != nil {
		return svg.Pos{}, false
	}
	return svg.NewPos(area.MapX(nx), area.MapY(ny)), true
}
