package graph

import (
	"image/color"

	"github.com/norasector/winding/pkg/geom"
	"github.com/norasector/winding/pkg/render"
)

const DefaultThickness = 2.0

// Style describes how a polyline is stroked. Head, when set, colours the
// zero-length segment drawn at the first point.
type Style struct {
	Thickness float64
	Color     color.Color
	Head      color.Color
}

func NewStyle(c color.Color) Style {
	return Style{Thickness: DefaultThickness, Color: c}
}

// Draw strokes each consecutive pair of points. The first point is drawn as a
// segment from itself to itself so a single point still shows up.
func Draw(r render.Renderer, line Polyline, style Style) {
	if len(line) == 0 {
		return
	}

	head := style.Head
	if head == nil {
		head = style.Color
	}

	prev := line[0]
	r.DrawLine(prev, prev, style.Thickness, head)
	for _, p := range line[1:] {
		r.DrawLine(prev, p, style.Thickness, style.Color)
		prev = p
	}
}

// Plot1D projects values into rect and draws them.
func Plot1D(r render.Renderer, values []float64, rect geom.Rect, style Style, opts ...ProjectOption) Polyline {
	line := Project1D(values, rect, opts...)
	Draw(r, line, style)
	return line
}

// PlotCentered projects a winding around center, draws it and returns the
// pixels-per-unit used.
func PlotCentered(r render.Renderer, points []geom.Point, samples []float64, center geom.Point, radius float64, style Style) float64 {
	line, ppu := ProjectCentered(points, samples, center, radius)
	Draw(r, line, style)
	return ppu
}
