// Package viz serves the visualiser over HTTP: the latest rendered frame plus
// static gonum/plot charts of the precomputed data.
package viz

import (
	"bytes"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 6 * vg.Inch
)

type PlotOptions func(p *plot.Plot)

// WithYRange pins the vertical axis.
func WithYRange(min, max float64) PlotOptions {
	return func(p *plot.Plot) {
		p.Y.Min = min
		p.Y.Max = max
	}
}

func plotWithDefaults() *plot.Plot {

	p := plot.New()
	p.BackgroundColor = color.Black
	p.Title.TextStyle.Color = color.White
	p.Y.Label.TextStyle.Color = color.White
	p.Y.Color = color.White
	p.X.Label.TextStyle.Color = color.White
	p.X.Color = color.White
	p.Legend.TextStyle.Color = color.White
	p.X.Tick.Color = color.White
	p.Y.Tick.Color = color.White
	p.X.Tick.Label.Color = color.White
	p.Y.Tick.Label.Color = color.White

	return p
}

func encodePNG(name string, p *plot.Plot) (*ImageContainer, error) {
	w, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, err
	}

	var imageData bytes.Buffer
	if _, err := w.WriteTo(&imageData); err != nil {
		return nil, err
	}
	return &ImageContainer{name: name, data: imageData.Bytes()}, nil
}
