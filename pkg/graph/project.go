package graph

import (
	"math"

	"github.com/norasector/winding/pkg/geom"
	"gonum.org/v1/gonum/floats"
)

// Polyline is a sequence of screen points joined by straight segments.
type Polyline []geom.Point

type projectOptions struct {
	symmetricClamp bool
}

// ProjectOption tweaks Project1D.
type ProjectOption func(o *projectOptions)

// WithSymmetricClamp also clamps points above the top of the rectangle.
func WithSymmetricClamp() ProjectOption {
	return func(o *projectOptions) {
		o.symmetricClamp = true
	}
}

// Project1D fits values to the vertical extent of rect. Each value is divided
// by (max-min)/rect.H and measured up from the bottom edge; point i sits at
// rect.X + rect.W/len·i. A constant sequence is drawn flat along the bottom
// edge. Points are never placed below the bottom edge.
func Project1D(values []float64, rect geom.Rect, opts ...ProjectOption) Polyline {
	if len(values) == 0 {
		return nil
	}

	var o projectOptions
	for _, opt := range opts {
		opt(&o)
	}

	ymin, ymax := floats.Min(values), floats.Max(values)
	upp := (ymax - ymin) / rect.H

	bottom := rect.Bottom()
	dx := rect.W / float64(len(values))
	flat := upp == 0 || math.IsNaN(upp) || math.IsInf(upp, 0)

	ret := make(Polyline, len(values))
	for i, v := range values {
		y := bottom
		if !flat {
			y = bottom - v/upp
		}

		if y > bottom || math.IsNaN(y) {
			y = bottom
		}
		if o.symmetricClamp && y < rect.Y {
			y = rect.Y
		}

		ret[i] = geom.Point{X: rect.X + dx*float64(i), Y: y}
	}
	return ret
}

// ProjectCentered scales a winding around center so the largest raw sample
// maps to radius pixels, and returns the pixels-per-unit it used so other
// points (the centroid) can be placed on the same scale. samples are the
// unwound values that produced points. If the largest sample is not positive
// the scale is zero and every point collapses onto center.
func ProjectCentered(points []geom.Point, samples []float64, center geom.Point, radius float64) (Polyline, float64) {
	ppu := PixelsPerUnit(samples, radius)

	ret := make(Polyline, len(points))
	for i, p := range points {
		ret[i] = center.Add(p.Scale(ppu))
	}
	return ret, ppu
}

// PixelsPerUnit is radius divided by the largest sample, or zero when that is
// not a usable scale.
func PixelsPerUnit(samples []float64, radius float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	maxY := floats.Max(samples)
	if !(maxY > 0) || math.IsInf(maxY, 0) {
		return 0
	}

	ppu := radius / maxY
	if math.IsNaN(ppu) || math.IsInf(ppu, 0) {
		return 0
	}
	return ppu
}
