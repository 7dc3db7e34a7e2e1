package winding

import (
	"fmt"
	"math"

	"github.com/norasector/winding/pkg/geom"
	"gonum.org/v1/gonum/stat"
)

const tau = 2 * math.Pi

// Wind rotates each of n samples of f by 2π·frequency·t and scales it by the
// sample value. Any frequency is accepted, including zero and negatives.
//
// Sample i sits at t = i·step: only the width of d sets the spacing and the
// winding always starts at t = 0. For a domain that does not start at zero
// the wound values therefore differ from Sample(f, d, n).
func Wind(f Func, d Domain, frequency float64, n int) []geom.Point {
	if n <= 0 {
		panic(fmt.Sprintf("winding: sample count must be positive, got %d", n))
	}

	step := d.Step(n)
	ret := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) * step
		v := f(t)
		sin, cos := math.Sincos(tau * frequency * t)
		ret[i] = geom.Point{X: cos * v, Y: -sin * v}
	}
	return ret
}

// Centroid returns the arithmetic mean of the winding's points.
func Centroid(points []geom.Point) (geom.Point, error) {
	if len(points) == 0 {
		return geom.Point{}, ErrEmptyWinding
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return geom.Point{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}, nil
}

// CentroidAt winds f at frequency and returns the centroid.
func CentroidAt(f Func, d Domain, frequency float64, n int) geom.Point {
	// n > 0 is enforced by Wind, so the winding is never empty.
	c, _ := Centroid(Wind(f, d, frequency, n))
	return c
}
