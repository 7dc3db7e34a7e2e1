// Package geom holds the small screen-space value types shared by the
// sampling, projection and rendering packages.
package geom

import "math"

// Point is a 2D coordinate. In screen space y grows downward.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Abs returns the distance of p from the origin.
func (p Point) Abs() float64 {
	return math.Hypot(p.X, p.Y)
}

// Rect is an axis-aligned screen rectangle with its origin at the top-left.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Bottom is the y coordinate of the lower edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) Right() float64 {
	return r.X + r.W
}
