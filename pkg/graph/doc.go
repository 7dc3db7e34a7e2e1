// Package graph projects sampled data into screen rectangles and draws the
// result as connected line segments on a render.Renderer.
//
// Two quirks are kept deliberately. Project1D spaces points by rect.W/len
// regardless of the domain they came from, and it only clamps the bottom edge
// of the rectangle unless WithSymmetricClamp is given. Neither projector
// subtracts the minimum of the data before scaling.
package graph
