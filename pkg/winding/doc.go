// Package winding samples a scalar signal over a domain and winds it around
// the unit circle at a chosen frequency.
//
// The centroid of a winding is the discrete analogue of the Fourier
// coefficient of the signal at that frequency: it sits near the origin unless
// the winding frequency matches a frequency present in the signal. Sweep
// computes the centroid for a whole range of frequencies once, producing the
// Trajectory drawn as the frequency response.
//
// Windings follow the screen convention: y is the negated sine term, so a
// winding is vertically mirrored relative to the usual mathematical
// orientation.
package winding
