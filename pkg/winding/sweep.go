package winding

import (
	"fmt"
	"math"

	"github.com/norasector/winding/pkg/geom"
	"gonum.org/v1/gonum/floats"
)

// FrequencyRange is a half-open interval [Start, End) of winding frequencies.
type FrequencyRange struct {
	Start float64
	End   float64
}

func (r FrequencyRange) Validate() error {
	if !(r.Start < r.End) || math.IsInf(r.Start, 0) || math.IsInf(r.End, 0) {
		return fmt.Errorf("%w: got [%g, %g)", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

func (r FrequencyRange) Width() float64 {
	return r.End - r.Start
}

// At returns frequency i out of steps; End itself is never produced.
func (r FrequencyRange) At(i, steps int) float64 {
	return r.Start + r.Width()/float64(steps)*float64(i)
}

// Fraction maps a frequency to its relative position in the range, 0 at
// Start and 1 at End.
func (r FrequencyRange) Fraction(freq float64) float64 {
	return (freq - r.Start) / r.Width()
}

// Trajectory is the centroid of the winding at each swept frequency. It is
// immutable once returned by Sweep.
type Trajectory struct {
	domain    Domain
	freqs     FrequencyRange
	centroids []geom.Point
}

// Sweep winds f at steps evenly spaced frequencies across freqs and collects
// the centroid at each, in frequency order. It performs steps·n evaluations of
// f and is meant to run once, before any frame is drawn.
func Sweep(f Func, d Domain, freqs FrequencyRange, steps, n int) (*Trajectory, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := freqs.Validate(); err != nil {
		return nil, err
	}
	if steps <= 0 {
		return nil, fmt.Errorf("%w: sweep steps %d", ErrInvalidCount, steps)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: resolution %d", ErrInvalidCount, n)
	}

	t := &Trajectory{
		domain:    d,
		freqs:     freqs,
		centroids: make([]geom.Point, steps),
	}
	for i := 0; i < steps; i++ {
		t.centroids[i] = CentroidAt(f, d, freqs.At(i, steps), n)
	}
	return t, nil
}

func (t *Trajectory) Len() int {
	return len(t.centroids)
}

func (t *Trajectory) Range() FrequencyRange {
	return t.freqs
}

func (t *Trajectory) Domain() Domain {
	return t.domain
}

// Frequency returns the winding frequency of entry i.
func (t *Trajectory) Frequency(i int) float64 {
	return t.freqs.At(i, len(t.centroids))
}

// Centroid returns entry i.
func (t *Trajectory) Centroid(i int) geom.Point {
	return t.centroids[i]
}

// Centroids returns a copy of every entry.
func (t *Trajectory) Centroids() []geom.Point {
	ret := make([]geom.Point, len(t.centroids))
	copy(ret, t.centroids)
	return ret
}

func (t *Trajectory) Magnitudes() []float64 {
	ret := make([]float64, len(t.centroids))
	for i, c := range t.centroids {
		ret[i] = c.Abs()
	}
	return ret
}

// Channels splits the trajectory into its real and imaginary parts, each
// shifted by offset so both stay positive when plotted. The imaginary channel
// undoes the winding's screen-space sign flip.
func (t *Trajectory) Channels(offset float64) (re, im []float64) {
	re = make([]float64, len(t.centroids))
	im = make([]float64, len(t.centroids))
	for i, c := range t.centroids {
		re[i] = c.X + offset
		im[i] = -c.Y + offset
	}
	return re, im
}

// Peak returns the frequency and magnitude of the largest centroid. Entries
// within the main lobe around zero frequency (closer to 0 than one cycle per
// domain width) are skipped so a DC offset in the signal does not mask its
// oscillating content, unless nothing else was swept.
func (t *Trajectory) Peak() (freq, magnitude float64) {
	mags := t.Magnitudes()
	lobe := 1 / t.domain.Width()

	best := -1
	for i, m := range mags {
		if math.Abs(t.Frequency(i)) < lobe {
			continue
		}
		if best < 0 || m > mags[best] {
			best = i
		}
	}
	if best < 0 {
		best = floats.MaxIdx(mags)
	}

	return t.Frequency(best), mags[best]
}
