package winding

import (
	"fmt"
	"math"
)

// Func is the signal being visualised. It must be pure: it is evaluated
// thousands of times per frame.
type Func func(x float64) float64

// Domain is the half-open interval [Start, End) a signal is sampled over.
type Domain struct {
	Start float64
	End   float64
}

func NewDomain(start, end float64) (Domain, error) {
	d := Domain{Start: start, End: end}
	if err := d.Validate(); err != nil {
		return Domain{}, err
	}
	return d, nil
}

func (d Domain) Validate() error {
	if !(d.Start < d.End) || math.IsInf(d.Start, 0) || math.IsInf(d.End, 0) {
		return fmt.Errorf("%w: got (%g, %g)", ErrInvalidDomain, d.Start, d.End)
	}
	return nil
}

func (d Domain) Width() float64 {
	return d.End - d.Start
}

// Step is the spacing between n samples. End is never reached.
func (d Domain) Step(n int) float64 {
	return d.Width() / float64(n)
}

// At returns the domain position of sample i out of n.
func (d Domain) At(i, n int) float64 {
	return d.Start + float64(i)*d.Step(n)
}

// Sample evaluates f at n evenly spaced points starting at d.Start. The right
// endpoint is excluded. It panics if n is not positive.
func Sample(f Func, d Domain, n int) []float64 {
	if n <= 0 {
		panic(fmt.Sprintf("winding: sample count must be positive, got %d", n))
	}

	ret := make([]float64, n)
	for i := 0; i < n; i++ {
		ret[i] = f(d.At(i, n))
	}
	return ret
}
