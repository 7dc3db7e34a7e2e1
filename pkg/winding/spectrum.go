package winding

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Spectrum is the discrete Fourier transform of a sampled signal, normalised
// by the sample count. Bin k corresponds to k cycles per domain width, where
// its coefficient equals the centroid of the winding at that frequency.
type Spectrum struct {
	Frequencies  []float64
	Coefficients []complex128
	Magnitudes   []float64
}

// ReferenceSpectrum samples f at resolution n and transforms it. It is used to
// cross-check the swept trajectory.
func ReferenceSpectrum(f Func, d Domain, n int) *Spectrum {
	samples := Sample(f, d, n)

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, samples)

	ret := &Spectrum{
		Frequencies:  make([]float64, len(coeffs)),
		Coefficients: make([]complex128, len(coeffs)),
		Magnitudes:   make([]float64, len(coeffs)),
	}
	scale := complex(float64(n), 0)
	for i, c := range coeffs {
		// Freq is in cycles per sample.
		ret.Frequencies[i] = fft.Freq(i) * float64(n) / d.Width()
		ret.Coefficients[i] = c / scale
		ret.Magnitudes[i] = cmplx.Abs(ret.Coefficients[i])
	}
	return ret
}

// Peak returns the strongest non-DC bin.
func (s *Spectrum) Peak() (freq, magnitude float64) {
	best := -1
	for i := 1; i < len(s.Magnitudes); i++ {
		if best < 0 || s.Magnitudes[i] > s.Magnitudes[best] {
			best = i
		}
	}
	if best < 0 {
		if len(s.Magnitudes) == 0 {
			return 0, 0
		}
		best = 0
	}
	return s.Frequencies[best], s.Magnitudes[best]
}
