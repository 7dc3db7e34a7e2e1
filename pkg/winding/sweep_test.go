package winding

import (
	"math"
	"testing"

	"github.com/mjibson/go-dsp/fft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepDeterministic(t *testing.T) {
	d := Domain{0, 4}
	r := FrequencyRange{0.05, 4.05}

	first, err := Sweep(resonant, d, r, 200, 500)
	require.NoError(t, err)
	second, err := Sweep(resonant, d, r, 200, 500)
	require.NoError(t, err)

	assert.Equal(t, first.Centroids(), second.Centroids())
}

func TestSweepFrequencies(t *testing.T) {
	traj, err := Sweep(resonant, Domain{0, 4}, FrequencyRange{0.05, 4.05}, 2000, 10)
	require.NoError(t, err)

	assert.Equal(t, 2000, traj.Len())
	assert.Equal(t, 0.05, traj.Frequency(0))
	assert.InDelta(t, 0.052, traj.Frequency(1), 1e-12)
	assert.Less(t, traj.Frequency(traj.Len()-1), 4.05)
}

func TestSweepRecoversSignalFrequency(t *testing.T) {
	r := FrequencyRange{0.05, 4.05}
	traj, err := Sweep(resonant, Domain{0, 4}, r, 1000, 1000)
	require.NoError(t, err)

	freq, mag := traj.Peak()
	step := r.Width() / 1000
	assert.InDelta(t, 3.0, freq, step)
	assert.InDelta(t, 0.5, mag, 0.01)
}

func TestSweepPeakFallsBackToDC(t *testing.T) {
	one := func(float64) float64 { return 1 }
	// The whole range lies inside the DC lobe of a four-unit domain.
	traj, err := Sweep(one, Domain{0, 4}, FrequencyRange{0, 0.2}, 20, 100)
	require.NoError(t, err)

	freq, mag := traj.Peak()
	assert.Equal(t, 0.0, freq)
	assert.InDelta(t, 1, mag, 1e-12)
}

func TestSweepRejectsBadInput(t *testing.T) {
	d := Domain{0, 4}
	r := FrequencyRange{0.05, 4.05}

	_, err := Sweep(resonant, d, r, 0, 100)
	assert.ErrorIs(t, err, ErrInvalidCount)
	_, err = Sweep(resonant, d, r, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidCount)
	_, err = Sweep(resonant, d, FrequencyRange{4, 1}, 10, 10)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = Sweep(resonant, Domain{1, 1}, r, 10, 10)
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func TestTrajectoryChannels(t *testing.T) {
	traj, err := Sweep(resonant, Domain{0, 4}, FrequencyRange{0.05, 4.05}, 50, 200)
	require.NoError(t, err)

	re, im := traj.Channels(0.4)
	require.Len(t, re, 50)
	require.Len(t, im, 50)
	for i := 0; i < traj.Len(); i++ {
		c := traj.Centroid(i)
		assert.Equal(t, c.X+0.4, re[i])
		assert.Equal(t, -c.Y+0.4, im[i])
	}

	// Callers get copies.
	cs := traj.Centroids()
	cs[0].X = 42
	assert.NotEqual(t, 42.0, traj.Centroid(0).X)
}

// At integer multiples of one cycle per domain width the centroid is the DFT
// coefficient of the samples divided by the sample count.
func TestCentroidMatchesDFT(t *testing.T) {
	const n = 1000
	d := Domain{0, 4}
	coeffs := fft.FFTReal(Sample(resonant, d, n))
	ref := ReferenceSpectrum(resonant, d, n)

	for _, k := range []int{0, 1, 5, 12, 13, 40} {
		freq := float64(k) / d.Width()
		c := CentroidAt(resonant, d, freq, n)

		assert.InDelta(t, real(coeffs[k])/n, c.X, 1e-9, "bin %d", k)
		assert.InDelta(t, imag(coeffs[k])/n, c.Y, 1e-9, "bin %d", k)

		assert.InDelta(t, freq, ref.Frequencies[k], 1e-12)
		assert.InDelta(t, real(ref.Coefficients[k]), c.X, 1e-9, "bin %d", k)
		assert.InDelta(t, imag(ref.Coefficients[k]), c.Y, 1e-9, "bin %d", k)
	}
}

func TestReferenceSpectrumPeak(t *testing.T) {
	ref := ReferenceSpectrum(resonant, Domain{0, 4}, 1000)
	freq, mag := ref.Peak()
	assert.Equal(t, 3.0, freq)
	assert.InDelta(t, 0.5, mag, 1e-9)
	assert.InDelta(t, 1, ref.Magnitudes[0], 1e-9)
}

func TestOscillation(t *testing.T) {
	o := Oscillation{Amplitude: 2, Period: 2, Offset: 2.05}
	assert.Equal(t, 2.05, o.At(0))
	assert.InDelta(t, 4.05, o.At(math.Pi), 1e-12)
	assert.InDelta(t, 0.05, o.At(3*math.Pi), 1e-12)

	r := FrequencyRange{0.05, 4.05}
	assert.NoError(t, o.Validate(r))

	assert.ErrorIs(t, Oscillation{Amplitude: 3, Period: 2, Offset: 2.05}.Validate(r), ErrOscillationOutOfRange)
	assert.ErrorIs(t, Oscillation{Amplitude: -2, Period: 2, Offset: 3}.Validate(r), ErrOscillationOutOfRange)
	assert.ErrorIs(t, Oscillation{Amplitude: 1, Period: 0, Offset: 2}.Validate(r), ErrInvalidOscillation)
	assert.ErrorIs(t, Oscillation{Amplitude: math.NaN(), Period: 1, Offset: 2}.Validate(r), ErrOscillationOutOfRange)
}
