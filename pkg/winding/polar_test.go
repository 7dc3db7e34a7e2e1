package winding

import (
	"math"
	"testing"

	"github.com/norasector/winding/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resonant(x float64) float64 {
	return math.Cos(2*math.Pi*3*x) + 1
}

func TestWindZeroSignalCentroid(t *testing.T) {
	zero := func(float64) float64 { return 0 }
	for _, freq := range []float64{-3, -0.5, 0, 0.05, 1, 2.9, 3, math.Pi, 100} {
		c, err := Centroid(Wind(zero, Domain{0, 4}, freq, 1000))
		require.NoError(t, err)
		assert.Equal(t, geom.Point{}, c, "frequency %v", freq)
	}
}

func TestWindScreenOrientation(t *testing.T) {
	one := func(float64) float64 { return 1 }
	// Four samples a quarter turn apart at one cycle per domain width.
	got := Wind(one, Domain{0, 1}, 1, 4)
	want := []geom.Point{{X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 1}}
	require.Len(t, got, 4)
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-12)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-12)
	}
}

func TestWindZeroFrequencyIsSignal(t *testing.T) {
	d := Domain{0, 4}
	samples := Sample(resonant, d, 100)
	for i, p := range Wind(resonant, d, 0, 100) {
		assert.Equal(t, samples[i], p.X)
		assert.Equal(t, 0.0, math.Abs(p.Y))
	}
}

func TestWindStartsAtZero(t *testing.T) {
	ident := func(x float64) float64 { return x }
	d := Domain{1, 3}
	got := Wind(ident, d, 0, 4)
	require.Len(t, got, 4)
	for i, p := range got {
		assert.InDelta(t, float64(i)*0.5, p.X, 1e-12, "sample %d", i)
	}
	assert.NotEqual(t, Sample(ident, d, 4)[0], got[0].X)
}

func TestCentroidEmpty(t *testing.T) {
	_, err := Centroid(nil)
	assert.ErrorIs(t, err, ErrEmptyWinding)
}

func TestCentroidMean(t *testing.T) {
	c, err := Centroid([]geom.Point{{X: 1, Y: 2}, {X: 3, Y: -2}, {X: 2, Y: 3}})
	require.NoError(t, err)
	assert.InDelta(t, 2, c.X, 1e-12)
	assert.InDelta(t, 1, c.Y, 1e-12)
}

func TestResonanceIsLocalMaximum(t *testing.T) {
	d := Domain{0, 4}
	at := CentroidAt(resonant, d, 3.0, 1000).Abs()
	below := CentroidAt(resonant, d, 2.9, 1000).Abs()
	above := CentroidAt(resonant, d, 3.1, 1000).Abs()

	assert.InDelta(t, 0.5, at, 1e-9)
	assert.Greater(t, at, below)
	assert.Greater(t, at, above)
}
