package visualizer

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/norasector/winding/pkg/geom"
	"github.com/norasector/winding/pkg/graph"
	"github.com/norasector/winding/pkg/render"
	"github.com/norasector/winding/pkg/util"
	"github.com/norasector/winding/pkg/visualizer/config"
	"github.com/norasector/winding/pkg/winding"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resonant(x float64) float64 {
	return math.Cos(2*math.Pi*3*x) + 1
}

// testOptions is the default layout with a coarser sweep and resolution.
func testOptions() Options {
	o := OptionsFromConfig(config.Default())
	o.Resolution = 200
	o.SweepSteps = 100
	return o
}

func newDriver(t *testing.T, signal winding.Func, o Options) *FrameDriver {
	t.Helper()
	traj, err := winding.Sweep(signal, o.Domain, o.Sweep, o.SweepSteps, o.Resolution)
	require.NoError(t, err)
	d, err := NewFrameDriver(signal, o, traj)
	require.NoError(t, err)
	return d
}

func TestLayoutMatchesClassicWindow(t *testing.T) {
	l := NewLayout(800, 600)
	assert.Equal(t, geom.NewRect(0, 0, 800, 200), l.Signal)
	assert.Equal(t, geom.Pt(150, 350), l.WindingCenter)
	assert.Equal(t, 100.0, l.WindingRadius)
	assert.Equal(t, geom.NewRect(400, 270, 350, 350), l.Trajectory)
	assert.Equal(t, geom.Pt(10, 576), l.Text)
}

func TestFrameDriverFrequency(t *testing.T) {
	d := newDriver(t, resonant, testOptions())
	assert.Equal(t, 2.05, d.Frequency(0))
	assert.InDelta(t, 4.05, d.Frequency(math.Pi), 1e-12)
	assert.InDelta(t, 0.05, d.Frequency(3*math.Pi), 1e-12)
}

func TestFrameDriverDrawCalls(t *testing.T) {
	o := testOptions()
	d := newDriver(t, resonant, o)
	rec := render.NewRecorder()

	stats := d.Draw(rec, 0)
	assert.Equal(t, 2.05, stats.Frequency)

	// Signal plot, divider and the real trajectory channel.
	assert.Len(t, rec.Filter(render.CallLine, render.White), o.Resolution+1+o.SweepSteps)
	assert.Len(t, rec.Filter(render.CallLine, render.Gray), o.SweepSteps)
	assert.Len(t, rec.Filter(render.CallLine, render.Gold), 1)
	assert.Len(t, rec.Filter(render.CallLine, render.Highlight), o.Resolution-1)

	// One period is 1/2.05 units, 200 pixels per unit: nine ticks fit in 800.
	ticks := rec.Filter(render.CallLine, render.Red)
	assert.Len(t, ticks, 9)
	assert.Equal(t, 9, stats.Ticks)
	assert.Equal(t, 0.0, ticks[0].From.X)

	markers := rec.Filter(render.CallLine, render.Green)
	require.Len(t, markers, 1)
	assert.InDelta(t, 400+2.0/4*350, markers[0].From.X, 1e-9)
	assert.Equal(t, 600.0, markers[0].From.Y)
	assert.Equal(t, 200.0, markers[0].To.Y)

	circles := rec.Filter(render.CallCircle, render.Green)
	require.Len(t, circles, 1)
	c := winding.CentroidAt(resonant, o.Domain, 2.05, o.Resolution)
	ppu := graph.PixelsPerUnit(winding.Sample(resonant, o.Domain, o.Resolution), 100)
	assert.Equal(t, ppu, stats.PPU)
	assert.InDelta(t, 150+c.X*ppu, circles[0].From.X, 1e-9)
	assert.InDelta(t, 350+c.Y*ppu, circles[0].From.Y, 1e-9)

	texts := rec.Filter(render.CallText, render.White)
	require.Len(t, texts, 1)
	assert.Equal(t, "Frequency: 2.05 cycles/second", texts[0].Text)
}

func TestFrameDriverZeroSignal(t *testing.T) {
	zero := func(float64) float64 { return 0 }
	d := newDriver(t, zero, testOptions())
	rec := render.NewRecorder()

	stats := d.Draw(rec, 1.3)
	assert.Equal(t, 0.0, stats.PPU)
	assert.Equal(t, geom.Point{}, stats.Centroid)

	circles := rec.Filter(render.CallCircle, nil)
	require.Len(t, circles, 1)
	assert.Equal(t, d.Layout().WindingCenter, circles[0].From)

	for _, call := range rec.Filter(render.CallLine, render.Highlight) {
		assert.Equal(t, d.Layout().WindingCenter, call.To)
	}
}

func TestFrameDriverNonPositiveFrequency(t *testing.T) {
	o := testOptions()
	o.Sweep = winding.FrequencyRange{Start: -1, End: 1}
	o.Oscillation = winding.Oscillation{Amplitude: 1, Period: 1, Offset: 0}
	d := newDriver(t, resonant, o)
	rec := render.NewRecorder()

	stats := d.Draw(rec, 0)
	assert.Equal(t, 0.0, stats.Frequency)
	assert.Equal(t, 0, stats.Ticks)
	assert.Empty(t, rec.Filter(render.CallLine, render.Red))

	texts := rec.Filter(render.CallText, nil)
	require.Len(t, texts, 1)
	assert.True(t, strings.HasPrefix(texts[0].Text, "Frequency: 0.00"))

	stats = d.Draw(rec, -math.Pi/2)
	assert.Equal(t, -1.0, stats.Frequency)
	assert.Equal(t, 0, stats.Ticks)
}

func TestNewFrameDriverRejectsMismatchedTrajectory(t *testing.T) {
	o := testOptions()
	traj, err := winding.Sweep(resonant, o.Domain, winding.FrequencyRange{Start: 1, End: 2}, 10, 10)
	require.NoError(t, err)

	_, err = NewFrameDriver(resonant, o, traj)
	assert.ErrorIs(t, err, winding.ErrTrajectoryMismatch)
	assert.NotErrorIs(t, err, winding.ErrOscillationOutOfRange)

	_, err = NewFrameDriver(nil, o, traj)
	assert.ErrorIs(t, err, winding.ErrNilInput)
	_, err = NewFrameDriver(resonant, o, nil)
	assert.ErrorIs(t, err, winding.ErrNilInput)
}

func TestNewVisualizerFailsFast(t *testing.T) {
	o := testOptions()
	o.Oscillation.Amplitude = 5

	_, err := NewVisualizer(render.NewRecorder(), resonant, o)
	assert.ErrorIs(t, err, winding.ErrOscillationOutOfRange)

	_, err = NewVisualizer(nil, resonant, testOptions())
	assert.Error(t, err)
}

func TestVisualizerRendersWithManualClock(t *testing.T) {
	rec := render.NewRecorder()
	clock := render.NewManualClock(0)
	metrics := &util.MockWriteAPI{}

	v, err := NewVisualizer(rec, resonant, testOptions(),
		WithClock(clock),
		WithInfluxDB(metrics),
		WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var seen []float64
	rec.OnCommit = func(frame int) error {
		for _, call := range rec.Filter(render.CallText, nil) {
			seen = append(seen, parseFrequency(call.Text))
		}
		clock.Advance(math.Pi)
		if frame == 3 {
			cancel()
		}
		return nil
	}

	err = v.Start(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, rec.Commits)
	assert.Equal(t, []float64{2.05, 4.05, 2.05}, seen)
	assert.Equal(t, render.Black, rec.Background)

	// One sweep point plus one per frame.
	assert.Equal(t, 4, metrics.Points())

	freq, _ := v.Trajectory().Peak()
	assert.InDelta(t, 3.0, freq, 4.0/100)
	assert.NotNil(t, v.Spectrum())
}

func startAsync(v *Visualizer) <-chan error {
	errc := make(chan error, 1)
	go func() {
		errc <- v.Start(context.Background())
	}()
	return errc
}

func TestStopBeforeStart(t *testing.T) {
	rec := render.NewRecorder()
	v, err := NewVisualizer(rec, resonant, testOptions(), WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	require.NoError(t, v.Stop())
	require.NoError(t, v.Stop())

	select {
	case err := <-startAsync(v):
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("Start still rendering after Stop; commits=%d", rec.Commits)
	}
	assert.Equal(t, 0, rec.Commits)
}

func TestStopWhileRendering(t *testing.T) {
	rec := render.NewRecorder()
	v, err := NewVisualizer(rec, resonant, testOptions(), WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	rec.OnCommit = func(frame int) error {
		if frame == 5 {
			return v.Stop()
		}
		return nil
	}

	select {
	case err := <-startAsync(v):
		if err != nil {
			assert.ErrorIs(t, err, context.Canceled)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Stop")
	}
	assert.GreaterOrEqual(t, rec.Commits, 5)
}

func TestPrepareOnlyOnce(t *testing.T) {
	calls := 0
	counting := func(x float64) float64 {
		calls++
		return resonant(x)
	}

	o := testOptions()
	v, err := NewVisualizer(render.NewRecorder(), counting, o, WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	require.NoError(t, v.Prepare())
	after := calls
	require.NoError(t, v.Prepare())
	assert.Equal(t, after, calls)
	assert.NotNil(t, v.Driver())
}

func parseFrequency(text string) float64 {
	var f float64
	fmt.Sscanf(text, "Frequency: %f cycles/second", &f)
	return f
}
