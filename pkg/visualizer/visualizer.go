package visualizer

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	influxdb2 "github.com/influxdata/influxdb-client-go"
	"github.com/influxdata/influxdb-client-go/api"
	"github.com/norasector/winding/pkg/render"
	"github.com/norasector/winding/pkg/util"
	"github.com/norasector/winding/pkg/viz"
	"github.com/norasector/winding/pkg/winding"
	"golang.org/x/sync/errgroup"
)

// debugEvery is how often, in frames, the render loop logs at debug level.
const debugEvery = 300

type Visualizer struct {
	backend   render.Backend
	signal    winding.Func
	opts      Options
	clock     render.Clock
	writeAPI  api.WriteAPI
	vizServer *viz.Server
	logger    zerolog.Logger

	prepareOnce sync.Once
	prepareErr  error
	trajectory  *winding.Trajectory
	spectrum    *winding.Spectrum
	driver      *FrameDriver
	frames      uint64

	stopOnce sync.Once
	done     chan struct{}
}

type VisualizerOption func(v *Visualizer) error

func WithInfluxDB(writeAPI api.WriteAPI) VisualizerOption {
	return func(v *Visualizer) error {
		v.writeAPI = writeAPI
		return nil
	}
}

func WithImageServer(vizServer *viz.Server) VisualizerOption {
	return func(v *Visualizer) error {
		v.vizServer = vizServer
		return nil
	}
}

func WithLogger(logger zerolog.Logger) VisualizerOption {
	return func(v *Visualizer) error {
		v.logger = logger
		return nil
	}
}

// WithClock replaces the wall clock the animation is driven by.
func WithClock(clock render.Clock) VisualizerOption {
	return func(v *Visualizer) error {
		if clock == nil {
			return fmt.Errorf("clock must not be nil")
		}
		v.clock = clock
		return nil
	}
}

// NewVisualizer validates the options up front; an oscillation that leaves
// the swept range is rejected here rather than discovered mid-animation.
func NewVisualizer(backend render.Backend, signal winding.Func, options Options, opts ...VisualizerOption) (*Visualizer, error) {
	v := &Visualizer{
		backend:  backend,
		signal:   signal,
		opts:     options,
		writeAPI: &util.MockWriteAPI{}, // overwritten with option
		logger:   log.Logger,
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	if v.backend == nil || v.signal == nil {
		return nil, fmt.Errorf("must specify backend and signal")
	}
	if err := v.opts.Validate(); err != nil {
		return nil, err
	}
	if v.clock == nil {
		v.clock = render.NewWallClock()
	}

	return v, nil
}

// Prepare runs the frequency sweep and the reference spectrum. It only does
// the work once; Start calls it implicitly.
func (v *Visualizer) Prepare() error {
	v.prepareOnce.Do(func() {
		v.prepareErr = v.prepare()
	})
	return v.prepareErr
}

func (v *Visualizer) prepare() error {
	var err error
	sweepTime := util.TimeOperation(func() {
		v.trajectory, err = winding.Sweep(v.signal, v.opts.Domain, v.opts.Sweep, v.opts.SweepSteps, v.opts.Resolution)
	})
	if err != nil {
		return fmt.Errorf("precomputing sweep: %w", err)
	}

	peakFreq, peakMag := v.trajectory.Peak()
	v.logger.Info().
		Int("steps", v.opts.SweepSteps).
		Int("resolution", v.opts.Resolution).
		Dur("duration", sweepTime).
		Float64("peak_freq", peakFreq).
		Float64("peak_magnitude", peakMag).
		Msg("frequency sweep computed")

	v.spectrum = winding.ReferenceSpectrum(v.signal, v.opts.Domain, v.opts.Resolution)
	specFreq, specMag := v.spectrum.Peak()
	binWidth := 1 / v.opts.Domain.Width()
	lvl := zerolog.InfoLevel
	if math.Abs(specFreq-peakFreq) > binWidth {
		lvl = zerolog.WarnLevel
	}
	v.logger.WithLevel(lvl).
		Float64("spectrum_peak_freq", specFreq).
		Float64("spectrum_peak_magnitude", specMag).
		Float64("sweep_peak_freq", peakFreq).
		Msg("reference spectrum computed")

	v.writeAPI.WritePoint(influxdb2.NewPoint("winding.sweep",
		map[string]string{},
		map[string]interface{}{
			"steps":       v.opts.SweepSteps,
			"duration_us": sweepTime.Microseconds(),
			"peak_freq":   peakFreq,
			"peak_mag":    peakMag,
		}, time.Now()))

	v.driver, err = NewFrameDriver(v.signal, v.opts, v.trajectory)
	if err != nil {
		return err
	}

	if v.vizServer != nil {
		tp := viz.NewTrajectoryPlotter("trajectory", v.trajectory, v.opts.TrajectoryOffset)
		tp.AddPlotOption(viz.WithYRange(viz.TrajectoryYRange(v.trajectory, v.opts.TrajectoryOffset)))
		v.vizServer.Register(tp)
		v.vizServer.Register(viz.NewSpectrumPlotter("spectrum", v.spectrum, v.trajectory))
	}
	return nil
}

func (v *Visualizer) Trajectory() *winding.Trajectory {
	return v.trajectory
}

func (v *Visualizer) Spectrum() *winding.Spectrum {
	return v.spectrum
}

// Driver is nil until Prepare has succeeded.
func (v *Visualizer) Driver() *FrameDriver {
	return v.driver
}

// Stop ends a running Start, or makes a later Start return immediately. It is
// safe to call more than once.
func (v *Visualizer) Stop() error {
	v.stopOnce.Do(func() {
		close(v.done)
	})
	if v.vizServer != nil {
		return v.vizServer.Stop(context.TODO())
	}
	return nil
}

// Start precomputes the sweep and then renders frames until ctx is done or
// Stop is called.
func (v *Visualizer) Start(ctx context.Context) error {
	if err := v.Prepare(); err != nil {
		return err
	}

	select {
	case <-v.done:
		v.logger.Info().Msg("stopped before first frame")
		return nil
	default:
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		select {
		case <-v.done:
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	if v.vizServer != nil {
		eg.Go(func() error {
			return v.vizServer.Run(ctx)
		})
	}

	eg.Go(func() error {
		return v.renderLoop(ctx)
	})

	v.logger.Info().
		Int("width", v.opts.Width).
		Int("height", v.opts.Height).
		Msg("Starting")

	return eg.Wait()
}

func (v *Visualizer) renderLoop(ctx context.Context) error {
	for {
		select {
		case <-v.done:
			return nil
		default:
		}
		if _, err := v.RenderFrame(ctx); err != nil {
			return err
		}
	}
}

// RenderFrame draws the frame for the clock's current time and commits it.
func (v *Visualizer) RenderFrame(ctx context.Context) (FrameStats, error) {
	if v.driver == nil {
		if err := v.Prepare(); err != nil {
			return FrameStats{}, err
		}
	}

	var stats FrameStats
	elapsed := v.clock.Elapsed()
	drawUs := util.TimeOperationMicroseconds(func() {
		v.backend.Clear(render.Black)
		stats = v.driver.Draw(v.backend, elapsed)
	})

	var err error
	commitUs := util.TimeOperationMicroseconds(func() {
		err = v.backend.CommitAndWait(ctx)
	})
	v.frames++

	v.writeAPI.WritePoint(influxdb2.NewPoint("winding.frame",
		map[string]string{},
		map[string]interface{}{
			"frequency":          stats.Frequency,
			"centroid_magnitude": stats.Centroid.Abs(),
			"ppu":                stats.PPU,
			"draw_us":            drawUs,
			"commit_us":          commitUs,
		}, time.Now()))

	if v.frames%debugEvery == 0 {
		v.logger.Debug().
			Uint64("frame", v.frames).
			Float64("elapsed", elapsed).
			Float64("frequency", stats.Frequency).
			Float64("centroid_magnitude", stats.Centroid.Abs()).
			Int64("draw_us", drawUs).
			Msg("frame")
	}

	return stats, err
}
