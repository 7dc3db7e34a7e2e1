package visualizer

import (
	"fmt"
	"math"

	"github.com/norasector/winding/pkg/geom"
	"github.com/norasector/winding/pkg/graph"
	"github.com/norasector/winding/pkg/render"
	"github.com/norasector/winding/pkg/winding"
)

// maxTicks bounds the period markers drawn over the signal plot.
const maxTicks = 50

// FrameStats summarises what a frame drew.
type FrameStats struct {
	Frequency float64
	Centroid  geom.Point
	PPU       float64
	Ticks     int
}

// FrameDriver draws one frame of the animation for a given elapsed time. It
// holds only data that never changes between frames.
type FrameDriver struct {
	signal      winding.Func
	opts        Options
	layout      Layout
	trajectory  *winding.Trajectory
	samples     []float64
	re          []float64
	im          []float64
	projectOpts []graph.ProjectOption
}

func NewFrameDriver(signal winding.Func, opts Options, trajectory *winding.Trajectory) (*FrameDriver, error) {
	if signal == nil || trajectory == nil {
		return nil, winding.ErrNilInput
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if trajectory.Range() != opts.Sweep {
		return nil, fmt.Errorf("%w: trajectory covers [%g, %g), options sweep [%g, %g)",
			winding.ErrTrajectoryMismatch,
			trajectory.Range().Start, trajectory.Range().End, opts.Sweep.Start, opts.Sweep.End)
	}

	d := &FrameDriver{
		signal:     signal,
		opts:       opts,
		layout:     NewLayout(opts.Width, opts.Height),
		trajectory: trajectory,
		samples:    winding.Sample(signal, opts.Domain, opts.Resolution),
	}
	d.re, d.im = trajectory.Channels(opts.TrajectoryOffset)
	if opts.SymmetricClamp {
		d.projectOpts = append(d.projectOpts, graph.WithSymmetricClamp())
	}
	return d, nil
}

func (d *FrameDriver) Layout() Layout {
	return d.layout
}

// Frequency is the winding frequency after elapsed seconds.
func (d *FrameDriver) Frequency(elapsed float64) float64 {
	return d.opts.Oscillation.At(elapsed)
}

// Draw issues every drawing call for the frame at elapsed seconds. Numeric
// degeneracies skip the affected element instead of failing.
func (d *FrameDriver) Draw(r render.Renderer, elapsed float64) FrameStats {
	freq := d.Frequency(elapsed)
	stats := FrameStats{Frequency: freq}
	l := d.layout

	// Signal and divider.
	graph.Plot1D(r, d.samples, l.Signal, graph.NewStyle(render.White), d.projectOpts...)
	r.DrawLine(geom.Pt(l.Signal.X, l.Signal.Bottom()), geom.Pt(l.Signal.Right(), l.Signal.Bottom()), graph.DefaultThickness, render.White)

	stats.Ticks = d.drawTicks(r, freq)

	// Winding.
	points := winding.Wind(d.signal, d.opts.Domain, freq, d.opts.Resolution)
	stats.PPU = graph.PlotCentered(r, points, d.samples, l.WindingCenter, l.WindingRadius, graph.Style{
		Thickness: graph.DefaultThickness,
		Color:     render.Highlight,
		Head:      render.Gold,
	})

	// Trajectory channels and the current-frequency marker.
	graph.Plot1D(r, d.re, l.Trajectory, graph.NewStyle(render.White), d.projectOpts...)
	graph.Plot1D(r, d.im, l.Trajectory, graph.NewStyle(render.Gray), d.projectOpts...)

	if frac := d.opts.Sweep.Fraction(freq); !math.IsNaN(frac) && !math.IsInf(frac, 0) {
		x := l.Trajectory.X + frac*l.Trajectory.W
		r.DrawLine(geom.Pt(x, l.MarkerBottom), geom.Pt(x, l.MarkerTop), graph.DefaultThickness, render.Green)
	}

	// Live centroid on the winding's scale.
	if c, err := winding.Centroid(points); err == nil {
		stats.Centroid = c
		pos := l.WindingCenter.Add(c.Scale(stats.PPU))
		if finite(pos) {
			r.DrawCircle(pos, l.CentroidRadius, render.Green)
		}
	}

	r.DrawText(fmt.Sprintf("Frequency: %.2f cycles/second", freq), l.Text, l.TextSize, render.White)

	return stats
}

// drawTicks marks multiples of one period of the winding frequency across the
// signal plot.
func (d *FrameDriver) drawTicks(r render.Renderer, freq float64) int {
	if !(freq > 0) || math.IsInf(freq, 0) {
		return 0
	}

	l := d.layout
	ppu := l.Signal.W / d.opts.Domain.Width()

	ticks := 0
	for i := 0; i < maxTicks; i++ {
		x := l.Signal.X + float64(i)/freq*ppu
		if x > l.Signal.Right() {
			break
		}
		r.DrawLine(geom.Pt(x, l.Signal.Y), geom.Pt(x, l.Signal.Bottom()), graph.DefaultThickness, render.Red)
		ticks++
	}
	return ticks
}

func finite(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
