package viz

import (
	"math"

	"github.com/norasector/winding/pkg/winding"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// TrajectoryPlotter charts the centroid trajectory against winding frequency:
// both offset channels as drawn in the live view, plus the centroid magnitude.
type TrajectoryPlotter struct {
	name        string
	trajectory  *winding.Trajectory
	offset      float64
	plotOptions []PlotOptions
}

func NewTrajectoryPlotter(name string, trajectory *winding.Trajectory, offset float64) *TrajectoryPlotter {
	return &TrajectoryPlotter{
		name:       name,
		trajectory: trajectory,
		offset:     offset,
	}
}

func (tp *TrajectoryPlotter) Name() string {
	return tp.name
}

func (tp *TrajectoryPlotter) AddPlotOption(opt PlotOptions) {
	tp.plotOptions = append(tp.plotOptions, opt)
}

func (tp *TrajectoryPlotter) GetImage() *ImageContainer {
	if tp.trajectory == nil || tp.trajectory.Len() == 0 {
		return nil
	}

	p := plotWithDefaults()
	p.Title.Text = tp.name
	p.X.Label.Text = "Winding frequency (cycles/unit)"
	p.Y.Label.Text = "Centroid"

	for _, opt := range tp.plotOptions {
		opt(p)
	}

	p.Add(plotter.NewGrid())

	re, im := tp.trajectory.Channels(tp.offset)
	mags := tp.trajectory.Magnitudes()

	if err := plotutil.AddLines(p,
		"real", tp.xys(re),
		"imaginary", tp.xys(im),
		"magnitude", tp.xys(mags),
	); err != nil {
		return nil
	}

	img, err := encodePNG(tp.name, p)
	if err != nil {
		return nil
	}
	return img
}

func (tp *TrajectoryPlotter) xys(values []float64) plotter.XYs {
	ret := make(plotter.XYs, len(values))
	for i, v := range values {
		ret[i] = plotter.XY{X: tp.trajectory.Frequency(i), Y: v}
	}
	return ret
}

// TrajectoryYRange returns a vertical range holding both offset channels and
// the magnitude line, padded by a tenth of its height.
func TrajectoryYRange(trajectory *winding.Trajectory, offset float64) (float64, float64) {
	if trajectory == nil || trajectory.Len() == 0 {
		return 0, 1
	}
	re, im := trajectory.Channels(offset)
	mags := trajectory.Magnitudes()

	lo := math.Min(floats.Min(re), math.Min(floats.Min(im), floats.Min(mags)))
	hi := math.Max(floats.Max(re), math.Max(floats.Max(im), floats.Max(mags)))
	pad := (hi - lo) / 10
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}
