package viz

import (
	"github.com/norasector/winding/pkg/winding"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// SpectrumPlotter overlays the DFT magnitude of the sampled signal on the
// swept centroid magnitude. The two agree wherever the sweep lands on a DFT
// bin.
type SpectrumPlotter struct {
	name        string
	spectrum    *winding.Spectrum
	trajectory  *winding.Trajectory
	plotOptions []PlotOptions
}

func NewSpectrumPlotter(name string, spectrum *winding.Spectrum, trajectory *winding.Trajectory) *SpectrumPlotter {
	return &SpectrumPlotter{
		name:       name,
		spectrum:   spectrum,
		trajectory: trajectory,
	}
}

func (sp *SpectrumPlotter) Name() string {
	return sp.name
}

func (sp *SpectrumPlotter) AddPlotOption(opt PlotOptions) {
	sp.plotOptions = append(sp.plotOptions, opt)
}

func (sp *SpectrumPlotter) GetImage() *ImageContainer {
	if sp.spectrum == nil || sp.trajectory == nil {
		return nil
	}

	p := plotWithDefaults()
	p.Title.Text = sp.name
	p.X.Label.Text = "Frequency (cycles/unit)"
	p.Y.Label.Text = "Magnitude"

	for _, opt := range sp.plotOptions {
		opt(p)
	}

	p.Add(plotter.NewGrid())

	freqs := sp.trajectory.Range()
	bins := make(plotter.XYs, 0, len(sp.spectrum.Frequencies))
	for i, f := range sp.spectrum.Frequencies {
		if f < freqs.Start || f >= freqs.End {
			continue
		}
		bins = append(bins, plotter.XY{X: f, Y: sp.spectrum.Magnitudes[i]})
	}

	mags := sp.trajectory.Magnitudes()
	sweep := make(plotter.XYs, len(mags))
	for i, m := range mags {
		sweep[i] = plotter.XY{X: sp.trajectory.Frequency(i), Y: m}
	}

	if err := plotutil.AddLines(p, "sweep", sweep); err != nil {
		return nil
	}
	if len(bins) > 0 {
		if err := plotutil.AddScatters(p, "dft", bins); err != nil {
			return nil
		}
	}

	img, err := encodePNG(sp.name, p)
	if err != nil {
		return nil
	}
	return img
}
