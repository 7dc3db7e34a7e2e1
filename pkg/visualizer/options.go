package visualizer

import (
	"fmt"

	"github.com/norasector/winding/pkg/visualizer/config"
	"github.com/norasector/winding/pkg/winding"
)

type Options struct {
	Width            int
	Height           int
	Domain           winding.Domain
	Resolution       int
	Sweep            winding.FrequencyRange
	SweepSteps       int
	Oscillation      winding.Oscillation
	TrajectoryOffset float64
	SymmetricClamp   bool
}

func OptionsFromConfig(c config.Config) Options {
	return Options{
		Width:            c.Window.Width,
		Height:           c.Window.Height,
		Domain:           c.DomainRange(),
		Resolution:       c.Resolution,
		Sweep:            c.FrequencyRange(),
		SweepSteps:       c.Sweep.Steps,
		Oscillation:      c.FrequencyOscillation(),
		TrajectoryOffset: c.TrajectoryOffset,
		SymmetricClamp:   c.SymmetricClamp,
	}
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", config.ErrInvalidWindow, o.Width, o.Height)
	}
	if o.Resolution <= 0 {
		return fmt.Errorf("%w: got %d", config.ErrInvalidResolution, o.Resolution)
	}
	if o.SweepSteps <= 0 {
		return fmt.Errorf("%w: got %d", config.ErrInvalidSweepSteps, o.SweepSteps)
	}
	if err := o.Domain.Validate(); err != nil {
		return err
	}
	return o.Oscillation.Validate(o.Sweep)
}
