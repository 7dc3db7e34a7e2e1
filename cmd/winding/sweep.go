package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/norasector/winding/pkg/util"
	"github.com/norasector/winding/pkg/winding"
)

func newSweepCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compute the centroid trajectory and report its peak",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case steps < 0:
				return fmt.Errorf("%w: --steps %d", winding.ErrInvalidCount, steps)
			case steps == 0:
				steps = opts.Sweep.Steps
			}

			var traj *winding.Trajectory
			var err error
			us := util.TimeOperationMicroseconds(func() {
				traj, err = winding.Sweep(resonantSignal, opts.DomainRange(), opts.FrequencyRange(), steps, opts.Resolution)
			})
			if err != nil {
				return err
			}

			freq, mag := traj.Peak()
			specFreq, specMag := winding.ReferenceSpectrum(resonantSignal, opts.DomainRange(), opts.Resolution).Peak()
			log.Info().
				Int("steps", steps).
				Int64("duration_us", us).
				Float64("step", opts.FrequencyRange().Width()/float64(steps)).
				Float64("peak_freq", freq).
				Float64("peak_magnitude", mag).
				Float64("spectrum_peak_freq", specFreq).
				Float64("spectrum_peak_magnitude", specMag).
				Msg("sweep")
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 0, "number of swept frequencies (default from config)")
	return cmd
}
