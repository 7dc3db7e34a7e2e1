package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/norasector/winding/pkg/render"
	"github.com/norasector/winding/pkg/visualizer"
)

func newSnapshotCmd() *cobra.Command {
	var (
		at  float64
		out string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a single frame at a given time to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			canvas, err := render.NewCanvas(opts.Window.Width, opts.Window.Height)
			if err != nil {
				return err
			}

			v, err := visualizer.NewVisualizer(canvas, resonantSignal, visualizer.OptionsFromConfig(opts),
				visualizer.WithLogger(log.Logger),
				visualizer.WithClock(render.NewManualClock(at)))
			if err != nil {
				return err
			}

			stats, err := v.RenderFrame(context.Background())
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := canvas.WritePNG(f); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}

			log.Info().
				Str("file", out).
				Float64("elapsed", at).
				Float64("frequency", stats.Frequency).
				Float64("centroid_magnitude", stats.Centroid.Abs()).
				Msg("snapshot written")
			return nil
		},
	}

	cmd.Flags().Float64Var(&at, "at", 0, "elapsed seconds to render")
	cmd.Flags().StringVarP(&out, "out", "o", "frame.png", "output PNG file")
	return cmd
}
