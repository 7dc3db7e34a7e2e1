package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	influxdb2 "github.com/influxdata/influxdb-client-go"
	"github.com/norasector/winding/pkg/render"
	"github.com/norasector/winding/pkg/visualizer"
	"github.com/norasector/winding/pkg/viz"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the animation and serve it over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVisualizer(cmd.Context())
		},
	}
}

func runVisualizer(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	vizOpts := []visualizer.VisualizerOption{visualizer.WithLogger(log.Logger)}
	canvasOpts := []render.CanvasOption{render.WithFrameRate(opts.FrameRate)}

	if opts.VizServer.Enabled {
		vizServer := viz.NewServer(opts.VizServer.Port, opts.VizServer.UpdateInterval)
		canvasOpts = append(canvasOpts, render.WithFrameSink(vizServer))
		vizOpts = append(vizOpts, visualizer.WithImageServer(vizServer))
		log.Info().Int("port", opts.VizServer.Port).Msg("serving frames")
	}

	if opts.InfluxDB.Host != "" {
		client := influxdb2.NewClient(opts.InfluxDB.Host, opts.InfluxDB.Token)
		defer client.Close()
		vizOpts = append(vizOpts, visualizer.WithInfluxDB(client.WriteAPI(opts.InfluxDB.Organization, opts.InfluxDB.Bucket)))
	}

	canvas, err := render.NewCanvas(opts.Window.Width, opts.Window.Height, canvasOpts...)
	if err != nil {
		return err
	}
	defer canvas.Close()

	v, err := visualizer.NewVisualizer(canvas, resonantSignal, visualizer.OptionsFromConfig(opts), vizOpts...)
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	eg.Go(func() error {
		// A second interrupt falls through to the default handler.
		defer signal.Stop(sigChan)

		select {
		case <-sigChan:
		case <-ctx.Done():
		}

		return v.Stop()
	})

	eg.Go(func() error {
		return v.Start(ctx)
	})

	if err := eg.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
