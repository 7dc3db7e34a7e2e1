package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/norasector/winding/pkg/visualizer/config"
)

var (
	configFile string
	logLevel   string
	opts       config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "winding",
		Short: "Animate a signal wound around a circle at a sweeping frequency",
		Long: `winding draws a fixed signal, the polar winding of that signal at a
frequency that oscillates over time, and the centroid of the winding across a
precomputed frequency sweep. Frames are served over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVisualizer(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "winding.yaml", "YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
	root.PersistentFlags().Int("frame-rate", 0, "override the configured frame rate")
	root.PersistentFlags().Int("port", 0, "override the configured viz server port")
	root.PersistentFlags().Bool("no-viz", false, "do not serve frames over HTTP")

	root.AddCommand(newRunCmd(), newSweepCmd(), newSnapshotCmd())
	return root
}

// loadConfig falls back to the built-in defaults when the default config file
// is absent. A file named explicitly must exist.
func loadConfig(cmd *cobra.Command) error {
	var err error
	opts, err = config.Load(configFile)
	if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
		log.Info().Str("config", configFile).Msg("config file not found, using defaults")
		opts = config.Default()
		err = nil
	}
	if err != nil {
		return err
	}

	if err := applyOverrides(cmd.Flags()); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	lvl, err := opts.Level()
	if err != nil {
		return err
	}
	log.Logger = log.Logger.Level(lvl)
	return nil
}

// applyOverrides copies explicitly set flags over the loaded config.
func applyOverrides(fs *pflag.FlagSet) error {
	if logLevel != "" {
		opts.LogLevel = logLevel
	}
	if fs.Changed("frame-rate") {
		rate, err := fs.GetInt("frame-rate")
		if err != nil {
			return err
		}
		opts.FrameRate = rate
	}
	if fs.Changed("port") {
		port, err := fs.GetInt("port")
		if err != nil {
			return err
		}
		opts.VizServer.Port = port
	}
	if fs.Changed("no-viz") {
		noViz, err := fs.GetBool("no-viz")
		if err != nil {
			return err
		}
		opts.VizServer.Enabled = !noViz
	}
	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("exited program")
	}
}
