package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/norasector/winding/pkg/winding"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidWindow     = errors.New("config: window width and height must be positive")
	ErrInvalidResolution = errors.New("config: resolution must be positive")
	ErrInvalidSweepSteps = errors.New("config: sweep steps must be positive")
	ErrInvalidFrameRate  = errors.New("config: frame rate must not be negative")
	ErrInvalidLogLevel   = errors.New("config: unknown log level")
	ErrInvalidPort       = errors.New("config: viz server port out of range")
)

type Config struct {
	Window           Window      `yaml:"window"`
	Domain           Interval    `yaml:"domain"`
	Resolution       int         `yaml:"resolution"`
	Sweep            Sweep       `yaml:"sweep"`
	Oscillation      Oscillation `yaml:"oscillation"`
	TrajectoryOffset float64     `yaml:"trajectory_offset"`
	SymmetricClamp   bool        `yaml:"symmetric_clamp"`
	FrameRate        int         `yaml:"frame_rate"`
	LogLevel         string      `yaml:"log_level"`
	VizServer        struct {
		Enabled        bool          `yaml:"enabled"`
		Port           int           `yaml:"port"`
		UpdateInterval time.Duration `yaml:"update_interval"`
	} `yaml:"viz_server"`
	InfluxDB struct {
		Host         string `yaml:"host"`
		Token        string `yaml:"token"`
		Organization string `yaml:"organization"`
		Bucket       string `yaml:"bucket"`
	} `yaml:"influxdb"`
}

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Interval struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

type Sweep struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Steps int     `yaml:"steps"`
}

type Oscillation struct {
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
	Offset    float64 `yaml:"offset"`
}

// Default reproduces the classic 800x600 demo: cos(2π·3x)+1 on [0, 4),
// swept from 0.05 to 4.05 and animated by 2·sin(t/2)+2.05.
func Default() Config {
	var c Config
	c.Window = Window{Width: 800, Height: 600}
	c.Domain = Interval{Start: 0, End: 4}
	c.Resolution = 1000
	c.Sweep = Sweep{Start: 0.05, End: 4.05, Steps: 2000}
	c.Oscillation = Oscillation{Amplitude: 2, Period: 2, Offset: 2.05}
	c.TrajectoryOffset = 0.4
	c.FrameRate = 60
	c.LogLevel = "info"
	c.VizServer.Enabled = true
	c.VizServer.Port = 8080
	c.VizServer.UpdateInterval = 100 * time.Millisecond
	return c
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	c := Default()

	contents, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(contents, &c); err != nil {
		return c, fmt.Errorf("unmarshaling yaml file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) DomainRange() winding.Domain {
	return winding.Domain{Start: c.Domain.Start, End: c.Domain.End}
}

func (c Config) FrequencyRange() winding.FrequencyRange {
	return winding.FrequencyRange{Start: c.Sweep.Start, End: c.Sweep.End}
}

func (c Config) FrequencyOscillation() winding.Oscillation {
	return winding.Oscillation{
		Amplitude: c.Oscillation.Amplitude,
		Period:    c.Oscillation.Period,
		Offset:    c.Oscillation.Offset,
	}
}

func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return lvl, nil
}

// Validate checks every setting. The oscillation must stay inside the swept
// range, otherwise the live marker would point at data that was never
// computed.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if c.Resolution <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidResolution, c.Resolution)
	}
	if c.Sweep.Steps <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSweepSteps, c.Sweep.Steps)
	}
	if c.FrameRate < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidFrameRate, c.FrameRate)
	}
	if c.VizServer.Enabled && (c.VizServer.Port < 0 || c.VizServer.Port > 65535) {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, c.VizServer.Port)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if err := c.DomainRange().Validate(); err != nil {
		return fmt.Errorf("config: domain: %w", err)
	}
	if err := c.FrequencyOscillation().Validate(c.FrequencyRange()); err != nil {
		return fmt.Errorf("config: oscillation: %w", err)
	}
	return nil
}
