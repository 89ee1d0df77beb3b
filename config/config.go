// Package config loads the YAML configuration for the gridbox CLI and
// maps it onto renderer options.
package config

import (
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/TFMV/gridbox/downsample"
	"github.com/TFMV/gridbox/pkg/errors"
	"github.com/TFMV/gridbox/render"
)

// Config represents the full configuration
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
	Limits  LimitsConfig  `yaml:"limits"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"` // "json" or "console"
	Console bool   `yaml:"console"`
}

// DisplayConfig represents table display configuration
type DisplayConfig struct {
	Engine     string   `yaml:"engine"`      // "datatables.net" or "ag-grid"
	Classes    []string `yaml:"classes"`     // CSS classes on the table element
	ShowIndex  string   `yaml:"show_index"`  // "auto", "always" or "never"
	LengthMenu []int    `yaml:"length_menu"` // page-size menu for datatables.net
	Precision  int      `yaml:"precision"`   // float display precision
}

// LimitsConfig bounds the downsampled table; 0 means unlimited
type LimitsConfig struct {
	MaxRows    int `yaml:"max_rows"`
	MaxColumns int `yaml:"max_columns"`
	MaxBytes   int `yaml:"max_bytes"`
}

// LoadDefaultConfig returns a default configuration
func LoadDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:   "info",
			Format:  "console",
			Console: true,
		},
		Display: DisplayConfig{
			Engine:     string(render.DataTables),
			Classes:    []string{"display"},
			ShowIndex:  "auto",
			LengthMenu: []int{10, 25, 50, 100},
			Precision:  6,
		},
		Limits: LimitsConfig{
			MaxRows:    0,
			MaxColumns: 20,
			MaxBytes:   1 << 20, // 1MB of serialized payload
		},
	}
}

// LoadConfig loads configuration from a file, on top of the defaults
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(ErrFileReadFailed, err, "failed to read config file")
	}

	config := LoadDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(ErrParseFailed, err, "failed to parse config file")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrValidationFailed, err, "invalid log level %q", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return errors.Newf(ErrValidationFailed, "invalid log format %q", c.Log.Format)
	}
	if _, err := render.ParseEngine(c.Display.Engine); err != nil {
		return errors.Wrapf(ErrValidationFailed, err, "invalid display engine %q", c.Display.Engine)
	}
	switch c.Display.ShowIndex {
	case "auto", "always", "never":
	default:
		return errors.Newf(ErrValidationFailed, "invalid show_index %q (want auto, always or never)", c.Display.ShowIndex)
	}
	if c.Display.Precision < 0 {
		return errors.Newf(ErrValidationFailed, "precision must be >= 0, got %d", c.Display.Precision)
	}
	if err := c.DownsampleLimits().Validate(); err != nil {
		return errors.Wrap(ErrValidationFailed, err, "invalid limits")
	}
	return nil
}

// LogLevel returns the parsed zerolog level
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// DownsampleLimits returns the limits as consumed by the downsampler
func (c *Config) DownsampleLimits() downsample.Limits {
	return downsample.Limits{
		MaxRows:    c.Limits.MaxRows,
		MaxColumns: c.Limits.MaxColumns,
		MaxBytes:   c.Limits.MaxBytes,
	}
}

// RenderOptions maps the configuration onto renderer options
func (c *Config) RenderOptions() (render.Options, error) {
	engine, err := render.ParseEngine(c.Display.Engine)
	if err != nil {
		return render.Options{}, err
	}

	opts := render.DefaultOptions()
	opts.Engine = engine
	opts.Classes = c.Display.Classes
	opts.LengthMenu = c.Display.LengthMenu
	opts.Limits = c.DownsampleLimits()

	switch c.Display.ShowIndex {
	case "always":
		opts.ShowIndex = render.ShowIndexAlways
	case "never":
		opts.ShowIndex = render.ShowIndexNever
	default:
		opts.ShowIndex = render.ShowIndexAuto
	}
	return opts, nil
}
