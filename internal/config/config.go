package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete tool configuration
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Plot    PlotConfig    `yaml:"plot"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConvertConfig contains defaults for the convert command
type ConvertConfig struct {
	Format string `yaml:"format"` // "pad" or "signal"
}

// PlotConfig contains defaults for the plot command
type PlotConfig struct {
	Width       int     `yaml:"width"`        // waveform width in columns
	MaxSamples  int     `yaml:"max_samples"`  // samples rendered, 0 for all
	SmoothSigma float64 `yaml:"smooth_sigma"` // gaussian sigma, 0 disables smoothing
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			Format: "pad",
		},
		Plot: PlotConfig{
			Width:      80,
			MaxSamples: 20000,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// LoadOrDefault loads the configuration from path, or returns the defaults
// when path is empty or does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate performs validation of the configuration
func (c *Config) Validate() error {
	if err := c.Convert.Validate(); err != nil {
		return fmt.Errorf("convert config: %w", err)
	}

	if err := c.Plot.Validate(); err != nil {
		return fmt.Errorf("plot config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates convert configuration
func (v *ConvertConfig) Validate() error {
	validFormats := map[string]bool{"pad": true, "signal": true}
	if !validFormats[v.Format] {
		return fmt.Errorf("format must be 'pad' or 'signal', got '%s'", v.Format)
	}

	return nil
}

// Validate validates plot configuration
func (p *PlotConfig) Validate() error {
	if p.Width < 1 {
		return fmt.Errorf("width must be at least 1 column, got %d", p.Width)
	}

	if p.MaxSamples < 0 {
		return fmt.Errorf("max_samples cannot be negative, got %d", p.MaxSamples)
	}

	if p.SmoothSigma < 0 {
		return fmt.Errorf("smooth_sigma cannot be negative, got %f", p.SmoothSigma)
	}

	return nil
}

// Validate validates logging configuration
func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("level must be one of [debug, info, warn, error], got '%s'", l.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	return nil
}
