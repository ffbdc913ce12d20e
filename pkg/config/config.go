// Package config provides configuration loading and defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/y4mgif/pkg/source"
)

// Config represents the full configuration for a conversion.
type Config struct {
	// Input/Output
	InputPath  string `yaml:"input"`
	OutputPath string `yaml:"output"`

	// Timing
	FPS   int     `yaml:"fps"`
	Speed float64 `yaml:"speed"`

	// Color
	Matrix string `yaml:"matrix"` // "", "bt601" or "bt709"

	// Output
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	LoopCount int  `yaml:"loop"`
	Stamp     bool `yaml:"stamp"`

	// Logging
	LogLevel string `yaml:"log_level"`
	Quiet    bool   `yaml:"quiet"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		FPS:      source.DefaultFPS,
		Speed:    1.0,
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate rejects values the pipeline cannot work with.
func (c Config) Validate() error {
	if c.FPS < 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Speed < 0 {
		return fmt.Errorf("speed must be positive, got %f", c.Speed)
	}
	switch c.Matrix {
	case "", "bt601", "bt709":
	default:
		return fmt.Errorf("unknown matrix %q (want bt601 or bt709)", c.Matrix)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("output size must not be negative, got %dx%d", c.Width, c.Height)
	}
	return nil
}
