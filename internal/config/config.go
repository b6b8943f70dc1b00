// Package config loads morphbutton settings from the environment.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivier-w/morphbutton/internal/morph"
)

// Config describes the runtime settings.
type Config struct {
	FPS      int    `env:"MORPHBUTTON_FPS" envDefault:"60"`
	Easing   string `env:"MORPHBUTTON_EASING" envDefault:"ease-in-out"`
	Tint     string `env:"MORPHBUTTON_TINT" envDefault:"#FF5F1F"`
	Rows     int    `env:"MORPHBUTTON_ROWS" envDefault:"8"`
	LogFile  string `env:"MORPHBUTTON_LOG_FILE"`
	LogLevel string `env:"MORPHBUTTON_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.FPS <= 0 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("MORPHBUTTON_FPS must be between 1 and 240, got %d", c.FPS))
	}
	if c.Rows < 2 {
		errs = append(errs, fmt.Errorf("MORPHBUTTON_ROWS must be at least 2, got %d", c.Rows))
	}
	if _, err := c.Curve(); err != nil {
		errs = append(errs, fmt.Errorf("MORPHBUTTON_EASING: %w", err))
	}
	if _, err := c.TintColor(); err != nil {
		errs = append(errs, fmt.Errorf("MORPHBUTTON_TINT: %w", err))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("MORPHBUTTON_LOG_LEVEL: %w", err))
	}
	return errors.Join(errs...)
}

// Curve returns the configured easing curve.
func (c Config) Curve() (morph.Curve, error) {
	return morph.ParseCurve(c.Easing)
}

// TintColor parses the configured hex tint.
func (c Config) TintColor() (color.Color, error) {
	col, err := colorful.Hex(c.Tint)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", c.Tint, err)
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Level parses the configured log level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return l, nil
}
