// Package config loads and validates the osd-cat configuration file. The
// file is YAML; every field has a command-line flag counterpart and flags
// win over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-xosd/pkg/xosd"
)

// Config holds the display settings for osd-cat.
type Config struct {
	// Lines is the number of lines the OSD window can show at once.
	Lines int `yaml:"lines"`

	// Font is an X logical font description or alias.
	Font string `yaml:"font"`

	// Color is the text colour name from X11's rgb.txt.
	Color string `yaml:"color"`

	// ShadowColor and OutlineColor style the text decoration.
	ShadowColor  string `yaml:"shadow_color"`
	OutlineColor string `yaml:"outline_color"`

	// ShadowOffset and OutlineOffset are decoration sizes in pixels.
	ShadowOffset  int `yaml:"shadow_offset"`
	OutlineOffset int `yaml:"outline_offset"`

	// HorizontalOffset and VerticalOffset shift the window from its
	// anchor, in pixels.
	HorizontalOffset int `yaml:"horizontal_offset"`
	VerticalOffset   int `yaml:"vertical_offset"`

	// VerticalAlign is one of top, middle, bottom.
	VerticalAlign string `yaml:"vertical_align"`

	// HorizontalAlign is one of left, center, right.
	HorizontalAlign string `yaml:"horizontal_align"`

	// Timeout is how long each display stays up, in seconds. Negative
	// disables the timeout.
	Timeout int `yaml:"timeout"`

	// BarLength fixes the bar/slider width as a percentage of the display,
	// 1-100. Zero lets the library choose.
	BarLength int `yaml:"bar_length"`
}

// Default returns the settings osd-cat uses when no file or flags override
// them.
func Default() Config {
	return Config{
		Lines:           5,
		Timeout:         3,
		VerticalAlign:   "top",
		HorizontalAlign: "left",
	}
}

// Load reads a YAML config file on top of the defaults and validates the
// result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges and enum fields. It is also called after
// flag overrides are applied.
func (c *Config) Validate() error {
	if c.Lines < 1 {
		return fmt.Errorf("config: lines must be at least 1, got %d", c.Lines)
	}
	if c.BarLength < 0 || c.BarLength > 100 {
		return fmt.Errorf("config: bar_length must be between 0 and 100, got %d", c.BarLength)
	}
	if _, err := xosd.ParseVerticalAlign(c.VerticalAlign); err != nil {
		return fmt.Errorf("config: vertical_align: %w", err)
	}
	if _, err := xosd.ParseHorizontalAlign(c.HorizontalAlign); err != nil {
		return fmt.Errorf("config: horizontal_align: %w", err)
	}
	return nil
}

// Options converts the configuration into construction options for the OSD
// window. Validate must have passed first.
func (c *Config) Options() (*xosd.Options, error) {
	valign, err := xosd.ParseVerticalAlign(c.VerticalAlign)
	if err != nil {
		return nil, err
	}
	halign, err := xosd.ParseHorizontalAlign(c.HorizontalAlign)
	if err != nil {
		return nil, err
	}

	opts := &xosd.Options{
		Font:             c.Font,
		Color:            c.Color,
		ShadowColor:      c.ShadowColor,
		OutlineColor:     c.OutlineColor,
		Timeout:          c.Timeout,
		HasTimeout:       true,
		ShadowOffset:     c.ShadowOffset,
		OutlineOffset:    c.OutlineOffset,
		HorizontalOffset: c.HorizontalOffset,
		VerticalOffset:   c.VerticalOffset,
		VerticalAlign:    &valign,
		HorizontalAlign:  &halign,
	}
	if c.BarLength > 0 {
		length := c.BarLength
		opts.BarLength = &length
	}
	return opts, nil
}
