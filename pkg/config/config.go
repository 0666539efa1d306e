// Package config holds the render configuration struct and the YAML
// scene-file format, so a scene can be declared without recompiling.
package config

import (
	"fmt"

	"github.com/anthropics/pathtrace/pkg/integrator"
)

// backgroundModeNames maps the YAML/CLI string form to integrator.BackgroundMode.
var backgroundModeNames = map[string]integrator.BackgroundMode{
	"sky":  integrator.BackgroundSky,
	"dark": integrator.BackgroundDark,
}

// RenderConfig is the validated, struct form of every render knob.
type RenderConfig struct {
	ImageWidth, ImageHeight int
	SamplesPerPixel         int
	MaxDepth                int

	FocalLengthMM                 float64
	SensorWidthMM, SensorHeightMM float64

	Gamma          float64
	BackgroundMode integrator.BackgroundMode

	// Aperture/FocusDistance enable the thin-lens extension; Aperture == 0
	// keeps the pinhole model.
	Aperture      float64
	FocusDistance float64

	Seed    int64
	Workers int
}

// Default returns a RenderConfig with the module's baseline knobs: a
// pinhole camera, sky background, gamma 2.2, 16 samples per pixel, max
// depth 8, and Workers left at 0 so render.Capture uses the host's CPU count.
func Default() RenderConfig {
	return RenderConfig{
		ImageWidth: 400, ImageHeight: 225,
		SamplesPerPixel: 16,
		MaxDepth:        8,
		FocalLengthMM:   50, SensorWidthMM: 36, SensorHeightMM: 20.25,
		Gamma:          2.2,
		BackgroundMode: integrator.BackgroundSky,
		Seed:           1,
	}
}

// Validate checks every field against spec.md §7's invariants.
func (c RenderConfig) Validate() error {
	if c.ImageWidth <= 0 || c.ImageHeight <= 0 {
		return fmt.Errorf("config: image dimensions must be positive, got %dx%d", c.ImageWidth, c.ImageHeight)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("config: samples_per_pixel must be >= 1, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("config: max_depth must be >= 1, got %d", c.MaxDepth)
	}
	if c.FocalLengthMM <= 0 {
		return fmt.Errorf("config: focal length must be positive, got %v", c.FocalLengthMM)
	}
	if c.SensorWidthMM <= 0 || c.SensorHeightMM <= 0 {
		return fmt.Errorf("config: sensor dimensions must be positive, got %vx%v", c.SensorWidthMM, c.SensorHeightMM)
	}
	if c.Aperture < 0 {
		return fmt.Errorf("config: aperture must be >= 0, got %v", c.Aperture)
	}
	if c.Aperture > 0 && c.FocusDistance <= 0 {
		return fmt.Errorf("config: focus_distance must be positive when aperture > 0, got %v", c.FocusDistance)
	}
	return nil
}

// ParseBackgroundMode resolves the YAML/CLI string form ("sky", "dark")
// to a integrator.BackgroundMode.
func ParseBackgroundMode(name string) (integrator.BackgroundMode, error) {
	mode, ok := backgroundModeNames[name]
	if !ok {
		return 0, fmt.Errorf("config: unknown background mode %q (want \"sky\" or \"dark\")", name)
	}
	return mode, nil
}
