// Package config provides YAML-based scene configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-scene/internal/assets"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Asset ids the game scene looks up in its registry.
const (
	AssetLoading = "loading"
	AssetHBar    = "hbar"
	AssetFlappy  = "flappy"
	AssetTop     = "top"
	AssetBottom  = "bottom"
	AssetExit    = "exit"
)

// Asset ids the menu scene looks up in its registry.
const (
	AssetTitle = "title"
	AssetPlay  = "play"
)

// FlappyConfig contains all configuration for the game scene.
type FlappyConfig struct {
	Canvas    Canvas          `yaml:"canvas"`
	Loading   LoadingConfig   `yaml:"loading"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player"`
	Exit      ExitConfig      `yaml:"exit"`
	Assets    assets.Table    `yaml:"assets"`
}

// Canvas is the logical drawing area in canvas units.
type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LoadingConfig controls the loading phase.
type LoadingConfig struct {
	MinSeconds float64 `yaml:"min_seconds"` // Loading screen is shown at least this long
}

// FlappyPhysics defines the per-update motion steps.
// Steps are applied once per Update call, not scaled by dt.
type FlappyPhysics struct {
	ScrollSpeed  float64 `yaml:"scroll_speed"`
	RiseStep     float64 `yaml:"rise_step"`
	FallExtra    float64 `yaml:"fall_extra"`    // Added to RiseStep when falling
	BoostSeconds float64 `yaml:"boost_seconds"` // How long one tap keeps the player rising
}

// FlappyObstacles defines obstacle pair placement.
type FlappyObstacles struct {
	GapOffset  float64 `yaml:"gap_offset"`  // Distance from the pair center to each obstacle anchor
	CenterBand int     `yaml:"center_band"` // Pair center is drawn from h/2 +- band
}

// FlappyPlayer defines player placement.
type FlappyPlayer struct {
	Scale   float64 `yaml:"scale"`
	XFactor float64 `yaml:"x_factor"` // Player x = scaled width * XFactor
}

// ExitConfig places the exit affordance relative to the top-right corner.
type ExitConfig struct {
	Margin float64 `yaml:"margin"`
	Scale  float64 `yaml:"scale"`
}

// MenuConfig contains all configuration for the menu scene.
type MenuConfig struct {
	Canvas  Canvas        `yaml:"canvas"`
	Loading LoadingConfig `yaml:"loading"`
	Assets  assets.Table  `yaml:"assets"`
}

// Validate checks the configuration for values the game scene cannot run with.
func (c FlappyConfig) Validate() error {
	if err := validateCanvas(c.Canvas); err != nil {
		return err
	}

	nonNegative := map[string]float64{
		"loading.min_seconds":   c.Loading.MinSeconds,
		"physics.scroll_speed":  c.Physics.ScrollSpeed,
		"physics.rise_step":     c.Physics.RiseStep,
		"physics.fall_extra":    c.Physics.FallExtra,
		"physics.boost_seconds": c.Physics.BoostSeconds,
	}
	for name, v := range nonNegative {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite non-negative number, got %v", ErrInvalidConfig, name, v)
		}
	}

	positive := map[string]float64{
		"obstacles.gap_offset": c.Obstacles.GapOffset,
		"player.scale":         c.Player.Scale,
		"exit.scale":           c.Exit.Scale,
	}
	for name, v := range positive {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v)
		}
	}

	if c.Obstacles.CenterBand <= 0 {
		return fmt.Errorf("%w: obstacles.center_band must be positive, got %d", ErrInvalidConfig, c.Obstacles.CenterBand)
	}

	return validateAssets(c.Assets, AssetLoading, AssetHBar, AssetFlappy, AssetTop, AssetBottom, AssetExit)
}

// Validate checks the menu configuration.
func (c MenuConfig) Validate() error {
	if err := validateCanvas(c.Canvas); err != nil {
		return err
	}
	if c.Loading.MinSeconds < 0 {
		return fmt.Errorf("%w: loading.min_seconds must not be negative", ErrInvalidConfig)
	}
	return validateAssets(c.Assets, AssetTitle, AssetPlay)
}

func validateCanvas(c Canvas) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas must have a positive size, got %vx%v", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

func validateAssets(table assets.Table, required ...string) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	declared := make(map[string]bool, len(table))
	for _, id := range table.IDs() {
		declared[id] = true
	}
	for _, id := range required {
		if !declared[id] {
			return fmt.Errorf("%w: asset %q is not declared", ErrInvalidConfig, id)
		}
	}
	return nil
}
