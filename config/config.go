// Package config holds the tunable parameters of the game, loadable from a
// YAML file.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window Window `yaml:"window"`
	Field  Field  `yaml:"field"`
	Game   Game   `yaml:"game"`
	Camera Camera `yaml:"camera"`
}

type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
}

type Field struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`
}

type Game struct {
	TickSeconds   float64 `yaml:"tick_seconds"`
	QueueCapacity int     `yaml:"queue_capacity"`
}

type Camera struct {
	DragSensitivity   float32 `yaml:"drag_sensitivity"`
	ScrollSensitivity float32 `yaml:"scroll_sensitivity"`
	MinRadius         float32 `yaml:"min_radius"`
	MaxRadius         float32 `yaml:"max_radius"`
	InitialPolar      float32 `yaml:"initial_polar"`
	InitialAzimuth    float32 `yaml:"initial_azimuth"`
	InitialRadius     float32 `yaml:"initial_radius"`
	FovDegrees        float32 `yaml:"fov_degrees"`
}

// Default returns the built-in configuration, matching the classic field
// size and timings.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "Snake3D (Controls: W/A/S/D/Space/Shift/Mouse)",
			Width:     940,
			Height:    520,
			TargetFPS: 60,
		},
		Field: Field{
			Width:  8,
			Height: 8,
			Depth:  8,
		},
		Game: Game{
			TickSeconds:   0.2,
			QueueCapacity: 1024,
		},
		Camera: Camera{
			DragSensitivity:   0.01,
			ScrollSensitivity: 0.1,
			MinRadius:         0.1,
			MaxRadius:         50.0,
			InitialPolar:      math.Pi / 2,
			InitialAzimuth:    math.Pi / 4,
			InitialRadius:     15.0,
			FovDegrees:        45.0,
		},
	}
}

// Load reads path and overlays it on the defaults.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Field.Width < 2 || c.Field.Height < 2 || c.Field.Depth < 2 {
		return fmt.Errorf("field dimensions must be at least 2, got %dx%dx%d",
			c.Field.Width, c.Field.Height, c.Field.Depth)
	}
	if c.Game.TickSeconds <= 0 {
		return fmt.Errorf("tick_seconds must be positive, got %v", c.Game.TickSeconds)
	}
	if c.Camera.MinRadius <= 0 || c.Camera.MaxRadius < c.Camera.MinRadius {
		return fmt.Errorf("invalid camera radius range [%v, %v]",
			c.Camera.MinRadius, c.Camera.MaxRadius)
	}
	return nil
}
