// Package config provides YAML-based configuration loading for the
// pixel panel and its host loop.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pixelsnake/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for the panel and the game on it.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Snake   SnakeConfig   `yaml:"snake"`
	Display DisplayConfig `yaml:"display"`
}

// GridConfig defines the pixel grid dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines where a new snake starts.
type SnakeConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// DisplayConfig defines how the simulated panel is driven.
type DisplayConfig struct {
	FPS         int         `yaml:"fps"`          // Host frames per second
	BlinkFrames int         `yaml:"blink_frames"` // Frames per blink phase of the apple
	HoldFrames  int         `yaml:"hold_frames"`  // Frames a key press reads as held
	Colors      ColorConfig `yaml:"colors"`
}

// ColorConfig holds lipgloss color strings (ANSI numbers or hex) per pixel category.
type ColorConfig struct {
	Background string `yaml:"background"`
	Apple      string `yaml:"apple"`
	Snake      string `yaml:"snake"`
}

// Validate checks that the configuration can host a game.
func (c Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.Width*c.Grid.Height < 2 {
		return fmt.Errorf("%w: grid %dx%d needs at least two cells", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Snake.StartX < 0 || c.Snake.StartX >= c.Grid.Width ||
		c.Snake.StartY < 0 || c.Snake.StartY >= c.Grid.Height {
		return fmt.Errorf("%w: start (%d, %d) outside %dx%d grid",
			ErrInvalidConfig, c.Snake.StartX, c.Snake.StartY, c.Grid.Width, c.Grid.Height)
	}
	if c.Display.FPS < 1 {
		return fmt.Errorf("%w: fps %d must be at least 1", ErrInvalidConfig, c.Display.FPS)
	}
	if c.Display.BlinkFrames < 1 {
		return fmt.Errorf("%w: blink_frames %d must be at least 1", ErrInvalidConfig, c.Display.BlinkFrames)
	}
	if c.Display.HoldFrames < 1 {
		return fmt.Errorf("%w: hold_frames %d must be at least 1", ErrInvalidConfig, c.Display.HoldFrames)
	}
	return nil
}

// Runtime converts the configuration to the runtime config handed to games.
func (c Config) Runtime(seed uint64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Grid:     core.NewGrid(c.Grid.Width, c.Grid.Height),
		Start:    core.Point{X: c.Snake.StartX, Y: c.Snake.StartY},
		TickRate: c.Display.FPS,
		Seed:     seed,
	}
}
