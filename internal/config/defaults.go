package config

import (
	_ "embed"
)

//go:embed defaults/pixelsnake.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration for the 8x8 panel.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  8,
			Height: 8,
		},
		Snake: SnakeConfig{
			StartX: 4,
			StartY: 4,
		},
		Display: DisplayConfig{
			FPS:         6,
			BlinkFrames: 3,
			HoldFrames:  1,
			Colors: ColorConfig{
				Background: "236",
				Apple:      "9",
				Snake:      "10",
			},
		},
	}
}
