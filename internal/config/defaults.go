package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// Default returns the hardcoded default configuration, matching the badge
// hardware and the original game tuning.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:  320,
			Height: 170,
		},
		LEDs: LEDConfig{
			BarCount: 5,
		},
		Breakout: BreakoutConfig{
			TickMS:        20,
			PaddleWidth:   40,
			PaddleHeight:  6,
			PaddleSpeed:   6,
			BallSize:      4,
			Lives:         3,
			LEDFlashTicks: 6,
		},
		Snake: SnakeConfig{
			TickMS:   100,
			CellSize: 10,
			Seed:     0,
		},
	}
}
