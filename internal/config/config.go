// Package config provides YAML-based configuration loading for the arcade
// engine: hardware surface dimensions and per-game tuning.
package config

// Config is the top-level arcade configuration.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	LEDs     LEDConfig      `yaml:"leds"`
	Breakout BreakoutConfig `yaml:"breakout"`
	Snake    SnakeConfig    `yaml:"snake"`
}

// DisplayConfig describes the pixel display.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LEDConfig describes the LED bank.
type LEDConfig struct {
	BarCount int `yaml:"bar_count"` // LEDs per bar; the bank has two bars
}

// BreakoutConfig contains tuning for Logo Breakout.
type BreakoutConfig struct {
	TickMS        int    `yaml:"tick_ms"`
	PaddleWidth   int    `yaml:"paddle_width"`
	PaddleHeight  int    `yaml:"paddle_height"`
	PaddleSpeed   int    `yaml:"paddle_speed"`
	BallSize      int    `yaml:"ball_size"`
	Lives         int    `yaml:"lives"`
	LEDFlashTicks int    `yaml:"led_flash_ticks"`
	Logo          string `yaml:"logo"` // optional overlay image path (PNG/GIF)
}

// SnakeConfig contains tuning for Snake.
type SnakeConfig struct {
	TickMS   int    `yaml:"tick_ms"`
	CellSize int    `yaml:"cell_size"`
	Seed     uint32 `yaml:"seed"` // 0 means use the engine default seed
}
