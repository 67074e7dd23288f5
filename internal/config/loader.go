package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the arcade configuration.
// Search order: customPath -> ~/.arcade/arcade.yaml -> ./configs/arcade.yaml
// -> embedded default. Only an explicitly requested path reports errors;
// fallback locations are skipped silently.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return applyFallbacks(cfg), nil
	}

	if userPath := userConfigPath("arcade.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return applyFallbacks(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/arcade.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return applyFallbacks(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultArcadeYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return applyFallbacks(cfg), nil
}

// userConfigPath returns the path of a config file under ~/.arcade, or ""
// when the home directory cannot be resolved.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", name)
}

// applyFallbacks fills zero values with defaults so a partial YAML file only
// overrides what it mentions.
func applyFallbacks(cfg Config) Config {
	def := Default()
	if cfg.Display.Width <= 0 {
		cfg.Display.Width = def.Display.Width
	}
	if cfg.Display.Height <= 0 {
		cfg.Display.Height = def.Display.Height
	}
	if cfg.LEDs.BarCount <= 0 {
		cfg.LEDs.BarCount = def.LEDs.BarCount
	}
	if cfg.Breakout.TickMS <= 0 {
		cfg.Breakout.TickMS = def.Breakout.TickMS
	}
	if cfg.Breakout.PaddleWidth <= 0 {
		cfg.Breakout.PaddleWidth = def.Breakout.PaddleWidth
	}
	if cfg.Breakout.PaddleHeight <= 0 {
		cfg.Breakout.PaddleHeight = def.Breakout.PaddleHeight
	}
	if cfg.Breakout.PaddleSpeed <= 0 {
		cfg.Breakout.PaddleSpeed = def.Breakout.PaddleSpeed
	}
	if cfg.Breakout.BallSize <= 0 {
		cfg.Breakout.BallSize = def.Breakout.BallSize
	}
	if cfg.Breakout.Lives <= 0 {
		cfg.Breakout.Lives = def.Breakout.Lives
	}
	if cfg.Breakout.LEDFlashTicks <= 0 {
		cfg.Breakout.LEDFlashTicks = def.Breakout.LEDFlashTicks
	}
	if cfg.Snake.TickMS <= 0 {
		cfg.Snake.TickMS = def.Snake.TickMS
	}
	if cfg.Snake.CellSize <= 0 {
		cfg.Snake.CellSize = def.Snake.CellSize
	}
	return cfg
}
