// arcade runs the badge arcade games in a terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a custom arcade.yaml
//	--seed <value>   - RNG seed for reproducible gameplay (0 = per-game default)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/badgekit/arcade/internal/config"
	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/games/breakout"
	"github.com/badgekit/arcade/internal/games/snake"
)

var (
	// Global flags
	flagConfig string
	flagSeed   uint32
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Badge arcade - Play the badge games in your terminal",
	Long: `Badge arcade runs the handheld badge's games on a terminal: the
320x170 pixel display renders as half-block characters and the LED bank
shows as a line of dots.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play breakout
  arcade play snake --seed 1234
  arcade serve --ssh :2222 --game snake`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arcade.yaml")
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "RNG seed (0 = per-game default)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadRuntime loads the arcade config, pushes per-game tuning into the game
// packages, and returns the runtime geometry for the session.
func loadRuntime() (core.RuntimeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	breakout.SetConfig(cfg.Breakout)
	snake.SetConfig(cfg.Snake)

	return core.RuntimeConfig{
		DisplayW: cfg.Display.Width,
		DisplayH: cfg.Display.Height,
		LEDBars:  cfg.LEDs.BarCount,
		Seed:     flagSeed,
	}, nil
}
