package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/badgekit/arcade/internal/platform/term"
	"github.com/badgekit/arcade/internal/registry"
)

var flagScale int

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Space/Enter  - A button (launch, start, restart)
  Q/Esc/Ctrl+C - Quit

The frame is downscaled automatically to fit the terminal; pass --scale to
force a specific factor.

Examples:
  arcade play breakout
  arcade play snake --seed 1234
  arcade play breakout --scale 2
  arcade play snake --config ./my-arcade.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagScale, "scale", 0, "Downsampling factor for the terminal frame (0 = auto)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	rt, err := loadRuntime()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	scale := flagScale
	if scale <= 0 {
		scale = 1
		if w, h, termErr := xterm.GetSize(int(os.Stdout.Fd())); termErr == nil {
			scale = term.ScaleFor(rt.DisplayW, rt.DisplayH, w, h)
		}
	}

	// Stderr belongs to the TUI while playing, so engine logs are dropped.
	logger := log.New(io.Discard)

	if runErr := term.Run(game, rt, logger, scale); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
