// Package engine owns the game loop: it samples input, advances the
// simulation one tick at a time, runs the render and LED passes, and sleeps
// until the next tick boundary. It is the only component with wall-clock
// behavior and the only owner of the phase transitions between title,
// playing, and game over.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
	"github.com/badgekit/arcade/internal/registry"
)

// Game-over sequence timing, shared by both games.
const (
	gameOverPause = 500 * time.Millisecond
	flashCount    = 3
	flashInterval = 300 * time.Millisecond
)

// Result flash colors.
var (
	winFlash  = core.RGB(0, 20, 0)
	loseFlash = core.RGB(20, 0, 0)
)

// Controller runs one game on one set of peripherals. The peripherals are
// injected at construction and exclusively owned for the controller's
// lifetime, so no locking is needed around game state.
type Controller struct {
	game      registry.Game
	display   device.Display
	leds      device.LEDs
	buttons   device.Buttons
	backlight device.Backlight
	rt        core.RuntimeConfig
	logger    *log.Logger
}

// New creates a controller for the given game and peripherals.
func New(game registry.Game, d device.Display, l device.LEDs, b device.Buttons, bl device.Backlight, rt core.RuntimeConfig, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		game:      game,
		display:   d,
		leds:      l,
		buttons:   b,
		backlight: bl,
		rt:        rt,
		logger:    logger,
	}
}

// Run cycles through title, playing, and game-over phases until the context
// is canceled or a peripheral fails. Peripheral failures are fatal and
// propagate; the caller decides restart policy.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.backlight.On(); err != nil {
		return fmt.Errorf("engine: backlight on: %w", err)
	}
	//nolint:errcheck // Best-effort on shutdown
	defer c.backlight.Off()

	c.logger.Info("game loop started", "game", c.game.ID())

	for {
		if err := c.titlePhase(ctx); err != nil {
			return err
		}
		if err := c.playPhase(ctx); err != nil {
			return err
		}
	}
}

// titlePhase shows the title screen with dark LEDs and waits for a clean
// press of button A.
func (c *Controller) titlePhase(ctx context.Context) error {
	if err := c.game.DrawTitle(c.display); err != nil {
		return fmt.Errorf("engine: draw title: %w", err)
	}
	c.leds.Clear()
	if err := c.leds.Commit(ctx); err != nil {
		return fmt.Errorf("engine: led commit: %w", err)
	}

	return c.buttons.WaitForPress(ctx, device.ButtonA)
}

// playPhase runs one play session: a fresh game state, a full initial draw,
// then the fixed-tick loop. Each iteration samples input, advances exactly
// one tick, renders the diff for that tick, pushes the LED pattern, and
// sleeps the remainder of the tick period.
func (c *Controller) playPhase(ctx context.Context) error {
	c.game.Reset(c.rt)
	if err := c.game.DrawInit(c.display); err != nil {
		return fmt.Errorf("engine: draw init: %w", err)
	}

	interval := c.game.TickInterval()
	c.logger.Info("session started", "game", c.game.ID(), "tick", interval)

	for {
		c.game.HandleInput(device.Sample(c.buttons))
		c.game.Tick()

		if err := c.game.DrawFrame(c.display); err != nil {
			return fmt.Errorf("engine: draw frame: %w", err)
		}
		c.game.UpdateLEDs(c.leds)
		if err := c.leds.Commit(ctx); err != nil {
			return fmt.Errorf("engine: led commit: %w", err)
		}

		if c.game.State().GameOver {
			return c.gameOverPhase(ctx)
		}

		if err := sleep(ctx, interval); err != nil {
			return err
		}
	}
}

// gameOverPhase pauses briefly, shows the result banner, flashes the LEDs
// green or red, and waits for acknowledgment before returning to the title.
func (c *Controller) gameOverPhase(ctx context.Context) error {
	st := c.game.State()
	c.logger.Info("session ended", "game", c.game.ID(), "score", st.Score, "won", st.Won)

	if err := sleep(ctx, gameOverPause); err != nil {
		return err
	}
	if err := c.game.DrawGameOver(c.display); err != nil {
		return fmt.Errorf("engine: draw game over: %w", err)
	}

	flash := loseFlash
	if st.Won {
		flash = winFlash
	}
	for i := 0; i < flashCount; i++ {
		c.leds.Fill(flash)
		if err := c.leds.Commit(ctx); err != nil {
			return fmt.Errorf("engine: led commit: %w", err)
		}
		if err := sleep(ctx, flashInterval); err != nil {
			return err
		}
		c.leds.Clear()
		if err := c.leds.Commit(ctx); err != nil {
			return fmt.Errorf("engine: led commit: %w", err)
		}
		if err := sleep(ctx, flashInterval); err != nil {
			return err
		}
	}

	return c.buttons.WaitForPress(ctx, device.ButtonA)
}

// sleep blocks for the duration or until the context is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
