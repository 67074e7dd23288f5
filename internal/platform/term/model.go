// Package term runs the arcade on a terminal: the framebuffer renders as
// half-block pixels, key events pulse the button pad, and the LED strip shows
// as a line of dots. The engine runs on its own goroutine exactly as it would
// against real hardware; this package only adapts the peripherals.
package term

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
	"github.com/badgekit/arcade/internal/engine"
	"github.com/badgekit/arcade/internal/registry"
)

// keyHold is how long a key event keeps its button pressed. Terminals report
// presses but not releases; auto-repeat refreshes the pulse while a key is
// held, so this only needs to outlast the repeat interval.
const keyHold = 150 * time.Millisecond

// engineStoppedMsg reports that the engine goroutine returned.
type engineStoppedMsg struct {
	err error
}

// Model is the Bubble Tea model bridging the terminal and the engine.
type Model struct {
	fb     *device.Framebuffer
	leds   *device.LEDStrip
	pad    *device.ButtonPad
	keys   *KeyMapper
	ctrl   *engine.Controller
	ctx    context.Context
	cancel context.CancelFunc
	errCh  chan error

	scale    int
	quitting bool
	err      error
}

// NewModel creates a model with fresh in-memory peripherals for the game.
func NewModel(game registry.Game, rt core.RuntimeConfig, logger *log.Logger, scale int) Model {
	fb := device.NewFramebuffer(rt.DisplayW, rt.DisplayH)
	leds := device.NewLEDStrip(rt.LEDBars)
	pad := device.NewButtonPad()
	ctrl := engine.New(game, fb, leds, pad, device.NopBacklight{}, rt, logger)
	ctx, cancel := context.WithCancel(context.Background())

	if scale < 1 {
		scale = 1
	}

	return Model{
		fb:     fb,
		leds:   leds,
		pad:    pad,
		keys:   NewKeyMapper(),
		ctrl:   ctrl,
		ctx:    ctx,
		cancel: cancel,
		errCh:  make(chan error, 1),
		scale:  scale,
	}
}

// Init starts the engine goroutine and the repaint loop.
func (m Model) Init() tea.Cmd {
	go func() {
		m.errCh <- m.ctrl.Run(m.ctx)
	}()
	return tea.Batch(frameCmd(), waitEngine(m.errCh))
}

// waitEngine delivers the engine's exit as a message.
func waitEngine(errCh chan error) tea.Cmd {
	return func() tea.Msg {
		return engineStoppedMsg{err: <-errCh}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameMsg:
		return m, frameCmd()

	case engineStoppedMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.err = msg.err
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey maps keyboard input onto the button pad.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	button, ok, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	}
	if ok {
		m.pad.Pulse(button, keyHold)
	}
	return m, nil
}

// View renders the framebuffer and LED strip.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderFrame(m.fb, m.leds, m.scale)
}

// Err returns the engine failure that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the given game and blocks until the
// player quits or the engine fails.
func Run(game registry.Game, rt core.RuntimeConfig, logger *log.Logger, scale int) error {
	model := NewModel(game, rt, logger, scale)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
