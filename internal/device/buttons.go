package device

import (
	"context"
	"sync"
	"time"
)

// ButtonPad is an in-memory Buttons implementation. The platform layer feeds
// it presses (terminal key events have no release, so presses decay after a
// short pulse) and the engine reads levels and waits for edges.
type ButtonPad struct {
	mu      sync.Mutex
	levels  [buttonCount]bool
	waiters [buttonCount][]chan struct{}
	timers  [buttonCount]*time.Timer
}

// NewButtonPad creates a pad with all buttons released.
func NewButtonPad() *ButtonPad {
	return &ButtonPad{}
}

// Pressed returns the current level of the button.
func (p *ButtonPad) Pressed(b Button) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.levels[b]
}

// Press sets the button level and wakes anyone blocked in WaitForPress.
// The platform debounces before calling this, so every call is a clean edge.
func (p *ButtonPad) Press(b Button) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.levels[b] = true
	for _, ch := range p.waiters[b] {
		close(ch)
	}
	p.waiters[b] = nil
}

// Release clears the button level.
func (p *ButtonPad) Release(b Button) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.levels[b] = false
}

// Pulse presses the button and schedules its release. A repeated pulse
// extends the existing hold instead of stacking releases.
func (p *ButtonPad) Pulse(b Button, hold time.Duration) {
	p.Press(b)
	p.mu.Lock()
	defer p.mu.Unlock()
	if t := p.timers[b]; t != nil {
		t.Stop()
	}
	p.timers[b] = time.AfterFunc(hold, func() { p.Release(b) })
}

// WaitForPress blocks until the button sees a press edge or the context is
// done. A button already held does not satisfy the wait; only a fresh edge
// does, matching the debounced edge-wait primitive on the badge.
func (p *ButtonPad) WaitForPress(ctx context.Context, b Button) error {
	p.mu.Lock()
	ch := make(chan struct{})
	p.waiters[b] = append(p.waiters[b], ch)
	p.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		p.removeWaiter(b, ch)
		return ctx.Err()
	}
}

// removeWaiter drops a cancelled wait's channel so abandoned waits do not
// accumulate between presses.
func (p *ButtonPad) removeWaiter(b Button, ch chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, w := range p.waiters[b] {
		if w == ch {
			p.waiters[b] = append(p.waiters[b][:i], p.waiters[b][i+1:]...)
			return
		}
	}
}
