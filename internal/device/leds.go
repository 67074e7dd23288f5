package device

import (
	"context"
	"sync"

	"github.com/badgekit/arcade/internal/core"
)

// LEDStrip is an in-memory LEDs implementation. The physical bank is two
// symmetric bars; this mirrors that addressing so the feedback mappers can be
// tested and the terminal platform can visualize the strip.
type LEDStrip struct {
	mu        sync.RWMutex
	bars      int
	left      []core.Color
	right     []core.Color
	committed []core.Color // left then right, as of the last Commit
	commits   uint64
}

// NewLEDStrip creates a dark strip with the given number of LEDs per bar.
func NewLEDStrip(bars int) *LEDStrip {
	return &LEDStrip{
		bars:      bars,
		left:      make([]core.Color, bars),
		right:     make([]core.Color, bars),
		committed: make([]core.Color, bars*2),
	}
}

// BarCount returns the number of LEDs in each bar.
func (s *LEDStrip) BarCount() int {
	return s.bars
}

// SetLeftBar stages colors for the left bar. Extra entries are ignored.
func (s *LEDStrip) SetLeftBar(colors []core.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.left, colors)
}

// SetRightBar stages colors for the right bar. Extra entries are ignored.
func (s *LEDStrip) SetRightBar(colors []core.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.right, colors)
}

// Fill stages the same color on every LED.
func (s *LEDStrip) Fill(c core.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.left {
		s.left[i] = c
	}
	for i := range s.right {
		s.right[i] = c
	}
}

// Clear stages all LEDs dark.
func (s *LEDStrip) Clear() {
	s.Fill(core.Black)
}

// Commit pushes the staged state to the strip. The in-memory strip flips a
// committed buffer; a hardware strip would kick off its bus transfer here.
func (s *LEDStrip) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.committed[:s.bars], s.left)
	copy(s.committed[s.bars:], s.right)
	s.commits++
	return nil
}

// Committed returns the strip state as of the last Commit, left bar first.
func (s *LEDStrip) Committed() []core.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Color, len(s.committed))
	copy(out, s.committed)
	return out
}

// Commits returns how many times the strip has been flushed.
func (s *LEDStrip) Commits() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commits
}
