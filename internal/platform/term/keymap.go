package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/badgekit/arcade/internal/device"
)

// KeyMapper translates Bubble Tea key messages to badge buttons.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a button press.
// Returns the button, whether a button matched, and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (button device.Button, ok bool, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q", "esc":
		return 0, false, true
	}

	switch key {
	case "up", "w", "k":
		return device.ButtonUp, true, false
	case "down", "s", "j":
		return device.ButtonDown, true, false
	case "left", "a", "h":
		return device.ButtonLeft, true, false
	case "right", "d", "l":
		return device.ButtonRight, true, false
	case " ", "enter":
		return device.ButtonA, true, false
	}

	return 0, false, false
}
