package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dermotk/heart-chase/internal/input"
)

// KeyMapper translates Bubble Tea key messages to button lines.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a button press. Returns the button, a
// serial byte (0 if none), and whether it's a quit request. A key press holds
// its button line for the configured window; terminals give no release
// events.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (btn input.Button, serial byte, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return -1, 0, true
	case "up", "w", "k":
		return input.Up, 0, false
	case "down", "s", "j":
		return input.Down, 0, false
	case "left", "a", "h":
		return input.Left, 0, false
	case "right", "d", "l":
		return input.Right, 0, false
	case "enter", " ":
		return input.Select, 0, false
	case "r":
		// The serial override: 'r' confirms and nudges right, as on the
		// original serial port.
		return -1, 'r', false
	}
	return -1, 0, false
}
