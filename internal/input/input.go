// Package input models the five-button pad and the serial byte port as seen
// by the game. Terminals report key presses but not releases, so each press
// holds its button line for a configured window of clock time; sampling after
// the window reads the button as released, which lets wait-for-release loops
// terminate.
package input

import (
	"sync"

	"github.com/dermotk/heart-chase/internal/clock"
)

// Button identifies one input line.
type Button int

const (
	Up Button = iota
	Down
	Left
	Right
	Select
	buttonCount
)

func (b Button) String() string {
	switch b {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Select:
		return "select"
	}
	return "unknown"
}

// DefaultHold is the press window in clock ticks.
const DefaultHold uint32 = 120

// Buttons tracks press windows for each line. Press is called from the UI
// goroutine, Pressed from the engine goroutine.
type Buttons struct {
	clk  *clock.Clock
	hold uint32

	mu        sync.Mutex
	pressedAt [buttonCount]uint32
	held      [buttonCount]bool
}

// NewButtons builds a pad sampled against clk. A hold of 0 uses DefaultHold.
func NewButtons(clk *clock.Clock, hold uint32) *Buttons {
	if hold == 0 {
		hold = DefaultHold
	}
	return &Buttons{clk: clk, hold: hold}
}

// Press marks a button down, restarting its hold window.
func (b *Buttons) Press(btn Button) {
	if btn < 0 || btn >= buttonCount {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pressedAt[btn] = b.clk.Now()
	b.held[btn] = true
}

// Pressed samples a button line. It reads true from the press until the hold
// window expires.
func (b *Buttons) Pressed(btn Button) bool {
	if btn < 0 || btn >= buttonCount {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.held[btn] {
		return false
	}
	if b.clk.Since(b.pressedAt[btn]) >= b.hold {
		b.held[btn] = false
		return false
	}
	return true
}

// Any reports whether any button line currently samples as pressed.
func (b *Buttons) Any() bool {
	for btn := Button(0); btn < buttonCount; btn++ {
		if b.Pressed(btn) {
			return true
		}
	}
	return false
}

// Serial is a one-byte mailbox standing in for a polled serial port. Writes
// overwrite; Poll consumes.
type Serial struct {
	mu   sync.Mutex
	ch   byte
	full bool
}

// Put stores an incoming byte, replacing any unread one.
func (s *Serial) Put(ch byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ch = ch
	s.full = true
}

// Poll returns the pending byte, if any, and clears it.
func (s *Serial) Poll() (byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.full {
		return 0, false
	}
	s.full = false
	return s.ch, true
}
