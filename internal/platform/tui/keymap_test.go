package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dermotk/heart-chase/internal/input"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{}
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		expected input.Button
	}{
		{"up", input.Up}, {"w", input.Up}, {"k", input.Up},
		{"down", input.Down}, {"s", input.Down}, {"j", input.Down},
		{"left", input.Left}, {"a", input.Left}, {"h", input.Left},
		{"right", input.Right}, {"d", input.Right}, {"l", input.Right},
		{"enter", input.Select},
	}
	for _, tc := range tests {
		btn, serial, quit := km.MapKey(keyMsg(tc.key))
		if quit || serial != 0 || btn != tc.expected {
			t.Errorf("MapKey(%q) = (%v, %q, %v), expected button %v", tc.key, btn, serial, quit, tc.expected)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	for _, k := range []string{"q", "ctrl+c"} {
		if _, _, quit := km.MapKey(keyMsg(k)); !quit {
			t.Errorf("MapKey(%q) did not request quit", k)
		}
	}
}

func TestMapKeySerialOverride(t *testing.T) {
	km := NewKeyMapper()
	btn, serial, quit := km.MapKey(keyMsg("r"))
	if quit || btn >= 0 || serial != 'r' {
		t.Errorf("MapKey(r) = (%v, %q, %v), expected the serial byte 'r'", btn, serial, quit)
	}
}

func TestMapKeyUnbound(t *testing.T) {
	km := NewKeyMapper()
	btn, serial, quit := km.MapKey(keyMsg("x"))
	if quit || btn >= 0 || serial != 0 {
		t.Errorf("MapKey(x) = (%v, %q, %v), expected no effect", btn, serial, quit)
	}
}
