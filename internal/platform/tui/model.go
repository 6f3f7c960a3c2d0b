// Package tui provides the Bubble Tea integration for the game. It feeds key
// presses into the button lines, refreshes the framebuffer view at a fixed
// rate, and hosts the scoreboard and the SSH surface.
package tui

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/dermotk/heart-chase/internal/audio"
	"github.com/dermotk/heart-chase/internal/clock"
	"github.com/dermotk/heart-chase/internal/config"
	"github.com/dermotk/heart-chase/internal/display"
	"github.com/dermotk/heart-chase/internal/game"
	"github.com/dermotk/heart-chase/internal/input"
	"github.com/dermotk/heart-chase/internal/storage"
)

// FrameMsg triggers a view refresh.
type FrameMsg time.Time

const frameRate = 30

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model runs one game session: the engine in its own goroutine against the
// millisecond clock, with this model as its keyboard and display.
type Model struct {
	clk     *clock.Clock
	frame   *display.Frame
	buttons *input.Buttons
	serial  *input.Serial
	engine  *game.Engine
	keys    *KeyMapper

	start    *sync.Once
	quitting bool
	width    int
	height   int
}

// NewModel wires a session. The sink carries tones; pass audio.Muted{} for
// silent sessions. The store, when non-nil, receives finished results.
func NewModel(cfg config.Config, sink audio.Sink, store *storage.Store, logger *log.Logger, seed int64) Model {
	clk := clock.New()
	frame := display.NewFrame()
	buttons := input.NewButtons(clk, cfg.Input.HoldMS)
	serial := &input.Serial{}

	eng := game.New(clk, frame, buttons, serial, sink, cfg, logger, seed)
	if store != nil {
		eng.OnResult = func(r game.Result) {
			if _, err := store.SaveResult(r); err != nil {
				logger.Warn("could not save result", "error", err)
			}
		}
	}

	return Model{
		clk:     clk,
		frame:   frame,
		buttons: buttons,
		serial:  serial,
		engine:  eng,
		keys:    NewKeyMapper(),
		start:   &sync.Once{},
	}
}

// Init starts the clock and the engine goroutine, then begins the refresh
// loop.
func (m Model) Init() tea.Cmd {
	m.start.Do(func() {
		m.clk.Start()
		go m.engine.Run()
	})
	return frameTick()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		btn, serial, quit := m.keys.MapKey(msg)
		if quit {
			m.quitting = true
			m.Shutdown()
			return m, tea.Quit
		}
		if btn >= 0 {
			m.buttons.Press(btn)
		}
		if serial != 0 {
			m.serial.Put(serial)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FrameMsg:
		return m, frameTick()
	}

	return m, nil
}

// View renders the framebuffer plus a one-line status footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen := RenderFrame(m.frame.Snapshot())
	status := statusStyle.Render(fmt.Sprintf(
		"%s | level %d | hearts %d | arrows/wasd move, enter confirm, q quit",
		m.engine.State(), m.engine.Level(), m.engine.HeartsCollected(),
	))
	content := screen + "\n" + status

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Shutdown stops the engine and the clock. Safe to call more than once.
func (m Model) Shutdown() {
	m.engine.Stop()
	m.clk.Stop()
}

// Run starts a local Bubble Tea program for one session and blocks until it
// exits.
func Run(cfg config.Config, sink audio.Sink, store *storage.Store, logger *log.Logger, seed int64) error {
	model := NewModel(cfg, sink, store, logger, seed)
	defer model.Shutdown()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
