package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dermotk/heart-chase/internal/storage"
)

const maxResults = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "wins/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

// ScoreboardModel shows recorded sessions: recent runs, or wins ranked by
// completion time.
type ScoreboardModel struct {
	store    *storage.Store
	table    table.Model
	keys     ScoreboardKeyMap
	help     help.Model
	winsOnly bool
	loadErr  error
	quitting bool
}

// NewScoreboardModel builds the scoreboard over a results store.
func NewScoreboardModel(store *storage.Store) ScoreboardModel {
	m := ScoreboardModel{
		store: store,
		keys:  DefaultScoreboardKeyMap(),
		help:  help.New(),
	}
	m.reload()
	return m
}

func (m *ScoreboardModel) reload() {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Outcome", Width: 10},
		{Title: "Level", Width: 5},
		{Title: "Hearts", Width: 6},
		{Title: "Time", Width: 8},
	}

	var (
		entries []storage.ResultEntry
		err     error
	)
	if m.winsOnly {
		entries, err = m.store.Wins()
	} else {
		entries, err = m.store.RecentResults(maxResults)
	}
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Outcome,
			fmt.Sprintf("%d", e.Level),
			fmt.Sprintf("%d", e.Hearts),
			(time.Duration(e.DurationMS) * time.Millisecond).Round(time.Second).String(),
		})
	}

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles key input.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Toggle):
			m.winsOnly = !m.winsOnly
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a title and help footer.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "Recent Sessions"
	if m.winsOnly {
		title = "Wins (fastest first)"
	}
	if m.loadErr != nil {
		return scoreboardTitleStyle.Render(title) + "\n\ncould not load results: " + m.loadErr.Error() + "\n"
	}

	return scoreboardTitleStyle.Render(title) + "\n" +
		m.table.View() + "\n" +
		m.help.View(m.keys)
}

// RunScoreboard shows the scoreboard in a standalone program.
func RunScoreboard(store *storage.Store) error {
	p := tea.NewProgram(NewScoreboardModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
