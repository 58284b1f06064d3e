package tui

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris/internal/config"
	"github.com/vovakirdan/tetris/internal/core"
	"github.com/vovakirdan/tetris/internal/tetris"
)

// frameMsg carries a snapshot from the game loop into the program.
type frameMsg tetris.Snapshot

// Model is the Bubble Tea model that displays frames pushed by the game
// loop and forwards key presses back to it. It owns no game state.
type Model struct {
	keys     KeyMap
	help     help.Model
	showHelp bool
	styles   Styles
	layout   Layout
	screen   *core.Screen

	events chan<- core.Event
	quit   *atomic.Bool

	frame    tetris.Snapshot
	hasFrame bool
	width    int
	height   int
}

// NewModel creates the model for a board of cfg.Rows x cfg.Cols. Key events
// go to events without blocking; a quit request raises quit instead so it
// can never be dropped.
func NewModel(cfg core.RuntimeConfig, settings config.Settings, events chan<- core.Event, quit *atomic.Bool) Model {
	layout := NewLayout(cfg.Rows, cfg.Cols, settings.TUI.CellWidth)
	return Model{
		keys:     NewKeyMap(settings.Keys),
		help:     help.New(),
		showHelp: settings.TUI.ShowHelp,
		styles:   NewStyles(settings.TUI.Palette),
		layout:   layout,
		screen:   core.NewScreen(layout.Width, layout.Height),
		events:   events,
		quit:     quit,
	}
}

// Init implements tea.Model. The game loop drives all updates.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.forward(m.keys.Event(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		m.frame = tetris.Snapshot(msg)
		m.hasFrame = true
	}

	return m, nil
}

// forward hands an event to the game loop. When the loop falls behind,
// movement events are dropped rather than stalling the UI.
func (m Model) forward(ev core.Event) {
	switch ev {
	case core.EventNone:
		return
	case core.EventQuit:
		m.quit.Store(true)
		return
	}

	select {
	case m.events <- ev:
	default:
	}
}

// View renders the last frame to a string for display.
func (m Model) View() string {
	if !m.hasFrame {
		return ""
	}

	if m.width > 0 {
		if w, h := m.layout.MinSize(); m.width < w || m.height < h {
			return m.layout.tooSmall(m.width, m.height)
		}
	}

	m.layout.Draw(m.screen, m.frame)

	var sb strings.Builder
	sb.WriteString(m.styles.RenderScreen(m.screen))
	if m.showHelp {
		sb.WriteRune('\n')
		sb.WriteString(m.help.View(m.keys))
	}
	return sb.String()
}
