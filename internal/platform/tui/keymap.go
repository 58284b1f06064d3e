package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris/internal/config"
	"github.com/vovakirdan/tetris/internal/core"
)

// KeyMap translates Bubble Tea key messages to game events.
// Bindings come from the settings file; ctrl+c always quits.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Rotate    key.Binding
	Up        key.Binding
	Down      key.Binding
	Confirm   key.Binding
	Restart   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(k config.KeySettings) KeyMap {
	return KeyMap{
		Left:    binding(k.Left, "move left"),
		Right:   binding(k.Right, "move right"),
		Rotate:  binding(k.Rotate, "rotate"),
		Up:      binding(k.Up, "slower"),
		Down:    binding(k.Down, "faster"),
		Confirm: binding(k.Confirm, "pause/play"),
		Restart: binding(k.Restart, "restart"),
		Quit:    binding(k.Quit, "quit"),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// binding turns config key names into a binding. Config files say
// "space"; Bubble Tea reports the space bar as " ".
func binding(names []string, desc string) key.Binding {
	keys := make([]string, len(names))
	for i, name := range names {
		if name == "space" {
			name = " "
		}
		keys[i] = name
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Up, k.Down, k.Confirm, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate},
		{k.Up, k.Down},
		{k.Confirm, k.Restart, k.Quit},
	}
}

// Event maps a key message to a game event, or core.EventNone.
func (k KeyMap) Event(msg tea.KeyMsg) core.Event {
	switch {
	case key.Matches(msg, k.ForceQuit), key.Matches(msg, k.Quit):
		return core.EventQuit
	case key.Matches(msg, k.Left):
		return core.EventLeft
	case key.Matches(msg, k.Right):
		return core.EventRight
	case key.Matches(msg, k.Rotate):
		return core.EventRotate
	case key.Matches(msg, k.Up):
		return core.EventUp
	case key.Matches(msg, k.Down):
		return core.EventDown
	case key.Matches(msg, k.Confirm):
		return core.EventConfirm
	case key.Matches(msg, k.Restart):
		return core.EventRestart
	}
	return core.EventNone
}
