// Package config provides YAML-based settings loading for the game and
// its renderer backends. Game rules are fixed; settings only cover
// logging, key bindings and presentation.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tetris/internal/core"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings is the whole settings document.
type Settings struct {
	Log  LogSettings `yaml:"log"`
	Keys KeySettings `yaml:"keys"`
	TUI  TUISettings `yaml:"tui"`
	GFX  GFXSettings `yaml:"gfx"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty: backend default
}

// KeySettings binds key names to game events. Names follow the terminal
// key notation ("left", "space", "enter", "r"); the 2D backend maps the
// same names onto its own key codes.
type KeySettings struct {
	Quit    []string `yaml:"quit"`
	Rotate  []string `yaml:"rotate"`
	Confirm []string `yaml:"confirm"`
	Left    []string `yaml:"left"`
	Up      []string `yaml:"up"`
	Right   []string `yaml:"right"`
	Down    []string `yaml:"down"`
	Restart []string `yaml:"restart"`
}

// For returns the keys bound to an event.
func (k KeySettings) For(ev core.Event) []string {
	switch ev {
	case core.EventQuit:
		return k.Quit
	case core.EventRotate:
		return k.Rotate
	case core.EventConfirm:
		return k.Confirm
	case core.EventLeft:
		return k.Left
	case core.EventUp:
		return k.Up
	case core.EventRight:
		return k.Right
	case core.EventDown:
		return k.Down
	case core.EventRestart:
		return k.Restart
	default:
		return nil
	}
}

// Lookup returns the event bound to a key name, or core.EventNone.
func (k KeySettings) Lookup(key string) core.Event {
	for ev := core.EventQuit; ev <= core.EventRestart; ev++ {
		if slices.Contains(k.For(ev), key) {
			return ev
		}
	}
	return core.EventNone
}

// Palette maps color names ("red", "gray", "default") to color values.
// The terminal backend accepts ANSI numbers or hex; the 2D backend needs hex.
type Palette map[string]string

// Lookup returns the value for a color, if present.
func (p Palette) Lookup(c core.Color) (string, bool) {
	v, ok := p[c.String()]
	return v, ok
}

// TUISettings configures the terminal backend.
type TUISettings struct {
	Palette   Palette `yaml:"palette"`
	CellWidth int     `yaml:"cell_width"` // terminal columns per board cell
	ShowHelp  bool    `yaml:"show_help"`
}

// GFXSettings configures the 2D backend.
type GFXSettings struct {
	Title    string  `yaml:"title"`
	CellSize int     `yaml:"cell_size"` // pixels per board cell
	Palette  Palette `yaml:"palette"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Log: LogSettings{
			Level: "info",
		},
		Keys: KeySettings{
			Quit:    []string{"q", "esc"},
			Rotate:  []string{"space"},
			Confirm: []string{"enter"},
			Left:    []string{"left"},
			Up:      []string{"up"},
			Right:   []string{"right"},
			Down:    []string{"down"},
			Restart: []string{"r"},
		},
		TUI: TUISettings{
			Palette: Palette{
				"red":     "1",
				"green":   "2",
				"yellow":  "3",
				"blue":    "4",
				"magenta": "5",
				"cyan":    "6",
				"white":   "7",
				"gray":    "8",
			},
			CellWidth: 2,
			ShowHelp:  true,
		},
		GFX: GFXSettings{
			Title:    "Tetris",
			CellSize: 24,
			Palette: Palette{
				"default": "#101018",
				"red":     "#e04040",
				"green":   "#40c040",
				"yellow":  "#e0d040",
				"blue":    "#4060e0",
				"magenta": "#c040c0",
				"cyan":    "#40c0d0",
				"white":   "#e8e8e8",
				"gray":    "#505060",
			},
		},
	}
}

// Validate checks ranges and names.
func (s Settings) Validate() error {
	if s.TUI.CellWidth < 1 || s.TUI.CellWidth > 2 {
		return fmt.Errorf("%w: tui.cell_width %d not in [1, 2]", ErrInvalidSettings, s.TUI.CellWidth)
	}
	if s.GFX.CellSize < 8 || s.GFX.CellSize > 64 {
		return fmt.Errorf("%w: gfx.cell_size %d not in [8, 64]", ErrInvalidSettings, s.GFX.CellSize)
	}

	for section, p := range map[string]Palette{"tui": s.TUI.Palette, "gfx": s.GFX.Palette} {
		for name := range p {
			if _, err := core.ParseColor(name); err != nil {
				return fmt.Errorf("%w: %s.palette: %w", ErrInvalidSettings, section, err)
			}
		}
	}

	seen := make(map[string]core.Event)
	for ev := core.EventQuit; ev <= core.EventRestart; ev++ {
		keys := s.Keys.For(ev)
		if len(keys) == 0 {
			return fmt.Errorf("%w: no key bound to %s", ErrInvalidSettings, ev)
		}
		for _, key := range keys {
			if prev, ok := seen[key]; ok {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidSettings, key, prev, ev)
			}
			seen[key] = ev
		}
	}
	return nil
}
