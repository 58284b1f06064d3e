package gfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tetris/internal/config"
	"github.com/vovakirdan/tetris/internal/core"
)

// namedKeys covers the terminal-style names used in the settings file.
// Anything else goes through ebiten's own key names ("A", "F1", "Tab").
var namedKeys = map[string]ebiten.Key{
	"left":   ebiten.KeyArrowLeft,
	"right":  ebiten.KeyArrowRight,
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"space":  ebiten.KeySpace,
	"enter":  ebiten.KeyEnter,
	"esc":    ebiten.KeyEscape,
	"escape": ebiten.KeyEscape,
	"tab":    ebiten.KeyTab,
}

// binding pairs a physical key with the event it produces.
type binding struct {
	key   ebiten.Key
	event core.Event
}

// bindKeys resolves the configured key names. Names that have no ebiten
// equivalent (such as "ctrl+c") are reported so the caller can log them.
func bindKeys(k config.KeySettings) ([]binding, []string) {
	var (
		out     []binding
		skipped []string
	)
	for ev := core.EventQuit; ev <= core.EventRestart; ev++ {
		for _, name := range k.For(ev) {
			key, err := parseKey(name)
			if err != nil {
				skipped = append(skipped, name)
				continue
			}
			out = append(out, binding{key: key, event: ev})
		}
	}
	return out, skipped
}

func parseKey(name string) (ebiten.Key, error) {
	if key, ok := namedKeys[name]; ok {
		return key, nil
	}
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("gfx: unknown key %q: %w", name, err)
	}
	return key, nil
}
