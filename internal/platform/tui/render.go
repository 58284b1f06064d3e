package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris/internal/config"
	"github.com/vovakirdan/tetris/internal/core"
)

// Styles maps core.Color to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds foreground styles from a palette. Colors missing from
// the palette render unstyled.
func NewStyles(p config.Palette) Styles {
	styles := Styles{core.ColorDefault: lipgloss.NewStyle()}
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if v, ok := p.Lookup(c); ok {
			styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(v))
		}
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (st Styles) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := st[startColor]
			if !ok {
				style = st[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
