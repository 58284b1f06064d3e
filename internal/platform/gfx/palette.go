package gfx

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tetris/internal/config"
	"github.com/vovakirdan/tetris/internal/core"
)

// fallback is used for colors missing from the palette or given in a form
// other than hex.
var fallback = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 16, G: 16, B: 24, A: 255},
	core.ColorRed:     {R: 224, G: 64, B: 64, A: 255},
	core.ColorGreen:   {R: 64, G: 192, B: 64, A: 255},
	core.ColorYellow:  {R: 224, G: 208, B: 64, A: 255},
	core.ColorBlue:    {R: 64, G: 96, B: 224, A: 255},
	core.ColorMagenta: {R: 192, G: 64, B: 192, A: 255},
	core.ColorCyan:    {R: 64, G: 192, B: 208, A: 255},
	core.ColorWhite:   {R: 232, G: 232, B: 232, A: 255},
	core.ColorGray:    {R: 80, G: 80, B: 96, A: 255},
}

// palette resolves core colors to RGBA.
type palette map[core.Color]color.Color

func newPalette(p config.Palette) palette {
	out := make(palette, len(fallback))
	for c, rgba := range fallback {
		out[c] = rgba
		if hex, ok := p.Lookup(c); ok {
			if parsed, err := colorful.Hex(hex); err == nil {
				out[c] = parsed.Clamped()
			}
		}
	}
	return out
}

func (p palette) of(c core.Color) color.Color {
	if v, ok := p[c]; ok {
		return v
	}
	return p[core.ColorDefault]
}
