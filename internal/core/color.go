package core

import "fmt"

// Color identifies the paint of a board cell or screen cell.
// ColorDefault doubles as the empty-cell background.
type Color uint8

// Piece colors occupy 1..7; ColorGray is reserved for frames and hints.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// PieceColorCount is the number of colors a piece can be painted with.
const PieceColorCount = 7

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorGray:    "gray",
}

// String returns the lowercase name used in config files.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// IsBackground reports whether c marks an empty cell.
func (c Color) IsBackground() bool {
	return c == ColorDefault
}

// ParseColor looks a color up by its config name.
func ParseColor(name string) (Color, error) {
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}
