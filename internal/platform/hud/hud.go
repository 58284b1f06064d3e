// Package hud holds the presentation pieces both backends share: the
// preview geometry and the status text shown next to the board.
package hud

import (
	"fmt"

	"github.com/vovakirdan/tetris/internal/core"
	"github.com/vovakirdan/tetris/internal/tetris"
)

// PreviewSize is the side of the square "next piece" panel, in cells.
const PreviewSize = 6

// previewAnchor places a fresh piece's anchor inside the preview panel.
// Every shape fits: offsets span x -1..1 and y 0..3.
var previewAnchor = core.Pt(2, 2)

// PreviewCells returns the panel cells covered by the next piece.
func PreviewCells(s tetris.Snapshot) []core.Point {
	if !s.HasNext {
		return nil
	}
	cells := make([]core.Point, 0, len(s.Next))
	for _, off := range s.Next {
		cells = append(cells, previewAnchor.Add(off))
	}
	return cells
}

// Title is the label shown above the board panel.
const Title = "T E T R I S"

// NextLabel is the label shown above the preview panel.
const NextLabel = "N E X T"

// ScoreLine formats the score box.
func ScoreLine(s tetris.Snapshot) string {
	return fmt.Sprintf("S C O R E : %d", s.Score)
}

// SpeedLine formats the current pace against the tier's fall delay.
func SpeedLine(s tetris.Snapshot) string {
	return fmt.Sprintf("pace %dms / %dms  x%d", s.Pace, s.FallDelay, s.Coefficient)
}

// Message returns the help lines for the current state.
func Message(s tetris.Snapshot) []string {
	switch {
	case s.GameOver:
		return []string{"GAME OVER", "", "R to play again", "", "ESC to quit"}
	case s.Paused:
		return []string{"ENTER to play", "", "R to restart", "", "ESC to quit"}
	default:
		return []string{"ARROWS to move", "", "SPACE to rotate", "", "ENTER to pause", "", "ESC to quit"}
	}
}
