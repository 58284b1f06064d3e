package core

import "strings"

// Event is an abstract input event, decoupled from physical keys.
// Renderers translate their native key codes into events; the engine only
// ever sees these values.
type Event int

const (
	EventNone    Event = iota // no input this iteration
	EventQuit                 // Escape - leave the game
	EventRotate               // Space - rotate the falling piece
	EventConfirm              // Enter - pause / resume
	EventLeft                 // Left arrow - shift left
	EventUp                   // Up arrow - slow down
	EventRight                // Right arrow - shift right
	EventDown                 // Down arrow - speed up
	EventRestart              // R - start over
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventRotate:
		return "Rotate"
	case EventConfirm:
		return "Confirm"
	case EventLeft:
		return "Left"
	case EventUp:
		return "Up"
	case EventRight:
		return "Right"
	case EventDown:
		return "Down"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// ParseEvent maps a config action name back to its event.
// Only events a player can trigger are accepted.
func ParseEvent(name string) (Event, bool) {
	for e := EventQuit; e <= EventRestart; e++ {
		if strings.EqualFold(e.String(), name) {
			return e, true
		}
	}
	return EventNone, false
}
