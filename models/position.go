package models

import "strings"

// ScreenPosition is the corner of a monitor's working area the note is pinned to.
type ScreenPosition int

const (
	TopLeft ScreenPosition = iota
	TopRight
	BottomLeft
	BottomRight
)

var positionNames = map[ScreenPosition]string{
	TopLeft:     "TopLeft",
	TopRight:    "TopRight",
	BottomLeft:  "BottomLeft",
	BottomRight: "BottomRight",
}

func (p ScreenPosition) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return "Unknown"
}

// ParseScreenPosition maps a position name to its value, ignoring case.
// The second return value is false for unknown names.
func ParseScreenPosition(name string) (ScreenPosition, bool) {
	name = strings.TrimSpace(name)
	for pos, n := range positionNames {
		if strings.EqualFold(n, name) {
			return pos, true
		}
	}
	return TopLeft, false
}

// Direction is a nudge direction. Nondirectional means no match.
type Direction int

const (
	Nondirectional Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "nondirectional"
	}
}
