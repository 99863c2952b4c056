package snake

import "github.com/vovakirdan/pixelsnake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the grid offset of one step in this direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// priority is the order in which simultaneous presses are considered.
var priority = [...]Direction{DirUp, DirDown, DirRight, DirLeft}

// pressed reports whether the button for d is held.
func pressed(in core.InputState, d Direction) bool {
	switch d {
	case DirUp:
		return in.Up
	case DirDown:
		return in.Down
	case DirLeft:
		return in.Left
	case DirRight:
		return in.Right
	}
	return false
}

// resolve picks the direction for this frame. With no current direction the
// first pressed button wins. Otherwise the first pressed button that does not
// reverse the current direction wins, and the current direction is kept when
// there is none.
func resolve(cur Direction, hasCur bool, in core.InputState) (Direction, bool) {
	for _, d := range priority {
		if !pressed(in, d) {
			continue
		}
		if hasCur && d == cur.Opposite() {
			continue
		}
		return d, true
	}
	return cur, hasCur
}
