package snake

import "fmt"

// TileKind is the occupant of a board cell.
type TileKind uint8

const (
	KindEmpty TileKind = iota
	KindSnake
	KindApple
)

// Tile is one board cell. Life is only meaningful for snake segments: it is
// the number of further frames the segment stays on the board.
type Tile struct {
	Kind TileKind
	Life int
}

// Empty returns an empty tile.
func Empty() Tile { return Tile{Kind: KindEmpty} }

// Apple returns an apple tile.
func Apple() Tile { return Tile{Kind: KindApple} }

// Segment returns a snake segment with the given remaining life.
func Segment(life int) Tile { return Tile{Kind: KindSnake, Life: life} }

// age decrements a segment's life, clearing it when the life runs out.
// Other tiles are returned unchanged.
func (t Tile) age() Tile {
	if t.Kind != KindSnake {
		return t
	}
	if t.Life <= 1 {
		return Empty()
	}
	return Segment(t.Life - 1)
}

func (t Tile) String() string {
	switch t.Kind {
	case KindEmpty:
		return "empty"
	case KindApple:
		return "apple"
	case KindSnake:
		return fmt.Sprintf("snake(%d)", t.Life)
	default:
		return "unknown"
	}
}
