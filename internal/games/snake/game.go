// Package snake implements Snake on a wrapping pixel grid.
//
// The board is a flat slice of tiles. Each snake segment carries the number
// of frames it has left on the board; the head is always written with the
// current length, so the tail retracts one cell per frame without the engine
// tracking segment order.
package snake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/pixelsnake/internal/core"
	"github.com/vovakirdan/pixelsnake/internal/registry"
)

// ID is the registry identifier of the Snake variant.
const ID = "snake"

var (
	// ErrGridTooSmall is returned when the grid cannot hold a head and an apple.
	ErrGridTooSmall = errors.New("snake: grid needs at least two cells")
	// ErrStartOutOfBounds is returned when the start position is off the grid.
	ErrStartOutOfBounds = errors.New("snake: start position outside grid")
	// ErrBoardFull is returned when no cell is free for a new apple.
	ErrBoardFull = errors.New("snake: no free cell for apple")
)

func init() {
	registry.Register(ID, "Snake", func(cfg core.RuntimeConfig, ctx *core.Context) (registry.Game, error) {
		g, err := New(cfg, ctx)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}

// Game implements the Snake game.
type Game struct {
	grid    core.Grid
	board   []Tile
	length  int
	headIdx int

	// dir is only meaningful once hasDir is set by the first press.
	dir    Direction
	hasDir bool
}

// New creates a Snake session: a length-one snake at cfg.Start and one apple
// on a random free cell.
func New(cfg core.RuntimeConfig, ctx *core.Context) (*Game, error) {
	grid := cfg.Grid
	if grid.Width <= 0 || grid.Height <= 0 || grid.Size() < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooSmall, grid.Width, grid.Height)
	}
	if !grid.Contains(cfg.Start.X, cfg.Start.Y) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrStartOutOfBounds, cfg.Start.X, cfg.Start.Y)
	}

	g := &Game{
		grid:    grid,
		board:   make([]Tile, grid.Size()),
		length:  1,
		headIdx: grid.IndexOf(cfg.Start.X, cfg.Start.Y),
	}
	g.board[g.headIdx] = Segment(g.length)

	if err := g.placeApple(-1, ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// Update advances the game by one frame.
func (g *Game) Update(in core.InputState, ctx *core.Context) core.Outcome {
	g.dir, g.hasDir = resolve(g.dir, g.hasDir, in)

	// The snake waits for its first direction.
	if !g.hasDir {
		return core.Continue()
	}

	x, y := g.grid.PositionOf(g.headIdx)
	dx, dy := g.dir.Delta()
	nx, ny := g.grid.Step(x, y, dx, dy)
	next := g.grid.IndexOf(nx, ny)

	switch g.board[next].Kind {
	case KindApple:
		// Growing: nothing ages this frame.
		g.length++
		if g.length == g.grid.Size() {
			return core.Win(g.length)
		}
		if err := g.placeApple(next, ctx); err != nil {
			// Every cell is taken, which is a full board.
			return core.Win(g.length)
		}
	case KindSnake:
		return core.Loss(g.length)
	case KindEmpty:
		g.age()
	}

	g.headIdx = next
	g.board[next] = Segment(g.length)

	return core.Continue()
}

// age shortens every segment's life by one frame.
func (g *Game) age() {
	for i, t := range g.board {
		g.board[i] = t.age()
	}
}

// Display renders the board: background, blinking apple, solid snake.
func (g *Game) Display() core.Buffer {
	buf := make(core.Buffer, len(g.board))
	for i, t := range g.board {
		switch t.Kind {
		case KindApple:
			buf[i] = core.PixelBlink
		case KindSnake:
			buf[i] = core.PixelOn
		default:
			buf[i] = core.PixelOff
		}
	}
	return buf
}

// Length returns the current snake length, which is also the score.
func (g *Game) Length() int {
	return g.length
}

// Direction returns the current direction and whether one has been set.
func (g *Game) Direction() (Direction, bool) {
	return g.dir, g.hasDir
}

// Head returns the head position.
func (g *Game) Head() core.Point {
	return g.grid.Point(g.headIdx)
}

// Tile returns the tile at (x, y).
func (g *Game) Tile(x, y int) Tile {
	return g.board[g.grid.IndexOf(x, y)]
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	head := g.Head()
	dir := "none"
	if g.hasDir {
		dir = g.dir.String()
	}
	fmt.Fprintf(&b, "Length: %d, Head: (%d, %d), Direction: %s\n", g.length, head.X, head.Y, dir)
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			t := g.Tile(x, y)
			switch t.Kind {
			case KindApple:
				b.WriteString("  *")
			case KindSnake:
				fmt.Fprintf(&b, "%3d", t.Life)
			default:
				b.WriteString("  .")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
