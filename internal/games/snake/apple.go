package snake

import (
	"fmt"

	"github.com/vovakirdan/pixelsnake/internal/core"
)

// placeApple puts an apple on a uniformly chosen empty cell other than
// exclude (pass -1 for none). It scans the board once instead of sampling
// blindly, so it always terminates, and reports ErrBoardFull when no cell
// qualifies.
func (g *Game) placeApple(exclude int, ctx *core.Context) error {
	candidates := make([]int, 0, len(g.board))
	for i, t := range g.board {
		if i != exclude && t.Kind == KindEmpty {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 0 {
		return fmt.Errorf("%w (length %d)", ErrBoardFull, g.length)
	}

	idx := candidates[ctx.RNG.Intn(len(candidates))]
	g.board[idx] = Apple()
	return nil
}

// AppleIndex returns the board index of the apple, or -1 if there is none.
func (g *Game) AppleIndex() int {
	for i, t := range g.board {
		if t.Kind == KindApple {
			return i
		}
	}
	return -1
}
