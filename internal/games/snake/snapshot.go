package snake

import "github.com/vovakirdan/pixelsnake/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Length int
	HeadX  int
	HeadY  int
	Dir    Direction
	HasDir bool
	Apple  int   // Apple index, -1 if none
	Lives  []int // Remaining life per cell, 0 for non-snake cells
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.Head()
	lives := make([]int, len(g.board))
	for i, t := range g.board {
		if t.Kind == KindSnake {
			lives[i] = t.Life
		}
	}

	return Snapshot{
		Length: g.length,
		HeadX:  head.X,
		HeadY:  head.Y,
		Dir:    g.dir,
		HasDir: g.hasDir,
		Apple:  g.AppleIndex(),
		Lives:  lives,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Length != o.Length || s.HeadX != o.HeadX || s.HeadY != o.HeadY ||
		s.HasDir != o.HasDir || s.Apple != o.Apple || len(s.Lives) != len(o.Lives) {
		return false
	}
	if s.HasDir && s.Dir != o.Dir {
		return false
	}
	for i := range s.Lives {
		if s.Lives[i] != o.Lives[i] {
			return false
		}
	}
	return true
}

// Grid returns the grid the game is played on.
func (g *Game) Grid() core.Grid {
	return g.grid
}
