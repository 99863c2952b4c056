package core

import "fmt"

// RuntimeConfig contains configuration passed to games at construction.
type RuntimeConfig struct {
	Grid     Grid   // Pixel grid dimensions
	Start    Point  // Starting head position
	TickRate int    // Host frames per second
	Seed     uint64 // RNG seed, 0 means derive one from entropy in the host
}

// DefaultConfig returns the reference 8x8 panel configuration.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid:     NewGrid(8, 8),
		Start:    Point{X: 4, Y: 4},
		TickRate: 10,
		Seed:     0,
	}
}

// Random supplies uniformly distributed integers.
type Random interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// Context is the per-frame state owned by the host loop and lent to a game
// for the duration of a single construct or update call. Games must not
// retain it.
type Context struct {
	// Frame increments once per host loop iteration. Informational only.
	Frame uint64
	RNG   Random
}

// OutcomeKind is the kind of result an update produced.
type OutcomeKind int

const (
	OutcomeContinue OutcomeKind = iota
	OutcomeWin
	OutcomeLoss
)

// Outcome is returned by every game update. Win and Loss carry the final score.
type Outcome struct {
	Kind  OutcomeKind
	Score int
}

// Continue returns the non-terminal outcome.
func Continue() Outcome { return Outcome{Kind: OutcomeContinue} }

// Win returns a winning outcome with the given final score.
func Win(score int) Outcome { return Outcome{Kind: OutcomeWin, Score: score} }

// Loss returns a losing outcome with the given final score.
func Loss(score int) Outcome { return Outcome{Kind: OutcomeLoss, Score: score} }

// Terminal returns true for Win and Loss.
func (o Outcome) Terminal() bool {
	return o.Kind == OutcomeWin || o.Kind == OutcomeLoss
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return fmt.Sprintf("win(%d)", o.Score)
	case OutcomeLoss:
		return fmt.Sprintf("loss(%d)", o.Score)
	default:
		return "unknown"
	}
}
