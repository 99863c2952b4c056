// Package session wraps the active game variant for a host loop. It forwards
// every frame to the current game and silently replaces the game with a
// fresh instance whenever it wins or loses, so the host never sees a
// terminal state.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixelsnake/internal/core"
	"github.com/vovakirdan/pixelsnake/internal/registry"
)

// Stats counts results for the lifetime of one Session. Nothing is persisted.
type Stats struct {
	Sessions  int // Instances constructed, including the first
	Wins      int
	Losses    int
	BestScore int
	Last      core.Outcome // Most recent terminal outcome
}

// Session owns the active game instance.
type Session struct {
	gameID string
	cfg    core.RuntimeConfig
	game   registry.Game
	logger *log.Logger
	stats  Stats
}

// New constructs the first instance of gameID. A nil logger discards logs.
func New(gameID string, cfg core.RuntimeConfig, ctx *core.Context, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		gameID: gameID,
		cfg:    cfg,
		logger: logger,
	}
	if err := s.reset(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Update forwards one frame to the active game. On Win or Loss the finished
// instance is discarded and a new one constructed with the same context.
// The outcome is returned for display only; the error is non-nil only when
// the replacement cannot be constructed.
func (s *Session) Update(in core.InputState, ctx *core.Context) (core.Outcome, error) {
	out := s.game.Update(in, ctx)
	if !out.Terminal() {
		return out, nil
	}

	s.record(out, ctx.Frame)
	if err := s.reset(ctx); err != nil {
		return out, err
	}
	return out, nil
}

// Display returns the active game's frame.
func (s *Session) Display() core.Buffer {
	return s.game.Display()
}

// Game returns the active game instance.
func (s *Session) Game() registry.Game {
	return s.game
}

// GameID returns the variant this session runs.
func (s *Session) GameID() string {
	return s.gameID
}

// Grid returns the grid the games are played on.
func (s *Session) Grid() core.Grid {
	return s.cfg.Grid
}

// Stats returns the result counters.
func (s *Session) Stats() Stats {
	return s.stats
}

func (s *Session) reset(ctx *core.Context) error {
	g, err := registry.Create(s.gameID, s.cfg, ctx)
	if err != nil {
		return fmt.Errorf("session: new %s: %w", s.gameID, err)
	}
	s.game = g
	s.stats.Sessions++
	s.logger.Debug("game started", "game", s.gameID, "session", s.stats.Sessions, "frame", ctx.Frame)
	return nil
}

func (s *Session) record(out core.Outcome, frame uint64) {
	switch out.Kind {
	case core.OutcomeWin:
		s.stats.Wins++
		s.logger.Info("game won", "game", s.gameID, "score", out.Score, "frame", frame)
	case core.OutcomeLoss:
		s.stats.Losses++
		s.logger.Info("game lost", "game", s.gameID, "score", out.Score, "frame", frame)
	}
	if out.Score > s.stats.BestScore {
		s.stats.BestScore = out.Score
	}
	s.stats.Last = out
}
