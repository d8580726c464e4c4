package chase

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridchase/astar"
	"github.com/katalvlaran/gridchase/core"
	"github.com/katalvlaran/gridchase/gridgraph"
)

// Session is one game of chase on a fixed grid.
type Session struct {
	id      uuid.UUID
	grid    *gridgraph.Grid
	hunter  core.Tile
	prey    core.Tile
	exit    core.Tile
	turn    int
	outcome Outcome
	logger  *slog.Logger
	metrics *Metrics
}

// NewSession validates the layout and starts a game on g.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. hunter, prey and exit must be in bounds (ErrOutOfBounds) and not on a
//     wall (ErrBlockedTile).
//  3. exit must be reachable from prey (ErrExitUnreachable).
func NewSession(g *gridgraph.Grid, opts ...Option) (*Session, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}

	placed := []struct {
		name string
		at   core.Tile
	}{
		{"hunter", cfg.Hunter},
		{"prey", cfg.Prey},
		{"exit", cfg.Exit},
	}
	for _, p := range placed {
		if !g.InBounds(p.at) {
			return nil, fmt.Errorf("%w: %s at %s", ErrOutOfBounds, p.name, p.at)
		}
		if g.IsWall(p.at) {
			return nil, fmt.Errorf("%w: %s at %s", ErrBlockedTile, p.name, p.at)
		}
	}
	if !g.Connected(cfg.Prey, cfg.Exit) {
		return nil, fmt.Errorf("%w: prey %s, exit %s", ErrExitUnreachable, cfg.Prey, cfg.Exit)
	}

	id := cfg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{
		id:      id,
		grid:    g,
		hunter:  cfg.Hunter,
		prey:    cfg.Prey,
		exit:    cfg.Exit,
		logger:  logger.With(slog.String("session", id.String())),
		metrics: cfg.Metrics,
	}
	s.logger.Info("session started",
		slog.String("hunter", s.hunter.String()),
		slog.String("prey", s.prey.String()),
		slog.String("exit", s.exit.String()),
	)
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Hunter returns the hunter's position.
func (s *Session) Hunter() core.Tile { return s.hunter }

// Prey returns the prey's position.
func (s *Session) Prey() core.Tile { return s.prey }

// Exit returns the exit tile.
func (s *Session) Exit() core.Tile { return s.exit }

// Outcome returns the current state of the game.
func (s *Session) Outcome() Outcome { return s.outcome }

// Turn returns the number of resolved turns.
func (s *Session) Turn() int { return s.turn }

// Play resolves one turn for cmd and reports the new positions.
//
// Returns ErrGameOver once the game has finished. A hunter search failing for
// any reason other than astar.ErrNoPath is returned wrapped; the positions are
// left as they were after the prey's move.
func (s *Session) Play(cmd Command) (Report, error) {
	if s.outcome != Ongoing {
		return Report{}, fmt.Errorf("%w: %s", ErrGameOver, s.outcome)
	}

	if cmd == Quit {
		s.outcome = Forfeit
		s.logger.Info("player quit", slog.Int("turn", s.turn))
		return s.report(nil), nil
	}

	s.turn++
	s.movePrey(cmd)

	plan, err := s.advanceHunter()
	if err != nil {
		return Report{}, fmt.Errorf("chase: turn %d: %w", s.turn, err)
	}

	switch {
	case s.hunter == s.prey:
		s.outcome = Caught
	case s.prey == s.exit:
		s.outcome = Escaped
	}
	if s.outcome != Ongoing {
		s.logger.Info("game over",
			slog.Int("turn", s.turn),
			slog.String("outcome", s.outcome.String()),
		)
	}

	return s.report(plan), nil
}

// movePrey applies a move command; walls and the board edge block it.
func (s *Session) movePrey(cmd Command) {
	d, ok := cmd.Direction()
	if !ok {
		return
	}
	next := s.prey.Step(d)
	if !s.grid.Passable(next) {
		s.logger.Debug("prey move blocked",
			slog.Int("turn", s.turn),
			slog.String("direction", d.String()),
			slog.String("target", next.String()),
		)
		return
	}
	s.prey = next
}

// advanceHunter recomputes the hunter's route and takes its first step.
// It returns the remaining route, or nil when the prey is unreachable.
func (s *Session) advanceHunter() ([]core.Tile, error) {
	expanded := 0
	started := time.Now()
	path, cost, err := astar.FindPath(s.grid, s.hunter, s.prey,
		astar.WithOnExpand(func(core.Tile) { expanded++ }),
	)
	elapsed := time.Since(started)

	switch {
	case errors.Is(err, astar.ErrNoPath):
		s.metrics.observeSearch(resultNoPath, expanded, 0, elapsed)
		s.logger.Info("hunter has no path, waiting",
			slog.Int("turn", s.turn),
			slog.String("hunter", s.hunter.String()),
			slog.String("prey", s.prey.String()),
			slog.Int("expanded", expanded),
		)
		return nil, nil
	case err != nil:
		s.metrics.observeSearch(resultError, expanded, 0, elapsed)
		s.logger.Error("hunter search failed",
			slog.Int("turn", s.turn),
			slog.String("hunter", s.hunter.String()),
			slog.String("prey", s.prey.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.metrics.observeSearch(resultFound, expanded, len(path), elapsed)
	if len(path) > 1 {
		s.hunter = path[1]
		path = path[1:]
	}
	s.logger.Debug("hunter moved",
		slog.Int("turn", s.turn),
		slog.String("hunter", s.hunter.String()),
		slog.Int64("cost", cost),
		slog.Int("remaining", len(path)-1),
		slog.Duration("duration", elapsed),
	)
	return path, nil
}

func (s *Session) report(plan []core.Tile) Report {
	return Report{
		Turn:    s.turn,
		Prey:    s.prey,
		Hunter:  s.hunter,
		Plan:    plan,
		Outcome: s.outcome,
	}
}
