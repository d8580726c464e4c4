package chase

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridchase/core"
)

// Sentinel errors returned by the chase package.
var (
	// ErrNilGrid indicates NewSession was called without a grid.
	ErrNilGrid = errors.New("chase: grid is nil")
	// ErrOutOfBounds indicates an entity or the exit placed off the board.
	ErrOutOfBounds = errors.New("chase: position out of bounds")
	// ErrBlockedTile indicates an entity or the exit placed on a wall.
	ErrBlockedTile = errors.New("chase: position is a wall")
	// ErrExitUnreachable indicates the prey could never reach the exit.
	ErrExitUnreachable = errors.New("chase: exit unreachable from prey")
	// ErrGameOver indicates Play was called on a finished session.
	ErrGameOver = errors.New("chase: game is over")
	// ErrUnknownCommand indicates input ParseCommand does not recognise.
	ErrUnknownCommand = errors.New("chase: unknown command")
)

// Outcome is the state of a session.
type Outcome int

const (
	// Ongoing means the game continues.
	Ongoing Outcome = iota
	// Caught means the hunter reached the prey.
	Caught
	// Escaped means the prey reached the exit.
	Escaped
	// Forfeit means the player quit.
	Forfeit
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Caught:
		return "caught"
	case Escaped:
		return "escaped"
	case Forfeit:
		return "forfeit"
	}
	return "unknown"
}

// Report describes the board after one turn.
//
// Plan is the hunter's remaining route, from its new position to the prey,
// or nil when it found no path.
type Report struct {
	Turn    int
	Prey    core.Tile
	Hunter  core.Tile
	Plan    []core.Tile
	Outcome Outcome
}

// Options configures NewSession.
type Options struct {
	Hunter  core.Tile
	Prey    core.Tile
	Exit    core.Tile
	ID      uuid.UUID
	Logger  *slog.Logger
	Metrics *Metrics
}

// Option is a functional option for NewSession.
type Option func(*Options)

// WithHunter places the hunter.
func WithHunter(t core.Tile) Option {
	return func(o *Options) { o.Hunter = t }
}

// WithPrey places the prey.
func WithPrey(t core.Tile) Option {
	return func(o *Options) { o.Prey = t }
}

// WithExit places the exit.
func WithExit(t core.Tile) Option {
	return func(o *Options) { o.Exit = t }
}

// WithID fixes the session ID instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(o *Options) { o.ID = id }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records every hunter search in m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// DefaultOptions returns the classic layout: hunter and exit at (8,8), prey
// at (1,1), no logging and no metrics. The session ID is generated by
// NewSession.
func DefaultOptions() Options {
	return Options{
		Hunter: ClassicHunter,
		Prey:   ClassicPrey,
		Exit:   ClassicExit,
	}
}
