package astar

import (
	"errors"

	"github.com/katalvlaran/gridchase/core"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNonPositiveCost indicates a tile whose entry cost is below 1.
	// Such costs break the Manhattan heuristic's admissibility.
	ErrNonPositiveCost = errors.New("astar: tile cost must be at least 1")

	// ErrNoPath indicates the goal is not in the predecessor map: the
	// target is currently unreachable from the start.
	ErrNoPath = errors.New("astar: no path to goal")

	// ErrReconstructionOverrun indicates the predecessor chain from goal
	// does not lead back to start within len(prev) steps. It signals a
	// corrupted map and must not be ignored.
	ErrReconstructionOverrun = errors.New("astar: predecessor chain overrun")
)

// Graph is the view of the board the search consumes.
//
// Neighbors returns up to four passable tiles cardinally adjacent to t, in a
// deterministic order. Cost returns the cost of entering t; it must be ≥ 1
// for every tile Neighbors can return and must not change during a search.
type Graph interface {
	Neighbors(t core.Tile) []core.Tile
	Cost(t core.Tile) int64
}

// Heuristic estimates the remaining cost between two tiles.
type Heuristic func(a, b core.Tile) int64

// Manhattan is the default heuristic: |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b core.Tile) int64 {
	return core.Manhattan(a, b)
}

// Link is a back-pointer in a predecessor map. Valid is false only for the
// start tile, which was not reached from anywhere.
type Link struct {
	From  core.Tile
	Valid bool
}

// Predecessors maps each visited tile to the tile it was reached from.
type Predecessors map[core.Tile]Link

// Has reports whether t was reached by the search.
func (p Predecessors) Has(t core.Tile) bool {
	_, ok := p[t]
	return ok
}

// Costs maps each visited tile to the cheapest accumulated cost found.
type Costs map[core.Tile]int64

// Options configures Search.
type Options struct {
	Heuristic Heuristic         // remaining-cost estimate; nil means Manhattan
	OnExpand  func(t core.Tile) // called for every popped tile, stale duplicates and the goal included
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic replaces the Manhattan heuristic. A heuristic that can
// overestimate gives up the optimality guarantee.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithOnExpand registers a hook called for each popped tile.
func WithOnExpand(fn func(t core.Tile)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// DefaultOptions returns Options with the Manhattan heuristic and no hook.
func DefaultOptions() Options {
	return Options{Heuristic: Manhattan}
}
