package gridgraph

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridchase/core"
)

// Default weight bounds for randomly weighted boards.
const (
	DefaultMinWeight int64 = 5
	DefaultMaxWeight int64 = 20
	// DefaultSeed makes an unconfigured board reproducible.
	DefaultSeed int64 = 1
)

// Options configures NewGrid.
//
// Walls     – impassable tiles; each must be in bounds.
// WeightFn  – weight generator; when nil, UniformWeightFn(MinWeight, MaxWeight).
// MinWeight – lower bound (inclusive) of the default uniform generator.
// MaxWeight – upper bound (inclusive) of the default uniform generator.
// Seed      – seed of the RNG handed to WeightFn.
type Options struct {
	Walls     []core.Tile
	WeightFn  WeightFn
	MinWeight int64
	MaxWeight int64
	Seed      int64
}

// Option is a functional option for NewGrid.
type Option func(*Options)

// WithWalls appends impassable tiles.
func WithWalls(tiles ...core.Tile) Option {
	return func(o *Options) {
		o.Walls = append(o.Walls, tiles...)
	}
}

// WithWeightFn installs a custom weight generator. It overrides any range.
func WithWeightFn(fn WeightFn) Option {
	return func(o *Options) {
		o.WeightFn = fn
	}
}

// WithWeightRange draws weights uniformly from [min, max]. The range is
// validated by NewGrid (ErrBadWeightRange).
func WithWeightRange(min, max int64) Option {
	return func(o *Options) {
		o.MinWeight, o.MaxWeight = min, max
		o.WeightFn = nil
	}
}

// WithSeed sets the RNG seed used for weight generation.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// DefaultOptions returns Options with no walls, the default weight range
// and DefaultSeed.
func DefaultOptions() Options {
	return Options{
		MinWeight: DefaultMinWeight,
		MaxWeight: DefaultMaxWeight,
		Seed:      DefaultSeed,
	}
}

// Grid is a rectangular board of weighted tiles. It is immutable once built.
// Width and Height define dimensions; walls and weights are private so the
// invariant (weights only on in-bounds, non-wall tiles) cannot be broken.
type Grid struct {
	Width, Height int
	walls         mapset.Set[core.Tile]
	weights       map[core.Tile]int64
}
