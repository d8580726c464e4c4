package gridgraph

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridchase/core"
)

// NewGrid builds a width×height board. Walls come from WithWalls; every other
// tile receives a weight from the configured WeightFn, drawn in row-major
// order (y asc, then x asc) so a fixed seed yields a fixed board.
//
// Returns ErrEmptyGrid if width or height is below 1, ErrWallOutOfBounds for a
// wall outside the board, ErrBadWeightRange for an invalid range and
// ErrBadWeight if the WeightFn produces a value below 1.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}

	weightFn := cfg.WeightFn
	if weightFn == nil {
		if cfg.MinWeight < 1 || cfg.MaxWeight < cfg.MinWeight {
			return nil, fmt.Errorf("%w: min=%d, max=%d", ErrBadWeightRange, cfg.MinWeight, cfg.MaxWeight)
		}
		weightFn = UniformWeightFn(cfg.MinWeight, cfg.MaxWeight)
	}

	gg := &Grid{
		Width:   width,
		Height:  height,
		walls:   mapset.New[core.Tile](),
		weights: make(map[core.Tile]int64, width*height),
	}
	for _, w := range cfg.Walls {
		if !gg.InBounds(w) {
			return nil, fmt.Errorf("%w: %s on %dx%d board", ErrWallOutOfBounds, w, width, height)
		}
		gg.walls.Put(w)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := core.Tile{X: x, Y: y}
			if gg.walls.Has(t) {
				continue
			}
			w := weightFn(rng)
			if w < 1 {
				return nil, fmt.Errorf("%w: %s got %d", ErrBadWeight, t, w)
			}
			gg.weights[t] = w
		}
	}

	return gg, nil
}

// FromWeights constructs a Grid from explicit weights where rows[y][x] is the
// entry cost of tile (x,y) and 0 marks a wall. It deep-copies the input.
// Returns ErrEmptyGrid if rows has no rows or no columns, ErrNonRectangular if
// any row length differs and ErrBadWeight for a negative value.
// Complexity: O(W×H) time and memory.
func FromWeights(rows [][]int64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	gg := &Grid{
		Width:   w,
		Height:  h,
		walls:   mapset.New[core.Tile](),
		weights: make(map[core.Tile]int64, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := core.Tile{X: x, Y: y}
			switch v := rows[y][x]; {
			case v < 0:
				return nil, fmt.Errorf("%w: %s got %d", ErrBadWeight, t, v)
			case v == 0:
				gg.walls.Put(t)
			default:
				gg.weights[t] = v
			}
		}
	}

	return gg, nil
}

// InBounds reports whether t lies within the board.
// Complexity: O(1).
func (gg *Grid) InBounds(t core.Tile) bool {
	return t.X >= 0 && t.X < gg.Width && t.Y >= 0 && t.Y < gg.Height
}

// IsWall reports whether t is a wall.
func (gg *Grid) IsWall(t core.Tile) bool {
	return gg.walls.Has(t)
}

// Passable reports whether t is in bounds and not a wall.
func (gg *Grid) Passable(t core.Tile) bool {
	return gg.InBounds(t) && !gg.walls.Has(t)
}

// Weight returns the entry weight of t and whether t carries one.
func (gg *Grid) Weight(t core.Tile) (int64, bool) {
	w, ok := gg.weights[t]
	return w, ok
}

// Neighbors returns the passable 4-neighbours of t in the order
// right, up, left, down. Walls and out-of-bounds tiles are skipped.
// Complexity: O(1).
func (gg *Grid) Neighbors(t core.Tile) []core.Tile {
	out := make([]core.Tile, 0, len(core.Cardinal))
	for _, d := range core.Cardinal {
		n := t.Step(d)
		if gg.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Cost returns the weight of entering t. Tiles without a weight (walls,
// out-of-bounds) cost 0, which the search engine rejects.
func (gg *Grid) Cost(t core.Tile) int64 {
	return gg.weights[t]
}

// Size returns Width×Height.
func (gg *Grid) Size() int {
	return gg.Width * gg.Height
}

// Walls returns the wall tiles sorted by core.Tile.Less.
func (gg *Grid) Walls() []core.Tile {
	out := make([]core.Tile, 0, gg.walls.Size())
	gg.walls.Each(func(t core.Tile) {
		out = append(out, t)
	})
	sortTiles(out)
	return out
}

// Tiles returns every passable tile sorted by core.Tile.Less.
func (gg *Grid) Tiles() []core.Tile {
	out := make([]core.Tile, 0, len(gg.weights))
	for t := range gg.weights {
		out = append(out, t)
	}
	sortTiles(out)
	return out
}

func sortTiles(ts []core.Tile) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Less(ts[j]) })
}
