package gridgraph

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridchase/core"
)

// Region returns every passable tile 4-connected to from, from included,
// in breadth-first order. An impassable from yields nil.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen set and output.
func (gg *Grid) Region(from core.Tile) []core.Tile {
	if !gg.Passable(from) {
		return nil
	}
	return gg.flood(from, mapset.New[core.Tile]())
}

// Connected reports whether a and b are passable and in the same region.
func (gg *Grid) Connected(a, b core.Tile) bool {
	if !gg.Passable(a) || !gg.Passable(b) {
		return false
	}
	for _, t := range gg.Region(a) {
		if t == b {
			return true
		}
	}
	return false
}

// Components finds all contiguous regions of passable tiles. Components are
// ordered by their first tile in row-major order; tiles inside a component
// are in breadth-first order from that first tile.
//
// Time:   O(W·H·4).
// Memory: O(W·H).
func (gg *Grid) Components() [][]core.Tile {
	seen := mapset.New[core.Tile]()
	var comps [][]core.Tile

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			t := core.Tile{X: x, Y: y}
			if gg.walls.Has(t) || seen.Has(t) {
				continue
			}
			comps = append(comps, gg.flood(t, seen))
		}
	}
	return comps
}

// flood runs a BFS from start, marking tiles in seen.
func (gg *Grid) flood(start core.Tile, seen mapset.Set[core.Tile]) []core.Tile {
	queue := []core.Tile{start}
	seen.Put(start)
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range gg.Neighbors(queue[qi]) {
			if !seen.Has(n) {
				seen.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return queue
}
