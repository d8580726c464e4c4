package astar

import (
	"fmt"

	"github.com/katalvlaran/gridchase/core"
)

// Reconstruct walks prev backwards from goal to start and returns the route
// start → goal, both endpoints included exactly once.
//
// Returns ErrNoPath if goal is not in prev. The walk is bounded by len(prev)
// steps; a longer chain, a missing link or a root other than start is reported
// as ErrReconstructionOverrun.
//
// Complexity: O(L) where L is the path length.
func Reconstruct(prev Predecessors, start, goal core.Tile) ([]core.Tile, error) {
	if !prev.Has(goal) {
		return nil, fmt.Errorf("%w: %s", ErrNoPath, goal)
	}

	path := []core.Tile{goal}
	current := goal
	for steps := 0; current != start; steps++ {
		if steps >= len(prev) {
			return nil, fmt.Errorf("%w: more than %d steps from %s", ErrReconstructionOverrun, len(prev), goal)
		}
		link, ok := prev[current]
		if !ok || !link.Valid {
			return nil, fmt.Errorf("%w: chain from %s ends at %s, not %s", ErrReconstructionOverrun, goal, current, start)
		}
		current = link.From
		path = append(path, current)
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// FindPath runs Search followed by Reconstruct and returns the route together
// with its total cost (costs[goal]).
func FindPath(g Graph, start, goal core.Tile, opts ...Option) ([]core.Tile, int64, error) {
	prev, costs, err := Search(g, start, goal, opts...)
	if err != nil {
		return nil, 0, err
	}
	path, err := Reconstruct(prev, start, goal)
	if err != nil {
		return nil, 0, err
	}
	return path, costs[goal], nil
}

// PathCost sums the entry costs of every tile in path except the first.
func PathCost(g Graph, path []core.Tile) int64 {
	var total int64
	for i := 1; i < len(path); i++ {
		total += g.Cost(path[i])
	}
	return total
}
