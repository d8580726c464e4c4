// Package astar implements weighted A* search over a 4-connected tile grid
// and the reconstruction of the route it finds.
//
// Search computes, from a start tile towards a goal tile, the cheapest known
// cost of every tile it touches (Costs) together with the tile each one was
// reached from (Predecessors). Entering a tile costs Graph.Cost(tile); the
// start tile itself is free. Exploration order is cost-so-far plus a heuristic
// estimate of the remaining cost, Manhattan distance by default.
//
// Algorithm:
//
//  1. Seed the frontier with start at priority 0; prev[start] = none,
//     cost[start] = 0.
//  2. Pop the lowest-priority tile; stop when it is the goal.
//  3. For every neighbour n: new = cost[current] + Cost(n). If n is unseen or
//     new < cost[n], record cost and predecessor and push n with priority
//     new + h(goal, n).
//  4. An exhausted frontier means the goal is unreachable: it is absent from
//     both maps, and Reconstruct reports ErrNoPath.
//
// The frontier is lazy: improved tiles are pushed again instead of having
// their key decreased, and stale entries are simply expanded against the
// up-to-date cost table.
//
// Admissibility:
//
//	Manhattan distance never overestimates as long as every entry cost is ≥ 1
//	and movement is 4-directional, so the first pop of the goal carries the
//	optimal cost. Search rejects a cost below 1 with ErrNonPositiveCost.
//
// Complexity:
//
//   - Time:  O(E log E) with E ≤ 4·V pushes on a V-tile board.
//   - Space: O(V + E).
//
// Errors:
//
//   - ErrNilGraph              – Search called with a nil Graph.
//   - ErrNonPositiveCost       – a neighbour reported a cost below 1.
//   - ErrNoPath                – goal missing from the predecessor map.
//   - ErrReconstructionOverrun – predecessor chain is cyclic or broken.
//
// Example:
//
//	prev, costs, err := astar.Search(grid, start, goal)
//	if err != nil {
//	    return err
//	}
//	path, err := astar.Reconstruct(prev, start, goal)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // target currently unreachable
//	}
//	fmt.Println(path, costs[goal])
package astar
