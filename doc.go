// Package gridchase is the pathfinding core of a turn-based chase game: a
// hunter recomputes, every turn, the cheapest route towards a fleeing prey on
// a weighted tile grid.
//
// What is inside:
//
//	core/        Tile value type, cardinal directions, Manhattan distance
//	pqueue/      lazy binary min-heap of tiles ordered by priority
//	gridgraph/   the board: walls, per-tile weights, neighbours, regions
//	astar/       weighted A* search, path reconstruction, path cost
//	chase/       game sessions: prey moves, hunter steps, logging and metrics
//
// Quick example:
//
//	grid, _ := chase.NewClassicGrid()
//	path, cost, err := astar.FindPath(grid, chase.ClassicHunter, chase.ClassicPrey)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // prey unreachable this turn
//	}
//	fmt.Println(path[1], cost) // the hunter's next step
//
// Movement is 4-directional and every tile costs at least 1 to enter, which
// keeps the Manhattan heuristic admissible and the returned routes optimal.
//
// Runnable demo:
//
//	go run ./examples/scripted_chase
package gridchase
