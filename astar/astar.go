package astar

import (
	"fmt"

	"github.com/katalvlaran/gridchase/core"
	"github.com/katalvlaran/gridchase/pqueue"
)

// Search runs weighted A* from start towards goal over g.
//
// Returns:
//
//   - prev:  predecessor map; prev[start] is the zero Link (no predecessor).
//   - costs: cheapest accumulated cost per visited tile; costs[start] == 0.
//   - err:   ErrNilGraph, or ErrNonPositiveCost wrapped with the offending tile.
//
// When the goal is unreachable Search still returns normally; the goal is then
// absent from both maps. start and goal are not validated: passing a wall or an
// out-of-bounds tile is the caller's mistake.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Space: O(V + E)
func Search(g Graph, start, goal core.Tile, opts ...Option) (Predecessors, Costs, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = Manhattan
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Initialize runner and seed the frontier.
	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		prev:    make(Predecessors),
		costs:   make(Costs),
		pq:      pqueue.New(),
	}
	r.init(start)

	// 4) Run main loop.
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.prev, r.costs, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       Graph         // board view; read-only during the search
	options Options       // heuristic and hooks
	goal    core.Tile     // target tile
	prev    Predecessors  // tile → tile it was reached from
	costs   Costs         // tile → cheapest known cost from start
	pq      *pqueue.Queue // lazy frontier
}

// init records start as the root and pushes it with priority 0.
func (r *runner) init(start core.Tile) {
	r.prev[start] = Link{}
	r.costs[start] = 0
	r.pq.Put(start, 0)
}

// process pops tiles until the goal is reached or the frontier is empty.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		current, err := r.pq.Get()
		if err != nil {
			return err
		}
		if r.options.OnExpand != nil {
			r.options.OnExpand(current)
		}
		if current == r.goal {
			return nil
		}
		if err = r.relax(current); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbour of current. Improved tiles are
// pushed again; older entries stay in the heap and are harmless because
// relaxation always reads the live cost table.
func (r *runner) relax(current core.Tile) error {
	base := r.costs[current]
	for _, next := range r.g.Neighbors(current) {
		step := r.g.Cost(next)
		if step < 1 {
			return fmt.Errorf("%w: %s costs %d", ErrNonPositiveCost, next, step)
		}

		newCost := base + step
		if old, seen := r.costs[next]; seen && newCost >= old {
			continue
		}

		r.costs[next] = newCost
		r.prev[next] = Link{From: current, Valid: true}
		r.pq.Put(next, newCost+r.options.Heuristic(r.goal, next))
	}

	return nil
}
