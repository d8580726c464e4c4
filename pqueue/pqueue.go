package pqueue

import (
	"errors"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/gridchase/core"
)

// ErrEmptyQueue indicates Get was called with no pending entries.
// Callers are expected to guard with IsEmpty; seeing this error is a bug.
var ErrEmptyQueue = errors.New("pqueue: get from empty queue")

// entry is a single pending (tile, priority) pair.
type entry struct {
	tile     core.Tile
	priority int64
}

// less orders entries by priority, falling back to tile order on ties.
func less(a, b entry) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.tile.Less(b.tile)
}

// Queue is a min-priority queue of tiles. The zero value is not usable;
// construct with New.
type Queue struct {
	h *heap.Heap[entry]
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{h: heap.New[entry](less)}
}

// Put inserts t with the given priority. Duplicate tiles are accepted.
func (q *Queue) Put(t core.Tile, priority int64) {
	q.h.Push(entry{tile: t, priority: priority})
}

// Get removes and returns the tile with the lowest pending priority.
// Returns ErrEmptyQueue when nothing is pending.
func (q *Queue) Get() (core.Tile, error) {
	e, ok := q.h.Pop()
	if !ok {
		return core.Tile{}, ErrEmptyQueue
	}
	return e.tile, nil
}

// Len returns the number of pending entries, stale duplicates included.
func (q *Queue) Len() int { return q.h.Size() }

// IsEmpty reports whether no entries remain.
func (q *Queue) IsEmpty() bool { return q.h.Size() == 0 }
