// Package pqueue implements the min-priority frontier used by the A* engine.
//
// Entries are (tile, priority) pairs held in a binary min-heap. The queue is
// deliberately "lazy": Put never looks for an existing entry of the same tile,
// so a tile may sit in the heap several times with different priorities.
// Consumers that care about freshness check their own cost table when an
// entry is popped (see astar.Search).
//
// Ordering:
//
//   - Lower priority pops first.
//   - Equal priorities are broken by core.Tile.Less (X, then Y), which keeps
//     the pop sequence deterministic and therefore testable.
//
// Complexity:
//
//   - Put: O(log n)
//   - Get: O(log n)
//   - Len, IsEmpty: O(1)
//
// Errors:
//
//	ErrEmptyQueue - Get called on an empty queue.
package pqueue
