// Package core defines the Tile value type shared by every gridchase package.
//
// A Tile is a discrete grid cell identified by integer coordinates (X, Y).
// X grows to the right and Y grows downwards, so the cardinal offsets are:
//
//	          (0,-1) up
//	(-1,0) left  ·  (1,0) right
//	          (0,1) down
//
// Tiles are plain comparable values: two tiles with equal X and Y are the
// same key in a map or a set. Tile.Less gives a total order (X first, then Y)
// used by the priority queue to break ties deterministically.
//
// Core API:
//
//	Tile{X, Y}            // construct
//	t.Add(dx, dy) Tile    // O(1)
//	t.Step(d) Tile        // O(1), d is a Direction
//	t.Less(u) bool        // O(1)
//	Manhattan(a, b) int64 // O(1), |ax-bx| + |ay-by|
//	Cardinal              // [Right, Up, Left, Down]
package core
