// Package chase runs the turn logic of the chase game on top of astar.
//
// A Session tracks three positions on an immutable gridgraph.Grid: the prey
// (controlled by the player), the hunter (controlled by the game) and the
// exit. Positions belong to the session, never to the grid.
//
// Each call to Play resolves one turn:
//
//  1. The prey moves one tile in the commanded direction, unless the target
//     is a wall or off the board, in which case it stays put.
//  2. The hunter recomputes the cheapest path to the prey from scratch and
//     takes its first step. If the prey is unreachable the hunter waits.
//  3. Hunter on prey ends the game as Caught; otherwise prey on exit ends it
//     as Escaped.
//
// Sessions log through log/slog (discarded unless WithLogger is given) and
// optionally record search metrics in Prometheus collectors (WithMetrics).
// A Session is not safe for concurrent use.
package chase
