// Package gridgraph models the chase board: a rectangular grid of tiles where
// some tiles are walls and every other tile carries a positive entry weight.
//
// What:
//
//   - Grid owns the board dimensions, the wall set and the weight table.
//   - Neighbors returns the passable 4-neighbours of a tile in the fixed
//     order right, up, left, down (+x, -y, -x, +y).
//   - Cost returns the weight of entering a tile.
//   - Region / Components flood-fill the passable tiles.
//
// Grid satisfies astar.Graph and is immutable once built, so it may be
// searched repeatedly across turns without copying.
//
// Construction:
//
//   - NewGrid(width, height, opts...): walls from WithWalls, weights drawn
//     from a seeded RNG (WithSeed) through a WeightFn (WithWeightFn or
//     WithWeightRange). Default range is [DefaultMinWeight, DefaultMaxWeight].
//   - FromWeights(rows): explicit weights, 0 marks a wall.
//
// Invariant: every weight entry is in bounds and not a wall; every weight
// is ≥ 1, which keeps the Manhattan heuristic admissible.
//
// Complexity:
//
//   - NewGrid, FromWeights: O(W×H) time and memory.
//   - Neighbors, Cost, InBounds, IsWall: O(1).
//   - Region: O(W×H), Components: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height below 1, or no rows/columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrWallOutOfBounds: a wall lies outside the board.
//   - ErrBadWeightRange: weight range with min < 1 or max < min.
//   - ErrBadWeight: a weight below 1 (or negative in FromWeights).
package gridgraph
