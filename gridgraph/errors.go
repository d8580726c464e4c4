package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the board has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrWallOutOfBounds indicates a wall tile outside the board.
	ErrWallOutOfBounds = errors.New("gridgraph: wall outside the board")
	// ErrBadWeightRange indicates a weight range with min < 1 or max < min.
	ErrBadWeightRange = errors.New("gridgraph: weight range must satisfy 1 <= min <= max")
	// ErrBadWeight indicates a tile weight that would break the ≥1 invariant.
	ErrBadWeight = errors.New("gridgraph: tile weight must be at least 1")
)
