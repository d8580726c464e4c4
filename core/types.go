package core

import "fmt"

// tileFmt is the fixed "x,y" rendering used by Tile.String.
const tileFmt = "%d,%d"

// Tile is an integer coordinate pair on the board.
// It is an immutable value type; equality is structural.
type Tile struct {
	X, Y int
}

// String renders the tile as "x,y".
func (t Tile) String() string {
	return fmt.Sprintf(tileFmt, t.X, t.Y)
}

// Add returns the tile offset by (dx, dy).
func (t Tile) Add(dx, dy int) Tile {
	return Tile{X: t.X + dx, Y: t.Y + dy}
}

// Step returns the tile one unit away from t in direction d.
func (t Tile) Step(d Direction) Tile {
	dx, dy := d.Offset()
	return Tile{X: t.X + dx, Y: t.Y + dy}
}

// Less reports whether t sorts before u: by X, then by Y.
func (t Tile) Less(u Tile) bool {
	if t.X != u.X {
		return t.X < u.X
	}
	return t.Y < u.Y
}

// Adjacent reports whether t and u share an edge (4-neighbourhood).
func (t Tile) Adjacent(u Tile) bool {
	return Manhattan(t, u) == 1
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
// Complexity: O(1).
func Manhattan(a, b Tile) int64 {
	return int64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
