package core

// Direction is one of the four cardinal unit moves.
type Direction int

const (
	// Right is (+1, 0).
	Right Direction = iota
	// Up is (0, -1).
	Up
	// Left is (-1, 0).
	Left
	// Down is (0, +1).
	Down
)

// offsets is indexed by Direction.
var offsets = [4][2]int{
	Right: {1, 0},
	Up:    {0, -1},
	Left:  {-1, 0},
	Down:  {0, 1},
}

// Cardinal lists the four directions in neighbour-expansion order:
// right, up, left, down (+x, -y, -x, +y).
var Cardinal = [4]Direction{Right, Up, Left, Down}

// Offset returns the (dx, dy) unit vector of d.
// An unknown direction yields (0, 0).
func (d Direction) Offset() (dx, dy int) {
	if d < Right || d > Down {
		return 0, 0
	}
	return offsets[d][0], offsets[d][1]
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	}
	return "unknown"
}
