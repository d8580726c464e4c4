package chase

import (
	"github.com/katalvlaran/gridchase/core"
	"github.com/katalvlaran/gridchase/gridgraph"
)

// Classic board dimensions and starting layout.
const (
	ClassicWidth  = 10
	ClassicHeight = 10
)

var (
	// ClassicHunter is the hunter's starting tile on the classic board.
	ClassicHunter = core.Tile{X: 8, Y: 8}
	// ClassicPrey is the prey's starting tile on the classic board.
	ClassicPrey = core.Tile{X: 1, Y: 1}
	// ClassicExit is the escape tile; the hunter starts on top of it.
	ClassicExit = core.Tile{X: 8, Y: 8}
)

// classicLayout draws the classic board, '#' for walls.
var classicLayout = [ClassicHeight]string{
	"##########",
	"#........#",
	"#..#..#..#",
	"#.##..##.#",
	"#........#",
	"#........#",
	"#.##..##.#",
	"#..#..#..#",
	"#........#",
	"##########",
}

// ClassicWalls returns the wall tiles of the classic 10×10 board in
// row-major order.
func ClassicWalls() []core.Tile {
	var walls []core.Tile
	for y, row := range classicLayout {
		for x, c := range row {
			if c == '#' {
				walls = append(walls, core.Tile{X: x, Y: y})
			}
		}
	}
	return walls
}

// NewClassicGrid builds the classic board. Extra options (seed, weight range)
// are applied after the walls.
func NewClassicGrid(opts ...gridgraph.Option) (*gridgraph.Grid, error) {
	all := append([]gridgraph.Option{gridgraph.WithWalls(ClassicWalls()...)}, opts...)
	return gridgraph.NewGrid(ClassicWidth, ClassicHeight, all...)
}
