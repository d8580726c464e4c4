package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridchase/core"
	"github.com/katalvlaran/gridchase/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors shows the right, up, left, down expansion order and
// how walls are skipped.
//
//	. . .
//	. . #
//	. . .
func ExampleGrid_Neighbors() {
	gg, _ := gridgraph.NewGrid(3, 3,
		gridgraph.WithWalls(core.Tile{X: 2, Y: 1}),
		gridgraph.WithWeightFn(gridgraph.ConstantWeightFn(1)),
	)
	fmt.Println(gg.Neighbors(core.Tile{X: 1, Y: 1}))
	fmt.Println(gg.Neighbors(core.Tile{X: 0, Y: 0}))

	// Output:
	// [1,0 0,1 1,2]
	// [1,0 0,1]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Components counts the regions of a board split by walls.
func ExampleGrid_Components() {
	gg, _ := gridgraph.FromWeights([][]int64{
		{3, 0, 2},
		{4, 0, 0},
		{0, 5, 1},
	})
	for i, comp := range gg.Components() {
		fmt.Printf("region %d: %v\n", i, comp)
	}

	// Output:
	// region 0: [0,0 0,1]
	// region 1: [2,0]
	// region 2: [1,2 2,2]
}
