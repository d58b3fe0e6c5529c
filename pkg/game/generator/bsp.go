package generator

import (
	"math/rand"

	"darkmaze/pkg/engine/world"
)

// BSPGenerator generates mazes using Binary Space Partitioning
type BSPGenerator struct {
	params Params
}

// NewBSPGenerator validates params and returns a generator bound to them
func NewBSPGenerator(params Params) (*BSPGenerator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &BSPGenerator{params: params}, nil
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// Generate builds a new maze with the generator's parameters
func (g *BSPGenerator) Generate(rng *rand.Rand) (*Maze, error) {
	return Generate(g.params, rng)
}

// region is a node of the BSP tree. Children are owned by value through
// the pointers; the tree is dropped once the grid is carved.
type region struct {
	x, y, width, height int
	left, right         *region
}

func (r *region) isLeaf() bool {
	return r.left == nil && r.right == nil
}

// Constants for BSP generation
const (
	leafMargin  = 1                // Wall kept on each side of a leaf interior
	minLeafSize = 2*leafMargin + 1 // Smallest leaf with a non-empty interior
	elongation  = 1.5              // Aspect ratio above which the long axis is always split
)

// Generate builds a maze: an all-wall grid whose leaf interiors and
// sibling connectors are carved to floor, with start and exit on floor.
// The result is fully determined by params and the state of rng.
func Generate(params Params, rng *rand.Rand) (*Maze, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	grid := world.NewGrid(params.Width, params.Height)

	minSize := params.MinRegionSize
	if minSize < minLeafSize {
		minSize = minLeafSize
	}

	root := &region{x: 0, y: 0, width: params.Width, height: params.Height}
	splitRegion(root, minSize, params.MaxSplitDepth, 0, rng)

	leaves := carveLeaves(grid, root)
	connectRegions(grid, root, rng)

	start := scanForFloor(grid, world.Coord{X: 1, Y: 1}, 1)
	exit := scanForFloor(grid, world.Coord{X: params.Width - 2, Y: params.Height - 2}, -1)
	grid.Set(exit, world.Exit)

	return &Maze{
		Grid:   grid,
		Start:  start,
		Exit:   exit,
		Leaves: leaves,
	}, nil
}

// splitRegion recursively splits a region until no child can be at least
// minSize along a split axis or maxDepth is reached
func splitRegion(node *region, minSize, maxDepth, depth int, rng *rand.Rand) {
	if depth >= maxDepth {
		return
	}

	canSplitX := node.width >= minSize*2
	canSplitY := node.height >= minSize*2

	// Decide split direction
	var splitHorizontal bool
	switch {
	case canSplitX && canSplitY:
		if float64(node.width) >= float64(node.height)*elongation {
			splitHorizontal = false
		} else if float64(node.height) >= float64(node.width)*elongation {
			splitHorizontal = true
		} else {
			splitHorizontal = rng.Intn(2) == 0
		}
	case canSplitX:
		splitHorizontal = false
	case canSplitY:
		splitHorizontal = true
	default:
		return // Leaf
	}

	if splitHorizontal {
		// Top and bottom
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &region{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &region{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Left and right
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &region{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &region{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitRegion(node.left, minSize, maxDepth, depth+1, rng)
	splitRegion(node.right, minSize, maxDepth, depth+1, rng)
}

// carveLeaves marks every leaf interior as floor and returns the leaf count
func carveLeaves(grid *world.Grid, node *region) int {
	if !node.isLeaf() {
		return carveLeaves(grid, node.left) + carveLeaves(grid, node.right)
	}

	for y := node.y + leafMargin; y < node.y+node.height-leafMargin; y++ {
		for x := node.x + leafMargin; x < node.x+node.width-leafMargin; x++ {
			grid.Carve(world.Coord{X: x, Y: y})
		}
	}
	return 1
}

// connectRegions carves one L-shaped connector between the two children of
// every internal node
func connectRegions(grid *world.Grid, node *region, rng *rand.Rand) {
	if node.isLeaf() {
		return
	}

	from := representativePoint(node.left, rng)
	to := representativePoint(node.right, rng)

	if rng.Intn(2) == 0 {
		// Horizontal first, then vertical
		carveHorizontal(grid, from.Y, from.X, to.X)
		carveVertical(grid, to.X, from.Y, to.Y)
	} else {
		// Vertical first, then horizontal
		carveVertical(grid, from.X, from.Y, to.Y)
		carveHorizontal(grid, to.Y, from.X, to.X)
	}

	connectRegions(grid, node.left, rng)
	connectRegions(grid, node.right, rng)
}

// representativePoint picks a random interior cell of a random leaf in the subtree
func representativePoint(node *region, rng *rand.Rand) world.Coord {
	for !node.isLeaf() {
		if rng.Intn(2) == 0 {
			node = node.left
		} else {
			node = node.right
		}
	}

	innerW := node.width - 2*leafMargin
	innerH := node.height - 2*leafMargin
	return world.Coord{
		X: node.x + leafMargin + rng.Intn(innerW),
		Y: node.y + leafMargin + rng.Intn(innerH),
	}
}

// carveHorizontal carves row from startCol to endCol inclusive
func carveHorizontal(grid *world.Grid, row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		grid.Carve(world.Coord{X: col, Y: row})
	}
}

// carveVertical carves col from startRow to endRow inclusive
func carveVertical(grid *world.Grid, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		grid.Carve(world.Coord{X: col, Y: row})
	}
}

// scanForFloor walks diagonally from origin by step until it finds a floor
// cell. If the walk leaves the grid it falls back to a row-major scan, in
// reverse when step is negative.
func scanForFloor(grid *world.Grid, origin world.Coord, step int) world.Coord {
	for c := origin; grid.InBounds(c); c = (world.Coord{X: c.X + step, Y: c.Y + step}) {
		if grid.At(c) == world.Floor {
			return c
		}
	}

	w, h := grid.Width(), grid.Height()
	for i := 0; i < w*h; i++ {
		idx := i
		if step < 0 {
			idx = w*h - 1 - i
		}
		c := world.Coord{X: idx % w, Y: idx / w}
		if grid.At(c) == world.Floor {
			return c
		}
	}
	return origin
}
