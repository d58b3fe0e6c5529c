package world

import (
	"strings"
)

// Grid is the occupancy map of a maze, stored row-major and indexed [row][col].
// Its dimensions are fixed at construction.
type Grid struct {
	cells  [][]Tag
	width  int
	height int
}

// NewGrid creates a new all-wall grid with the given dimensions
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions, every cell a Wall
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([][]Tag, height)
	for row := range g.cells {
		g.cells[row] = make([]Tag, width)
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if a coordinate lies within [0,width) x [0,height)
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsOnPerimeter checks if a coordinate is on the outer edge of the grid
func (g *Grid) IsOnPerimeter(c Coord) bool {
	return g.InBounds(c) && (c.X == 0 || c.Y == 0 || c.X == g.width-1 || c.Y == g.height-1)
}

// At returns the tag at c. Out of bounds coordinates read as Wall.
func (g *Grid) At(c Coord) Tag {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Y][c.X]
}

// Set sets the tag at c. Returns false if c is out of bounds.
func (g *Grid) Set(c Coord, t Tag) bool {
	if !g.InBounds(c) {
		return false
	}
	g.cells[c.Y][c.X] = t
	return true
}

// Carve marks c as Floor unless it is already walkable.
// Returns false if c is out of bounds.
func (g *Grid) Carve(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	if !g.cells[c.Y][c.X].Walkable() {
		g.cells[c.Y][c.X] = Floor
	}
	return true
}

// IsWalkable reports whether c is in bounds and not a wall
func (g *Grid) IsWalkable(c Coord) bool {
	return g.At(c).Walkable()
}

// Rows returns a copy of the cell tags, indexed [row][col]
func (g *Grid) Rows() [][]Tag {
	rows := make([][]Tag, g.height)
	for row := range g.cells {
		rows[row] = append([]Tag(nil), g.cells[row]...)
	}
	return rows
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(c Coord, t Tag)) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			fn(Coord{X: col, Y: row}, g.cells[row][col])
		}
	}
}

// Count returns the number of cells for which pred returns true
func (g *Grid) Count(pred func(Tag) bool) int {
	n := 0
	g.ForEachCell(func(_ Coord, t Tag) {
		if pred(t) {
			n++
		}
	})
	return n
}

// Equal reports whether other has the same dimensions and cell content
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// String renders the grid one row per line using Tag.Symbol
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for _, row := range g.cells {
		for _, t := range row {
			sb.WriteRune(t.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
