// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Tag is the occupancy tag of a single grid cell.
type Tag uint8

// Cell tags. The zero value is Wall so a freshly built grid is solid.
const (
	Wall Tag = iota
	Floor
	Exit
)

// String returns the name of the tag
func (t Tag) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// Walkable returns true if a player may stand on a cell with this tag
func (t Tag) Walkable() bool {
	return t == Floor || t == Exit
}

// Symbol returns the single-character symbol used in text dumps
func (t Tag) Symbol() rune {
	switch t {
	case Floor:
		return '.'
	case Exit:
		return 'E'
	default:
		return '#'
	}
}

// Coord identifies a grid cell. X is the column, Y is the row.
type Coord struct {
	X int
	Y int
}

// Step returns the coordinate one cell away in the given direction
func (c Coord) Step(dir Direction) Coord {
	dx, dy := dir.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String returns "(x,y)"
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
