// Package generator builds maze grids.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"darkmaze/pkg/engine/world"
)

// ErrInvalidParams is returned when generation parameters cannot produce a maze.
var ErrInvalidParams = errors.New("invalid maze parameters")

// Limits on generation parameters
const (
	MinDimension         = 3    // Smallest width/height with a carvable interior
	DefaultMaxSplitDepth = 1000 // Effectively unbounded; recursion stops when regions can't split
)

// Params configures a maze generation run
type Params struct {
	Width         int
	Height        int
	MinRegionSize int // Minimum size of a region along the split axis
	MaxSplitDepth int // Maximum depth of the BSP tree
}

// Validate checks the parameters and returns an error wrapping ErrInvalidParams
func (p Params) Validate() error {
	if p.Width < MinDimension || p.Height < MinDimension {
		return fmt.Errorf("%w: size %dx%d is smaller than %dx%d", ErrInvalidParams, p.Width, p.Height, MinDimension, MinDimension)
	}
	if p.MinRegionSize < 1 {
		return fmt.Errorf("%w: minimum region size %d must be positive", ErrInvalidParams, p.MinRegionSize)
	}
	if p.MaxSplitDepth < 1 {
		return fmt.Errorf("%w: split depth %d must be positive", ErrInvalidParams, p.MaxSplitDepth)
	}
	return nil
}

// Maze is the result of a generation run
type Maze struct {
	Grid   *world.Grid
	Start  world.Coord
	Exit   world.Coord
	Leaves int // Number of leaf regions carved
}

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(rng *rand.Rand) (*Maze, error)
	Name() string
}
