// Package setup checks a generated maze and installs it into the game.
package setup

import (
	"errors"
	"fmt"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/state"
)

// ErrUnsolvable is returned for a maze the player could not finish.
var ErrUnsolvable = errors.New("maze is not solvable")

// SetupMaze verifies maze and resets g onto it.
func SetupMaze(g *state.Game, maze *generator.Maze, seed int64) error {
	if err := CheckSolvable(maze); err != nil {
		return err
	}
	g.Reset(maze, seed)
	return nil
}

// CheckSolvable verifies that start and exit are open, the exit is reachable
// from the start, every open cell belongs to the same component and the
// border is solid wall.
func CheckSolvable(maze *generator.Maze) error {
	grid := maze.Grid
	if grid == nil {
		return fmt.Errorf("%w: no grid", ErrUnsolvable)
	}

	if !grid.IsWalkable(maze.Start) {
		return fmt.Errorf("%w: start %v is not open", ErrUnsolvable, maze.Start)
	}
	if grid.At(maze.Exit) != world.Exit {
		return fmt.Errorf("%w: exit %v is not tagged", ErrUnsolvable, maze.Exit)
	}

	reachable := grid.Reachable(maze.Start)
	if !reachable.Has(maze.Exit) {
		return fmt.Errorf("%w: exit %v unreachable from %v", ErrUnsolvable, maze.Exit, maze.Start)
	}
	if open := grid.Count(world.Tag.Walkable); reachable.Size() != open {
		return fmt.Errorf("%w: %d of %d open cells reachable", ErrUnsolvable, reachable.Size(), open)
	}

	var breach *world.Coord
	grid.ForEachCell(func(c world.Coord, t world.Tag) {
		if breach == nil && grid.IsOnPerimeter(c) && t != world.Wall {
			breach = &c
		}
	})
	if breach != nil {
		return fmt.Errorf("%w: border open at %v", ErrUnsolvable, *breach)
	}
	return nil
}
