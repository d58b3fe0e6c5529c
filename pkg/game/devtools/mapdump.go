// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/state"
)

// MapDumpFilename is where DumpMapToFile writes
const MapDumpFilename = "map.txt"

// ErrNoMaze is returned when the game has no grid yet
var ErrNoMaze = errors.New("no maze generated")

// PlayerSymbol marks the player in dumps
const PlayerSymbol = '@'

// WriteMapGrid writes the grid to w, one row per line, with the player overlaid.
func WriteMapGrid(w io.Writer, g *state.Game) {
	for y := 0; y < g.Grid.Height(); y++ {
		row := make([]rune, 0, g.Grid.Width())
		for x := 0; x < g.Grid.Width(); x++ {
			c := world.Coord{X: x, Y: y}
			if c == g.Player {
				row = append(row, PlayerSymbol)
				continue
			}
			row = append(row, g.Grid.At(c).Symbol())
		}
		fmt.Fprintln(w, string(row))
	}
}

// DumpMap writes a debug dump of the current maze to w: metadata, legend and map.
func DumpMap(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return ErrNoMaze
	}

	walkable := g.Grid.Count(world.Tag.Walkable)
	reachable := g.Grid.Reachable(g.Player).Size()

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAZE DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "maze_id: %s\n", g.MazeID)
	fmt.Fprintf(w, "maze_seed: %d\n", g.MazeSeed)
	fmt.Fprintf(w, "width: %d\n", g.Grid.Width())
	fmt.Fprintf(w, "height: %d\n", g.Grid.Height())
	fmt.Fprintf(w, "min_region_size: %d\n", g.Params.MinRegionSize)
	fmt.Fprintf(w, "max_split_depth: %d\n", g.Params.MaxSplitDepth)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "player: %d,%d\n", g.Player.X, g.Player.Y)
	fmt.Fprintf(w, "exit: %d,%d\n", g.Exit.X, g.Exit.Y)
	fmt.Fprintf(w, "phase: %s\n", g.Phase)
	fmt.Fprintf(w, "outcome: %s\n", g.Outcome)
	fmt.Fprintf(w, "moves: %d\n", g.Moves)
	fmt.Fprintf(w, "walkable_cells: %d\n", walkable)
	fmt.Fprintf(w, "reachable_from_player: %d\n", reachable)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintf(w, "%c = wall  %c = floor  %c = exit  %c = player\n",
		world.Wall.Symbol(), world.Floor.Symbol(), world.Exit.Symbol(), PlayerSymbol)
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	WriteMapGrid(w, g)
	return nil
}

// DumpMapToFile writes DumpMap output to map.txt and returns its absolute path.
func DumpMapToFile(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", ErrNoMaze
	}

	absPath, err := filepath.Abs(MapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
