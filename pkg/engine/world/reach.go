package world

import (
	"github.com/zyedidia/generic/mapset"
)

// CoordSet is a set of grid coordinates
type CoordSet = mapset.Set[Coord]

// Reachable returns every walkable cell 4-connected to start.
// The set is empty when start is not walkable.
func (g *Grid) Reachable(start Coord) CoordSet {
	visited := mapset.New[Coord]()
	if !g.IsWalkable(start) {
		return visited
	}

	queue := []Coord{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			n := current.Step(dir)
			if g.IsWalkable(n) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return visited
}

// IsConnected reports whether every walkable cell is reachable from start
func (g *Grid) IsConnected(start Coord) bool {
	total := g.Count(Tag.Walkable)
	return total > 0 && g.Reachable(start).Size() == total
}
