package hexgeo

import "github.com/zyedidia/generic/mapset"

// neighborFunc generates the cells one hop from a frontier cell.
type neighborFunc func(Point, int) mapset.Set[Point]

// floodFrom expands breadth-first from start for exactly radius rounds.
// Each round grows a new frontier from the previous one; a neighbor joins
// it only when it has not been visited and no wall separates it from the
// frontier cell that generated it. The start cell is always reachable from
// itself, so the result is never empty.
func floodFrom(start Point, radius int, neighbors neighborFunc, walls Walls) mapset.Set[Point] {
	visited := mapset.New[Point]()
	frontier := []Point{start}

	for round := 0; round < radius; round++ {
		var found []Point

		for _, cell := range frontier {
			neighbors(cell, 1).Each(func(neighbor Point) {
				if visited.Has(neighbor) {
					return
				}
				if walls != nil && walls.HasWallBetween(cell, neighbor) {
					return
				}
				found = append(found, neighbor)
			})
		}

		for _, cell := range frontier {
			visited.Put(cell)
		}
		frontier = found
	}

	for _, cell := range frontier {
		visited.Put(cell)
	}

	return visited
}

// FloodBase returns the cells reachable from p within radius planar hops
// without crossing a wall, all at p's height.
func FloodBase(p Point, radius int, walls Walls) mapset.Set[Point] {
	return floodFrom(p, radius, RangeBase, walls)
}

// Flood returns the cells reachable from p within radius hops in three
// dimensions without crossing a wall. A cell inside the radius is still
// excluded when every path to it is blocked.
func Flood(p Point, radius int, walls Walls) mapset.Set[Point] {
	return floodFrom(p, radius, Range, walls)
}
