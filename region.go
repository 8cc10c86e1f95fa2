package hexgeo

import "github.com/zyedidia/generic/mapset"

// RangeBase returns every cell within radius planar steps of p, at p's
// height. The inner loop is bounded on both sides so the region comes out
// hexagonal rather than rhomboidal.
func RangeBase(p Point, radius int) mapset.Set[Point] {
	set := mapset.New[Point]()

	for dq := -radius; dq <= radius; dq++ {
		lower := max(-radius, -dq-radius)
		upper := min(radius, -dq+radius)

		for ds := lower; ds <= upper; ds++ {
			dr := -dq - ds
			set.Put(p.Add(NewPoint(dq, dr, 0)))
		}
	}

	return set
}

// Range returns every cell within radius combined (planar plus height)
// steps of p: planar hexagonal slices that shrink as they move away from
// p's height, stacked into an octahedron-like solid.
func Range(p Point, radius int) mapset.Set[Point] {
	set := RangeBase(p, radius)

	for step := 1; step <= radius; step++ {
		diff := radius - step
		up := Travel(p, Up, step)
		down := Travel(p, Down, step)

		RangeBase(up, diff).Each(set.Put)
		RangeBase(down, diff).Each(set.Put)
	}

	return set
}

// RingBase returns the hollow hexagonal shell exactly radius planar steps
// from p: the boundary is walked from radius steps Northwest of p, clockwise
// through the six directions, radius unit steps each, recording each cell
// before stepping. 6*radius cells for a positive radius; the center cell
// alone otherwise.
func RingBase(p Point, radius int) mapset.Set[Point] {
	set := mapset.New[Point]()

	if radius <= 0 {
		set.Put(p)
		return set
	}

	position := Travel(p, Northwest, radius)
	for _, direction := range planarDirections {
		for i := 0; i < radius; i++ {
			set.Put(position)
			position = Travel(position, direction, 1)
		}
	}

	return set
}

// Ring returns the hollow shell exactly radius combined steps from p:
// planar rings shrinking with height, capped by the two poles straight up
// and straight down.
func Ring(p Point, radius int) mapset.Set[Point] {
	set := RingBase(p, radius)
	if radius <= 0 {
		return set
	}

	for step := 1; step <= radius; step++ {
		diff := radius - step
		up := Travel(p, Up, step)
		down := Travel(p, Down, step)

		RingBase(up, diff).Each(set.Put)
		RingBase(down, diff).Each(set.Put)
	}

	set.Put(Travel(p, Up, radius))
	set.Put(Travel(p, Down, radius))

	return set
}
