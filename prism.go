package hexgeo

// Prism is a cell annotated with wall strengths on four of its sides:
// East, Southeast, Southwest and Down. The other four sides belong to the
// neighboring cells — a cell's West wall is its western neighbor's East
// wall — so four strengths per cell describe every edge exactly once.
// A strength of zero is the same as no wall.
type Prism struct {
	At Point

	East, Southeast, Southwest, Down int
}

// NewPrism returns a prism at p with the given wall strengths.
func NewPrism(p Point, east, southeast, southwest, down int) Prism {
	return Prism{At: p, East: east, Southeast: southeast, Southwest: southwest, Down: down}
}

// Position returns the cell the prism walls.
func (p Prism) Position() Point {
	return p.At
}

// HasWall reports whether the prism has a wall of at least strength 1 in the
// given direction.
func (p Prism) HasWall(d Direction) bool {
	return p.HasWallStrength(d, 1)
}

// HasWallStrength reports whether the prism has a wall of at least the given
// strength in the given direction. Directions the prism does not store are
// never walled from this side.
func (p Prism) HasWallStrength(d Direction, strength int) bool {
	switch d {
	case East:
		return p.East >= strength
	case Southeast:
		return p.Southeast >= strength
	case Southwest:
		return p.Southwest >= strength
	case Down:
		return p.Down >= strength
	case West, Northwest, Northeast, Up:
		return false
	}
	return false
}

// Walls is the occlusion capability consumed by Ray, RayThrough and Flood.
// The kernel only ever asks about grid-adjacent pairs; implementations may
// report false for anything else.
type Walls interface {
	HasWallBetween(a, b Point) bool
}

// WallMap is a Walls implementation backed by a map of prisms keyed by their
// point. The caller owns and populates it; the kernel only reads it, so one
// map may serve concurrent queries as long as nobody mutates it meanwhile.
type WallMap map[Point]Prism

// NewWallMap returns an empty wall map.
func NewWallMap() WallMap {
	return make(WallMap)
}

// Put stores a prism, replacing any previous prism at the same point.
func (m WallMap) Put(p Prism) {
	m[p.At] = p
}

// At returns the prism stored for the cell p occupies.
func (m WallMap) At(p Positioned) (Prism, bool) {
	prism, ok := m[p.Position()]
	return prism, ok
}

// HasWall reports whether the cell at p declares a wall in the given
// direction. Cells without a prism have no walls.
func (m WallMap) HasWall(p Point, d Direction) bool {
	prism, ok := m[p]
	if !ok {
		return false
	}
	return prism.HasWall(d)
}

// HasWallBetween reports whether passage between the adjacent points a and b
// is blocked: either a declares a wall facing b, or b declares a wall facing
// a. Identical or non-adjacent points are never walled.
func (m WallMap) HasWallBetween(a, b Point) bool {
	if a == b {
		return false
	}
	dir, ok := DirectionBetween(a, b)
	if !ok {
		return false
	}
	return m.HasWall(a, dir) || m.HasWall(b, dir.Opposite())
}
