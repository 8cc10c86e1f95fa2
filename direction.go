package hexgeo

// Direction is one of the eight ways to leave a cell: the six planar compass
// directions in clockwise order starting at East, plus Up and Down.
type Direction int

const (
	East Direction = iota
	Southeast
	Southwest
	West
	Northwest
	Northeast
	Up
	Down
)

// planarDirections lists the six compass directions in clockwise order.
// RingBase walks them in this order.
var planarDirections = [6]Direction{East, Southeast, Southwest, West, Northwest, Northeast}

// travelOffsets maps each direction to its unit step. Indexed by every
// Direction value, so lookups are total without a fallback arm.
var travelOffsets = [8]Point{
	East:      {Q: 1, R: 0, T: 0},
	Southeast: {Q: 0, R: 1, T: 0},
	Southwest: {Q: -1, R: 1, T: 0},
	West:      {Q: -1, R: 0, T: 0},
	Northwest: {Q: 0, R: -1, T: 0},
	Northeast: {Q: 1, R: -1, T: 0},
	Up:        {Q: 0, R: 0, T: 1},
	Down:      {Q: 0, R: 0, T: -1},
}

var opposites = [8]Direction{
	East:      West,
	Southeast: Northwest,
	Southwest: Northeast,
	West:      East,
	Northwest: Southeast,
	Northeast: Southwest,
	Up:        Down,
	Down:      Up,
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case Southeast:
		return "southeast"
	case Southwest:
		return "southwest"
	case West:
		return "west"
	case Northwest:
		return "northwest"
	case Northeast:
		return "northeast"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// DirectionBetween returns the direction of the unit step from a to b.
// It reports false when b is not exactly one step from a; the tracer and
// flood only ever ask about adjacent cells, so callers treat false as
// "no shared edge".
func DirectionBetween(a, b Point) (Direction, bool) {
	diff := b.Sub(a)
	for i, offset := range travelOffsets {
		if diff == offset {
			return Direction(i), true
		}
	}
	return East, false
}
