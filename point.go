// Package hexgeo is a geometric kernel for hexagonal tile grids with a
// vertical axis. Positions are cube coordinates (q, r, with derived s)
// stacked with a height t. The package answers distance, line/ray,
// range/ring/flood and rotation queries; it owns no grid state and every
// function is pure, so a read-only wall map may be shared between goroutines.
package hexgeo

import "fmt"

// Point is a position on the hex grid.
//
// Q and R are the two stored cube axes; the third cube axis s is always
// derived as -Q-R so that q+r+s == 0 holds for every point. T is the height.
// Points are plain values: comparable, hashable, cheap to copy.
type Point struct {
	Q, R, T int
}

// NewPoint returns the point at (q, r, t).
func NewPoint(q, r, t int) Point {
	return Point{Q: q, R: r, T: t}
}

// NewPoint2D returns the point at (q, r) with zero height.
func NewPoint2D(q, r int) Point {
	return NewPoint(q, r, 0)
}

// S returns the derived third cube coordinate.
func (p Point) S() int {
	return -p.Q - p.R
}

// Add returns the componentwise sum of two points.
func (p Point) Add(o Point) Point {
	return NewPoint(p.Q+o.Q, p.R+o.R, p.T+o.T)
}

// Sub returns the componentwise difference of two points.
func (p Point) Sub(o Point) Point {
	return NewPoint(p.Q-o.Q, p.R-o.R, p.T-o.T)
}

// Values returns the stored coordinates (q, r, t).
func (p Point) Values() (q, r, t int) {
	return p.Q, p.R, p.T
}

// Values2D returns the planar coordinates (q, r).
func (p Point) Values2D() (q, r int) {
	return p.Q, p.R
}

// CubeValues returns all four coordinates (q, r, s, t) with s derived.
func (p Point) CubeValues() (q, r, s, t int) {
	return p.Q, p.R, p.S(), p.T
}

// CubeValues2D returns the three planar cube coordinates (q, r, s).
func (p Point) CubeValues2D() (q, r, s int) {
	return p.Q, p.R, p.S()
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.Q, p.R, p.T)
}

// Positioned is anything anchored to a single grid point. Point is its own
// position; a Prism sits at the cell it walls.
type Positioned interface {
	Position() Point
}

// Position returns the point itself.
func (p Point) Position() Point {
	return p
}
