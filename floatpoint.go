package hexgeo

import "math"

// FloatPoint is a point with float32 coordinates.
//
// It only exists as scratch space for the line tracer: the interpolated
// cursor lives here until Round snaps it back onto the grid. float32 keeps
// the arithmetic identical across platforms for the same inputs.
type FloatPoint struct {
	Q, R, T float32
}

// NewFloatPoint returns the float point at (q, r, t).
func NewFloatPoint(q, r, t float32) FloatPoint {
	return FloatPoint{Q: q, R: r, T: t}
}

// FloatPointOf converts an integer point to float coordinates.
func FloatPointOf(p Point) FloatPoint {
	return NewFloatPoint(float32(p.Q), float32(p.R), float32(p.T))
}

// S returns the derived third cube coordinate.
func (f FloatPoint) S() float32 {
	return -f.Q - f.R
}

// Add returns the componentwise sum of two float points.
func (f FloatPoint) Add(o FloatPoint) FloatPoint {
	return NewFloatPoint(f.Q+o.Q, f.R+o.R, f.T+o.T)
}

// Round snaps a float point back to the nearest grid point.
//
// Each of q, r, s, t is rounded to the nearest integer independently, which
// can break the q+r+s == 0 invariant. The axis with the largest rounding
// error is then re-derived from the other two: q is corrected when its error
// strictly exceeds both others, otherwise r is corrected when s rounded more
// cleanly than r. The order of those checks is what decides which of two
// adjacent cells a borderline cursor lands in, so it must not be reordered.
func (f FloatPoint) Round() Point {
	q, r, s, t := f.Q, f.R, f.S(), f.T

	rq := float32(math.Round(float64(q)))
	rr := float32(math.Round(float64(r)))
	rs := float32(math.Round(float64(s)))
	rt := float32(math.Round(float64(t)))

	dq := abs32(rq - q)
	dr := abs32(rr - r)
	ds := abs32(rs - s)

	if dq > ds && dq > dr {
		rq = -rs - rr
	} else if ds < dr {
		rr = -rq - rs
	}

	return NewPoint(int(rq), int(rr), int(rt))
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
