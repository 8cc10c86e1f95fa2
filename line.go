package hexgeo

import "github.com/zyedidia/generic/mapset"

// lerpOffset nudges the interpolated cursor off exact cell boundaries.
// Without it a cursor landing precisely on a hex edge or vertex would round
// unpredictably. The derived s axis picks up the negated, doubled offset
// automatically because s = -q - r.
const lerpOffset = 1e-6

// lineWalker is the tracer state: a float cursor advancing by a fixed step,
// its rounding, and the last emitted cell. It lives on the stack of a single
// trace call, keeping the tracer reentrant.
type lineWalker struct {
	current     Point
	roundTarget Point
	target      FloatPoint
	step        FloatPoint
}

func newLineWalker(start, end Point) lineWalker {
	return lineWalker{
		current:     start,
		roundTarget: start,
		target:      FloatPointOf(start),
		step:        stepSize(start, end),
	}
}

// stepSize returns the per-step float delta between two points.
//
// The planar distance sizes the step so that each macro-advance crosses one
// hex; height is interpolated alongside and decomposed into unit hops by the
// walker. A purely vertical line has no planar extent, so the height
// distance divides instead.
func stepSize(start, end Point) FloatPoint {
	var distance int
	if start.Q == end.Q && start.R == end.R {
		distance = HeightDistance(start, end)
	} else {
		distance = PlanarDistance(start, end)
	}

	fraction := 1 / float32(distance)
	lerp := func(a, b int) float32 {
		return lerpOffset + float32(b-a)*fraction
	}

	return NewFloatPoint(lerp(start.Q, end.Q), lerp(start.R, end.R), lerp(start.T, end.T))
}

// advance computes the next candidate cell without committing it.
//
// The float cursor only moves once the previously rounded target has been
// reached; short steps may leave the rounded cell unchanged for several
// calls. A rounded target at a different height is approached by unit
// vertical hops so that occlusion checks always see adjacent cells.
func (w *lineWalker) advance() Point {
	if w.roundTarget == w.current {
		w.target = w.target.Add(w.step)
		w.roundTarget = w.target.Round()
	}

	if dt := w.roundTarget.T - w.current.T; dt != 0 {
		return NewPoint(w.current.Q, w.current.R, w.current.T+signInt(dt))
	}
	return w.roundTarget
}

// trace walks up to budget cells from start toward (and possibly past) end,
// optionally stopping where walls block passage. The start cell is always
// included; start == end short-circuits before any step math, so the
// division in stepSize never sees a zero distance.
func trace(start, end Point, budget int, walls Walls) mapset.Set[Point] {
	set := mapset.New[Point]()
	set.Put(start)

	if start == end {
		return set
	}

	walker := newLineWalker(start, end)
	for i := 0; i < budget; i++ {
		next := walker.advance()
		if walls != nil && walls.HasWallBetween(walker.current, next) {
			break
		}
		walker.current = next
		set.Put(next)
	}

	return set
}

// Line returns every cell on the line from a to b, vertical travel
// decomposed into unit hops.
func Line(a, b Point) mapset.Set[Point] {
	return trace(a, b, Distance(a, b), nil)
}

// LineThrough returns the cells on the line from a through b, continuing
// until rng cells have been walked. A non-positive rng yields only a.
func LineThrough(a, b Point, rng int) mapset.Set[Point] {
	return trace(a, b, rng, nil)
}

// Ray returns the cells on the line from a to b, stopping early at the
// first edge blocked by walls.
func Ray(a, b Point, walls Walls) mapset.Set[Point] {
	return trace(a, b, Distance(a, b), walls)
}

// RayThrough returns the cells on the line from a through b, walking up to
// rng cells and stopping early at the first blocked edge.
func RayThrough(a, b Point, rng int, walls Walls) mapset.Set[Point] {
	return trace(a, b, rng, walls)
}

func signInt(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
