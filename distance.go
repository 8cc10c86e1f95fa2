package hexgeo

// PlanarDistance returns the hex manhattan distance between two points,
// ignoring height. The division is exact: dq+dr+ds == 0 guarantees the sum
// of absolute deltas is even.
func PlanarDistance(a, b Point) int {
	diff := a.Sub(b)
	return (absInt(diff.Q) + absInt(diff.R) + absInt(diff.S())) / 2
}

// HeightDistance returns the vertical distance between two points.
func HeightDistance(a, b Point) int {
	return absInt(a.T - b.T)
}

// Distance returns the planar distance plus the height distance. This
// additive manhattan form is the metric used to budget line and region
// queries throughout the package; it is deliberately not euclidean.
func Distance(a, b Point) int {
	return PlanarDistance(a, b) + HeightDistance(a, b)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
