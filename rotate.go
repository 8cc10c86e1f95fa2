package hexgeo

// Rotate returns p rotated around center by times sixths of a full turn,
// keeping its height. Positive rotations are clockwise; any integer times is
// accepted and normalized, so six rotations in either direction are the
// identity. The rotation is the standard cube-coordinate permutation of
// (q, r, s) with alternating negation, applied center-relative.
func Rotate(p, center Point, times int) Point {
	if p == center {
		return p
	}

	relative := p.Sub(center)
	q, r, s, t := relative.CubeValues()

	times %= 6
	if times < 0 {
		times += 6
	}

	var rotated Point
	switch times {
	case 1:
		rotated = NewPoint(-r, -s, t)
	case 2:
		rotated = NewPoint(s, q, t)
	case 3:
		rotated = NewPoint(-q, -r, t)
	case 4:
		rotated = NewPoint(r, s, t)
	case 5:
		rotated = NewPoint(-s, -q, t)
	default:
		rotated = relative
	}

	return rotated.Add(center)
}
