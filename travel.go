package hexgeo

// Travel returns the point reached by moving units steps in the given
// direction. Negative units reverse the direction; zero is the identity.
func Travel(p Point, d Direction, units int) Point {
	offset := travelOffsets[d]
	return NewPoint(p.Q+offset.Q*units, p.R+offset.R*units, p.T+offset.T*units)
}
