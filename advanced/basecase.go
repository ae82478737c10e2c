package advanced

// hullBaseCase resolves a range of one to three points directly, without
// further division. The input must already be sorted by (x, then y); the
// driver sorts exactly once, so base cases can rely on the order.
//
// This is the correctness anchor of the whole algorithm. Every recursive
// call bottoms out here, so the policy for collinear and duplicate points in
// this function decides what the merge layers above ever get to see.
func hullBaseCase(points []*Point, epsilon float64) Hull {
	switch len(points) {
	case 1:
		// The driver never produces a lone point (splits keep at least two per
		// side), but resolving it keeps the function total.
		return Hull{points[0]}
	case 2:
		a, b := points[0], points[1]
		if a.SamePlace(b) {
			throwDegenerateInput("cannot build a hull from identical points %s and %s", a.DbgName(), b.DbgName())
		}
		// A two-point hull is a degenerate segment; both directions along it
		// count as the boundary.
		return Hull{a, b}
	case 3:
		a, b, c := points[0], points[1], points[2]
		if a.SamePlace(b) || b.SamePlace(c) || a.SamePlace(c) {
			throwDegenerateInput("cannot build a hull from points with duplicates: %s, %s, %s",
				a.DbgName(), b.DbgName(), c.DbgName())
		}
		switch Orient(a, b, c, epsilon) {
		case Collinear:
			// The middle point is redundant. Since the range is sorted, a and c
			// are the extremes.
			return Hull{a, c}
		case Right:
			// Clockwise triangle; swap the last two points to flip it.
			return Hull{a, c, b}
		}
		return Hull{a, b, c}
	}
	throwInvalidInput("base case got %d points, expected 1 to 3", len(points))
	return nil // unreachable
}
