package advanced

import "sort"

// ConvexHull computes the convex hull of at least three distinct points,
// returning its vertices in counterclockwise order starting from the
// lexicographically smallest vertex. The input slice is not modified.
func ConvexHull(points []*Point) (Hull, error) {
	return ConvexHullWithEpsilon(points, DefaultEpsilon)
}

// ConvexHullWithEpsilon is ConvexHull with an explicit collinearity
// tolerance, for callers (and tests) probing behavior near degenerate
// configurations.
func ConvexHullWithEpsilon(points []*Point, epsilon float64) (hull Hull, err error) {
	defer func() {
		recoveredErr := HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			hull = nil
			err = recoveredErr
		}
	}()
	hull = computeHull(points, epsilon)
	return hull, nil
}

func computeHull(points []*Point, epsilon float64) Hull {
	if len(points) < 3 {
		throwInvalidInput("need at least 3 points for a convex hull, got %d", len(points))
	}

	// Sort once, up front. The recursion never re-sorts; every level relies
	// on its range already being in (x, y) order.
	sorted := make([]*Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	// Exact duplicates are a caller-side contract violation, but after
	// sorting they sit next to each other, so rejecting them here is a single
	// linear scan rather than a surprise deep inside a base case.
	for i := 1; i < len(sorted); i++ {
		if sorted[i].SamePlace(sorted[i-1]) {
			throwInvalidInput("duplicate point at input positions %d and %d: %s",
				sorted[i-1].Index, sorted[i].Index, sorted[i].DbgName())
		}
	}

	return divideAndConquer(sorted, epsilon).canonical()
}

// divideAndConquer recursively splits a sorted range at its midpoint and
// merges the sub-hulls bottom-up. Each call owns its disjoint sub-range and
// the hull it returns; a hull is consumed exactly once, by its parent merge.
func divideAndConquer(sorted []*Point, epsilon float64) Hull {
	if len(sorted) <= 3 {
		return hullBaseCase(sorted, epsilon)
	}
	mid := len(sorted) / 2
	left := divideAndConquer(sorted[:mid], epsilon)
	right := divideAndConquer(sorted[mid:], epsilon)
	return mergeHulls(left, right, epsilon)
}

// Next gives the cyclically following vertex index.
func (h Hull) Next(i int) int {
	return CircularIndex(i+1, len(h))
}

// Prev gives the cyclically preceding vertex index.
func (h Hull) Prev(i int) int {
	return CircularIndex(i-1, len(h))
}

// Rightmost finds the index of the vertex with maximum x, breaking ties
// toward larger y. This is the left hull's starting vertex for a tangent
// walk.
func (h Hull) Rightmost() int {
	k := 0
	for i := 1; i < len(h); i++ {
		if h[i].X > h[k].X || (h[i].X == h[k].X && h[i].Y > h[k].Y) {
			k = i
		}
	}
	return k
}

// Leftmost finds the index of the vertex with minimum x, breaking ties
// toward smaller y. This is the right hull's starting vertex for a tangent
// walk.
func (h Hull) Leftmost() int {
	k := 0
	for i := 1; i < len(h); i++ {
		if h[i].X < h[k].X || (h[i].X == h[k].X && h[i].Y < h[k].Y) {
			k = i
		}
	}
	return k
}

// Indices resolves the hull back to original input positions, in the same
// CCW cycle order as the vertices.
func (h Hull) Indices() []int {
	indices := make([]int, len(h))
	for i, p := range h {
		indices[i] = p.Index
	}
	return indices
}

// Contains reports whether p lies inside or on the hull. For a degenerate
// two-vertex hull this means lying on the segment.
func (h Hull) Contains(p *Point, epsilon float64) bool {
	if len(h) < 2 {
		return len(h) == 1 && h[0].SamePlace(p)
	}
	if len(h) == 2 {
		// On the supporting line, and within the segment's bounding box.
		if Orient(h[0], h[1], p, epsilon) != Collinear {
			return false
		}
		lo, hi := h[0], h[1]
		if hi.Before(lo) {
			lo, hi = hi, lo
		}
		return !p.Before(lo) && !hi.Before(p)
	}
	// CCW convexity means inside iff no edge has p strictly to its right.
	for i, a := range h {
		if rightOf(a, h[h.Next(i)], p, epsilon) {
			return false
		}
	}
	return true
}

// IsConvex verifies the hull invariant: at every vertex, the boundary turns
// left or continues straight, never right.
func (h Hull) IsConvex(epsilon float64) bool {
	if len(h) < 3 {
		return true
	}
	for i := range h {
		if Orient(h[h.Prev(i)], h[i], h[h.Next(i)], epsilon) == Right {
			return false
		}
	}
	return true
}

// canonical rotates the cycle so the lexicographically smallest vertex comes
// first. The hull is cyclic, so this changes nothing geometrically, but it
// makes the output deterministic and lets two runs over permuted input be
// compared directly.
func (h Hull) canonical() Hull {
	if len(h) == 0 {
		return h
	}
	min := 0
	for i := range h {
		if h[i].Before(h[min]) {
			min = i
		}
	}
	if min == 0 {
		return h
	}
	rotated := make(Hull, 0, len(h))
	rotated = append(rotated, h[min:]...)
	rotated = append(rotated, h[:min]...)
	return rotated
}
