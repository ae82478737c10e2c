package advanced

// mergeHulls combines two CCW hulls into the CCW hull of their union. The
// left hull must lie entirely left of the right hull in the sort order,
// which the median split guarantees.
//
// The merged boundary is assembled from two arcs: the left hull walked
// forward (CCW) from its upper tangent vertex around its far side to its
// lower tangent vertex, then the right hull walked forward from its lower
// tangent vertex around its far side to its upper tangent vertex. Each walk
// takes the long way around its hull, so every vertex strictly between the
// tangents on the facing sides is discarded by construction.
func mergeHulls(left, right Hull, epsilon float64) Hull {
	if len(left) == 0 || len(right) == 0 {
		throwInvalidHull("cannot merge an empty hull: %s with %s", left.DbgString(), right.DbgString())
	}

	// A fully collinear pair of hulls defeats the tangent walk: every turn
	// test reads Collinear, neither index moves, and the naive walk would
	// keep only the two facing vertices and drop the true extremes. Collapse
	// to the extreme pair instead, the same degenerate segment form the base
	// case produces for a collinear triple.
	if allCollinear(left, right, epsilon) {
		return collapseToExtremes(left, right)
	}

	iu, ju := upperTangent(left, right, epsilon)
	il, jl := lowerTangent(left, right, epsilon)

	merged := make(Hull, 0, len(left)+len(right))

	// Left hull from upper to lower tangent, inclusive.
	k := iu
	merged = append(merged, left[k])
	for k != il {
		k = left.Next(k)
		merged = append(merged, left[k])
	}

	// Right hull from lower to upper tangent, inclusive. If a tangent touches
	// the same vertex on both sides, the two walks share no vertices, so no
	// duplicates appear at the seams.
	k = jl
	merged = append(merged, right[k])
	for k != ju {
		k = right.Next(k)
		merged = append(merged, right[k])
	}

	return merged.withoutFlatVertices(epsilon)
}

// allCollinear reports whether every vertex of both hulls lies on a single
// line, within tolerance.
func allCollinear(left, right Hull, epsilon float64) bool {
	// Anchor the line on two distinct points.
	a := left[0]
	var b *Point
	for _, p := range left[1:] {
		if !p.SamePlace(a) {
			b = p
			break
		}
	}
	if b == nil {
		for _, p := range right {
			if !p.SamePlace(a) {
				b = p
				break
			}
		}
	}
	if b == nil {
		return true
	}
	for _, p := range left {
		if Orient(a, b, p, epsilon) != Collinear {
			return false
		}
	}
	for _, p := range right {
		if Orient(a, b, p, epsilon) != Collinear {
			return false
		}
	}
	return true
}

// collapseToExtremes reduces a fully collinear pair of hulls to the
// two-vertex hull of their lexicographic extremes.
func collapseToExtremes(left, right Hull) Hull {
	min, max := left[0], left[0]
	for _, h := range []Hull{left, right} {
		for _, p := range h {
			if p.Before(min) {
				min = p
			}
			if max.Before(p) {
				max = p
			}
		}
	}
	return Hull{min, max}
}

// withoutFlatVertices drops every vertex that is collinear with its two
// cyclic neighbors. Merging can leave such vertices along a seam when a
// sub-hull edge is collinear with a tangent; they are on the boundary but
// are not corners, and keeping them would break the convexity invariant of
// "no three consecutive collinear vertices". Neighbors are taken from the
// original cycle, so an entire flat run disappears in one pass.
func (h Hull) withoutFlatVertices(epsilon float64) Hull {
	if len(h) <= 2 {
		return h
	}
	kept := make(Hull, 0, len(h))
	for i, p := range h {
		prev := h[CircularIndex(i-1, len(h))]
		next := h[CircularIndex(i+1, len(h))]
		if Orient(prev, p, next, epsilon) != Collinear {
			kept = append(kept, p)
		}
	}
	if len(kept) < 2 {
		// Fully collinear hulls never reach this point; don't let numeric dust
		// erase the polygon entirely.
		return h
	}
	return kept
}
