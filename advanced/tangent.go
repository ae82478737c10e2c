package advanced

// Tangent finding between two CCW hulls where every vertex of the left hull
// precedes every vertex of the right hull in x (guaranteed by the sorted
// median split). The walk is monotone: each index only ever moves in one
// direction around its hull, so each can wrap at most once and the whole
// search is linear in the combined hull size.

// checkTangentInputs rejects hulls too small to walk. A one-vertex hull has
// no boundary direction, so the turn tests below would be meaningless.
func checkTangentInputs(left, right Hull) {
	if len(left) < 2 || len(right) < 2 {
		throwInvalidHull("tangent search requires hulls of at least 2 points, got %s and %s",
			left.DbgString(), right.DbgString())
	}
}

// tangentStepLimit bounds the total index movement of one tangent walk. Each
// index can wrap at most once, so movement beyond this is an internal
// invariant violation, never an expected runtime condition. The bound is on
// individual steps rather than full passes; an invalid hull could otherwise
// keep one of the inner loops spinning before a pass bound is ever checked.
func tangentStepLimit(left, right Hull) int {
	return len(left) + len(right) + 4
}

// upperTangent finds the unique line through one vertex of each hull such
// that no other vertex of either hull lies above it. It returns the index of
// the touching vertex on each hull.
//
// Starting from the vertices facing each other across the split (rightmost
// of left, leftmost of right), advance i forward around the left hull while
// its next vertex is strictly right of the candidate line, and retreat j
// backward around the right hull under the mirrored condition, alternating
// until neither side moves.
func upperTangent(left, right Hull, epsilon float64) (i, j int) {
	checkTangentInputs(left, right)
	i = left.Rightmost()
	j = right.Leftmost()

	limit := tangentStepLimit(left, right)
	steps := 0
	for moved := true; moved; {
		moved = false
		// Not yet tight on the left side: the next vertex of the left hull
		// pokes out right of right[j] -> left[i].
		for rightOf(right[j], left[i], left[left.Next(i)], epsilon) {
			i = left.Next(i)
			moved = true
			steps++
			if steps > limit {
				throwNoConvergence("upper tangent walk exceeded %d steps between %s and %s",
					limit, left.DbgString(), right.DbgString())
			}
		}
		// Not yet tight on the right side: the previous vertex of the right
		// hull pokes out left of left[i] -> right[j].
		for leftOf(left[i], right[j], right[right.Prev(j)], epsilon) {
			j = right.Prev(j)
			moved = true
			steps++
			if steps > limit {
				throwNoConvergence("upper tangent walk exceeded %d steps between %s and %s",
					limit, left.DbgString(), right.DbgString())
			}
		}
	}
	return i, j
}

// lowerTangent mirrors upperTangent: no vertex of either hull lies below the
// line. The walk directions and turn tests are both reversed.
func lowerTangent(left, right Hull, epsilon float64) (i, j int) {
	checkTangentInputs(left, right)
	i = left.Rightmost()
	j = right.Leftmost()

	limit := tangentStepLimit(left, right)
	steps := 0
	for moved := true; moved; {
		moved = false
		for leftOf(right[j], left[i], left[left.Prev(i)], epsilon) {
			i = left.Prev(i)
			moved = true
			steps++
			if steps > limit {
				throwNoConvergence("lower tangent walk exceeded %d steps between %s and %s",
					limit, left.DbgString(), right.DbgString())
			}
		}
		for rightOf(left[i], right[j], right[right.Next(j)], epsilon) {
			j = right.Next(j)
			moved = true
			steps++
			if steps > limit {
				throwNoConvergence("lower tangent walk exceeded %d steps between %s and %s",
					limit, left.DbgString(), right.DbgString())
			}
		}
	}
	return i, j
}
