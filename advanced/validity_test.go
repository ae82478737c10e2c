package advanced

// This contains no actual tests. It is just a helper for checking hull
// validity.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is a valid result for a point set. The rules
// are:
// 1. Convexity: at every vertex the boundary turns left or runs straight,
//    never right.
// 2. Containment: every input point lies inside or on the hull.
// 3. Minimality: no vertex is collinear with its cyclic neighbors (it could
//    be removed without losing containment), and there are no duplicate
//    vertices. Degenerate two-vertex hulls are exempt, since they are the
//    deliberate collapsed form of a collinear point set.
// 4. Index fidelity: every hull vertex is one of the input points, and its
//    recorded index agrees with its position in the input.
func AssertValidHull(t *testing.T, points []*Point, hull Hull, epsilon float64) {
	t.Helper()
	require.NotEmpty(t, hull)

	require.True(t, hull.IsConvex(epsilon), "hull is not convex: %s", hull.DbgString())

	for _, p := range points {
		require.True(t, hull.Contains(p, epsilon), "input point %s is outside the hull %s", p.DbgName(), hull.DbgString())
	}

	if len(hull) > 2 {
		for i, p := range hull {
			turn := Orient(hull[hull.Prev(i)], p, hull[hull.Next(i)], epsilon)
			require.NotEqual(t, Collinear, turn, "vertex %s is redundant in hull %s", p.DbgName(), hull.DbgString())
		}
	}

	seen := make(map[*Point]struct{}, len(hull))
	for _, p := range hull {
		_, duplicate := seen[p]
		require.False(t, duplicate, "vertex %s appears twice in hull %s", p.DbgName(), hull.DbgString())
		seen[p] = struct{}{}
	}

	for _, p := range hull {
		require.GreaterOrEqual(t, p.Index, 0)
		require.Less(t, p.Index, len(points))
		require.True(t, points[p.Index].SamePlace(p), "vertex %s does not match input position %d", p.DbgName(), p.Index)
	}
}

// giftWrapHull is a brute-force O(n²) gift wrapping (Jarvis march) reference
// implementation, used to cross-check the divide-and-conquer result on
// random inputs. It is independent of the code under test apart from the
// orientation predicate.
func giftWrapHull(points []*Point, epsilon float64) Hull {
	start := 0
	for i := range points {
		if points[i].Before(points[start]) {
			start = i
		}
	}

	var hull Hull
	current := start
	for {
		hull = append(hull, points[current])
		// Pick the candidate such that every other point is left of
		// current -> candidate; ties (collinear candidates) go to the farther
		// one so midpoints of an edge never become vertices.
		candidate := -1
		for i := range points {
			if i == current {
				continue
			}
			if candidate < 0 {
				candidate = i
				continue
			}
			switch Orient(points[current], points[candidate], points[i], epsilon) {
			case Right:
				candidate = i
			case Collinear:
				if sqDist(points[current], points[i]) > sqDist(points[current], points[candidate]) {
					candidate = i
				}
			}
		}
		current = candidate
		if current == start {
			break
		}
	}
	return hull
}

// makePoints builds indexed points from coordinate pairs, in input order.
func makePoints(coords ...[2]float64) []*Point {
	points := make([]*Point, len(coords))
	for i, c := range coords {
		points[i] = &Point{X: c[0], Y: c[1], Index: i}
	}
	return points
}

func sqDist(a, b *Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// vertexSet gives the hull's vertices as a set, for order-independent
// comparison between implementations.
func vertexSet(hull Hull) map[Point]struct{} {
	set := make(map[Point]struct{}, len(hull))
	for _, p := range hull {
		set[Point{X: p.X, Y: p.Y}] = struct{}{}
	}
	return set
}
