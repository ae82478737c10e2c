// An O(n log n) planar convex hull package for Go.
//
// This package computes the convex hull of a set of 2D points with a
// divide-and-conquer algorithm: the points are sorted once, split
// recursively, and the sub-hulls are merged with an explicit tangent search.
// The result is reported as the original input positions of the hull
// vertices, in counterclockwise order.
package convexhull

import "github.com/osuushi/convexhull/advanced"

type Point = advanced.Point
type Hull = advanced.Hull

// Error classes reported by hull computation. See the advanced package for
// when each one arises.
type InvalidInputError = advanced.InvalidInputError
type DegenerateInputError = advanced.DegenerateInputError
type InvalidHullError = advanced.InvalidHullError
type TangentConvergenceError = advanced.TangentConvergenceError

// DefaultEpsilon is the default collinearity tolerance of the orientation
// predicate.
const DefaultEpsilon = advanced.DefaultEpsilon

// ConvexHull computes the convex hull of the given points and returns the
// input indices of its vertices in counterclockwise order, starting from the
// lexicographically smallest vertex.
//
// The points must number at least three and contain no exact coordinate
// duplicates; each point's Index field is overwritten with its position in
// the input, so callers don't need to fill it in.
func ConvexHull(points []Point) ([]int, error) {
	return ConvexHullWithEpsilon(points, DefaultEpsilon)
}

// ConvexHullWithEpsilon is ConvexHull with an explicit collinearity
// tolerance.
func ConvexHullWithEpsilon(points []Point, epsilon float64) ([]int, error) {
	indexed := make([]*advanced.Point, len(points))
	for i := range points {
		p := points[i]
		p.Index = i
		indexed[i] = &p
	}
	hull, err := advanced.ConvexHullWithEpsilon(indexed, epsilon)
	if err != nil {
		return nil, err
	}
	return hull.Indices(), nil
}
