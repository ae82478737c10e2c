package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexhull/dbg"
)

// DefaultEpsilon is the default magnitude below which a cross product is
// classified as collinear. An exact zero comparison is unsafe here: error
// accumulates through the recursive merges, and a nearly-straight turn that
// flips sign between two merge levels can send the tangent walk the wrong way
// around a hull. Callers probing sensitivity can pass their own value.
const DefaultEpsilon = 1e-12

// Orient classifies the turn taken at b when traveling a -> b -> c, using the
// sign of the cross product of (b - a) and (c - a). Magnitudes within epsilon
// of zero are Collinear. Every other predicate in this package (left of,
// right of, containment) is expressed through this one, so the tolerance is
// applied consistently everywhere.
func Orient(a, b, c *Point, epsilon float64) Turn {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if cross > epsilon {
		return Left
	}
	if cross < -epsilon {
		return Right
	}
	return Collinear
}

// Is p strictly left of the directed line a -> b?
func leftOf(a, b, p *Point, epsilon float64) bool {
	return Orient(a, b, p, epsilon) == Left
}

// Is p strictly right of the directed line a -> b?
func rightOf(a, b, p *Point, epsilon float64) bool {
	return Orient(a, b, p, epsilon) == Right
}

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Before is the lexicographic (x, then y) ordering used for the one top-level
// sort and for canonical hull rotation. It is exact; the tolerance only
// applies to turn classification, never to ordering, which must be a strict
// weak order for the sort to be meaningful.
func (p *Point) Before(q *Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// SamePlace reports whether two points have exactly equal coordinates. This
// is deliberately not tolerance based: duplicate detection is about input
// identity, not geometry.
func (p *Point) SamePlace(q *Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// DbgName gives a readable name for the point alongside its coordinates.
// The name matters when an input contains points that print identically;
// coordinates alone cannot tell two such pointers apart in a dump.
func (p *Point) DbgName() string {
	return fmt.Sprintf("%s(%v, %v)#%d", dbg.Name(p), p.X, p.Y, p.Index)
}

// DbgString dumps the hull's vertices, colored by how degenerate the hull
// is: red hulls are too small to merge, yellow hulls are two-vertex
// segments, green hulls are proper polygons.
func (h Hull) DbgString() string {
	names := make([]string, len(h))
	for i, p := range h {
		names[i] = p.DbgName()
	}
	s := fmt.Sprintf("Hull[%s]", strings.Join(names, ", "))
	switch {
	case len(h) < 2:
		return aurora.Red(s).String()
	case len(h) == 2:
		return aurora.Yellow(s).String()
	}
	return aurora.Green(s).String()
}
