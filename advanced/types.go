package advanced

// Point is a single input point. All hull code passes points as pointers.
// This means they can be used as keys, and a pointer identifies one input
// point even when two inputs carry equal coordinates. We never modify a point
// after construction, since index resolution requires exact equality and we
// cannot tolerate loss of precision.
type Point struct {
	X float64
	Y float64
	// Index is the ordinal position of the point in the original input. It is
	// carried from construction so the final hull can be mapped back to input
	// positions without a coordinate lookup.
	Index int
}

// Hull is a convex polygon stored as a cyclic sequence of vertices in
// counterclockwise order. Every produced hull has no duplicate vertices and
// no vertex collinear with its two cyclic neighbors, with one exception: a
// fully collinear point set collapses to its two extremes, a degenerate
// two-vertex hull whose "boundary" is the segment traversed both ways.
type Hull []*Point

// Turn is the result of the orientation predicate: the direction of the turn
// taken at b when traveling a -> b -> c.
type Turn int

const (
	Collinear Turn = 0
	Left      Turn = 1
	Right     Turn = -1
)

func (t Turn) String() string {
	switch t {
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Collinear"
}
