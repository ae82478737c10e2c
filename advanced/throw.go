package advanced

import "github.com/pkg/errors"

// Threading error returns up and down the recursive divide-and-conquer would
// add a ton of complexity for failures that are either bad input or internal
// bugs, and which always abort the whole computation. Instead, internal code
// panics with one of the typed errors below, and the public API recovers to
// convert the panic back into an error.

// InvalidInputError reports input the algorithm cannot accept: fewer than
// three points, or two points with exactly equal coordinates.
type InvalidInputError struct{ error }

// DegenerateInputError reports identical points reaching a base case that
// requires distinct ones.
type DegenerateInputError struct{ error }

// InvalidHullError reports a merge or tangent search given a hull with too
// few vertices to have a boundary.
type InvalidHullError struct{ error }

// TangentConvergenceError reports a tangent walk that exceeded its movement
// bound. This can never happen for valid CCW hulls; seeing it means hull
// construction is broken somewhere else, so it should be treated as a bug,
// not a runtime condition to retry.
type TangentConvergenceError struct{ error }

// hullFailure marks the error types that are allowed to cross the recover
// boundary. Any other panic value is a true panic and is re-raised.
type hullFailure interface {
	error
	hullFailure()
}

func (InvalidInputError) hullFailure()       {}
func (DegenerateInputError) hullFailure()    {}
func (InvalidHullError) hullFailure()        {}
func (TangentConvergenceError) hullFailure() {}

// NewInvalidInputError builds an InvalidInputError without panicking. Input
// boundaries (point sources) validate before points ever reach the
// algorithm, and they return their rejections as ordinary errors.
func NewInvalidInputError(format string, args ...interface{}) error {
	return InvalidInputError{errors.Errorf(format, args...)}
}

func throwInvalidInput(format string, args ...interface{}) {
	panic(InvalidInputError{errors.Errorf(format, args...)})
}

func throwDegenerateInput(format string, args ...interface{}) {
	panic(DegenerateInputError{errors.Errorf(format, args...)})
}

func throwInvalidHull(format string, args ...interface{}) {
	panic(InvalidHullError{errors.Errorf(format, args...)})
}

func throwNoConvergence(format string, args ...interface{}) {
	panic(TangentConvergenceError{errors.Errorf(format, args...)})
}

// HandleHullPanicRecover converts a recovered hull failure into an error,
// re-panicking for anything that isn't one.
func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if failure, ok := r.(hullFailure); ok {
			return failure
		}
		panic(r)
	}
	return nil
}
