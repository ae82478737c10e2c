package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrient(t *testing.T) {
	a := &Point{X: 0, Y: 0}
	b := &Point{X: 1, Y: 0}

	t.Run("left turn", func(t *testing.T) {
		assert.Equal(t, Left, Orient(a, b, &Point{X: 1, Y: 1}, DefaultEpsilon))
	})

	t.Run("right turn", func(t *testing.T) {
		assert.Equal(t, Right, Orient(a, b, &Point{X: 1, Y: -1}, DefaultEpsilon))
	})

	t.Run("collinear", func(t *testing.T) {
		assert.Equal(t, Collinear, Orient(a, b, &Point{X: 2, Y: 0}, DefaultEpsilon))
	})

	t.Run("epsilon band", func(t *testing.T) {
		// A cross product smaller than epsilon in magnitude classifies as
		// collinear, regardless of sign.
		justAbove := &Point{X: 2, Y: 1e-13}
		justBelow := &Point{X: 2, Y: -1e-13}
		assert.Equal(t, Collinear, Orient(a, b, justAbove, DefaultEpsilon))
		assert.Equal(t, Collinear, Orient(a, b, justBelow, DefaultEpsilon))

		// The same points classify as turns once the caller tightens epsilon.
		assert.Equal(t, Left, Orient(a, b, justAbove, 1e-15))
		assert.Equal(t, Right, Orient(a, b, justBelow, 1e-15))
	})

	t.Run("total over the plane", func(t *testing.T) {
		// The predicate never errors; any finite input classifies.
		far := &Point{X: 1e18, Y: -1e18}
		assert.Equal(t, Right, Orient(a, b, far, DefaultEpsilon))
	})
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestBefore(t *testing.T) {
	assert.True(t, (&Point{X: 0, Y: 5}).Before(&Point{X: 1, Y: 0}))
	assert.True(t, (&Point{X: 1, Y: 0}).Before(&Point{X: 1, Y: 5}))
	assert.False(t, (&Point{X: 1, Y: 5}).Before(&Point{X: 1, Y: 5}))
	assert.False(t, (&Point{X: 2, Y: 0}).Before(&Point{X: 1, Y: 9}))
}

func TestSamePlace(t *testing.T) {
	// Exact equality only; nearby is not the same place.
	assert.True(t, (&Point{X: 1, Y: 1}).SamePlace(&Point{X: 1, Y: 1, Index: 7}))
	assert.False(t, (&Point{X: 1, Y: 1}).SamePlace(&Point{X: 1, Y: 1 + 1e-15}))
}

func TestHullNextPrev(t *testing.T) {
	h := Hull(makePoints([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1}))
	assert.Equal(t, 1, h.Next(0))
	assert.Equal(t, 0, h.Next(2))
	assert.Equal(t, 2, h.Prev(0))
	assert.Equal(t, 0, h.Prev(1))
}

func TestRightmostLeftmost(t *testing.T) {
	// Ties in x break toward larger y for rightmost, smaller y for leftmost.
	h := Hull(makePoints(
		[2]float64{0, 0},
		[2]float64{2, 1},
		[2]float64{2, 3},
		[2]float64{0, 2},
	))
	assert.Equal(t, 2, h.Rightmost())
	assert.Equal(t, 0, h.Leftmost())
}
