package windows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/kernels/dtypes"
	"github.com/gomlx/kernels/shapes"
)

func TestCalculateMax(t *testing.T) {
	w := CalculateMax(shapes.Make(dtypes.Uint8, 3, 20), 16)
	require.Equal(t, 2, w.Rank())
	assert.Equal(t, Dimension{Start: 0, End: 3, Step: 1}, w[0])
	assert.Equal(t, Dimension{Start: 0, End: 32, Step: 16}, w[1])
	assert.Equal(t, 3, w.NumIterations(0))
	assert.Equal(t, 2, w.NumIterations(1))
	assert.Equal(t, 6, w.TotalIterations())

	// Exact multiple: no rounding.
	w = CalculateMax(shapes.Make(dtypes.Float32, 64), 16)
	assert.Equal(t, Dimension{Start: 0, End: 64, Step: 16}, w[0])

	require.Panics(t, func() { CalculateMax(shapes.Invalid(), 16) })
	require.Panics(t, func() { CalculateMax(shapes.Make(dtypes.Uint8, 4), 0) })
}

func TestIsValidSub(t *testing.T) {
	w := Window{{0, 4, 1}, {0, 64, 16}}
	assert.True(t, w.IsValidSub(Window{{0, 4, 1}, {0, 64, 16}}))
	assert.True(t, w.IsValidSub(Window{{1, 3, 1}, {16, 48, 16}}))
	assert.True(t, w.IsValidSub(Window{{2, 2, 1}, {0, 0, 16}})) // empty is fine

	assert.False(t, w.IsValidSub(Window{{0, 64, 16}}))            // rank mismatch
	assert.False(t, w.IsValidSub(Window{{0, 4, 1}, {0, 80, 16}})) // beyond end
	assert.False(t, w.IsValidSub(Window{{0, 4, 1}, {0, 64, 8}}))  // wrong step
	assert.False(t, w.IsValidSub(Window{{0, 4, 1}, {8, 40, 16}})) // unaligned start
	assert.False(t, w.IsValidSub(Window{{0, 4, 1}, {0, 24, 16}})) // torn block
}

func TestSplit(t *testing.T) {
	w := Window{{0, 5, 1}, {0, 48, 16}}

	// Splits along the outer axis are disjoint and cover the original.
	covered := 0
	prevEnd := 0
	for i := 0; i < 3; i++ {
		sub := w.Split(0, 3, i)
		assert.Equal(t, prevEnd, sub[0].Start)
		prevEnd = sub[0].End
		covered += sub[0].End - sub[0].Start
		assert.True(t, w.IsValidSub(sub))
	}
	assert.Equal(t, 5, covered)

	// More partitions than iterations: trailing parts are empty.
	sub := w.Split(1, 4, 3)
	assert.True(t, w.IsValidSub(sub))

	require.Panics(t, func() { w.Split(2, 2, 0) })
	require.Panics(t, func() { w.Split(0, 2, 2) })
}

// recordingCursor records the axes it was incremented along.
type recordingCursor struct {
	increments []int
}

func (c *recordingCursor) Increment(axis int) { c.increments = append(c.increments, axis) }

func TestLoop(t *testing.T) {
	w := Window{{0, 2, 1}, {0, 32, 16}}
	c1 := &recordingCursor{}
	c2 := &recordingCursor{}
	calls := 0
	Loop(w, func() { calls++ }, c1, c2)
	assert.Equal(t, 4, calls)
	// Innermost axis advances fastest; carry increments the outer axis.
	assert.Equal(t, []int{1, 0, 1}, c1.increments)
	assert.Equal(t, c1.increments, c2.increments)

	// Empty window: no calls.
	calls = 0
	Loop(Window{{0, 0, 1}, {0, 32, 16}}, func() { calls++ })
	assert.Equal(t, 0, calls)
}
