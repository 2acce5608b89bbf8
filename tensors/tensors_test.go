package tensors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/kernels/dtypes"
	"github.com/gomlx/kernels/windows"
)

func TestAllocateLayout(t *testing.T) {
	tensor := New(dtypes.Uint8, 2, 20)
	tensor.Info().ExtendPadding(Padding{Right: 12})
	tensor.Allocate()
	require.True(t, tensor.IsAllocated())
	assert.Equal(t, []int{32, 1}, tensor.Info().Strides())
	assert.Equal(t, 0, tensor.Info().OffsetFirstElement())
	assert.Len(t, tensor.Uint8s(), 64)

	// Allocate is idempotent, and the layout is frozen afterwards.
	flat := tensor.Uint8s()
	tensor.Allocate()
	assert.Equal(t, &flat[0], &tensor.Uint8s()[0])
	require.Panics(t, func() { tensor.Info().ExtendPadding(Padding{Right: 20}) })
}

func TestFlatDataRoundTrip(t *testing.T) {
	tensor := New(dtypes.Int16, 3, 4)
	tensor.Info().ExtendPadding(Padding{Left: 2, Right: 5})
	tensor.Allocate()
	values := []int16{0, 1, 2, 3, 10, 11, 12, 13, 20, 21, 22, 23}
	SetFlatData(tensor, values)
	assert.Equal(t, values, FlatData[int16](tensor))
	// Rows are spaced by the padded row length.
	assert.Equal(t, int16(0), tensor.Int16s()[2])
	assert.Equal(t, int16(10), tensor.Int16s()[2+11])

	require.Panics(t, func() { SetFlatData(tensor, []int16{1, 2, 3}) })
	require.Panics(t, func() { SetFlatData(tensor, []float32{1}) })
}

func TestFromFlat(t *testing.T) {
	tensor := FromFlat([]float32{1, 2, 3, 4}, 2, 2)
	assert.Equal(t, dtypes.Float32, tensor.DType())
	assert.Equal(t, []float32{1, 2, 3, 4}, FlatData[float32](tensor))
}

func TestEmptyAutoInit(t *testing.T) {
	tensor := Empty()
	assert.False(t, tensor.Shape().HasDimensions())
	tensor.Info().SetDimensionsIfEmpty(4, 8)
	tensor.Info().SetDimensionsIfEmpty(2, 2) // no-op, already set
	assert.Equal(t, []int{4, 8}, tensor.Shape().Dimensions)
	assert.Equal(t, FullRegion([]int{4, 8}), tensor.Info().ValidRegion())

	tensor.Info().SetDTypeIfInvalid(dtypes.Int16)
	tensor.Info().SetDTypeIfInvalid(dtypes.Float32) // no-op
	assert.Equal(t, dtypes.Int16, tensor.DType())
}

func TestFixedPoint(t *testing.T) {
	tensor := NewFixedPoint(dtypes.QInt8, 3, 16)
	assert.Equal(t, 3, tensor.Info().FixedPointPosition())
	require.Panics(t, func() { NewFixedPoint(dtypes.Uint8, 3, 16) })
}

func TestAccessHorizontalPadding(t *testing.T) {
	tensor := New(dtypes.Uint8, 2, 20)
	w := windows.Window{{Start: 0, End: 2, Step: 1}, {Start: 0, End: 32, Step: 16}}
	changed := UpdateWindowAndPadding(w, NewAccessHorizontal(tensor, 0, 16))
	assert.True(t, changed)
	// Last vector load starts at 16 and reads 16 elements of a 20-wide row.
	assert.Equal(t, Padding{Left: 0, Right: 12}, tensor.Info().Padding())

	// Re-registering the same pattern changes nothing.
	assert.False(t, UpdateWindowAndPadding(w, NewAccessHorizontal(tensor, 0, 16)))
}

func TestIterator(t *testing.T) {
	tensor := New(dtypes.Uint8, 2, 20)
	w := windows.Window{{Start: 0, End: 2, Step: 1}, {Start: 0, End: 32, Step: 16}}
	UpdateWindowAndPadding(w, NewAccessHorizontal(tensor, 0, 16))
	tensor.Allocate()

	it := NewIterator(tensor, w)
	var offsets []int
	windows.Loop(w, func() { offsets = append(offsets, it.Offset()) }, it)
	assert.Equal(t, []int{0, 16, 32, 48}, offsets)

	// A sub-window starts at the right offset.
	sub := windows.Window{{Start: 1, End: 2, Step: 1}, {Start: 16, End: 32, Step: 16}}
	it = NewIterator(tensor, sub)
	assert.Equal(t, 48, it.Offset())

	require.Panics(t, func() { NewIterator(New(dtypes.Uint8, 4), windows.Window{{Start: 0, End: 4, Step: 1}}) })
}

func TestValidRegionIntersect(t *testing.T) {
	a := ValidRegion{Anchor: []int{0, 2}, Shape: []int{4, 10}}
	b := ValidRegion{Anchor: []int{1, 0}, Shape: []int{4, 8}}
	got := Intersect(a, b)
	assert.Equal(t, ValidRegion{Anchor: []int{1, 2}, Shape: []int{3, 6}}, got)

	// Disjoint axes collapse to zero extents.
	c := ValidRegion{Anchor: []int{10, 0}, Shape: []int{1, 8}}
	got = Intersect(a, c)
	assert.Equal(t, 0, got.Shape[0])

	require.Panics(t, func() { Intersect(a, ValidRegion{Anchor: []int{0}, Shape: []int{1}}) })
}
