package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/kernels/dtypes"
)

func TestMake(t *testing.T) {
	s := Make(dtypes.Float32, 2, 3)
	assert.Equal(t, 2, s.Rank())
	assert.Equal(t, 6, s.Size())
	assert.Equal(t, 3, s.Dim(-1))
	assert.Equal(t, 2, s.Dim(0))
	assert.Equal(t, "(Float32)[2 3]", s.String())
	require.Panics(t, func() { Make(dtypes.Float32, 2, 0) })
	require.Panics(t, func() { s.Dim(2) })
}

func TestEqual(t *testing.T) {
	a := Make(dtypes.Uint8, 4, 5)
	b := Make(dtypes.Uint8, 4, 5)
	c := Make(dtypes.Int16, 4, 5)
	d := Make(dtypes.Uint8, 5, 4)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.EqualDimensions(c))
	assert.False(t, a.EqualDimensions(d))
}

func TestUnsetParts(t *testing.T) {
	assert.False(t, Invalid().Ok())
	assert.False(t, Invalid().HasDimensions())
	partial := Shape{DType: dtypes.InvalidDType, Dimensions: []int{7}}
	assert.False(t, partial.Ok())
	assert.True(t, partial.HasDimensions())
}
