package dtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestDTypeProperties(t *testing.T) {
	for _, dtype := range DTypeValues() {
		if dtype == InvalidDType {
			assert.False(t, dtype.IsSupported())
			continue
		}
		assert.True(t, dtype.IsSupported(), "dtype %s", dtype)
		assert.Equal(t, dtype.IsInteger(), !dtype.IsFloat(), "dtype %s", dtype)
	}

	assert.True(t, QInt8.IsFixedPoint())
	assert.True(t, QInt16.IsFixedPoint())
	assert.False(t, Uint8.IsFixedPoint())
	assert.False(t, Float16.IsFixedPoint())

	assert.Equal(t, uintptr(1), Uint8.Memory())
	assert.Equal(t, uintptr(2), Int16.Memory())
	assert.Equal(t, uintptr(2), Float16.Memory())
	assert.Equal(t, uintptr(4), Float32.Memory())
}

func TestDTypeStrings(t *testing.T) {
	assert.Equal(t, "Uint8", Uint8.String())
	assert.Equal(t, "QInt16", QInt16.String())
	assert.Equal(t, "Float32", Float32.String())

	dtype, err := DTypeString("float16")
	require.NoError(t, err)
	assert.Equal(t, Float16, dtype)
	_, err = DTypeString("complex128")
	require.Error(t, err)
}

func TestFromGenericsType(t *testing.T) {
	assert.Equal(t, QInt8, FromGenericsType[int8]())
	assert.Equal(t, Uint8, FromGenericsType[uint8]())
	assert.Equal(t, Int16, FromGenericsType[int16]())
	assert.Equal(t, Float16, FromGenericsType[float16.Float16]())
	assert.Equal(t, Float32, FromGenericsType[float32]())
}
