package simd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestUint8x16(t *testing.T) {
	a := Uint8x16{10, 0, 255, 100}
	b := Uint8x16{250, 1, 255, 30}
	assert.Equal(t, Uint8x16{16, 255, 0, 70}, a.Sub(b))
	assert.Equal(t, Uint8x16{0, 0, 0, 70}, a.SatSub(b))
}

func TestUint8x16Widen(t *testing.T) {
	var a Uint8x16
	for i := range a {
		a[i] = uint8(i * 17) // exercises values above 127
	}
	lo, hi := a.WidenLow(), a.WidenHigh()
	for i := range lo {
		assert.Equal(t, int16(a[i]), lo[i])
		assert.Equal(t, int16(a[8+i]), hi[i])
	}
	// Zero-extension, not sign-extension.
	assert.Equal(t, int16(255), Uint8x16{8: 255}.WidenHigh()[0])
}

func TestInt8x16(t *testing.T) {
	a := Int8x16{-128, 127, 0, -1}
	b := Int8x16{1, -1, -128, 127}
	assert.Equal(t, Int8x16{127, -128, -128, -128}, a.Sub(b))
	assert.Equal(t, Int8x16{-128, 127, 127, -128}, a.SatSub(b))
}

func TestInt16x8(t *testing.T) {
	a := Int16x8{math.MinInt16, math.MaxInt16, 10}
	b := Int16x8{1, -1, 250}
	assert.Equal(t, Int16x8{math.MaxInt16, math.MinInt16, -240}, a.Sub(b))
	assert.Equal(t, Int16x8{math.MinInt16, math.MaxInt16, -240}, a.SatSub(b))
}

func TestFloat16x8(t *testing.T) {
	f := float16.Fromfloat32
	a := Float16x8{f(1.5), f(-2), f(65504)}
	b := Float16x8{f(0.25), f(2), f(-65504)}
	got := a.Sub(b)
	assert.Equal(t, float32(1.25), got[0].Float32())
	assert.Equal(t, float32(-4), got[1].Float32())
	// Overflows to +Inf, the IEEE behavior -- no wrapping or clamping.
	require.True(t, got[2].IsInf(1))
}

func TestFloat32x4(t *testing.T) {
	a := Float32x4{1, 2, 3, 4}
	b := Float32x4{4, 3, 2, 1}
	assert.Equal(t, Float32x4{-3, -1, 1, 3}, a.Sub(b))
}

func TestLoadStore(t *testing.T) {
	src := make([]uint8, 20)
	for i := range src {
		src[i] = uint8(i)
	}
	v := LoadUint8x16(src[2:])
	assert.Equal(t, uint8(2), v[0])
	dst := make([]uint8, 18)
	v.Store(dst[1:])
	assert.Equal(t, uint8(2), dst[1])
	assert.Equal(t, uint8(17), dst[16])

	require.Panics(t, func() { LoadUint8x16(src[10:]) })
	require.Panics(t, func() { v.Store(dst[10:]) })
}
