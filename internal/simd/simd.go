// Package simd provides fixed-width lane vectors and the elementwise
// operations the kernels are built from: wrapping and saturating
// subtraction, and the zero-extending widen used for the mixed 8/16-bit
// specializations.
//
// The lane widths mirror a 128-bit native vector register: 16 8-bit lanes,
// 8 16-bit lanes, 4 32-bit lanes. The Go compiler unrolls and vectorizes
// the fixed-size loops well; the value of the fixed widths is that every
// kernel iteration consumes exactly the same number of elements, which is
// what the window/padding arithmetic is built around.
package simd

import (
	"math"

	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// clamp saturates v to the inclusive range [lo, hi].
func clamp[T constraints.Integer](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Uint8x16 is a vector of 16 unsigned 8-bit lanes.
type Uint8x16 [16]uint8

// LoadUint8x16 loads 16 lanes from the front of s. It panics if s is
// shorter than 16 elements.
func LoadUint8x16(s []uint8) Uint8x16 { return Uint8x16(s[:16]) }

// Store writes the 16 lanes to the front of dst.
func (v Uint8x16) Store(dst []uint8) { copy(dst[0:16], v[:]) }

// Sub returns a-b lane-wise with modulo-256 wraparound.
func (v Uint8x16) Sub(b Uint8x16) (out Uint8x16) {
	for i := range v {
		out[i] = v[i] - b[i]
	}
	return
}

// SatSub returns a-b lane-wise, clamping negative results to 0.
func (v Uint8x16) SatSub(b Uint8x16) (out Uint8x16) {
	for i := range v {
		out[i] = uint8(clamp(int16(v[i])-int16(b[i]), 0, math.MaxUint8))
	}
	return
}

// WidenLow zero-extends the low 8 lanes to 16 bits.
func (v Uint8x16) WidenLow() (out Int16x8) {
	for i := range out {
		out[i] = int16(uint16(v[i]))
	}
	return
}

// WidenHigh zero-extends the high 8 lanes to 16 bits.
func (v Uint8x16) WidenHigh() (out Int16x8) {
	for i := range out {
		out[i] = int16(uint16(v[8+i]))
	}
	return
}

// Int8x16 is a vector of 16 signed 8-bit lanes. It is also the raw
// arithmetic of the 8-bit fixed-point dtype: at equal fractional positions,
// fixed-point subtraction is integer subtraction of the raw values.
type Int8x16 [16]int8

// LoadInt8x16 loads 16 lanes from the front of s.
func LoadInt8x16(s []int8) Int8x16 { return Int8x16(s[:16]) }

// Store writes the 16 lanes to the front of dst.
func (v Int8x16) Store(dst []int8) { copy(dst[0:16], v[:]) }

// Sub returns a-b lane-wise with two's-complement wraparound.
func (v Int8x16) Sub(b Int8x16) (out Int8x16) {
	for i := range v {
		out[i] = v[i] - b[i]
	}
	return
}

// SatSub returns a-b lane-wise, clamped to [math.MinInt8, math.MaxInt8].
func (v Int8x16) SatSub(b Int8x16) (out Int8x16) {
	for i := range v {
		out[i] = int8(clamp(int16(v[i])-int16(b[i]), math.MinInt8, math.MaxInt8))
	}
	return
}

// Int16x8 is a vector of 8 signed 16-bit lanes (also the raw arithmetic of
// the 16-bit fixed-point dtype).
type Int16x8 [8]int16

// LoadInt16x8 loads 8 lanes from the front of s.
func LoadInt16x8(s []int16) Int16x8 { return Int16x8(s[:8]) }

// Store writes the 8 lanes to the front of dst.
func (v Int16x8) Store(dst []int16) { copy(dst[0:8], v[:]) }

// Sub returns a-b lane-wise with two's-complement wraparound.
func (v Int16x8) Sub(b Int16x8) (out Int16x8) {
	for i := range v {
		out[i] = v[i] - b[i]
	}
	return
}

// SatSub returns a-b lane-wise, clamped to [math.MinInt16, math.MaxInt16].
func (v Int16x8) SatSub(b Int16x8) (out Int16x8) {
	for i := range v {
		out[i] = int16(clamp(int32(v[i])-int32(b[i]), math.MinInt16, math.MaxInt16))
	}
	return
}

// Float16x8 is a vector of 8 half-precision lanes.
type Float16x8 [8]float16.Float16

// LoadFloat16x8 loads 8 lanes from the front of s.
func LoadFloat16x8(s []float16.Float16) Float16x8 { return Float16x8(s[:8]) }

// Store writes the 8 lanes to the front of dst.
func (v Float16x8) Store(dst []float16.Float16) { copy(dst[0:8], v[:]) }

// Sub returns the IEEE difference a-b lane-wise. The subtraction runs in
// float32 -- exact for any pair of half-precision values -- and the result
// is rounded back to half precision, which is the correctly rounded f16
// difference.
func (v Float16x8) Sub(b Float16x8) (out Float16x8) {
	for i := range v {
		out[i] = float16.Fromfloat32(v[i].Float32() - b[i].Float32())
	}
	return
}

// Float32x4 is a vector of 4 single-precision lanes.
type Float32x4 [4]float32

// LoadFloat32x4 loads 4 lanes from the front of s.
func LoadFloat32x4(s []float32) Float32x4 { return Float32x4(s[:4]) }

// Store writes the 4 lanes to the front of dst.
func (v Float32x4) Store(dst []float32) { copy(dst[0:4], v[:]) }

// Sub returns the IEEE difference a-b lane-wise.
func (v Float32x4) Sub(b Float32x4) (out Float32x4) {
	for i := range v {
		out[i] = v[i] - b[i]
	}
	return
}
