// Package dtypes defines the DType enum of element types supported by the
// kernels, and helpers to query their properties.
//
// The enumeration is deliberately closed: kernels are compiled as one
// specialization per (policy, type, type, type) combination, so adding a
// dtype here means adding the corresponding compute functions as well.
//
// Half-precision floats use the github.com/x448/float16 implementation.
// The fixed-point types (QInt8, QInt16) share the storage of their plain
// integer counterparts; the fractional-bit position lives in the tensor
// metadata, not here.
package dtypes

import (
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// panicf panics with the formatted description.
//
// It is only used for "bugs in the code" -- when parameters don't follow the
// specifications. In principle, it should never happen -- the same way
// nil-pointer panics should never happen.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

//go:generate go tool enumer -type=DType -output=gen_dtype_enumer.go dtypes.go

// DType is an enum that represents the element type of a tensor.
type DType int32

const (
	// InvalidDType is the zero value, and serves as the "not yet set" marker
	// during output auto-initialization.
	InvalidDType DType = iota

	// QInt8 is an 8-bit fixed-point type: int8 storage with an implied
	// scaling factor of 2^-position, position given by the tensor metadata.
	QInt8

	// Uint8 is an unsigned 8-bit integer.
	Uint8

	// QInt16 is a 16-bit fixed-point type: int16 storage plus a
	// fractional-bit position in the tensor metadata.
	QInt16

	// Int16 is a signed 16-bit integer.
	Int16

	// Float16 is an IEEE 754 half-precision float.
	Float16

	// Float32 is an IEEE 754 single-precision float.
	Float32
)

// IsSupported returns whether dtype is one of the closed enumeration of
// element types the kernels operate on.
func (dtype DType) IsSupported() bool {
	return dtype > InvalidDType && dtype <= Float32
}

// IsFixedPoint returns whether dtype carries an implied fractional-bit
// position.
func (dtype DType) IsFixedPoint() bool {
	return dtype == QInt8 || dtype == QInt16
}

// IsFloat returns whether dtype is a floating-point type.
func (dtype DType) IsFloat() bool {
	return dtype == Float16 || dtype == Float32
}

// IsInteger returns whether dtype is stored and computed as an integer --
// this includes the fixed-point types, whose raw arithmetic is integer
// arithmetic.
func (dtype DType) IsInteger() bool {
	switch dtype {
	case QInt8, Uint8, QInt16, Int16:
		return true
	}
	return false
}

// Memory returns the bytes used to store one element of the given dtype.
func (dtype DType) Memory() uintptr {
	switch dtype {
	case QInt8, Uint8:
		return 1
	case QInt16, Int16, Float16:
		return 2
	case Float32:
		return 4
	default:
		panicf("dtypes: Memory() called for unsupported dtype %s", dtype)
	}
	return 0
}

// Supported is the constraint of Go storage types that tensors can hold.
//
// Notice int8 and int16 double as the storage for the fixed-point types
// QInt8 and QInt16.
type Supported interface {
	int8 | uint8 | int16 | float16.Float16 | float32
}

// FromGenericsType returns the DType whose storage is the given Go type.
//
// int8 maps to QInt8, the only 8-bit signed type in the enumeration; int16
// maps to Int16 (use the tensor constructors to request QInt16 explicitly).
func FromGenericsType[T Supported]() DType {
	var t T
	switch (any(t)).(type) {
	case int8:
		return QInt8
	case uint8:
		return Uint8
	case int16:
		return Int16
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	}
	return InvalidDType
}
