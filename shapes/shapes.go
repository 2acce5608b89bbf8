// Package shapes defines Shape, the combination of an element type (DType)
// and per-axis dimensions, used to describe tensors and iteration domains.
//
// Axes are ordered outermost first: the last axis is the contiguous one in
// memory, and the one the kernels vectorize over.
package shapes

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"

	"github.com/gomlx/kernels/dtypes"
)

// Shape represents the shape of a tensor: its element type and the extent of
// each axis.
//
// Either part may still be unset on a Shape used for an output tensor that
// will be auto-initialized during kernel configuration: DType may be
// InvalidDType, and Dimensions may be empty.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// Make returns a Shape with the given dtype and dimensions.
// It panics if any dimension is not positive.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim <= 0 {
			exceptions.Panicf("shapes.Make(%s): cannot create a shape with an axis with dimension <= 0", s)
		}
	}
	return s
}

// Invalid returns a Shape with no dtype and no dimensions.
func Invalid() Shape { return Shape{DType: dtypes.InvalidDType} }

// Ok returns whether both the dtype and the dimensions are set.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType && len(s.Dimensions) > 0 }

// HasDimensions returns whether the dimensions are set, independently of the
// dtype.
func (s Shape) HasDimensions() bool { return len(s.Dimensions) > 0 }

// Rank of the shape, that is, the number of axes.
func (s Shape) Rank() int { return len(s.Dimensions) }

// Size returns the number of elements of DType needed for this shape.
// It's the product of all dimensions.
func (s Shape) Size() (size int) {
	size = 1
	for _, dim := range s.Dimensions {
		size *= dim
	}
	return
}

// Dim returns the dimension of the given axis. axis can take negative
// numbers, in which case it counts from the end -- so axis=-1 refers to the
// last (contiguous) axis. It panics on an out-of-bounds axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// Equal compares dtype and dimensions.
func (s Shape) Equal(s2 Shape) bool {
	return s.DType == s2.DType && s.EqualDimensions(s2)
}

// EqualDimensions compares only the dimensions, ignoring the dtype.
func (s Shape) EqualDimensions(s2 Shape) bool {
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone makes a deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// String implements fmt.Stringer: it prints as "(DType)[dims...]".
func (s Shape) String() string {
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
}
