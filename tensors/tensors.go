// Package tensors implements the tensor handles the kernels compute
// through: a flat typed buffer plus the metadata (shape, padding, strides,
// valid region, fixed-point position) that the windowed iteration needs.
//
// Tensors are created unallocated. Kernel configuration may still extend a
// tensor's padding -- so the vectorized loads of the compute functions never
// leave the allocation -- and only then is Allocate called. After
// allocation, the layout is frozen.
//
// The buffer itself is a flat Go slice of the dtype's storage type
// (Float16 is stored as []float16.Float16 from github.com/x448/float16),
// held as an `any`, the same representation the gomlx simplego backend uses.
package tensors

import (
	"github.com/gomlx/exceptions"
	"github.com/x448/float16"

	"github.com/gomlx/kernels/dtypes"
	"github.com/gomlx/kernels/shapes"
)

// Padding is extra space on the last (contiguous) axis, in elements, on
// each side of every row.
type Padding struct {
	Left, Right int
}

// Info is the metadata of a Tensor.
type Info struct {
	shape         shapes.Shape
	fixedPointPos int
	validRegion   ValidRegion
	padding       Padding

	// Layout, set by Tensor.Allocate: per-axis strides in elements, and the
	// flat offset of the first unpadded element.
	strides []int
	offset  int
}

// Shape returns the tensor shape. The returned value shares the dimensions
// slice; callers must not mutate it.
func (info *Info) Shape() shapes.Shape { return info.shape }

// DType returns the element type, InvalidDType while still unset.
func (info *Info) DType() dtypes.DType { return info.shape.DType }

// SetDimensionsIfEmpty adopts the given dimensions if none are set yet.
// Used by output auto-initialization during kernel configuration.
func (info *Info) SetDimensionsIfEmpty(dimensions ...int) {
	if info.shape.HasDimensions() {
		return
	}
	dtype := info.shape.DType
	info.shape = shapes.Make(dtype, dimensions...)
	info.validRegion = FullRegion(dimensions)
}

// SetDTypeIfInvalid adopts the given dtype if none is set yet.
func (info *Info) SetDTypeIfInvalid(dtype dtypes.DType) {
	if info.shape.DType != dtypes.InvalidDType {
		return
	}
	info.shape.DType = dtype
}

// FixedPointPosition returns the fractional-bit position for fixed-point
// dtypes. It is meaningless (zero) for the other dtypes.
func (info *Info) FixedPointPosition() int { return info.fixedPointPos }

// SetFixedPointPosition sets the fractional-bit position.
func (info *Info) SetFixedPointPosition(position int) {
	if position < 0 {
		exceptions.Panicf("tensors: fixed-point position must be >= 0, got %d", position)
	}
	info.fixedPointPos = position
}

// ValidRegion returns the sub-rectangle guaranteed to hold defined data.
func (info *Info) ValidRegion() ValidRegion { return info.validRegion }

// SetValidRegion replaces the valid region.
func (info *Info) SetValidRegion(vr ValidRegion) { info.validRegion = vr }

// Padding returns the current padding requirement.
func (info *Info) Padding() Padding { return info.padding }

// ExtendPadding grows the padding requirement to at least p and reports
// whether it changed. Growing the padding of an already allocated tensor
// panics -- its layout is frozen; an allocated tensor whose padding already
// satisfies p is fine.
func (info *Info) ExtendPadding(p Padding) bool {
	if p.Left <= info.padding.Left && p.Right <= info.padding.Right {
		return false
	}
	if info.strides != nil {
		exceptions.Panicf("tensors: cannot extend padding after the tensor is allocated")
	}
	info.padding.Left = max(info.padding.Left, p.Left)
	info.padding.Right = max(info.padding.Right, p.Right)
	return true
}

// Strides returns the per-axis strides in elements. Nil before allocation.
func (info *Info) Strides() []int { return info.strides }

// OffsetFirstElement returns the flat offset of the element at all-zero
// coordinates.
func (info *Info) OffsetFirstElement() int { return info.offset }

// paddedRowLength is the flat length of one row of the last axis, padding
// included.
func (info *Info) paddedRowLength() int {
	return info.padding.Left + info.shape.Dim(-1) + info.padding.Right
}

// Tensor is a handle to a flat typed buffer plus its Info. The kernels do
// not own tensors; they only read and write through them during Run.
type Tensor struct {
	info Info
	flat any
}

// New returns an unallocated tensor with the given dtype and dimensions.
func New(dtype dtypes.DType, dimensions ...int) *Tensor {
	t := &Tensor{}
	t.info.shape = shapes.Make(dtype, dimensions...)
	t.info.validRegion = FullRegion(dimensions)
	return t
}

// NewFixedPoint returns an unallocated fixed-point tensor with the given
// fractional-bit position. It panics if dtype is not a fixed-point type.
func NewFixedPoint(dtype dtypes.DType, position int, dimensions ...int) *Tensor {
	if !dtype.IsFixedPoint() {
		exceptions.Panicf("tensors.NewFixedPoint: dtype %s is not fixed-point", dtype)
	}
	t := New(dtype, dimensions...)
	t.info.SetFixedPointPosition(position)
	return t
}

// Empty returns a tensor with neither dtype nor dimensions set, to be
// auto-initialized by kernel configuration.
func Empty() *Tensor {
	return &Tensor{info: Info{shape: shapes.Invalid()}}
}

// Info returns the mutable metadata of the tensor.
func (t *Tensor) Info() *Info { return &t.info }

// Shape is shorthand for t.Info().Shape().
func (t *Tensor) Shape() shapes.Shape { return t.info.shape }

// DType is shorthand for t.Info().DType().
func (t *Tensor) DType() dtypes.DType { return t.info.shape.DType }

// IsAllocated returns whether the flat buffer exists already.
func (t *Tensor) IsAllocated() bool { return t.flat != nil }

// Allocate materializes the flat buffer honoring the current padding
// requirement and freezes the layout. It is a no-op if already allocated.
// It returns the tensor to allow chaining.
func (t *Tensor) Allocate() *Tensor {
	if t.IsAllocated() {
		return t
	}
	info := &t.info
	if !info.shape.Ok() {
		exceptions.Panicf("tensors: cannot allocate tensor with incomplete shape %s", info.shape)
	}
	rank := info.shape.Rank()
	strides := make([]int, rank)
	strides[rank-1] = 1
	extent := func(axis int) int {
		if axis == rank-1 {
			return info.paddedRowLength()
		}
		return info.shape.Dim(axis)
	}
	for axis := rank - 2; axis >= 0; axis-- {
		strides[axis] = strides[axis+1] * extent(axis+1)
	}
	total := strides[0] * extent(0)
	info.strides = strides
	info.offset = info.padding.Left

	switch info.shape.DType {
	case dtypes.QInt8:
		t.flat = make([]int8, total)
	case dtypes.Uint8:
		t.flat = make([]uint8, total)
	case dtypes.QInt16, dtypes.Int16:
		t.flat = make([]int16, total)
	case dtypes.Float16:
		t.flat = make([]float16.Float16, total)
	case dtypes.Float32:
		t.flat = make([]float32, total)
	default:
		exceptions.Panicf("tensors: cannot allocate tensor of dtype %s", info.shape.DType)
	}
	return t
}

// Flat returns the flat buffer as an `any` holding the storage slice.
func (t *Tensor) Flat() any { return t.flat }

func flatSlice[T dtypes.Supported](t *Tensor) []T {
	flat, ok := t.flat.([]T)
	if !ok {
		exceptions.Panicf("tensors: tensor of dtype %s (allocated=%v) does not hold the requested storage type",
			t.DType(), t.IsAllocated())
	}
	return flat
}

// Int8s returns the flat buffer of a QInt8 tensor.
func (t *Tensor) Int8s() []int8 { return flatSlice[int8](t) }

// Uint8s returns the flat buffer of a Uint8 tensor.
func (t *Tensor) Uint8s() []uint8 { return flatSlice[uint8](t) }

// Int16s returns the flat buffer of an Int16 or QInt16 tensor.
func (t *Tensor) Int16s() []int16 { return flatSlice[int16](t) }

// Float16s returns the flat buffer of a Float16 tensor.
func (t *Tensor) Float16s() []float16.Float16 { return flatSlice[float16.Float16](t) }

// Float32s returns the flat buffer of a Float32 tensor.
func (t *Tensor) Float32s() []float32 { return flatSlice[float32](t) }
