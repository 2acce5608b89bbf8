package tensors

import (
	"github.com/gomlx/exceptions"

	"github.com/gomlx/kernels/dtypes"
)

// SetFlatData copies values row-major into the tensor's unpadded region.
// The tensor must be allocated, values must use the tensor's storage type
// and have exactly Shape().Size() elements. Padding bytes are left as they
// are.
func SetFlatData[T dtypes.Supported](t *Tensor, values []T) {
	flat := flatSlice[T](t)
	info := t.Info()
	size := info.Shape().Size()
	if len(values) != size {
		exceptions.Panicf("tensors.SetFlatData: got %d values for shape %s (size %d)",
			len(values), info.Shape(), size)
	}
	rowLen := info.Shape().Dim(-1)
	paddedRow := info.paddedRowLength()
	for row := 0; row < size/rowLen; row++ {
		dst := flat[info.offset+row*paddedRow:][:rowLen]
		copy(dst, values[row*rowLen:(row+1)*rowLen])
	}
}

// FlatData returns a freshly allocated row-major copy of the tensor's
// unpadded region.
func FlatData[T dtypes.Supported](t *Tensor) []T {
	flat := flatSlice[T](t)
	info := t.Info()
	size := info.Shape().Size()
	rowLen := info.Shape().Dim(-1)
	paddedRow := info.paddedRowLength()
	out := make([]T, size)
	for row := 0; row < size/rowLen; row++ {
		src := flat[info.offset+row*paddedRow:][:rowLen]
		copy(out[row*rowLen:], src)
	}
	return out
}

// FromFlat creates an allocated tensor of the dtype matching T, with no
// extra padding, filled with values. Mostly a test and example convenience:
// tensors fed to kernels are usually allocated only after configuration, so
// padding requirements are already known.
func FromFlat[T dtypes.Supported](values []T, dimensions ...int) *Tensor {
	t := New(dtypes.FromGenericsType[T](), dimensions...).Allocate()
	SetFlatData(t, values)
	return t
}
