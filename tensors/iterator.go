package tensors

import (
	"github.com/gomlx/exceptions"

	"github.com/gomlx/kernels/windows"
)

// Iterator is a cursor over one tensor's flat buffer, scoped to a window.
// It keeps one running offset per axis; Offset returns the innermost one.
// It implements windows.Cursor, so several iterators over the same window
// can be advanced in lock-step by windows.Loop.
type Iterator struct {
	axes []iteratorAxis
}

type iteratorAxis struct {
	// current is the running flat offset at this axis' nesting level.
	current int
	// stride is the flat elements advanced per window step along this axis.
	stride int
}

// Compile-time check.
var _ windows.Cursor = (*Iterator)(nil)

// NewIterator returns an iterator over t positioned at the start of w.
// The tensor must be allocated and its rank must match the window's.
func NewIterator(t *Tensor, w windows.Window) *Iterator {
	if !t.IsAllocated() {
		exceptions.Panicf("tensors.NewIterator: tensor %s is not allocated", t.Shape())
	}
	info := t.Info()
	if w.Rank() != info.Shape().Rank() {
		exceptions.Panicf("tensors.NewIterator: window rank %d does not match tensor rank %d",
			w.Rank(), info.Shape().Rank())
	}
	strides := info.Strides()
	base := info.OffsetFirstElement()
	for axis := range w {
		base += w[axis].Start * strides[axis]
	}
	it := &Iterator{axes: make([]iteratorAxis, w.Rank())}
	for axis := range it.axes {
		it.axes[axis] = iteratorAxis{
			current: base,
			stride:  strides[axis] * w[axis].Step,
		}
	}
	return it
}

// Offset returns the flat element offset of the current window position.
func (it *Iterator) Offset() int {
	return it.axes[len(it.axes)-1].current
}

// Increment advances one step along the given axis and rewinds all inner
// axes to the new position.
func (it *Iterator) Increment(axis int) {
	it.axes[axis].current += it.axes[axis].stride
	for inner := axis + 1; inner < len(it.axes); inner++ {
		it.axes[inner].current = it.axes[axis].current
	}
}
