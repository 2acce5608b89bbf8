package tensors

import (
	"github.com/gomlx/exceptions"

	"github.com/gomlx/kernels/windows"
)

// AccessHorizontal declares how a kernel touches a tensor: at every window
// position it reads or writes numElements contiguous elements along the
// last axis, starting offset elements relative to the position. Kernel
// configuration registers one per tensor so padding requirements are
// derived uniformly.
type AccessHorizontal struct {
	info        *Info
	offset      int
	numElements int
}

// NewAccessHorizontal builds the access pattern for t.
func NewAccessHorizontal(t *Tensor, offset, numElements int) AccessHorizontal {
	if numElements < 1 {
		exceptions.Panicf("tensors.NewAccessHorizontal: numElements must be >= 1, got %d", numElements)
	}
	return AccessHorizontal{info: t.Info(), offset: offset, numElements: numElements}
}

// updatePaddingIfNeeded grows the tensor's padding so every access within w
// stays inside the allocation, and reports whether it changed anything.
func (a AccessHorizontal) updatePaddingIfNeeded(w windows.Window) bool {
	last := w.Rank() - 1
	d := w[last]
	if w.NumIterations(last) == 0 {
		return false
	}
	dim := a.info.Shape().Dim(-1)
	lastPos := d.Start + (w.NumIterations(last)-1)*d.Step
	needed := Padding{
		Left:  max(0, -(d.Start + a.offset)),
		Right: max(0, lastPos+a.offset+a.numElements-dim),
	}
	return a.info.ExtendPadding(needed)
}

// SetValidRegion records vr, clipped to the tensor's own extents, as the
// tensor's valid region. The window argument bounds nothing here beyond its
// rank; it is kept so the call site mirrors the configure-time flow where
// window and valid region are settled together.
func (a AccessHorizontal) SetValidRegion(w windows.Window, vr ValidRegion) {
	if vr.Rank() != w.Rank() {
		exceptions.Panicf("tensors.SetValidRegion: valid region rank %d does not match window rank %d",
			vr.Rank(), w.Rank())
	}
	a.info.SetValidRegion(Intersect(vr, FullRegion(a.info.Shape().Dimensions)))
}

// UpdateWindowAndPadding extends the padding of every accessed tensor so
// the vectorized accesses stay in bounds over all of w. It reports whether
// any padding changed.
func UpdateWindowAndPadding(w windows.Window, accesses ...AccessHorizontal) bool {
	changed := false
	for _, a := range accesses {
		changed = a.updatePaddingIfNeeded(w) || changed
	}
	return changed
}
