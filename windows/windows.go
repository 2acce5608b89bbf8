// Package windows defines Window, the rectangular iteration domain a kernel
// is executed over, and the lock-step loop that drives per-tensor cursors
// through it.
//
// A Window holds one (Start, End, Step) triple per axis, ordered like the
// shape axes (outermost first). Only the last axis carries a step larger
// than one: it is the contiguous axis the kernels vectorize over, advancing
// by the number of elements processed per iteration.
//
// A kernel's window is computed once at configuration time and is immutable
// afterwards; schedulers hand disjoint sub-windows of it to Kernel.Run.
package windows

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"

	"github.com/gomlx/kernels/shapes"
)

// Dimension is the iteration range of one axis: positions Start,
// Start+Step, ... up to but excluding End.
type Dimension struct {
	Start, End, Step int
}

// Window is an iteration domain, one Dimension per axis.
type Window []Dimension

// Rank returns the number of axes.
func (w Window) Rank() int { return len(w) }

// NumIterations returns how many steps the given axis takes.
func (w Window) NumIterations(axis int) int {
	d := w[axis]
	if d.End <= d.Start {
		return 0
	}
	return (d.End - d.Start + d.Step - 1) / d.Step
}

// TotalIterations returns the number of positions visited by Loop.
func (w Window) TotalIterations() int {
	total := 1
	for axis := range w {
		total *= w.NumIterations(axis)
	}
	return total
}

// Clone makes a deep copy of the window.
func (w Window) Clone() Window {
	return append(Window{}, w...)
}

// String implements fmt.Stringer, printing each axis as "[start,end):step".
func (w Window) String() string {
	var b strings.Builder
	for _, d := range w {
		_, _ = fmt.Fprintf(&b, "[%d,%d):%d", d.Start, d.End, d.Step)
	}
	return b.String()
}

// ceilToMultiple rounds value up to the nearest multiple of factor.
func ceilToMultiple(value, factor int) int {
	return (value + factor - 1) / factor * factor
}

// CalculateMax returns the maximal window covering the whole of shape, with
// the last axis stepped by lastAxisStep and its end rounded up to a multiple
// of it. The rounding is what forces padded tensor allocations: the final
// vector access of a row may reach past the shape's extent.
func CalculateMax(s shapes.Shape, lastAxisStep int) Window {
	if !s.HasDimensions() {
		exceptions.Panicf("windows.CalculateMax: shape %s has no dimensions", s)
	}
	if lastAxisStep < 1 {
		exceptions.Panicf("windows.CalculateMax: step must be >= 1, got %d", lastAxisStep)
	}
	w := make(Window, s.Rank())
	for axis := range w {
		w[axis] = Dimension{Start: 0, End: s.Dim(axis), Step: 1}
	}
	last := s.Rank() - 1
	w[last].End = ceilToMultiple(s.Dim(last), lastAxisStep)
	w[last].Step = lastAxisStep
	return w
}

// IsValidSub returns whether sub is a window nested inside w that can be
// handed to a kernel configured with w: same rank, same per-axis step,
// contained bounds, and start/extent aligned to the step so vector blocks
// are never torn apart.
func (w Window) IsValidSub(sub Window) bool {
	if w.Rank() != sub.Rank() {
		return false
	}
	for axis := range w {
		d, s := w[axis], sub[axis]
		if s.Step != d.Step {
			return false
		}
		if s.Start < d.Start || s.End > d.End || s.End < s.Start {
			return false
		}
		if (s.Start-d.Start)%d.Step != 0 || (s.End-s.Start)%d.Step != 0 {
			return false
		}
	}
	return true
}

// Split partitions the window along the given axis into total disjoint
// sub-windows and returns the index-th one. The union of all parts is w,
// and parts differ in size by at most one step.
func (w Window) Split(axis, total, index int) Window {
	if axis < 0 || axis >= w.Rank() {
		exceptions.Panicf("Window.Split: axis %d out-of-bounds for rank %d", axis, w.Rank())
	}
	if total < 1 || index < 0 || index >= total {
		exceptions.Panicf("Window.Split: invalid partition %d of %d", index, total)
	}
	n := w.NumIterations(axis)
	d := w[axis]
	sub := w.Clone()
	sub[axis].Start = d.Start + (n*index/total)*d.Step
	sub[axis].End = d.Start + (n*(index+1)/total)*d.Step
	if index == total-1 {
		sub[axis].End = d.End
	}
	return sub
}

// Cursor is a per-tensor position advanced in lock-step by Loop.
//
// Increment moves the cursor one step along the given axis and rewinds its
// position on all inner (higher-numbered) axes, mirroring how an odometer
// carries.
type Cursor interface {
	Increment(axis int)
}

// Loop calls fn once per window position, innermost (last) axis fastest,
// advancing all cursors in lock-step after each call.
//
// The per-position work reads the cursors' current offsets; Loop itself
// never touches tensor memory.
func Loop(w Window, fn func(), cursors ...Cursor) {
	rank := w.Rank()
	if rank == 0 {
		return
	}
	counts := make([]int, rank)
	total := 1
	for axis := range w {
		counts[axis] = w.NumIterations(axis)
		total *= counts[axis]
	}
	if total == 0 {
		return
	}
	indices := make([]int, rank)
	for i := 0; i < total; i++ {
		fn()
		for axis := rank - 1; axis >= 0; axis-- {
			indices[axis]++
			if indices[axis] < counts[axis] {
				for _, c := range cursors {
					c.Increment(axis)
				}
				break
			}
			indices[axis] = 0
		}
	}
}
