package tensors

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
)

// ValidRegion is the sub-rectangle of a tensor guaranteed to contain
// defined data, as opposed to padding or border garbage: it starts at
// Anchor and spans Shape elements on each axis.
type ValidRegion struct {
	Anchor []int
	Shape  []int
}

// FullRegion returns the valid region covering a whole tensor of the given
// dimensions.
func FullRegion(dimensions []int) ValidRegion {
	return ValidRegion{
		Anchor: make([]int, len(dimensions)),
		Shape:  slices.Clone(dimensions),
	}
}

// Rank returns the number of axes of the region.
func (vr ValidRegion) Rank() int { return len(vr.Shape) }

// Equal compares anchor and shape.
func (vr ValidRegion) Equal(other ValidRegion) bool {
	return slices.Equal(vr.Anchor, other.Anchor) && slices.Equal(vr.Shape, other.Shape)
}

// String implements fmt.Stringer.
func (vr ValidRegion) String() string {
	return fmt.Sprintf("{anchor=%v, shape=%v}", vr.Anchor, vr.Shape)
}

// Intersect returns the per-axis intersection of two valid regions.
// Empty axes yield zero extents. The regions must have the same rank.
func Intersect(a, b ValidRegion) ValidRegion {
	if a.Rank() != b.Rank() {
		exceptions.Panicf("tensors.Intersect: rank mismatch between valid regions %s and %s", a, b)
	}
	out := ValidRegion{
		Anchor: make([]int, a.Rank()),
		Shape:  make([]int, a.Rank()),
	}
	for axis := range out.Anchor {
		start := max(a.Anchor[axis], b.Anchor[axis])
		end := min(a.Anchor[axis]+a.Shape[axis], b.Anchor[axis]+b.Shape[axis])
		out.Anchor[axis] = start
		out.Shape[axis] = max(0, end-start)
	}
	return out
}
