package kernels

import "github.com/pkg/errors"

// Error taxonomy of the kernels. All failures are synchronous and fatal to
// the operation: configuration either fully succeeds or leaves the kernel
// unconfigured, and Run either applies the whole window or touches nothing.
// Use errors.Is to classify; the returned errors wrap these sentinels with
// the offending details.
var (
	// ErrInvalidArgument: a nil tensor handle was passed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrShapeMismatch: the tensors' shapes differ after output
	// auto-initialization.
	ErrShapeMismatch = errors.New("mismatching tensor shapes")

	// ErrUnsupportedType: an element type outside the supported
	// enumeration, or a type whose native support is missing on this CPU.
	ErrUnsupportedType = errors.New("unsupported element type")

	// ErrInvalidTypeCombination: the (policy, type, type, type) combination
	// has no compute function.
	ErrInvalidTypeCombination = errors.New("invalid element type combination")

	// ErrFixedPointMismatch: fixed-point tensors with different dtypes or
	// fractional-bit positions.
	ErrFixedPointMismatch = errors.New("mismatching fixed-point types or positions")

	// ErrNotConfigured: Run called before a successful Configure.
	ErrNotConfigured = errors.New("kernel is not configured")

	// ErrInvalidSubwindow: the window passed to Run is not nested in the
	// configured window.
	ErrInvalidSubwindow = errors.New("invalid sub-window")
)
