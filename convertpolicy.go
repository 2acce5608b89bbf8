package kernels

//go:generate go tool enumer -type=ConvertPolicy -trimprefix=Policy -output=gen_convertpolicy_enumer.go convertpolicy.go

// ConvertPolicy selects how integer overflow is handled. It is fixed for
// the lifetime of a configured kernel.
//
// For floating-point types the distinction is moot -- IEEE subtraction has
// no wrap semantics -- and both policies resolve to the same function.
type ConvertPolicy int

const (
	// PolicyWrap wraps the result modulo the output type's range
	// (two's-complement wraparound).
	PolicyWrap ConvertPolicy = iota

	// PolicySaturate clamps the result to the output type's representable
	// range.
	PolicySaturate
)
