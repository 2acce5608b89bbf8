// Package cpufeatures centralizes the one-time probing of the CPU
// capabilities the kernels condition on.
//
// Today that is a single flag: native half-precision arithmetic. Kernel
// dispatch consults it once per configuration, so a missing capability
// surfaces as an unsupported-type configuration error instead of a slow or
// wrong result at execution time.
package cpufeatures

var float16Supported = detectFloat16()

// Float16 reports whether the CPU supports native half-precision vector
// arithmetic. Probed once at startup.
func Float16() bool { return float16Supported }

// SetFloat16ForTest overrides the probed value and returns a function that
// restores it. Tests use it to exercise both dispatch paths on any
// hardware. Not safe to call concurrently with kernel configuration.
func SetFloat16ForTest(enabled bool) (restore func()) {
	previous := float16Supported
	float16Supported = enabled
	return func() { float16Supported = previous }
}
