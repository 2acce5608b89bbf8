//go:build arm64

package cpufeatures

import "golang.org/x/sys/cpu"

// detectFloat16 checks for ARMv8.2-A half-precision support: FPHP for the
// scalar instructions and ASIMDHP for the vector ones.
func detectFloat16() bool {
	return cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP
}
