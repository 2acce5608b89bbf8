//go:build amd64

package cpufeatures

import "golang.org/x/sys/cpu"

// detectFloat16 approximates F16C detection: golang.org/x/sys/cpu does not
// expose the F16C bit directly, but every CPU shipping AVX2+FMA also ships
// F16C (both arrived with Haswell and are required together by the
// x86-64-v3 level).
func detectFloat16() bool {
	return cpu.X86.HasAVX2 && cpu.X86.HasFMA
}
