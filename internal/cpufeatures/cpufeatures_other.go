//go:build !arm64 && !amd64

package cpufeatures

// detectFloat16 returns false on architectures we have not probed.
func detectFloat16() bool {
	return false
}
