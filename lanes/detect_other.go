//go:build !amd64 && !arm64

package lanes

func init() {
	// Architectures without a probe report the 128-bit baseline.
	preferredBits = 128
	preferredName = "scalar"
}
