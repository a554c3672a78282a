package lanes

import (
	"os"
	"strconv"
)

// preferredBits is the widest SIMD register width, in bits, the host is
// believed to support. Set by init() in detect_*.go files.
var preferredBits int

// preferredName is a human-readable name for the detected target.
// Set by init() in detect_*.go files.
var preferredName string

// PreferredBits returns the register width, in bits, of the widest SIMD
// the host CPU offers. It is advisory: it suggests which width tag gives
// the auto-vectorizer the most room, but has no effect on the lane count
// of any instantiated type.
func PreferredBits() int {
	return preferredBits
}

// PreferredName returns a human-readable name for the detected target,
// for example "avx2", "neon", "scalar".
func PreferredName() string {
	return preferredName
}

// NoSimdEnv checks if the LANES_NO_SIMD environment variable is set.
// When set, the host probe reports the 128-bit scalar baseline regardless
// of CPU capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("LANES_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
