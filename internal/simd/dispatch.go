package simd

import (
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sys/cpu"
)

// name is the widest vector extension reported by the CPU.
var name = detect()

// Name returns a human-readable name for the vector extension detected on
// this CPU, for example "avx2", "neon" or "scalar". It is reported in logs;
// the lane operations of this package are portable Go on every target.
func Name() string {
	return name
}

// NoSimdEnv checks if the BMP_NO_SIMD environment variable is set.
func NoSimdEnv() bool {
	val := os.Getenv("BMP_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func detect() string {
	if NoSimdEnv() {
		return "scalar"
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		switch {
		case cpu.X86.HasAVX512F:
			return "avx512"
		case cpu.X86.HasAVX2:
			return "avx2"
		case cpu.X86.HasSSE2:
			return "sse2"
		}
	case "arm64":
		// ASIMD is part of the ARMv8-A baseline
		if cpu.ARM64.HasASIMD {
			return "neon"
		}
	}
	return "scalar"
}
