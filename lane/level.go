package lane

import (
	"os"
	"strings"

	"k8s.io/klog/v2"
)

// Level identifies the vector capability the engine sizes lane groups for.
type Level int

const (
	// LevelScalar indicates no vector extension; groups still span 16 bytes
	// so batch loops keep a consistent shape.
	LevelScalar Level = iota

	// LevelSSE2 indicates x86-64 SSE2 (128-bit registers).
	LevelSSE2

	// LevelAVX2 indicates x86-64 AVX2 with FMA (256-bit registers).
	LevelAVX2

	// LevelAVX512 indicates x86-64 AVX-512 (512-bit registers).
	LevelAVX512

	// LevelNEON indicates ARM64 NEON/ASIMD (128-bit registers).
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name as accepted by the LANES_LEVEL environment
// variable. The second result is false for unrecognized names.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return LevelScalar, true
	case "sse2":
		return LevelSSE2, true
	case "avx2":
		return LevelAVX2, true
	case "avx512":
		return LevelAVX512, true
	case "neon":
		return LevelNEON, true
	default:
		return LevelScalar, false
	}
}

// LevelEnv is the environment variable that forces a capability level by
// name, overriding CPU detection. Unavailable or unrecognized names fall
// back to detection.
const LevelEnv = "LANES_LEVEL"

// Package-level state, written once by the per-arch init and read-only
// afterwards. Go runs these inits before any importer's code.
var (
	activeLevel Level
	activeWidth int
	overridden  bool

	// CPU feature flags, set by the per-arch init before initLevel runs.
	hasSSE2    bool
	hasAVX2    bool
	hasAVX512F bool
	hasASIMD   bool
)

// initLevel applies the environment override if valid, otherwise selects
// the widest available level. Called from the per-arch init functions.
func initLevel() {
	if env := os.Getenv(LevelEnv); env != "" {
		if lvl, ok := ParseLevel(env); ok && levelAvailable(lvl) {
			overridden = true
			setLevel(lvl)
			klog.V(1).Infof("lane: %s=%s forced %s (%d-byte registers)", LevelEnv, env, activeLevel, activeWidth)
			return
		}
		klog.V(1).Infof("lane: ignoring %s=%q, falling back to detection", LevelEnv, env)
	}
	setLevel(bestLevel())
	klog.V(1).Infof("lane: detected %s (%d-byte registers)", activeLevel, activeWidth)
}

func levelAvailable(l Level) bool {
	switch l {
	case LevelScalar:
		return true
	case LevelSSE2:
		return hasSSE2
	case LevelAVX2:
		return hasAVX2
	case LevelAVX512:
		return hasAVX512F
	case LevelNEON:
		return hasASIMD
	default:
		return false
	}
}

func bestLevel() Level {
	switch {
	case hasAVX512F:
		return LevelAVX512
	case hasAVX2:
		return LevelAVX2
	case hasSSE2:
		return LevelSSE2
	case hasASIMD:
		return LevelNEON
	default:
		return LevelScalar
	}
}

func setLevel(l Level) {
	activeLevel = l
	switch l {
	case LevelAVX512:
		activeWidth = 64
	case LevelAVX2:
		activeWidth = 32
	default:
		// SSE2, NEON and the scalar fallback all use 16-byte groups.
		activeWidth = 16
	}
}

// Active returns the capability level lane groups are sized for.
func Active() Level {
	return activeLevel
}

// Width returns the vector register width in bytes: 16 for SSE2/NEON and
// the scalar fallback, 32 for AVX2, 64 for AVX-512.
func Width() int {
	return activeWidth
}

// Overridden reports whether LANES_LEVEL forced the active level.
func Overridden() bool {
	return overridden
}
