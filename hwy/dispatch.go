package hwy

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel is the SIMD instruction family picked for this process.
type DispatchLevel int

const (
	// DispatchScalar means the portable Go kernels.
	DispatchScalar DispatchLevel = iota
	// DispatchSSE2 is the x86-64 baseline, 128-bit.
	DispatchSSE2
	// DispatchAVX2 is 256-bit x86 SIMD with FMA.
	DispatchAVX2
	// DispatchAVX512 is 512-bit x86 SIMD (F and VL).
	DispatchAVX512
	// DispatchNEON is 128-bit ARM SIMD.
	DispatchNEON
)

var levelNames = [...]string{
	DispatchScalar: "scalar",
	DispatchSSE2:   "sse2",
	DispatchAVX2:   "avx2",
	DispatchAVX512: "avx512",
	DispatchNEON:   "neon",
}

func (d DispatchLevel) String() string {
	if d < 0 || int(d) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[d]
}

// IsX86 reports whether d is one of the x86-64 families, all of which imply
// SSE2.
func (d DispatchLevel) IsX86() bool {
	return d == DispatchSSE2 || d == DispatchAVX2 || d == DispatchAVX512
}

// target is what the per-architecture init detected. It is written once
// during package initialization and only read afterwards.
var target struct {
	level DispatchLevel
	width int // register width in bytes
}

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel { return target.level }

// CurrentWidth returns the register width in bytes of the detected level:
// 16 for SSE2, NEON and scalar, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int { return target.width }

// CurrentName returns CurrentLevel().String().
func CurrentName() string { return target.level.String() }

// NoSimdEnv reports whether HWY_NO_SIMD asks for the portable kernels.
// Any value other than one strconv.ParseBool reads as false counts as set.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns how many T fit in one register at the current level.
func MaxLanes[T Lanes]() int {
	var zero T
	return target.width / int(unsafe.Sizeof(zero))
}

func setScalarMode() {
	// Scalar still reports 16 bytes so MaxLanes stays meaningful.
	setLevel(DispatchScalar, 16)
}

func setLevel(level DispatchLevel, width int) {
	target.level = level
	target.width = width
}
