// Package hwy provides the portable SIMD plumbing shared by the transpose
// kernels: element constraints, runtime CPU dispatch and small fixed-width
// vector values whose shuffle operations mirror the SSE/NEON lane
// rearrangements.
//
// It follows the Highway C++ library's design philosophy: write once,
// run optimally everywhere. Hot kernels are selected at init time from the
// detected DispatchLevel and fall back to portable Go code.
//
// Basic usage:
//
//	import "github.com/hwykernels/transpose/hwy"
//
//	r0 := hwy.LoadVec4(src)
//	r1 := hwy.LoadVec4(src[stride:])
//	lo := hwy.InterleaveLower(r0, r1)
//	lo.Store(dst)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
//
// Half-precision types stored as uint16 (e.g. float16.Float16) satisfy it.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec4Lanes is the number of lanes of a Vec4.
const Vec4Lanes = 4

// Vec4 is a 4-lane vector value.
//
// Unlike a slice-backed vector it lives entirely in registers/stack, so the
// shuffle networks built from it never allocate.
type Vec4[T Lanes] [Vec4Lanes]T

// LoadVec4 loads the first 4 elements of src.
// It panics if len(src) < 4.
func LoadVec4[T Lanes](src []T) Vec4[T] {
	_ = src[3]
	return Vec4[T]{src[0], src[1], src[2], src[3]}
}

// Store writes the 4 lanes to dst[0:4].
// It panics if len(dst) < 4.
func (v Vec4[T]) Store(dst []T) {
	_ = dst[3]
	dst[0] = v[0]
	dst[1] = v[1]
	dst[2] = v[2]
	dst[3] = v[3]
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec4[T]) NumLanes() int {
	return Vec4Lanes
}
