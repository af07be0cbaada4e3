package hwy

// This file provides the lane rearrangements needed by in-register
// transposes. They are pure Go (scalar) implementations over Vec4 values;
// the amd64 asm kernels use the equivalent UNPCKLPS/UNPCKHPS/MOVLHPS/MOVHLPS
// instructions.

// InterleaveLower interleaves the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower[T Lanes](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0], b[0], a[1], b[1]}
}

// InterleaveUpper interleaves the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T Lanes](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[2], b[2], a[3], b[3]}
}

// ConcatLowerLower concatenates the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,a1,b0,b1]
func ConcatLowerLower[T Lanes](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0], a[1], b[0], b[1]}
}

// ConcatUpperUpper concatenates the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,a3,b2,b3]
func ConcatUpperUpper[T Lanes](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[2], a[3], b[2], b[3]}
}

// Transpose4 transposes the 4x4 block held in rows r0..r3, so that the k-th
// returned vector holds lane k of every input row.
//
// It is the _MM_TRANSPOSE4_PS network: two rounds of interleaves followed by
// half concatenations.
func Transpose4[T Lanes](r0, r1, r2, r3 Vec4[T]) (Vec4[T], Vec4[T], Vec4[T], Vec4[T]) {
	t0 := InterleaveLower(r0, r1) // a0 b0 a1 b1
	t1 := InterleaveLower(r2, r3) // c0 d0 c1 d1
	t2 := InterleaveUpper(r0, r1) // a2 b2 a3 b3
	t3 := InterleaveUpper(r2, r3) // c2 d2 c3 d3
	return ConcatLowerLower(t0, t1), ConcatUpperUpper(t0, t1),
		ConcatLowerLower(t2, t3), ConcatUpperUpper(t2, t3)
}
