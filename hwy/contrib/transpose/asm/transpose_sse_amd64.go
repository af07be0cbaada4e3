// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !noasm && amd64

// SSE 4x4 tile transpose for AMD64.
// Uses UNPCKLPS/UNPCKHPS + MOVLHPS/MOVHLPS for 4-byte lanes and
// UNPCKLPD/UNPCKHPD for 8-byte lanes. Both are in the amd64 baseline, so no
// feature check is needed beyond the build tag.
package asm

import "unsafe"

// Available reports whether the asm kernels are compiled in.
const Available = true

//go:noescape
func transpose4x4_sse_f32(src, dst unsafe.Pointer, lda, ldb int)

//go:noescape
func transpose4x4_sse2_f64(src, dst unsafe.Pointer, lda, ldb int)

// Transpose4x4SSEF32 transposes the 4x4 float32 tile at src (row stride lda)
// into dst (row stride ldb).
//
// The two index hints make an out-of-bounds tile panic before any memory is
// touched; the asm itself does no bounds checking.
func Transpose4x4SSEF32(src, dst []float32, lda, ldb int) {
	_ = src[3*lda+3]
	_ = dst[3*ldb+3]
	transpose4x4_sse_f32(unsafe.Pointer(&src[0]), unsafe.Pointer(&dst[0]), lda, ldb)
}

// Transpose4x4SSE2F64 transposes the 4x4 float64 tile at src (row stride lda)
// into dst (row stride ldb).
func Transpose4x4SSE2F64(src, dst []float64, lda, ldb int) {
	_ = src[3*lda+3]
	_ = dst[3*ldb+3]
	transpose4x4_sse2_f64(unsafe.Pointer(&src[0]), unsafe.Pointer(&dst[0]), lda, ldb)
}
