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

package transpose

import (
	"unsafe"

	"github.com/hwykernels/transpose/hwy"
)

// TileSize is the edge length of the micro-kernel tile.
const TileSize = hwy.Vec4Lanes

// Kernel transposes exactly one TileSize×TileSize tile from src (row stride
// lda) into dst (row stride ldb). Kernels never handle partial tiles.
type Kernel[T hwy.Lanes] func(src, dst []T, lda, ldb int)

// Transpose4x4Float32 is the dispatched tile kernel for 4-byte lanes.
// It is replaced at init by the SSE kernel on amd64.
var Transpose4x4Float32 func(src, dst []float32, lda, ldb int) = BaseTranspose4x4[float32]

// Transpose4x4Float64 is the dispatched tile kernel for 8-byte lanes.
// It is replaced at init by the SSE2 kernel on amd64.
var Transpose4x4Float64 func(src, dst []float64, lda, ldb int) = BaseTranspose4x4[float64]

// BaseTranspose4x4 is the portable tile kernel: 4 row loads, the
// hwy.Transpose4 shuffle network so that register k holds column k, then 4
// row stores.
//
// Panics if either tile is not fully inside its slice.
func BaseTranspose4x4[T hwy.Lanes](src, dst []T, lda, ldb int) {
	_ = src[3*lda+3]
	_ = dst[3*ldb+3]

	r0 := hwy.LoadVec4(src)
	r1 := hwy.LoadVec4(src[lda:])
	r2 := hwy.LoadVec4(src[2*lda:])
	r3 := hwy.LoadVec4(src[3*lda:])

	c0, c1, c2, c3 := hwy.Transpose4(r0, r1, r2, r3)

	c0.Store(dst)
	c1.Store(dst[ldb:])
	c2.Store(dst[2*ldb:])
	c3.Store(dst[3*ldb:])
}

// Transpose4x4 transposes one 4x4 tile with the best kernel for T.
//
// Inside loops prefer resolving the kernel once with KernelFor.
func Transpose4x4[T hwy.Lanes](src, dst []T, lda, ldb int) {
	KernelFor[T]()(src, dst, lda, ldb)
}

// KernelFor returns the tile kernel for T.
//
// Transposition only moves bits, so any 4-byte element type runs on the
// float32 kernel and any 8-byte element type on the float64 kernel. Other
// widths use BaseTranspose4x4.
func KernelFor[T hwy.Lanes]() Kernel[T] {
	if k, ok := any(Transpose4x4Float32).(func([]T, []T, int, int)); ok {
		return k
	}
	if k, ok := any(Transpose4x4Float64).(func([]T, []T, int, int)); ok {
		return k
	}

	var zero T
	switch unsafe.Sizeof(zero) {
	case 4:
		f32 := Transpose4x4Float32
		return func(src, dst []T, lda, ldb int) {
			f32(reinterpret[float32](src), reinterpret[float32](dst), lda, ldb)
		}
	case 8:
		f64 := Transpose4x4Float64
		return func(src, dst []T, lda, ldb int) {
			f64(reinterpret[float64](src), reinterpret[float64](dst), lda, ldb)
		}
	}
	return BaseTranspose4x4[T]
}

// reinterpret views s as a slice of U. Both types must have the same size.
func reinterpret[U, T hwy.Lanes](s []T) []U {
	return unsafe.Slice((*U)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
