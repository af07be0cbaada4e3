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

import "github.com/hwykernels/transpose/hwy"

// The oblivious strategies rely on the block identity
//
//	A = | A11 A12 |   =>   Aᵗ = | A11ᵗ A21ᵗ |
//	    | A21 A22 |             | A12ᵗ A22ᵗ |
//
// and recurse until a sub-matrix is small enough to certainly fit in cache,
// without ever consulting the cache size.

// Oblivious transposes src into dst by recursively quartering the matrix
// until both sides are at most DefaultConfig().Threshold, then using Naive.
//
// Quartering degrades for very skewed shapes; see ObliviousAdaptive.
func Oblivious[T hwy.Lanes](src, dst []T, rows, cols, lda, ldb int) {
	r := recursion[T]{src: src, dst: dst, lda: lda, ldb: ldb, threshold: DefaultThreshold}
	r.symmetric(region{rows: rows, cols: cols})
}

// ObliviousAdaptive transposes src into dst recursively like Oblivious, but
// splits only the long axis while the other one is at most
// DefaultConfig().SkewBound, and finishes the leaves with Tiled.
func ObliviousAdaptive[T hwy.Lanes](src, dst []T, rows, cols, lda, ldb int) {
	r := recursion[T]{
		src: src, dst: dst, lda: lda, ldb: ldb,
		threshold: DefaultThreshold, skewBound: DefaultSkewBound,
		kernel: KernelFor[T](),
	}
	r.adaptive(region{rows: rows, cols: cols})
}

// region is one recursion frame: a rows×cols sub-rectangle whose top-left
// element is (row, col) of the full source matrix. The matching destination
// sub-rectangle starts at (col, row).
type region struct {
	row, col   int
	rows, cols int
}

// recursion holds what every frame shares: the caller's buffers, strides and
// tuning. Strides never change across frames since they describe the full
// backing arrays.
type recursion[T hwy.Lanes] struct {
	src, dst  []T
	lda, ldb  int
	threshold int
	skewBound int
	kernel    Kernel[T]
}

// half returns n/2 rounded down to a multiple of the tile size, which keeps
// sub-problems aligned to the tile grid.
func half(n int) int {
	return (n / 2) &^ (TileSize - 1)
}

func (r *recursion[T]) symmetric(f region) {
	if f.rows <= 0 || f.cols <= 0 {
		return
	}
	if f.rows <= r.threshold && f.cols <= r.threshold {
		Naive(r.src[f.row*r.lda+f.col:], r.dst[f.col*r.ldb+f.row:], f.rows, f.cols, r.lda, r.ldb)
		return
	}

	halfRow, halfCol := half(f.rows), half(f.cols)
	r.symmetric(region{f.row, f.col, halfRow, halfCol})
	r.symmetric(region{f.row, f.col + halfCol, halfRow, f.cols - halfCol})
	r.symmetric(region{f.row + halfRow, f.col, f.rows - halfRow, halfCol})
	r.symmetric(region{f.row + halfRow, f.col + halfCol, f.rows - halfRow, f.cols - halfCol})
}

func (r *recursion[T]) adaptive(f region) {
	if f.rows <= 0 || f.cols <= 0 {
		return
	}

	switch {
	case f.rows <= r.threshold && f.cols <= r.threshold:
		tiled(r.kernel, r.src[f.row*r.lda+f.col:], r.dst[f.col*r.ldb+f.row:], f.rows, f.cols, r.lda, r.ldb)

	case f.rows <= r.skewBound:
		// Short and wide: split only the columns.
		halfCol := half(f.cols)
		r.adaptive(region{f.row, f.col, f.rows, halfCol})
		r.adaptive(region{f.row, f.col + halfCol, f.rows, f.cols - halfCol})

	case f.cols <= r.skewBound:
		// Tall and narrow: split only the rows.
		halfRow := half(f.rows)
		r.adaptive(region{f.row, f.col, halfRow, f.cols})
		r.adaptive(region{f.row + halfRow, f.col, f.rows - halfRow, f.cols})

	default:
		halfRow, halfCol := half(f.rows), half(f.cols)
		r.adaptive(region{f.row, f.col, halfRow, halfCol})
		r.adaptive(region{f.row, f.col + halfCol, halfRow, f.cols - halfCol})
		r.adaptive(region{f.row + halfRow, f.col, f.rows - halfRow, halfCol})
		r.adaptive(region{f.row + halfRow, f.col + halfCol, f.rows - halfRow, f.cols - halfCol})
	}
}
