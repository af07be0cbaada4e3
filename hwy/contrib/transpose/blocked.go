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

// Blocked transposes src into dst with cache-aware loop blocking using
// DefaultConfig().BlockSize.
//
// The matrix is cut into BlockSize×BlockSize blocks in row-major block order
// so that a source block and its destination block stay resident in L1 while
// a block is processed; each block is then walked in 4x4 tiles (see Tiled).
// Edge blocks are clipped to the remaining rows and columns.
func Blocked[T hwy.Lanes](src, dst []T, rows, cols, lda, ldb int) {
	blocked(KernelFor[T](), DefaultBlockSize, src, dst, rows, cols, lda, ldb)
}

func blocked[T hwy.Lanes](kernel Kernel[T], blockSize int, src, dst []T, rows, cols, lda, ldb int) {
	for i := 0; i < rows; i += blockSize {
		r := min(blockSize, rows-i)
		for j := 0; j < cols; j += blockSize {
			c := min(blockSize, cols-j)
			tiled(kernel, src[i*lda+j:], dst[j*ldb+i:], r, c, lda, ldb)
		}
	}
}
