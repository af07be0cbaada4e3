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

// Tiled transposes src into dst by walking 4x4 tiles with the tile kernel,
// which is the better choice for small matrices that already fit in cache.
//
// The right strip of each 4-row band (cols%4 columns) and the bottom band
// (rows%4 rows) are handled by Naive; the kernel is never called on a partial
// tile.
func Tiled[T hwy.Lanes](src, dst []T, rows, cols, lda, ldb int) {
	tiled(KernelFor[T](), src, dst, rows, cols, lda, ldb)
}

func tiled[T hwy.Lanes](kernel Kernel[T], src, dst []T, rows, cols, lda, ldb int) {
	if rows <= 0 || cols <= 0 {
		return
	}

	fullRows := rows &^ (TileSize - 1)
	fullCols := cols &^ (TileSize - 1)

	for i := 0; i < fullRows; i += TileSize {
		for j := 0; j < fullCols; j += TileSize {
			kernel(src[i*lda+j:], dst[j*ldb+i:], lda, ldb)
		}

		// Remaining columns of this band.
		if fullCols < cols {
			Naive(src[i*lda+fullCols:], dst[fullCols*ldb+i:], TileSize, cols-fullCols, lda, ldb)
		}
	}

	// Remaining rows, all columns.
	if fullRows < rows {
		Naive(src[fullRows*lda:], dst[fullRows:], rows-fullRows, cols, lda, ldb)
	}
}
