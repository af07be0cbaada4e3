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

// Naive transposes the rows×cols matrix src (row stride lda) into dst
// (row stride ldb) with a plain double loop.
//
// It is the reference every other strategy must match exactly, and the base
// case they fall back to once a sub-matrix is known to be cache resident.
// Non-positive rows or cols is a no-op.
func Naive[T hwy.Lanes](src, dst []T, rows, cols, lda, ldb int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	for i := 0; i < rows; i++ {
		row := src[i*lda : i*lda+cols]
		for j, v := range row {
			dst[j*ldb+i] = v
		}
	}
}
