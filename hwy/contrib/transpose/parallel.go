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
	"github.com/hwykernels/transpose/hwy"
	"github.com/hwykernels/transpose/hwy/contrib/workerpool"
)

// MinParallelElements is the element count below which Parallel runs on the
// calling goroutine: the matrix is small enough that dispatch overhead would
// dominate.
const MinParallelElements = 64 * 1024

// Parallel transposes src into dst with t's blocked strategy, splitting the
// source into strips of Config().BlockSize rows that run on pool. Each strip
// writes its own column band of dst, so workers never touch the same element.
//
// Arguments are not validated (see Validate). A nil pool, or an input smaller
// than MinParallelElements, runs sequentially.
func Parallel[T hwy.Lanes](pool *workerpool.Pool, t *Transposer[T], src, dst []T, rows, cols, lda, ldb int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	if pool == nil || rows*cols < MinParallelElements {
		t.Blocked(src, dst, rows, cols, lda, ldb)
		return
	}

	strip := t.cfg.BlockSize
	numStrips := (rows + strip - 1) / strip
	pool.ParallelForAtomic(numStrips, func(s int) {
		row := s * strip
		t.Blocked(src[row*lda:], dst[row:], min(strip, rows-row), cols, lda, ldb)
	})
}
