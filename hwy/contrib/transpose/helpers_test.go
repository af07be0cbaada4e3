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
	"math/rand/v2"
	"testing"

	"github.com/hwykernels/transpose/hwy"
	"github.com/hwykernels/transpose/hwy/contrib/workerpool"
)

// sentinel marks destination padding that no strategy may write.
const sentinel = 123

type transposeFunc[T hwy.Lanes] func(src, dst []T, rows, cols, lda, ldb int)

type namedFunc[T hwy.Lanes] struct {
	name string
	fn   transposeFunc[T]
}

// allFuncs returns every way to run a transpose: the package-level strategies,
// a Transposer with small tuning so that recursion and edge blocks are
// reached on small shapes, and the parallel driver.
func allFuncs[T hwy.Lanes](t testing.TB, pool *workerpool.Pool) []namedFunc[T] {
	t.Helper()
	small, err := New[T](WithBlockSize(8), WithThreshold(8), WithSkewBound(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return []namedFunc[T]{
		{"Naive", Naive[T]},
		{"Tiled", Tiled[T]},
		{"Blocked", Blocked[T]},
		{"Oblivious", Oblivious[T]},
		{"ObliviousAdaptive", ObliviousAdaptive[T]},
		{"Small/Tiled", small.Tiled},
		{"Small/Blocked", small.Blocked},
		{"Small/Oblivious", small.Oblivious},
		{"Small/ObliviousAdaptive", small.ObliviousAdaptive},
		{"Parallel", func(src, dst []T, rows, cols, lda, ldb int) {
			Parallel(pool, small, src, dst, rows, cols, lda, ldb)
		}},
	}
}

// randomMatrix returns a rows×cols source with row stride lda, padding
// included, filled with small random values.
func randomMatrix[T hwy.Lanes](rng *rand.Rand, rows, cols, lda int) []T {
	src := make([]T, max(RequiredLen(rows, cols, lda), 0))
	for i := range src {
		src[i] = T(rng.IntN(100))
	}
	return src
}

// paddedDst returns a destination of cols rows with stride ldb, filled with
// sentinel, and with one extra trailing element.
func paddedDst[T hwy.Lanes](rows, cols, ldb int) []T {
	dst := make([]T, RequiredLen(cols, rows, ldb)+1)
	for i := range dst {
		dst[i] = sentinel
	}
	return dst
}

// reference is the scalar oracle, written independently of Naive.
func reference[T hwy.Lanes](src []T, rows, cols, lda, ldb int) []T {
	want := paddedDst[T](rows, cols, ldb)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			want[j*ldb+i] = src[i*lda+j]
		}
	}
	return want
}

// firstDiff returns the first index at which got and want differ, or -1.
func firstDiff[T comparable](got, want []T) int {
	if len(got) != len(want) {
		return min(len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			return i
		}
	}
	return -1
}
