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
	"fmt"
	"testing"

	"github.com/hwykernels/transpose/hwy/contrib/workerpool"
	"github.com/x448/float16"
)

func BenchmarkStrategies(b *testing.B) {
	tr, err := New[float32]()
	if err != nil {
		b.Fatal(err)
	}
	for _, size := range []int{64, 256, 1024, 2048} {
		src := make([]float32, size*size)
		dst := make([]float32, size*size)
		for i := range src {
			src[i] = float32(i)
		}
		for _, s := range Strategies() {
			b.Run(fmt.Sprintf("%s/%dx%d", s, size, size), func(b *testing.B) {
				b.SetBytes(int64(size * size * 4 * 2)) // read + write
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					tr.Transpose(s, src, dst, size, size, size, size)
				}
			})
		}
	}
}

func BenchmarkSkewed(b *testing.B) {
	for _, shape := range []struct{ rows, cols int }{{4, 1 << 16}, {1 << 16, 4}, {16, 1 << 14}} {
		src := make([]float64, shape.rows*shape.cols)
		dst := make([]float64, shape.rows*shape.cols)
		for _, s := range Strategies() {
			b.Run(fmt.Sprintf("%s/%dx%d", s, shape.rows, shape.cols), func(b *testing.B) {
				tr := defaultTransposer[float64]()
				b.SetBytes(int64(shape.rows * shape.cols * 8 * 2))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					tr.Transpose(s, src, dst, shape.rows, shape.cols, shape.cols, shape.rows)
				}
			})
		}
	}
}

func BenchmarkFloat16(b *testing.B) {
	for _, size := range []int{256, 1024} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			src := make([]float16.Float16, size*size)
			dst := make([]float16.Float16, size*size)
			for i := range src {
				src[i] = float16.Fromfloat32(float32(i))
			}
			b.SetBytes(int64(size * size * 2 * 2)) // read + write
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Blocked(src, dst, size, size, size, size)
			}
		})
	}
}

func BenchmarkParallel(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()
	tr := defaultTransposer[float32]()

	for _, size := range []int{512, 2048, 4096} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			src := make([]float32, size*size)
			dst := make([]float32, size*size)
			b.SetBytes(int64(size * size * 4 * 2))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Parallel(pool, tr, src, dst, size, size, size, size)
			}
		})
	}
}
