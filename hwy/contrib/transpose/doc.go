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

// Package transpose provides out-of-place 2-D matrix transposition using
// cache-aware and cache-oblivious strategies built on a 4x4 SIMD tile kernel.
//
// All strategies share one contract: given a row-major rows×cols source with
// row stride lda, write its cols×rows transpose into dst with row stride ldb,
// so that dst[j*ldb+i] == src[i*lda+j]. Results are bit-identical across
// strategies.
//
// Example usage:
//
//	// A is rows×cols (stride cols), B is cols×rows (stride rows)
//	a := make([]float32, rows*cols)
//	b := make([]float32, cols*rows)
//
//	transpose.Blocked(a, b, rows, cols, cols, rows)
//
// Available strategies:
//   - Naive: reference double loop, also the base case of the others
//   - Blocked: cache-aware tiling into Config.BlockSize blocks of 4x4 tiles
//   - Oblivious: recursive quartering down to Config.Threshold
//   - ObliviousAdaptive: recursive splitting of the long axis for skewed shapes
//
// The package-level functions do not validate their arguments; violations
// surface as index panics or garbage output. Use Validate, TransposeMatrix or
// Transposer.Checked for an ErrInvalidArgument instead.
//
// The tile kernel automatically selects the best path:
//   - SSE/SSE2 asm on amd64 (4-byte and 8-byte elements)
//   - Portable Vec4 shuffle network elsewhere, for other element widths, or
//     when HWY_NO_SIMD is set
package transpose
