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

//go:build noasm || !amd64

// Package asm holds the hand-written tile kernels. On this platform (or with
// the noasm tag) none are compiled in and callers must use the portable
// kernels.
package asm

// Available reports whether the asm kernels are compiled in.
const Available = false

// Transpose4x4SSEF32 is not available on this platform.
func Transpose4x4SSEF32(src, dst []float32, lda, ldb int) {
	panic("asm: SSE kernels are not available on this platform")
}

// Transpose4x4SSE2F64 is not available on this platform.
func Transpose4x4SSE2F64(src, dst []float64, lda, ldb int) {
	panic("asm: SSE2 kernels are not available on this platform")
}
