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

//go:build amd64

// NOTE: This file is named "z_kernel_amd64.go" (starting with 'z')
// so its init() runs after every other init in the package.
// Go executes init() functions in lexicographic filename order within a package.

package transpose

import (
	"github.com/hwykernels/transpose/hwy"
	"github.com/hwykernels/transpose/hwy/contrib/transpose/asm"
)

func init() {
	// HWY_NO_SIMD forces scalar dispatch, which keeps the portable kernels.
	if !asm.Available || !hwy.CurrentLevel().IsX86() {
		return
	}
	Transpose4x4Float32 = asm.Transpose4x4SSEF32
	Transpose4x4Float64 = asm.Transpose4x4SSE2F64
}
