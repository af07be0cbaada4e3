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
	"math"
	"unsafe"

	"github.com/hwykernels/transpose/hwy"
	"github.com/pkg/errors"
)

// RequiredLen returns the smallest backing length of a rows×cols row-major
// matrix with row stride ld, that is (rows-1)*ld + cols, or 0 for an empty
// matrix. It returns -1 if the length overflows int.
func RequiredLen(rows, cols, ld int) int {
	if rows <= 0 || cols <= 0 {
		return 0
	}
	if rows > 1 && ld > (math.MaxInt-cols)/(rows-1) {
		return -1
	}
	return (rows-1)*ld + cols
}

// Validate checks the arguments of a rows×cols transpose from src (row stride
// lda) into dst (row stride ldb). An empty matrix (rows or cols zero) is
// always valid. Every returned error wraps ErrInvalidArgument.
//
// The unchecked strategies assume these conditions hold; Checked and
// TransposeMatrix call Validate first and leave dst untouched on error.
func Validate[T hwy.Lanes](src, dst []T, rows, cols, lda, ldb int) error {
	if rows < 0 || cols < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative dimensions %dx%d", rows, cols)
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	if lda < cols {
		return errors.Wrapf(ErrInvalidArgument, "source stride %d smaller than %d columns", lda, cols)
	}
	if ldb < rows {
		return errors.Wrapf(ErrInvalidArgument, "destination stride %d smaller than %d rows", ldb, rows)
	}

	srcLen := RequiredLen(rows, cols, lda)
	if srcLen < 0 || len(src) < srcLen {
		return errors.Wrapf(ErrInvalidArgument, "source has %d elements, need %d", len(src), srcLen)
	}
	dstLen := RequiredLen(cols, rows, ldb)
	if dstLen < 0 || len(dst) < dstLen {
		return errors.Wrapf(ErrInvalidArgument, "destination has %d elements, need %d", len(dst), dstLen)
	}
	if overlaps(src[:srcLen], dst[:dstLen]) {
		return errors.Wrap(ErrInvalidArgument, "source and destination overlap")
	}
	return nil
}

// overlaps reports whether the address ranges spanned by a and b intersect.
// Interleaved views of one buffer count as overlapping even if no element is
// shared.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero T
	size := uintptr(unsafe.Sizeof(zero))
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}
