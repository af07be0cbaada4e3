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
	"github.com/pkg/errors"
)

// Matrix is a row-major view over a backing slice: element (i, j) lives at
// Data[i*Stride+j].
type Matrix[T hwy.Lanes] struct {
	Data   []T
	Rows   int
	Cols   int
	Stride int
}

// NewMatrix allocates a zeroed, densely packed rows×cols matrix.
func NewMatrix[T hwy.Lanes](rows, cols int) Matrix[T] {
	rows, cols = max(rows, 0), max(cols, 0)
	return Matrix[T]{
		Data:   make([]T, rows*cols),
		Rows:   rows,
		Cols:   cols,
		Stride: max(cols, 1),
	}
}

// View wraps data as a rows×cols matrix with the given row stride.
func View[T hwy.Lanes](data []T, rows, cols, stride int) (Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return Matrix[T]{}, errors.Wrapf(ErrInvalidArgument, "negative dimensions %dx%d", rows, cols)
	}
	if rows > 0 && cols > 0 {
		if stride < cols {
			return Matrix[T]{}, errors.Wrapf(ErrInvalidArgument, "stride %d smaller than %d columns", stride, cols)
		}
		if need := RequiredLen(rows, cols, stride); need < 0 || len(data) < need {
			return Matrix[T]{}, errors.Wrapf(ErrInvalidArgument, "data has %d elements, need %d", len(data), need)
		}
	}
	return Matrix[T]{Data: data, Rows: rows, Cols: cols, Stride: stride}, nil
}

// At returns element (i, j).
func (m Matrix[T]) At(i, j int) T {
	return m.Data[i*m.Stride+j]
}

// Set sets element (i, j).
func (m Matrix[T]) Set(i, j int, v T) {
	m.Data[i*m.Stride+j] = v
}

// Sub returns the rows×cols sub-matrix whose top-left element is (row, col)
// of m. It shares m's backing slice and stride; Data is trimmed to the
// elements the sub-matrix spans, so that disjoint sub-matrices of one buffer
// can be transposed into each other.
func (m Matrix[T]) Sub(row, col, rows, cols int) (Matrix[T], error) {
	if row < 0 || col < 0 || rows < 0 || cols < 0 || row+rows > m.Rows || col+cols > m.Cols {
		return Matrix[T]{}, errors.Wrapf(ErrInvalidArgument,
			"sub-matrix (%d,%d)+%dx%d out of %dx%d", row, col, rows, cols, m.Rows, m.Cols)
	}
	if rows == 0 || cols == 0 {
		return Matrix[T]{Rows: rows, Cols: cols, Stride: m.Stride}, nil
	}
	start := row*m.Stride + col
	return Matrix[T]{
		Data:   m.Data[start : start+RequiredLen(rows, cols, m.Stride)],
		Rows:   rows,
		Cols:   cols,
		Stride: m.Stride,
	}, nil
}

// TransposeMatrix writes the transpose of src into dst with strategy s, after
// checking that dst is src.Cols×src.Rows and that the arguments pass Validate.
// dst is left untouched on error.
func TransposeMatrix[T hwy.Lanes](s Strategy, src, dst Matrix[T]) error {
	if dst.Rows != src.Cols || dst.Cols != src.Rows {
		return errors.Wrapf(ErrInvalidArgument, "destination is %dx%d, want %dx%d",
			dst.Rows, dst.Cols, src.Cols, src.Rows)
	}
	return defaultTransposer[T]().Checked(s, src.Data, dst.Data, src.Rows, src.Cols, src.Stride, dst.Stride)
}
