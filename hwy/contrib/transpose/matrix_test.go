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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixViews(t *testing.T) {
	m := NewMatrix[int32](3, 5)
	assert.Equal(t, 5, m.Stride)
	assert.Len(t, m.Data, 15)
	m.Set(2, 4, 7)
	assert.Equal(t, int32(7), m.At(2, 4))
	assert.Equal(t, int32(7), m.Data[14])

	empty := NewMatrix[float32](0, 4)
	assert.Empty(t, empty.Data)

	_, err := View(make([]float32, 10), 2, 6, 6)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = View(make([]float32, 12), 2, 6, 5)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = View[float32](nil, -1, 2, 2)
	require.ErrorIs(t, err, ErrInvalidArgument)
	v, err := View(make([]float32, 11), 2, 3, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, v.Stride)
}

func TestMatrixSub(t *testing.T) {
	m := NewMatrix[int32](4, 6)
	for i := range m.Data {
		m.Data[i] = int32(i)
	}

	sub, err := m.Sub(1, 2, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(1*6+2), sub.At(0, 0))
	assert.Equal(t, int32(2*6+4), sub.At(1, 2))
	assert.Len(t, sub.Data, 6+3)

	_, err = m.Sub(3, 0, 2, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = m.Sub(0, -1, 1, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	none, err := m.Sub(4, 6, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, none.Data)
}

func TestTransposeMatrix(t *testing.T) {
	src := NewMatrix[float64](2, 3)
	copy(src.Data, []float64{1, 2, 3, 4, 5, 6})
	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			dst := NewMatrix[float64](3, 2)
			require.NoError(t, TransposeMatrix(s, src, dst))
			assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, dst.Data)

			wrong := NewMatrix[float64](2, 3)
			require.ErrorIs(t, TransposeMatrix(s, src, wrong), ErrInvalidArgument)
			assert.Equal(t, make([]float64, 6), wrong.Data)
		})
	}
}

func TestTransposeMatrixWithinOneBuffer(t *testing.T) {
	// Two disjoint windows of one 8x8 buffer: the top-left 4x3 block is
	// transposed into the bottom-right 3x4 one.
	m := NewMatrix[int32](8, 8)
	for i := range m.Data {
		m.Data[i] = int32(i)
	}
	src, err := m.Sub(0, 0, 4, 3)
	require.NoError(t, err)
	dst, err := m.Sub(5, 4, 3, 4)
	require.NoError(t, err)
	require.NoError(t, TransposeMatrix(StrategyBlocked, src, dst))
	for i := range 4 {
		for j := range 3 {
			assert.Equal(t, int32(i*8+j), m.At(5+j, 4+i))
		}
	}

	// Overlapping windows are rejected.
	a, _ := m.Sub(0, 0, 4, 4)
	b, _ := m.Sub(2, 2, 4, 4)
	require.ErrorIs(t, TransposeMatrix(StrategyNaive, a, b), ErrInvalidArgument)
}
