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
	"unsafe"

	"github.com/hwykernels/transpose/hwy"
)

// Transposer runs the transpose strategies for element type T with its own
// validated Config and a tile kernel resolved once at construction.
//
// A Transposer holds no mutable state and may be shared by goroutines working
// on disjoint buffers.
type Transposer[T hwy.Lanes] struct {
	cfg    Config
	kernel Kernel[T]
}

// New returns a Transposer configured by opts on top of DefaultConfig. An
// invalid resulting configuration is reported as an error wrapping
// ErrInvalidArgument.
func New[T hwy.Lanes](opts ...Option) (*Transposer[T], error) {
	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.cache != nil && !s.blockGiven {
		var zero T
		s.cfg.BlockSize = ConfigForCache(*s.cache, int(unsafe.Sizeof(zero))).BlockSize
	}
	return NewWithConfig[T](s.cfg)
}

// NewWithConfig returns a Transposer using cfg as is.
func NewWithConfig[T hwy.Lanes](cfg Config) (*Transposer[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Transposer[T]{cfg: cfg, kernel: KernelFor[T]()}, nil
}

func defaultTransposer[T hwy.Lanes]() *Transposer[T] {
	return &Transposer[T]{cfg: DefaultConfig(), kernel: KernelFor[T]()}
}

// Config returns the configuration in use.
func (t *Transposer[T]) Config() Config {
	return t.cfg
}

// Naive is the package-level Naive; it is provided so every strategy can be
// reached through a Transposer.
func (t *Transposer[T]) Naive(src, dst []T, rows, cols, lda, ldb int) {
	Naive(src, dst, rows, cols, lda, ldb)
}

// Tiled transposes with 4x4 tiles and no outer blocking.
func (t *Transposer[T]) Tiled(src, dst []T, rows, cols, lda, ldb int) {
	tiled(t.kernel, src, dst, rows, cols, lda, ldb)
}

// Blocked transposes with blocks of Config().BlockSize.
func (t *Transposer[T]) Blocked(src, dst []T, rows, cols, lda, ldb int) {
	blocked(t.kernel, t.cfg.BlockSize, src, dst, rows, cols, lda, ldb)
}

// Oblivious runs the symmetric recursion with Config().Threshold.
func (t *Transposer[T]) Oblivious(src, dst []T, rows, cols, lda, ldb int) {
	r := recursion[T]{src: src, dst: dst, lda: lda, ldb: ldb, threshold: t.cfg.Threshold}
	r.symmetric(region{rows: rows, cols: cols})
}

// ObliviousAdaptive runs the skew-aware recursion with Config().Threshold and
// Config().SkewBound.
func (t *Transposer[T]) ObliviousAdaptive(src, dst []T, rows, cols, lda, ldb int) {
	r := recursion[T]{
		src: src, dst: dst, lda: lda, ldb: ldb,
		threshold: t.cfg.Threshold, skewBound: t.cfg.SkewBound,
		kernel: t.kernel,
	}
	r.adaptive(region{rows: rows, cols: cols})
}

// Transpose runs strategy s without validating its arguments. An unknown
// strategy falls back to naive.
func (t *Transposer[T]) Transpose(s Strategy, src, dst []T, rows, cols, lda, ldb int) {
	switch s {
	case StrategyBlocked:
		t.Blocked(src, dst, rows, cols, lda, ldb)
	case StrategyOblivious:
		t.Oblivious(src, dst, rows, cols, lda, ldb)
	case StrategyAdaptive:
		t.ObliviousAdaptive(src, dst, rows, cols, lda, ldb)
	default:
		t.Naive(src, dst, rows, cols, lda, ldb)
	}
}

// Checked validates the arguments with Validate and then runs strategy s.
// Nothing is written to dst if an error is returned.
func (t *Transposer[T]) Checked(s Strategy, src, dst []T, rows, cols, lda, ldb int) error {
	if err := Validate(src, dst, rows, cols, lda, ldb); err != nil {
		return err
	}
	t.Transpose(s, src, dst, rows, cols, lda, ldb)
	return nil
}
