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

import "github.com/pkg/errors"

// Default tuning. DefaultBlockSize keeps a source block and its destination
// block (2·128²·4 bytes = 128KiB for float32) within a typical L2, and
// DefaultThreshold leaves recursion leaves of 16×16 that fit in a few cache
// lines.
const (
	DefaultBlockSize = 128
	DefaultThreshold = 16
	DefaultSkewBound = 8

	// MinThreshold is the smallest recursion threshold accepted by
	// Config.Validate. The recursion halves to multiples of TileSize, so any
	// side above MinThreshold always yields two non-empty halves.
	MinThreshold = 2 * TileSize

	minCacheBlock = 16
	maxCacheBlock = 512
)

// Config holds the tuning parameters of a Transposer.
type Config struct {
	// BlockSize is the side of the blocks used by the blocked strategy.
	// Must be at least TileSize; multiples of TileSize avoid partial tiles
	// inside the matrix.
	BlockSize int

	// Threshold is the largest side (in both dimensions) of a sub-matrix that
	// the oblivious strategies transpose directly instead of splitting.
	Threshold int

	// SkewBound is the narrow side at or below which ObliviousAdaptive splits
	// only the long axis. Zero disables the skew branches.
	SkewBound int
}

// DefaultConfig returns the default tuning.
func DefaultConfig() Config {
	return Config{
		BlockSize: DefaultBlockSize,
		Threshold: DefaultThreshold,
		SkewBound: DefaultSkewBound,
	}
}

// Validate reports whether the configuration guarantees termination of every
// strategy. The returned error wraps ErrInvalidArgument.
func (c Config) Validate() error {
	if c.BlockSize < TileSize {
		return errors.Wrapf(ErrInvalidArgument, "block size %d must be at least %d", c.BlockSize, TileSize)
	}
	if c.Threshold < MinThreshold {
		return errors.Wrapf(ErrInvalidArgument, "threshold %d must be at least %d", c.Threshold, MinThreshold)
	}
	if c.SkewBound < 0 || c.SkewBound > c.Threshold {
		return errors.Wrapf(ErrInvalidArgument, "skew bound %d must be in [0, threshold=%d]", c.SkewBound, c.Threshold)
	}
	return nil
}

// ConfigForCache derives a configuration from the cache geometry: BlockSize
// is the largest multiple of TileSize such that a source and a destination
// block of elemSize-byte elements fit together in L1, clamped to [16, 512].
// Threshold and SkewBound keep their defaults.
func ConfigForCache(params CacheParams, elemSize int) Config {
	cfg := DefaultConfig()
	if elemSize <= 0 || params.L1DataBytes <= 0 {
		return cfg
	}

	block := maxCacheBlock
	for block > minCacheBlock && 2*block*block*elemSize > params.L1DataBytes {
		block -= TileSize
	}
	cfg.BlockSize = block
	return cfg
}

// Option modifies the configuration used by New.
type Option func(*settings)

type settings struct {
	cfg        Config
	cache      *CacheParams
	blockGiven bool
}

// WithBlockSize sets Config.BlockSize. It takes precedence over
// WithCacheParams.
func WithBlockSize(n int) Option {
	return func(s *settings) {
		s.cfg.BlockSize = n
		s.blockGiven = true
	}
}

// WithThreshold sets Config.Threshold.
func WithThreshold(n int) Option {
	return func(s *settings) { s.cfg.Threshold = n }
}

// WithSkewBound sets Config.SkewBound.
func WithSkewBound(n int) Option {
	return func(s *settings) { s.cfg.SkewBound = n }
}

// WithCacheParams derives BlockSize from the given cache geometry with
// ConfigForCache, unless WithBlockSize is also given.
func WithCacheParams(params CacheParams) Option {
	return func(s *settings) { s.cache = &params }
}
