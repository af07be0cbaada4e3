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

package main

import (
	"math/rand/v2"
	"slices"
	"time"
	"unsafe"

	"github.com/hwykernels/transpose/hwy"
	"github.com/hwykernels/transpose/hwy/contrib/transpose"
	"github.com/hwykernels/transpose/hwy/contrib/workerpool"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
	"k8s.io/klog/v2"
)

// result is the timing of one strategy.
type result struct {
	Name    string
	Total   time.Duration
	Iter    int
	Bytes   int64 // bytes moved per iteration, read + write
	Matches bool
}

// PerIter returns the mean duration of one transpose.
func (r result) PerIter() time.Duration {
	return r.Total / time.Duration(r.Iter)
}

// BytesPerSecond returns the memory throughput.
func (r result) BytesPerSecond() uint64 {
	if r.Total <= 0 {
		return 0
	}
	return uint64(float64(r.Bytes) * float64(r.Iter) / r.Total.Seconds())
}

// run dispatches on cfg.DType.
func run(cfg benchConfig) (*Report, error) {
	switch cfg.DType {
	case "float32":
		return runBench(cfg, fillNormal[float32])
	case "float64":
		return runBench(cfg, fillNormal[float64])
	case "int32":
		return runBench(cfg, fillNormal[int32])
	case "float16":
		return runBench(cfg, fillHalf)
	}
	return nil, errors.Errorf("unknown dtype %q", cfg.DType)
}

// fillNormal fills data with samples of a normal distribution scaled by 100,
// truncated for integer types.
func fillNormal[T constraints.Integer | constraints.Float](rng *rand.Rand, data []T) {
	for i := range data {
		data[i] = T(rng.NormFloat64() * 100)
	}
}

func fillHalf(rng *rand.Rand, data []float16.Float16) {
	for i := range data {
		data[i] = float16.Fromfloat32(float32(rng.NormFloat64()))
	}
}

// runBench times naive first, then every configured strategy and optionally
// the parallel driver, comparing each output against naive.
func runBench[T hwy.Lanes](cfg benchConfig, fill func(*rand.Rand, []T)) (*Report, error) {
	tr, err := transpose.New[T](cfg.Options...)
	if err != nil {
		return nil, err
	}

	var zero T
	bytes := int64(cfg.Rows) * int64(cfg.Cols) * int64(unsafe.Sizeof(zero)) * 2
	report := &Report{Rows: cfg.Rows, Cols: cfg.Cols, DType: cfg.DType, Config: tr.Config()}

	src := make([]T, cfg.Rows*cfg.Cols)
	fill(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)), src)
	want := make([]T, len(src))

	type timed struct {
		name string
		fn   func(dst []T)
	}
	runs := []timed{{transpose.StrategyNaive.String(), func(dst []T) {
		tr.Naive(src, dst, cfg.Rows, cfg.Cols, cfg.Cols, cfg.Rows)
	}}}
	for _, s := range cfg.Strategies {
		runs = append(runs, timed{s.String(), func(dst []T) {
			tr.Transpose(s, src, dst, cfg.Rows, cfg.Cols, cfg.Cols, cfg.Rows)
		}})
	}
	if cfg.Workers != 0 {
		pool := workerpool.New(max(cfg.Workers, 0))
		defer pool.Close()
		klog.V(1).Infof("parallel driver with %d workers", pool.NumWorkers())
		runs = append(runs, timed{"parallel", func(dst []T) {
			transpose.Parallel(pool, tr, src, dst, cfg.Rows, cfg.Cols, cfg.Cols, cfg.Rows)
		}})
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = newProgressBar(len(runs) * cfg.Iter)
		defer func() { _ = bar.Finish() }()
	}

	for i, r := range runs {
		dst := want
		if i > 0 {
			dst = make([]T, len(src))
		}
		klog.V(1).Infof("timing %s: %d iterations of %dx%d %s", r.name, cfg.Iter, cfg.Rows, cfg.Cols, cfg.DType)
		start := time.Now()
		for range cfg.Iter {
			r.fn(dst)
			if bar != nil {
				_ = bar.Add(1)
			}
		}
		report.Results = append(report.Results, result{
			Name:    r.name,
			Total:   time.Since(start),
			Iter:    cfg.Iter,
			Bytes:   bytes,
			Matches: slices.Equal(dst, want),
		})
	}
	return report, nil
}
