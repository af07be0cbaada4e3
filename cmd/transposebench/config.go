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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hwykernels/transpose/hwy/contrib/transpose"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// benchConfig is everything a run needs, resolved from flags and prompts.
type benchConfig struct {
	Rows, Cols, Iter int
	Strategies       []transpose.Strategy
	DType            string
	Options          []transpose.Option
	Workers          int
	Progress         bool
	Seed             uint64
}

var dtypes = []string{"float32", "float64", "float16", "int32"}

// configFromFlags builds the run configuration from the parsed flags,
// prompting on out and reading from in for any missing dimension.
func configFromFlags(in io.Reader, out io.Writer) (benchConfig, error) {
	cfg := benchConfig{
		Rows:     *flagRows,
		Cols:     *flagCols,
		Iter:     *flagIter,
		DType:    strings.ToLower(*flagDType),
		Workers:  *flagWorkers,
		Progress: *flagProgress,
		Seed:     *flagSeed,
	}

	reader := bufio.NewReader(in)
	for _, p := range []struct {
		prompt string
		value  *int
	}{
		{"Rows: ", &cfg.Rows},
		{"Columns: ", &cfg.Cols},
		{"Iter: ", &cfg.Iter},
	} {
		if *p.value > 0 {
			continue
		}
		n, err := promptInt(reader, out, p.prompt)
		if err != nil {
			return cfg, err
		}
		*p.value = n
	}
	if cfg.Rows < 0 || cfg.Cols < 0 || cfg.Iter <= 0 {
		return cfg, errors.Errorf("invalid run %dx%d with %d iterations", cfg.Rows, cfg.Cols, cfg.Iter)
	}

	var err error
	if cfg.Strategies, err = parseStrategies(*flagStrategies); err != nil {
		return cfg, err
	}
	if !isKnownDType(cfg.DType) {
		return cfg, errors.Errorf("unknown -dtype %q, valid values are %s", cfg.DType, strings.Join(dtypes, ", "))
	}

	cfg.Options = []transpose.Option{
		transpose.WithThreshold(*flagThreshold),
		transpose.WithSkewBound(*flagSkew),
	}
	if *flagAutoCache {
		params := transpose.DetectCacheParams()
		klog.V(1).Infof("L1 data cache: %d bytes, %d-byte lines", params.L1DataBytes, params.LineBytes)
		cfg.Options = append(cfg.Options, transpose.WithCacheParams(params))
	} else {
		cfg.Options = append(cfg.Options, transpose.WithBlockSize(*flagBlock))
	}
	return cfg, nil
}

func promptInt(r *bufio.Reader, out io.Writer, prompt string) (int, error) {
	fmt.Fprint(out, prompt)
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return 0, errors.Wrapf(err, "reading %q", strings.TrimSuffix(prompt, ": "))
	}
	return n, nil
}

// parseStrategies parses a comma-separated list. Naive is always timed first
// as the reference, so it is dropped from the list if given.
func parseStrategies(list string) ([]transpose.Strategy, error) {
	var strategies []transpose.Strategy
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, err := transpose.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if s != transpose.StrategyNaive {
			strategies = append(strategies, s)
		}
	}
	return strategies, nil
}

func isKnownDType(dtype string) bool {
	for _, d := range dtypes {
		if d == dtype {
			return true
		}
	}
	return false
}
