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
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hwykernels/transpose/hwy/contrib/transpose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setFlags overrides flag values for one test.
func setFlags(t *testing.T, rows, cols, iter int, strategies, dtype string) {
	t.Helper()
	saved := []any{*flagRows, *flagCols, *flagIter, *flagStrategies, *flagDType}
	*flagRows, *flagCols, *flagIter, *flagStrategies, *flagDType = rows, cols, iter, strategies, dtype
	t.Cleanup(func() {
		*flagRows = saved[0].(int)
		*flagCols = saved[1].(int)
		*flagIter = saved[2].(int)
		*flagStrategies = saved[3].(string)
		*flagDType = saved[4].(string)
	})
}

func TestConfigFromFlagsPrompts(t *testing.T) {
	setFlags(t, 0, 7, 0, "blocked,adaptive", "float64")

	var out bytes.Buffer
	cfg, err := configFromFlags(strings.NewReader("5\n3\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "Rows: Iter: ", out.String())
	assert.Equal(t, 5, cfg.Rows)
	assert.Equal(t, 7, cfg.Cols)
	assert.Equal(t, 3, cfg.Iter)
	assert.Equal(t, []transpose.Strategy{transpose.StrategyBlocked, transpose.StrategyAdaptive}, cfg.Strategies)
	assert.Equal(t, "float64", cfg.DType)
}

func TestConfigFromFlagsErrors(t *testing.T) {
	setFlags(t, 0, 0, 0, "blocked", "float32")
	_, err := configFromFlags(strings.NewReader("abc"), &bytes.Buffer{})
	assert.Error(t, err)

	setFlags(t, 4, 4, 1, "sideways", "float32")
	_, err = configFromFlags(strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, transpose.ErrInvalidArgument)

	setFlags(t, 4, 4, 1, "blocked", "complex128")
	_, err = configFromFlags(strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "dtype")
}

func TestParseStrategies(t *testing.T) {
	got, err := parseStrategies("naive, Oblivious,,blocked")
	require.NoError(t, err)
	assert.Equal(t, []transpose.Strategy{transpose.StrategyOblivious, transpose.StrategyBlocked}, got)

	got, err = parseStrategies("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRun(t *testing.T) {
	for _, dtype := range dtypes {
		t.Run(dtype, func(t *testing.T) {
			cfg := benchConfig{
				Rows: 37, Cols: 301, Iter: 2, DType: dtype, Seed: 1, Workers: 2,
				Strategies: []transpose.Strategy{
					transpose.StrategyBlocked, transpose.StrategyOblivious, transpose.StrategyAdaptive,
				},
				Options: []transpose.Option{transpose.WithBlockSize(16)},
			}
			report, err := run(cfg)
			require.NoError(t, err)
			require.Len(t, report.Results, 5)
			assert.False(t, report.Mismatch())

			names := []string{"naive", "blocked", "oblivious", "adaptive", "parallel"}
			for i, res := range report.Results {
				assert.Equal(t, names[i], res.Name)
				assert.Equal(t, int64(37*301*dtypeSize(dtype)*2), res.Bytes)
			}

			text := report.Render()
			for _, name := range names {
				assert.Contains(t, text, name)
			}
			assert.NotContains(t, text, "MISMATCH")
		})
	}

	_, err := run(benchConfig{Rows: 1, Cols: 1, Iter: 1, DType: "int8"})
	assert.Error(t, err)

	_, err = run(benchConfig{Rows: 1, Cols: 1, Iter: 1, DType: "float32",
		Options: []transpose.Option{transpose.WithThreshold(2)}})
	assert.ErrorIs(t, err, transpose.ErrInvalidArgument)
}

func TestReportMismatch(t *testing.T) {
	r := &Report{Rows: 2, Cols: 2, DType: "float32", Config: transpose.DefaultConfig(), Results: []result{
		{Name: "naive", Total: time.Millisecond, Iter: 1, Bytes: 32, Matches: true},
		{Name: "blocked", Total: time.Microsecond, Iter: 1, Bytes: 32, Matches: false},
	}}
	assert.True(t, r.Mismatch())
	assert.Contains(t, r.Render(), "MISMATCH")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ns", formatDuration(500*time.Nanosecond))
	assert.Equal(t, "1.5µs", formatDuration(1500*time.Nanosecond))
	assert.Equal(t, "12.3ms", formatDuration(12345*time.Microsecond))
	assert.Equal(t, "2s", formatDuration(2*time.Second))
}

func TestRenderInfo(t *testing.T) {
	info := renderInfo()
	assert.Contains(t, info, "Dispatch level")
	assert.Contains(t, info, "L1 data cache")
}
