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
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/hwykernels/transpose/hwy"
	"github.com/hwykernels/transpose/hwy/contrib/transpose"
	"github.com/schollz/progressbar/v3"
)

var (
	normalStyle       = lipgloss.NewStyle().Padding(0, 1)
	rightAlignedStyle = lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 1)
	headerStyle       = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	mismatchStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#d03030")).Bold(true).Padding(0, 1)
	tableBorderColor  = "#705090"
)

// Report holds the timings of one run.
type Report struct {
	Rows, Cols int
	DType      string
	Config     transpose.Config
	Results    []result
}

// Mismatch reports whether any strategy disagreed with naive.
func (r *Report) Mismatch() bool {
	for _, res := range r.Results {
		if !res.Matches {
			return true
		}
	}
	return false
}

// Render formats the report as a title line and a table.
func (r *Report) Render() string {
	var naive time.Duration
	if len(r.Results) > 0 {
		naive = r.Results[0].PerIter()
	}

	table := newTable("Strategy", "Total", "Per iter", "Throughput", "Speedup", "Check")
	for i, res := range r.Results {
		speedup := "-"
		if i > 0 && res.PerIter() > 0 {
			speedup = fmt.Sprintf("%.2fx", float64(naive)/float64(res.PerIter()))
		}
		check := "ok"
		if !res.Matches {
			check = "MISMATCH"
		}
		table.Row(res.Name, formatDuration(res.Total), formatDuration(res.PerIter()),
			humanize.Bytes(res.BytesPerSecond())+"/s", speedup, check)
	}
	table.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == lgtable.HeaderRow:
			return headerStyle
		case col == 5 && row >= 0 && row < len(r.Results) && !r.Results[row].Matches:
			return mismatchStyle
		case col == 0:
			return normalStyle
		}
		return rightAlignedStyle
	})

	title := fmt.Sprintf("%s×%s %s (%s), block=%d threshold=%d skew=%d, kernel: %s",
		humanize.Comma(int64(r.Rows)), humanize.Comma(int64(r.Cols)), r.DType,
		humanize.Bytes(uint64(r.Rows)*uint64(r.Cols)*uint64(dtypeSize(r.DType))),
		r.Config.BlockSize, r.Config.Threshold, r.Config.SkewBound, hwy.CurrentName())
	return title + "\n" + table.String()
}

func newTable(headers ...string) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(tableBorderColor))).
		Headers(headers...)
}

// renderInfo describes the kernels and cache geometry the library will use.
func renderInfo() string {
	params := transpose.DetectCacheParams()
	table := newTable("Property", "Value")
	table.Row("Dispatch level", hwy.CurrentName())
	table.Row("Vector width", humanize.Bytes(uint64(hwy.CurrentWidth())))
	table.Row("HWY_NO_SIMD", fmt.Sprint(hwy.NoSimdEnv()))
	table.Row("L1 data cache", humanize.IBytes(uint64(params.L1DataBytes)))
	table.Row("Cache line", fmt.Sprintf("%d B", params.LineBytes))
	for _, dtype := range dtypes {
		cfg := transpose.ConfigForCache(params, dtypeSize(dtype))
		table.Row("Auto block ("+dtype+")", fmt.Sprint(cfg.BlockSize))
	}
	table.StyleFunc(func(row, col int) lipgloss.Style {
		if row == lgtable.HeaderRow {
			return headerStyle
		}
		if col == 0 {
			return rightAlignedStyle
		}
		return normalStyle
	})
	return table.String()
}

func dtypeSize(dtype string) int {
	switch dtype {
	case "float64":
		return 8
	case "float16":
		return 2
	}
	return 4
}

// formatDuration prints durations with 3 significant digits.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.3gµs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.3gms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.3gs", d.Seconds())
}

func newProgressBar(steps int) *progressbar.ProgressBar {
	return progressbar.NewOptions(steps,
		progressbar.OptionSetDescription("transposing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("transposes"),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish(),
	)
}
