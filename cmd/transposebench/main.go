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

// Command transposebench times the transpose strategies on a random matrix
// and checks every result against the naive transpose.
//
// Usage:
//
//	transposebench -rows 4096 -cols 4096 -iter 10
//	transposebench -rows 8 -cols 100000 -iter 50 -strategies blocked,adaptive
//	transposebench -dtype float16 -auto_cache -workers 8 -progress
//	transposebench -info
//
// Missing -rows, -cols or -iter values are read from stdin. The exit status is
// 1 if any strategy disagrees with naive.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hwykernels/transpose/hwy/contrib/transpose"
	"k8s.io/klog/v2"
)

var (
	flagRows       = flag.Int("rows", 0, "Number of source rows (prompted for if 0)")
	flagCols       = flag.Int("cols", 0, "Number of source columns (prompted for if 0)")
	flagIter       = flag.Int("iter", 0, "Iterations per strategy (prompted for if 0)")
	flagStrategies = flag.String("strategies", "blocked,oblivious,adaptive",
		"Comma-separated strategies to time against naive ("+strategyList()+")")
	flagDType     = flag.String("dtype", "float32", "Element type: float32, float64, float16 or int32")
	flagBlock     = flag.Int("block", transpose.DefaultBlockSize, "Block size of the blocked strategy")
	flagThreshold = flag.Int("threshold", transpose.DefaultThreshold, "Recursion threshold of the oblivious strategies")
	flagSkew      = flag.Int("skew", transpose.DefaultSkewBound, "Skew bound of the adaptive strategy")
	flagAutoCache = flag.Bool("auto_cache", false, "Derive -block from the detected L1 data cache")
	flagWorkers   = flag.Int("workers", 0, "Also time the parallel driver with this many workers (0 disables, <0 uses GOMAXPROCS)")
	flagProgress  = flag.Bool("progress", false, "Show a progress bar while timing")
	flagInfo      = flag.Bool("info", false, "Print the dispatch level and cache geometry and exit")
	flagSeed      = flag.Uint64("seed", 42, "Random seed for the source matrix")
)

func strategyList() string {
	var names []string
	for _, s := range transpose.Strategies() {
		names = append(names, s.String())
	}
	return strings.Join(names, ",")
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagInfo {
		fmt.Println(renderInfo())
		return
	}

	cfg, err := configFromFlags(os.Stdin, os.Stdout)
	if err != nil {
		klog.Exitf("transposebench: %v", err)
	}
	report, err := run(cfg)
	if err != nil {
		klog.Exitf("transposebench: %v", err)
	}
	fmt.Println(report.Render())
	if report.Mismatch() {
		os.Exit(1)
	}
}
