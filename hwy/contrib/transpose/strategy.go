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
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects one of the interchangeable transpose algorithms.
type Strategy int

const (
	// StrategyNaive is the element-by-element double loop.
	StrategyNaive Strategy = iota
	// StrategyBlocked is cache-aware loop blocking over 4x4 tiles.
	StrategyBlocked
	// StrategyOblivious is the symmetric cache-oblivious recursion.
	StrategyOblivious
	// StrategyAdaptive is the skew-aware cache-oblivious recursion.
	StrategyAdaptive
)

var strategyNames = [...]string{
	StrategyNaive:     "naive",
	StrategyBlocked:   "blocked",
	StrategyOblivious: "oblivious",
	StrategyAdaptive:  "adaptive",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}
	return strategyNames[s]
}

// Strategies returns all strategies, naive first.
func Strategies() []Strategy {
	return []Strategy{StrategyNaive, StrategyBlocked, StrategyOblivious, StrategyAdaptive}
}

// ParseStrategy returns the strategy with the given name, case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown strategy %q (valid: naive, blocked, oblivious, adaptive)", name)
}
