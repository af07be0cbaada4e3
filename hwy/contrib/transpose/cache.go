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
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// CacheParams describes the level-1 data cache that drives ConfigForCache.
type CacheParams struct {
	L1DataBytes int // L1 data cache size in bytes
	LineBytes   int // Cache line size in bytes
}

// CacheParamsFallback returns the geometry assumed when detection fails:
// 32KiB L1d with 64-byte lines, typical for x86-64 and Cortex-A cores.
func CacheParamsFallback() CacheParams {
	return CacheParams{
		L1DataBytes: 32 << 10,
		LineBytes:   64,
	}
}

var (
	detectOnce   sync.Once
	detectResult CacheParams
)

// DetectCacheParams returns the L1 data cache geometry of the host, or
// CacheParamsFallback for any value the platform doesn't report. The result
// is computed once and cached.
func DetectCacheParams() CacheParams {
	detectOnce.Do(func() {
		detectResult = detectCacheParams()
	})
	return detectResult
}

// parseCacheSize parses sizes as reported by the OS, e.g. "32K", "1M",
// "48KiB" or a plain byte count.
func parseCacheSize(s string) (int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "iB")
	s = strings.TrimSuffix(s, "B")
	if s == "" {
		return 0, errors.New("empty cache size")
	}

	mult := 1
	switch s[len(s)-1] {
	case 'K', 'k':
		mult = 1 << 10
	case 'M', 'm':
		mult = 1 << 20
	case 'G', 'g':
		mult = 1 << 30
	}
	if mult != 1 {
		s = s[:len(s)-1]
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid cache size %q", s)
	}
	if n <= 0 {
		return 0, errors.Errorf("invalid cache size %d", n)
	}
	return n * mult, nil
}
