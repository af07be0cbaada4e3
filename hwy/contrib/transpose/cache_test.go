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

func TestParseCacheSize(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"32K", 32 << 10},
		{"48K\n", 48 << 10},
		{"1M", 1 << 20},
		{"64KiB", 64 << 10},
		{"512KB", 512 << 10},
		{"1G", 1 << 30},
		{"65536", 65536},
	}
	for _, tt := range tests {
		got, err := parseCacheSize(tt.in)
		require.NoErrorf(t, err, "parseCacheSize(%q)", tt.in)
		assert.Equalf(t, tt.want, got, "parseCacheSize(%q)", tt.in)
	}

	for _, bad := range []string{"", "K", "abc", "-4K", "0"} {
		_, err := parseCacheSize(bad)
		assert.Errorf(t, err, "parseCacheSize(%q) should fail", bad)
	}
}

func TestDetectCacheParams(t *testing.T) {
	p := DetectCacheParams()
	t.Logf("L1d: %d bytes, line: %d bytes", p.L1DataBytes, p.LineBytes)
	assert.Positive(t, p.L1DataBytes)
	assert.Positive(t, p.LineBytes)
	assert.Equal(t, p, DetectCacheParams())
}
