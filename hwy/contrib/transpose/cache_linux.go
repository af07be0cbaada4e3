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

//go:build linux

package transpose

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"k8s.io/klog/v2"
)

// sysfsCacheRoot is where the kernel publishes cpu0's cache hierarchy. Tests
// point it at a temporary directory.
var sysfsCacheRoot = "/sys/devices/system/cpu/cpu0/cache"

func detectCacheParams() CacheParams {
	params := CacheParamsFallback()

	dirs, err := filepath.Glob(filepath.Join(sysfsCacheRoot, "index*"))
	if err != nil || len(dirs) == 0 {
		klog.V(2).Infof("transpose: no cache info under %s, using fallback %+v", sysfsCacheRoot, params)
		return params
	}

	for _, dir := range dirs {
		if readSysfs(dir, "level") != "1" {
			continue
		}
		if typ := readSysfs(dir, "type"); typ != "Data" && typ != "Unified" {
			continue
		}
		if size, err := parseCacheSize(readSysfs(dir, "size")); err == nil {
			params.L1DataBytes = size
		} else {
			klog.V(2).Infof("transpose: %s: %v", dir, err)
		}
		if line, err := strconv.Atoi(readSysfs(dir, "coherency_line_size")); err == nil && line > 0 {
			params.LineBytes = line
		}
		break
	}
	klog.V(2).Infof("transpose: detected L1d cache %+v", params)
	return params
}

func readSysfs(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
