// Copyright 2024 OdmKit Authors.
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

// Package version provides build information.
package version

import (
	"runtime"
	"runtime/debug"
	"sync"
)

// Info provides build information.
type Info struct {
	Version    string
	Commit     string
	Dirty      bool
	DebugBuild bool
	GoVersion  string
}

var (
	info     *Info
	infoOnce sync.Once
)

// Get returns build information.
// The returned value must not be modified.
func Get() *Info {
	infoOnce.Do(func() {
		info = &Info{
			Version:   "unknown",
			GoVersion: runtime.Version(),
		}

		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}

		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}

		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Commit = s.Value
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			case "-race":
				if s.Value == "true" {
					info.DebugBuild = true
				}
			}
		}
	})

	return info
}
