// Copyright 2026 by Harald Albrecht
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package command

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/exp/slices"
)

func buildInfo(info *debug.BuildInfo, key string) string {
	idx := slices.IndexFunc(info.Settings,
		func(setting debug.BuildSetting) bool {
			return setting.Key == key
		})
	if idx < 0 {
		return ""
	}
	return info.Settings[idx].Value
}

// version returns the VCS commit or module version this binary was built from.
func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	if commit := buildInfo(info, "vcs.revision"); len(commit) >= 8 {
		modified := ""
		if buildInfo(info, "vcs.modified") == "true" {
			modified = " (modified)"
		}
		return fmt.Sprintf("commit %s%s", commit[:8], modified)
	}
	if info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
