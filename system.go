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

package propres

import (
	"os"
	"os/user"
	"runtime"
)

// SystemProperties returns a snapshot of properties describing the current
// process and platform, using well-known property names:
//
//   - os.name, os.arch
//   - file.separator, path.separator, line.separator
//   - user.dir, user.home, user.name
//   - io.tmpdir
//   - go.version
//
// Properties that cannot be determined are left out.
func SystemProperties() Properties {
	props := Properties{
		"os.name":        runtime.GOOS,
		"os.arch":        runtime.GOARCH,
		"file.separator": string(os.PathSeparator),
		"path.separator": string(os.PathListSeparator),
		"line.separator": "\n",
		"io.tmpdir":      os.TempDir(),
		"go.version":     runtime.Version(),
	}
	if runtime.GOOS == "windows" {
		props["line.separator"] = "\r\n"
	}
	if wd, err := os.Getwd(); err == nil {
		props["user.dir"] = wd
	}
	if home, err := os.UserHomeDir(); err == nil {
		props["user.home"] = home
	}
	if u, err := user.Current(); err == nil {
		props["user.name"] = u.Username
	}
	return props
}
