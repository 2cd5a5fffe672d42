/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package build holds the release metadata of the running binary.
package build

import (
	"fmt"
	"runtime"
)

var (
	// These variables are set at startup from the values the linker
	// injects into package main with -X flags.
	version = "dev"
	commit  = "none"
	date    = "unknown"

	platform = fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
)

// Info stores the build information.
type Info struct {
	GoVersion string
	Version   string
	Commit    string
	Date      string
	Platform  string
}

// Short returns a pretty printed build and version summary.
func (i Info) Short() string {
	return fmt.Sprintf("chain %s (commit %s, built %s, %s, %s)",
		i.Version, i.Commit, i.Date, i.Platform, i.GoVersion)
}

// Set records the release metadata. Empty values are ignored.
func Set(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
}

// GetInfo returns build info.
func GetInfo() Info {
	return Info{
		GoVersion: runtime.Version(),
		Version:   version,
		Commit:    commit,
		Date:      date,
		Platform:  platform,
	}
}
