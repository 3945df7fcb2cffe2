// File: version.go
// Title: Build Version Information
// Description: Version, commit and build date of the tackle binaries.
//              The variables are stamped at link time with
//              -ldflags "-X github.com/hrimthurs/Tackle/core/version.Version=...".
// Author: hrimthurs
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package version

import (
	"fmt"
	"runtime"
)

// Build information, overridden at link time
var (
	Version   = "0.2.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version" toml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit" toml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date" toml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version" toml:"go_version"`
	Platform  string `json:"platform" yaml:"platform" toml:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns the one-line form, e.g. "tackle v0.2.0 (development)"
func (i Info) String() string {
	return fmt.Sprintf("tackle v%s (%s)", i.Version, i.GitCommit)
}
