// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other bgplan packages to avoid import cycles.

package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the module version, "dev" for local builds. Release builds may
// override it with -ldflags "-X github.com/staranto/bgplan/internal/version.Version=v1.2.3".
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}()

// Long returns the version with the VCS revision and Go version, when known.
func Long() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	return format(Version, revision(info.Settings), info.GoVersion)
}

func revision(settings []debug.BuildSetting) string {
	var rev string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "+dirty"
	}
	return rev
}

func format(v, rev, goVersion string) string {
	s := v
	if rev != "" {
		s += fmt.Sprintf(" (%s)", rev)
	}
	if goVersion != "" {
		s += " " + goVersion
	}
	return s
}
