package app

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags "-X github.com/y0ngdev/the-bridge/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion returns the version reported in startup logs and /health.
// Without ldflags the VCS revision recorded by the Go toolchain is used.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				switch {
				case s.Key == "vcs.revision" && commit == "":
					commit = s.Value
				case s.Key == "vcs.time" && built == "":
					built = s.Value
				}
			}
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}
