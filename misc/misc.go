// Package misc provides program identification helpers shared between
// the CLI and logging setup.
package misc

import (
	"runtime/debug"
)

const appName = "cssel"

// GetAppName returns the program name used for logger naming and
// auxiliary file names.
func GetAppName() string {
	return appName
}

// GetVersion returns the module version recorded in build info.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns the VCS revision recorded in build info.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
