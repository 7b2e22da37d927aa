package oasmodel

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the VCS revision stamped by the go tool, or "unknown".
func Commit() string {
	if rev := buildSetting("vcs.revision"); rev != "" {
		if len(rev) > 12 {
			rev = rev[:12]
		}
		return rev
	}
	return "unknown"
}

// BuildTime returns the RFC3339 commit time stamped by the go tool, or "unknown".
func BuildTime() string {
	if t := buildSetting("vcs.time"); t != "" {
		return t
	}
	return "unknown"
}

// GoVersion returns the Go version the binary was built with.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent identifies this build in logs and MCP handshakes.
func UserAgent() string {
	return fmt.Sprintf("oasmodel/%s", version)
}

// BuildInfo returns a multi-line summary of the build metadata.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s\n",
		Version(), Commit(), BuildTime(), GoVersion())
}

func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}
