package taskhive

import (
	"fmt"
	"runtime"
)

// Version information
const (
	Version    = "0.3.0"
	APIVersion = "v1"
)

// Build metadata, injected via -ldflags by the release build
var (
	GitCommit = ""
	BuildDate = ""
)

// FullVersionInfo returns detailed version information
func FullVersionInfo() string {
	info := fmt.Sprintf("Taskhive %s\n", Version)
	info += fmt.Sprintf("API Version: %s\n", APIVersion)
	info += fmt.Sprintf("Go Version: %s\n", runtime.Version())

	if GitCommit != "" {
		info += fmt.Sprintf("Git Commit: %s\n", GitCommit)
	}

	if BuildDate != "" {
		info += fmt.Sprintf("Build Date: %s\n", BuildDate)
	}

	return info
}
