package version

import (
	"fmt"
	"runtime"
)

// BinaryName is the name of the server binary.
const BinaryName = "acp-mcp-server"

// Build information, overridden at link time with -ldflags "-X ...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	GoVersion = runtime.Version()
	Platform  = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// GetVersionInfo returns a human readable build description.
func GetVersionInfo() string {
	return fmt.Sprintf("%s\n  Version:    %s\n  Git commit: %s\n  Built:      %s\n  Go version: %s\n  Platform:   %s",
		BinaryName, Version, GitCommit, BuildDate, GoVersion, Platform)
}
