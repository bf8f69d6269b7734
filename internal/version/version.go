// Package version holds the application version, overridable at build time:
//
//	go build -ldflags "-X github.com/ledgerly/ledgerly-backend/internal/version.Version=v1.2.0"
package version

// Version is the application version string.
var Version = "dev"
