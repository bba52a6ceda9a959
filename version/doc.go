// Package version reports the hofkit build.
//
// Version, git commit, branch and build time are set at compile time via
// -ldflags; anything left empty is filled from the module build info:
//
//	go build -ldflags "-X github.com/kbukum/hofkit/version.Version=1.2.0" ./cmd/hofkit
package version
