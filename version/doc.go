// Package version reports the build version of streamkit binaries.
//
// Version, Commit and BuildTime are set at compile time via -ldflags; when
// they are not, Get falls back to the VCS settings the Go toolchain embeds:
//
//	go build -ldflags "-X github.com/kbukum/streamkit/version.Version=1.0.0"
package version
