// Package buildinfo exposes version metadata injected at build time.
package buildinfo

// Set via -ldflags at release build time; the zero values identify a
// development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
