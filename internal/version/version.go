// Package version carries the build version, overridden with
// -ldflags "-X rnadesign/internal/version.Version=...".
package version

var Version = "dev"
