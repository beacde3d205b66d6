// Package buildinfo carries version metadata stamped at link time.
package buildinfo

// Version is overridden via -ldflags "-X boxctl/internal/support/buildinfo.Version=...".
var Version = "dev"
