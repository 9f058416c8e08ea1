// Package buildinfo reports what binary is running.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/vecmap-go/internal/infra/buildinfo.Version=v0.3.0"
//
// When they are left at their defaults, Get falls back to the module
// version and VCS revision recorded by the Go toolchain.
package buildinfo
