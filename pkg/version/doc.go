// Package version provides version information for the application.
//
// The version identifier is a three-part numeric string of the form
// "<major>.<minor>.<patch>". Release builds may override it, along with the
// build metadata, using:
//
//	-ldflags "-X github.com/macropower/myproject/pkg/version.Version=1.2.3"
package version
