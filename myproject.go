// Package myproject exposes the version of the project and its greeting.
//
// See [version] and [greeting] for the full APIs.
package myproject

import (
	"github.com/macropower/myproject/pkg/greeting"
	"github.com/macropower/myproject/pkg/version"
)

// Version returns the version identifier, "<major>.<minor>.<patch>".
func Version() string {
	return version.Version
}

// Hello returns a greeting.
func Hello() string {
	return greeting.Hello()
}
