//go:build !windows

package msbuild

import (
	"github.com/ternarybob/arbor"
)

// BuildEnvironment returns nil on non-Windows hosts: the child process
// inherits the parent environment unchanged. Registry-based environment
// reconstruction only applies to the Windows toolchain.
func BuildEnvironment(_ arbor.ILogger) []string {
	return nil
}
