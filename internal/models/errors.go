package models

import "fmt"

// ToolNotFoundError indicates that no compatible MSBuild installation
// could be located. Terminal; carries a remediation hint for the caller.
type ToolNotFoundError struct {
	Hint string
}

func (e *ToolNotFoundError) Error() string {
	if e.Hint == "" {
		return "MSBuild executable not found"
	}
	return fmt.Sprintf("MSBuild executable not found: %s", e.Hint)
}

// InvalidInputError indicates a project path that is missing or has an
// unrecognized extension. Raised before any process is spawned.
type InvalidInputError struct {
	Path   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid project path %q: %s", e.Path, e.Reason)
}

// LaunchFailedError indicates the build process could not be started
// despite a resolved executable path. Distinct from a build that runs
// and exits non-zero, which is a normal BuildResult.
type LaunchFailedError struct {
	Path string
	Err  error
}

func (e *LaunchFailedError) Error() string {
	return fmt.Sprintf("failed to launch %q: %v", e.Path, e.Err)
}

func (e *LaunchFailedError) Unwrap() error {
	return e.Err
}
