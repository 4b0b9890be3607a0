package interfaces

import (
	"context"

	"github.com/ternarybob/msbuild-mcp/internal/models"
)

// BuildService runs MSBuild against a project or solution file.
type BuildService interface {
	// Build validates projectPath, assembles the MSBuild command line
	// from opts, spawns the build and blocks until it terminates.
	//
	// A build that runs to completion always yields a BuildResult,
	// regardless of exit code. Errors are reserved for the terminal
	// failures: *models.InvalidInputError, *models.ToolNotFoundError
	// and *models.LaunchFailedError.
	Build(ctx context.Context, projectPath string, opts models.BuildOptions) (*models.BuildResult, error)

	// Cancel kills the child process of an in-flight build by its
	// build ID. Cancellation policy belongs to the caller; this only
	// exposes the registered process handle.
	Cancel(buildID string) error

	// ActiveBuilds returns the IDs of builds currently running.
	ActiveBuilds() []string
}
