package msbuild

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/msbuild-mcp/internal/common"
	"github.com/ternarybob/msbuild-mcp/internal/exec"
	"github.com/ternarybob/msbuild-mcp/internal/interfaces"
	"github.com/ternarybob/msbuild-mcp/internal/models"
)

// Service runs MSBuild builds. One build request maps to one blocking
// child process; concurrent requests spawn independent processes with
// no shared mutable state beyond the locator's cached path and the
// process registry.
type Service struct {
	config   *common.Config
	locator  interfaces.LocatorService
	runner   exec.Runner
	filter   *ErrorFilter
	registry *processRegistry
	logger   arbor.ILogger

	// buildEnv supplies the child process environment; nil result
	// inherits the parent environment. Overridable in tests.
	buildEnv func(arbor.ILogger) []string
}

// NewService creates a new MSBuild build service
func NewService(config *common.Config, locator interfaces.LocatorService, runner exec.Runner, logger arbor.ILogger) (*Service, error) {
	filter, err := NewErrorFilter(config.ErrorFilter.Patterns)
	if err != nil {
		return nil, err
	}

	return &Service{
		config:   config,
		locator:  locator,
		runner:   runner,
		filter:   filter,
		registry: newProcessRegistry(),
		logger:   logger,
		buildEnv: BuildEnvironment,
	}, nil
}

// Build validates the project path, assembles the MSBuild command line
// and blocks until the child process terminates. A build that runs to
// completion always yields a BuildResult, regardless of its exit code.
func (s *Service) Build(ctx context.Context, projectPath string, opts models.BuildOptions) (*models.BuildResult, error) {
	if err := validateProjectPath(projectPath, s.config.MSBuild.ProjectExtensions); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, &models.InvalidInputError{Path: projectPath, Reason: err.Error()}
	}

	toolPath, err := s.locator.Locate(ctx)
	if err != nil {
		return nil, err
	}

	buildID := common.NewBuildID()
	args := AssembleArgs(projectPath, opts, s.config.MSBuild.NodeReuse)

	s.logger.Info().
		Str("build_id", buildID).
		Str("project", projectPath).
		Str("configuration", opts.Configuration).
		Str("platform", opts.Platform).
		Msg("Starting MSBuild")

	started := time.Now()

	result, err := s.runner.Run(ctx, exec.Spec{
		Path: toolPath,
		Args: args,
		Dir:  filepath.Dir(projectPath),
		Env:  s.buildEnv(s.logger),
		OnStart: func(proc *os.Process) {
			s.registry.register(buildID, proc)
		},
	})
	s.registry.remove(buildID)

	if err != nil {
		return nil, &models.LaunchFailedError{Path: toolPath, Err: err}
	}

	success := result.ExitCode == 0
	rawOutput := string(result.Output)

	var errorLines []string
	if !success {
		errorLines = s.filter.FilterErrors(rawOutput)
	}

	duration := time.Since(started)

	s.logger.Info().
		Str("build_id", buildID).
		Bool("success", success).
		Int("exit_code", result.ExitCode).
		Int("error_lines", len(errorLines)).
		Str("duration", duration.String()).
		Msg("MSBuild finished")

	return &models.BuildResult{
		BuildID:     buildID,
		ProjectPath: projectPath,
		Success:     success,
		ExitCode:    result.ExitCode,
		RawOutput:   rawOutput,
		ErrorLines:  errorLines,
		Duration:    duration,
		PID:         result.PID,
	}, nil
}

// Cancel kills the child process of an in-flight build
func (s *Service) Cancel(buildID string) error {
	return s.registry.cancel(buildID)
}

// ActiveBuilds returns the IDs of builds currently running
func (s *Service) ActiveBuilds() []string {
	return s.registry.active()
}
