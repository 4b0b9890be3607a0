package locator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/msbuild-mcp/internal/common"
	"github.com/ternarybob/msbuild-mcp/internal/exec"
	"github.com/ternarybob/msbuild-mcp/internal/models"
)

// msbuildComponent is the VS installer component ID that carries MSBuild.
const msbuildComponent = "Microsoft.Component.MSBuild"

// relativeMSBuildPath is where MSBuild.exe lives inside a VS installation root.
var relativeMSBuildPath = filepath.Join("MSBuild", "Current", "Bin", "MSBuild.exe")

// Service locates the MSBuild executable via vswhere.
// The resolved path is memoized for the process lifetime; the installed
// toolchain does not change during a single run.
type Service struct {
	config *common.Config
	runner exec.Runner
	logger arbor.ILogger

	mu     sync.Mutex
	cached string
}

// NewService creates a new MSBuild locator service
func NewService(config *common.Config, runner exec.Runner, logger arbor.ILogger) *Service {
	return &Service{
		config: config,
		runner: runner,
		logger: logger,
	}
}

// Locate returns the MSBuild executable path. An explicit tool_path in
// the configuration bypasses discovery entirely; otherwise vswhere is
// queried once and the result cached.
func (s *Service) Locate(ctx context.Context) (string, error) {
	if override := s.config.MSBuild.ToolPath; override != "" {
		if _, err := os.Stat(override); err != nil {
			return "", &models.ToolNotFoundError{
				Hint: fmt.Sprintf("configured tool_path %q does not exist", override),
			}
		}
		return override, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != "" {
		return s.cached, nil
	}

	instances, err := s.queryInstances(ctx)
	if err != nil {
		return "", err
	}

	instance := SelectLatest(instances)
	if instance == nil {
		return "", &models.ToolNotFoundError{
			Hint: "no Visual Studio installation with the MSBuild component found; install the Build Tools workload",
		}
	}

	path := filepath.Join(instance.InstallationPath, relativeMSBuildPath)
	if _, err := os.Stat(path); err != nil {
		return "", &models.ToolNotFoundError{
			Hint: fmt.Sprintf("MSBuild.exe not found at expected path %q (instance %s)", path, instance.DisplayName),
		}
	}

	s.logger.Info().
		Str("path", path).
		Str("instance", instance.DisplayName).
		Str("version", instance.InstallationVersion).
		Msg("Resolved MSBuild executable")

	s.cached = path
	return path, nil
}

// Instances lists the Visual Studio installations that include the
// MSBuild component, for diagnostics.
func (s *Service) Instances(ctx context.Context) ([]models.VSInstance, error) {
	return s.queryInstances(ctx)
}

// Reset clears the memoized path so the next Locate runs discovery again
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = ""
}

// queryInstances runs vswhere and decodes its JSON instance list
func (s *Service) queryInstances(ctx context.Context) ([]models.VSInstance, error) {
	vswhere, err := s.vswherePath()
	if err != nil {
		return nil, err
	}

	result, err := s.runner.Run(ctx, exec.Spec{
		Path: vswhere,
		Args: []string{"-products", "*", "-requires", msbuildComponent, "-format", "json", "-utf8"},
	})
	if err != nil {
		return nil, &models.ToolNotFoundError{
			Hint: fmt.Sprintf("vswhere could not be executed: %v", err),
		}
	}
	if result.ExitCode != 0 {
		return nil, &models.ToolNotFoundError{
			Hint: fmt.Sprintf("vswhere exited with code %d: %s", result.ExitCode, strings.TrimSpace(string(result.Output))),
		}
	}

	var instances []models.VSInstance
	if err := json.Unmarshal(result.Output, &instances); err != nil {
		return nil, &models.ToolNotFoundError{
			Hint: fmt.Sprintf("vswhere output could not be parsed: %v", err),
		}
	}

	return instances, nil
}

// vswherePath resolves the vswhere executable. The VS installer puts it
// at a fixed location independent of VS version; a PATH lookup is the
// fallback for non-standard setups.
func (s *Service) vswherePath() (string, error) {
	if override := s.config.MSBuild.VSWherePath; override != "" {
		return override, nil
	}

	if programFiles := os.Getenv("ProgramFiles(x86)"); programFiles != "" {
		path := filepath.Join(programFiles, "Microsoft Visual Studio", "Installer", "vswhere.exe")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := osexec.LookPath("vswhere"); err == nil {
		return path, nil
	}

	return "", &models.ToolNotFoundError{
		Hint: "vswhere.exe not found; install Visual Studio 2017 or later, or set msbuild.vswhere_path",
	}
}
