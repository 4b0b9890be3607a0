package msbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/msbuild-mcp/internal/models"
)

// AssembleArgs builds the MSBuild argument list for one invocation.
// The order is fixed for debuggability: project, properties, verbosity,
// parallelism, node reuse, targets, then the caller's passthrough
// tokens verbatim.
func AssembleArgs(projectPath string, opts models.BuildOptions, nodeReuse bool) []string {
	args := []string{projectPath}

	if opts.Configuration != "" {
		args = append(args, "/p:Configuration="+opts.Configuration)
	}
	if opts.Platform != "" {
		args = append(args, "/p:Platform="+opts.Platform)
	}

	args = append(args, "/v:"+string(opts.Verbosity))

	if opts.MaxCPUCount > 0 {
		args = append(args, fmt.Sprintf("/m:%d", opts.MaxCPUCount))
	} else {
		args = append(args, "/m")
	}

	if !nodeReuse {
		args = append(args, "/nodeReuse:false")
	}

	if opts.Restore {
		args = append(args, "/t:Restore;Build")
	} else {
		args = append(args, "/t:Build")
	}

	args = append(args, opts.AdditionalArgs...)

	return args
}

// validateProjectPath checks that the path references an existing file
// with a recognized project or solution extension. Runs before any
// process is spawned.
func validateProjectPath(path string, extensions []string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &models.InvalidInputError{Path: path, Reason: "file does not exist"}
	}
	if info.IsDir() {
		return &models.InvalidInputError{Path: path, Reason: "path is a directory, not a project file"}
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, recognized := range extensions {
		if ext == recognized {
			return nil
		}
	}

	return &models.InvalidInputError{
		Path:   path,
		Reason: fmt.Sprintf("unrecognized extension %q (expected one of %s)", ext, strings.Join(extensions, ", ")),
	}
}
