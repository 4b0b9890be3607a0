// Package exec runs external commands with merged output capture.
package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"strings"
)

// Spec describes a command to run.
type Spec struct {
	// Path is the executable path. It is used directly, no PATH lookup
	// is performed when it contains a separator.
	Path string

	// Args are the command arguments, without the executable name.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env is the process environment in KEY=VALUE form. Nil inherits
	// the parent environment.
	Env []string

	// OnStart, when set, is called with the process handle right after
	// the child process started. Callers use it to expose the handle
	// for external cancellation.
	OnStart func(*os.Process)
}

// Result describes the outcome of a completed command.
type Result struct {
	Command  string
	Dir      string
	ExitCode int
	PID      int

	// Output is stdout and stderr merged in the order the child
	// process produced them.
	Output []byte
}

// Runner executes commands. The local implementation spawns real
// processes; tests substitute fakes.
type Runner interface {
	Run(ctx context.Context, spec Spec) (*Result, error)
}

// LocalRunner runs commands as child processes of this process.
type LocalRunner struct{}

// NewLocalRunner returns a Runner that spawns real processes.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{}
}

// Run executes the command described by spec and blocks until it
// terminates. A non-zero exit code is not an error; it is reported in
// the Result. An error is returned only when the process could not be
// started or its output could not be read.
func (r *LocalRunner) Run(ctx context.Context, spec Spec) (*Result, error) {
	cmd := osexec.CommandContext(ctx, spec.Path, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	// Stdin stays nil: the child reads EOF, never the MCP stdio stream.

	outReader, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	if spec.OnStart != nil {
		spec.OnStart(cmd.Process)
	}

	output, readErr := io.ReadAll(outReader)

	waitErr := cmd.Wait()

	if readErr != nil {
		return nil, fmt.Errorf("reading command output failed: %w", readErr)
	}

	exitCode, err := exitCodeFromErr(waitErr)
	if err != nil {
		return nil, err
	}

	return &Result{
		Command:  cmdString(spec),
		Dir:      spec.Dir,
		ExitCode: exitCode,
		PID:      cmd.Process.Pid,
		Output:   output,
	}, nil
}

func cmdString(spec Spec) string {
	if len(spec.Args) == 0 {
		return spec.Path
	}
	return fmt.Sprintf("%s %s", spec.Path, strings.Join(spec.Args, " "))
}

func exitCodeFromErr(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var ee *osexec.ExitError
	if !errors.As(err, &ee) {
		return 0, err
	}

	return ee.ExitCode(), nil
}
