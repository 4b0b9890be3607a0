package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Verbosity is an MSBuild output verbosity level, passed through to the
// build tool unchanged.
type Verbosity string

const (
	VerbosityQuiet      Verbosity = "quiet"
	VerbosityMinimal    Verbosity = "minimal"
	VerbosityNormal     Verbosity = "normal"
	VerbosityDetailed   Verbosity = "detailed"
	VerbosityDiagnostic Verbosity = "diagnostic"
)

// ParseVerbosity validates a verbosity string from caller input
func ParseVerbosity(s string) (Verbosity, error) {
	switch v := Verbosity(s); v {
	case VerbosityQuiet, VerbosityMinimal, VerbosityNormal, VerbosityDetailed, VerbosityDiagnostic:
		return v, nil
	default:
		return "", fmt.Errorf("invalid verbosity %q (expected quiet, minimal, normal, detailed or diagnostic)", s)
	}
}

// BuildOptions is the caller-supplied option bundle for one build
// invocation. Immutable once constructed; validated fields are kept
// distinct from the opaque AdditionalArgs passthrough list.
type BuildOptions struct {
	Configuration  string    `json:"configuration"` // e.g. "Debug", "Release"; empty omits /p:Configuration
	Platform       string    `json:"platform"`      // e.g. "x64", "Win32"; empty omits /p:Platform
	Verbosity      Verbosity `json:"verbosity" validate:"required,oneof=quiet minimal normal detailed diagnostic"`
	MaxCPUCount    int       `json:"max_cpu_count" validate:"gte=0"` // 0 lets MSBuild pick (/m), >0 caps parallelism (/m:<n>)
	Restore        bool      `json:"restore"`                        // Run NuGet restore before build (/t:Restore;Build)
	AdditionalArgs []string  `json:"additional_args,omitempty"`      // Appended verbatim after the assembled arguments
}

// Validate checks the option bundle against its constraints
func (o *BuildOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid build options: %w", err)
	}
	return nil
}

// BuildResult is the structured outcome of one build invocation.
// Created once when the child process completes; never mutated after.
//
// Success is derived from ExitCode alone: a compile failure is a normal
// BuildResult with Success=false, not a Go error.
type BuildResult struct {
	BuildID     string        `json:"build_id"`
	ProjectPath string        `json:"project_path"`
	Success     bool          `json:"success"`
	ExitCode    int           `json:"exit_code"`
	RawOutput   string        `json:"raw_output"`
	ErrorLines  []string      `json:"error_lines"`
	Duration    time.Duration `json:"duration"`
	PID         int           `json:"pid"` // Child process ID, exposed for external cancellation
}
