package models

import (
	"testing"
)

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		input   string
		want    Verbosity
		wantErr bool
	}{
		{"quiet", VerbosityQuiet, false},
		{"minimal", VerbosityMinimal, false},
		{"normal", VerbosityNormal, false},
		{"detailed", VerbosityDetailed, false},
		{"diagnostic", VerbosityDiagnostic, false},
		{"", "", true},
		{"loud", "", true},
		{"Minimal", "", true}, // passed through to MSBuild unchanged, so exact match only
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVerbosity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVerbosity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseVerbosity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    BuildOptions
		wantErr bool
	}{
		{
			name: "valid options",
			opts: BuildOptions{
				Configuration: "Release",
				Platform:      "x64",
				Verbosity:     VerbosityMinimal,
				MaxCPUCount:   4,
			},
			wantErr: false,
		},
		{
			name: "empty configuration and platform allowed",
			opts: BuildOptions{
				Verbosity: VerbosityNormal,
			},
			wantErr: false,
		},
		{
			name:    "missing verbosity",
			opts:    BuildOptions{Configuration: "Debug"},
			wantErr: true,
		},
		{
			name: "unknown verbosity",
			opts: BuildOptions{
				Verbosity: "shouty",
			},
			wantErr: true,
		},
		{
			name: "negative cpu count",
			opts: BuildOptions{
				Verbosity:   VerbosityMinimal,
				MaxCPUCount: -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
