package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string            `toml:"environment"` // "development" or "production"
	MSBuild     MSBuildConfig     `toml:"msbuild"`
	ErrorFilter ErrorFilterConfig `toml:"error_filter"`
	Logging     LoggingConfig     `toml:"logging"`
}

// MSBuildConfig contains toolchain discovery and build defaults
type MSBuildConfig struct {
	ToolPath             string   `toml:"tool_path"`             // Explicit MSBuild.exe path, bypasses vswhere discovery
	VSWherePath          string   `toml:"vswhere_path"`          // Explicit vswhere.exe path (default: VS installer directory)
	DefaultConfiguration string   `toml:"default_configuration"` // Configuration when the caller omits one (default: "Debug")
	DefaultPlatform      string   `toml:"default_platform"`      // Platform when the caller omits one (default: "x64")
	DefaultVerbosity     string   `toml:"default_verbosity"`     // quiet, minimal, normal, detailed, diagnostic (default: "minimal")
	NodeReuse            bool     `toml:"node_reuse"`            // Keep MSBuild worker nodes alive between builds (default: false)
	ProjectExtensions    []string `toml:"project_extensions"`    // Recognized project/solution file extensions
	OutputTailLines      int      `toml:"output_tail_lines"`     // Raw output lines included in tool responses (default: 100)
}

// ErrorFilterConfig contains the failure-signal pattern allow-list.
// Patterns are regular expressions matched per output line; the set is
// configuration data so new tool families can be added without code changes.
type ErrorFilterConfig struct {
	Patterns []string `toml:"patterns"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings should be exposed in msbuild-mcp.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		MSBuild: MSBuildConfig{
			DefaultConfiguration: "Debug",
			DefaultPlatform:      "x64",
			DefaultVerbosity:     "minimal",
			NodeReuse:            false, // Worker node reuse leaks MSBuild.exe processes in agent sessions
			ProjectExtensions:    DefaultProjectExtensions(),
			OutputTailLines:      100,
		},
		ErrorFilter: ErrorFilterConfig{
			Patterns: DefaultErrorPatterns(),
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files, later files
// overriding earlier files. Priority: env > last file > ... > first file > defaults.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("MSBUILD_MCP_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if toolPath := os.Getenv("MSBUILD_MCP_TOOL_PATH"); toolPath != "" {
		config.MSBuild.ToolPath = toolPath
	}
	if vswherePath := os.Getenv("MSBUILD_MCP_VSWHERE_PATH"); vswherePath != "" {
		config.MSBuild.VSWherePath = vswherePath
	}
	if configuration := os.Getenv("MSBUILD_MCP_DEFAULT_CONFIGURATION"); configuration != "" {
		config.MSBuild.DefaultConfiguration = configuration
	}
	if platform := os.Getenv("MSBUILD_MCP_DEFAULT_PLATFORM"); platform != "" {
		config.MSBuild.DefaultPlatform = platform
	}
	if verbosity := os.Getenv("MSBUILD_MCP_DEFAULT_VERBOSITY"); verbosity != "" {
		config.MSBuild.DefaultVerbosity = verbosity
	}
	if tail := os.Getenv("MSBUILD_MCP_OUTPUT_TAIL_LINES"); tail != "" {
		if n, err := strconv.Atoi(tail); err == nil {
			config.MSBuild.OutputTailLines = n
		}
	}

	if level := os.Getenv("MSBUILD_MCP_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
