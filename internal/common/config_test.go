package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "Debug", config.MSBuild.DefaultConfiguration)
	assert.Equal(t, "x64", config.MSBuild.DefaultPlatform)
	assert.Equal(t, "minimal", config.MSBuild.DefaultVerbosity)
	assert.False(t, config.MSBuild.NodeReuse)
	assert.Contains(t, config.MSBuild.ProjectExtensions, ".sln")
	assert.Contains(t, config.MSBuild.ProjectExtensions, ".csproj")
	assert.NotEmpty(t, config.ErrorFilter.Patterns)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "msbuild-mcp.toml")

	content := `
environment = "production"

[msbuild]
tool_path = "C:/BuildTools/MSBuild/Current/Bin/MSBuild.exe"
default_configuration = "Release"
default_platform = "Win32"

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, "C:/BuildTools/MSBuild/Current/Bin/MSBuild.exe", config.MSBuild.ToolPath)
	assert.Equal(t, "Release", config.MSBuild.DefaultConfiguration)
	assert.Equal(t, "Win32", config.MSBuild.DefaultPlatform)
	assert.Equal(t, "debug", config.Logging.Level)

	// Fields absent from the file keep their defaults
	assert.Equal(t, "minimal", config.MSBuild.DefaultVerbosity)
	assert.NotEmpty(t, config.ErrorFilter.Patterns)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nonexistent.toml"))
	assert.Error(t, err)
}

func TestLoadFromFile_EmptyPathUsesDefaults(t *testing.T) {
	config, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, "Debug", config.MSBuild.DefaultConfiguration)
}

func TestLoadFromFiles_LaterFileOverrides(t *testing.T) {
	dir := t.TempDir()

	base := filepath.Join(dir, "base.toml")
	require.NoError(t, os.WriteFile(base, []byte("[msbuild]\ndefault_configuration = \"Release\"\ndefault_platform = \"ARM64\"\n"), 0644))

	override := filepath.Join(dir, "override.toml")
	require.NoError(t, os.WriteFile(override, []byte("[msbuild]\ndefault_configuration = \"Debug\"\n"), 0644))

	config, err := LoadFromFiles(base, override)
	require.NoError(t, err)

	assert.Equal(t, "Debug", config.MSBuild.DefaultConfiguration)
	assert.Equal(t, "ARM64", config.MSBuild.DefaultPlatform)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("MSBUILD_MCP_TOOL_PATH", "D:/tools/MSBuild.exe")
	t.Setenv("MSBUILD_MCP_DEFAULT_CONFIGURATION", "Release")
	t.Setenv("MSBUILD_MCP_LOG_LEVEL", "error")
	t.Setenv("MSBUILD_MCP_OUTPUT_TAIL_LINES", "50")

	config, err := LoadFromFile("")
	require.NoError(t, err)

	assert.Equal(t, "D:/tools/MSBuild.exe", config.MSBuild.ToolPath)
	assert.Equal(t, "Release", config.MSBuild.DefaultConfiguration)
	assert.Equal(t, "error", config.Logging.Level)
	assert.Equal(t, 50, config.MSBuild.OutputTailLines)
}
