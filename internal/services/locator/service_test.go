package locator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/msbuild-mcp/internal/common"
	"github.com/ternarybob/msbuild-mcp/internal/exec"
	"github.com/ternarybob/msbuild-mcp/internal/models"
)

// fakeRunner returns canned vswhere output instead of spawning processes
type fakeRunner struct {
	output   []byte
	exitCode int
	err      error
	calls    int
	lastSpec exec.Spec
}

func (f *fakeRunner) Run(_ context.Context, spec exec.Spec) (*exec.Result, error) {
	f.calls++
	f.lastSpec = spec
	if f.err != nil {
		return nil, f.err
	}
	return &exec.Result{ExitCode: f.exitCode, Output: f.output, PID: 4242}, nil
}

// newTestInstallation creates a directory tree holding a fake MSBuild.exe
// and returns the installation root.
func newTestInstallation(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	binDir := filepath.Join(root, "MSBuild", "Current", "Bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "MSBuild.exe"), []byte("fake"), 0755))
	return root
}

func newTestService(config *common.Config, runner exec.Runner) *Service {
	return NewService(config, runner, arbor.NewLogger())
}

func vswhereJSON(installationPath string) []byte {
	return []byte(fmt.Sprintf(`[
		{
			"instanceId": "a1b2c3d4",
			"displayName": "Visual Studio Community 2022",
			"installationPath": %q,
			"installationVersion": "17.9.34622.142",
			"installDate": "2024-01-15T10:00:00Z",
			"productId": "Microsoft.VisualStudio.Product.Community",
			"isPrerelease": false
		}
	]`, installationPath))
}

func TestLocate_OverridePath(t *testing.T) {
	dir := t.TempDir()
	toolPath := filepath.Join(dir, "MSBuild.exe")
	require.NoError(t, os.WriteFile(toolPath, []byte("fake"), 0755))

	config := common.NewDefaultConfig()
	config.MSBuild.ToolPath = toolPath

	runner := &fakeRunner{}
	svc := newTestService(config, runner)

	path, err := svc.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, toolPath, path)
	assert.Equal(t, 0, runner.calls, "override path must bypass discovery")
}

func TestLocate_OverridePathMissing(t *testing.T) {
	config := common.NewDefaultConfig()
	config.MSBuild.ToolPath = filepath.Join(t.TempDir(), "nope", "MSBuild.exe")

	svc := newTestService(config, &fakeRunner{})

	_, err := svc.Locate(context.Background())
	var notFound *models.ToolNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestLocate_ResolvesFromVswhere(t *testing.T) {
	root := newTestInstallation(t)

	config := common.NewDefaultConfig()
	config.MSBuild.VSWherePath = "vswhere-under-test"

	runner := &fakeRunner{output: vswhereJSON(root)}
	svc := newTestService(config, runner)

	path, err := svc.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "MSBuild", "Current", "Bin", "MSBuild.exe"), path)

	// vswhere invocation requests the MSBuild component as JSON
	assert.Equal(t, "vswhere-under-test", runner.lastSpec.Path)
	assert.Contains(t, runner.lastSpec.Args, "Microsoft.Component.MSBuild")
	assert.Contains(t, runner.lastSpec.Args, "json")
}

func TestLocate_MemoizesResult(t *testing.T) {
	root := newTestInstallation(t)

	config := common.NewDefaultConfig()
	config.MSBuild.VSWherePath = "vswhere-under-test"

	runner := &fakeRunner{output: vswhereJSON(root)}
	svc := newTestService(config, runner)

	first, err := svc.Locate(context.Background())
	require.NoError(t, err)
	second, err := svc.Locate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, runner.calls, "second Locate must use the cached path")

	svc.Reset()
	_, err = svc.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, runner.calls, "Reset must force rediscovery")
}

func TestLocate_NoInstances(t *testing.T) {
	config := common.NewDefaultConfig()
	config.MSBuild.VSWherePath = "vswhere-under-test"

	svc := newTestService(config, &fakeRunner{output: []byte(`[]`)})

	_, err := svc.Locate(context.Background())
	var notFound *models.ToolNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Hint, "Build Tools")
}

func TestLocate_VswhereFails(t *testing.T) {
	config := common.NewDefaultConfig()
	config.MSBuild.VSWherePath = "vswhere-under-test"

	svc := newTestService(config, &fakeRunner{exitCode: 1, output: []byte("boom")})

	_, err := svc.Locate(context.Background())
	var notFound *models.ToolNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestLocate_MSBuildExeMissing(t *testing.T) {
	// Installation root exists but contains no MSBuild.exe
	root := t.TempDir()

	config := common.NewDefaultConfig()
	config.MSBuild.VSWherePath = "vswhere-under-test"

	svc := newTestService(config, &fakeRunner{output: vswhereJSON(root)})

	_, err := svc.Locate(context.Background())
	var notFound *models.ToolNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Hint, "MSBuild.exe not found")
}

func TestInstances_DecodesVswhereJSON(t *testing.T) {
	config := common.NewDefaultConfig()
	config.MSBuild.VSWherePath = "vswhere-under-test"

	svc := newTestService(config, &fakeRunner{output: vswhereJSON(`C:\VS`)})

	instances, err := svc.Instances(context.Background())
	require.NoError(t, err)
	require.Len(t, instances, 1)

	assert.Equal(t, "Visual Studio Community 2022", instances[0].DisplayName)
	assert.Equal(t, "17.9.34622.142", instances[0].InstallationVersion)
	assert.Equal(t, 2024, instances[0].InstallDate.Year())
}
