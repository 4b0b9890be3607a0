package interfaces

import (
	"context"

	"github.com/ternarybob/msbuild-mcp/internal/models"
)

// LocatorService resolves the MSBuild executable path.
// Discovery is read-only and memoized for the process lifetime; the
// installed toolchain does not change during a single run.
type LocatorService interface {
	// Locate returns the MSBuild executable path, running discovery on
	// the first call and the cached result afterwards. Returns a
	// *models.ToolNotFoundError when no installation matches.
	Locate(ctx context.Context) (string, error)

	// Instances lists the Visual Studio installations visible to
	// vswhere, for diagnostics.
	Instances(ctx context.Context) ([]models.VSInstance, error)

	// Reset clears the memoized path so the next Locate runs discovery
	// again. Intended for tests.
	Reset()
}
