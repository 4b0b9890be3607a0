package locator

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/ternarybob/msbuild-mcp/internal/models"
)

// SelectLatest picks the best installation from a vswhere instance
// list: highest installation version wins, ties broken by most recent
// install date, then by list order. Returns nil for an empty list.
//
// Instances with an unparseable version sort below every parseable one.
func SelectLatest(instances []models.VSInstance) *models.VSInstance {
	if len(instances) == 0 {
		return nil
	}

	best := 0
	bestVersion := coreVersion(instances[0].InstallationVersion)

	for i := 1; i < len(instances); i++ {
		version := coreVersion(instances[i].InstallationVersion)

		switch compareVersions(version, bestVersion) {
		case 1:
			best = i
			bestVersion = version
		case 0:
			if instances[i].InstallDate.After(instances[best].InstallDate) {
				best = i
				bestVersion = version
			}
		}
	}

	return &instances[best]
}

// coreVersion parses the major.minor.patch core of a VS installation
// version. vswhere reports four-segment versions ("17.9.34622.142");
// the fourth segment is a build revision that semver does not accept,
// so it is dropped before parsing.
func coreVersion(v string) *semver.Version {
	parts := strings.Split(v, ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}

	parsed, err := semver.NewVersion(strings.Join(parts, "."))
	if err != nil {
		return nil
	}
	return parsed
}

func compareVersions(a, b *semver.Version) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(b)
	}
}
