package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/velen-dev/velen/internal/branding"
)

// CheckRequires verifies that version satisfies the manifest's requires
// constraint. An empty constraint always passes, as does a version that is
// not semver (e.g. "dev" builds).
func CheckRequires(constraint, version string) error {
	if strings.TrimSpace(constraint) == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", constraint, err)
	}

	v, err := parseSemver(version)
	if err != nil {
		return nil
	}

	if !c.Check(v) {
		return fmt.Errorf("manifest requires %s %s, running %s", branding.CLIName(), constraint, version)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
