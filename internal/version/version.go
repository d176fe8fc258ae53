// Package version holds build information and the layout document schema
// version.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version information injected by ldflags during build.
var (
	// Version is the current version (e.g., "1.0.0")
	Version = "dev"
	// Commit is the git commit hash
	Commit = "unknown"
	// BuildDate is the build timestamp
	BuildDate = "unknown"
)

// SchemaVersion is the layout document version written by this build.
const SchemaVersion = "1.0"

// supportedSchemas is the range of document versions this build reads.
const supportedSchemas = ">= 1.0, < 2.0"

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate)
}

// CheckSchema returns an error if a document declaring version v cannot be
// read by this build. An empty version is taken to be SchemaVersion.
func CheckSchema(v string) error {
	if v == "" {
		return nil
	}
	parsed, err := semver.NewVersion(strings.TrimPrefix(v, "v"))
	if err != nil {
		return fmt.Errorf("invalid schema version %q: %w", v, err)
	}
	constraint, err := semver.NewConstraint(supportedSchemas)
	if err != nil {
		return fmt.Errorf("invalid schema constraint: %w", err)
	}
	if !constraint.Check(parsed) {
		return fmt.Errorf("schema version %s is not supported (want %s)", parsed, supportedSchemas)
	}
	return nil
}

// Newer reports whether version a is newer than b. Versions that do not parse
// are never newer.
func Newer(a, b string) bool {
	av, err := semver.NewVersion(strings.TrimPrefix(a, "v"))
	if err != nil {
		return false
	}
	bv, err := semver.NewVersion(strings.TrimPrefix(b, "v"))
	if err != nil {
		return false
	}
	return av.GreaterThan(bv)
}
