package release

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// IsReleaseBuild reports whether version is semver. Local "dev" builds are
// not and never look up releases.
func IsReleaseBuild(version string) bool {
	_, err := semver.NewVersion(version)
	return err == nil
}

// Newer reports whether tag names a later version than build. Either may
// carry a leading "v".
func Newer(build, tag string) (bool, error) {
	b, err := semver.NewVersion(build)
	if err != nil {
		return false, fmt.Errorf("build version %q: %w", build, err)
	}
	t, err := semver.NewVersion(tag)
	if err != nil {
		return false, fmt.Errorf("release tag %q: %w", tag, err)
	}
	return t.GreaterThan(b), nil
}
