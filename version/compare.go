package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Compare orders two release versions like cmp.Compare.
// A leading "v" is accepted and missing minor or patch parts count as zero.
// Pre-releases order before the release they precede.
func Compare(a, b string) (int, error) {
	av, err := semver.NewVersion(a)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", a, err)
	}

	bv, err := semver.NewVersion(b)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", b, err)
	}

	return av.Compare(bv), nil
}
