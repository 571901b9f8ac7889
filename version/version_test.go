package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func withVersion(major, minor, patch, rel, rev string, fn func()) {
	oldMajor, oldMinor, oldPatch, oldRel, oldRev := Major, Minor, Patch, ReleaseType, GitRev
	defer func() {
		Major, Minor, Patch, ReleaseType, GitRev = oldMajor, oldMinor, oldPatch, oldRel, oldRev
	}()

	Major, Minor, Patch, ReleaseType, GitRev = major, minor, patch, rel, rev
	fn()
}

func TestString(t *testing.T) {
	withVersion("1", "2", "3", "", "", func() {
		require.Equal(t, "v1.2.3", String())
	})

	withVersion("0", "4", "0", "beta", "a4c6cb3142f2", func() {
		require.Equal(t, "v0.4.0-beta+a4c6cb3", String())
	})
}
