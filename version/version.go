package version

import "fmt"

var (
	// Major will be incremented on incompatible output changes.
	Major = "0"
	// Minor will be incremented on new features.
	Minor = "1"
	// Patch should be incremented on every released change.
	Patch = "0"
	// ReleaseType is "beta", "alpha" or "" for final releases
	ReleaseType = "beta"
	// GitRev is the current HEAD of git of this release
	GitRev = ""
	// BuildTime is the ISO8601 timestamp of the current build
	BuildTime = ""
)

// String returns a Maj.Min.Patch string.
func String() string {
	base := fmt.Sprintf("v%s.%s.%s", Major, Minor, Patch)
	if ReleaseType != "" {
		base += "-" + ReleaseType
	}

	if len(GitRev) >= 7 {
		base += "+" + GitRev[:7]
	}

	return base
}

// Details returns the version plus the build time, if known.
func Details() string {
	if BuildTime == "" {
		return String()
	}

	return fmt.Sprintf("%s (built %s)", String(), BuildTime)
}
