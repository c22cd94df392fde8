// Package version holds build information set at link time.
package version

var (
	// Version is the version of the binary.
	Version = "dev"
	// CommitSHA is the commit the binary was built from.
	CommitSHA = ""
)
