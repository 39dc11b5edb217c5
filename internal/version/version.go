// Package version holds the build version, set at link time with
// -ldflags "-X github.com/hashicorp-forge/anythingllm/internal/version.Version=...".
package version

var (
	Version   = "0.1.0-dev"
	GitCommit = ""
)

// Full returns the version with the commit when known.
func Full() string {
	if GitCommit == "" {
		return Version
	}
	return Version + " (" + GitCommit + ")"
}
