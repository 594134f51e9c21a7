// Package buildinfo holds build-time metadata injected via -ldflags.
package buildinfo

// Version is the semantic version or tag for this build.
// Inject via: -X github.com/aKrishnan0817/uchicago-ai-advisor/internal/buildinfo.Version=...
var Version = ""

// Commit is the git commit SHA for this build.
// Inject via: -X github.com/aKrishnan0817/uchicago-ai-advisor/internal/buildinfo.Commit=...
var Commit = ""

// BuildDate is the RFC3339 build timestamp.
// Inject via: -X github.com/aKrishnan0817/uchicago-ai-advisor/internal/buildinfo.BuildDate=...
var BuildDate = ""

// Release returns an identifier for error tracking and startup logs.
// Prefers the version tag, falls back to the commit SHA.
func Release() string {
	switch {
	case Version != "":
		return Version
	case Commit != "":
		return Commit
	default:
		return "dev"
	}
}
