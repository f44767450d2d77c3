package version

import "github.com/fatih/color"

// Build metadata for the jsfront CLI, overridable at link time:
//
//	go build -ldflags "-X jsfront/internal/version.GitCommit=$(git rev-parse --short HEAD)"

var (
	releaseColor    = color.New(color.FgCyan, color.Bold)
	prereleaseColor = color.New(color.FgMagenta)

	// Version is the semantic version of the CLI.
	Version = releaseColor.Sprint("0.1.0") + prereleaseColor.Sprint("-dev")

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)
