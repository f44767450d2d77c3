package diagfmt

// PrettyOpts controls the human-readable diagnostic renderer.
type PrettyOpts struct {
	// Color enables ANSI coloring of severities.
	Color bool
	// Preview enables the source-line excerpt with a caret underline.
	Preview bool
}
