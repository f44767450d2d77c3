package main

import (
	"os"

	"github.com/spf13/cobra"

	"jsfront/internal/diag"
	"jsfront/internal/diagfmt"
	"jsfront/internal/source"
)

// reportDiagnostic pretty-prints a front-end error to stderr with a source
// preview when the offending file is at hand.
func reportDiagnostic(cmd *cobra.Command, err error, file *source.File) {
	bag := diag.NewBag()
	bag.Add(diag.AsDiagnostic(err))

	var files *source.Set
	if file != nil {
		files = source.NewSet()
		files.Add(file)
	}

	diagfmt.Pretty(os.Stderr, bag, files, diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Preview: file != nil,
	})
}
