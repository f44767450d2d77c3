package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsfront/internal/diagfmt"
	"jsfront/internal/driver"
	"jsfront/internal/source"
)

var importsCmd = &cobra.Command{
	Use:   "imports [flags] file.js",
	Short: "Extract the import declarations of a JavaScript source file",
	Long:  `Imports parses the leading import statements of a file and prints them as an AST`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImports,
}

func init() {
	importsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runImports(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	file, err := source.Load(args[0])
	if err != nil {
		return err
	}

	result, err := driver.ScanImportsFile(file)
	if err != nil {
		reportDiagnostic(cmd, err, file)
		return fmt.Errorf("import scan failed")
	}

	switch format {
	case "pretty":
		return diagfmt.FormatImportsPretty(os.Stdout, result.Decls)
	case "json":
		return diagfmt.FormatImportsJSON(os.Stdout, result.Decls)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
