package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"jsfront/internal/ast"
	"jsfront/internal/diag"
	"jsfront/internal/diagfmt"
	"jsfront/internal/driver"
	"jsfront/internal/source"
	"jsfront/internal/ui"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [dir]",
	Short: "Scan a directory tree for import declarations",
	Long:  `Scan walks a directory, extracts the import prologue of every source file in parallel, and reports per-file results`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().Int("jobs", 0, "number of files scanned concurrently (0 = GOMAXPROCS)")
	scanCmd.Flags().StringSlice("ext", nil, "file extensions to scan (default .js,.mjs)")
	scanCmd.Flags().Bool("cache", false, "cache import results on disk, keyed by content digest")
	scanCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type scanOutcome struct {
	results []driver.ScanDirResult
	bag     *diag.Bag
	err     error
}

func runScan(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	opts, err := resolveScanOptions(cmd, dir)
	if err != nil {
		return err
	}

	var outcome scanOutcome
	if shouldUseTUI(mode) && format == "pretty" {
		outcome = runScanWithUI(cmd.Context(), dir, opts)
	} else {
		results, bag, err := driver.ScanImportsDir(cmd.Context(), dir, opts)
		outcome = scanOutcome{results: results, bag: bag, err: err}
	}
	if outcome.err != nil {
		return outcome.err
	}

	if outcome.bag.HasErrors() {
		files := source.NewSet()
		for _, d := range outcome.bag.Items() {
			if d.Primary.FileName != "" {
				// Best effort: previews only for files that still load.
				_, _ = files.Load(d.Primary.FileName)
			}
		}
		diagfmt.Pretty(os.Stderr, outcome.bag, files, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Preview: true,
		})
	}

	switch format {
	case "pretty":
		if err := writeScanPretty(os.Stdout, outcome.results, quiet); err != nil {
			return err
		}
	case "json":
		if err := writeScanJSON(os.Stdout, outcome.results); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if outcome.bag.HasErrors() {
		return fmt.Errorf("scan finished with errors")
	}
	return nil
}

// resolveScanOptions merges flags with the [scan] section of a discovered
// jsfront.toml. Explicitly set flags always win over manifest defaults.
func resolveScanOptions(cmd *cobra.Command, dir string) (driver.ScanDirOptions, error) {
	var opts driver.ScanDirOptions
	opts.Jobs, _ = cmd.Flags().GetInt("jobs")
	opts.Exts, _ = cmd.Flags().GetStringSlice("ext")
	useCache, _ := cmd.Flags().GetBool("cache")

	if manifest, ok, err := loadProjectManifest(dir); err != nil {
		return opts, err
	} else if ok {
		if !cmd.Flags().Changed("jobs") && manifest.Config.Scan.Jobs > 0 {
			opts.Jobs = manifest.Config.Scan.Jobs
		}
		if !cmd.Flags().Changed("ext") && len(manifest.Config.Scan.Exts) > 0 {
			opts.Exts = manifest.Config.Scan.Exts
		}
		if !cmd.Flags().Changed("cache") {
			useCache = manifest.Config.Scan.Cache
		}
	}

	if useCache {
		cache, err := driver.OpenDiskCache("jsfront")
		if err != nil {
			return opts, fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}

func runScanWithUI(ctx context.Context, dir string, opts driver.ScanDirOptions) scanOutcome {
	events := make(chan driver.ScanEvent, 256)
	outcomeCh := make(chan scanOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = events
		results, bag, err := driver.ScanImportsDir(ctx, dir, optsCopy)
		outcomeCh <- scanOutcome{results: results, bag: bag, err: err}
	}()

	model := ui.NewScanModel(fmt.Sprintf("scanning %s", dir), events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		outcome.err = uiErr
	}
	return outcome
}

func writeScanPretty(w io.Writer, results []driver.ScanDirResult, quiet bool) error {
	var files, imports, failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		files++
		imports += len(res.Decls)
		if quiet || len(res.Decls) == 0 {
			continue
		}
		suffix := ""
		if res.Cached() {
			suffix = " (cached)"
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", res.Path, suffix); err != nil {
			return err
		}
		if err := diagfmt.FormatImportsPretty(w, res.Decls); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d files, %d imports, %d failed\n", files, imports, failed)
	return err
}

type scanFileOutput struct {
	Path    string                   `json:"path"`
	Cached  bool                     `json:"cached"`
	Error   string                   `json:"error,omitempty"`
	Imports []*ast.ImportDeclaration `json:"imports"`
}

func writeScanJSON(w io.Writer, results []driver.ScanDirResult) error {
	output := make([]scanFileOutput, 0, len(results))
	for _, res := range results {
		entry := scanFileOutput{
			Path:    res.Path,
			Cached:  res.Cached(),
			Imports: res.Decls,
		}
		if entry.Imports == nil {
			entry.Imports = []*ast.ImportDeclaration{}
		}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		}
		output = append(output, entry)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
