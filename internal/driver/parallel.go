package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"jsfront/internal/ast"
	"jsfront/internal/diag"
	"jsfront/internal/source"
)

// ScanEvent reports the completion of one file inside a directory scan.
type ScanEvent struct {
	Path    string
	Index   int
	Total   int
	Imports int
	Cached  bool
	Err     error
}

// ScanDirOptions configures ScanImportsDir.
type ScanDirOptions struct {
	// Jobs bounds the number of files scanned concurrently; <=0 means
	// GOMAXPROCS.
	Jobs int
	// Exts selects the file extensions to scan; nil means .js and .mjs.
	Exts []string
	// Cache, when non-nil, short-circuits files whose content digest has
	// been scanned before. Cache hits carry declarations without spans.
	Cache *DiskCache
	// Events, when non-nil, receives one event per file. The channel is
	// closed when the scan finishes.
	Events chan<- ScanEvent
}

// ScanDirResult is the outcome for one file, in deterministic path order.
type ScanDirResult struct {
	Path  string
	Decls []*ast.ImportDeclaration
	Err   error

	cached bool
}

// Cached reports whether the result came from the disk cache.
func (r *ScanDirResult) Cached() bool { return r.cached }

var defaultExts = []string{".js", ".mjs"}

func listSourceFiles(dir string, exts []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// ScanImportsDir scans every matching file under dir in parallel. Per-file
// errors do not abort the batch: they land in the result slice and in the
// returned bag, sorted for stable reporting. Tables and the trie are shared
// read-only, so the files need no coordination beyond the job limit.
func ScanImportsDir(ctx context.Context, dir string, opts ScanDirOptions) ([]ScanDirResult, *diag.Bag, error) {
	// Close before any return, the failed-walk ones included, or consumers
	// ranging over the channel block forever.
	if opts.Events != nil {
		defer close(opts.Events)
	}

	exts := opts.Exts
	if len(exts) == 0 {
		exts = defaultExts
	}
	files, err := listSourceFiles(dir, exts)
	if err != nil {
		return nil, nil, err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns its own index; no mutex needed.
	results := make([]ScanDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(files), 1)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res := scanOne(path, opts.Cache)
			results[i] = res

			if opts.Events != nil {
				select {
				case opts.Events <- ScanEvent{
					Path:    path,
					Index:   i,
					Total:   len(files),
					Imports: len(res.Decls),
					Cached:  res.cached,
					Err:     res.Err,
				}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	bag := diag.NewBag()
	for i := range results {
		if results[i].Err != nil {
			bag.Add(diag.AsDiagnostic(results[i].Err))
		}
	}
	bag.Sort()
	return results, bag, nil
}

// scanOne handles a single file, consulting and filling the cache when one
// is configured. Cache failures degrade to a plain scan.
func scanOne(path string, cache *DiskCache) (res ScanDirResult) {
	res.Path = path

	file, err := source.Load(path)
	if err != nil {
		res.Err = err
		return res
	}

	var key Digest
	if cache != nil {
		key = HashContent(file.Code)
		var payload ImportPayload
		if ok, err := cache.Get(key, &payload); err == nil && ok {
			res.Decls = payload.Declarations()
			res.cached = true
			return res
		}
	}

	scanned, err := ScanImportsFile(file)
	if err != nil {
		res.Err = err
		return res
	}
	res.Decls = scanned.Decls

	if cache != nil {
		// Best effort: a failed write never fails the scan.
		_ = cache.Put(key, NewImportPayload(path, res.Decls))
	}
	return res
}
