package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"jsfront/internal/ast"
)

// Bump when the ImportPayload format changes; stale entries become misses.
const diskCacheSchemaVersion uint16 = 1

// Digest is a sha256 content hash used as a cache key.
type Digest [32]byte

// HashContent computes the cache key for a file's content.
func HashContent(content []byte) Digest {
	return sha256.Sum256(content)
}

// DiskCache stores per-file import-scan results keyed by content digest.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a disk cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "imports", hexKey+".mp")
}

// ImportPayload is the cached shape of one file's import prologue.
// Locations are not cached; a cache hit reconstructs declarations without
// spans.
type ImportPayload struct {
	Schema uint16
	Path   string
	Decls  []CachedDecl
}

// CachedDecl is one import declaration, flattened for serialization.
type CachedDecl struct {
	Source string
	Specs  []CachedSpec
}

// CachedSpec is one specifier with an explicit variant tag.
type CachedSpec struct {
	Kind     uint8
	Imported string
	Local    string
}

const (
	specNamed uint8 = iota
	specDefault
	specNamespace
)

// NewImportPayload flattens declarations for caching.
func NewImportPayload(path string, decls []*ast.ImportDeclaration) *ImportPayload {
	payload := &ImportPayload{Schema: diskCacheSchemaVersion, Path: path}
	for _, decl := range decls {
		cd := CachedDecl{Source: decl.Source}
		for _, spec := range decl.Specifiers {
			switch s := spec.(type) {
			case ast.NamedSpecifier:
				cd.Specs = append(cd.Specs, CachedSpec{Kind: specNamed, Imported: s.Imported, Local: s.Local})
			case ast.DefaultSpecifier:
				cd.Specs = append(cd.Specs, CachedSpec{Kind: specDefault, Local: s.Local})
			case ast.NamespaceSpecifier:
				cd.Specs = append(cd.Specs, CachedSpec{Kind: specNamespace, Local: s.Local})
			}
		}
		payload.Decls = append(payload.Decls, cd)
	}
	return payload
}

// Declarations rebuilds the AST shape from a cached payload.
func (p *ImportPayload) Declarations() []*ast.ImportDeclaration {
	decls := make([]*ast.ImportDeclaration, 0, len(p.Decls))
	for _, cd := range p.Decls {
		decl := &ast.ImportDeclaration{
			Specifiers: make([]ast.ImportSpecifier, 0, len(cd.Specs)),
			Source:     cd.Source,
		}
		for _, cs := range cd.Specs {
			switch cs.Kind {
			case specNamed:
				decl.Specifiers = append(decl.Specifiers, ast.NamedSpecifier{Imported: cs.Imported, Local: cs.Local})
			case specDefault:
				decl.Specifiers = append(decl.Specifiers, ast.DefaultSpecifier{Local: cs.Local})
			case specNamespace:
				decl.Specifiers = append(decl.Specifiers, ast.NamespaceSpecifier{Local: cs.Local})
			}
		}
		decls = append(decls, decl)
	}
	return decls
}

// Put serializes and writes a payload, replacing atomically.
func (c *DiskCache) Put(key Digest, payload *ImportPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload; a missing entry or schema mismatch is a miss, not an
// error.
func (c *DiskCache) Get(key Digest, out *ImportPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}
