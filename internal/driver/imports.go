package driver

import (
	"jsfront/internal/ast"
	"jsfront/internal/lexer"
	"jsfront/internal/parser"
	"jsfront/internal/source"
)

// ImportsResult holds the import prologue of one file.
type ImportsResult struct {
	File  *source.File
	Decls []*ast.ImportDeclaration
}

// ScanImports loads a file and extracts its leading import declarations.
// The whole file must tokenize; a lexical error anywhere aborts the scan,
// consistent with the fail-fast core.
func ScanImports(path string) (*ImportsResult, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return ScanImportsFile(file)
}

// ScanImportsSource scans in-memory code under the given name.
func ScanImportsSource(name, code string) (*ImportsResult, error) {
	return ScanImportsFile(source.FromString(name, code))
}

// ScanImportsFile scans an already-loaded file.
func ScanImportsFile(file *source.File) (*ImportsResult, error) {
	toks, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		return nil, err
	}
	decls, err := parser.ParseLeading(toks, file.Name)
	if err != nil {
		return nil, err
	}
	return &ImportsResult{File: file, Decls: decls}, nil
}
