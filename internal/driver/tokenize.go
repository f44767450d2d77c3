// Package driver glues the lexical front-end together for callers: single
// file entry points, parallel directory scans, and the import cache.
package driver

import (
	"jsfront/internal/lexer"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

// TokenizeResult holds the tokens of one file.
type TokenizeResult struct {
	File   *source.File
	Tokens []token.Token
}

// Tokenize loads a file from disk and tokenizes it.
func Tokenize(path string) (*TokenizeResult, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return TokenizeFile(file)
}

// TokenizeSource tokenizes in-memory code under the given name.
func TokenizeSource(name, code string) (*TokenizeResult, error) {
	return TokenizeFile(source.FromString(name, code))
}

// TokenizeFile tokenizes an already-loaded file.
func TokenizeFile(file *source.File) (*TokenizeResult, error) {
	toks, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		return nil, err
	}
	return &TokenizeResult{File: file, Tokens: toks}, nil
}
