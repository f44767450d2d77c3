package lexer

import (
	"jsfront/internal/diag"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

// Lexer walks a file's characters once, left to right, classifying runs into
// tokens. It is stateless apart from its cursor; vocabulary and file content
// are read-only.
type Lexer struct {
	file   *source.File
	cursor Cursor
	vocab  *token.Vocabulary
}

// New creates a lexer over the given file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		vocab:  opts.vocabulary(),
	}
}

// Tokenize consumes the entire file and returns its token sequence, or the
// first lexical error. No partial token list is returned on failure.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	return New(file, opts).Tokenize()
}

// Tokenize runs the per-character dispatch until EOF. Single pass, no
// backtracking across tokens; the only rewinds are the one-character
// retractions inside scanOperatorOrPunct.
func (lx *Lexer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		lx.skipTrivia()
		if lx.cursor.EOF() {
			return toks, nil
		}

		// Multi-character operator/punctuation resolves first; digits,
		// quotes and identifier starts are never in the trie.
		tok, ok, err := lx.scanOperatorOrPunct()
		if err != nil {
			return nil, err
		}
		if ok {
			toks = append(toks, tok)
			continue
		}

		ch := lx.cursor.Peek()
		switch {
		case isDec(ch):
			toks = append(toks, lx.scanNumber())
		case ch == '\'' || ch == '"':
			tok, err := lx.scanString()
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case isIdentStartByte(ch):
			toks = append(toks, lx.scanIdentOrKeyword())
		default:
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			return nil, diag.Errorf(diag.LexUnknownChar, lx.cursor.LocFrom(start),
				"unhandled character %q", string(ch))
		}
	}
}

// skipTrivia consumes whitespace and '//' line comments. The cursor's Bump
// does the line/column bookkeeping. A line comment runs up to its newline;
// the newline itself falls through to the whitespace arm. Block and hashbang
// comments are not handled. A lone '/' is left alone: it is the division
// operator.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\v', '\f', '\n':
			lx.cursor.Bump()
		case '/':
			if lx.cursor.PeekAt(1) != '/' {
				return
			}
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

// text returns the exact source substring for a location.
func (lx *Lexer) text(loc source.Location) string {
	return lx.file.Slice(loc)
}
