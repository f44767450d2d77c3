package lexer

import (
	"jsfront/internal/diag"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

// scanOperatorOrPunct resolves the longest operator/punctuation token
// starting at the cursor. Greedy: extend the lexeme one character at a time,
// re-querying the trie after each extension. Every retraction (the failing
// extension, and the reclassification below) is exactly one character, never
// more. That bound is what keeps tokenization single-pass.
//
// Returns ok=false (cursor untouched) when the current character starts no
// vocabulary entry at all, so the dispatch loop can try the other classes.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool, error) {
	start := lx.cursor.Mark()
	lexeme := string(lx.cursor.Peek())
	if len(lx.vocab.Completions(lexeme)) == 0 {
		return nil, false, nil
	}
	prev := start
	lx.cursor.Bump()

	for !lx.cursor.EOF() {
		mark := lx.cursor.Mark()
		next := lexeme + string(lx.cursor.Bump())
		if len(lx.vocab.Completions(next)) == 0 {
			lx.cursor.Reset(mark) // one-character rollback
			break
		}
		prev = mark
		lexeme = next
	}

	if tok, ok := lx.classify(lexeme, lx.cursor.LocFrom(start)); ok {
		return tok, true, nil
	}

	// The scan stopped one character past the last complete token, on a
	// path toward a longer entry that never materialized ('..' on the way
	// to '...'). Retract that character and classify what remains. Every
	// table entry's proper prefixes reach a complete token within one
	// character, so a single retraction settles it.
	if len(lexeme) > 1 {
		lx.cursor.Reset(prev)
		lexeme = lexeme[:len(lexeme)-1]
		if tok, ok := lx.classify(lexeme, lx.cursor.LocFrom(start)); ok {
			return tok, true, nil
		}
	}

	return nil, false, diag.Errorf(diag.LexUnknownChar, lx.cursor.LocFrom(start),
		"unhandled character %q", lexeme[:1])
}

// classify resolves a completed lexeme against the operator and punctuation
// tables.
func (lx *Lexer) classify(lexeme string, loc source.Location) (token.Token, bool) {
	if op, ok := lx.vocab.Operator(lexeme); ok {
		return token.Operator{Info: op, Location: loc}, true
	}
	if lx.vocab.Punctuation(lexeme) {
		return token.Punctuation{Text: lexeme, Location: loc}, true
	}
	return nil, false
}
