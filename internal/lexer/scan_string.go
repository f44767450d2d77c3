package lexer

import (
	"jsfront/internal/diag"
	"jsfront/internal/token"
)

// scanString reads a single- or double-quoted literal. Both delimiters are
// consumed but excluded from the lexeme and its Location, so the
// reconstruction invariant holds for the body. No escape processing; a bare
// newline inside the literal is an error (multi-line strings are outside the
// current grammar subset).
func (lx *Lexer) scanString() (token.Token, error) {
	open := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			loc := lx.cursor.LocFrom(start)
			lx.cursor.Bump() // closing delimiter
			return token.String{Value: lx.text(loc), Location: loc}, nil
		}
		if b == '\n' {
			return nil, diag.Errorf(diag.LexUnterminatedString, lx.cursor.LocFrom(open),
				"unexpected line terminator in string literal")
		}
		lx.cursor.Bump()
	}

	// EOF before the closing delimiter; the location points at the opening
	// quote where the string began.
	openLoc := lx.cursor.LocFrom(open)
	openLoc.End = openLoc.Start
	openLoc.End.Index++
	openLoc.End.Column++
	return nil, diag.Errorf(diag.LexUnterminatedString, openLoc,
		"unterminated string literal")
}
