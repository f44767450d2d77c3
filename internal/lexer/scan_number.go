package lexer

import "jsfront/internal/token"

// scanNumber reads a run of decimal digits. No floats, exponents, radix
// prefixes or signs; signs are separate operator tokens.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	loc := lx.cursor.LocFrom(start)
	return token.Number{Text: lx.text(loc), Location: loc}
}
