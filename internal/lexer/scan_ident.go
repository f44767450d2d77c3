package lexer

import "jsfront/internal/token"

// scanIdentOrKeyword reads an identifier run and checks it against the
// keyword table. Strict-mode-only and contextual keywords still come out as
// Keyword here; only the parser knows the surrounding production.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	loc := lx.cursor.LocFrom(start)
	text := lx.text(loc)

	if kw, ok := lx.vocab.Keyword(text); ok {
		return token.Keyword{Info: kw, Location: loc}
	}
	return token.Identifier{Name: text, Location: loc}
}
