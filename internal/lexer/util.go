package lexer

// ASCII classifiers; Unicode identifiers are outside the current grammar
// subset.

func isIdentStartByte(b byte) bool {
	return b == '$' || b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
