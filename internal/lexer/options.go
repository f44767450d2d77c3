package lexer

import "jsfront/internal/token"

// Options configures a Lexer.
type Options struct {
	// Vocabulary overrides the token tables; nil means token.Default().
	// Vocabularies are read-only, so one instance may serve any number of
	// concurrently running lexers.
	Vocabulary *token.Vocabulary
}

func (o Options) vocabulary() *token.Vocabulary {
	if o.Vocabulary != nil {
		return o.Vocabulary
	}
	return token.Default()
}
