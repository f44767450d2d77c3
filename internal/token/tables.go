package token

import "jsfront/internal/trie"

// OperatorInfo describes one operator lexeme. Precedence follows the
// ECMAScript operator precedence table (higher binds tighter).
type OperatorInfo struct {
	Lexeme     string
	Precedence int
}

// KeywordInfo describes one reserved word. StrictModeOnly keywords are
// reserved only in strict-mode source; nothing consults the flag yet (see
// DESIGN.md). ContextOnly keywords are ordinary identifiers everywhere
// except inside the grammar productions that re-check the lexeme text.
type KeywordInfo struct {
	Lexeme         string
	StrictModeOnly bool
	ContextOnly    bool
}

// Vocabulary bundles the operator, punctuation and keyword tables with the
// trie that resolves multi-character tokens. Immutable after construction;
// safe to share read-only across concurrently running lexers.
type Vocabulary struct {
	operators map[string]*OperatorInfo
	puncts    map[string]struct{}
	keywords  map[string]*KeywordInfo
	lookup    *trie.Trie
}

// NewVocabulary builds an immutable vocabulary from the given tables. The
// trie is populated with every operator and punctuation lexeme.
func NewVocabulary(ops []OperatorInfo, puncts []string, keywords []KeywordInfo) *Vocabulary {
	v := &Vocabulary{
		operators: make(map[string]*OperatorInfo, len(ops)),
		puncts:    make(map[string]struct{}, len(puncts)),
		keywords:  make(map[string]*KeywordInfo, len(keywords)),
		lookup:    trie.New(),
	}
	for i := range ops {
		op := ops[i]
		v.operators[op.Lexeme] = &op
		v.lookup.Insert(op.Lexeme)
	}
	for _, p := range puncts {
		v.puncts[p] = struct{}{}
		v.lookup.Insert(p)
	}
	for i := range keywords {
		kw := keywords[i]
		v.keywords[kw.Lexeme] = &kw
	}
	return v
}

// Operator returns the table entry for an operator lexeme.
func (v *Vocabulary) Operator(lexeme string) (*OperatorInfo, bool) {
	op, ok := v.operators[lexeme]
	return op, ok
}

// Punctuation reports whether lexeme is a punctuation token.
func (v *Vocabulary) Punctuation(lexeme string) bool {
	_, ok := v.puncts[lexeme]
	return ok
}

// Keyword returns the table entry for a reserved word. Keywords are
// case-sensitive; only lowercase forms are recognized.
func (v *Vocabulary) Keyword(ident string) (*KeywordInfo, bool) {
	kw, ok := v.keywords[ident]
	return kw, ok
}

// Completions returns every operator/punctuation lexeme reachable by
// continuing prefix, including prefix itself when complete.
func (v *Vocabulary) Completions(prefix string) []string {
	return v.lookup.Get(prefix)
}

var defaultOperators = []OperatorInfo{
	{Lexeme: "=", Precedence: 2},
	{Lexeme: "+=", Precedence: 2},
	{Lexeme: "-=", Precedence: 2},
	{Lexeme: "*=", Precedence: 2},
	{Lexeme: "/=", Precedence: 2},
	{Lexeme: "%=", Precedence: 2},
	{Lexeme: "?", Precedence: 2},
	{Lexeme: "??", Precedence: 3},
	{Lexeme: "||", Precedence: 4},
	{Lexeme: "&&", Precedence: 5},
	{Lexeme: "|", Precedence: 6},
	{Lexeme: "^", Precedence: 7},
	{Lexeme: "&", Precedence: 8},
	{Lexeme: "==", Precedence: 9},
	{Lexeme: "!=", Precedence: 9},
	{Lexeme: "===", Precedence: 9},
	{Lexeme: "!==", Precedence: 9},
	{Lexeme: "<", Precedence: 10},
	{Lexeme: "<=", Precedence: 10},
	{Lexeme: ">", Precedence: 10},
	{Lexeme: ">=", Precedence: 10},
	{Lexeme: "<<", Precedence: 11},
	{Lexeme: ">>", Precedence: 11},
	{Lexeme: ">>>", Precedence: 11},
	{Lexeme: "+", Precedence: 12},
	{Lexeme: "-", Precedence: 12},
	{Lexeme: "*", Precedence: 13},
	{Lexeme: "/", Precedence: 13},
	{Lexeme: "%", Precedence: 13},
	{Lexeme: "**", Precedence: 14},
	{Lexeme: "!", Precedence: 15},
	{Lexeme: "~", Precedence: 15},
	{Lexeme: "++", Precedence: 16},
	{Lexeme: "--", Precedence: 16},
}

var defaultPunctuation = []string{
	";", ",", "(", ")", "{", "}", "[", "]", ".", ":", "...", "=>",
}

var defaultKeywords = []KeywordInfo{
	{Lexeme: "import"},
	{Lexeme: "export"},
	{Lexeme: "const"},
	{Lexeme: "var"},
	{Lexeme: "function"},
	{Lexeme: "return"},
	{Lexeme: "if"},
	{Lexeme: "else"},
	{Lexeme: "for"},
	{Lexeme: "while"},
	{Lexeme: "do"},
	{Lexeme: "break"},
	{Lexeme: "continue"},
	{Lexeme: "new"},
	{Lexeme: "class"},
	{Lexeme: "extends"},
	{Lexeme: "super"},
	{Lexeme: "this"},
	{Lexeme: "typeof"},
	{Lexeme: "instanceof"},
	{Lexeme: "in"},
	{Lexeme: "delete"},
	{Lexeme: "void"},
	{Lexeme: "switch"},
	{Lexeme: "case"},
	{Lexeme: "default"},
	{Lexeme: "try"},
	{Lexeme: "catch"},
	{Lexeme: "finally"},
	{Lexeme: "throw"},
	{Lexeme: "true"},
	{Lexeme: "false"},
	{Lexeme: "null"},

	{Lexeme: "let", StrictModeOnly: true},
	{Lexeme: "yield", StrictModeOnly: true},

	{Lexeme: "as", ContextOnly: true},
	{Lexeme: "async", ContextOnly: true},
	{Lexeme: "await", ContextOnly: true},
	{Lexeme: "from", ContextOnly: true},
	{Lexeme: "get", ContextOnly: true},
	{Lexeme: "of", ContextOnly: true},
	{Lexeme: "set", ContextOnly: true},
	{Lexeme: "static", ContextOnly: true},
}

var defaultVocab = NewVocabulary(defaultOperators, defaultPunctuation, defaultKeywords)

// Default returns the process-wide vocabulary, built once and never mutated.
func Default() *Vocabulary {
	return defaultVocab
}
