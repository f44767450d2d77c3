// Package parser implements a recursive-descent parser over the lexer's
// token output, currently covering module import declarations.
package parser

import (
	"jsfront/internal/diag"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

// Parser consumes a token sequence destructively from the front. Each
// production peeks at most one token ahead to pick an alternative, then
// commits; there is no backtracking.
type Parser struct {
	toks    []token.Token
	lastLoc source.Location // location of the last consumed token
}

// New creates a parser over toks. fileName seeds diagnostics emitted before
// any token is consumed (e.g. on an empty sequence).
func New(toks []token.Token, fileName string) *Parser {
	return &Parser{
		toks:    toks,
		lastLoc: source.Location{FileName: fileName},
	}
}

// peek inspects the head token without consuming it; nil at end of input.
func (p *Parser) peek() token.Token {
	if len(p.toks) == 0 {
		return nil
	}
	return p.toks[0]
}

// advance removes and returns the head token.
func (p *Parser) advance() token.Token {
	tok := p.toks[0]
	p.toks = p.toks[1:]
	p.lastLoc = tok.Loc()
	return tok
}

func (p *Parser) eof() bool {
	return len(p.toks) == 0
}

// diagLoc is where a diagnostic points: the head token, or the position
// right after the last consumed token when the queue is empty.
func (p *Parser) diagLoc() source.Location {
	if t := p.peek(); t != nil {
		return t.Loc()
	}
	loc := p.lastLoc
	loc.Start = loc.End
	return loc
}

// unexpected builds the expected-vs-actual syntax error.
func (p *Parser) unexpected(code diag.Code, expected string) *diag.Error {
	return diag.Errorf(code, p.diagLoc(), "expected %s, got %s", expected, token.Describe(p.peek()))
}

func (p *Parser) atKeyword(lexeme string) bool {
	kw, ok := p.peek().(token.Keyword)
	return ok && kw.Info.Lexeme == lexeme
}

func (p *Parser) atOperator(lexeme string) bool {
	op, ok := p.peek().(token.Operator)
	return ok && op.Info.Lexeme == lexeme
}

func (p *Parser) atPunct(text string) bool {
	pt, ok := p.peek().(token.Punctuation)
	return ok && pt.Text == text
}

// expectKeyword consumes a keyword with the given lexeme. Contextual
// keywords like 'as' and 'from' are matched here by lexeme predicate; this
// is the production-level re-check the lexer defers to the parser.
func (p *Parser) expectKeyword(lexeme string) (token.Keyword, error) {
	if kw, ok := p.peek().(token.Keyword); ok && kw.Info.Lexeme == lexeme {
		p.advance()
		return kw, nil
	}
	return token.Keyword{}, p.unexpected(diag.SynUnexpectedToken, "'"+lexeme+"'")
}

func (p *Parser) expectOperator(lexeme string) (token.Operator, error) {
	if op, ok := p.peek().(token.Operator); ok && op.Info.Lexeme == lexeme {
		p.advance()
		return op, nil
	}
	return token.Operator{}, p.unexpected(diag.SynUnexpectedToken, "'"+lexeme+"'")
}

func (p *Parser) expectPunct(text string, code diag.Code) (token.Punctuation, error) {
	if pt, ok := p.peek().(token.Punctuation); ok && pt.Text == text {
		p.advance()
		return pt, nil
	}
	return token.Punctuation{}, p.unexpected(code, "'"+text+"'")
}

func (p *Parser) expectString() (token.String, error) {
	if s, ok := p.peek().(token.String); ok {
		p.advance()
		return s, nil
	}
	return token.String{}, p.unexpected(diag.SynExpectString, "string literal")
}

// expectIdent consumes an identifier. Contextual keywords are ordinary
// identifiers outside their own productions, so they are accepted here:
// `import async from 'x'` binds the name "async".
func (p *Parser) expectIdent() (string, source.Location, error) {
	switch t := p.peek().(type) {
	case token.Identifier:
		p.advance()
		return t.Name, t.Location, nil
	case token.Keyword:
		if t.Info.ContextOnly {
			p.advance()
			return t.Info.Lexeme, t.Location, nil
		}
	}
	return "", p.diagLoc(), p.unexpected(diag.SynExpectIdentifier, "identifier")
}

// atIdent reports whether the head token would satisfy expectIdent.
func (p *Parser) atIdent() bool {
	switch t := p.peek().(type) {
	case token.Identifier:
		return true
	case token.Keyword:
		return t.Info.ContextOnly
	default:
		return false
	}
}
