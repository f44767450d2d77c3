package token

import (
	"fmt"

	"jsfront/internal/source"
)

// Token is a classified, positioned unit of lexical input. Exactly one of
// the variant structs below implements it; consumers switch exhaustively.
type Token interface {
	// Loc returns the token's source span.
	Loc() source.Location
	// Lexeme returns the exact source substring making up the token (the
	// table lexeme for Operator/Keyword variants).
	Lexeme() string

	isToken()
}

// Identifier is a name that is not reserved by the keyword table.
type Identifier struct {
	Name     string
	Location source.Location
}

// Keyword is a reserved word. Info points into the keyword table.
type Keyword struct {
	Info     *KeywordInfo
	Location source.Location
}

// String is a string literal. Value is the body between the delimiters, with
// no escape processing; Location spans only the body.
type String struct {
	Value    string
	Location source.Location
}

// Number is a decimal integer literal. Signs are separate operator tokens.
type Number struct {
	Text     string
	Location source.Location
}

// Operator is a (possibly multi-character) operator. Info points into the
// operator table.
type Operator struct {
	Info     *OperatorInfo
	Location source.Location
}

// Punctuation is a structural token such as '{' or ','.
type Punctuation struct {
	Text     string
	Location source.Location
}

func (t Identifier) Loc() source.Location  { return t.Location }
func (t Keyword) Loc() source.Location     { return t.Location }
func (t String) Loc() source.Location      { return t.Location }
func (t Number) Loc() source.Location      { return t.Location }
func (t Operator) Loc() source.Location    { return t.Location }
func (t Punctuation) Loc() source.Location { return t.Location }

func (t Identifier) Lexeme() string  { return t.Name }
func (t Keyword) Lexeme() string     { return t.Info.Lexeme }
func (t String) Lexeme() string      { return t.Value }
func (t Number) Lexeme() string      { return t.Text }
func (t Operator) Lexeme() string    { return t.Info.Lexeme }
func (t Punctuation) Lexeme() string { return t.Text }

func (Identifier) isToken()  {}
func (Keyword) isToken()     {}
func (String) isToken()      {}
func (Number) isToken()      {}
func (Operator) isToken()    {}
func (Punctuation) isToken() {}

// TypeName returns the variant tag of a token. The names are a contract:
// the JSON output and downstream matchers depend on them.
func TypeName(t Token) string {
	switch t.(type) {
	case Identifier:
		return "Identifier"
	case Keyword:
		return "Keyword"
	case String:
		return "String"
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case Punctuation:
		return "Punctuation"
	default:
		panic(fmt.Sprintf("token: unknown variant %T", t))
	}
}

// Describe renders a token for diagnostics, e.g. `operator '&'`. A nil token
// describes the end of input.
func Describe(t Token) string {
	switch t := t.(type) {
	case nil:
		return "end of input"
	case Identifier:
		return fmt.Sprintf("identifier %q", t.Name)
	case Keyword:
		return fmt.Sprintf("keyword '%s'", t.Info.Lexeme)
	case String:
		return fmt.Sprintf("string %q", t.Value)
	case Number:
		return fmt.Sprintf("number %s", t.Text)
	case Operator:
		return fmt.Sprintf("operator '%s'", t.Info.Lexeme)
	case Punctuation:
		return fmt.Sprintf("'%s'", t.Text)
	default:
		panic(fmt.Sprintf("token: unknown variant %T", t))
	}
}
