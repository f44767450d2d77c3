package diag

import "fmt"

// Code identifies one diagnostic kind. Lexical codes live in the 1xxx range,
// syntactic codes in the 2xxx range.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002

	// Syntactic
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectIdentifier Code = 2002
	SynExpectString     Code = 2003
	SynUnclosedBrace    Code = 2004
)

// ID renders the code as a stable, grep-friendly identifier, e.g. "LEX1002".
func (c Code) ID() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	default:
		return fmt.Sprintf("DIAG%04d", uint16(c))
	}
}

func (c Code) String() string {
	return c.ID()
}
