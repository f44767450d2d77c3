package source

import "fmt"

// Position is a single point in source text. Index is the authoritative
// absolute byte offset; Line and Column are human-facing and advance
// together as the lexer scans.
type Position struct {
	Line   uint32 `json:"line"`   // 1-based
	Column uint32 `json:"column"` // 0-based
	Index  uint32 `json:"index"`  // byte offset
}

// StartPosition returns the position of the first character of a file.
func StartPosition() Position {
	return Position{Line: 1}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is a half-open span [Start.Index, End.Index) attributed to one
// token. Start and End share Line for single-line tokens.
type Location struct {
	Start    Position `json:"start"`
	End      Position `json:"end"`
	FileName string   `json:"fileName,omitempty"`
}

func (l Location) Empty() bool {
	return l.Start.Index == l.End.Index
}

func (l Location) Len() uint32 {
	return l.End.Index - l.Start.Index
}

func (l Location) String() string {
	if l.FileName == "" {
		return fmt.Sprintf("%s-%s", l.Start, l.End)
	}
	return fmt.Sprintf("%s:%s-%s", l.FileName, l.Start, l.End)
}

// Cover widens l to include other. Locations from different files are left
// untouched.
func (l Location) Cover(other Location) Location {
	if l.FileName != other.FileName {
		return l
	}
	if other.Start.Index < l.Start.Index {
		l.Start = other.Start
	}
	if other.End.Index > l.End.Index {
		l.End = other.End
	}
	return l
}
