package diag

import (
	"fmt"

	"jsfront/internal/source"
)

// Diagnostic is one reported problem pinned to a source location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Location
}

func (d Diagnostic) String() string {
	loc := d.Primary.Start.String()
	if d.Primary.FileName != "" {
		loc = d.Primary.FileName + ":" + loc
	}
	return fmt.Sprintf("%s: %s: %s", loc, d.Code.ID(), d.Message)
}

// Error is a diagnostic surfaced as a Go error. Tokenize/parse calls fail
// fast with exactly one of these; there is no partial-success notion.
type Error struct {
	Diagnostic
}

// Errorf builds an error-severity diagnostic.
func Errorf(code Code, loc source.Location, format string, args ...any) *Error {
	return &Error{Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Primary:  loc,
	}}
}

func (e *Error) Error() string {
	return e.Diagnostic.String()
}

// AsDiagnostic extracts the Diagnostic from err when it is a *Error; any
// other error becomes an UnknownCode error diagnostic with no location.
func AsDiagnostic(err error) Diagnostic {
	if e, ok := err.(*Error); ok {
		return e.Diagnostic
	}
	return Diagnostic{Severity: SevError, Code: UnknownCode, Message: err.Error()}
}
