package diag_test

import (
	"errors"
	"testing"

	"jsfront/internal/diag"
	"jsfront/internal/source"
)

func TestCode_ID(t *testing.T) {
	tests := []struct {
		code diag.Code
		want string
	}{
		{diag.LexUnknownChar, "LEX1001"},
		{diag.LexUnterminatedString, "LEX1002"},
		{diag.SynUnexpectedToken, "SYN2001"},
		{diag.SynUnclosedBrace, "SYN2004"},
		{diag.UnknownCode, "DIAG0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestErrorf(t *testing.T) {
	loc := source.Location{
		Start:    source.Position{Line: 3, Column: 7, Index: 42},
		End:      source.Position{Line: 3, Column: 8, Index: 43},
		FileName: "x.js",
	}
	err := diag.Errorf(diag.LexUnknownChar, loc, "unhandled character %q", "@")

	if err.Severity != diag.SevError {
		t.Errorf("Severity = %v, want SevError", err.Severity)
	}
	want := `x.js:3:7: LEX1001: unhandled character "@"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAsDiagnostic(t *testing.T) {
	diagErr := diag.Errorf(diag.SynExpectString, source.Location{}, "expected string literal")
	d := diag.AsDiagnostic(diagErr)
	if d.Code != diag.SynExpectString {
		t.Errorf("Code = %v, want SynExpectString", d.Code)
	}

	plain := diag.AsDiagnostic(errors.New("boom"))
	if plain.Code != diag.UnknownCode || plain.Message != "boom" {
		t.Errorf("plain error mapped to %+v", plain)
	}
	if plain.Severity != diag.SevError {
		t.Errorf("Severity = %v, want SevError", plain.Severity)
	}
}

func TestBag_SortAndHasErrors(t *testing.T) {
	at := func(file string, index uint32) source.Location {
		return source.Location{
			Start:    source.Position{Line: 1, Column: index, Index: index},
			End:      source.Position{Line: 1, Column: index + 1, Index: index + 1},
			FileName: file,
		}
	}

	bag := diag.NewBag()
	if bag.HasErrors() {
		t.Error("empty bag should have no errors")
	}

	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynUnexpectedToken, Primary: at("b.js", 0)})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar, Primary: at("a.js", 9)})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnterminatedString, Primary: at("a.js", 2)})
	bag.Sort()

	if !bag.HasErrors() {
		t.Error("bag should report errors")
	}
	if bag.Len() != 3 {
		t.Fatalf("Len = %d, want 3", bag.Len())
	}

	wantOrder := []diag.Code{diag.LexUnterminatedString, diag.LexUnknownChar, diag.SynUnexpectedToken}
	for i, d := range bag.Items() {
		if d.Code != wantOrder[i] {
			t.Errorf("item %d: code %v, want %v", i, d.Code, wantOrder[i])
		}
	}
}
