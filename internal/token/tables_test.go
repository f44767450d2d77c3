package token_test

import (
	"slices"
	"testing"

	"jsfront/internal/source"
	"jsfront/internal/token"
)

func TestDefaultVocabulary_Operators(t *testing.T) {
	v := token.Default()

	tests := []struct {
		lexeme     string
		precedence int
	}{
		{"=", 2},
		{"==", 9},
		{"===", 9},
		{"&", 8},
		{"&&", 5},
		{"*", 13},
		{"**", 14},
		{">>>", 11},
	}
	for _, tt := range tests {
		op, ok := v.Operator(tt.lexeme)
		if !ok {
			t.Errorf("Operator(%q) not found", tt.lexeme)
			continue
		}
		if op.Lexeme != tt.lexeme || op.Precedence != tt.precedence {
			t.Errorf("Operator(%q) = {%q, %d}, want {%q, %d}",
				tt.lexeme, op.Lexeme, op.Precedence, tt.lexeme, tt.precedence)
		}
	}

	if _, ok := v.Operator("=>"); ok {
		t.Error("'=>' should be punctuation, not an operator")
	}
}

func TestDefaultVocabulary_Punctuation(t *testing.T) {
	v := token.Default()

	for _, p := range []string{";", ",", "{", "}", "(", ")", "...", "=>"} {
		if !v.Punctuation(p) {
			t.Errorf("Punctuation(%q) = false, want true", p)
		}
	}
	if v.Punctuation("==") {
		t.Error("Punctuation(\"==\") = true, want false")
	}
}

func TestDefaultVocabulary_KeywordFlags(t *testing.T) {
	v := token.Default()

	tests := []struct {
		lexeme      string
		strictOnly  bool
		contextOnly bool
	}{
		{"import", false, false},
		{"const", false, false},
		{"let", true, false},
		{"yield", true, false},
		{"as", false, true},
		{"from", false, true},
		{"async", false, true},
	}
	for _, tt := range tests {
		kw, ok := v.Keyword(tt.lexeme)
		if !ok {
			t.Errorf("Keyword(%q) not found", tt.lexeme)
			continue
		}
		if kw.StrictModeOnly != tt.strictOnly || kw.ContextOnly != tt.contextOnly {
			t.Errorf("Keyword(%q) flags = {strict:%v, context:%v}, want {strict:%v, context:%v}",
				tt.lexeme, kw.StrictModeOnly, kw.ContextOnly, tt.strictOnly, tt.contextOnly)
		}
	}

	if _, ok := v.Keyword("Import"); ok {
		t.Error("keyword lookup must be case-sensitive")
	}
	if _, ok := v.Keyword("banana"); ok {
		t.Error("Keyword(\"banana\") should not be found")
	}
}

func TestDefaultVocabulary_Completions(t *testing.T) {
	v := token.Default()

	got := v.Completions("=")
	want := []string{"=", "==", "===", "=>"}
	if !slices.Equal(got, want) {
		t.Errorf("Completions(\"=\") = %v, want %v", got, want)
	}

	if got := v.Completions("@"); got != nil {
		t.Errorf("Completions(\"@\") = %v, want nil", got)
	}
}

func TestTypeNameAndDescribe(t *testing.T) {
	v := token.Default()
	op, _ := v.Operator("&")
	kw, _ := v.Keyword("import")
	loc := source.Location{}

	tests := []struct {
		tok      token.Token
		typeName string
		describe string
	}{
		{token.Identifier{Name: "kiwi", Location: loc}, "Identifier", `identifier "kiwi"`},
		{token.Keyword{Info: kw, Location: loc}, "Keyword", "keyword 'import'"},
		{token.String{Value: "./a.js", Location: loc}, "String", `string "./a.js"`},
		{token.Number{Text: "42", Location: loc}, "Number", "number 42"},
		{token.Operator{Info: op, Location: loc}, "Operator", "operator '&'"},
		{token.Punctuation{Text: "{", Location: loc}, "Punctuation", "'{'"},
	}
	for _, tt := range tests {
		if got := token.TypeName(tt.tok); got != tt.typeName {
			t.Errorf("TypeName(%v) = %q, want %q", tt.tok, got, tt.typeName)
		}
		if got := token.Describe(tt.tok); got != tt.describe {
			t.Errorf("Describe(%v) = %q, want %q", tt.tok, got, tt.describe)
		}
	}

	if got := token.Describe(nil); got != "end of input" {
		t.Errorf("Describe(nil) = %q, want \"end of input\"", got)
	}
}
