package trie_test

import (
	"slices"
	"testing"

	"jsfront/internal/trie"
)

func expectGet(t *testing.T, tr *trie.Trie, prefix string, want []string) {
	t.Helper()
	got := tr.Get(prefix)
	if !slices.Equal(got, want) {
		t.Errorf("Get(%q) = %v, want %v", prefix, got, want)
	}
}

func TestGet_LongestMatchFamilies(t *testing.T) {
	tr := trie.New("=", "==", "===", "=>")

	// Terminal first, then full descent of the '=' child before '>'.
	expectGet(t, tr, "=", []string{"=", "==", "===", "=>"})
	expectGet(t, tr, "==", []string{"==", "==="})
	expectGet(t, tr, "===", []string{"==="})
	expectGet(t, tr, "====", nil)
}

func TestGet_PrefixThatIsNotAToken(t *testing.T) {
	// "as" and "ass" are complete; "a" is only a path.
	tr := trie.New("as", "ass")

	expectGet(t, tr, "a", []string{"as", "ass"})
	expectGet(t, tr, "as", []string{"as", "ass"})
	expectGet(t, tr, "ass", []string{"ass"})
	expectGet(t, tr, "b", nil)
}

func TestGet_TerminalFirstThenByteOrder(t *testing.T) {
	tr := trie.New("<", "<=", "<<", "<<=")

	// '<' itself first, then children sorted by byte: '<' (0x3C) before '=' (0x3D).
	expectGet(t, tr, "<", []string{"<", "<<", "<<=", "<="})
}

func TestInsert_Idempotent(t *testing.T) {
	tr := trie.New()
	tr.Insert("++")
	tr.Insert("++")
	tr.Insert("+")

	expectGet(t, tr, "+", []string{"+", "++"})
}

func TestContains(t *testing.T) {
	tr := trie.New(">", ">>", ">>>")

	tests := []struct {
		lexeme string
		want   bool
	}{
		{">", true},
		{">>", true},
		{">>>", true},
		{">>>>", false},
		{"<", false},
	}
	for _, tt := range tests {
		if got := tr.Contains(tt.lexeme); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.lexeme, got, tt.want)
		}
	}
}

func TestEmptyArguments_Panic(t *testing.T) {
	tr := trie.New("=")

	expectPanic(t, "Insert", func() { tr.Insert("") })
	expectPanic(t, "Get", func() { tr.Get("") })
	expectPanic(t, "Contains", func() { tr.Contains("") })
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s(\"\") did not panic", name)
		}
	}()
	fn()
}
