package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"jsfront/internal/source"
)

func TestFromString_LineIndex(t *testing.T) {
	f := source.FromString("test.js", "ab\ncd\n\nef")

	if f.Flags&source.FileVirtual == 0 {
		t.Error("FromString should set FileVirtual")
	}
	want := []uint32{2, 5, 6}
	if len(f.LineIdx) != len(want) {
		t.Fatalf("LineIdx = %v, want %v", f.LineIdx, want)
	}
	for i := range want {
		if f.LineIdx[i] != want[i] {
			t.Errorf("LineIdx[%d] = %d, want %d", i, f.LineIdx[i], want[i])
		}
	}
}

func TestFile_Line(t *testing.T) {
	f := source.FromString("test.js", "first\nsecond\n\nfourth")

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, ""},
		{4, "fourth"},
		{5, ""},
	}
	for _, tt := range tests {
		if got := f.Line(tt.line); got != tt.want {
			t.Errorf("Line(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestFile_Slice(t *testing.T) {
	f := source.FromString("test.js", "import x from 'y'")
	loc := source.Location{
		Start: source.Position{Line: 1, Column: 0, Index: 0},
		End:   source.Position{Line: 1, Column: 6, Index: 6},
	}
	if got := f.Slice(loc); got != "import" {
		t.Errorf("Slice = %q, want %q", got, "import")
	}
}

func TestLoad_NormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.js")
	content := []byte{0xEF, 0xBB, 0xBF}
	content = append(content, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := source.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(f.Code) != "a\nb\n" {
		t.Errorf("Code = %q, want %q", f.Code, "a\nb\n")
	}
	if f.Flags&source.FileHadBOM == 0 {
		t.Error("FileHadBOM not set")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("FileNormalizedCRLF not set")
	}
}

func TestLocation_CoverAndLen(t *testing.T) {
	a := source.Location{
		Start:    source.Position{Line: 1, Column: 0, Index: 0},
		End:      source.Position{Line: 1, Column: 6, Index: 6},
		FileName: "x.js",
	}
	b := source.Location{
		Start:    source.Position{Line: 1, Column: 10, Index: 10},
		End:      source.Position{Line: 1, Column: 14, Index: 14},
		FileName: "x.js",
	}

	cov := a.Cover(b)
	if cov.Start.Index != 0 || cov.End.Index != 14 {
		t.Errorf("Cover = [%d,%d), want [0,14)", cov.Start.Index, cov.End.Index)
	}
	if cov.Len() != 14 {
		t.Errorf("Len = %d, want 14", cov.Len())
	}

	other := b
	other.FileName = "y.js"
	if got := a.Cover(other); got != a {
		t.Error("Cover across files must leave the location untouched")
	}
}

func TestSet(t *testing.T) {
	s := source.NewSet()
	f := source.FromString("a.js", "let x")
	s.Add(f)

	if got, ok := s.Get("a.js"); !ok || got != f {
		t.Error("Get after Add failed")
	}
	if _, ok := s.Get("b.js"); ok {
		t.Error("Get of unknown name should miss")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}
