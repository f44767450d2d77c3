package lexer_test

import (
	"testing"

	"jsfront/internal/lexer"
	"jsfront/internal/source"
)

func TestCursor_BumpTracksLinesAndColumns(t *testing.T) {
	f := source.FromString("test.js", "a\nbc")
	c := lexer.NewCursor(f)

	steps := []struct {
		b      byte
		line   uint32
		column uint32
		index  uint32
	}{
		{'a', 1, 1, 1},
		{'\n', 2, 0, 2},
		{'b', 2, 1, 3},
		{'c', 2, 2, 4},
	}
	for i, step := range steps {
		if got := c.Bump(); got != step.b {
			t.Fatalf("Bump %d = %q, want %q", i, got, step.b)
		}
		pos := c.Pos()
		if pos.Line != step.line || pos.Column != step.column || pos.Index != step.index {
			t.Errorf("after bump %d: %d:%d (index %d), want %d:%d (index %d)",
				i, pos.Line, pos.Column, pos.Index, step.line, step.column, step.index)
		}
	}

	if !c.EOF() {
		t.Error("cursor should be at EOF")
	}
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Error("Peek/Bump at EOF should return 0")
	}
}

func TestCursor_MarkReset(t *testing.T) {
	f := source.FromString("test.js", "x\ny")
	c := lexer.NewCursor(f)

	c.Bump()
	mark := c.Mark()
	c.Bump() // the newline
	c.Bump()

	c.Reset(mark)
	pos := c.Pos()
	if pos.Line != 1 || pos.Column != 1 || pos.Index != 1 {
		t.Errorf("after Reset: %d:%d (index %d), want 1:1 (index 1)",
			pos.Line, pos.Column, pos.Index)
	}
	if c.Peek() != '\n' {
		t.Errorf("Peek after Reset = %q, want '\\n'", c.Peek())
	}
}

func TestCursor_LocFrom(t *testing.T) {
	f := source.FromString("test.js", "abc")
	c := lexer.NewCursor(f)

	start := c.Mark()
	c.Bump()
	c.Bump()

	loc := c.LocFrom(start)
	if loc.Start.Index != 0 || loc.End.Index != 2 {
		t.Errorf("LocFrom = [%d,%d), want [0,2)", loc.Start.Index, loc.End.Index)
	}
	if loc.FileName != "test.js" {
		t.Errorf("FileName = %q, want %q", loc.FileName, "test.js")
	}
	if f.Slice(loc) != "ab" {
		t.Errorf("Slice = %q, want %q", f.Slice(loc), "ab")
	}
}
