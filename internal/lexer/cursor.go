package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"jsfront/internal/source"
)

// Cursor is a scan position inside a file, carrying the full
// line/column/index bookkeeping.
type Cursor struct {
	file  *source.File
	pos   source.Position
	limit uint32
}

// NewCursor creates a cursor at the start of the given file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Code))
	if err != nil {
		panic(fmt.Errorf("file content length overflow: %w", err))
	}
	return Cursor{
		file:  f,
		pos:   source.StartPosition(),
		limit: limit,
	}
}

// EOF reports whether the cursor has consumed the whole file.
func (c *Cursor) EOF() bool {
	return c.pos.Index >= c.limit
}

// Peek reads the current byte without consuming it; 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Code[c.pos.Index]
}

// PeekAt reads the byte offset bytes past the current position without
// consuming anything; 0 when the offset lands at or past EOF.
func (c *Cursor) PeekAt(offset uint32) byte {
	idx := c.pos.Index + offset
	if idx >= c.limit {
		return 0
	}
	return c.file.Code[idx]
}

// Bump consumes and returns the current byte. A newline advances Line and
// resets Column; every other byte (tabs included) is one column step.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.file.Code[c.pos.Index]
	c.pos.Index++
	if b == '\n' {
		c.pos.Line++
		c.pos.Column = 0
	} else {
		c.pos.Column++
	}
	return b
}

// Mark snapshots the cursor position for LocFrom/Reset.
func (c *Cursor) Mark() source.Position {
	return c.pos
}

// Reset rewinds the cursor to a mark. The lexer only ever resets by a single
// byte (the operator-scan rollback); the position snapshot makes the rewind
// exact across line boundaries regardless.
func (c *Cursor) Reset(m source.Position) {
	c.pos = m
}

// Pos returns the current position.
func (c *Cursor) Pos() source.Position {
	return c.pos
}

// LocFrom builds the location of the fragment scanned since the mark.
func (c *Cursor) LocFrom(m source.Position) source.Location {
	return source.Location{Start: m, End: c.pos, FileName: c.file.Name}
}
