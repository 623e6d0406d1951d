package mpc

import (
	"fmt"
	"unicode/utf8"
)

// Position represents a location in the input.
// Offset is a byte offset; Row and Col are zero-based and count runes.
type Position struct {
	Offset int
	Row    int
	Col    int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Col+1)
}

// Cursor walks the input one rune at a time.
type Cursor struct {
	input string
	pos   Position
}

// NewCursor returns a cursor at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{input: input}
}

// Position returns the current position in the input.
func (c *Cursor) Position() Position {
	return c.pos
}

// Reset moves the cursor back to a position obtained from Position.
func (c *Cursor) Reset(pos Position) {
	c.pos = pos
}

// AtEOF reports whether the whole input has been consumed.
func (c *Cursor) AtEOF() bool {
	return c.pos.Offset >= len(c.input)
}

// Peek returns the next rune without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	return c.runeAt(c.pos.Offset)
}

func (c *Cursor) runeAt(offset int) (rune, bool) {
	if offset >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[offset:])
	return r, true
}

// Prev returns the rune just before the cursor.
func (c *Cursor) Prev() (rune, bool) {
	if c.pos.Offset == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(c.input[:c.pos.Offset])
	return r, true
}

// Advance consumes the next rune and returns it.
func (c *Cursor) Advance() (rune, bool) {
	if c.AtEOF() {
		return 0, false
	}
	r, width := utf8.DecodeRuneInString(c.input[c.pos.Offset:])
	c.pos.Offset += width
	if r == '\n' {
		c.pos.Row++
		c.pos.Col = 0
	} else {
		c.pos.Col++
	}
	return r, true
}

// Slice returns the input between two offsets.
func (c *Cursor) Slice(from, to int) string {
	return c.input[from:to]
}
