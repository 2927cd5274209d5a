package core

import (
	"strings"
)

// Location identifies an edit point in the buffer: X is a grapheme column,
// Y a row. X may equal a line's grapheme length, which is the append
// position at the end of that line.
type Location struct {
	X int
	Y int
}

// Buffer is the document being edited: an ordered collection of lines.
// It is never empty; every line-count-changing mutation re-establishes the
// one-line minimum.
type Buffer struct {
	lines []*Line
}

// NewBuffer creates a buffer holding a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: []*Line{NewLine()}}
}

// BufferFromString splits text on newlines into lines. Text ending in a
// newline produces a trailing empty line, so String round-trips the original
// bytes exactly. Empty text produces a single empty line.
func BufferFromString(text string) *Buffer {
	parts := strings.Split(text, "\n")
	lines := make([]*Line, len(parts))
	for i, p := range parts {
		lines[i] = LineFromString(p)
	}
	return &Buffer{lines: lines}
}

// LineCount returns the number of lines. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineAt returns the text of line y, or an empty string if y is out of range.
func (b *Buffer) LineAt(y int) string {
	if y < 0 || y >= len(b.lines) {
		return ""
	}
	return b.lines[y].String()
}

// GraphemeLenAt returns the grapheme length of line y, or 0 if y is out of
// range.
func (b *Buffer) GraphemeLenAt(y int) int {
	if y < 0 || y >= len(b.lines) {
		return 0
	}
	return b.lines[y].GraphemeLen()
}

// InsertChar inserts a single grapheme cluster at loc. Rows past the end of
// the buffer are filled in with empty lines first; callers are not expected
// to trigger that under normal dispatch.
func (b *Buffer) InsertChar(loc Location, cluster string) {
	for loc.Y >= len(b.lines) {
		b.lines = append(b.lines, NewLine())
	}
	b.lines[loc.Y].Insert(loc.X, cluster)
}

// DeleteChar removes the grapheme immediately before loc, joining with the
// previous line when loc sits at column 0. Returns false at the very start
// of the document, where nothing precedes the location.
func (b *Buffer) DeleteChar(loc Location) bool {
	if loc.X == 0 && loc.Y == 0 {
		return false
	}
	if loc.X > 0 {
		b.lines[loc.Y].Remove(loc.X - 1)
		return true
	}
	removed := b.lines[loc.Y]
	b.lines = append(b.lines[:loc.Y], b.lines[loc.Y+1:]...)
	b.lines[loc.Y-1].Append(removed.String())
	return true
}

// DeleteUnder removes the grapheme under loc. At the end of a line it joins
// the next line into this one instead; this forward join is deliberately
// distinct from DeleteChar's backward join. Returns false when there is
// nothing to delete.
func (b *Buffer) DeleteUnder(loc Location) bool {
	if loc.Y < 0 || loc.Y >= len(b.lines) {
		return false
	}
	if loc.X < b.lines[loc.Y].GraphemeLen() {
		b.lines[loc.Y].Remove(loc.X)
		return true
	}
	return b.JoinWithNext(loc.Y)
}

// JoinWithNext appends line y+1 onto line y and removes it. Returns false
// when there is no next line.
func (b *Buffer) JoinWithNext(y int) bool {
	if y < 0 || y+1 >= len(b.lines) {
		return false
	}
	next := b.lines[y+1]
	b.lines = append(b.lines[:y+1], b.lines[y+2:]...)
	b.lines[y].Append(next.String())
	return true
}

// SplitLine splits line loc.Y at grapheme column loc.X into two lines.
func (b *Buffer) SplitLine(loc Location) {
	assertf(loc.Y >= 0 && loc.Y < len(b.lines),
		"split row %d out of range [0, %d)", loc.Y, len(b.lines))
	left, right := b.lines[loc.Y].SplitAt(loc.X)
	b.lines[loc.Y] = LineFromString(left)
	b.lines = append(b.lines, nil)
	copy(b.lines[loc.Y+2:], b.lines[loc.Y+1:])
	b.lines[loc.Y+1] = LineFromString(right)
}

// String serializes the buffer by joining lines with newlines. A trailing
// empty line acts as the implicit final newline and is not duplicated, so
// BufferFromString followed by String reproduces the input exactly.
func (b *Buffer) String() string {
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "\n")
}
