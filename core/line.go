package core

import (
	"github.com/rivo/uniseg"
)

// Line represents one line of text plus a derived index of grapheme cluster
// boundaries. boundaries holds the byte offset of every cluster start in raw,
// followed by len(raw) as a sentinel; it is rebuilt after every mutation so
// the line can never be sliced mid-cluster.
type Line struct {
	raw        string
	boundaries []int
}

// NewLine creates an empty line.
func NewLine() *Line {
	return &Line{boundaries: []int{0}}
}

// LineFromString creates a line from existing text. The text must not contain
// a newline.
func LineFromString(s string) *Line {
	l := &Line{raw: s}
	l.rebuild()
	return l
}

func (l *Line) rebuild() {
	offsets := make([]int, 0, len(l.raw)+1)
	rest := l.raw
	pos := 0
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offsets = append(offsets, pos)
		pos += len(cluster)
	}
	offsets = append(offsets, len(l.raw))
	l.boundaries = offsets
}

// String returns the raw text of the line.
func (l *Line) String() string {
	return l.raw
}

// GraphemeLen returns the number of grapheme clusters in the line.
func (l *Line) GraphemeLen() int {
	return len(l.boundaries) - 1
}

// GraphemeAt returns the cluster at the given grapheme index, or false if the
// index is past the end of the line.
func (l *Line) GraphemeAt(index int) (string, bool) {
	if index < 0 || index >= l.GraphemeLen() {
		return "", false
	}
	return l.raw[l.boundaries[index]:l.boundaries[index+1]], true
}

// Insert splices cluster in at the given grapheme index. index may equal
// GraphemeLen, which appends. Callers must have validated the index.
func (l *Line) Insert(index int, cluster string) {
	assertf(index >= 0 && index <= l.GraphemeLen(),
		"line insert index %d out of range [0, %d]", index, l.GraphemeLen())
	off := l.boundaries[index]
	l.raw = l.raw[:off] + cluster + l.raw[off:]
	l.rebuild()
}

// Remove deletes the cluster at the given grapheme index. Callers must have
// validated the index against GraphemeLen.
func (l *Line) Remove(index int) {
	assertf(index >= 0 && index < l.GraphemeLen(),
		"line remove index %d out of range [0, %d)", index, l.GraphemeLen())
	start, end := l.boundaries[index], l.boundaries[index+1]
	l.raw = l.raw[:start] + l.raw[end:]
	l.rebuild()
}

// Append appends raw text to the line. Used for line joins, so no grapheme
// index validation is involved.
func (l *Line) Append(text string) {
	l.raw += text
	l.rebuild()
}

// Slice returns the text spanning grapheme columns [start, end), clamped to
// the line. This is the only correct way to take a sub-line for rendering;
// slicing raw at a column-as-byte-offset would corrupt non-ASCII text.
func (l *Line) Slice(start, end int) string {
	n := l.GraphemeLen()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return ""
	}
	return l.raw[l.boundaries[start]:l.boundaries[end]]
}

// SplitAt returns the text before and after the given grapheme column.
func (l *Line) SplitAt(index int) (left, right string) {
	assertf(index >= 0 && index <= l.GraphemeLen(),
		"line split index %d out of range [0, %d]", index, l.GraphemeLen())
	off := l.boundaries[index]
	return l.raw[:off], l.raw[off:]
}
