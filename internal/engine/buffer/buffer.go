package buffer

import (
	"strings"
)

// LineSeparator is the byte sequence used to split file content into lines
// and to join lines back together.
const LineSeparator = "\n"

// Buffer holds the document as a sequence of rune lines.
type Buffer struct {
	lines    [][]rune
	revision uint64
}

// New creates a buffer containing a single empty line.
func New() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// NewFromString creates a buffer from text, splitting on LineSeparator.
// No line ending normalization is performed; a trailing "\r" stays part of
// its line.
func NewFromString(s string) *Buffer {
	parts := strings.Split(s, LineSeparator)
	lines := make([][]rune, len(parts))
	for i, part := range parts {
		lines[i] = []rune(part)
	}
	return &Buffer{lines: lines}
}

// Read Operations

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLength returns the number of runes in row.
func (b *Buffer) LineLength(row int) int {
	return len(b.lines[row])
}

// Line returns the text of row.
func (b *Buffer) Line(row int) string {
	return string(b.lines[row])
}

// Slice returns the runes of row in [from, to), clipped to the line.
// It is used by the renderer to extract the visible part of a line.
func (b *Buffer) Slice(row, from, to int) string {
	line := b.lines[row]
	if from < 0 {
		from = 0
	}
	if to > len(line) {
		to = len(line)
	}
	if from >= to {
		return ""
	}
	return string(line[from:to])
}

// Lines returns a copy of every line as a string.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i := range b.lines {
		out[i] = b.Line(i)
	}
	return out
}

// Text returns the full document with lines joined by LineSeparator.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), LineSeparator)
}

// Revision returns a counter that increases on every mutation.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// Write Operations

// InsertChar inserts ch before col in row.
// Requires a valid row and 0 <= col <= LineLength(row).
func (b *Buffer) InsertChar(row, col int, ch rune) {
	line := b.lines[row]
	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = ch
	b.lines[row] = line
	b.revision++
}

// DeleteChar removes the rune at col in row, shifting the rest left.
// Requires col < LineLength(row).
func (b *Buffer) DeleteChar(row, col int) {
	line := b.lines[row]
	b.lines[row] = append(line[:col], line[col+1:]...)
	b.revision++
}

// SplitLine breaks row at col. The prefix [0, col) stays at row and the
// suffix [col, end) becomes a new line at row+1.
func (b *Buffer) SplitLine(row, col int) {
	line := b.lines[row]
	suffix := make([]rune, len(line)-col)
	copy(suffix, line[col:])
	b.lines[row] = line[:col:col]

	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = suffix
	b.revision++
}

// MergeWithPrevious appends row to the end of row-1 and removes row.
// Requires row > 0.
func (b *Buffer) MergeWithPrevious(row int) {
	b.lines[row-1] = append(b.lines[row-1], b.lines[row]...)
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.revision++
}
