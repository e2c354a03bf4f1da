// Package buffer provides the line buffer that holds the document being
// edited.
//
// A Buffer is an ordered sequence of lines, each an ordered sequence of
// runes. It always contains at least one line; an empty document is a
// single empty line. Rows and columns are 0-indexed, and a column may equal
// the line length (the insertion point after the last character).
//
// Basic usage:
//
//	buf := buffer.NewFromString("abc\ndef")
//
//	buf.InsertChar(0, 3, '!')    // "abc!", "def"
//	buf.SplitLine(1, 1)          // "abc!", "d", "ef"
//	buf.MergeWithPrevious(2)     // "abc!", "def"
//
// The buffer knows nothing about screen geometry. Mutations do not validate
// their arguments: callers establish the documented preconditions, and a
// violated precondition panics like any out-of-range slice access.
//
// Thread Safety:
//
// Buffer is not safe for concurrent use. It is owned by the editor's single
// control loop.
package buffer
