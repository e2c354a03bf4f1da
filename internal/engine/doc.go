// Package engine provides the editing engine for pine.
//
// The Engine composes the line buffer, the viewport and the cursor, and is
// the only component allowed to mutate any of them. Every key press is
// turned into a Command and executed with Apply, which reads the current
// coordinates, computes the buffer-space target, mutates the buffer, and
// moves the cursor through the viewport's move-and-clamp routine.
//
// # Coordinate Model
//
// The cursor stores screen coordinates inside the text area. The buffer
// position it denotes is always
//
//	row = viewport.TopLine()    + cursor.Y()
//	col = viewport.LeftColumn() + cursor.X()
//
// and Apply keeps row a valid line index and col within [0, LineLength(row)]
// after every command. Commands whose precondition does not hold (ArrowUp on
// the first line, Backspace at the start of the document) are no-ops.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("abc\ndef"), engine.WithSize(80, 20))
//
//	e.Apply(engine.NewCommand(engine.ArrowDown))
//	e.Apply(engine.NewCommand(engine.Backspace))
//
//	e.Text()     // "abcdef"
//	e.Position() // (0:3)
//
// # Thread Safety
//
// Engine is not safe for concurrent use. It is owned by the application's
// single event loop.
package engine
