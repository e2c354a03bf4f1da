// Package renderer draws the editor screen.
//
// The screen is laid out as:
//
//	row 0        pine: <path> [+]
//	row 1        ----------------
//	rows 2..h-3  text area
//	row h-2      ----------------
//	row h-1      save and exit: ctrl + c ||        row:col
//
// Every frame is a full repaint from an engine.View; the backend is
// responsible for sending only changed cells to the terminal.
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, path)
//	r.Render(eng.Snapshot())
package renderer
