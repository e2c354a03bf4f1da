package engine

// View is a read-only snapshot of the state the renderer needs.
type View struct {
	// Lines holds the visible part of each visible line, top to bottom.
	Lines []string

	// CursorX and CursorY are the cursor's position in the text area.
	CursorX, CursorY int

	// Row and Col are the cursor's buffer position.
	Row, Col int

	// TopLine and LeftColumn are the scroll offsets.
	TopLine, LeftColumn int

	// Width and Height are the text area size.
	Width, Height int

	LineCount int
	Modified  bool
}

// Snapshot captures the current state for rendering.
func (e *Engine) Snapshot() View {
	row, col := e.pos()
	left := e.vp.LeftColumn()
	width := e.vp.Width()

	start, end := e.vp.VisibleRows(e.buf.LineCount())
	lines := make([]string, 0, end-start)
	for r := start; r < end; r++ {
		lines = append(lines, e.buf.Slice(r, left, left+width))
	}

	return View{
		Lines:      lines,
		CursorX:    e.cur.X(),
		CursorY:    e.cur.Y(),
		Row:        row,
		Col:        col,
		TopLine:    e.vp.TopLine(),
		LeftColumn: left,
		Width:      width,
		Height:     e.vp.Height(),
		LineCount:  e.buf.LineCount(),
		Modified:   e.Modified(),
	}
}
