// Package statusline draws the header and footer bars around the text area.
package statusline

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/pine/internal/renderer/backend"
	"github.com/dshills/pine/internal/renderer/core"
)

// Help is the key hint shown at the left of the footer.
const Help = "save and exit: ctrl + c || "

// StatusLine renders the file name bar at the top of the screen and the
// help and position bar at the bottom.
type StatusLine struct {
	// Display state
	path     string
	modified bool
	row      int // 0-indexed buffer row
	col      int // 0-indexed buffer column

	headerStyle core.Style
	footerStyle core.Style

	width int
}

// New creates a status line for the file at path.
func New(path string) *StatusLine {
	return &StatusLine{
		path:        path,
		headerStyle: core.DefaultStyle().Bold(),
		footerStyle: core.DefaultStyle(),
	}
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the cursor position (0-indexed).
func (s *StatusLine) SetPosition(row, col int) {
	s.row = row
	s.col = col
}

// Resize updates the width available to both bars.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Header returns the header text before truncation.
func (s *StatusLine) Header() string {
	h := "pine: " + s.path
	if s.modified {
		h += " [+]"
	}
	return h
}

// Position returns the 1-indexed "row:col" indicator.
func (s *StatusLine) Position() string {
	return strconv.Itoa(s.row+1) + ":" + strconv.Itoa(s.col+1)
}

// RenderHeader draws the header bar at the given row.
func (s *StatusLine) RenderHeader(b backend.Backend, row int) {
	s.clear(b, row, s.headerStyle)
	DrawString(b, 0, row, runewidth.Truncate(s.Header(), s.width, ""), s.headerStyle)
}

// RenderFooter draws the help text and the right-aligned position.
func (s *StatusLine) RenderFooter(b backend.Backend, row int) {
	s.clear(b, row, s.footerStyle)

	pos := runewidth.Truncate(s.Position(), s.width, "")
	posStart := s.width - runewidth.StringWidth(pos)

	DrawString(b, 0, row, runewidth.Truncate(Help, posStart, ""), s.footerStyle)
	DrawString(b, posStart, row, pos, s.footerStyle)
}

func (s *StatusLine) clear(b backend.Backend, row int, style core.Style) {
	b.Fill(core.NewScreenRect(row, 0, row+1, s.width), core.NewStyledCell(' ', style))
}

// DrawString draws str starting at column x and returns the column after
// the last cell written. Wide characters advance by their display width.
func DrawString(b backend.Backend, x, y int, str string, style core.Style) int {
	for _, r := range str {
		w := core.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetCell(x, y, core.NewStyledCell(r, style))
		x += w
	}
	return x
}
