package renderer

import (
	"unicode"

	"github.com/dshills/pine/internal/engine"
	"github.com/dshills/pine/internal/renderer/backend"
	"github.com/dshills/pine/internal/renderer/core"
	"github.com/dshills/pine/internal/renderer/statusline"
)

// RuleRune is drawn across the full width above and below the text area.
const RuleRune = '-'

// Renderer paints the whole screen from an engine snapshot.
type Renderer struct {
	backend backend.Backend
	path    string
	status  *statusline.StatusLine

	textStyle core.Style
	ruleStyle core.Style
}

// New creates a renderer for the file at path.
func New(b backend.Backend, path string) *Renderer {
	return &Renderer{
		backend:   b,
		path:      path,
		status:    statusline.New(path),
		textStyle: core.DefaultStyle(),
		ruleStyle: core.DefaultStyle(),
	}
}

// Title returns the terminal title for the file at path.
func Title(path string) string {
	return "pine || " + path
}

// Render repaints the screen and places the hardware cursor.
func (r *Renderer) Render(v engine.View) {
	width, height := r.backend.Size()
	area := TextArea(width, height)

	r.backend.Clear()

	r.status.Resize(width)
	r.status.SetModified(v.Modified)
	r.status.SetPosition(v.Row, v.Col)

	r.status.RenderHeader(r.backend, 0)
	r.drawRule(1, width)

	for i, line := range v.Lines {
		if i >= area.Height() {
			break
		}
		r.drawLine(area.Top+i, area.Left, area.Width(), line)
	}

	if hasFooter(height) {
		r.drawRule(height-2, width)
		r.status.RenderFooter(r.backend, height-1)
	}

	r.backend.SetTitle(Title(r.path))
	r.backend.ShowCursor(area.Left+v.CursorX, area.Top+v.CursorY)
	r.backend.Show()
}

func (r *Renderer) drawRule(row, width int) {
	r.backend.Fill(core.NewScreenRect(row, 0, row+1, width), core.NewStyledCell(RuleRune, r.ruleStyle))
}

// drawLine draws one rune per cell. Characters that cannot be shown in a
// single cell, such as tabs, are drawn as a blank. Wide characters are not
// supported: the cursor column is the rune index, so a double-width rune
// is overdrawn by the rune after it.
func (r *Renderer) drawLine(row, left, width int, line string) {
	x := 0
	for _, ch := range line {
		if x >= width {
			break
		}
		if !unicode.IsPrint(ch) {
			ch = ' '
		}
		r.backend.SetCell(left+x, row, core.NewStyledCell(ch, r.textStyle))
		x++
	}
}
