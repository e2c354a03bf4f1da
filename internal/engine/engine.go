package engine

import (
	"github.com/dshills/pine/internal/engine/buffer"
	"github.com/dshills/pine/internal/engine/cursor"
	"github.com/dshills/pine/internal/renderer/viewport"
)

// Point is a buffer position.
type Point = buffer.Point

// Engine owns the document, the viewport and the cursor.
type Engine struct {
	buf *buffer.Buffer
	vp  *viewport.Viewport
	cur cursor.Cursor

	tabWidth      int
	savedRevision uint64

	// Initial configuration
	initContent string
	initWidth   int
	initHeight  int
}

// New creates an engine with the cursor at the start of the document.
func New(opts ...Option) *Engine {
	e := &Engine{
		tabWidth:   DefaultTabWidth,
		initWidth:  DefaultWidth,
		initHeight: DefaultHeight,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.NewFromString(e.initContent)
	e.vp = viewport.New(e.initWidth, e.initHeight)
	e.cur = cursor.New(0, 0, 0)
	e.savedRevision = e.buf.Revision()

	return e
}

// Read Operations

// Text returns the full document joined with newlines.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// Lines returns a copy of every line.
func (e *Engine) Lines() []string {
	return e.buf.Lines()
}

// LineCount returns the number of lines in the document.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// Position returns the buffer position denoted by the cursor.
func (e *Engine) Position() Point {
	row, col := e.pos()
	return Point{Row: row, Col: col}
}

// Cursor returns the screen-space cursor.
func (e *Engine) Cursor() cursor.Cursor {
	return e.cur
}

// Viewport returns a copy of the current viewport.
func (e *Engine) Viewport() *viewport.Viewport {
	return e.vp.Clone()
}

// TabWidth returns the number of spaces inserted by InsertTab.
func (e *Engine) TabWidth() int {
	return e.tabWidth
}

// Modified returns true if the document changed since load or the last
// MarkSaved.
func (e *Engine) Modified() bool {
	return e.buf.Revision() != e.savedRevision
}

// MarkSaved records the current document as saved.
func (e *Engine) MarkSaved() {
	e.savedRevision = e.buf.Revision()
}

// Apply executes a single command.
func (e *Engine) Apply(cmd Command) Result {
	switch cmd.Kind {
	case InsertChar:
		e.insertChar(cmd.Rune)
	case InsertTab:
		for i := 0; i < e.tabWidth; i++ {
			e.insertChar(' ')
		}
	case Backspace:
		return Result{Redraw: e.backspace()}
	case Delete:
		return Result{Redraw: e.deleteForward()}
	case Enter:
		e.enter()
	case ArrowUp:
		return Result{Redraw: e.vertical(-1)}
	case ArrowDown:
		return Result{Redraw: e.vertical(1)}
	case ArrowLeft:
		return Result{Redraw: e.left()}
	case ArrowRight:
		return Result{Redraw: e.right()}
	case Home:
		e.moveToColumn(0)
		e.remember()
	case End:
		row, _ := e.pos()
		e.moveToColumn(e.buf.LineLength(row))
		e.remember()
	case PageUp:
		return Result{Redraw: e.vertical(-e.vp.Height())}
	case PageDown:
		return Result{Redraw: e.vertical(e.vp.Height())}
	case Resize:
		e.resize(cmd.Width, cmd.Height)
	case Quit:
		return Result{Quit: true}
	default:
		return Result{}
	}

	return Result{Redraw: true}
}

// pos returns the buffer position of the cursor.
func (e *Engine) pos() (row, col int) {
	return e.vp.ScreenToBuffer(e.cur.X(), e.cur.Y())
}

// moveX moves the cursor dx columns, scrolling as needed.
func (e *Engine) moveX(dx int) {
	x := e.vp.MoveX(e.cur.X(), dx)
	e.cur = e.cur.MoveTo(x, e.cur.Y())
}

// moveY moves the cursor dy rows, scrolling as needed.
func (e *Engine) moveY(dy int) {
	y := e.vp.MoveY(e.cur.Y(), dy, e.buf.LineCount())
	e.cur = e.cur.MoveTo(e.cur.X(), y)
}

// moveToColumn moves the cursor horizontally to buffer column col.
func (e *Engine) moveToColumn(col int) {
	_, cur := e.pos()
	e.moveX(col - cur)
}

// remember stores the current column as the preferred column.
func (e *Engine) remember() {
	_, col := e.pos()
	e.cur = e.cur.WithPreferred(col)
}

func (e *Engine) insertChar(r rune) {
	row, col := e.pos()
	e.buf.InsertChar(row, col, r)
	e.moveX(1)
	e.remember()
}

func (e *Engine) backspace() bool {
	row, col := e.pos()

	switch {
	case col > 0:
		e.buf.DeleteChar(row, col-1)
		e.moveX(-1)
	case row > 0:
		prevLen := e.buf.LineLength(row - 1)
		e.buf.MergeWithPrevious(row)
		e.moveX(prevLen - col)
		e.moveY(-1)
	default:
		return false
	}

	e.remember()
	return true
}

func (e *Engine) deleteForward() bool {
	row, col := e.pos()

	switch {
	case col < e.buf.LineLength(row):
		e.buf.DeleteChar(row, col)
	case row < e.buf.LineCount()-1:
		e.buf.MergeWithPrevious(row + 1)
	default:
		return false
	}

	return true
}

func (e *Engine) enter() {
	row, col := e.pos()
	e.buf.SplitLine(row, col)

	e.vp.ResetHorizontal()
	e.cur = cursor.New(0, e.cur.Y(), 0)
	e.moveY(1)
}

// vertical moves up (negative) or down (positive) by up to |n| rows,
// landing on the preferred column clamped to the new line.
func (e *Engine) vertical(n int) bool {
	row, _ := e.pos()

	target := min(max(row+n, 0), e.buf.LineCount()-1)
	if target == row {
		return false
	}

	e.moveY(target - row)
	e.moveToColumn(e.cur.Column(e.buf.LineLength(target)))
	return true
}

func (e *Engine) left() bool {
	_, col := e.pos()
	if col == 0 {
		return false
	}

	e.moveX(-1)
	e.remember()
	return true
}

func (e *Engine) right() bool {
	row, col := e.pos()
	if col >= e.buf.LineLength(row) {
		return false
	}

	e.moveX(1)
	e.remember()
	return true
}

func (e *Engine) resize(width, height int) {
	row, col := e.pos()

	e.vp.Resize(width, height)
	x, y := e.vp.Reveal(row, col, e.buf.LineCount(), e.buf.LineLength(row))
	e.cur = e.cur.MoveTo(x, y)
}
