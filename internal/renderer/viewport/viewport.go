// Package viewport provides the scroll model for the text area.
//
// A Viewport is the rectangle of the buffer currently visible on screen. It
// owns the scroll offsets and is the only place where screen-space and
// buffer-space coordinates are translated into each other. Scrolling is
// reactive: a cursor move that would leave the rectangle shifts the offset
// by exactly the overflow and clamps the screen position to the edge.
package viewport

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	// Position in buffer (first visible line and column)
	topLine    int
	leftColumn int

	// Size in screen cells
	width  int
	height int
}

// New creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func New(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	return v.height
}

// TopLine returns the first visible line (the row offset).
func (v *Viewport) TopLine() int {
	return v.topLine
}

// LeftColumn returns the first visible column (the column offset).
func (v *Viewport) LeftColumn() int {
	return v.leftColumn
}

// Resize updates the viewport size. Offsets are left unchanged; callers
// clamp them afterwards with Reveal.
// Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	v.width = width
	v.height = height
}

// MoveX moves screen column x by dx and returns the new screen column.
//
// If the tentative column passes the right edge, the column offset grows by
// the overflow and the result is width-1. If it passes the left edge while
// the view is scrolled, the offset shrinks by the deficit and the result is
// 0. Either way the buffer column changes by the full dx. The offset never
// goes below 0.
func (v *Viewport) MoveX(x, dx int) int {
	nx := x + dx

	switch {
	case nx >= v.width:
		v.leftColumn += nx - (v.width - 1)
		nx = v.width - 1
	case nx < 0:
		v.leftColumn += nx
		nx = 0
		if v.leftColumn < 0 {
			v.leftColumn = 0
		}
	}

	return nx
}

// MoveY moves screen row y by dy and returns the new screen row, scrolling
// vertically by the same rules as MoveX. The target row is first clamped to
// the lineCount lines of the document, so the view never moves past the
// last line.
func (v *Viewport) MoveY(y, dy, lineCount int) int {
	if lineCount > 0 {
		row := v.topLine + y
		target := min(max(row+dy, 0), lineCount-1)
		dy = target - row
	}

	ny := y + dy

	switch {
	case ny >= v.height:
		v.topLine += ny - (v.height - 1)
		ny = v.height - 1
	case ny < 0:
		v.topLine += ny
		ny = 0
		if v.topLine < 0 {
			v.topLine = 0
		}
	}

	return ny
}

// ResetHorizontal scrolls back to the first column.
func (v *Viewport) ResetHorizontal() {
	v.leftColumn = 0
}

// Reveal clamps the offsets after a resize or any other change that may
// leave the cursor outside the rectangle.
//
// Offsets that now show past the end of the content (lineCount lines, or
// lineLen+1 columns on the cursor line) are pulled back, then shifted just
// enough to keep (row, col) visible. It returns the cursor's screen
// position.
func (v *Viewport) Reveal(row, col, lineCount, lineLen int) (x, y int) {
	if maxTop := lineCount - v.height; v.topLine > maxTop {
		v.topLine = max(maxTop, 0)
	}
	if maxLeft := lineLen + 1 - v.width; v.leftColumn > maxLeft {
		v.leftColumn = max(maxLeft, 0)
	}

	if row < v.topLine {
		v.topLine = row
	} else if row >= v.topLine+v.height {
		v.topLine = row - v.height + 1
	}

	if col < v.leftColumn {
		v.leftColumn = col
	} else if col >= v.leftColumn+v.width {
		v.leftColumn = col - v.width + 1
	}

	return col - v.leftColumn, row - v.topLine
}

// ScreenToBuffer converts screen coordinates to buffer coordinates.
func (v *Viewport) ScreenToBuffer(x, y int) (row, col int) {
	return v.topLine + y, v.leftColumn + x
}

// VisibleRows returns the half-open range of buffer rows on screen.
func (v *Viewport) VisibleRows(lineCount int) (start, end int) {
	start = v.topLine
	end = min(v.topLine+v.height, lineCount)
	if end < start {
		end = start
	}
	return start, end
}

// Clone creates a copy of the viewport state.
func (v *Viewport) Clone() *Viewport {
	c := *v
	return &c
}
