package renderer

import "github.com/dshills/pine/internal/renderer/core"

// Rows reserved above and below the text area: a bar and a rule each.
const (
	headerRows = 2
	footerRows = 2
)

// ScreenRect represents a rectangular region on screen.
// Re-exported from core package.
type ScreenRect = core.ScreenRect

// TextArea returns the region of a width x height terminal that shows
// buffer content. It is never smaller than one cell.
func TextArea(width, height int) ScreenRect {
	bottom := max(height-footerRows, headerRows+1)
	return core.NewScreenRect(headerRows, 0, bottom, max(width, 1))
}

// TextAreaSize returns the width and height of TextArea.
func TextAreaSize(width, height int) (int, int) {
	area := TextArea(width, height)
	return area.Width(), area.Height()
}

// hasFooter returns true if the terminal is tall enough to draw the bottom
// rule and footer without overlapping the text area.
func hasFooter(height int) bool {
	return height-footerRows >= headerRows+1
}
