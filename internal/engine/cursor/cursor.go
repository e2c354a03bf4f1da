package cursor

import (
	"fmt"
)

// Cursor is the screen-space insertion point plus the sticky column.
// Cursor is an immutable value type.
type Cursor struct {
	x, y      int
	preferred int
}

// New creates a cursor at screen position (x, y) with the given preferred
// column.
func New(x, y, preferred int) Cursor {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if preferred < 0 {
		preferred = 0
	}
	return Cursor{x: x, y: y, preferred: preferred}
}

// X returns the screen column inside the text area.
func (c Cursor) X() int {
	return c.x
}

// Y returns the screen row inside the text area.
func (c Cursor) Y() int {
	return c.y
}

// Preferred returns the sticky column used by vertical moves.
func (c Cursor) Preferred() int {
	return c.preferred
}

// MoveTo returns a cursor at the given screen position, keeping the
// preferred column.
func (c Cursor) MoveTo(x, y int) Cursor {
	return New(x, y, c.preferred)
}

// WithPreferred returns a cursor with the preferred column replaced.
func (c Cursor) WithPreferred(col int) Cursor {
	return New(c.x, c.y, col)
}

// Column returns the column a vertical move should land on in a line of
// the given length.
func (c Cursor) Column(lineLen int) int {
	return min(c.preferred, lineLen)
}

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d,%d pref=%d)", c.x, c.y, c.preferred)
}
