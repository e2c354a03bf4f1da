package buffer

import "fmt"

// Point represents a row and column position in the buffer.
// Both Row and Col are 0-indexed; Col counts runes.
type Point struct {
	Row int
	Col int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}
