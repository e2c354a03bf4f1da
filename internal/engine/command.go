package engine

import "fmt"

// Kind identifies an editing or navigation command.
type Kind uint8

// Command kinds.
const (
	None Kind = iota
	InsertChar
	InsertTab
	Backspace
	Delete
	Enter
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	Home
	End
	PageUp
	PageDown
	Resize
	Quit
)

var kindNames = [...]string{
	None:       "none",
	InsertChar: "insert-char",
	InsertTab:  "insert-tab",
	Backspace:  "backspace",
	Delete:     "delete",
	Enter:      "enter",
	ArrowUp:    "up",
	ArrowDown:  "down",
	ArrowLeft:  "left",
	ArrowRight: "right",
	Home:       "home",
	End:        "end",
	PageUp:     "page-up",
	PageDown:   "page-down",
	Resize:     "resize",
	Quit:       "quit",
}

// String returns the command name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Command is a single discrete request to the engine.
type Command struct {
	Kind Kind

	// Rune is the character for InsertChar.
	Rune rune

	// Width and Height are the new text area size for Resize.
	Width, Height int
}

// NewCommand creates a command that carries no payload.
func NewCommand(kind Kind) Command {
	return Command{Kind: kind}
}

// InsertCommand creates an InsertChar command for r.
func InsertCommand(r rune) Command {
	return Command{Kind: InsertChar, Rune: r}
}

// ResizeCommand creates a Resize command for a text area of the given size.
func ResizeCommand(width, height int) Command {
	return Command{Kind: Resize, Width: width, Height: height}
}

// String returns a human-readable representation of the command.
func (c Command) String() string {
	switch c.Kind {
	case InsertChar:
		return fmt.Sprintf("%s(%q)", c.Kind, c.Rune)
	case Resize:
		return fmt.Sprintf("%s(%dx%d)", c.Kind, c.Width, c.Height)
	default:
		return c.Kind.String()
	}
}

// Result reports what a command changed.
type Result struct {
	// Redraw is true if the screen needs repainting.
	Redraw bool

	// Quit is true if the command asked the editor to shut down.
	Quit bool
}
