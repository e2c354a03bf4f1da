package input

import (
	"unicode"

	"github.com/dshills/pine/internal/engine"
	"github.com/dshills/pine/internal/renderer/backend"
)

// LayoutFunc returns the size of the text area for a terminal of the given
// size.
type LayoutFunc func(width, height int) (textWidth, textHeight int)

// keyCommands maps special keys to the command they issue.
var keyCommands = map[backend.Key]engine.Kind{
	backend.KeyEnter:     engine.Enter,
	backend.KeyTab:       engine.InsertTab,
	backend.KeyBackspace: engine.Backspace,
	backend.KeyDelete:    engine.Delete,
	backend.KeyUp:        engine.ArrowUp,
	backend.KeyDown:      engine.ArrowDown,
	backend.KeyLeft:      engine.ArrowLeft,
	backend.KeyRight:     engine.ArrowRight,
	backend.KeyHome:      engine.Home,
	backend.KeyEnd:       engine.End,
	backend.KeyPageUp:    engine.PageUp,
	backend.KeyPageDown:  engine.PageDown,
	backend.KeyCtrlC:     engine.Quit,
}

// Translator converts backend events to engine commands.
type Translator struct {
	layout LayoutFunc
}

// NewTranslator creates a translator. Resize events are converted to the
// text area size reported by layout; a nil layout passes the terminal size
// through unchanged.
func NewTranslator(layout LayoutFunc) *Translator {
	if layout == nil {
		layout = func(w, h int) (int, int) { return w, h }
	}
	return &Translator{layout: layout}
}

// Translate returns the command for ev. ok is false for events the editor
// ignores.
func (t *Translator) Translate(ev backend.Event) (cmd engine.Command, ok bool) {
	switch ev.Type {
	case backend.EventKey:
		return translateKey(ev)
	case backend.EventResize:
		w, h := t.layout(ev.Width, ev.Height)
		return engine.ResizeCommand(w, h), true
	case backend.EventInterrupt:
		return engine.NewCommand(engine.Quit), true
	default:
		return engine.Command{}, false
	}
}

func translateKey(ev backend.Event) (engine.Command, bool) {
	if ev.Key == backend.KeyRune {
		if !isInsertable(ev) {
			return engine.Command{}, false
		}
		return engine.InsertCommand(ev.Rune), true
	}

	kind, ok := keyCommands[ev.Key]
	if !ok {
		return engine.Command{}, false
	}
	return engine.NewCommand(kind), true
}

// isInsertable returns true for printable characters typed without Ctrl
// or Alt. Shift is part of the character.
func isInsertable(ev backend.Event) bool {
	if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) {
		return false
	}
	return unicode.IsPrint(ev.Rune)
}
