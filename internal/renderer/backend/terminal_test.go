package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/pine/internal/renderer/core"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	term := newTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(20, 5)
	t.Cleanup(term.Shutdown)

	return term, screen
}

func TestTerminalDrawsCells(t *testing.T) {
	term, screen := newSimTerminal(t)

	term.SetCell(0, 0, core.NewCell('p'))
	term.SetCell(1, 0, core.NewStyledCell('i', core.DefaultStyle().Bold()))
	term.Fill(core.NewScreenRect(1, 0, 2, 20), core.NewCell('-'))
	term.Show()

	cells, width, _ := screen.GetContents()
	if got := cells[0].Runes; len(got) != 1 || got[0] != 'p' {
		t.Errorf("expected 'p' at (0,0), got %q", got)
	}
	if _, _, attrs := cells[1].Style.Decompose(); attrs&tcell.AttrBold == 0 {
		t.Error("expected bold at (1,0)")
	}
	for x := 0; x < width; x++ {
		if got := cells[width+x].Runes; len(got) != 1 || got[0] != '-' {
			t.Fatalf("expected rule at (%d,1), got %q", x, got)
		}
	}
}

func TestTerminalCursor(t *testing.T) {
	term, screen := newSimTerminal(t)

	term.ShowCursor(3, 2)
	term.Show()

	x, y, visible := screen.GetCursor()
	if x != 3 || y != 2 || !visible {
		t.Errorf("expected cursor (3, 2, true), got (%d, %d, %v)", x, y, visible)
	}
}

func TestTerminalPollKey(t *testing.T) {
	term, screen := newSimTerminal(t)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ev := term.PollEvent()
	if ev.Type != EventKey || ev.Key != KeyRune || ev.Rune != 'q' {
		t.Errorf("expected rune event, got %+v", ev)
	}

	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	ev = term.PollEvent()
	if ev.Key != KeyCtrlC {
		t.Errorf("expected ctrl+c, got %+v", ev)
	}
}

func TestTerminalPostInterrupt(t *testing.T) {
	term, _ := newSimTerminal(t)

	term.PostEvent(Event{Type: EventInterrupt})

	if ev := term.PollEvent(); ev.Type != EventInterrupt {
		t.Errorf("expected interrupt, got %+v", ev)
	}
}

func TestTerminalPostBeforeInit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := newTerminalWithScreen(screen)

	term.PostEvent(Event{Type: EventInterrupt})

	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(term.Shutdown)

	if ev := term.PollEvent(); ev.Type != EventInterrupt {
		t.Errorf("expected interrupt posted before Init, got %+v", ev)
	}
}

func TestTerminalShutdownTwice(t *testing.T) {
	term, _ := newSimTerminal(t)

	term.Shutdown()
	term.Shutdown()
}

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Event
	}{
		{"resize", tcell.NewEventResize(100, 30), ResizeEvent(100, 30)},
		{"interrupt", tcell.NewEventInterrupt(nil), Event{Type: EventInterrupt}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyEvent(KeyEnter)},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), KeyEvent(KeyBackspace)},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), KeyEvent(KeyBackspace)},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), KeyEvent(KeyPageDown)},
		{"focus", tcell.NewEventFocus(true), Event{Type: EventNone}},
	}

	for _, tt := range tests {
		got := convertEvent(tt.ev)
		if got.Type != tt.want.Type || got.Key != tt.want.Key ||
			got.Width != tt.want.Width || got.Height != tt.want.Height {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, got)
		}
	}
}

func TestKeyConversionRoundTrip(t *testing.T) {
	keys := []Key{
		KeyRune, KeyEscape, KeyEnter, KeyTab, KeyBackspace, KeyDelete,
		KeyHome, KeyEnd, KeyPageUp, KeyPageDown,
		KeyUp, KeyDown, KeyLeft, KeyRight, KeyCtrlC,
	}

	for _, k := range keys {
		if got := convertKey(convertToTcellKey(k)); got != k {
			t.Errorf("round trip of %d gave %d", k, got)
		}
	}
}

func TestConvertStyle(t *testing.T) {
	tests := []struct {
		name  string
		style core.Style
		bold  bool
	}{
		{"default", core.DefaultStyle(), false},
		{"bold", core.DefaultStyle().Bold(), true},
	}

	for _, tt := range tests {
		fg, bg, attrs := convertStyle(tt.style).Decompose()
		if fg != tcell.ColorDefault || bg != tcell.ColorDefault {
			t.Errorf("%s: expected default colors, got %v/%v", tt.name, fg, bg)
		}
		if got := attrs&tcell.AttrBold != 0; got != tt.bold {
			t.Errorf("%s: bold = %v, want %v", tt.name, got, tt.bold)
		}
	}
}
