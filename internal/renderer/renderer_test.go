package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/pine/internal/engine"
	"github.com/dshills/pine/internal/renderer/backend"
)

func setup(t *testing.T, width, height int, content string) (*backend.NullBackend, *Renderer, *engine.Engine) {
	t.Helper()

	b := backend.NewNullBackend(width, height)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	w, h := TextAreaSize(width, height)
	e := engine.New(engine.WithContent(content), engine.WithSize(w, h))

	return b, New(b, "f.txt"), e
}

func TestTextArea(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		top, bottom   int
		areaW         int
	}{
		{"normal", 80, 24, 2, 22, 80},
		{"minimum with footer", 10, 5, 2, 3, 10},
		{"too short for footer", 10, 3, 2, 3, 10},
		{"degenerate", 0, 0, 2, 3, 1},
	}

	for _, tt := range tests {
		area := TextArea(tt.width, tt.height)
		if area.Top != tt.top || area.Bottom != tt.bottom || area.Width() != tt.areaW {
			t.Errorf("%s: unexpected area %+v", tt.name, area)
		}
	}

	if w, h := TextAreaSize(80, 24); w != 80 || h != 20 {
		t.Errorf("expected 80x20, got %dx%d", w, h)
	}
}

func TestRenderLayout(t *testing.T) {
	b, r, e := setup(t, 20, 8, "hello\n\tx\nlast")

	r.Render(e.Snapshot())

	rule := strings.Repeat("-", 20)
	want := []string{
		"pine: f.txt",
		rule,
		"hello",
		" x",
		"last",
		"",
		rule,
		"save and exit: ct1:1",
	}
	for y, line := range want {
		if got := b.Row(y); got != line {
			t.Errorf("row %d: expected %q, got %q", y, line, got)
		}
	}

	if b.Title() != "pine || f.txt" {
		t.Errorf("unexpected title %q", b.Title())
	}
	if x, y, visible := b.CursorPosition(); x != 0 || y != 2 || !visible {
		t.Errorf("expected cursor (0, 2), got (%d, %d, %v)", x, y, visible)
	}
	if b.ShowCount() != 1 {
		t.Errorf("expected one frame, got %d", b.ShowCount())
	}
}

func TestRenderFollowsCursor(t *testing.T) {
	b, r, e := setup(t, 10, 6, strings.Repeat("x", 15)+"\nab")

	for i := 0; i < 12; i++ {
		e.Apply(engine.NewCommand(engine.ArrowRight))
	}
	e.Apply(engine.InsertCommand('!'))
	r.Render(e.Snapshot())

	if got := b.Row(0); got != "pine: f.tx" {
		t.Errorf("unexpected header %q", got)
	}
	if got := b.Row(2); got != "xxxxxxxx!x" {
		t.Errorf("unexpected first line %q", got)
	}
	if x, y, _ := b.CursorPosition(); x != 9 || y != 2 {
		t.Errorf("expected cursor (9, 2), got (%d, %d)", x, y)
	}
	if got := b.Row(5); !strings.HasSuffix(got, "1:14") {
		t.Errorf("expected position 1:14 in footer, got %q", got)
	}
}

func TestRenderOneCellPerRune(t *testing.T) {
	b, r, e := setup(t, 20, 6, "中文a")

	e.Apply(engine.NewCommand(engine.ArrowRight))
	e.Apply(engine.NewCommand(engine.ArrowRight))
	r.Render(e.Snapshot())

	if got := b.Row(2); got != "中文a" {
		t.Errorf("expected one cell per rune, got %q", got)
	}
	if x, y, _ := b.CursorPosition(); x != 2 || y != 2 {
		t.Errorf("expected cursor at rune index (2, 2), got (%d, %d)", x, y)
	}
}

func TestRenderModifiedMarker(t *testing.T) {
	b, r, e := setup(t, 40, 6, "abc")

	e.Apply(engine.InsertCommand('z'))
	r.Render(e.Snapshot())

	if got := b.Row(0); got != "pine: f.txt [+]" {
		t.Errorf("expected modified header, got %q", got)
	}

	e.MarkSaved()
	r.Render(e.Snapshot())

	if got := b.Row(0); got != "pine: f.txt" {
		t.Errorf("expected clean header, got %q", got)
	}
}

func TestRenderShortTerminal(t *testing.T) {
	b, r, e := setup(t, 10, 3, "one\ntwo")

	r.Render(e.Snapshot())

	if got := b.Row(2); got != "one" {
		t.Errorf("expected text on row 2, got %q", got)
	}
}

func TestRenderAfterResize(t *testing.T) {
	b, r, e := setup(t, 20, 8, "a\nb\nc\nd\ne\nf")
	for i := 0; i < 5; i++ {
		e.Apply(engine.NewCommand(engine.ArrowDown))
	}

	b.Resize(20, 6)
	w, h := TextAreaSize(b.Size())
	e.Apply(engine.ResizeCommand(w, h))
	r.Render(e.Snapshot())

	if got := b.Row(2); got != "e" {
		t.Errorf("expected row 2 to show %q, got %q", "e", got)
	}
	if got := b.Row(3); got != "f" {
		t.Errorf("expected row 3 to show %q, got %q", "f", got)
	}
	if _, y, _ := b.CursorPosition(); y != 3 {
		t.Errorf("expected cursor on screen row 3, got %d", y)
	}
}
