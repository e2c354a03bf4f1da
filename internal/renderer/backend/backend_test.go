package backend

import (
	"testing"

	"github.com/dshills/pine/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewStyledCell('X', core.DefaultStyle().Bold())
	b.SetCell(10, 5, cell)

	if got := b.GetCell(10, 5); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	if empty := b.GetCell(-1, 0); empty != core.EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendFillAndRow(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	b.Fill(core.NewScreenRect(1, -2, 2, 20), core.NewCell('-'))

	if got := b.Row(1); got != "----------" {
		t.Errorf("expected full rule, got %q", got)
	}
	if got := b.Row(0); got != "" {
		t.Errorf("expected blank row, got %q", got)
	}
	if got := b.Row(5); got != "" {
		t.Errorf("expected empty string off screen, got %q", got)
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.SetCell(10, 10, core.NewCell('X'))
	b.Clear()

	if got := b.GetCell(10, 10); got != core.EmptyCell() {
		t.Error("clear should reset all cells")
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(15, 10)
	x, y, visible := b.CursorPosition()
	if x != 15 || y != 10 || !visible {
		t.Errorf("cursor position: expected (15, 10, true), got (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible = b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendTitleAndShow(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.SetTitle("pine || notes.txt")
	b.Show()
	b.Show()

	if b.Title() != "pine || notes.txt" {
		t.Errorf("unexpected title %q", b.Title())
	}
	if b.ShowCount() != 2 {
		t.Errorf("expected 2 shows, got %d", b.ShowCount())
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(100, 40)

	w, h := b.Size()
	if w != 100 || h != 40 {
		t.Errorf("expected size (100, 40), got (%d, %d)", w, h)
	}

	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("expected resize event, got %+v", ev)
	}
}

func TestNullBackendEventQueue(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(KeyEvent(KeyEnter))
	b.PostEvent(RuneEvent('a'))

	if got := b.PollEvent(); got.Type != EventKey || got.Key != KeyEnter {
		t.Errorf("expected enter key event, got %+v", got)
	}
	if got := b.PollEvent(); got.Key != KeyRune || got.Rune != 'a' {
		t.Errorf("expected rune event, got %+v", got)
	}

	// An empty queue reports an interrupt instead of blocking.
	if got := b.PollEvent(); got.Type != EventInterrupt {
		t.Errorf("expected interrupt on empty queue, got %+v", got)
	}
}

func TestNullBackendShutdown(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Shutdown()
	b.Shutdown()

	if !b.IsShutdown() {
		t.Error("expected shutdown")
	}
}

func TestModMaskHas(t *testing.T) {
	mod := ModShift | ModCtrl

	if !mod.Has(ModShift) {
		t.Error("should have shift")
	}
	if !mod.Has(ModCtrl) {
		t.Error("should have ctrl")
	}
	if mod.Has(ModAlt) {
		t.Error("should not have alt")
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventNone, "none"},
		{EventKey, "key"},
		{EventResize, "resize"},
		{EventInterrupt, "interrupt"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
