package core

import (
	"testing"
)

func TestStyleBold(t *testing.T) {
	s := DefaultStyle()
	if s.Attributes.Has(AttrBold) {
		t.Error("DefaultStyle should not be bold")
	}

	bold := s.Bold()
	if !bold.Attributes.Has(AttrBold) {
		t.Errorf("expected bold, got %v", bold.Attributes)
	}
	if s.Attributes != AttrNone {
		t.Error("Bold should not modify the receiver")
	}
}

func TestCell(t *testing.T) {
	c := NewCell('a')
	if c.Rune != 'a' || c.Style != DefaultStyle() {
		t.Errorf("unexpected cell %+v", c)
	}
	if EmptyCell() != NewCell(' ') {
		t.Error("EmptyCell should be a default-styled space")
	}
	if c == NewStyledCell('a', DefaultStyle().Bold()) {
		t.Error("cells with different styles should differ")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{' ', 1},
		{'中', 2},
		{'\t', 0},
	}

	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestStringFromCells(t *testing.T) {
	cells := []Cell{NewCell('h'), NewCell('é'), {}, NewCell('l')}
	if got := StringFromCells(cells); got != "hél" {
		t.Errorf("expected %q, got %q", "hél", got)
	}
}

func TestScreenRect(t *testing.T) {
	r := NewScreenRect(2, 0, 22, 80)

	if r.Width() != 80 || r.Height() != 20 {
		t.Errorf("expected 80x20, got %dx%d", r.Width(), r.Height())
	}

	inverted := NewScreenRect(5, 5, 3, 3)
	if inverted.Width() != 0 || inverted.Height() != 0 {
		t.Errorf("inverted rect should be empty, got %dx%d", inverted.Width(), inverted.Height())
	}
}
