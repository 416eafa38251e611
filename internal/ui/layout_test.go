package ui

import (
	"strings"
	"testing"
)

func TestLayoutSize(t *testing.T) {
	l := NewLayout(25, 25, 20)
	w, h := l.Size()
	if w != 524 || h != 564 {
		t.Fatalf("size = %dx%d, want 524x564", w, h)
	}
	if l.Board.Dx() != 500 || l.Board.Dy() != 500 {
		t.Fatalf("board = %v, want 500x500", l.Board)
	}

	narrow := NewLayout(3, 3, 10)
	if w, _ := narrow.Size(); w < narrow.Buttons[len(narrow.Buttons)-1].Rect.Max.X {
		t.Fatalf("window width %d cuts off the button bar", w)
	}
}

func TestClickButtons(t *testing.T) {
	l := NewLayout(25, 25, 20)
	want := []Action{ActionToggleRun, ActionRandom, ActionClear, ActionInfo}
	for i, b := range l.Buttons {
		c := b.Rect.Min.Add(b.Rect.Size().Div(2))
		if got := l.Click(c.X, c.Y, false); got.Action != want[i] {
			t.Fatalf("button %q resolved to %v, want %v", b.Label, got.Action, want[i])
		}
	}
}

func TestClickCells(t *testing.T) {
	l := NewLayout(25, 25, 20)
	cases := []struct {
		x, y     int
		row, col int
	}{
		{l.Board.Min.X, l.Board.Min.Y, 0, 0},
		{l.Board.Min.X + 19, l.Board.Min.Y + 19, 0, 0},
		{l.Board.Min.X + 20, l.Board.Min.Y, 0, 1},
		{l.Board.Min.X + 5*20 + 3, l.Board.Min.Y + 7*20 + 3, 7, 5},
		{l.Board.Max.X - 1, l.Board.Max.Y - 1, 24, 24},
	}
	for _, tc := range cases {
		hit := l.Click(tc.x, tc.y, false)
		if hit.Action != ActionToggleCell || hit.Row != tc.row || hit.Col != tc.col {
			t.Fatalf("click (%d,%d) = %+v, want cell (%d,%d)", tc.x, tc.y, hit, tc.row, tc.col)
		}
	}

	if hit := l.Click(l.Board.Max.X, l.Board.Max.Y, false); hit.Action != ActionNone {
		t.Fatalf("click past the board = %+v, want none", hit)
	}
}

func TestClickWithDialogOpen(t *testing.T) {
	l := NewLayout(25, 25, 20)
	closeBtn := l.DialogClose.Min.Add(l.DialogClose.Size().Div(2))
	if got := l.Click(closeBtn.X, closeBtn.Y, true); got.Action != ActionCloseInfo {
		t.Fatalf("close button = %+v, want close", got)
	}
	inside := l.Dialog.Min.Add(l.Dialog.Size().Div(2))
	if got := l.Click(inside.X, inside.Y, true); got.Action != ActionNone {
		t.Fatalf("click inside dialog = %+v, want none", got)
	}
	if got := l.Click(1, 1, true); got.Action != ActionCloseInfo {
		t.Fatalf("click outside dialog = %+v, want close", got)
	}
}

func TestRunLabel(t *testing.T) {
	if RunLabel(false) != "Start" || RunLabel(true) != "Stop" {
		t.Fatal("unexpected run labels")
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 10)
	want := []string{"the quick", "brown fox", "jumps over", "the lazy", "dog"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("Wrap = %q, want %q", lines, want)
	}
	for _, line := range Wrap(InfoText, NewLayout(25, 25, 20).DialogColumns()) {
		if len(line) > NewLayout(25, 25, 20).DialogColumns() {
			t.Fatalf("line %q exceeds dialog width", line)
		}
	}
	if got := Wrap("supercalifragilistic", 5); len(got) != 1 {
		t.Fatalf("long word split into %q", got)
	}
}
