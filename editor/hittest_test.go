package editor

import (
	"testing"

	"github.com/iw2rmb/foldwrap/buffer"
	"github.com/iw2rmb/foldwrap/wrap"
)

func TestHitTest_NoLineNums_ClampsAndYOffset(t *testing.T) {
	m := New(Config{Text: "abc\ndef\nghi"})
	m.viewport.YOffset = 1

	if got := m.screenToDocPos(2, 0); got != pos(1, 2) {
		t.Fatalf("pos at (2,0) with yoffset=1: got %v, want %v", got, pos(1, 2))
	}

	// Clamp x past end of line.
	if got := m.screenToDocPos(999, 0); got != pos(1, 3) {
		t.Fatalf("pos at (999,0): got %v, want %v", got, pos(1, 3))
	}

	// Rows past the end map to the document end.
	if got := m.screenToDocPos(0, 10); got != pos(2, 3) {
		t.Fatalf("pos at (0,10): got %v, want %v", got, pos(2, 3))
	}
}

func TestHitTest_WithLineNums_GutterMapsToStartOfLine(t *testing.T) {
	m := New(Config{Text: "abcd\nefgh", ShowLineNums: true})

	// 2 lines => 1 digit + 1 marker cell => width 2.
	if got := m.screenToDocPos(0, 0); got != pos(0, 0) {
		t.Fatalf("gutter click x=0: got %v, want %v", got, pos(0, 0))
	}
	if got := m.screenToDocPos(1, 0); got != pos(0, 0) {
		t.Fatalf("gutter click x=1: got %v, want %v", got, pos(0, 0))
	}

	// First text cell is x=2.
	if got := m.screenToDocPos(2, 0); got != pos(0, 0) {
		t.Fatalf("first cell x=2: got %v, want %v", got, pos(0, 0))
	}
	if got := m.screenToDocPos(3, 0); got != pos(0, 1) {
		t.Fatalf("second cell x=3: got %v, want %v", got, pos(0, 1))
	}
}

func TestHitTest_Placeholder(t *testing.T) {
	m := New(Config{Text: "f {\n\tx\n}\nz"})
	if _, err := m.Session().Folds().Add("...", buffer.Range{Start: pos(0, 3), End: pos(2, 0)}); err != nil {
		t.Fatalf("add fold: %v", err)
	}
	m = m.SetSize(20, 4)

	cases := []struct {
		x    int
		want buffer.Pos
	}{
		{2, pos(0, 2)},
		{3, pos(0, 3)},
		{5, pos(0, 3)},
		{6, pos(2, 0)},
		{7, pos(2, 1)},
		{50, pos(2, 1)},
	}
	for _, tc := range cases {
		if got := m.screenToDocPos(tc.x, 0); got != tc.want {
			t.Fatalf("x=%d on folded row: got %v, want %v", tc.x, got, tc.want)
		}
	}
	if got := m.screenToDocPos(0, 1); got != pos(3, 0) {
		t.Fatalf("row below fold: got %v, want %v", got, pos(3, 0))
	}

	x, y, ok := m.docToScreenPos(pos(1, 1))
	if !ok || x != 3 || y != 0 {
		t.Fatalf("hidden pos: got (x=%d,y=%d,ok=%v), want (3,0,true)", x, y, ok)
	}
}

func TestHitTest_WrappedRows(t *testing.T) {
	m := New(Config{Text: "one two three four", WrapMode: wrap.WrapCode, ShowLineNums: true})
	m = m.SetSize(10, 4)

	// Text width 8: "one two ", "three ", "four".
	if got := m.screenToDocPos(2, 1); got != pos(0, 8) {
		t.Fatalf("start of second row: got %v, want %v", got, pos(0, 8))
	}
	if got := m.screenToDocPos(9, 1); got != pos(0, 13) {
		t.Fatalf("past end of second row: got %v, want %v", got, pos(0, 13))
	}

	x, y, ok := m.docToScreenPos(pos(0, 16))
	if !ok || x != 4 || y != 2 {
		t.Fatalf("third row: got (x=%d,y=%d,ok=%v), want (4,2,true)", x, y, ok)
	}
}
