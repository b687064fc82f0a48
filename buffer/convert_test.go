package buffer

import "testing"

func TestRuneOffset_RoundTrip(t *testing.T) {
	b := New("héllo\n世界\n")
	for off := 0; off <= 9; off++ {
		p, ok := b.PosFromRuneOffset(off, OffsetError)
		if !ok {
			t.Fatalf("pos from %d: not ok", off)
		}
		back, ok := b.RuneOffsetFromPos(p, OffsetError)
		if !ok || back != off {
			t.Fatalf("offset from %v: got %d,%v, want %d", p, back, ok, off)
		}
	}
	if _, ok := b.PosFromRuneOffset(10, OffsetError); ok {
		t.Fatalf("expected offset 10 rejected")
	}
	if got, _ := b.PosFromRuneOffset(99, OffsetClamp); got != (Pos{Row: 2, Col: 0}) {
		t.Fatalf("clamped: got %v", got)
	}
}

func TestRuneOffset_Positions(t *testing.T) {
	b := New("ab\ncd")
	cases := []struct {
		off  int
		want Pos
	}{
		{0, Pos{Row: 0, Col: 0}},
		{2, Pos{Row: 0, Col: 2}},
		{3, Pos{Row: 1, Col: 0}},
		{5, Pos{Row: 1, Col: 2}},
	}
	for _, tc := range cases {
		got, ok := b.PosFromRuneOffset(tc.off, OffsetError)
		if !ok || got != tc.want {
			t.Fatalf("offset %d: got %v,%v, want %v", tc.off, got, ok, tc.want)
		}
	}
}

func TestByteOffset_RejectsMidRune(t *testing.T) {
	b := New("é!")
	if _, ok := b.PosFromByteOffset(1, OffsetError); ok {
		t.Fatalf("expected mid-rune offset rejected")
	}
	got, ok := b.PosFromByteOffset(2, OffsetError)
	if !ok || got != (Pos{Row: 0, Col: 1}) {
		t.Fatalf("offset 2: got %v,%v", got, ok)
	}
	off, ok := b.ByteOffsetFromPos(Pos{Row: 0, Col: 2}, OffsetError)
	if !ok || off != 3 {
		t.Fatalf("byte offset: got %d,%v, want 3", off, ok)
	}
}

func TestOffsetFromPos_ErrorModeRejectsOutOfRange(t *testing.T) {
	b := New("ab")
	if _, ok := b.RuneOffsetFromPos(Pos{Row: 0, Col: 3}, OffsetError); ok {
		t.Fatalf("expected rejection")
	}
	off, ok := b.RuneOffsetFromPos(Pos{Row: 0, Col: 3}, OffsetClamp)
	if !ok || off != 2 {
		t.Fatalf("clamped: got %d,%v, want 2", off, ok)
	}
}
