package buffer

import (
	"reflect"
	"testing"
)

func TestNew_SplitsLines(t *testing.T) {
	b := New("ab\n\ncd")
	if got, want := b.LineCount(), 3; got != want {
		t.Fatalf("line count: got %d, want %d", got, want)
	}
	if got, want := b.Lines(0, 10), []string{"ab", "", "cd"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
	if got, want := b.Text(), "ab\n\ncd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestNew_EmptyHasOneRow(t *testing.T) {
	b := New("")
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count: got %d, want 1", got)
	}
	if got, want := b.EndPos(), (Pos{}); got != want {
		t.Fatalf("end: got %v, want %v", got, want)
	}
}

func TestBuffer_LineOutOfRange(t *testing.T) {
	b := New("x")
	if got := b.Line(-1); got != "" {
		t.Fatalf("line(-1): got %q", got)
	}
	if got := b.LineLen(5); got != 0 {
		t.Fatalf("lineLen(5): got %d", got)
	}
}

func TestBuffer_ClampPos(t *testing.T) {
	b := New("héllo\nx")
	cases := []struct {
		in, want Pos
	}{
		{Pos{Row: -1, Col: 3}, Pos{Row: 0, Col: 3}},
		{Pos{Row: 0, Col: 9}, Pos{Row: 0, Col: 5}},
		{Pos{Row: 9, Col: 9}, Pos{Row: 1, Col: 1}},
		{Pos{Row: 1, Col: -2}, Pos{Row: 1, Col: 0}},
	}
	for _, tc := range cases {
		if got := b.ClampPos(tc.in); got != tc.want {
			t.Fatalf("clamp %v: got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBuffer_TextRange(t *testing.T) {
	b := New("abc\ndef\nghi")
	r := Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 2, Col: 1}}
	if got, want := b.TextRange(r), "bc\ndef\ng"; got != want {
		t.Fatalf("text range: got %q, want %q", got, want)
	}
	rev := Range{Start: r.End, End: r.Start}
	if got, want := b.TextRange(rev), "bc\ndef\ng"; got != want {
		t.Fatalf("reversed text range: got %q, want %q", got, want)
	}
}
