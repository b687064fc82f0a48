package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/foldwrap/buffer"
	"github.com/iw2rmb/foldwrap/wrap"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

const funcSrc = "func f() {\n\tx\n}\nend"

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.Buffer().Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.Cursor(); got != pos(0, 2) {
		t.Fatalf("cursor after insert: got %v, want %v", got, pos(0, 2))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.Cursor(); got != pos(0, 1) {
		t.Fatalf("cursor after backspace: got %v, want %v", got, pos(0, 1))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Buffer().Text(); got != "a\n\tb" {
		t.Fatalf("text after enter+tab: got %q, want %q", got, "a\n\tb")
	}
	if got := m.Cursor(); got != pos(1, 1) {
		t.Fatalf("cursor after enter+tab: got %v, want %v", got, pos(1, 1))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.Buffer().Text(); got != "a\n\t" {
		t.Fatalf("text after delete: got %q, want %q", got, "a\n\t")
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{
		Text:      "ab",
		ReadOnly:  true,
		Clipboard: &memClipboard{s: "zz"},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Cursor(); got != pos(0, 1) {
		t.Fatalf("cursor after move: got %v, want %v", got, pos(0, 1))
	}

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("X")},
		{Type: tea.KeyBackspace},
		{Type: tea.KeyEnter},
		{Type: tea.KeyCtrlV},
		{Type: tea.KeyRunes, Runes: []rune("pasted"), Paste: true},
	} {
		m, _ = m.Update(msg)
	}
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text in read-only: got %q, want %q", got, "ab")
	}
	if got := m.Cursor(); got != pos(0, 1) {
		t.Fatalf("cursor in read-only: got %v, want %v", got, pos(0, 1))
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = m.Blur()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text while blurred: got %q, want %q", got, "ab")
	}
}

func TestUpdate_CopyAndPaste(t *testing.T) {
	clip := &memClipboard{}
	m := New(Config{Text: "one\ntwo", Clipboard: clip})

	m = m.SetCursor(pos(1, 1))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if clip.s != "two" {
		t.Fatalf("copied: got %q, want %q", clip.s, "two")
	}

	clip.s = "a\r\nb\rc"
	m = m.SetCursor(pos(0, 0))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got, want := m.Buffer().Text(), "a\nb\ncone\ntwo"; got != want {
		t.Fatalf("text after paste: got %q, want %q", got, want)
	}
	if got := m.Cursor(); got != pos(2, 1) {
		t.Fatalf("cursor after paste: got %v, want %v", got, pos(2, 1))
	}
}

func TestUpdate_CopyFoldedRowCopiesHiddenText(t *testing.T) {
	clip := &memClipboard{}
	m := New(Config{Text: funcSrc, Clipboard: clip})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyF2})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if want := "func f() {\n\tx\n}"; clip.s != want {
		t.Fatalf("copied: got %q, want %q", clip.s, want)
	}
}

func TestUpdate_PasteEventInsertsLiterally(t *testing.T) {
	m := New(Config{Text: ""})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("{\n}"), Paste: true})
	if got := m.Buffer().Text(); got != "{\n}" {
		t.Fatalf("text after paste: got %q, want %q", got, "{\n}")
	}
	if got := m.Session().Folds().Len(); got != 0 {
		t.Fatalf("folds after paste: got %d, want 0", got)
	}
}

func TestUpdate_ToggleFoldKey(t *testing.T) {
	m := New(Config{Text: funcSrc})
	m = m.SetSize(20, 5)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyF2})
	folds := m.Session().Folds().All()
	if len(folds) != 1 {
		t.Fatalf("folds after toggle: got %v", folds)
	}
	if got, want := folds[0].Range(), (buffer.Range{Start: pos(0, 10), End: pos(2, 0)}); got != want {
		t.Fatalf("fold range: got %v, want %v", got, want)
	}
	if got := m.ViewportState().ScreenRows; got != 2 {
		t.Fatalf("screen rows folded: got %d, want 2", got)
	}

	m = m.SetCursor(pos(0, 10))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l"), Alt: true})
	if got := m.Session().Folds().Len(); got != 0 {
		t.Fatalf("folds after second toggle: got %d, want 0", got)
	}
	if got := m.ViewportState().ScreenRows; got != 4 {
		t.Fatalf("screen rows unfolded: got %d, want 4", got)
	}
}

func TestUpdate_FoldAllSnapsCursorOutOfFold(t *testing.T) {
	m := New(Config{Text: funcSrc})
	m = m.SetCursor(pos(1, 1))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0"), Alt: true})
	if got := m.Session().Folds().Len(); got != 1 {
		t.Fatalf("folds after fold all: got %d, want 1", got)
	}
	if got := m.Cursor(); got != pos(0, 10) {
		t.Fatalf("cursor after fold all: got %v, want %v", got, pos(0, 10))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u"), Alt: true})
	if got := m.Session().Folds().Len(); got != 0 {
		t.Fatalf("folds after unfold all: got %d, want 0", got)
	}
}

func TestUpdate_HorizontalMovementSkipsFolds(t *testing.T) {
	m := New(Config{Text: funcSrc})
	if _, err := m.Session().Folds().Add("...", buffer.Range{Start: pos(0, 10), End: pos(2, 0)}); err != nil {
		t.Fatalf("add fold: %v", err)
	}

	m = m.SetCursor(pos(0, 10))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Cursor(); got != pos(2, 0) {
		t.Fatalf("right over fold: got %v, want %v", got, pos(2, 0))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Cursor(); got != pos(2, 1) {
		t.Fatalf("right after fold: got %v, want %v", got, pos(2, 1))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Cursor(); got != pos(0, 10) {
		t.Fatalf("left over fold: got %v, want %v", got, pos(0, 10))
	}
}

func TestUpdate_BackspaceAfterFoldDeletesFoldedText(t *testing.T) {
	m := New(Config{Text: funcSrc})
	if _, err := m.Session().Folds().Add("...", buffer.Range{Start: pos(0, 10), End: pos(2, 0)}); err != nil {
		t.Fatalf("add fold: %v", err)
	}

	m = m.SetCursor(pos(2, 0))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Buffer().Text(), "func f() {}\nend"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := m.Session().Folds().Len(); got != 0 {
		t.Fatalf("folds: got %d, want 0", got)
	}
	if got := m.Cursor(); got != pos(0, 10) {
		t.Fatalf("cursor: got %v, want %v", got, pos(0, 10))
	}
}

func TestUpdate_VerticalMovementCrossesFoldsAndKeepsGoalColumn(t *testing.T) {
	m := New(Config{Text: funcSrc})
	m = m.SetSize(20, 5)
	if _, err := m.Session().Folds().Add("...", buffer.Range{Start: pos(0, 10), End: pos(2, 0)}); err != nil {
		t.Fatalf("add fold: %v", err)
	}

	m = m.SetCursor(pos(0, 3))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Cursor(); got != pos(3, 3) {
		t.Fatalf("down across fold: got %v, want %v", got, pos(3, 3))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.Cursor(); got != pos(0, 3) {
		t.Fatalf("up across fold: got %v, want %v", got, pos(0, 3))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.Cursor(); got != pos(0, 0) {
		t.Fatalf("up from first row: got %v, want %v", got, pos(0, 0))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	if got := m.Cursor(); got != pos(3, 3) {
		t.Fatalf("document end: got %v, want %v", got, pos(3, 3))
	}
}

func TestUpdate_VerticalMovementFollowsWrappedRows(t *testing.T) {
	m := New(Config{Text: "aaaa bbbb cccc dddd\nx", WrapMode: wrap.WrapCode})
	m = m.SetSize(10, 5)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	cur := m.Cursor()
	if cur.Row != 0 || cur.Col == 0 {
		t.Fatalf("down inside wrapped line: got %v, want row 0 past col 0", cur)
	}
	sp := m.Session().Screen().DocumentToScreen(cur.Row, cur.Col)
	if sp.Row != 1 || sp.Col != 0 {
		t.Fatalf("screen cursor after down: got %v, want (1,0)", sp)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	sp = m.Session().Screen().DocumentToScreen(m.Cursor().Row, m.Cursor().Col)
	if sp.Row != 1 {
		t.Fatalf("end stays on the screen row: got %v", sp)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if got := m.Cursor(); got != cur {
		t.Fatalf("home on wrapped row: got %v, want %v", got, cur)
	}
}

func TestUpdate_ViewportFollowsCursor_Minimal(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4"})
	m = m.SetSize(10, 2)

	for i := 0; i < 3; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := m.ViewportState().TopScreenRow; got != 2 {
		t.Fatalf("top row after moving down: got %d, want %d", got, 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
	if got := m.ViewportState().TopScreenRow; got != 0 {
		t.Fatalf("top row at document start: got %d, want %d", got, 0)
	}
}

func TestUpdate_MouseClickMovesCursorAndGutterClickExpands(t *testing.T) {
	m := New(Config{Text: "a\nb {\nc\n}\nd", ShowLineNums: true})
	if _, err := m.Session().Folds().Add("...", buffer.Range{Start: pos(1, 3), End: pos(3, 0)}); err != nil {
		t.Fatalf("add fold: %v", err)
	}
	m = m.SetSize(20, 5)

	// Screen row 2 shows doc row 4; text starts after two gutter cells.
	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Cursor(); got != pos(4, 1) {
		t.Fatalf("cursor after click: got %v, want %v", got, pos(4, 1))
	}

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Session().Folds().Len(); got != 0 {
		t.Fatalf("folds after gutter click: got %d, want 0", got)
	}
	if got := m.Cursor(); got != pos(1, 0) {
		t.Fatalf("cursor after gutter click: got %v, want %v", got, pos(1, 0))
	}
	if got := m.ViewportState().ScreenRows; got != 5 {
		t.Fatalf("screen rows after expand: got %d, want 5", got)
	}
}
