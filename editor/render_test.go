package editor

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/foldwrap/buffer"
)

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := New(Config{
		Text:         sb.String(),
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(10, 120)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 120 {
		t.Fatalf("expected 120 lines, got %d", len(lines))
	}

	digits := 3
	for i, line := range lines {
		wantPrefix := fmt.Sprintf("%*d x", digits, i+1)
		if !strings.HasPrefix(line, wantPrefix) {
			t.Fatalf("line %d prefix: got %q, want prefix %q", i+1, line, wantPrefix)
		}
	}
}

func TestRender_CursorProducesANSIWhenFocused(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)},
	})

	got := m.renderContent()
	want := " a b"
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorAtLineEndIsOneCell(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{Cursor: lipgloss.NewStyle().PaddingLeft(1)},
	})
	m = m.SetCursor(pos(0, 2))

	if got, want := m.renderContent(), "ab  "; got != want {
		t.Fatalf("cursor at EOL:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_TabsExpandToCells(t *testing.T) {
	m := New(Config{Text: "a\tb\n\tc", TabWidth: 4})
	m = m.Blur()

	if got, want := m.renderContent(), "a   b\n    c"; got != want {
		t.Fatalf("tabs:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_PlaceholderUsesPlaceholderStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	st := Style{
		Text:        r.NewStyle(),
		Placeholder: r.NewStyle().Foreground(lipgloss.Color("#ff0000")),
	}

	m := New(Config{Text: "f {\n\tx\n}", Style: st})
	if _, err := m.Session().Folds().Add("...", buffer.Range{Start: pos(0, 3), End: pos(2, 0)}); err != nil {
		t.Fatalf("add fold: %v", err)
	}
	m = m.Blur()
	m = m.SetSize(20, 3)

	got := m.renderContent()
	if want := st.Placeholder.Render("..."); !strings.Contains(got, want) {
		t.Fatalf("placeholder styling:\n got: %q\nwant substring: %q", got, want)
	}
	if plain := ansi.Strip(got); plain != "f {...}" {
		t.Fatalf("plain text: got %q, want %q", plain, "f {...}")
	}
}

func TestRender_ActiveLineNumberCoversFoldedRows(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	st := Style{
		LineNum:       r.NewStyle(),
		LineNumActive: r.NewStyle().Bold(true),
	}

	m := New(Config{Text: "a {\nb\n}\nc", Style: st, ShowLineNums: true})
	if _, err := m.Session().Folds().Add("...", buffer.Range{Start: pos(0, 3), End: pos(2, 0)}); err != nil {
		t.Fatalf("add fold: %v", err)
	}
	m = m.SetSize(20, 3)
	m = m.SetCursor(pos(2, 1))

	lines := strings.Split(m.renderContent(), "\n")
	if len(lines) != 2 {
		t.Fatalf("rows: got %d, want 2", len(lines))
	}
	if want := st.LineNumActive.Render("1"); !strings.HasPrefix(lines[0], want) {
		t.Fatalf("folded row number: got %q, want prefix %q", lines[0], want)
	}
	if want := st.LineNumActive.Render("4"); strings.HasPrefix(lines[1], want) {
		t.Fatalf("row 4 rendered active: %q", lines[1])
	}
}

func TestRender_WrapNoneClipsToViewport(t *testing.T) {
	m := New(Config{Text: "abcdefghij"})
	m = m.SetSize(4, 1)
	m = m.SetCursor(pos(0, 6))
	m = m.Blur()

	if got, want := ansi.Strip(m.renderContent()), "defg"; got != want {
		t.Fatalf("clipped row: got %q, want %q", got, want)
	}
}
