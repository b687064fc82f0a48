package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/foldwrap/buffer"
	"github.com/iw2rmb/foldwrap/fold"
	"github.com/iw2rmb/foldwrap/internal/cellwidth"
	"github.com/iw2rmb/foldwrap/screen"
)

func (m *Model) renderContent() string {
	mp := m.mapper()
	n := mp.ScreenLength()
	cur := mp.DocumentToScreen(m.cursor.Row, m.cursor.Col)

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		seg, ok := mp.ScreenRowRange(row)
		if !ok {
			break
		}
		cursorCell := -1
		if m.focused && row == cur.Row {
			cursorCell = cur.Col
		}

		var sb strings.Builder
		m.renderGutter(&sb, seg)
		m.renderSegment(&sb, seg, placeholderSpans(m.sess.Folds(), m.sess.Buffer(), seg.DocRow), cursorCell)
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// span is a half-open range of rune offsets into a display line.
type span struct{ from, to int }

func inSpans(spans []span, i int) bool {
	for _, s := range spans {
		if i >= s.from && i < s.to {
			return true
		}
	}
	return false
}

// placeholderSpans returns where placeholders sit on the display line that
// starts at row.
func placeholderSpans(folds *fold.Set, doc *buffer.Buffer, row int) []span {
	g := folds.GroupAt(row)
	if g == nil || g.Start().Row != row {
		return nil
	}
	var out []span
	idx := 0
	end := buffer.Pos{Row: g.End().Row, Col: doc.LineLen(g.End().Row)}
	g.Walk(end, func(p fold.Piece) bool {
		if p.Fold != nil {
			n := utf8.RuneCountInString(p.Fold.Placeholder())
			out = append(out, span{idx, idx + n})
			idx += n
			return false
		}
		n := doc.LineLen(p.Row)
		lo := min(max(p.From, 0), n)
		hi := min(max(p.To, lo), n)
		idx += hi - lo
		return false
	})
	return out
}

// renderSegment writes one screen row of text. cursorCell is the cell the
// cursor occupies on this row, or -1.
func (m *Model) renderSegment(sb *strings.Builder, seg screen.Segment, spans []span, cursorCell int) {
	st := m.cfg.Style
	tab := m.mapper().Config().TabWidth

	left, right := 0, int(^uint(0)>>1)
	if !m.mapper().Wrapped() {
		left = m.xOffset
		if w := m.contentWidth(); w > 0 {
			right = left + w
		}
	}

	var run strings.Builder
	var runStyle *lipgloss.Style
	flush := func() {
		if run.Len() > 0 && runStyle != nil {
			sb.WriteString(runStyle.Render(run.String()))
		}
		run.Reset()
	}
	emit := func(style *lipgloss.Style, text string) {
		if style != runStyle {
			flush()
			runStyle = style
		}
		run.WriteString(text)
	}

	cell := 0
	for i, r := range []rune(seg.Text) {
		w := cellwidth.Width(r, cell, tab)
		start := cell
		cell += w
		if cell <= left || start >= right {
			continue
		}

		style := &st.Text
		if inSpans(spans, seg.From+i) {
			style = &st.Placeholder
		}
		if cursorCell >= start && cursorCell < cell {
			style = &st.Cursor
		}

		text := string(r)
		switch {
		case start < left || cell > right:
			// Partly scrolled out: keep alignment with blanks.
			text = strings.Repeat(" ", min(cell, right)-max(start, left))
		case r == '\t':
			text = strings.Repeat(" ", w)
		}
		emit(style, text)
	}
	flush()

	// The cursor past the last rune is drawn as one blank cell.
	if cursorCell >= cell && cursorCell >= left && cursorCell < right {
		sb.WriteString(st.Cursor.Render(" "))
	}
}
