package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/foldwrap/screen"
)

const foldMarker = "▸"

// renderGutter writes the line number column and fold marker of one screen
// row. Continuation rows of a wrapped line get a blank gutter.
func (m *Model) renderGutter(sb *strings.Builder, seg screen.Segment) {
	if !m.cfg.ShowLineNums {
		return
	}
	st := m.cfg.Style
	digits := gutterDigits(m.sess.Buffer().LineCount())

	if seg.Continued() {
		sb.WriteString(st.LineNum.Render(strings.Repeat(" ", digits)))
		sb.WriteString(st.Gutter.Render(" "))
		return
	}

	numStyle := st.LineNum
	folds := m.sess.Folds()
	last := folds.RowFoldEnd(seg.DocRow)
	if m.focused && m.cursor.Row >= seg.DocRow && m.cursor.Row <= last {
		numStyle = st.LineNumActive
	}
	sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, seg.DocRow+1)))
	if folds.GroupAt(seg.DocRow) != nil {
		sb.WriteString(st.FoldMarker.Render(foldMarker))
		return
	}
	sb.WriteString(st.Gutter.Render(" "))
}
