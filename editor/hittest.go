package editor

import "github.com/iw2rmb/foldwrap/buffer"

// screenToDocPos maps viewport-local cell coordinates to a document position.
// Clicks in the gutter map to the start of the screen row.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	row := m.viewport.YOffset + max(y, 0)
	col := max(x-m.gutterWidth(), 0)
	if !m.mapper().Wrapped() && x >= m.gutterWidth() {
		col += m.xOffset
	}
	return m.mapper().ScreenToDocument(row, col)
}

// docToScreenPos maps a document position to viewport-local cell coordinates.
// ok is false when the cell is scrolled out of view.
func (m *Model) docToScreenPos(p buffer.Pos) (x, y int, ok bool) {
	sp := m.mapper().DocumentToScreen(p.Row, p.Col)
	y = sp.Row - m.viewport.YOffset
	x = sp.Col + m.gutterWidth()
	if !m.mapper().Wrapped() {
		x -= m.xOffset
	}
	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	if x < m.gutterWidth() || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}
