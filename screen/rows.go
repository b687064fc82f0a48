package screen

// RowLength returns how many screen rows document row row contributes: the
// wrapped row count of its display line, or 0 when the row is hidden inside
// a fold group.
func (m *Mapper) RowLength(row int) int {
	if row < 0 || row >= len(m.rows) {
		return 0
	}
	return m.lineRows(row)
}

// RowLineCount returns the wrapped row count of the screen line showing row,
// hidden or not.
func (m *Mapper) RowLineCount(row int) int {
	if row < 0 || row >= len(m.rows) {
		return 1
	}
	return m.lineRows(m.folds.RowFoldStart(row))
}

// SplitData returns the wrap offsets of the display line starting at row, or
// nil when it is not wrapped.
func (m *Mapper) SplitData(row int) []int {
	if row < 0 || row >= len(m.rows) {
		return nil
	}
	return append([]int(nil), m.entry(row).splits...)
}

// DisplayLine returns the text of the screen line showing row: the row
// itself, or the display line of its fold group.
func (m *Mapper) DisplayLine(row int) string {
	if g := m.folds.GroupAt(row); g != nil {
		return m.folds.DisplayLine(g)
	}
	return m.doc.Line(row)
}

// ScreenLength returns the number of screen rows the document takes.
func (m *Mapper) ScreenLength() int {
	m.check()
	last := m.lastRow()
	if !m.Wrapped() {
		return m.folds.FoldedRowCount(0, last)
	}
	c := m.seek(len(m.docRows) - 1)
	for c.nextDoc() <= last {
		c.advance()
	}
	return c.screen + m.lineRows(c.doc)
}

// ScreenWidth returns the widest screen line in cells. With wrapping on it is
// the wrap width.
func (m *Mapper) ScreenWidth() int {
	if m.Wrapped() {
		return m.cfg.WrapWidth
	}
	m.check()
	w := 0
	for row := 0; row < len(m.rows); {
		w = max(w, m.entry(row).width)
		row = m.folds.RowFoldEnd(row) + 1
	}
	return w
}

// Segment is one screen row: the slice [From, To) of the display line shown
// at document row DocRow. Index counts wrapped rows within the line.
type Segment struct {
	DocRow int
	Index  int
	From   int
	To     int
	Text   string
}

// Continued reports whether the segment continues a display line.
func (s Segment) Continued() bool { return s.Index > 0 }

// ScreenRowRange returns the segment drawn on screen row row. It returns
// false past the end of the document.
func (m *Mapper) ScreenRowRange(row int) (Segment, bool) {
	if row < 0 {
		return Segment{}, false
	}
	m.check()
	c, ok := m.seekScreen(row)
	if !ok {
		return Segment{}, false
	}

	text := []rune(c.displayText())
	seg := Segment{DocRow: c.doc, Index: row - c.screen, To: len(text)}
	splits := m.entry(c.doc).splits
	if seg.Index > 0 {
		seg.From = splits[seg.Index-1]
	}
	if seg.Index < len(splits) {
		seg.To = splits[seg.Index]
	}
	seg.Text = string(text[seg.From:seg.To])
	return seg, true
}
