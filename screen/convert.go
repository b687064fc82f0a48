package screen

import (
	"math"
	"sort"

	"github.com/iw2rmb/foldwrap/buffer"
	"github.com/iw2rmb/foldwrap/fold"
	"github.com/iw2rmb/foldwrap/internal/cellwidth"
)

// cursor walks visible document rows: rows that start a screen line.
type cursor struct {
	m      *Mapper
	doc    int
	screen int
	next   *fold.Group // first group ending at or after doc
	extend bool        // record checkpoints while walking
}

// seek returns a cursor at the checkpoint i, or at the top when i < 0.
func (m *Mapper) seek(i int) cursor {
	c := cursor{m: m, extend: i == len(m.docRows)-1}
	if i >= 0 {
		c.doc, c.screen = m.docRows[i], m.screenRows[i]
	}
	c.next = m.folds.NextGroup(c.doc)
	return c
}

// group returns the fold group whose display line starts at c.doc, or nil.
func (c *cursor) group() *fold.Group {
	if c.next != nil && c.next.Start().Row <= c.doc {
		return c.next
	}
	return nil
}

// nextDoc returns the visible row after c.doc.
func (c *cursor) nextDoc() int {
	if g := c.group(); g != nil {
		return g.End().Row + 1
	}
	return c.doc + 1
}

func (c *cursor) advance() {
	n := c.m.lineRows(c.doc)
	if g := c.group(); g != nil {
		c.doc = g.End().Row + 1
		c.next = c.m.folds.NextGroup(c.doc)
	} else {
		c.doc++
	}
	c.screen += n
	if c.extend {
		c.m.record(c.doc, c.screen)
	}
}

func (m *Mapper) record(docRow, screenRow int) {
	if n := len(m.docRows); n > 0 && m.docRows[n-1] >= docRow {
		return
	}
	m.docRows = append(m.docRows, docRow)
	m.screenRows = append(m.screenRows, screenRow)
}

// seekScreen returns a cursor at the visible row whose display line covers
// screen row row. It returns false when row lies past the document.
func (m *Mapper) seekScreen(row int) (cursor, bool) {
	i := sort.Search(len(m.screenRows), func(i int) bool { return m.screenRows[i] > row }) - 1
	c := m.seek(i)
	last := m.lastRow()
	for c.screen+m.lineRows(c.doc) <= row {
		if c.nextDoc() > last {
			return c, false
		}
		c.advance()
	}
	return c, true
}

// displayText returns the display line shown at the visible row c.doc.
func (c *cursor) displayText() string {
	if g := c.group(); g != nil {
		return c.m.folds.DisplayLine(g)
	}
	return c.m.doc.Line(c.doc)
}

// ScreenToDocument returns the document position drawn at the screen cell
// (row, col). Cells past the end of a screen row map to the last position on
// it; rows past the end of the document map to the document end. A cell
// inside a placeholder maps to the start of its fold.
func (m *Mapper) ScreenToDocument(row, col int) buffer.Pos {
	if row < 0 {
		return buffer.Pos{}
	}
	m.check()

	c, ok := m.seekScreen(row)
	if !ok {
		last := m.lastRow()
		return buffer.Pos{Row: last, Col: m.doc.LineLen(last)}
	}

	text := []rune(c.displayText())
	from, to := 0, len(text)
	if splits := m.entry(c.doc).splits; len(splits) > 0 {
		k := row - c.screen
		if k > 0 {
			from = splits[k-1]
		}
		if k < len(splits) {
			to = splits[k]
		}
	}
	idx := from + cellwidth.ColumnAt(string(text[from:to]), col, m.cfg.TabWidth)
	if to < len(text) && idx >= to {
		// The next row starts at to; stay on this one.
		idx = to - 1
	}

	if g := c.group(); g != nil {
		return g.IdxToPosition(idx)
	}
	return buffer.Pos{Row: c.doc, Col: idx}
}

// DocumentToScreen returns the screen cell at which the document position
// (row, col) is drawn. The position is clamped to the document first; a
// position inside a fold maps to the fold's placeholder.
func (m *Mapper) DocumentToScreen(row, col int) buffer.Pos {
	m.check()
	p := m.clampDoc(row, col)
	if f := m.folds.At(p.Row, p.Col, fold.SideAfter); f != nil {
		p = f.Start()
	}

	i := sort.Search(len(m.docRows), func(i int) bool { return m.docRows[i] > p.Row }) - 1
	c := m.seek(i)
	for c.nextDoc() <= p.Row {
		c.advance()
	}

	var text []rune
	if g := c.group(); g != nil {
		text = []rune(m.folds.DisplayLineRange(g, buffer.Pos{Row: g.Start().Row}, p))
	} else {
		text = []rune(m.doc.Line(p.Row))[:p.Col]
	}

	screenRow, from := c.screen, 0
	for _, s := range m.entry(c.doc).splits {
		if len(text) < s {
			break
		}
		screenRow++
		from = s
	}
	return buffer.Pos{Row: screenRow, Col: cellwidth.StringWidth(string(text[from:]), m.cfg.TabWidth)}
}

// DocumentToScreenRange maps both ends of r.
func (m *Mapper) DocumentToScreenRange(r buffer.Range) (start, end buffer.Pos) {
	r = buffer.NormalizeRange(r)
	return m.DocumentToScreen(r.Start.Row, r.Start.Col), m.DocumentToScreen(r.End.Row, r.End.Col)
}

// DocumentToScreenRow returns only the screen row of DocumentToScreen.
func (m *Mapper) DocumentToScreenRow(row, col int) int {
	return m.DocumentToScreen(row, col).Row
}

// ScreenLastRowColumn returns the screen column of the last document
// position on screen row row.
func (m *Mapper) ScreenLastRowColumn(row int) int {
	p := m.ScreenToDocument(row, math.MaxInt32)
	return m.DocumentToScreen(p.Row, p.Col).Col
}
