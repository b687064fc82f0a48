package editor

import (
	"math"

	"github.com/iw2rmb/foldwrap/buffer"
	"github.com/iw2rmb/foldwrap/fold"
)

// leftOf returns the position one step left of p. A fold ending at p is
// skipped as a whole.
func (m Model) leftOf(p buffer.Pos) buffer.Pos {
	if f := m.sess.Folds().At(p.Row, p.Col, fold.SideBefore); f != nil {
		return f.Start()
	}
	if p.Col > 0 {
		return buffer.Pos{Row: p.Row, Col: p.Col - 1}
	}
	if p.Row > 0 {
		return buffer.Pos{Row: p.Row - 1, Col: m.sess.Buffer().LineLen(p.Row - 1)}
	}
	return p
}

// rightOf returns the position one step right of p. A fold starting at p is
// skipped as a whole.
func (m Model) rightOf(p buffer.Pos) buffer.Pos {
	if f := m.sess.Folds().At(p.Row, p.Col, fold.SideAfter); f != nil {
		return f.End()
	}
	buf := m.sess.Buffer()
	if p.Col < buf.LineLen(p.Row) {
		return buffer.Pos{Row: p.Row, Col: p.Col + 1}
	}
	if p.Row < buf.LineCount()-1 {
		return buffer.Pos{Row: p.Row + 1}
	}
	return p
}

// moveVertical moves the cursor by rows screen rows, keeping the goal column.
func (m *Model) moveVertical(rows int) {
	mp := m.mapper()
	sp := mp.DocumentToScreen(m.cursor.Row, m.cursor.Col)
	if m.goalCol < 0 {
		m.goalCol = sp.Col
	}
	target := sp.Row + rows
	last := mp.ScreenLength() - 1
	switch {
	case target < 0:
		m.cursor = buffer.Pos{}
		return
	case target > last:
		m.cursor = m.sess.Buffer().EndPos()
		return
	}
	m.cursor = mp.ScreenToDocument(target, m.goalCol)
}

// rowStart and rowEnd bound the cursor's screen row.
func (m Model) rowStart() buffer.Pos {
	sp := m.mapper().DocumentToScreen(m.cursor.Row, m.cursor.Col)
	return m.mapper().ScreenToDocument(sp.Row, 0)
}

func (m Model) rowEnd() buffer.Pos {
	sp := m.mapper().DocumentToScreen(m.cursor.Row, m.cursor.Col)
	return m.mapper().ScreenToDocument(sp.Row, math.MaxInt32)
}

// snapOutOfFold moves a cursor left strictly inside a fold to its start.
func (m *Model) snapOutOfFold() {
	if f := m.sess.Folds().At(m.cursor.Row, m.cursor.Col, fold.SideAfter); f != nil {
		m.cursor = f.Start()
	}
}
