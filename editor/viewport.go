package editor

import "strconv"

// gutterWidth is the line number column plus one cell for the fold marker.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.sess.Buffer().LineCount()) + 1
}

func gutterDigits(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1)))
}

// contentWidth is the number of cells available for text.
func (m Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	return max(w, 0)
}

func (m Model) visibleRowCount() int {
	return max(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0)
}

// followCursor scrolls so the cursor's screen cell is visible.
func (m *Model) followCursor() {
	sp := m.mapper().DocumentToScreen(m.cursor.Row, m.cursor.Col)

	if !m.mapper().Wrapped() {
		x := m.xOffset
		if w := m.contentWidth(); w > 0 {
			if sp.Col < x {
				x = sp.Col
			} else if sp.Col >= x+w {
				x = sp.Col - w + 1
			}
		}
		if x != m.xOffset {
			m.xOffset = x
			m.rebuildContent()
		}
	}

	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if sp.Row < y {
		m.viewport.SetYOffset(sp.Row)
	} else if sp.Row >= y+h {
		m.viewport.SetYOffset(sp.Row - h + 1)
	}
}
