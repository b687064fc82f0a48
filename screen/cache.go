package screen

import (
	"sort"

	"github.com/iw2rmb/foldwrap/buffer"
	"github.com/iw2rmb/foldwrap/fold"
	"github.com/iw2rmb/foldwrap/internal/cellwidth"
	"github.com/iw2rmb/foldwrap/wrap"
)

// rowEntry caches the layout of one document row. Rows hidden inside a fold
// group have no splits and zero width; the group's start row holds the layout
// of the whole display line.
type rowEntry struct {
	valid  bool
	hidden bool
	splits []int
	width  int
}

// entry returns the cached layout of row, computing it when stale.
func (m *Mapper) entry(row int) *rowEntry {
	e := &m.rows[row]
	if e.valid {
		return e
	}
	*e = rowEntry{valid: true}

	var text string
	var tokens []wrap.Class
	wrapped := m.Wrapped()
	if g := m.folds.GroupAt(row); g != nil {
		if g.Start().Row != row {
			e.hidden = true
			return e
		}
		text = m.folds.DisplayLine(g)
		if wrapped {
			tokens = m.groupTokens(g)
		}
	} else {
		text = m.doc.Line(row)
		if wrapped {
			tokens = m.cfg.Tokenizer.Tokens(text, 0, m.cfg.TabWidth)
		}
	}
	e.width = cellwidth.StringWidth(text, m.cfg.TabWidth)
	if wrapped {
		e.splits = wrap.ComputeSplits(tokens, m.cfg.WrapWidth, m.cfg.WrapMode)
	}
	return e
}

// groupTokens classifies the display line of g, marking placeholders so that
// wrapping never breaks inside one.
func (m *Mapper) groupTokens(g *fold.Group) []wrap.Class {
	var tokens []wrap.Class
	end := buffer.Pos{Row: g.End().Row, Col: m.doc.LineLen(g.End().Row)}
	g.Walk(end, func(p fold.Piece) bool {
		if p.Fold != nil {
			tokens = wrap.AppendPlaceholderTokens(tokens, p.Fold.Placeholder(), len(tokens), m.cfg.TabWidth)
			return false
		}
		line := []rune(m.doc.Line(p.Row))
		lo := min(max(p.From, 0), len(line))
		hi := min(max(p.To, lo), len(line))
		if hi > lo {
			tokens = append(tokens, m.cfg.Tokenizer.Tokens(string(line[lo:hi]), len(tokens), m.cfg.TabWidth)...)
		}
		return false
	})
	return tokens
}

// lineRows returns the number of screen rows the display line starting at the
// visible row takes.
func (m *Mapper) lineRows(row int) int {
	e := m.entry(row)
	if e.hidden {
		return 0
	}
	return len(e.splits) + 1
}

// InvalidateFrom forgets the screen position of every visible row at or
// after row. Row layouts are kept.
func (m *Mapper) InvalidateFrom(row int) {
	i := sort.SearchInts(m.docRows, row)
	m.docRows = m.docRows[:i]
	m.screenRows = m.screenRows[:i]
}

// Invalidate marks the layout of rows first..last stale, widened to the fold
// groups they touch, and forgets screen positions from there on.
func (m *Mapper) Invalidate(first, last int) {
	if len(m.rows) == 0 {
		return
	}
	if last < first {
		first, last = last, first
	}
	first = m.folds.RowFoldStart(max(first, 0))
	last = m.folds.RowFoldEnd(min(last, len(m.rows)-1))
	for r := max(first, 0); r <= last && r < len(m.rows); r++ {
		m.rows[r].valid = false
	}
	m.InvalidateFrom(first)
}

func (m *Mapper) invalidateAll() {
	clear(m.rows)
	m.docRows = m.docRows[:0]
	m.screenRows = m.screenRows[:0]
}

// Reset drops every cached layout and resizes the cache to the document.
func (m *Mapper) Reset() {
	m.rows = make([]rowEntry, m.doc.LineCount())
	m.docRows = m.docRows[:0]
	m.screenRows = m.screenRows[:0]
}

// ApplyDelta keeps the caches in step with a document edit. It must run after
// the document and the fold set (fold.Set.ApplyDelta) have applied d; removed
// are the folds the fold set dropped for it.
func (m *Mapper) ApplyDelta(d buffer.Delta, removed []*fold.Fold) {
	first := d.Range.Start.Row
	n := d.RowDelta()
	last := first
	switch d.Action {
	case buffer.DeltaInsert:
		if n > 0 && first < len(m.rows) {
			m.rows = append(m.rows[:first+1], append(make([]rowEntry, n), m.rows[first+1:]...)...)
		}
		last = d.Range.End.Row
	case buffer.DeltaRemove:
		if n > 0 {
			hi := min(first+1+n, len(m.rows))
			if first+1 < hi {
				m.rows = append(m.rows[:first+1], m.rows[hi:]...)
			}
		}
	}
	for _, f := range removed {
		r := f.Range()
		first = min(first, r.Start.Row)
		end := r.End.Row
		if d.Action == buffer.DeltaInsert && end >= d.Range.Start.Row {
			end += n
		}
		last = max(last, end)
	}
	m.check()
	m.Invalidate(first, last)
}
