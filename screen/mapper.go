package screen

import (
	"fmt"

	"github.com/iw2rmb/foldwrap/buffer"
	"github.com/iw2rmb/foldwrap/fold"
	"github.com/iw2rmb/foldwrap/internal/cellwidth"
	"github.com/iw2rmb/foldwrap/wrap"
)

const (
	DefaultWrapWidth = 80
	minWrapWidth     = 2
)

// Document is the read-only view of the text the Mapper lays out.
type Document interface {
	LineCount() int
	LineLen(row int) int
	Line(row int) string
}

// Config controls layout. Zero values are replaced with defaults by New.
type Config struct {
	// TabWidth is the distance between tab stops. Defaults to 4.
	TabWidth int

	// WrapMode selects soft wrapping. WrapNone disables it.
	WrapMode wrap.Mode

	// WrapWidth is the number of cells per screen row when wrapping.
	// Defaults to 80.
	WrapWidth int

	// WrapMin and WrapMax bound the width AdjustWrapLimit may pick. Zero
	// means unbounded.
	WrapMin int
	WrapMax int

	// Tokenizer classifies display lines for wrapping. Defaults to
	// wrap.DefaultTokenizer.
	Tokenizer wrap.Tokenizer
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = cellwidth.DefaultTabWidth
	}
	if c.WrapWidth <= 0 {
		c.WrapWidth = DefaultWrapWidth
	}
	if c.WrapWidth < minWrapWidth {
		c.WrapWidth = minWrapWidth
	}
	if c.Tokenizer == nil {
		c.Tokenizer = wrap.DefaultTokenizer
	}
	return c
}

// Mapper converts between document and screen coordinates for one document
// and its fold set.
//
// The Mapper must be told about every document change (ApplyDelta) and every
// fold change (Invalidate). It is not safe for concurrent use.
type Mapper struct {
	doc   Document
	folds *fold.Set
	cfg   Config

	rows []rowEntry

	// Checkpoints: visible document row docRows[i] starts at screen row
	// screenRows[i]. Both are strictly increasing.
	docRows    []int
	screenRows []int
}

func New(doc Document, folds *fold.Set, cfg Config) *Mapper {
	m := &Mapper{
		doc:   doc,
		folds: folds,
		cfg:   cfg.withDefaults(),
	}
	m.rows = make([]rowEntry, doc.LineCount())
	return m
}

func (m *Mapper) Config() Config { return m.cfg }

func (m *Mapper) Folds() *fold.Set { return m.folds }

// Wrapped reports whether soft wrapping is on.
func (m *Mapper) Wrapped() bool { return m.cfg.WrapMode != wrap.WrapNone }

func (m *Mapper) SetTabWidth(n int) {
	if n <= 0 {
		n = cellwidth.DefaultTabWidth
	}
	if n == m.cfg.TabWidth {
		return
	}
	m.cfg.TabWidth = n
	m.invalidateAll()
}

func (m *Mapper) SetWrapMode(mode wrap.Mode) {
	if mode == m.cfg.WrapMode {
		return
	}
	m.cfg.WrapMode = mode
	m.invalidateAll()
}

// SetWrapWidth sets the wrap width, clamped to the wrap limit range.
func (m *Mapper) SetWrapWidth(n int) {
	n = m.constrainWrapWidth(n)
	if n == m.cfg.WrapWidth {
		return
	}
	m.cfg.WrapWidth = n
	if m.Wrapped() {
		m.invalidateAll()
	}
}

// SetWrapLimitRange bounds the widths AdjustWrapLimit may choose. Zero means
// unbounded on that side.
func (m *Mapper) SetWrapLimitRange(min, max int) {
	m.cfg.WrapMin, m.cfg.WrapMax = min, max
}

// AdjustWrapLimit sets the wrap width to desired, clamped to the wrap limit
// range, and reports whether the width changed.
func (m *Mapper) AdjustWrapLimit(desired int) bool {
	n := m.constrainWrapWidth(desired)
	if n == m.cfg.WrapWidth || n < minWrapWidth {
		return false
	}
	m.cfg.WrapWidth = n
	if m.Wrapped() {
		m.invalidateAll()
	}
	return true
}

func (m *Mapper) constrainWrapWidth(n int) int {
	if m.cfg.WrapMin > 0 {
		n = max(n, m.cfg.WrapMin)
	}
	if m.cfg.WrapMax > 0 {
		n = min(n, m.cfg.WrapMax)
	}
	return max(n, minWrapWidth)
}

func (m *Mapper) SetTokenizer(tok wrap.Tokenizer) {
	if tok == nil {
		tok = wrap.DefaultTokenizer
	}
	m.cfg.Tokenizer = tok
	m.invalidateAll()
}

func (m *Mapper) check() {
	if len(m.rows) != m.doc.LineCount() {
		panic(fmt.Sprintf("screen: row cache holds %d rows, document has %d", len(m.rows), m.doc.LineCount()))
	}
}

func (m *Mapper) lastRow() int { return m.doc.LineCount() - 1 }

func (m *Mapper) clampDoc(row, col int) buffer.Pos {
	return buffer.ClampPos(buffer.Pos{Row: row, Col: col}, m.doc.LineCount(), m.doc.LineLen)
}
