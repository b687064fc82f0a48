package fold

import "github.com/iw2rmb/foldwrap/buffer"

// DefaultPlaceholder is used for folds created by FoldAll.
const DefaultPlaceholder = "..."

// RangeFinder locates the foldable range that starts on a row.
type RangeFinder interface {
	FoldRange(doc Lines, row int) (buffer.Range, bool)
}

// RangeFinderFunc adapts a function to RangeFinder.
type RangeFinderFunc func(doc Lines, row int) (buffer.Range, bool)

func (f RangeFinderFunc) FoldRange(doc Lines, row int) (buffer.Range, bool) {
	return f(doc, row)
}

// FirstOf returns a finder that tries each finder in order.
func FirstOf(finders ...RangeFinder) RangeFinder {
	return RangeFinderFunc(func(doc Lines, row int) (buffer.Range, bool) {
		for _, rf := range finders {
			if rf == nil {
				continue
			}
			if r, ok := rf.FoldRange(doc, row); ok {
				return r, true
			}
		}
		return buffer.Range{}, false
	})
}

// IndentFinder folds the block of rows indented deeper than row, from the
// end of row to the end of the block's last non-blank row.
type IndentFinder struct{}

func (IndentFinder) FoldRange(doc Lines, row int) (buffer.Range, bool) {
	level, ok := indentLevel(doc.Line(row))
	if !ok {
		return buffer.Range{}, false
	}
	endRow := row
	for next := row + 1; next < doc.LineCount(); next++ {
		l, ok := indentLevel(doc.Line(next))
		if !ok {
			continue
		}
		if l <= level {
			break
		}
		endRow = next
	}
	if endRow == row {
		return buffer.Range{}, false
	}
	return buffer.Range{
		Start: buffer.Pos{Row: row, Col: doc.LineLen(row)},
		End:   buffer.Pos{Row: endRow, Col: doc.LineLen(endRow)},
	}, true
}

// indentLevel returns the rune index of the first non-blank rune.
func indentLevel(line string) (int, bool) {
	i := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			return i, true
		}
		i++
	}
	return 0, false
}

// BracketFinder folds from an opening bracket left open at the end of row to
// its matching closing bracket. Brackets inside quotes are not skipped.
type BracketFinder struct{}

var closing = map[rune]rune{'{': '}', '[': ']', '(': ')'}

func (BracketFinder) FoldRange(doc Lines, row int) (buffer.Range, bool) {
	line := []rune(doc.Line(row))
	open, col := rune(0), -1
	depth := 0
	for i := len(line) - 1; i >= 0; i-- {
		switch c := line[i]; c {
		case '}', ']', ')':
			depth++
		case '{', '[', '(':
			if depth == 0 {
				open, col = c, i
			} else {
				depth--
			}
		}
		if col >= 0 {
			break
		}
	}
	if col < 0 {
		return buffer.Range{}, false
	}

	closeRune := closing[open]
	depth = 0
	for r := row; r < doc.LineCount(); r++ {
		runes := []rune(doc.Line(r))
		from := 0
		if r == row {
			from = col + 1
		}
		for i := from; i < len(runes); i++ {
			switch runes[i] {
			case open:
				depth++
			case closeRune:
				if depth > 0 {
					depth--
					continue
				}
				if r == row {
					return buffer.Range{}, false
				}
				return buffer.Range{
					Start: buffer.Pos{Row: row, Col: col + 1},
					End:   buffer.Pos{Row: r, Col: i},
				}, true
			}
		}
	}
	return buffer.Range{}, false
}
