// Package cellwidth measures runes in terminal cells.
//
// Document columns count runes. Screen columns count cells: a tab advances to
// the next tab stop, a full-width rune takes two cells, and every other rune
// takes one cell (zero-width runes are widened to one so every document
// column owns at least one screen cell).
package cellwidth

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a caller passes a non-positive tab width.
const DefaultTabWidth = 4

// TabAdvance returns the distance from cell col to the next tab stop.
func TabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if col < 0 {
		col = 0
	}
	adv := tabWidth - col%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}

// RuneWidth returns the cell width of r ignoring tabs: 1 or 2.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		w = uniseg.StringWidth(string(r))
	}
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// IsWide reports whether r occupies two cells.
func IsWide(r rune) bool {
	return RuneWidth(r) == 2
}

// Width returns the cell width of r when it is drawn at cell col.
func Width(r rune, col, tabWidth int) int {
	if r == '\t' {
		return TabAdvance(col, tabWidth)
	}
	return RuneWidth(r)
}

// StringWidth returns the cell width of s drawn starting at cell 0.
func StringWidth(s string, tabWidth int) int {
	col := 0
	for _, r := range s {
		col += Width(r, col, tabWidth)
	}
	return col
}

// ColumnAt walks s from cell 0 and returns the rune index of the first rune
// whose right edge lies past maxCell, or the rune count of s when the whole
// string fits.
func ColumnAt(s string, maxCell, tabWidth int) int {
	if maxCell <= 0 {
		return 0
	}
	col, cells := 0, 0
	for _, r := range s {
		cells += Width(r, cells, tabWidth)
		if cells > maxCell {
			return col
		}
		col++
	}
	return col
}

// IsSpace reports whether r is a space separator (tabs are classified
// separately by callers).
func IsSpace(r rune) bool {
	return r != '\t' && unicode.IsSpace(r)
}

// IsPunct reports whether r is punctuation or a symbol.
func IsPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
