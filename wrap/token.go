package wrap

import "github.com/iw2rmb/foldwrap/internal/cellwidth"

// Class classifies one screen cell of a display line.
//
// The numeric order is significant: everything below PlaceholderStart is part
// of a word, everything from Space up is whitespace.
type Class uint8

const (
	// Char is an ordinary single-cell rune or the first cell of a wide rune.
	Char Class = iota + 1
	// CharExt is the second cell of a wide rune.
	CharExt
	// PlaceholderStart is the first cell of a fold placeholder.
	PlaceholderStart
	// PlaceholderBody is any further rune of a fold placeholder.
	PlaceholderBody
	// PlaceholderExt is a continuation cell (wide rune or tab) inside a
	// placeholder.
	PlaceholderExt
)

const (
	Punctuation Class = iota + 9
	Space
	Tab
	// TabSpace is a continuation cell of a tab.
	TabSpace
)

func (c Class) isSpace() bool { return c >= Space }

func (c Class) isPlaceholder() bool {
	return c == PlaceholderStart || c == PlaceholderBody || c == PlaceholderExt
}

// isContinuation reports cells that do not start a rune.
func (c Class) isContinuation() bool {
	return c == CharExt || c == TabSpace || c == PlaceholderExt
}

// Tokenizer turns the text of a display line into one Class per screen cell.
//
// startCell is the cell at which text begins on its display line and only
// affects tab stops. Implementations must emit exactly as many cells per rune
// as cellwidth.Width reports, and a continuation class for every cell but the
// first.
type Tokenizer interface {
	Tokens(text string, startCell, tabWidth int) []Class
}

// TokenizerFunc adapts a function to Tokenizer.
type TokenizerFunc func(text string, startCell, tabWidth int) []Class

func (f TokenizerFunc) Tokens(text string, startCell, tabWidth int) []Class {
	return f(text, startCell, tabWidth)
}

// DefaultTokenizer classifies runes by cell width and Unicode category.
var DefaultTokenizer Tokenizer = TokenizerFunc(Tokens)

// Tokens is the default classification: tabs expand to Tab + TabSpace cells,
// wide runes to Char + CharExt, Unicode spaces become Space, punctuation and
// symbols become Punctuation, and everything else is Char.
func Tokens(text string, startCell, tabWidth int) []Class {
	return AppendTokens(nil, text, startCell, tabWidth)
}

// AppendTokens appends the tokens of text to dst.
func AppendTokens(dst []Class, text string, startCell, tabWidth int) []Class {
	cell := startCell
	for _, r := range text {
		switch {
		case r == '\t':
			adv := cellwidth.TabAdvance(cell, tabWidth)
			dst = append(dst, Tab)
			for i := 1; i < adv; i++ {
				dst = append(dst, TabSpace)
			}
			cell += adv
			continue
		case cellwidth.IsWide(r):
			dst = append(dst, Char, CharExt)
			cell += 2
			continue
		case cellwidth.IsSpace(r):
			dst = append(dst, Space)
		case cellwidth.IsPunct(r):
			dst = append(dst, Punctuation)
		default:
			dst = append(dst, Char)
		}
		cell++
	}
	return dst
}

// PlaceholderTokens classifies a fold placeholder drawn at startCell. The
// first cell is PlaceholderStart, the first cell of every other rune is
// PlaceholderBody and continuation cells are PlaceholderExt.
func PlaceholderTokens(placeholder string, startCell, tabWidth int) []Class {
	return AppendPlaceholderTokens(nil, placeholder, startCell, tabWidth)
}

// AppendPlaceholderTokens appends the tokens of a placeholder to dst.
func AppendPlaceholderTokens(dst []Class, placeholder string, startCell, tabWidth int) []Class {
	first := len(dst)
	dst = AppendTokens(dst, placeholder, startCell, tabWidth)
	for i := first; i < len(dst); i++ {
		switch {
		case i == first:
			dst[i] = PlaceholderStart
		case dst[i].isContinuation():
			dst[i] = PlaceholderExt
		default:
			dst[i] = PlaceholderBody
		}
	}
	return dst
}
