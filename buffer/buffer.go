package buffer

import "strings"

// Buffer holds the document text as lines of runes.
//
// Buffer is not safe for concurrent use; callers serialize edits and reads.
type Buffer struct {
	lines   [][]rune
	version uint64

	subs    []subscriber
	nextSub int

	lastChange    Change
	hasLastChange bool
}

func New(text string) *Buffer {
	return &Buffer{
		lines:   splitLines(text),
		version: 0,
	}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Version increments on every effective edit.
func (b *Buffer) Version() uint64 { return b.version }

// LineCount returns the number of rows. It is never less than 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// Lines returns rows first..last inclusive, clamped to the document.
func (b *Buffer) Lines(first, last int) []string {
	first = clampInt(first, 0, len(b.lines)-1)
	last = clampInt(last, 0, len(b.lines)-1)
	if last < first {
		return nil
	}
	out := make([]string, 0, last-first+1)
	for row := first; row <= last; row++ {
		out = append(out, string(b.lines[row]))
	}
	return out
}

// LineLen returns the rune length of row, or 0 when row is out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// EndPos returns the position after the last rune of the document.
func (b *Buffer) EndPos() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

func (b *Buffer) ClampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.LineLen)
}

func (b *Buffer) ClampRange(r Range) Range {
	return ClampRange(r, len(b.lines), b.LineLen)
}

// TextRange returns the text covered by r after clamping.
func (b *Buffer) TextRange(r Range) string {
	return textForLinesRange(b.lines, NormalizeRange(b.ClampRange(r)))
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
