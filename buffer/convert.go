package buffer

import "unicode/utf8"

// OffsetClampMode decides what happens to out of range offsets and positions.
type OffsetClampMode uint8

const (
	// OffsetError rejects out of range input with ok=false.
	OffsetError OffsetClampMode = iota
	// OffsetClamp clamps out of range input into the document.
	OffsetClamp
)

// PosFromRuneOffset converts a rune offset (newline counts as one rune) into
// a position.
func (b *Buffer) PosFromRuneOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, b.docRuneLen(), mode)
	if !ok {
		return Pos{}, false
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}, true
		}
		off -= len(line) + 1
	}
	return b.EndPos(), true
}

// RuneOffsetFromPos converts pos into a rune offset.
func (b *Buffer) RuneOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, mode)
	if !ok {
		return 0, false
	}
	off := 0
	for row := 0; row < pos.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + pos.Col, true
}

// PosFromByteOffset converts a UTF-8 byte offset into a position. Offsets
// inside a multi-byte rune are rejected.
func (b *Buffer) PosFromByteOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, b.docByteLen(), mode)
	if !ok {
		return Pos{}, false
	}

	cur := 0
	for row, line := range b.lines {
		if off == cur {
			return Pos{Row: row}, true
		}
		for col, r := range line {
			next := cur + utf8.RuneLen(r)
			if off > cur && off < next {
				return Pos{}, false
			}
			cur = next
			if off == cur {
				return Pos{Row: row, Col: col + 1}, true
			}
		}
		cur++
	}
	return Pos{}, false
}

// ByteOffsetFromPos converts pos into a UTF-8 byte offset.
func (b *Buffer) ByteOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, mode)
	if !ok {
		return 0, false
	}
	off := 0
	for row := 0; row < pos.Row; row++ {
		off += runesByteLen(b.lines[row]) + 1
	}
	return off + runesByteLen(b.lines[pos.Row][:pos.Col]), true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		if b.ClampPos(pos) != pos {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return b.ClampPos(pos), true
	default:
		return Pos{}, false
	}
}

func (b *Buffer) docRuneLen() int {
	total := len(b.lines) - 1
	for _, line := range b.lines {
		total += len(line)
	}
	return total
}

func (b *Buffer) docByteLen() int {
	total := len(b.lines) - 1
	for _, line := range b.lines {
		total += runesByteLen(line)
	}
	return total
}

func runesByteLen(rs []rune) int {
	n := 0
	for _, r := range rs {
		n += utf8.RuneLen(r)
	}
	return n
}
