package buffer

import "strings"

// Insert inserts text at p (clamped) and returns the position after the
// inserted text. Inserting "" is a no-op.
func (b *Buffer) Insert(p Pos, text string) Pos {
	change := b.beginChange()
	end := b.insertAt(&change, b.ClampPos(p), text)
	b.commitChange(change)
	return end
}

// Remove deletes the text in r (clamped and normalized) and returns it.
// Removing an empty range is a no-op.
func (b *Buffer) Remove(r Range) string {
	change := b.beginChange()
	removed := b.removeRange(&change, NormalizeRange(b.ClampRange(r)))
	b.commitChange(change)
	return removed
}

// Replace removes r and inserts text at its start. It emits a remove delta
// followed by an insert delta and returns the position after the new text.
func (b *Buffer) Replace(r Range, text string) Pos {
	change := b.beginChange()
	end := b.replaceRange(&change, r, text)
	b.commitChange(change)
	return end
}

// Apply applies edits in order as one change. Each edit's range refers to the
// document as left by the previous edits.
func (b *Buffer) Apply(edits ...TextEdit) {
	change := b.beginChange()
	for _, e := range edits {
		b.replaceRange(&change, e.Range, e.Text)
	}
	b.commitChange(change)
}

func (b *Buffer) replaceRange(cb *changeBuilder, r Range, text string) Pos {
	r = NormalizeRange(b.ClampRange(r))
	if textForLinesRange(b.lines, r) == text {
		return r.End
	}
	b.removeRange(cb, r)
	return b.insertAt(cb, r.Start, text)
}

func (b *Buffer) insertAt(cb *changeBuilder, p Pos, text string) Pos {
	if text == "" {
		return p
	}

	parts := strings.Split(text, "\n")
	line := b.lines[p.Row]
	prefix := append([]rune(nil), line[:p.Col]...)
	suffix := append([]rune(nil), line[p.Col:]...)

	repl := make([][]rune, 0, len(parts))
	for i, s := range parts {
		var l []rune
		if i == 0 {
			l = append(l, prefix...)
		}
		l = append(l, []rune(s)...)
		if i == len(parts)-1 {
			l = append(l, suffix...)
		}
		repl = append(repl, l)
	}

	lastPart := []rune(parts[len(parts)-1])
	end := Pos{Row: p.Row + len(parts) - 1, Col: len(lastPart)}
	if len(parts) == 1 {
		end.Col += p.Col
	}

	b.spliceRows(p.Row, p.Row, repl)
	b.emit(cb, Delta{
		Action: DeltaInsert,
		Range:  Range{Start: p, End: end},
		Lines:  parts,
	})
	return end
}

func (b *Buffer) removeRange(cb *changeBuilder, r Range) string {
	if r.IsEmpty() {
		return ""
	}

	removed := textForLinesRange(b.lines, r)
	joined := make([]rune, 0, r.Start.Col+len(b.lines[r.End.Row])-r.End.Col)
	joined = append(joined, b.lines[r.Start.Row][:r.Start.Col]...)
	joined = append(joined, b.lines[r.End.Row][r.End.Col:]...)

	b.spliceRows(r.Start.Row, r.End.Row, [][]rune{joined})
	b.emit(cb, Delta{
		Action: DeltaRemove,
		Range:  r,
		Lines:  strings.Split(removed, "\n"),
	})
	return removed
}

// spliceRows replaces rows first..last inclusive with repl.
func (b *Buffer) spliceRows(first, last int, repl [][]rune) {
	out := make([][]rune, 0, len(b.lines)-(last-first+1)+len(repl))
	out = append(out, b.lines[:first]...)
	out = append(out, repl...)
	out = append(out, b.lines[last+1:]...)
	if len(out) == 0 {
		out = [][]rune{nil}
	}
	b.lines = out
}

func textForLinesRange(lines [][]rune, r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return string(lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == r.Start.Row {
			partStart = r.Start.Col
		}
		if row == r.End.Row {
			partEnd = r.End.Col
		}
		sb.WriteString(string(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
