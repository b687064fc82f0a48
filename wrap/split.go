package wrap

// codeLookback is the number of cells ComputeSplits scans back from the wrap
// boundary in WrapCode mode.
const codeLookback = 10

// ComputeSplits returns the offsets at which a display line breaks into
// screen rows when it is wrapped at width cells.
//
// tokens holds one Class per screen cell of the display line. Offsets are rune
// offsets into the display line: continuation cells of tabs and wide runes
// are not counted. The result is strictly increasing and nil when the line
// fits, when tokens is empty, or when mode is WrapNone. Widths below 2 are
// treated as 2.
//
// Breaks are chosen in this order:
//  1. at the boundary when the cells on both sides of it are whitespace;
//  2. before a placeholder the boundary falls into, or after it when the
//     placeholder starts the row (a placeholder ending the line stops
//     wrapping);
//  3. after the nearest non-word cell within the lookback window (10 cells in
//     WrapCode, a quarter of width in WrapText);
//  4. at the boundary.
func ComputeSplits(tokens []Class, width int, mode Mode) []int {
	if len(tokens) == 0 || mode == WrapNone {
		return nil
	}
	if width < 2 {
		width = 2
	}

	lookback := codeLookback
	if mode == WrapText {
		lookback = max(width/4, 1)
	}

	at := func(i int) Class {
		if i < 0 || i >= len(tokens) {
			return 0
		}
		return tokens[i]
	}

	var splits []int
	lastSplit, lastDocSplit := 0, 0
	addSplit := func(pos int) {
		n := pos - lastSplit
		for _, c := range tokens[lastSplit:pos] {
			if c.isContinuation() {
				n--
			}
		}
		// A row made only of continuation cells adds no offset.
		if n > 0 {
			lastDocSplit += n
			splits = append(splits, lastDocSplit)
		}
		lastSplit = pos
	}

	for len(tokens)-lastSplit > width {
		split := lastSplit + width

		if at(split-1).isSpace() && at(split).isSpace() {
			addSplit(split)
			continue
		}

		if at(split).isPlaceholder() {
			for split > lastSplit && at(split) != PlaceholderStart {
				split--
			}
			if split > lastSplit {
				addSplit(split)
				continue
			}

			// The placeholder starts this row: break after it.
			split = lastSplit + width
			for split < len(tokens) && (at(split) == PlaceholderBody || at(split) == PlaceholderExt) {
				split++
			}
			if split == len(tokens) {
				break
			}
			addSplit(split)
			continue
		}

		minSplit := max(split-lookback, lastSplit-1)
		for split > minSplit && at(split) < PlaceholderStart {
			split--
		}
		if mode == WrapCode {
			for split > minSplit && at(split) == Punctuation {
				split--
			}
		} else {
			for split > minSplit && at(split) < Space {
				split--
			}
		}
		if split > minSplit {
			addSplit(split + 1)
			continue
		}

		split = lastSplit + width
		for split > lastSplit+1 && at(split).isContinuation() {
			split--
		}
		addSplit(split)
	}
	return splits
}

// SplitLine tokenizes text with tok (DefaultTokenizer when nil) and computes
// its splits.
func SplitLine(tok Tokenizer, text string, width, tabWidth int, mode Mode) []int {
	if mode == WrapNone {
		return nil
	}
	if tok == nil {
		tok = DefaultTokenizer
	}
	return ComputeSplits(tok.Tokens(text, 0, tabWidth), width, mode)
}
