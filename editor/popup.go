package editor

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// foldPreview composites a popup showing the hidden text of the fold under
// the cursor over base.
func (m Model) foldPreview(base string) (string, bool) {
	maxRows := m.cfg.foldPreviewRows()
	if maxRows <= 0 || !m.focused {
		return "", false
	}
	f := m.foldUnderCursor()
	if f == nil {
		return "", false
	}

	viewportWidth := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	viewportHeight := m.visibleRowCount()
	if viewportWidth <= 0 || viewportHeight <= 1 {
		return "", false
	}
	anchorX, anchorY, ok := m.DocToScreen(m.cursor)
	if !ok {
		return "", false
	}

	lines := previewLines(m.sess.Buffer().TextRange(f.Range()), m.mapper().Config().TabWidth)
	if len(lines) > maxRows {
		lines = append(lines[:maxRows:maxRows], "…")
	}

	belowAvail := max(viewportHeight-(anchorY+1), 0)
	aboveAvail := max(anchorY, 0)
	showBelow := true
	rowCount := len(lines)
	if rowCount > belowAvail {
		if aboveAvail >= rowCount {
			showBelow = false
		} else if aboveAvail > belowAvail {
			showBelow = false
			rowCount = aboveAvail
		} else {
			rowCount = belowAvail
		}
	}
	if rowCount <= 0 {
		return "", false
	}
	lines = lines[:rowCount]

	popupWidth := 0
	for _, l := range lines {
		popupWidth = max(popupWidth, ansi.StringWidth(l))
	}
	popupWidth = min(max(popupWidth, 1), viewportWidth)

	rendered := make([]string, len(lines))
	for i, l := range lines {
		l = ansi.Truncate(l, popupWidth, "…")
		if pad := popupWidth - ansi.StringWidth(l); pad > 0 {
			l += strings.Repeat(" ", pad)
		}
		rendered[i] = m.cfg.Style.Preview.Render(l)
	}

	y := anchorY + 1
	if !showBelow {
		y = anchorY - len(rendered)
	}
	y = clampInt(y, 0, max(viewportHeight-len(rendered), 0))
	x := clampInt(anchorX, 0, max(viewportWidth-popupWidth, 0))

	leftFrame := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	topFrame := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()

	return overlay.Composite(
		strings.Join(rendered, "\n"),
		base,
		overlay.Left,
		overlay.Top,
		leftFrame+x,
		topFrame+y,
	), true
}

// previewLines splits folded text into rows with tabs expanded and blank
// leading and trailing rows dropped.
func previewLines(text string, tabWidth int) []string {
	tab := strings.Repeat(" ", max(tabWidth, 1))
	lines := strings.Split(strings.ReplaceAll(text, "\t", tab), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
