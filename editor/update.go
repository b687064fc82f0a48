package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/foldwrap/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insert(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	keepGoal := false
	switch {
	case key.Matches(msg, km.Left):
		m.cursor = m.leftOf(m.cursor)
	case key.Matches(msg, km.Right):
		m.cursor = m.rightOf(m.cursor)
	case key.Matches(msg, km.Up):
		m.moveVertical(-1)
		keepGoal = true
	case key.Matches(msg, km.Down):
		m.moveVertical(1)
		keepGoal = true
	case key.Matches(msg, km.PageUp):
		m.moveVertical(-max(m.visibleRowCount(), 1))
		keepGoal = true
	case key.Matches(msg, km.PageDown):
		m.moveVertical(max(m.visibleRowCount(), 1))
		keepGoal = true
	case key.Matches(msg, km.Home):
		m.cursor = m.rowStart()
	case key.Matches(msg, km.End):
		m.cursor = m.rowEnd()
	case key.Matches(msg, km.DocStart):
		m.cursor = buffer.Pos{}
	case key.Matches(msg, km.DocEnd):
		m.cursor = m.sess.Buffer().EndPos()

	case key.Matches(msg, km.Backspace):
		m.removeTo(m.leftOf(m.cursor))
	case key.Matches(msg, km.Delete):
		m.removeTo(m.rightOf(m.cursor))
	case key.Matches(msg, km.Enter):
		m.insert("\n")

	case key.Matches(msg, km.ToggleFold):
		m.sess.ToggleFold(m.cursor)
		m.snapOutOfFold()
	case key.Matches(msg, km.FoldAll):
		m.sess.FoldAll()
		m.snapOutOfFold()
	case key.Matches(msg, km.UnfoldAll):
		m.sess.UnfoldAll()
	case key.Matches(msg, km.CycleWrap):
		m = m.SetWrapMode(m.WrapMode().Next())

	case key.Matches(msg, km.Copy):
		m.copyRow()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		if msg.Type == tea.KeyTab {
			m.insert("\t")
		} else if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insert(string(msg.Runes))
		}
	}
	if !keepGoal {
		m.goalCol = -1
	}
	return m, nil
}

func (m *Model) insert(text string) {
	if m.cfg.ReadOnly || text == "" {
		return
	}
	m.cursor, _ = m.sess.Insert(m.cursor, text)
}

// removeTo deletes the text between the cursor and p.
func (m *Model) removeTo(p buffer.Pos) {
	if m.cfg.ReadOnly || p == m.cursor {
		return
	}
	r := buffer.NormalizeRange(buffer.Range{Start: m.cursor, End: p})
	m.sess.Remove(r)
	m.cursor = r.Start
}

// copyRow copies the document text shown on the cursor's screen line.
func (m Model) copyRow() {
	if m.cfg.Clipboard == nil {
		return
	}
	folds := m.sess.Folds()
	buf := m.sess.Buffer()
	first := folds.RowFoldStart(m.cursor.Row)
	last := folds.RowFoldEnd(m.cursor.Row)
	s := buf.TextRange(buffer.Range{
		Start: buffer.Pos{Row: first},
		End:   buffer.Pos{Row: last, Col: buf.LineLen(last)},
	})
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.cfg.ReadOnly {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	// Normalize newlines from external sources.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	m.insert(s)
}
