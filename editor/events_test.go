package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/foldwrap/buffer"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})
	events = nil

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if events[0].HasChange {
		t.Fatalf("move reported a text change: %+v", events[0])
	}
	if got := events[0].Cursor; got != pos(0, 1) {
		t.Fatalf("event cursor after move: got %v, want %v", got, pos(0, 1))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // to EOL
	if len(events) != 2 {
		t.Fatalf("events after move to EOL: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op at EOL
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	ev := events[2]
	if !ev.HasChange || ev.Change.VersionAfter != ev.Version {
		t.Fatalf("event change after insert: got %+v", ev)
	}
	if len(ev.Change.Deltas) != 1 || ev.Change.Deltas[0].Action != buffer.DeltaInsert {
		t.Fatalf("event deltas after insert: got %+v", ev.Change.Deltas)
	}
	if got := m.Buffer().Text(); got != "abX" {
		t.Fatalf("text after insert: got %q, want %q", got, "abX")
	}
}

func TestOnChange_ReportsScreenCursorAndFolds(t *testing.T) {
	var last ChangeEvent
	m := New(Config{
		Text:     "f {\n\tx\n}\nz",
		OnChange: func(ev ChangeEvent) { last = ev },
	})
	m = m.SetSize(20, 4)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyF2})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if last.Folds != 1 {
		t.Fatalf("folds: got %d, want 1", last.Folds)
	}
	if last.Cursor != pos(3, 0) || last.ScreenCursor != pos(1, 0) {
		t.Fatalf("cursor: got %v on screen %v, want (3,0) on screen (1,0)", last.Cursor, last.ScreenCursor)
	}
}
