package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/foldwrap/buffer"
	"github.com/iw2rmb/foldwrap/screen"
	"github.com/iw2rmb/foldwrap/session"
	"github.com/iw2rmb/foldwrap/wrap"
)

// Model is a Bubble Tea component that edits one session.
type Model struct {
	cfg  Config
	sess *session.Session

	cursor buffer.Pos
	// goalCol is the screen column vertical movement aims for; -1 when unset.
	goalCol int

	focused bool

	viewport viewport.Model
	xOffset  int

	lastVersion uint64
	lastCursor  buffer.Pos
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg: cfg,
		sess: session.New(session.Config{
			Text:        cfg.Text,
			TabWidth:    cfg.TabWidth,
			WrapMode:    cfg.WrapMode,
			RangeFinder: cfg.RangeFinder,
		}),
		goalCol:  -1,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = m.sess.Buffer().Version()
	m.rebuildContent()
	return m
}

// Session exposes the document, folds and screen mapper behind the editor.
// Edits made through it are picked up on the next Update.
func (m Model) Session() *session.Session { return m.sess }

func (m Model) Buffer() *buffer.Buffer { return m.sess.Buffer() }

func (m Model) Cursor() buffer.Pos { return m.cursor }

// SetCursor moves the cursor to p, clamped to the document.
func (m Model) SetCursor(p buffer.Pos) Model {
	m.cursor = m.sess.Buffer().ClampPos(p)
	m.goalCol = -1
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// SetSize resizes the editor and rewraps to the new text width.
func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	if w := m.contentWidth(); w > 0 {
		m.mapper().AdjustWrapLimit(w)
	}
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetWrapMode switches soft wrapping.
func (m Model) SetWrapMode(mode wrap.Mode) Model {
	m.mapper().SetWrapMode(mode)
	m.cfg.WrapMode = mode
	m.xOffset = 0
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) WrapMode() wrap.Mode { return m.mapper().Config().WrapMode }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		return m, nil
	}
	m.sync()
	return m, cmd
}

func (m Model) View() string {
	base := m.viewport.View()
	if popup, ok := m.foldPreview(base); ok {
		return popup
	}
	return base
}

func (m Model) mapper() *screen.Mapper { return m.sess.Screen() }

// sync re-renders after edits made through the session or the model, keeps
// the cursor inside the document and reports changes to the host.
func (m *Model) sync() {
	buf := m.sess.Buffer()
	m.cursor = buf.ClampPos(m.cursor)
	ver := buf.Version()
	if ver == m.lastVersion && m.cursor == m.lastCursor {
		m.rebuildContent()
		return
	}
	m.lastVersion = ver
	m.lastCursor = m.cursor
	m.rebuildContent()
	m.followCursor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.changeEvent())
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}
