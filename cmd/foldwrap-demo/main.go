package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.design/x/clipboard"

	"github.com/iw2rmb/foldwrap"
	"github.com/iw2rmb/foldwrap/editor"
	"github.com/iw2rmb/foldwrap/wrap"
)

const sample = `package main

import "fmt"

func main() {
	for i := 0; i < 3; i++ {
		fmt.Println("fold me with f2 or alt+l, unfold everything with alt+u", i)
	}
}

func long() string {
	return "a line long enough to show soft wrapping once alt+z switches the wrap mode away from none"
}
`

// systemClipboard adapts the OS clipboard to editor.Clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (systemClipboard) WriteText(s string) error {
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

type model struct {
	editor editor.Model
	path   string
	status string
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			m.status = m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) save() string {
	if m.path == "" {
		return "no file to save to"
	}
	text := m.editor.Buffer().Text()
	if err := os.WriteFile(m.path, []byte(text), 0o644); err != nil {
		log.Printf("save %s: %v", m.path, err)
		return "save failed: " + err.Error()
	}
	return fmt.Sprintf("saved %s (%s)", m.path, humanize.Bytes(uint64(len(text))))
}

func (m model) View() string {
	st := m.editor.ViewportState()
	cur := m.editor.Cursor()
	parts := []string{
		fmt.Sprintf("%d:%d", cur.Row+1, cur.Col+1),
		humanize.Comma(int64(m.editor.Buffer().LineCount())) + " lines",
		humanize.Comma(int64(st.ScreenRows)) + " rows",
		fmt.Sprintf("%d folds", m.editor.Session().Folds().Len()),
		"wrap " + st.WrapMode.String(),
		foldwrap.VersionTag(),
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return m.editor.View() + "\n" + statusStyle.Render(strings.Join(parts, " | "))
}

func main() {
	var (
		path      = flag.String("file", "", "file to open")
		tabWidth  = flag.Int("tab", 4, "tab width in cells")
		wrapName  = flag.String("wrap", "none", "wrap mode: none, text or code")
		lineNums  = flag.Bool("lines", true, "show line numbers")
		showVer   = flag.Bool("version", false, "print the version and exit")
		readOnly  = flag.Bool("readonly", false, "open without editing")
		noPreview = flag.Bool("no-preview", false, "disable the fold preview popup")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(foldwrap.VersionTag())
		return
	}

	if os.Getenv("FOLDWRAP_DEBUG") != "" {
		f, err := tea.LogToFile("foldwrap-debug.log", "debug")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	mode, ok := wrap.ParseMode(*wrapName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown wrap mode %q\n", *wrapName)
		os.Exit(2)
	}

	text := sample
	if *path != "" {
		b, err := os.ReadFile(*path)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		text = string(b)
	}

	cfg := editor.Config{
		Text:         text,
		TabWidth:     *tabWidth,
		WrapMode:     mode,
		ShowLineNums: *lineNums,
		Style:        editor.DefaultStyle(),
		ReadOnly:     *readOnly,
	}
	if *noPreview {
		cfg.FoldPreviewRows = -1
	}
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard init: %v", err)
	} else {
		cfg.Clipboard = systemClipboard{}
	}
	cfg.OnChange = func(ev editor.ChangeEvent) {
		if ev.HasChange {
			log.Printf("version %d: %d deltas, cursor %v", ev.Version, len(ev.Change.Deltas), ev.Cursor)
		}
	}

	m := model{editor: editor.New(cfg), path: *path}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
