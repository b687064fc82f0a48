package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering. The zero Style renders plain text;
// use DefaultStyle for the stock look.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style
	FoldMarker    lipgloss.Style

	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	// Preview styles the fold preview popup.
	Preview lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		FoldMarker:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Text:          lipgloss.NewStyle(),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("236")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Preview:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235")),
	}
}
