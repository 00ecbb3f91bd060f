package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/asciitable/pkg/table"
)

// Terminal renders tables as styled terminal output via lipgloss. Styling
// never changes the visible glyphs, so a colored table lines up exactly like
// the plain one.
type Terminal struct {
	theme Theme
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme) *Terminal {
	return &Terminal{theme: theme}
}

// Render formats the table for terminal display.
func (t *Terminal) Render(tbl *table.Table) string {
	var sb strings.Builder
	for _, line := range tbl.Lines() {
		sb.WriteString(tbl.Prefix())
		sb.WriteString(t.style(line.Kind).Render(line.Text))
		sb.WriteString("\n")
	}
	return sb.String()
}

// style picks the theme style for a line kind. Tabs are passed through
// because the table measures a tab as one column.
func (t *Terminal) style(kind table.LineKind) lipgloss.Style {
	var s lipgloss.Style
	switch kind {
	case table.LineTitle:
		s = t.theme.Title
	case table.LineHeading:
		s = t.theme.Heading
	case table.LineBody:
		s = t.theme.Body
	case table.LineRowSeparator:
		s = t.theme.Muted
	default:
		s = t.theme.Border
	}
	return s.TabWidth(lipgloss.NoTabConversion)
}
