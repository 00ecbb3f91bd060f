package render

import "github.com/dkoosis/asciitable/pkg/table"

// Plain renders the table text exactly as the table draws it, with no ANSI
// codes, followed by a newline.
type Plain struct{}

// NewPlain creates a plain text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats the table as plain text.
func (p *Plain) Render(t *table.Table) string {
	return t.Render() + "\n"
}
