// Package render provides output renderers for asciitable tables.
package render

import "github.com/dkoosis/asciitable/pkg/table"

// Renderer converts a table to formatted output.
type Renderer interface {
	Render(t *table.Table) string
}
