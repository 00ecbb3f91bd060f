package render

import (
	"encoding/json"

	"github.com/dkoosis/asciitable/pkg/table"
)

// JSON renders the table snapshot as indented JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// Render formats the title, heading and rows as JSON.
func (j *JSON) Render(t *table.Table) string {
	data, err := json.MarshalIndent(t.ToJSON(), "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
