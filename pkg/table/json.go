package table

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Snapshot is the serializable content of a table. Alignment, border and
// layout settings are not part of it and do not survive a round trip.
type Snapshot struct {
	Title   string  `json:"title" yaml:"title"`
	Heading []any   `json:"heading" yaml:"heading"`
	Rows    [][]any `json:"rows" yaml:"rows"`
}

// ToJSON returns a snapshot of the title, heading and rows. Heading is nil
// when no heading is set. The slices are copies.
func (t *Table) ToJSON() Snapshot {
	s := Snapshot{Title: t.title, Rows: t.Rows()}
	if t.heading != nil {
		s.Heading = rowValues(t.heading)
	}
	return s
}

// FromJSON clears the table and loads title, heading and rows from s.
// A nil heading leaves the table without one.
func (t *Table) FromJSON(s Snapshot) *Table {
	t.Clear()
	t.SetTitle(s.Title)
	if s.Heading != nil {
		t.SetHeading(s.Heading...)
	}
	return t.AddRowMatrix(s.Rows)
}

// MarshalJSON encodes the table snapshot.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToJSON())
}

// UnmarshalJSON loads a snapshot. Numbers are kept as json.Number so they
// render exactly as written. Members of an unexpected type are ignored and
// a row that is not an array becomes a single-cell row. Only malformed
// JSON, or a document that is not an object, is an error.
func (t *Table) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode table snapshot: %w", err)
	}

	var s Snapshot
	if title, ok := decodeLoose(raw["title"]).(string); ok {
		s.Title = title
	}
	if heading, ok := decodeLoose(raw["heading"]).([]any); ok {
		s.Heading = heading
	}
	if rows, ok := decodeLoose(raw["rows"]).([]any); ok {
		for _, r := range rows {
			if row, ok := r.([]any); ok {
				s.Rows = append(s.Rows, row)
			} else {
				s.Rows = append(s.Rows, []any{r})
			}
		}
	}
	t.FromJSON(s)
	return nil
}

func decodeLoose(msg json.RawMessage) any {
	if len(msg) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}
