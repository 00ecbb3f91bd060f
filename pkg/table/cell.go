package table

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// Kind tags a cell with the type information auto alignment depends on.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindMultiline
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindMultiline:
		return "multiline"
	case KindNumber:
		return "number"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Cell is one table value together with its text form and Kind.
// The kind is fixed when the cell is created and never re-derived.
type Cell struct {
	value any
	text  string
	kind  Kind
}

// NewCell wraps v. Integers, floats and json.Number are numbers; nil and
// values that print as "" are empty; text containing a newline is multiline.
// A Cell passed to NewCell is returned as is.
func NewCell(v any) Cell {
	switch x := v.(type) {
	case nil:
		return Cell{}
	case Cell:
		return x
	case *Cell:
		if x == nil {
			return Cell{}
		}
		return *x
	}

	c := Cell{value: v, text: stringify(v), kind: KindText}
	switch {
	case isNumber(v):
		c.kind = KindNumber
	case c.text == "":
		c.kind = KindEmpty
	case strings.Contains(c.text, "\n"):
		c.kind = KindMultiline
	}
	return c
}

// Value returns the value the cell was created from.
func (c Cell) Value() any { return c.value }

// String returns the cell's text.
func (c Cell) String() string { return c.text }

// Kind returns the cell's type tag.
func (c Cell) Kind() Kind { return c.kind }

// IsNumber reports whether the cell holds a numeric value.
func (c Cell) IsNumber() bool { return c.kind == KindNumber }

// Width returns the rune count of the widest line of the cell.
func (c Cell) Width() int {
	w := 0
	for _, line := range c.Lines() {
		w = max(w, width(line))
	}
	return w
}

// Lines splits the cell text on newlines. Numeric cells are split too,
// since a json.Number built by hand can carry any text.
func (c Cell) Lines() []string {
	return strings.Split(c.text, "\n")
}

func stringify(v any) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}

func cellAt(row []Cell, k int) Cell {
	if k < 0 || k >= len(row) {
		return Cell{}
	}
	return row[k]
}

func newRow(values []any) []Cell {
	row := make([]Cell, len(values))
	for i, v := range values {
		row[i] = NewCell(v)
	}
	return row
}

func rowValues(row []Cell) []any {
	values := make([]any, len(row))
	for i, c := range row {
		values[i] = c.value
	}
	return values
}
