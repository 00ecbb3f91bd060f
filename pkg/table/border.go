package table

// Border is the set of glyphs drawn around and between cells.
type Border struct {
	// Edge separates cells and closes each line on both sides.
	Edge string
	// Fill draws the horizontal rules and the heading separator.
	Fill string
	// Top and Bottom are the corners of the top and bottom rules.
	Top    string
	Bottom string
	// RowSeparator fills the optional lines between data rows.
	RowSeparator string
}

// DefaultBorder returns the classic ASCII border.
func DefaultBorder() Border {
	return Border{
		Edge:         "|",
		Fill:         DefaultFill,
		Top:          ".",
		Bottom:       "'",
		RowSeparator: DefaultFill,
	}
}

// SetBorder sets, in order, the edge, fill, top corner, bottom corner and
// row separator glyphs. Missing or empty parts take their defaults. A
// single part is used for the edge, fill and both corners. SetBorder also
// undoes RemoveBorder.
func (t *Table) SetBorder(parts ...string) *Table {
	if len(parts) == 1 {
		parts = []string{parts[0], parts[0], parts[0], parts[0]}
	}
	b := DefaultBorder()
	for i, dst := range []*string{&b.Edge, &b.Fill, &b.Top, &b.Bottom, &b.RowSeparator} {
		if i < len(parts) && parts[i] != "" {
			*dst = parts[i]
		}
	}
	t.border = b
	t.bordered = true
	return t
}

// RemoveBorder replaces the edge, fill and row separator glyphs with spaces
// and drops the top rule, bottom rule and title separator. Cell positions
// do not move.
func (t *Table) RemoveBorder() *Table {
	t.bordered = false
	t.border.Edge = " "
	t.border.Fill = " "
	t.border.RowSeparator = " "
	return t
}

// Border returns the current glyphs.
func (t *Table) Border() Border { return t.border }

// Bordered reports whether the outer rules are drawn.
func (t *Table) Bordered() bool { return t.bordered }
