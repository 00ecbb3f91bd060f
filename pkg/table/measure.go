package table

// Metrics holds the sizes Measure derives from a set of rows.
type Metrics struct {
	// ColWidths is the widest line, in runes, of each column.
	ColWidths []int
	// RowHeights is the tallest cell, in lines, of each row.
	RowHeights []int
}

// Measure scans rows over the given number of columns. Missing and empty
// cells contribute neither width nor lines, so an all-empty row has height 0.
func Measure(rows [][]Cell, columns int) Metrics {
	m := Metrics{
		ColWidths:  make([]int, max(columns, 0)),
		RowHeights: make([]int, len(rows)),
	}
	for i, row := range rows {
		for k := range m.ColWidths {
			c := cellAt(row, k)
			if c.kind == KindEmpty {
				continue
			}
			lines := c.Lines()
			for _, line := range lines {
				m.ColWidths[k] = max(m.ColWidths[k], width(line))
			}
			m.RowHeights[i] = max(m.RowHeights[i], len(lines))
		}
	}
	return m
}

// MaxWidth returns the widest column, or 0 when there are no columns.
func (m Metrics) MaxWidth() int {
	w := 0
	for _, cw := range m.ColWidths {
		w = max(w, cw)
	}
	return w
}
