package table

// Options are construction-time settings that survive Clear and Reset.
type Options struct {
	// Prefix is written at the start of every rendered line.
	Prefix string
}

// Table is the aggregate of title, heading, rows and layout settings.
// Use New or NewWithOptions; the zero value has no border glyphs.
type Table struct {
	title        string
	titleAlign   Horizontal
	heading      []Cell
	headingAlign Horizontal
	rows         [][]Cell
	maxCells     int
	hAligns      map[int]Horizontal
	vAligns      map[int]Vertical
	border       Border
	bordered     bool
	rowSep       bool
	justify      bool
	spacing      int
	prefix       string
}

// New returns an empty table with the given title and the default border.
func New(title string) *Table {
	return NewWithOptions(title, Options{})
}

// NewWithOptions is New with construction options.
func NewWithOptions(title string, opts Options) *Table {
	t := &Table{prefix: opts.Prefix}
	return t.Reset(title)
}

// SetPrefix sets the string written before every rendered line.
func (t *Table) SetPrefix(prefix string) *Table {
	t.prefix = prefix
	return t
}

// Prefix returns the line prefix.
func (t *Table) Prefix() string { return t.prefix }

// SetTitle sets the title. An empty title renders no title line.
func (t *Table) SetTitle(title string) *Table {
	t.title = title
	return t
}

// Title returns the title.
func (t *Table) Title() string { return t.title }

// SetTitleAlign sets how the title is aligned within the table width.
func (t *Table) SetTitleAlign(dir Horizontal) *Table {
	t.titleAlign = dir
	return t
}

func (t *Table) SetTitleAlignLeft() *Table   { return t.SetTitleAlign(Left) }
func (t *Table) SetTitleAlignCenter() *Table { return t.SetTitleAlign(Center) }
func (t *Table) SetTitleAlignRight() *Table  { return t.SetTitleAlign(Right) }

// TitleAlign returns the title alignment.
func (t *Table) TitleAlign() Horizontal { return t.titleAlign }

// SetHeading sets the heading row. Calling it with no cells keeps an empty
// heading row, which still renders a heading separator.
func (t *Table) SetHeading(cells ...any) *Table {
	t.heading = newRow(cells)
	t.maxCells = max(t.maxCells, len(t.heading))
	return t
}

// Heading returns a copy of the heading values, or ErrNoHeading.
func (t *Table) Heading() ([]any, error) {
	if t.heading == nil {
		return nil, ErrNoHeading
	}
	return rowValues(t.heading), nil
}

// HasHeading reports whether a heading has been set.
func (t *Table) HasHeading() bool { return t.heading != nil }

// SetHeadingAlign sets the horizontal alignment used for every heading
// cell. AutoHorizontal defers to the column's own alignment.
func (t *Table) SetHeadingAlign(dir Horizontal) *Table {
	t.headingAlign = dir
	return t
}

func (t *Table) SetHeadingAlignLeft() *Table   { return t.SetHeadingAlign(Left) }
func (t *Table) SetHeadingAlignCenter() *Table { return t.SetHeadingAlign(Center) }
func (t *Table) SetHeadingAlignRight() *Table  { return t.SetHeadingAlign(Right) }

// HeadingAlign returns the heading alignment.
func (t *Table) HeadingAlign() Horizontal { return t.headingAlign }

// AddRow appends a row. Rows shorter than the widest row render with
// empty trailing cells.
func (t *Table) AddRow(cells ...any) *Table {
	row := newRow(cells)
	t.maxCells = max(t.maxCells, len(row))
	t.rows = append(t.rows, row)
	return t
}

// AddRowMatrix appends every row of rows in order.
func (t *Table) AddRowMatrix(rows [][]any) *Table {
	for _, row := range rows {
		t.AddRow(row...)
	}
	return t
}

// AddData appends one row per element of data, built by fn.
func AddData[T any](t *Table, data []T, fn func(T) []any) *Table {
	for _, d := range data {
		t.AddRow(fn(d)...)
	}
	return t
}

// AddDataMatrix appends the rows fn builds for each element of data.
func AddDataMatrix[T any](t *Table, data []T, fn func(T) [][]any) *Table {
	for _, d := range data {
		t.AddRowMatrix(fn(d))
	}
	return t
}

// Rows returns copies of all rows.
func (t *Table) Rows() [][]any {
	rows := make([][]any, len(t.rows))
	for i, row := range t.rows {
		rows[i] = rowValues(row)
	}
	return rows
}

// ClearRows removes all rows, keeping title, heading and settings.
func (t *Table) ClearRows() *Table {
	t.rows = nil
	t.maxCells = len(t.heading)
	return t
}

// ColumnCount returns the widest row length seen, heading included.
func (t *Table) ColumnCount() int { return t.maxCells }

// SetAlignHorizontal overrides the horizontal alignment of column idx.
func (t *Table) SetAlignHorizontal(idx int, dir Horizontal) *Table {
	if t.hAligns == nil {
		t.hAligns = make(map[int]Horizontal)
	}
	t.hAligns[idx] = dir
	return t
}

// SetAlignVertical overrides the vertical alignment of column idx.
func (t *Table) SetAlignVertical(idx int, dir Vertical) *Table {
	if t.vAligns == nil {
		t.vAligns = make(map[int]Vertical)
	}
	t.vAligns[idx] = dir
	return t
}

func (t *Table) SetAlignLeft(idx int) *Table   { return t.SetAlignHorizontal(idx, Left) }
func (t *Table) SetAlignCenter(idx int) *Table { return t.SetAlignHorizontal(idx, Center) }
func (t *Table) SetAlignRight(idx int) *Table  { return t.SetAlignHorizontal(idx, Right) }
func (t *Table) SetAlignTop(idx int) *Table    { return t.SetAlignVertical(idx, Top) }
func (t *Table) SetAlignMiddle(idx int) *Table { return t.SetAlignVertical(idx, Middle) }
func (t *Table) SetAlignBottom(idx int) *Table { return t.SetAlignVertical(idx, Bottom) }

// AlignHorizontalAt returns the horizontal policy of column idx.
func (t *Table) AlignHorizontalAt(idx int) Horizontal {
	if dir, ok := t.hAligns[idx]; ok {
		return dir
	}
	return AutoHorizontal
}

// AlignVerticalAt returns the vertical policy of column idx.
func (t *Table) AlignVerticalAt(idx int) Vertical {
	if dir, ok := t.vAligns[idx]; ok {
		return dir
	}
	return AutoVertical
}

// EnableRowSeparator draws a separator line between data rows.
func (t *Table) EnableRowSeparator() *Table {
	t.rowSep = true
	return t
}

// DisableRowSeparator stops drawing separators between data rows.
func (t *Table) DisableRowSeparator() *Table {
	t.rowSep = false
	return t
}

// RowSeparator reports whether row separators are drawn.
func (t *Table) RowSeparator() bool { return t.rowSep }

// SetJustify gives every column the width of the widest one when on.
func (t *Table) SetJustify(on bool) *Table {
	t.justify = on
	return t
}

// Justify reports whether columns share one width.
func (t *Table) Justify() bool { return t.justify }

// Clear resets the table to its initial state. Options are kept.
func (t *Table) Clear() *Table {
	return t.Reset(nil)
}

// Reset clears the table and then initializes it from from: a string is
// used as the title, a Snapshot (or *Snapshot) is loaded with FromJSON.
// Any other value, nil included, leaves the table empty.
func (t *Table) Reset(from any) *Table {
	*t = Table{
		titleAlign:   Center,
		headingAlign: Center,
		border:       DefaultBorder(),
		bordered:     true,
		spacing:      1,
		prefix:       t.prefix,
	}
	switch v := from.(type) {
	case string:
		t.title = v
	case Snapshot:
		t.FromJSON(v)
	case *Snapshot:
		if v != nil {
			t.FromJSON(*v)
		}
	}
	return t
}
