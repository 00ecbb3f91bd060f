// Package table renders rows of values as fixed-width, bordered text tables
// for terminal and log output.
//
// A Table is built up with chained setters and rendered with Render:
//
//	t := table.New("A Title").
//		SetHeading("", "Name", "Age").
//		AddRow(1, "Bob", 52).
//		AddRow(2, "John", 34)
//	fmt.Println(t.Render())
//
// produces
//
//	.------------------.
//	|     A Title      |
//	|------------------|
//	|    | Name  | Age |
//	|----|-------|-----|
//	|  1 | Bob   |  52 |
//	|  2 | John  |  34 |
//	'------------------'
//
// Rendering happens in three steps. Measurement finds the widest line of
// every column and the tallest cell of every row. Alignment pads each line
// horizontally (left, center, right or by value type) and each cell
// vertically (top, middle, bottom). Assembly joins the aligned cells with
// the border glyphs.
//
// Width is counted in runes: one rune is one column. East Asian wide runes
// and escape sequences are not measured specially.
//
// A Table is not safe for concurrent mutation. Render only reads state and
// may be called from several goroutines once building is done.
package table
