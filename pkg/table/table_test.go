package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Title(t *testing.T) {
	tbl := New("meow")
	assert.Equal(t, "meow", tbl.Title())
	tbl.SetTitle("bark")
	assert.Equal(t, "bark", tbl.Title())

	assert.Equal(t, Center, tbl.TitleAlign())
	assert.Equal(t, Left, tbl.SetTitleAlignLeft().TitleAlign())
	assert.Equal(t, Right, tbl.SetTitleAlignRight().TitleAlign())
	assert.Equal(t, Center, tbl.SetTitleAlignCenter().TitleAlign())
}

func TestTable_HeadingBeforeSetIsAnError(t *testing.T) {
	tbl := New("")
	assert.False(t, tbl.HasHeading())

	_, err := tbl.Heading()
	require.ErrorIs(t, err, ErrNoHeading)
}

func TestTable_HeadingIsACopy(t *testing.T) {
	tbl := New("").SetHeading("one", "two", "three")

	h, err := tbl.Heading()
	require.NoError(t, err)
	h[0] = "test"

	again, err := tbl.Heading()
	require.NoError(t, err)
	assert.Equal(t, []any{"one", "two", "three"}, again)
}

func TestTable_RowsAreCopies(t *testing.T) {
	tbl := New("").AddRow(1, 2, 3).AddRow(4, 5, 6)

	rows := tbl.Rows()
	rows[0][0] = "test"
	rows[1] = nil

	assert.Equal(t, [][]any{{1, 2, 3}, {4, 5, 6}}, tbl.Rows())
}

func TestTable_ColumnCountIncludesHeading(t *testing.T) {
	tbl := New("").SetHeading("a", "b", "c").AddRow(1)
	assert.Equal(t, 3, tbl.ColumnCount())

	tbl.AddRow(1, 2, 3, 4)
	assert.Equal(t, 4, tbl.ColumnCount())

	tbl.ClearRows()
	assert.Empty(t, tbl.Rows())
	assert.Equal(t, 3, tbl.ColumnCount())
	assert.True(t, tbl.HasHeading())
}

func TestTable_AddData(t *testing.T) {
	type person struct {
		name string
		age  int
	}
	people := []person{{"Bob", 52}, {"John", 34}}

	tbl := AddData(New(""), people, func(p person) []any {
		return []any{p.name, p.age}
	})
	assert.Equal(t, [][]any{{"Bob", 52}, {"John", 34}}, tbl.Rows())

	AddDataMatrix(tbl, people, func(p person) [][]any {
		return [][]any{{p.name}, {p.age}}
	})
	assert.Len(t, tbl.Rows(), 6)

	AddData(tbl, nil, func(p person) []any { return nil })
	assert.Len(t, tbl.Rows(), 6, "nil data is a no-op")
}

func TestTable_AlignmentSetters(t *testing.T) {
	tbl := New("")
	assert.Equal(t, AutoHorizontal, tbl.AlignHorizontalAt(0))
	assert.Equal(t, AutoVertical, tbl.AlignVerticalAt(0))

	tbl.SetAlignLeft(0).SetAlignCenter(1).SetAlignRight(2)
	tbl.SetAlignTop(0).SetAlignMiddle(1).SetAlignBottom(2)

	assert.Equal(t, []Horizontal{Left, Center, Right},
		[]Horizontal{tbl.AlignHorizontalAt(0), tbl.AlignHorizontalAt(1), tbl.AlignHorizontalAt(2)})
	assert.Equal(t, []Vertical{Top, Middle, Bottom},
		[]Vertical{tbl.AlignVerticalAt(0), tbl.AlignVerticalAt(1), tbl.AlignVerticalAt(2)})

	tbl.SetHeadingAlignLeft()
	assert.Equal(t, Left, tbl.HeadingAlign())
	tbl.SetHeadingAlignRight()
	assert.Equal(t, Right, tbl.HeadingAlign())
	tbl.SetHeadingAlignCenter()
	assert.Equal(t, Center, tbl.HeadingAlign())
}

func TestTable_SetBorder(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  Border
	}{
		{"defaults", nil, DefaultBorder()},
		{"single glyph", []string{"*"}, Border{Edge: "*", Fill: "*", Top: "*", Bottom: "*", RowSeparator: "-"}},
		{"partial", []string{"#", "="}, Border{Edge: "#", Fill: "=", Top: ".", Bottom: "'", RowSeparator: "-"}},
		{"empty parts default", []string{"", "", "+", "+", "~"}, Border{Edge: "|", Fill: "-", Top: "+", Bottom: "+", RowSeparator: "~"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New("").RemoveBorder().SetBorder(tt.parts...)
			assert.Equal(t, tt.want, tbl.Border())
			assert.True(t, tbl.Bordered())
		})
	}
}

func TestTable_RemoveBorder(t *testing.T) {
	tbl := New("").RemoveBorder()
	assert.False(t, tbl.Bordered())
	assert.Equal(t, " ", tbl.Border().Edge)
	assert.Equal(t, " ", tbl.Border().Fill)
	assert.Equal(t, " ", tbl.Border().RowSeparator)
}

func TestTable_Sort(t *testing.T) {
	tbl := New("").
		AddRow(3, "c").
		AddRow(1, "a").
		AddRow(2, "b")

	tbl.Sort(func(a, b []any) int {
		return strings.Compare(b[1].(string), a[1].(string))
	})
	assert.Equal(t, [][]any{{3, "c"}, {2, "b"}, {1, "a"}}, tbl.Rows())

	tbl.SortColumn(0, CompareValues)
	assert.Equal(t, [][]any{{1, "a"}, {2, "b"}, {3, "c"}}, tbl.Rows())
}

func TestTable_SortColumnPassesNilForMissingCells(t *testing.T) {
	tbl := New("").AddRow("x", "b").AddRow("y").AddRow("z", "a")

	var sawNil bool
	tbl.SortColumn(1, func(a, b any) int {
		if a == nil || b == nil {
			sawNil = true
		}
		return CompareValues(a, b)
	})
	assert.True(t, sawNil)
	assert.Equal(t, [][]any{{"y"}, {"z", "a"}, {"x", "b"}}, tbl.Rows())
}

func TestTable_SortComparatorPanicPropagates(t *testing.T) {
	tbl := New("").AddRow(1).AddRow(2)
	assert.PanicsWithValue(t, "boom", func() {
		tbl.SortColumn(0, func(a, b any) int { panic("boom") })
	})
}

func TestCompareValues(t *testing.T) {
	assert.Negative(t, CompareValues(2, 10), "numbers compare numerically")
	assert.Positive(t, CompareValues("2", "10"), "text compares lexically")
	assert.Zero(t, CompareValues(2.0, 2))
	assert.Negative(t, CompareValues(nil, "a"))
}

func TestTable_ResetAndClear(t *testing.T) {
	tbl := New("title").
		SetHeading("a").
		AddRow(1).
		SetAlignRight(0).
		SetJustify(true).
		EnableRowSeparator().
		RemoveBorder()

	tbl.Clear()
	assert.Equal(t, "", tbl.Title())
	assert.False(t, tbl.HasHeading())
	assert.Empty(t, tbl.Rows())
	assert.Equal(t, 0, tbl.ColumnCount())
	assert.Equal(t, AutoHorizontal, tbl.AlignHorizontalAt(0))
	assert.False(t, tbl.Justify())
	assert.False(t, tbl.RowSeparator())
	assert.True(t, tbl.Bordered())
	assert.Equal(t, DefaultBorder(), tbl.Border())

	tbl.Reset("again")
	assert.Equal(t, "again", tbl.Title())

	snap := Snapshot{Title: "snap", Heading: []any{"h"}, Rows: [][]any{{1}, {2}}}
	tbl.Reset(snap)
	assert.Equal(t, snap, tbl.ToJSON())

	tbl.Reset(&snap)
	assert.Equal(t, snap, tbl.ToJSON())

	tbl.Reset(42)
	assert.Equal(t, Snapshot{Rows: [][]any{}}, tbl.ToJSON())
}
