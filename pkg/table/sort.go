package table

import (
	"cmp"
	"slices"

	"github.com/spf13/cast"
)

// Sort orders the rows with compare, which receives copies of two rows' values
// and returns a negative, zero or positive number. The sort is stable.
// A panic in compare is not recovered.
func (t *Table) Sort(compare func(a, b []any) int) *Table {
	slices.SortStableFunc(t.rows, func(a, b []Cell) int {
		return compare(rowValues(a), rowValues(b))
	})
	return t
}

// SortColumn orders the rows by the values in column idx. Missing cells
// are passed to compare as nil.
func (t *Table) SortColumn(idx int, compare func(a, b any) int) *Table {
	slices.SortStableFunc(t.rows, func(a, b []Cell) int {
		return compare(cellAt(a, idx).value, cellAt(b, idx).value)
	})
	return t
}

// CompareValues is a ready-made SortColumn comparator. Two numbers compare
// numerically; anything else compares by text. Empty values sort first.
func CompareValues(a, b any) int {
	ca, cb := NewCell(a), NewCell(b)
	if ca.IsNumber() && cb.IsNumber() {
		fa, errA := cast.ToFloat64E(ca.value)
		fb, errB := cast.ToFloat64E(cb.value)
		if errA == nil && errB == nil {
			return cmp.Compare(fa, fb)
		}
	}
	return cmp.Compare(ca.text, cb.text)
}
