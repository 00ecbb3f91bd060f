package table_test

import (
	"fmt"

	"github.com/dkoosis/asciitable/pkg/table"
)

func Example() {
	t := table.New("A Title").
		SetHeading("", "Name", "Age").
		AddRow(1, "Bob", 52).
		AddRow(2, "John", 34).
		AddRow(3, "Jim", 83)
	fmt.Println(t)
	// Output:
	// .------------------.
	// |     A Title      |
	// |------------------|
	// |    | Name  | Age |
	// |----|-------|-----|
	// |  1 | Bob   |  52 |
	// |  2 | John  |  34 |
	// |  3 | Jim   |  83 |
	// '------------------'
}

func ExampleTable_EnableRowSeparator() {
	t := table.New("config").
		SetHeading("key", "value").
		AddRow("retries", 3).
		AddRow("backoff", "2s").
		EnableRowSeparator()
	fmt.Println(t.Render())
	// Output:
	// .------------------.
	// |      config      |
	// |------------------|
	// |   key    | value |
	// |----------|-------|
	// | retries  |     3 |
	// |----------|-------|
	// | backoff  | 2s    |
	// '------------------'
}

func ExampleAlignCenter() {
	fmt.Printf("%q\n", table.AlignCenter("bar", 11, "-"))
	fmt.Printf("%q\n", table.AlignCenter("bar", 10, "-"))
	// Output:
	// "----bar----"
	// "---bar----"
}
