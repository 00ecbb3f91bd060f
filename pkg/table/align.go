package table

import (
	"fmt"
	"strings"
)

// Horizontal is a horizontal alignment policy.
type Horizontal int

// Horizontal policies. The numeric values match the historical constants.
const (
	Left Horizontal = iota
	Center
	Right
	// AutoHorizontal right-aligns numbers and left-aligns everything else.
	AutoHorizontal
)

// Vertical is a vertical alignment policy.
type Vertical int

// Vertical policies.
const (
	Top Vertical = iota + 3
	Middle
	Bottom
	// AutoVertical behaves like Middle.
	AutoVertical
)

const (
	// DefaultPad pads aligned text.
	DefaultPad = " "
	// DefaultFill draws rules and separators.
	DefaultFill = "-"
)

func (h Horizontal) String() string {
	switch h {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	case AutoHorizontal:
		return "auto"
	default:
		return fmt.Sprintf("Horizontal(%d)", int(h))
	}
}

func (v Vertical) String() string {
	switch v {
	case Top:
		return "top"
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	case AutoVertical:
		return "auto"
	default:
		return fmt.Sprintf("Vertical(%d)", int(v))
	}
}

// ParseHorizontal maps "left", "center", "right" and "auto" to a policy.
func ParseHorizontal(s string) (Horizontal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "center", "centre", "c":
		return Center, nil
	case "right", "r":
		return Right, nil
	case "auto", "":
		return AutoHorizontal, nil
	}
	return AutoHorizontal, fmt.Errorf("%w %q", ErrUnknownAlignment, s)
}

// ParseVertical maps "top", "middle", "bottom" and "auto" to a policy.
func ParseVertical(s string) (Vertical, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "t":
		return Top, nil
	case "middle", "m":
		return Middle, nil
	case "bottom", "b":
		return Bottom, nil
	case "auto", "":
		return AutoVertical, nil
	}
	return AutoVertical, fmt.Errorf("%w %q", ErrUnknownAlignment, s)
}

// AlignLeft pads s on the right to n columns. Text already n or more
// columns wide is returned unchanged. A non-positive n yields "".
func AlignLeft(s string, n int, pad string) string {
	if n <= 0 {
		return ""
	}
	return s + repeat(pad, n-width(s))
}

// AlignRight pads s on the left to n columns.
func AlignRight(s string, n int, pad string) string {
	if n <= 0 {
		return ""
	}
	return repeat(pad, n-width(s)) + s
}

// AlignCenter splits the padding around s. The left side gets
// floor((n-len)/2); the right side gets the rest, so an odd deficit puts
// the extra pad on the right.
func AlignCenter(s string, n int, pad string) string {
	if n <= 0 {
		return ""
	}
	l := width(s)
	half := floorHalf(n - l)
	odds := abs(l%2 - n%2)
	return repeat(pad, half) + s + repeat(pad, half+odds)
}

// AlignAuto right-aligns numbers and left-aligns everything else.
func AlignAuto(c Cell, n int, pad string) string {
	return alignAuto(c.text, c.IsNumber(), n, pad)
}

// AlignHorizontal aligns c with the given policy. Unknown policies behave
// like AutoHorizontal.
func AlignHorizontal(dir Horizontal, c Cell, n int, pad string) string {
	return alignLine(dir, c.text, c.IsNumber(), n, pad)
}

func alignLine(dir Horizontal, s string, numeric bool, n int, pad string) string {
	switch dir {
	case Left:
		return AlignLeft(s, n, pad)
	case Center:
		return AlignCenter(s, n, pad)
	case Right:
		return AlignRight(s, n, pad)
	default:
		return alignAuto(s, numeric, n, pad)
	}
}

func alignAuto(s string, numeric bool, n int, pad string) string {
	if n <= 0 {
		return ""
	}
	if width(s) >= n {
		return s
	}
	if numeric {
		return AlignRight(s, n, pad)
	}
	return AlignLeft(s, n, pad)
}

// AlignTop returns the cell's lines followed by blank lines up to h.
// A cell with h or more lines is returned unchanged; a non-positive h
// yields no lines.
func AlignTop(c Cell, h int) []string {
	lines, deficit := verticalLines(c, h)
	if deficit <= 0 {
		return lines
	}
	return append(lines, blanks(deficit)...)
}

// AlignBottom returns blank lines followed by the cell's lines.
func AlignBottom(c Cell, h int) []string {
	lines, deficit := verticalLines(c, h)
	if deficit <= 0 {
		return lines
	}
	return append(blanks(deficit), lines...)
}

// AlignMiddle surrounds the cell's lines with floor(d/2) blank lines before
// and ceil(d/2) after, where d is the missing line count.
func AlignMiddle(c Cell, h int) []string {
	lines, deficit := verticalLines(c, h)
	if deficit <= 0 {
		return lines
	}
	before := deficit / 2
	out := make([]string, 0, h)
	out = append(out, blanks(before)...)
	out = append(out, lines...)
	return append(out, blanks(deficit-before)...)
}

// AlignVertical aligns c with the given policy. AutoVertical and unknown
// policies behave like Middle.
func AlignVertical(dir Vertical, c Cell, h int) []string {
	switch dir {
	case Top:
		return AlignTop(c, h)
	case Bottom:
		return AlignBottom(c, h)
	default:
		return AlignMiddle(c, h)
	}
}

func verticalLines(c Cell, h int) ([]string, int) {
	if h <= 0 {
		return []string{}, 0
	}
	lines := c.Lines()
	return lines, h - len(lines)
}

func blanks(n int) []string {
	return make([]string, n)
}

func repeat(pad string, n int) string {
	if n <= 0 {
		return ""
	}
	if pad == "" {
		pad = DefaultPad
	}
	return strings.Repeat(pad, n)
}

func floorHalf(d int) int {
	if d < 0 {
		return -((-d + 1) / 2)
	}
	return d / 2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
