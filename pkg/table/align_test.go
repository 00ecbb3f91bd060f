package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignLeft(t *testing.T) {
	assert.Equal(t, "foo"+strings.Repeat(" ", 27), AlignLeft("foo", 30, " "))
	assert.Equal(t, "bar-------", AlignLeft("bar", 10, "-"))
	assert.Equal(t, "a  ", AlignLeft("a", 3, ""), "empty pad falls back to a space")
}

func TestAlignRight(t *testing.T) {
	assert.Equal(t, strings.Repeat(" ", 27)+"foo", AlignRight("foo", 30, " "))
	assert.Equal(t, "-------bar", AlignRight("bar", 10, "-"))
}

func TestAlignCenter(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		pad  string
		want string
	}{
		{"foo", 30, " ", "             foo              "},
		{"bar", 10, "-", "---bar----"},
		{"bars", 10, "-", "---bars---"},
		{"bar", 11, "-", "----bar----"},
		{"", 1, "-", "-"},
		{"ab", 3, "-", "ab-"},
		{"abcdef", 3, "-", "abcdef"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AlignCenter(tt.in, tt.n, tt.pad), "AlignCenter(%q, %d)", tt.in, tt.n)
	}
}

func TestAlignCenter_SplitsPaddingFloorLeft(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for l := 0; l <= n; l++ {
			s := strings.Repeat("x", l)
			got := AlignCenter(s, n, "-")
			require.Len(t, got, n, "n=%d l=%d", n, l)

			left := len(got) - len(strings.TrimLeft(got, "-"))
			if l == 0 {
				left = (n - l) / 2
			}
			assert.Equal(t, (n-l)/2, left, "left pad for n=%d l=%d", n, l)
			assert.GreaterOrEqual(t, n-l-left, left, "extra pad goes right for n=%d l=%d", n, l)
		}
	}
}

func TestAlign_NonPositiveWidthYieldsEmpty(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		assert.Empty(t, AlignLeft("abc", n, " "))
		assert.Empty(t, AlignRight("abc", n, " "))
		assert.Empty(t, AlignCenter("abc", n, " "))
		assert.Empty(t, AlignAuto(NewCell(12), n, " "))
	}
}

func TestAlignLeftRight_LengthIsMaxOfTargetAndInput(t *testing.T) {
	for _, s := range []string{"", "a", "abc", "abcdefgh"} {
		for n := 1; n <= 10; n++ {
			want := max(n, len(s))
			assert.Len(t, AlignLeft(s, n, " "), want)
			assert.Len(t, AlignRight(s, n, " "), want)
			if len(s) >= n {
				assert.Equal(t, s, AlignLeft(s, n, " "))
				assert.Equal(t, s, AlignRight(s, n, " "))
			}
		}
	}
}

func TestAlignAuto(t *testing.T) {
	assert.Equal(t, "   52", AlignAuto(NewCell(52), 5, " "))
	assert.Equal(t, "  2.5", AlignAuto(NewCell(2.5), 5, " "))
	assert.Equal(t, "ab   ", AlignAuto(NewCell("ab"), 5, " "))
	assert.Equal(t, "52   ", AlignAuto(NewCell("52"), 5, " "), "numeric text is still text")
	assert.Equal(t, "123456", AlignAuto(NewCell(123456), 3, " "))
}

func TestAlignHorizontal_Dispatch(t *testing.T) {
	c := NewCell("a")
	assert.Equal(t, "a   ", AlignHorizontal(Left, c, 4, " "))
	assert.Equal(t, " a  ", AlignHorizontal(Center, c, 4, " "))
	assert.Equal(t, "   a", AlignHorizontal(Right, c, 4, " "))
	assert.Equal(t, "a   ", AlignHorizontal(AutoHorizontal, c, 4, " "))
	assert.Equal(t, "   7", AlignHorizontal(Horizontal(42), NewCell(7), 4, " "), "unknown policy is auto")
}

func TestAlignVertical(t *testing.T) {
	two := NewCell("a\nb")
	assert.Equal(t, []string{"a", "b", "", ""}, AlignTop(two, 4))
	assert.Equal(t, []string{"", "", "a", "b"}, AlignBottom(two, 4))
	assert.Equal(t, []string{"", "a", "b", ""}, AlignMiddle(two, 4))
	assert.Equal(t, []string{"", "a", "b", ""}, AlignVertical(AutoVertical, two, 4))
}

func TestAlignMiddle_OddDeficitPutsExtraLineAfter(t *testing.T) {
	assert.Equal(t, []string{"", "a", "", ""}, AlignMiddle(NewCell("a"), 4))
	assert.Equal(t, []string{"", "a", ""}, AlignMiddle(NewCell("a"), 3))
	assert.Equal(t, []string{"a", ""}, AlignMiddle(NewCell("a"), 2))
}

func TestAlignVertical_NeverTruncates(t *testing.T) {
	c := NewCell("a\nb\nc")
	for _, dir := range []Vertical{Top, Middle, Bottom} {
		assert.Equal(t, []string{"a", "b", "c"}, AlignVertical(dir, c, 2))
	}
}

func TestAlignVertical_NonPositiveHeightYieldsNoLines(t *testing.T) {
	assert.Empty(t, AlignTop(NewCell("a"), 0))
	assert.Empty(t, AlignMiddle(NewCell("a"), -1))
	assert.Empty(t, AlignBottom(NewCell("a"), 0))
}

func TestAlignVertical_NumberIsOneLine(t *testing.T) {
	assert.Equal(t, []string{"", "42", ""}, AlignMiddle(NewCell(42), 3))
	assert.Equal(t, []string{""}, AlignTop(NewCell(nil), 1))
}

func TestParseAlignment(t *testing.T) {
	h, err := ParseHorizontal(" Right ")
	require.NoError(t, err)
	assert.Equal(t, Right, h)

	v, err := ParseVertical("bottom")
	require.NoError(t, err)
	assert.Equal(t, Bottom, v)

	_, err = ParseHorizontal("sideways")
	require.ErrorIs(t, err, ErrUnknownAlignment)
	_, err = ParseVertical("left")
	require.ErrorIs(t, err, ErrUnknownAlignment)
}

func TestAlignmentConstants(t *testing.T) {
	assert.Equal(t, 0, int(Left))
	assert.Equal(t, 1, int(Center))
	assert.Equal(t, 2, int(Right))
	assert.Equal(t, 3, int(Top))
	assert.Equal(t, 4, int(Middle))
	assert.Equal(t, 5, int(Bottom))
	assert.Equal(t, "center", Center.String())
	assert.Equal(t, "middle", Middle.String())
}
