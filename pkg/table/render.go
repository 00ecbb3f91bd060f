package table

import "strings"

// LineKind tells which part of the table a rendered line belongs to.
type LineKind int

const (
	LineRuleTop LineKind = iota
	LineTitle
	LineSeparator
	LineHeading
	LineBody
	LineRowSeparator
	LineRuleBottom
)

func (k LineKind) String() string {
	switch k {
	case LineRuleTop:
		return "rule-top"
	case LineTitle:
		return "title"
	case LineSeparator:
		return "separator"
	case LineHeading:
		return "heading"
	case LineBody:
		return "body"
	case LineRowSeparator:
		return "row-separator"
	case LineRuleBottom:
		return "rule-bottom"
	default:
		return "unknown"
	}
}

// Line is one rendered line without the prefix.
type Line struct {
	Kind LineKind
	Text string
}

// layout is what a single render derives from the table state.
type layout struct {
	metrics Metrics
	widths  []int // effective width of each column
	inner   int   // columns between the two outer edges
}

func (t *Table) layout() layout {
	all := t.rows
	if t.heading != nil {
		all = make([][]Cell, 0, len(t.rows)+1)
		all = append(all, t.heading)
		all = append(all, t.rows...)
	}
	lay := layout{metrics: Measure(all, t.maxCells)}

	justified := lay.metrics.MaxWidth()
	lay.widths = make([]int, len(lay.metrics.ColWidths))
	for k, w := range lay.metrics.ColWidths {
		if t.justify {
			w = justified
		}
		// the last column gets no trailing spacing
		if k < len(lay.widths)-1 {
			w += t.spacing
		}
		lay.widths[k] = w
		lay.inner += w + 3
	}
	switch {
	case len(lay.widths) > 0:
		lay.inner--
	case t.title != "":
		lay.inner = width(" " + t.title + " ")
	}
	return lay
}

func (l layout) height(i int) int {
	if i < len(l.metrics.RowHeights) {
		return max(1, l.metrics.RowHeights[i])
	}
	return 1
}

// Lines renders the table as a sequence of classified lines.
func (t *Table) Lines() []Line {
	lay := t.layout()
	var out []Line

	if t.bordered {
		out = append(out, Line{LineRuleTop, t.rule(t.border.Top, lay.inner)})
	}
	if t.title != "" {
		name := AlignHorizontal(t.titleAlign, NewCell(" "+t.title+" "), lay.inner, DefaultPad)
		out = append(out, Line{LineTitle, t.border.Edge + name + t.border.Edge})
		if t.bordered {
			out = append(out, Line{LineSeparator, t.rule(t.border.Edge, lay.inner)})
		}
	}

	offset := 0
	if t.heading != nil {
		align := func(k int) Horizontal {
			if t.headingAlign == AutoHorizontal {
				return t.AlignHorizontalAt(k)
			}
			return t.headingAlign
		}
		out = t.appendRow(out, LineHeading, t.heading, lay.height(0), align, lay)
		out = append(out, Line{LineSeparator, t.separator(t.border.Fill, lay)})
		offset = 1
	}

	for i, row := range t.rows {
		if i > 0 && t.rowSep {
			out = append(out, Line{LineRowSeparator, t.separator(t.border.RowSeparator, lay)})
		}
		out = t.appendRow(out, LineBody, row, lay.height(offset+i), t.AlignHorizontalAt, lay)
	}

	if t.bordered {
		out = append(out, Line{LineRuleBottom, t.rule(t.border.Bottom, lay.inner)})
	}
	return out
}

// Render returns the table text, lines joined by newlines with the prefix
// in front of each. There is no trailing newline.
func (t *Table) Render() string {
	lines := t.Lines()
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(t.prefix)
		sb.WriteString(line.Text)
	}
	return sb.String()
}

// String implements fmt.Stringer by rendering the table.
func (t *Table) String() string { return t.Render() }

// appendRow renders one table row, which may span several lines.
func (t *Table) appendRow(out []Line, kind LineKind, row []Cell, height int, align func(int) Horizontal, lay layout) []Line {
	if len(lay.widths) == 0 {
		blank := t.border.Edge + strings.Repeat(" ", lay.inner) + t.border.Edge
		for range height {
			out = append(out, Line{kind, blank})
		}
		return out
	}

	parts := make([][]string, height)
	for k, w := range lay.widths {
		c := cellAt(row, k)
		dir := align(k)
		for j, line := range AlignVertical(t.AlignVerticalAt(k), c, height) {
			parts[j] = append(parts[j], alignLine(dir, line, c.IsNumber(), w, DefaultPad))
		}
	}
	for _, p := range parts {
		out = append(out, Line{kind, t.join(p, DefaultPad)})
	}
	return out
}

// separator draws a full-width line of glyph broken by the edge glyph at
// every column boundary.
func (t *Table) separator(glyph string, lay layout) string {
	if len(lay.widths) == 0 {
		return t.border.Edge + repeat(glyph, lay.inner) + t.border.Edge
	}
	parts := make([]string, len(lay.widths))
	for k, w := range lay.widths {
		parts[k] = repeat(glyph, w)
	}
	return t.join(parts, glyph)
}

func (t *Table) join(parts []string, spacer string) string {
	var sb strings.Builder
	sb.WriteString(t.border.Edge)
	for _, p := range parts {
		sb.WriteString(spacer)
		sb.WriteString(p)
		sb.WriteString(spacer)
		sb.WriteString(t.border.Edge)
	}
	return sb.String()
}

func (t *Table) rule(corner string, inner int) string {
	return corner + repeat(t.border.Fill, inner) + corner
}
