package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = "  "

// Table renders aligned report columns. Cells may carry lipgloss styling;
// widths are measured in terminal cells.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
	right   []bool
	limit   []int
}

// NewTable creates a table with the given column headers, all left-aligned.
func NewTable(headers ...string) *Table {
	t := &Table{
		headers: headers,
		widths:  make([]int, len(headers)),
		right:   make([]bool, len(headers)),
		limit:   make([]int, len(headers)),
	}
	for i, h := range headers {
		t.widths[i] = visualLen(h)
	}
	return t
}

// AlignRight right-aligns the given columns. Out-of-range indexes are ignored.
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		if c >= 0 && c < len(t.right) {
			t.right[c] = true
		}
	}
	return t
}

// Truncate caps a column at width cells, cutting longer cells with "…".
// Must be called before rows are added.
func (t *Table) Truncate(col, width int) *Table {
	if col >= 0 && col < len(t.limit) && width > 1 {
		t.limit[col] = width
		if t.widths[col] > width {
			t.widths[col] = width
		}
	}
	return t
}

// AddRow appends a row. Missing trailing values render as empty cells and
// extra values are dropped.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(values) {
			row[i] = t.clip(i, values[i])
		}
		t.widths[i] = max(t.widths[i], visualLen(row[i]))
	}
	t.rows = append(t.rows, row)
}

// Len reports the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Render returns the formatted table: header, rule, then one line per row.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder
	t.line(&sb, t.headers, func(s string) string { return StyleHeader.Render(s) })

	rule := make([]string, len(t.widths))
	for i, w := range t.widths {
		rule[i] = strings.Repeat("─", w)
	}
	t.line(&sb, rule, func(s string) string { return StyleMuted.Render(s) })

	for _, row := range t.rows {
		t.line(&sb, row, nil)
	}
	return sb.String()
}

func (t *Table) line(sb *strings.Builder, cells []string, style func(string) string) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(columnGap)
		}
		cell = align(cell, t.widths[i], t.right[i])
		if style != nil {
			cell = style(cell)
		}
		sb.WriteString(cell)
	}
	sb.WriteString("\n")
}

func (t *Table) clip(col int, s string) string {
	n := t.limit[col]
	if n == 0 || visualLen(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > n-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// Fprint writes the table to w.
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprint(w, t.Render())
}

// align pads s to width cells on the left or right. Longer strings are
// returned unchanged.
func align(s string, width int, right bool) string {
	gap := width - visualLen(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// visualLen returns the number of terminal cells s occupies, ignoring ANSI
// escape sequences.
func visualLen(s string) int {
	return lipgloss.Width(s)
}
