// Package render draws per-network result lists as a side-by-side text
// table with fixed-width columns.
package render

import (
	"fmt"
	"strings"
)

// DefaultColumnWidth is the fixed cell width of the rendered table.
const DefaultColumnWidth = 25

const columnSeparator = " | "

// Table renders result columns side by side with fixed-width,
// left-justified cells. Content wider than a cell is not truncated;
// overflow breaks alignment for that row and is accepted behavior.
type Table struct {
	width int
}

// New returns a Table with the given column width; zero or negative picks
// the default.
func New(width int) *Table {
	if width <= 0 {
		width = DefaultColumnWidth
	}
	return &Table{width: width}
}

// Render builds the table text: one header cell per column title, a dash
// rule, then one row per index across the columns, blank-padding the
// columns that have run out of entries. The row count is the longest
// column's length. No trailing newline.
func (t *Table) Render(titles []string, columns [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	cells := make([]string, len(columns))
	for i := range columns {
		title := ""
		if i < len(titles) {
			title = titles[i]
		}
		cells[i] = t.pad(title)
	}

	lines := []string{strings.Join(cells, columnSeparator)}
	lines = append(lines, strings.Repeat("-", t.width*len(columns)+len(columnSeparator)*(len(columns)-1)))

	rows := 0
	for _, column := range columns {
		if len(column) > rows {
			rows = len(column)
		}
	}

	for row := 0; row < rows; row++ {
		for i, column := range columns {
			cell := ""
			if row < len(column) {
				cell = column[row]
			}
			cells[i] = t.pad(cell)
		}
		lines = append(lines, strings.Join(cells, columnSeparator))
	}

	return strings.Join(lines, "\n")
}

// pad left-justifies s in a fixed-width cell without truncating.
func (t *Table) pad(s string) string {
	return fmt.Sprintf("%-*s", t.width, s)
}
