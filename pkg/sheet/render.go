package sheet

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Render prints the whole table as a right-aligned text grid with a leading
// row index, one line per row. Nothing is truncated.
func (t *Table) Render() string {
	if t == nil || len(t.Columns) == 0 {
		return "Empty DataFrame"
	}

	grid := make([][]string, 0, len(t.Rows)+1)
	header := make([]string, 0, len(t.Columns)+1)
	header = append(header, "")
	header = append(header, t.Columns...)
	grid = append(grid, header)
	for i, row := range t.Rows {
		line := make([]string, 0, len(t.Columns)+1)
		line = append(line, strconv.Itoa(i))
		for _, col := range t.Columns {
			line = append(line, row[col].String())
		}
		grid = append(grid, line)
	}

	widths := make([]int, len(header))
	for _, line := range grid {
		for i, field := range line {
			if w := utf8.RuneCountInString(field); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	for r, line := range grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for i, field := range line {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(field)))
			sb.WriteString(field)
		}
	}
	return sb.String()
}
