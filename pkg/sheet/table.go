// Package sheet loads play-by-play spreadsheets into an in-memory table.
package sheet

import (
	"math"
	"strconv"
	"strings"
)

// Kind classifies a cell value.
type Kind int

const (
	KindBlank Kind = iota
	KindString
	KindNumber
)

// Cell is a single spreadsheet value: a string, a number, or blank.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
}

// ParseCell infers the kind of a raw cell text.
func ParseCell(raw string) Cell {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Cell{Kind: KindBlank}
	}
	if n, err := strconv.ParseFloat(text, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
		return Cell{Kind: KindNumber, Text: text, Number: n}
	}
	return Cell{Kind: KindString, Text: text}
}

// String renders the cell the way it appears in prompts. Numbers keep their
// source text so leading zeros and long digit runs survive.
func (c Cell) String() string {
	switch c.Kind {
	case KindBlank:
		return "NaN"
	case KindNumber:
		if c.Text == "" {
			return strconv.FormatFloat(c.Number, 'f', -1, 64)
		}
		return c.Text
	default:
		return c.Text
	}
}

// Row maps column name to cell.
type Row map[string]Cell

// Table is the loaded spreadsheet. It is never modified after Load returns.
type Table struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// fromRecords builds a table from a header record followed by data records.
// Data wider than the header gets extra unnamed columns.
func fromRecords(records [][]string) *Table {
	width := 0
	for _, record := range records {
		width = max(width, len(record))
	}
	header := make([]string, width)
	copy(header, records[0])
	columns := uniqueColumns(header)
	table := &Table{Columns: columns, Rows: make([]Row, 0, len(records)-1)}

	for _, record := range records[1:] {
		row := make(Row, len(columns))
		blank := true
		for i, col := range columns {
			cell := Cell{Kind: KindBlank}
			if i < len(record) {
				cell = ParseCell(record[i])
			}
			if cell.Kind != KindBlank {
				blank = false
			}
			row[col] = cell
		}
		if blank {
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// uniqueColumns names empty headers "Unnamed: i" and suffixes repeats with ".n".
func uniqueColumns(header []string) []string {
	columns := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	for i, raw := range header {
		base := strings.TrimSpace(raw)
		if base == "" {
			base = "Unnamed: " + strconv.Itoa(i)
		}
		name := base
		for n := 1; taken[name]; n++ {
			name = base + "." + strconv.Itoa(n)
		}
		taken[name] = true
		columns[i] = name
	}
	return columns
}
