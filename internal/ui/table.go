package ui

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	cellMaxWidth = 50
	cellEllipsis = "..."
	columnGap    = "  "
)

var cellWhitespace = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// Table renders rows under a header line with columns padded to their widest
// visible cell. Every row must have one cell per header.
type Table struct {
	headers []string
	rows    [][]string
}

func NewTable(headers ...string) *Table {
	return &Table{headers: cleanCells(headers)}
}

func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cleanCells(cells))
}

func (t *Table) String() string {
	widths := make([]int, len(t.headers))
	for _, row := range append([][]string{t.headers}, t.rows...) {
		for col, cell := range row {
			widths[col] = max(widths[col], visibleWidth(cell))
		}
	}

	var out strings.Builder
	for _, row := range append([][]string{t.headers}, t.rows...) {
		last := len(row) - 1
		for col, cell := range row {
			out.WriteString(cell)
			if col < last {
				out.WriteString(strings.Repeat(" ", widths[col]-visibleWidth(cell)))
				out.WriteString(columnGap)
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// Clip shortens a cell to cellMaxWidth visible runes, ending it with an
// ellipsis when anything was cut.
func Clip(value string) string {
	value = cellWhitespace.Replace(value)
	if visibleWidth(value) <= cellMaxWidth {
		return value
	}
	return truncate.StringWithTail(value, cellMaxWidth, cellEllipsis)
}

func cleanCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = cellWhitespace.Replace(cell)
	}
	return out
}

func visibleWidth(value string) int {
	return ansi.PrintableRuneWidth(value)
}
