package cli

import "strings"

// table is a simple column formatter with dynamic widths, used by the
// modes command.
type table struct {
	headers []string
	rows    [][]string
	padding int
}

func newTable(headers []string) *table {
	return &table{
		headers: headers,
		padding: 2, // 2 spaces between columns
	}
}

func (t *table) addRow(row []string) {
	t.rows = append(t.rows, row)
}

// render formats the table with each column sized to its widest cell.
func (t *table) render() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			b.WriteString(cell)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len(cell)+t.padding))
			}
		}
		b.WriteByte('\n')
	}

	writeRow(t.headers)
	for i, w := range widths {
		b.WriteString(strings.Repeat("-", w))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", t.padding))
		}
	}
	b.WriteByte('\n')
	for _, row := range t.rows {
		writeRow(row)
	}
	return b.String()
}
