package table

import (
	"fmt"
	"strings"
)

// Head returns a tab-delimited preview of this Table: the column names, then at
// most rows rows, each on its own line. If rows are omitted, a final line
// "... (N more rows)" reports how many. A negative rows counts as 0.
func (t *Table) Head(rows int) string {
	if rows < 0 {
		rows = 0
	}
	var b strings.Builder
	b.WriteString(strings.Join(t.schema.ColumnNames(), "\t"))
	b.WriteByte('\n')
	count := rows
	if count > len(t.data) {
		count = len(t.data)
	}
	for _, row := range t.data[:count] {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	if rows < len(t.data) {
		fmt.Fprintf(&b, "... (%d more rows)", len(t.data)-rows)
	}
	return b.String()
}

// String returns the first DefaultHeadRows rows of this Table
func (t *Table) String() string {
	return t.Head(DefaultHeadRows)
}
