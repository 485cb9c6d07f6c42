package table

import (
	"github.com/go-sif/tsvframe/errors"
	"github.com/go-sif/tsvframe/logging"
)

// Append adds copies of the rows of other to the end of this Table. Columns are
// matched by position, not by name: callers must ensure both Tables share the
// same column order. Tables of different widths are rejected without mutation.
func (t *Table) Append(other *Table) error {
	if err := t.checkAppendable(other); err != nil {
		return err
	}
	t.appendRows(other)
	return nil
}

// AppendReplacing appends other like Append, then removes rows superseded by it.
// The key is the value of dropColumn in the FIRST row of other: of all rows whose
// dropColumn holds that key, only the last one is kept. Rows of other with a
// different key are not deduplicated, so this is only a complete "replace by key"
// when every row of other shares one key.
func (t *Table) AppendReplacing(other *Table, dropColumn string) error {
	col, err := t.schema.GetOffset(dropColumn)
	if err != nil {
		return err
	}
	if err := t.checkAppendable(other); err != nil {
		return err
	}
	t.appendRows(other)
	if other == nil || len(other.data) == 0 {
		return nil
	}

	idx := col.Index()
	key := other.data[0][idx]
	last := -1
	for i, row := range t.data {
		if row[idx] == key {
			last = i
		}
	}
	kept := make([][]string, 0, len(t.data))
	for i, row := range t.data {
		if row[idx] != key || i == last {
			kept = append(kept, row)
		}
	}
	superseded := len(t.data) - len(kept)
	t.setData(kept)
	logging.Logger().Debug().
		Str("table", t.id).
		Str("column", dropColumn).
		Str("key", key).
		Int("superseded", superseded).
		Msg("replaced rows")
	return nil
}

func (t *Table) checkAppendable(other *Table) error {
	if other == nil {
		return nil
	}
	if other.NumColumns() != t.NumColumns() {
		return errors.ShapeMismatchError{
			Expected: t.NumColumns(),
			Actual:   other.NumColumns(),
			Reason:   "column count of appended table",
		}
	}
	return nil
}

func (t *Table) appendRows(other *Table) {
	if other == nil {
		return
	}
	data := make([][]string, len(t.data), len(t.data)+len(other.data))
	copy(data, t.data)
	for _, row := range other.data {
		data = append(data, copyRow(row))
	}
	t.setData(data)
	logging.Logger().Debug().
		Str("table", t.id).
		Str("other", other.id).
		Int("appended", len(other.data)).
		Int("rows", len(data)).
		Msg("appended rows")
}
