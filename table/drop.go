package table

import (
	"github.com/go-sif/tsvframe"
	"github.com/go-sif/tsvframe/errors"
	"github.com/go-sif/tsvframe/logging"
)

// Drop removes every row whose value in column is one of values. Values are
// coerced with tsvframe.ToString before comparison. An empty values is a no-op.
// Otherwise column must exist, and at least one of values must occur in it:
// a filter which matches nothing is reported as an errors.ValuesNotFoundError,
// even if the values occur in another column.
func (t *Table) Drop(values []interface{}, column string) error {
	if len(values) == 0 {
		return nil
	}
	col, err := t.schema.GetOffset(column)
	if err != nil {
		return err
	}
	targets := tsvframe.ToStrings(values)
	targetSet := make(map[string]struct{}, len(targets))
	for _, v := range targets {
		targetSet[v] = struct{}{}
	}

	idx := col.Index()
	kept := make([][]string, 0, len(t.data))
	for _, row := range t.data {
		if _, drop := targetSet[row[idx]]; !drop {
			kept = append(kept, row)
		}
	}
	removed := len(t.data) - len(kept)
	if removed == 0 {
		return errors.ValuesNotFoundError{Column: column, Values: targets}
	}
	t.setData(kept)
	logging.Logger().Debug().
		Str("table", t.id).
		Str("column", column).
		Int("removed", removed).
		Int("rows", len(kept)).
		Msg("dropped rows")
	return nil
}
