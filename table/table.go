package table

import (
	"github.com/go-sif/tsvframe"
	"github.com/go-sif/tsvframe/errors"
	"github.com/go-sif/tsvframe/logging"
	"github.com/go-sif/tsvframe/schema"
	uuid "github.com/gofrs/uuid"
)

// DefaultHeadRows is the number of rows shown by String
const DefaultHeadRows = 5

// ColumnData is a named sequence of values used to build a Table
type ColumnData struct {
	Name   string
	Values []interface{}
}

// NewColumnData is a convenience constructor for ColumnData
func NewColumnData(name string, values ...interface{}) ColumnData {
	return ColumnData{Name: name, Values: values}
}

// Table is a grid of strings with named, ordered columns. Every value
// is stored in its string form (see tsvframe.ToString) so that cells
// of heterogeneous origin compare uniformly. A Table is not safe for
// concurrent mutation.
type Table struct {
	id     string
	schema tsvframe.Schema
	data   [][]string
	index  *rowIndex // built lazily by Contains, discarded on mutation
}

// CreateTable builds a Table from columnar data. Columns are defined in argument
// order, and all columns must hold the same number of values.
func CreateTable(columns ...ColumnData) (*Table, error) {
	s := schema.CreateSchema()
	numRows := 0
	for i, col := range columns {
		if i == 0 {
			numRows = len(col.Values)
		} else if len(col.Values) != numRows {
			return nil, errors.ShapeMismatchError{
				Expected: numRows,
				Actual:   len(col.Values),
				Reason:   "length of column " + col.Name,
			}
		}
		if _, err := s.CreateColumn(col.Name); err != nil {
			return nil, err
		}
	}
	data := make([][]string, numRows)
	for r := range data {
		row := make([]string, len(columns))
		for k, col := range columns {
			row[k] = tsvframe.ToString(col.Values[r])
		}
		data[r] = row
	}
	return newTable(s, data)
}

// CreateTableFromRecords builds a Table from a header of column names and string rows,
// each of which must be exactly as wide as the header. Rows are copied.
func CreateTableFromRecords(header []string, rows [][]string) (*Table, error) {
	s, err := schema.CreateSchemaFromNames(header...)
	if err != nil {
		return nil, err
	}
	data := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, errors.ShapeMismatchError{
				Expected: len(header),
				Actual:   len(row),
				Reason:   "row width does not match header",
			}
		}
		data[i] = copyRow(row)
	}
	return newTable(s, data)
}

func newTable(s tsvframe.Schema, data [][]string) (*Table, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	t := &Table{id: id.String(), schema: s, data: data}
	logging.Logger().Trace().
		Str("table", t.id).
		Int("rows", len(data)).
		Int("columns", s.NumColumns()).
		Msg("created table")
	return t, nil
}

// ID returns a unique identifier for this Table, used when logging
func (t *Table) ID() string {
	return t.id
}

// Schema returns a copy of the Schema of this Table
func (t *Table) Schema() tsvframe.Schema {
	return t.schema.Clone()
}

// ColumnNames returns the names of the columns of this Table, in order
func (t *Table) ColumnNames() []string {
	return t.schema.ColumnNames()
}

// NumColumns returns the number of columns in this Table
func (t *Table) NumColumns() int {
	return t.schema.NumColumns()
}

// NumRows returns the number of rows in this Table
func (t *Table) NumRows() int {
	return len(t.data)
}

// Column returns every value of the named column, in row order
func (t *Table) Column(name string) ([]string, error) {
	col, err := t.schema.GetOffset(name)
	if err != nil {
		return nil, err
	}
	idx := col.Index()
	values := make([]string, len(t.data))
	for i, row := range t.data {
		values[i] = row[idx]
	}
	return values, nil
}

// Data returns a copy of the rows of this Table
func (t *Table) Data() [][]string {
	data := make([][]string, len(t.data))
	for i, row := range t.data {
		data[i] = copyRow(row)
	}
	return data
}

func (t *Table) setData(data [][]string) {
	t.data = data
	t.index = nil
}

func copyRow(row []string) []string {
	c := make([]string, len(row))
	copy(c, row)
	return c
}

// RenameColumn renames an existing column, keeping its position and values
func (t *Table) RenameColumn(oldName string, newName string) error {
	newSchema, err := t.schema.Clone().RenameColumn(oldName, newName)
	if err != nil {
		return err
	}
	t.schema = newSchema
	return nil
}
