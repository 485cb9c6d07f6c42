package tsvframe

// Schema is an ordered mapping from column names to column
// indices. Indices are contiguous, start at zero and follow
// the order in which columns were created.
type Schema interface {
	Equals(otherSchema Schema) error
	Clone() Schema
	NumColumns() int
	GetOffset(colName string) (offset Column, err error)
	HasColumn(colName string) bool
	CreateColumn(colName string) (newSchema Schema, err error)
	RenameColumn(oldName string, newName string) (newSchema Schema, err error)
	ColumnNames() []string
	ForEachColumn(fn func(name string, col Column) error) error
}
