package schema

import (
	"fmt"

	"github.com/go-sif/tsvframe"
	"github.com/go-sif/tsvframe/errors"
)

// Column describes the position of a field within a Row.
type column struct {
	idx int
}

// Clone returns a copy of this Column
func (c *column) Clone() tsvframe.Column {
	return &column{c.idx}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// Schema is an ordered mapping from column names to
// indices within a Row. It allows one to obtain indices by
// name, define new columns and rename existing ones.
type schema struct {
	schema map[string]tsvframe.Column
	names  []string
}

// CreateSchema is a factory for Schemas
func CreateSchema() tsvframe.Schema {
	return &schema{
		schema: make(map[string]tsvframe.Column),
		names:  []string{},
	}
}

// CreateSchemaFromNames is a factory for Schemas which defines a column
// for each name, in order.
func CreateSchemaFromNames(names ...string) (tsvframe.Schema, error) {
	s := CreateSchema()
	for _, name := range names {
		if _, err := s.CreateColumn(name); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Equals returns nil iff this and another Schema have the same column names in the same order
func (s *schema) Equals(otherSchema tsvframe.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal sizes")
	}
	return s.ForEachColumn(func(name string, offset tsvframe.Column) error {
		otherOffset, err := otherSchema.GetOffset(name)
		if err != nil {
			return err
		}
		if offset.Index() != otherOffset.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() tsvframe.Schema {
	newSchema := make(map[string]tsvframe.Column, len(s.schema))
	for k, v := range s.schema {
		newSchema[k] = v.Clone()
	}
	names := make([]string, len(s.names))
	copy(names, s.names)
	return &schema{schema: newSchema, names: names}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.names)
}

// GetOffset returns the Column describing the position of a named column within a row.
func (s *schema) GetOffset(colName string) (offset tsvframe.Column, err error) {
	offset, ok := s.schema[colName]
	if !ok {
		err = errors.UnknownColumnError{Name: colName}
	}
	return
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, err := s.GetOffset(colName)
	return err == nil
}

// CreateColumn defines a new column at the end of the Schema
func (s *schema) CreateColumn(colName string) (newSchema tsvframe.Schema, err error) {
	_, containsOffset := s.schema[colName]
	if containsOffset {
		err = errors.DuplicateColumnError{Name: colName}
	} else {
		s.schema[colName] = &column{len(s.names)}
		s.names = append(s.names, colName)
		newSchema = s
	}
	return
}

// RenameColumn renames a column within the Schema, keeping its index
func (s *schema) RenameColumn(oldName string, newName string) (newSchema tsvframe.Schema, err error) {
	if oldName == newName {
		return s, nil
	}
	offset, err := s.GetOffset(oldName)
	if err != nil {
		return nil, err
	}
	if s.HasColumn(newName) {
		return nil, errors.DuplicateColumnError{Name: newName}
	}
	s.schema[newName] = offset
	delete(s.schema, oldName)
	s.names[offset.Index()] = newName
	return s, nil
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ForEachColumn iterates over the columns in this Schema, in order of column index.
func (s *schema) ForEachColumn(fn func(name string, col tsvframe.Column) error) error {
	for _, name := range s.names {
		err := fn(name, s.schema[name])
		if err != nil {
			return err
		}
	}
	return nil
}
