package errors

import (
	"fmt"
	"strings"
)

// UnknownColumnError occurs when a column name is not present in a Schema
type UnknownColumnError struct{ Name string }

// Error returns a textual representation of this UnknownColumnError
func (e UnknownColumnError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// DuplicateColumnError occurs when a column name is defined twice within a Schema
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Schema already contains column with name %s", e.Name)
}

// ValuesNotFoundError occurs when none of the values in a drop filter are present in the filtered column
type ValuesNotFoundError struct {
	Column string
	Values []string
}

// Error returns a textual representation of this ValuesNotFoundError
func (e ValuesNotFoundError) Error() string {
	return fmt.Sprintf("values [%s] not found in column \"%s\"", strings.Join(e.Values, ", "), e.Column)
}

// ShapeMismatchError occurs when a row or column does not have the expected number of cells.
// Line is the 1-based line number of the offending record when parsing, or 0 otherwise.
type ShapeMismatchError struct {
	Expected int
	Actual   int
	Line     int
	Reason   string
}

// Error returns a textual representation of this ShapeMismatchError
func (e ShapeMismatchError) Error() string {
	msg := fmt.Sprintf("shape mismatch: expected %d, got %d", e.Expected, e.Actual)
	if e.Reason != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Reason)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s on line %d", msg, e.Line)
	}
	return msg
}

// ParseError occurs when input data cannot be interpreted as a table
type ParseError struct {
	Line   int
	Reason string
}

// Error returns a textual representation of this ParseError
func (e ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error on line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("parse error: %s", e.Reason)
}
