package tsvframe

// Column describes the position of a named field in a row.
type Column interface {
	Clone() Column // Clone returns a copy of this Column
	Index() int    // Index returns the index of this Column within a Schema
}
