package tsvframe

import "io"

// DataSourceParser turns a stream of bytes into a header and string-valued rows.
// Implementations must return rows which are exactly as wide as the header.
type DataSourceParser interface {
	Parse(r io.Reader) (header []string, rows [][]string, err error)
}
