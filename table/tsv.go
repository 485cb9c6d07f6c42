package table

import (
	"io"

	"github.com/go-sif/tsvframe"
	"github.com/go-sif/tsvframe/datasource"
	"github.com/go-sif/tsvframe/datasource/parser/dsv"
	"github.com/go-sif/tsvframe/errors"
	"github.com/go-sif/tsvframe/logging"
)

// ReadTSV loads a Table from a TSV file whose first line holds the column names.
// Files ending in datasource.CompressedSuffix are decompressed.
func ReadTSV(path string) (*Table, error) {
	return ReadFile(path, dsv.CreateParser(&dsv.ParserConf{}))
}

// ReadFile loads a Table from a file using the given parser
func ReadFile(path string, parser tsvframe.DataSourceParser) (*Table, error) {
	r, err := datasource.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := r.Close(); err != nil {
			logging.Logger().Warn().Err(err).Str("path", path).Msg("couldn't close file")
		}
	}()
	t, err := Read(r, parser)
	if err != nil {
		return nil, err
	}
	logging.Logger().Debug().
		Str("table", t.id).
		Str("path", path).
		Int("rows", t.NumRows()).
		Msg("table loaded")
	return t, nil
}

// Read loads a Table from a stream using the given parser
func Read(r io.Reader, parser tsvframe.DataSourceParser) (*Table, error) {
	header, rows, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}
	return CreateTableFromRecords(header, rows)
}

// WriteTSV saves this Table to a TSV file: one line of column names, then one
// line per row. Cells are not quoted or escaped. The file is replaced atomically,
// and compressed if its name ends in datasource.CompressedSuffix. A Table without
// columns has no header line to write, and is rejected.
func (t *Table) WriteTSV(path string) error {
	if err := datasource.WriteFile(path, t.Write); err != nil {
		return err
	}
	logging.Logger().Debug().
		Str("table", t.id).
		Str("path", path).
		Int("rows", t.NumRows()).
		Msg("table saved")
	return nil
}

// Write serializes this Table as TSV to a stream
func (t *Table) Write(w io.Writer) error {
	if t.NumColumns() == 0 {
		return errors.ShapeMismatchError{Expected: 1, Actual: 0, Reason: "table has no columns"}
	}
	return dsv.CreateWriter(&dsv.WriterConf{}).Write(w, t.schema.ColumnNames(), t.data)
}
