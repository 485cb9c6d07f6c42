package dsv

import (
	"bufio"
	"io"
)

// WriterConf configures a DSV Writer
type WriterConf struct {
	Delimiter rune // The delimiter separating columns in the file. Defaults to \t
}

// Writer serializes a header and rows as DSV data, one record per line.
// Fields are written verbatim: values containing the delimiter or a
// newline will not survive a round trip.
type Writer struct {
	conf *WriterConf
}

// CreateWriter returns a new DSV Writer
func CreateWriter(conf *WriterConf) *Writer {
	if conf.Delimiter == 0 {
		conf.Delimiter = '\t'
	}
	return &Writer{conf: conf}
}

// Write writes the header line followed by one line per row
func (dw *Writer) Write(w io.Writer, header []string, rows [][]string) error {
	buf := bufio.NewWriter(w)
	if err := dw.writeLine(buf, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := dw.writeLine(buf, row); err != nil {
			return err
		}
	}
	return buf.Flush()
}

func (dw *Writer) writeLine(buf *bufio.Writer, fields []string) error {
	if _, err := buf.WriteString(joinLine(fields, dw.conf.Delimiter)); err != nil {
		return err
	}
	return buf.WriteByte('\n')
}
