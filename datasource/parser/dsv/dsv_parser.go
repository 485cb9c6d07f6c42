package dsv

import (
	"bufio"
	"io"

	"github.com/go-sif/tsvframe/datasource"
	"github.com/go-sif/tsvframe/errors"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	HeaderLines   int  // The number of lines to ignore from the beginning of each file, before the row of column names. Defaults to 0.
	Delimiter     rune // The delimiter separating columns in the file. Defaults to \t
	Comment       rune // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	MaxBufferSize int  // Maximum size in bytes of the buffer used to read lines from the file
}

// Parser produces a header and rows from DSV data. The first
// non-ignored line holds the column names; every following line
// is a row which must be exactly as wide as the header. Fields
// are never quoted or escaped. Blank lines are skipped, except in
// single-column data where they hold one empty cell.
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = '\t'
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Delimiter returns the column delimiter used by this Parser
func (p *Parser) Delimiter() rune {
	return p.conf.Delimiter
}

// Parse parses DSV data to produce a header and rows
func (p *Parser) Parse(r io.Reader) (header []string, rows [][]string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, datasource.InitialBufferSize(p.conf.MaxBufferSize)), p.conf.MaxBufferSize)
	rows = [][]string{}
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		// ignore header lines, if configured to do so
		if lineNum <= p.conf.HeaderLines {
			continue
		}
		line := trimLineEnding(scanner.Text())
		// a single-column row holding an empty cell is written as an empty line
		if len(line) == 0 && len(header) == 1 {
			rows = append(rows, []string{""})
			continue
		}
		if shouldSkip(line, p.conf.Comment) {
			continue
		}
		fields := splitLine(line, p.conf.Delimiter)
		if header == nil {
			header = fields
			continue
		}
		if len(fields) != len(header) {
			return nil, nil, errors.ShapeMismatchError{
				Expected: len(header),
				Actual:   len(fields),
				Line:     lineNum,
				Reason:   "row width does not match header",
			}
		}
		rows = append(rows, fields)
	}
	if err = scanner.Err(); err != nil {
		return nil, nil, err
	}
	if header == nil {
		return nil, nil, errors.ParseError{Reason: "missing header line"}
	}
	return header, rows, nil
}
