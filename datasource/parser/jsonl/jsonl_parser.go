package jsonl

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-sif/tsvframe/datasource"
	"github.com/go-sif/tsvframe/errors"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	Columns       []string // The columns to extract, as gjson paths. They also become the column names of the header.
	NilValue      string   // The string stored for values which are missing or null. Defaults to "" (the empty string).
	HeaderLines   int      // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Comment       rune     // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int      // Maximum size in bytes of the buffer used to read lines from the file
}

// Parser produces a header and rows from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Columns are parsed from each row of JSON using their column name, which should be a gjson path. Values within the JSON which do not correspond to a column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce a header and rows
func (p *Parser) Parse(r io.Reader) (header []string, rows [][]string, err error) {
	if len(p.conf.Columns) == 0 {
		return nil, nil, errors.ParseError{Reason: "no columns configured"}
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, datasource.InitialBufferSize(p.conf.MaxBufferSize)), p.conf.MaxBufferSize)
	header = make([]string, len(p.conf.Columns))
	copy(header, p.conf.Columns)
	rows = [][]string{}
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum <= p.conf.HeaderLines {
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || p.isComment(line) {
			continue
		}
		if !gjson.Valid(line) {
			return nil, nil, errors.ParseError{Line: lineNum, Reason: "invalid JSON"}
		}
		rows = append(rows, p.parseRow(line))
	}
	if err = scanner.Err(); err != nil {
		return nil, nil, err
	}
	return header, rows, nil
}

func (p *Parser) isComment(line string) bool {
	if p.conf.Comment == 0 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(line)
	return first == p.conf.Comment
}

func (p *Parser) parseRow(line string) []string {
	row := make([]string, len(p.conf.Columns))
	for i, result := range gjson.GetMany(line, p.conf.Columns...) {
		if !result.Exists() || result.Type == gjson.Null {
			row[i] = p.conf.NilValue
			continue
		}
		row[i] = result.String()
	}
	return row
}
