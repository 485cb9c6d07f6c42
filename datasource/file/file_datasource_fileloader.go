package file

import (
	"fmt"

	"github.com/go-sif/tsvframe/table"
)

// FileLoader is capable of loading a Table from a single file
type FileLoader struct {
	path   string
	source *DataSource
}

// Path returns the path of the file loaded by this FileLoader
func (fl *FileLoader) Path() string {
	return fl.path
}

// ToString returns a string representation of this FileLoader
func (fl *FileLoader) ToString() string {
	return fmt.Sprintf("File loader filename: %s", fl.path)
}

// Load parses the file into a Table
func (fl *FileLoader) Load() (*table.Table, error) {
	return table.ReadFile(fl.path, fl.source.parser)
}
