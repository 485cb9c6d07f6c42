package file

// FileMap is an iterator producing a sequence of FileLoaders
type FileMap struct {
	files  []string
	source *DataSource
}

// HasNext returns true iff there is another FileLoader remaining
func (fm *FileMap) HasNext() bool {
	return len(fm.files) > 0
}

// Next returns the next FileLoader
func (fm *FileMap) Next() *FileLoader {
	result := &FileLoader{path: fm.files[0], source: fm.source}
	fm.files = fm.files[1:]
	return result
}
