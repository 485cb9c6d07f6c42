package table

import (
	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/tsvframe"
)

// rowIndex maps a hash of each row's cells to the positions of the rows with that hash
type rowIndex struct {
	positions map[uint64][]int
}

func hashRow(row []string) uint64 {
	hasher := xxhash.New()
	for _, cell := range row {
		hasher.Write([]byte(cell))
		// unit separator, so that ["ab", "c"] and ["a", "bc"] hash differently
		hasher.Write([]byte{0x1f})
	}
	return hasher.Sum64()
}

func buildRowIndex(data [][]string) *rowIndex {
	idx := &rowIndex{positions: make(map[uint64][]int, len(data))}
	for i, row := range data {
		h := hashRow(row)
		idx.positions[h] = append(idx.positions[h], i)
	}
	return idx
}

// Contains returns true iff item matches a row of this Table exactly. item may be
// a []string, a []interface{} (whose values are coerced with tsvframe.ToString),
// or a *Table whose cells are flattened in row-major order. Any other type of
// item is never contained.
func (t *Table) Contains(item interface{}) bool {
	var probe []string
	switch v := item.(type) {
	case []string:
		probe = v
	case []interface{}:
		probe = tsvframe.ToStrings(v)
	case *Table:
		if v == nil {
			return false
		}
		probe = v.flatten()
	default:
		return false
	}
	if len(probe) != t.NumColumns() {
		return false
	}
	if t.index == nil {
		t.index = buildRowIndex(t.data)
	}
	for _, pos := range t.index.positions[hashRow(probe)] {
		if rowsEqual(t.data[pos], probe) {
			return true
		}
	}
	return false
}

func (t *Table) flatten() []string {
	flat := make([]string, 0, len(t.data)*t.NumColumns())
	for _, row := range t.data {
		flat = append(flat, row...)
	}
	return flat
}

func rowsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
