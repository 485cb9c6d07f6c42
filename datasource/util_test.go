package datasource

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialBufferSize(t *testing.T) {
	require.Equal(t, 16, InitialBufferSize(16))
	require.Equal(t, 4096, InitialBufferSize(1<<20))
}

func TestWriteThenOpenFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "tsvframe")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	for _, name := range []string{"plain.tsv", "packed.tsv.lz4"} {
		path := filepath.Join(dir, name)
		err = WriteFile(path, func(w io.Writer) error {
			_, err := io.WriteString(w, "a\tb\n1\t2\n")
			return err
		})
		require.Nil(t, err)

		r, err := OpenFile(path)
		require.Nil(t, err)
		contents, err := ioutil.ReadAll(r)
		require.Nil(t, err)
		require.Nil(t, r.Close())
		require.Equal(t, "a\tb\n1\t2\n", string(contents))
	}

	raw, err := ioutil.ReadFile(filepath.Join(dir, "packed.tsv.lz4"))
	require.Nil(t, err)
	require.NotEqual(t, "a\tb\n1\t2\n", string(raw))

	// no temporary files are left behind
	entries, err := ioutil.ReadDir(dir)
	require.Nil(t, err)
	require.Len(t, entries, 2)
}

func TestWriteFileFailureLeavesNothing(t *testing.T) {
	dir, err := ioutil.TempDir("", "tsvframe")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "out.tsv")
	err = WriteFile(path, func(w io.Writer) error {
		return io.ErrShortWrite
	})
	require.Equal(t, io.ErrShortWrite, err)
	entries, err := ioutil.ReadDir(dir)
	require.Nil(t, err)
	require.Len(t, entries, 0)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := OpenFile(filepath.Join(os.TempDir(), "does-not-exist.tsv"))
	require.NotNil(t, err)
	require.True(t, os.IsNotExist(err))
}
