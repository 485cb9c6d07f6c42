package file

import (
	"context"
	stderrors "errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-sif/tsvframe/datasource/parser/dsv"
	"github.com/go-sif/tsvframe/datasource/parser/jsonl"
	"github.com/go-sif/tsvframe/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFiles(t *testing.T, files map[string]string) string {
	dir, err := ioutil.TempDir("", "tsvframe-file")
	require.Nil(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	for name, contents := range files {
		require.Nil(t, ioutil.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
	}
	return dir
}

func TestAnalyzeSortsMatches(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"sub-02_scans.tsv": "a\n1\n",
		"sub-01_scans.tsv": "a\n1\n",
		"notes.txt":        "ignored",
	})
	source := CreateDataSource(filepath.Join(dir, "*.tsv"), dsv.CreateParser(&dsv.ParserConf{}), &Conf{})
	fm, err := source.Analyze()
	require.Nil(t, err)
	var paths []string
	for fm.HasNext() {
		paths = append(paths, filepath.Base(fm.Next().Path()))
	}
	require.Equal(t, []string{"sub-01_scans.tsv", "sub-02_scans.tsv"}, paths)
}

func TestAnalyzeNoMatches(t *testing.T) {
	dir := writeFiles(t, nil)
	source := CreateDataSource(filepath.Join(dir, "*.tsv"), dsv.CreateParser(&dsv.ParserConf{}), &Conf{})
	_, err := source.Analyze()
	require.NotNil(t, err)
	_, err = source.Load(context.Background())
	require.NotNil(t, err)
}

func TestLoadAppendsInPathOrder(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"run-1.tsv": "onset\ttrial_type\n0.5\tgo\n1.5\tstop\n",
		"run-2.tsv": "onset\ttrial_type\n0.25\tgo\n",
		"run-3.tsv": "onset\ttrial_type\n",
	})
	source := CreateDataSource(filepath.Join(dir, "run-*.tsv"), dsv.CreateParser(&dsv.ParserConf{}), &Conf{MaxConcurrentLoads: 1})
	table, err := source.Load(context.Background())
	require.Nil(t, err)
	require.Equal(t, []string{"onset", "trial_type"}, table.ColumnNames())
	require.Equal(t, [][]string{{"0.5", "go"}, {"1.5", "stop"}, {"0.25", "go"}}, table.Data())
}

func TestLoadWithDropColumn(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"1.tsv": "participant_id\tage\nsub-01\t24\nsub-02\t31\n",
		"2.tsv": "participant_id\tage\nsub-01\t25\n",
		"3.tsv": "participant_id\tage\nsub-03\t40\n",
	})
	source := CreateDataSource(filepath.Join(dir, "*.tsv"), dsv.CreateParser(&dsv.ParserConf{}), &Conf{DropColumn: "participant_id"})
	table, err := source.Load(context.Background())
	require.Nil(t, err)
	require.Equal(t, [][]string{{"sub-02", "31"}, {"sub-01", "25"}, {"sub-03", "40"}}, table.Data())
}

func TestLoadReportsEveryFailure(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.tsv": "x\ty\n1\t2\n",
		"b.tsv": "x\ty\n1\n",
		"c.tsv": "",
	})
	source := CreateDataSource(filepath.Join(dir, "*.tsv"), dsv.CreateParser(&dsv.ParserConf{}), &Conf{})
	_, err := source.Load(context.Background())
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	require.Contains(t, merr.Errors[0].Error(), "b.tsv")
	require.Contains(t, merr.Errors[1].Error(), "c.tsv")
	require.Contains(t, err.Error(), "b.tsv")
}

func TestLoadMismatchedColumns(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.tsv": "x\ty\n1\t2\n",
		"b.tsv": "y\tx\n3\t4\n",
	})
	source := CreateDataSource(filepath.Join(dir, "*.tsv"), dsv.CreateParser(&dsv.ParserConf{}), &Conf{})
	_, err := source.Load(context.Background())
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "b.tsv")
}

func TestLoadUnknownDropColumn(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.tsv": "x\n1\n",
		"b.tsv": "x\n2\n",
	})
	source := CreateDataSource(filepath.Join(dir, "*.tsv"), dsv.CreateParser(&dsv.ParserConf{}), &Conf{DropColumn: "id"})
	_, err := source.Load(context.Background())
	require.NotNil(t, err)
	var unknown errors.UnknownColumnError
	require.True(t, stderrors.As(err, &unknown))
	require.Equal(t, "id", unknown.Name)
}

func TestLoadCancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.tsv": "x\n1\n"})
	source := CreateDataSource(filepath.Join(dir, "*.tsv"), dsv.CreateParser(&dsv.ParserConf{}), &Conf{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := source.Load(ctx)
	require.NotNil(t, err)
}

func TestLoadJSONL(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"events-1.jsonl": "{\"onset\": 1, \"type\": \"go\"}\n",
		"events-2.jsonl": "{\"onset\": 2}\n",
	})
	parser := jsonl.CreateParser(&jsonl.ParserConf{Columns: []string{"onset", "type"}, NilValue: "n/a"})
	source := CreateDataSource(filepath.Join(dir, "*.jsonl"), parser, &Conf{})
	table, err := source.Load(context.Background())
	require.Nil(t, err)
	require.Equal(t, [][]string{{"1", "go"}, {"2", "n/a"}}, table.Data())
}
