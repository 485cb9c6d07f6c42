package file

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/go-sif/tsvframe"
	iutil "github.com/go-sif/tsvframe/internal/util"
	"github.com/go-sif/tsvframe/logging"
	"github.com/go-sif/tsvframe/table"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"
)

// Conf configures a DataSource
type Conf struct {
	DropColumn         string // If set, each file after the first is merged with Table.AppendReplacing on this column. Defaults to plain appends.
	MaxConcurrentLoads int    // The maximum number of files parsed at once. Defaults to 4.
}

// DataSource is a set of files, matched by a glob, which are merged into one Table
type DataSource struct {
	glob   string
	parser tsvframe.DataSourceParser
	conf   *Conf
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(glob string, parser tsvframe.DataSourceParser, conf *Conf) *DataSource {
	if conf.MaxConcurrentLoads <= 0 {
		conf.MaxConcurrentLoads = 4
	}
	return &DataSource{glob: glob, parser: parser, conf: conf}
}

// Analyze returns a FileMap over every file matching the glob, in lexical order
func (fs *DataSource) Analyze() (*FileMap, error) {
	matches, err := filepath.Glob(fs.glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", fs.glob)
	}
	sort.Strings(matches)
	return &FileMap{
		files:  matches,
		source: fs,
	}, nil
}

// Load parses every matching file and merges the results, in path order, into a single
// Table. Every file must share the column names of the first. All failures to parse
// a file are reported together.
func (fs *DataSource) Load(ctx context.Context) (*table.Table, error) {
	fm, err := fs.Analyze()
	if err != nil {
		return nil, err
	}
	var loaders []*FileLoader
	for fm.HasNext() {
		loaders = append(loaders, fm.Next())
	}

	tables := make([]*table.Table, len(loaders))
	errs := make([]error, len(loaders))
	sem := semaphore.NewWeighted(int64(fs.conf.MaxConcurrentLoads))
	var wg sync.WaitGroup
	for i, loader := range loaders {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			errs[i] = err
			break
		}
		wg.Add(1)
		go func(i int, loader *FileLoader) {
			defer wg.Done()
			defer sem.Release(1)
			logging.Logger().Debug().Msg(loader.ToString())
			tables[i], errs[i] = loader.Load()
		}(i, loader)
	}
	wg.Wait()

	var multierr *multierror.Error
	for i, err := range errs {
		if err != nil {
			multierr = multierror.Append(multierr, fmt.Errorf("%s: %w", loaders[i].Path(), err))
		}
	}
	if multierr != nil {
		multierr.ErrorFormat = iutil.FormatMultiError
		return nil, multierr.ErrorOrNil()
	}
	return fs.merge(loaders, tables)
}

func (fs *DataSource) merge(loaders []*FileLoader, tables []*table.Table) (*table.Table, error) {
	result := tables[0]
	schema := result.Schema()
	for i := 1; i < len(tables); i++ {
		if err := schema.Equals(tables[i].Schema()); err != nil {
			return nil, fmt.Errorf("%s: columns do not match %s: %w", loaders[i].Path(), loaders[0].Path(), err)
		}
		var err error
		if fs.conf.DropColumn != "" {
			err = result.AppendReplacing(tables[i], fs.conf.DropColumn)
		} else {
			err = result.Append(tables[i])
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", loaders[i].Path(), err)
		}
	}
	logging.Logger().Info().
		Str("table", result.ID()).
		Str("glob", fs.glob).
		Int("files", len(tables)).
		Int("rows", result.NumRows()).
		Msg("merged files")
	return result, nil
}
