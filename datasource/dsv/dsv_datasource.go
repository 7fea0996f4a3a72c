// Package dsv provides a DataSource for delimiter-separated text data.
// Cells surface as raw strings; schema inference classifies them by
// attempting exact literal parses, so a numeric-looking column still
// resolves to a numeric type.
package dsv

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/go-tabkit/tabkit"
	"github.com/go-tabkit/tabkit/errors"
)

// Conf configures a DSV DataSource
type Conf struct {
	HeaderLines int    // The number of lines to ignore from the beginning of the data. Defaults to 0.
	Delimiter   rune   // The delimiter separating columns. Defaults to ,
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string // A special string which represents absent values in the dataset. Defaults to "" (the empty string).
}

// DataSource reads delimiter-separated rows from a reader produced anew
// on each Open, so the source supports the sampling pass and the full
// materialization pass independently.
type DataSource struct {
	conf *Conf
	open func() (io.ReadCloser, error)
}

// CreateDataSource is a factory for DSV DataSources
func CreateDataSource(conf *Conf, open func() (io.ReadCloser, error)) *DataSource {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &DataSource{conf: conf, open: open}
}

// FromString returns a DSV DataSource over in-memory text
func FromString(conf *Conf, data string) *DataSource {
	return CreateDataSource(conf, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(data)), nil
	})
}

// FromFile returns a DSV DataSource over a file on disk
func FromFile(conf *Conf, path string) *DataSource {
	return CreateDataSource(conf, func() (io.ReadCloser, error) {
		return os.Open(path)
	})
}

// Open returns a RowIterator over this DataSource, positioned at the
// first row after any configured header lines
func (ds *DataSource) Open(ctx context.Context) (tabkit.RowIterator, error) {
	rc, err := ds.open()
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(rc)
	reader.Comma = ds.conf.Delimiter
	reader.Comment = ds.conf.Comment
	// row width agreement with the schema is the core's contract to check
	reader.FieldsPerRecord = -1
	for i := 0; i < ds.conf.HeaderLines; i++ {
		if _, err := reader.Read(); err != nil {
			rc.Close()
			return nil, err
		}
	}
	return &rowIterator{conf: ds.conf, reader: reader, closer: rc}, nil
}

type rowIterator struct {
	conf    *Conf
	reader  *csv.Reader
	closer  io.Closer
	pending []interface{}
	err     error
	done    bool
}

// HasNext returns true iff another row is available
func (it *rowIterator) HasNext() bool {
	it.advance()
	return it.pending != nil || (it.err != nil && !it.done)
}

// Next returns the next raw row
func (it *rowIterator) Next() ([]interface{}, error) {
	it.advance()
	if it.err != nil && !it.done {
		err := it.err
		it.err = nil
		it.done = true
		return nil, err
	}
	if it.pending == nil {
		return nil, errors.NoMoreRowsError{}
	}
	row := it.pending
	it.pending = nil
	return row, nil
}

// Close releases the underlying reader
func (it *rowIterator) Close() error {
	return it.closer.Close()
}

// advance reads ahead one record so that HasNext can answer without
// consuming a row
func (it *rowIterator) advance() {
	if it.pending != nil || it.err != nil || it.done {
		return
	}
	record, err := it.reader.Read()
	if err == io.EOF {
		it.done = true
		return
	}
	if err != nil {
		it.err = err
		return
	}
	cells := make([]interface{}, len(record))
	for i, field := range record {
		if len(field) == 0 || field == it.conf.NilValue {
			continue
		}
		cells[i] = field
	}
	it.pending = cells
}
