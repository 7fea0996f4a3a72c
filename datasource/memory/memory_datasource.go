// Package memory provides a DataSource for raw rows which are already
// resident in memory, such as a record list built up by a caller.
package memory

import (
	"context"

	"github.com/go-tabkit/tabkit"
	"github.com/go-tabkit/tabkit/errors"
)

// DataSource is a buffer of raw rows which will be shaped into a Frame
type DataSource struct {
	data [][]interface{}
}

// CreateDataSource is a factory for memory DataSources
func CreateDataSource(data [][]interface{}) tabkit.DataSource {
	return &DataSource{data: data}
}

// Open returns a RowIterator over this DataSource, positioned at the
// first row. Iterators are independent, so the source may be consumed
// multiple times.
func (ms *DataSource) Open(ctx context.Context) (tabkit.RowIterator, error) {
	return &rowIterator{source: ms}, nil
}

type rowIterator struct {
	source *DataSource
	next   int
}

// HasNext returns true iff another row is available
func (it *rowIterator) HasNext() bool {
	return it.next < len(it.source.data)
}

// Next returns the next raw row
func (it *rowIterator) Next() ([]interface{}, error) {
	if !it.HasNext() {
		return nil, errors.NoMoreRowsError{}
	}
	row := it.source.data[it.next]
	it.next++
	return row, nil
}

// Close releases any resources held by the iterator
func (it *rowIterator) Close() error {
	return nil
}
