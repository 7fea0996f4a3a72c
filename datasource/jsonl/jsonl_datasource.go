// Package jsonl provides a DataSource for JSON-lines data, where each line
// of input holds one JSON document describing one row. Column values are
// extracted lazily from each line using gjson paths.
package jsonl

import (
	"bufio"
	"context"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-tabkit/tabkit"
	"github.com/go-tabkit/tabkit/errors"
	"github.com/tidwall/gjson"
)

// Conf configures a JSONL DataSource
type Conf struct {
	Paths         []string // A gjson path per column, in column order. Values not addressed by any path are ignored.
	HeaderLines   int      // The number of lines to ignore from the beginning of the data. Defaults to 0.
	MaxBufferSize int      // Maximum size in bytes of the buffer used to read lines. Defaults to bufio.MaxScanTokenSize.
}

// DataSource reads JSON-lines rows from a reader produced anew on each
// Open, so the source supports the sampling pass and the full
// materialization pass independently.
type DataSource struct {
	conf *Conf
	open func() (io.ReadCloser, error)
}

// CreateDataSource is a factory for JSONL DataSources
func CreateDataSource(conf *Conf, open func() (io.ReadCloser, error)) *DataSource {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &DataSource{conf: conf, open: open}
}

// FromString returns a JSONL DataSource over in-memory text
func FromString(conf *Conf, data string) *DataSource {
	return CreateDataSource(conf, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(data)), nil
	})
}

// FromFile returns a JSONL DataSource over a file on disk
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
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 4096), ds.conf.MaxBufferSize)
	for i := 0; i < ds.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			rc.Close()
			return nil, err
		}
	}
	return &rowIterator{conf: ds.conf, scanner: scanner, closer: rc}, nil
}

type rowIterator struct {
	conf    *Conf
	scanner *bufio.Scanner
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

// advance scans ahead one non-empty line so that HasNext can answer
// without consuming a row
func (it *rowIterator) advance() {
	if it.pending != nil || it.err != nil || it.done {
		return
	}
	for {
		if !it.scanner.Scan() {
			if err := it.scanner.Err(); err != nil {
				it.err = err
			} else {
				it.done = true
			}
			return
		}
		line := it.scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		cells := make([]interface{}, len(it.conf.Paths))
		for i, path := range it.conf.Paths {
			cells[i] = valueOf(gjson.GetBytes(line, path))
		}
		it.pending = cells
		return
	}
}

// valueOf maps a gjson result onto the closed set of raw cell kinds.
// Integral JSON numbers surface as int64 so that inference can classify
// them as ints rather than floats.
func valueOf(result gjson.Result) interface{} {
	switch result.Type {
	case gjson.Number:
		if math.Trunc(result.Num) == result.Num && !math.IsInf(result.Num, 0) {
			// Int parses the raw literal, so large integers keep the
			// precision that a round-trip through Num would lose
			return result.Int()
		}
		return result.Num
	case gjson.String:
		return result.Str
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		// null or missing values are absent cells
		return nil
	}
}
