package tabkit

import "context"

// DataSource is a source of raw, row-oriented records which will be shaped
// into a typed Frame. Each call to Open returns an independent RowIterator
// positioned at the first row, so a DataSource may be consumed more than
// once: a bounded prefix is read during schema resolution, and the full
// sequence is read again during materialization.
type DataSource interface {
	Open(ctx context.Context) (RowIterator, error)
}

// RowIterator is a generalized interface for iterating over raw rows,
// regardless of where they come from. Cell values are surfaced as a closed
// set of dynamic kinds (integers, floats, strings and nil for absent cells);
// anything else is treated as a string during inference and casting.
type RowIterator interface {
	HasNext() bool                // HasNext returns true iff another row is available
	Next() ([]interface{}, error) // Next returns the next raw row, or errors.NoMoreRowsError when the iterator is exhausted
	Close() error                 // Close releases any resources held by the iterator
}
