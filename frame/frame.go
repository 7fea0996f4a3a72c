// Package frame constructs typed Frames from raw data sources: it resolves
// a Schema against a bounded sample of rows, optionally casts every cell to
// its column's declared type, and packages the result for hand-off to an
// execution engine binding.
package frame

import (
	"context"

	"github.com/go-tabkit/tabkit"
	"github.com/go-tabkit/tabkit/errors"
	"github.com/go-tabkit/tabkit/logging"
	"github.com/go-tabkit/tabkit/schema"
	uuid "github.com/gofrs/uuid"
)

const defaultBatchSize = 128

// Context carries the configuration shared by frame construction
// operations. It stands in for the execution-engine context of the binding
// layer: entry points receive it explicitly and fail fast when it is
// absent, rather than relying on process-wide state.
type Context struct {
	Log        *logging.Logger // destination for construction logs. nil discards everything.
	BatchSize  int             // rows per casting batch. Defaults to 128.
	SampleSize int             // rows sampled for schema inference. Defaults to 100.
}

func (tc *Context) batchSize() int {
	if tc.BatchSize <= 0 {
		return defaultBatchSize
	}
	return tc.BatchSize
}

func (tc *Context) sampleSize() int {
	if tc.SampleSize <= 0 {
		return schema.DefaultSampleSize
	}
	return tc.SampleSize
}

// CreateOpts configures Create. Schema and ColumnNames are the two
// non-empty forms of user schema input: a fully-defined Schema suppresses
// inference entirely, while ColumnNames names the columns and leaves types
// to be inferred. When both are set, Schema wins. When neither is set,
// names are synthesized as C0, C1, C2... and types are inferred.
type CreateOpts struct {
	Schema         tabkit.Schema
	ColumnNames    []string
	ValidateSchema bool // when true, every cell is cast to its column's declared type
	Strict         bool // when true, a failed cast aborts the load instead of producing an absent cell
}

// Frame is a named, typed table: a finalized Schema plus materialized Rows,
// ready to hand to an execution engine binding.
type Frame struct {
	id     string
	schema tabkit.Schema
	rows   []tabkit.Row
}

// ID returns the unique identifier of this Frame
func (f *Frame) ID() string {
	return f.id
}

// Schema returns the finalized Schema of this Frame
func (f *Frame) Schema() tabkit.Schema {
	return f.schema
}

// Rows returns the materialized Rows of this Frame, in source order
func (f *Frame) Rows() []tabkit.Row {
	return f.rows
}

// NumRows returns the number of Rows in this Frame
func (f *Frame) NumRows() int {
	return len(f.rows)
}

// Create constructs a Frame from the given data source. If no schema data
// types are provided via opts, the schema is inferred from the first
// SampleSize rows of the source. If schema validation is enabled, every
// cell is checked against the schema and cast to its column's declared
// type; a cell which cannot be cast becomes absent in the resulting Frame,
// unless strict validation was requested, in which case the load fails.
func Create(ctx context.Context, tc *Context, source tabkit.DataSource, opts *CreateOpts) (*Frame, error) {
	if tc == nil {
		return nil, errors.MissingContextError{}
	}
	if opts == nil {
		opts = &CreateOpts{}
	}

	sch, err := resolveSchema(ctx, tc, source, opts)
	if err != nil {
		return nil, err
	}
	tc.Log.Logf(logging.DebugLevel, "resolved schema %v (fingerprint %016x)", sch.ColumnNames(), sch.Fingerprint())

	raw, err := readAll(ctx, source)
	if err != nil {
		return nil, err
	}
	rows, err := materialize(ctx, tc, sch, raw, opts)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	tc.Log.Logf(logging.InfoLevel, "materialized frame %s with %d rows over %d columns", id.String(), len(rows), sch.NumColumns())
	return &Frame{id: id.String(), schema: sch, rows: rows}, nil
}

// resolveSchema finalizes the Frame's Schema, reading a bounded sample
// from the source only when inference is actually required.
func resolveSchema(ctx context.Context, tc *Context, source tabkit.DataSource, opts *CreateOpts) (tabkit.Schema, error) {
	if opts.Schema != nil {
		return schema.Resolve(opts.Schema, nil, nil)
	}
	it, err := source.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	sample, err := schema.SampleRows(it, tc.sampleSize())
	if err != nil {
		return nil, err
	}
	return schema.Resolve(nil, opts.ColumnNames, sample)
}

// readAll drains the source into memory for materialization. This is the
// only full read of the data source - schema resolution touches just the
// bounded sample.
func readAll(ctx context.Context, source tabkit.DataSource) ([][]interface{}, error) {
	it, err := source.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	var raw [][]interface{}
	for it.HasNext() {
		row, err := it.Next()
		if err != nil {
			if _, done := err.(errors.NoMoreRowsError); done {
				break
			}
			return nil, err
		}
		raw = append(raw, row)
	}
	return raw, nil
}
