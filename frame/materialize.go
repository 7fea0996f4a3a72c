package frame

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/go-tabkit/tabkit"
	"github.com/go-tabkit/tabkit/errors"
	"github.com/go-tabkit/tabkit/internal/rows"
	"github.com/go-tabkit/tabkit/logging"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// materialize produces the final row set for a Frame. With validation
// disabled, raw rows pass through unchanged. With validation enabled, every
// cell is cast to its column's declared type, batch-parallel across
// independent row ranges: batches share only the immutable Schema and write
// disjoint ranges of the output, so no synchronization is needed beyond the
// group itself.
func materialize(ctx context.Context, tc *Context, sch tabkit.Schema, raw [][]interface{}, opts *CreateOpts) ([]tabkit.Row, error) {
	out := make([]tabkit.Row, len(raw))
	if !opts.ValidateSchema {
		for i, cells := range raw {
			r, err := rows.CreateRow(sch, cells)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			out[i] = r
		}
		return out, nil
	}

	var castFailures int64
	names := sch.ColumnNames()
	colTypes := sch.ColumnTypes()
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(raw); start += tc.batchSize() {
		start := start
		end := start + tc.batchSize()
		if end > len(raw) {
			end = len(raw)
		}
		g.Go(func() error {
			// cancellation takes effect between batches, never mid-row
			if err := gctx.Err(); err != nil {
				return err
			}
			return castBatch(sch, names, colTypes, raw, out, start, end, opts.Strict, &castFailures)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if n := atomic.LoadInt64(&castFailures); n > 0 {
		tc.Log.Logf(logging.WarnLevel, "%d cells could not be cast and were recorded as missing", n)
	}
	return out, nil
}

// castBatch casts the raw rows in [start, end) and stores the resulting
// Rows at the same positions in out. Under lenient validation a failed
// cast leaves the cell absent; under strict validation every failure in
// the batch is collected and the combined error fails the load.
func castBatch(sch tabkit.Schema, names []string, colTypes []tabkit.DataType, raw [][]interface{}, out []tabkit.Row, start int, end int, strict bool, castFailures *int64) error {
	var multierr *multierror.Error
	width := sch.NumColumns()
	for i := start; i < end; i++ {
		cells := raw[i]
		if len(cells) != width {
			return fmt.Errorf("row %d: %w", i, errors.RowWidthMismatchError{Expected: width, Actual: len(cells)})
		}
		castCells := make([]interface{}, width)
		for j, v := range cells {
			cv, err := tabkit.Cast(v, colTypes[j])
			if err != nil {
				atomic.AddInt64(castFailures, 1)
				if strict {
					multierr = multierror.Append(multierr, fmt.Errorf("row %d, column %s: %w", i, names[j], err))
				}
				continue
			}
			castCells[j] = cv
		}
		r, err := rows.CreateRow(sch, castCells)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = r
	}
	return multierr.ErrorOrNil()
}
