package schema

import (
	"fmt"

	"github.com/go-tabkit/tabkit"
	"github.com/go-tabkit/tabkit/errors"
)

// DefaultSampleSize is the number of rows read from the head of a data
// source to infer column types. Heterogeneity which first appears beyond
// the sample is not reflected in the resolved Schema.
const DefaultSampleSize = 100

// SampleRows reads up to n raw rows from the head of a RowIterator,
// producing the bounded sample used for type inference. The sample is
// transient: it exists only to resolve a Schema and is discarded afterwards.
func SampleRows(it tabkit.RowIterator, n int) ([][]interface{}, error) {
	sample := make([][]interface{}, 0, n)
	for len(sample) < n && it.HasNext() {
		row, err := it.Next()
		if err != nil {
			if _, done := err.(errors.NoMoreRowsError); done {
				break
			}
			return nil, err
		}
		sample = append(sample, row)
	}
	return sample, nil
}

// Resolve finalizes a Schema against a bounded sample of raw rows. Three
// forms of user input are supported:
//   - a fully-defined Schema, which is returned as-is with no inference
//   - a list of column names, which are paired with types inferred from
//     the sample
//   - nothing at all, in which case names are synthesized as C0, C1, C2...
//     in column order and types are inferred from the sample
//
// Resolution fails with errors.EmptySourceError when inference is required
// but the sample holds no rows, with errors.SchemaLengthMismatchError when
// the supplied name list disagrees with the sampled row width, and with
// errors.RowWidthMismatchError when the sample itself is ragged.
func Resolve(defined tabkit.Schema, names []string, sample [][]interface{}) (tabkit.Schema, error) {
	if defined != nil {
		return defined, nil
	}
	if len(sample) == 0 {
		return nil, errors.EmptySourceError{}
	}
	width := len(sample[0])
	for _, row := range sample {
		if len(row) != width {
			return nil, errors.RowWidthMismatchError{Expected: width, Actual: len(row)}
		}
	}
	if names != nil && len(names) != width {
		return nil, errors.SchemaLengthMismatchError{Expected: len(names), Actual: width}
	}
	colTypes := inferColumnTypes(sample, width)
	s := CreateSchema()
	for i := 0; i < width; i++ {
		name := fmt.Sprintf("C%d", i)
		if names != nil {
			name = names[i]
		}
		if _, err := s.CreateColumn(name, colTypes[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// inferColumnTypes folds the natural type of every sampled cell into the
// most general type observed for its column. Absent cells contribute
// nothing; a column with no present cells in the sample resolves to string.
func inferColumnTypes(sample [][]interface{}, width int) []tabkit.DataType {
	colTypes := make([]tabkit.DataType, width)
	for _, row := range sample {
		for i, v := range row {
			if v == nil {
				continue
			}
			t := tabkit.InferValueType(v)
			if colTypes[i] == nil {
				colTypes[i] = t
			} else {
				colTypes[i] = tabkit.Generalize(colTypes[i], t)
			}
		}
	}
	for i := range colTypes {
		if colTypes[i] == nil {
			colTypes[i] = &tabkit.StringColumnType{}
		}
	}
	return colTypes
}
