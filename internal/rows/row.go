package rows

import (
	"fmt"
	"strings"

	"github.com/go-tabkit/tabkit"
	"github.com/go-tabkit/tabkit/errors"
)

// rowImpl is a representation of a single row of typed columnar data, along
// with a reference to the Schema for that row. Cells are held as a slice of
// dynamic values in column order; a nil cell marks an absent value.
type rowImpl struct {
	cells  []interface{}
	schema tabkit.Schema
}

// CreateRow builds a new Row over the given cells. The cell count must
// match the Schema's column count - a disagreement is a structural error,
// not a value-level one.
func CreateRow(schema tabkit.Schema, cells []interface{}) (tabkit.Row, error) {
	if len(cells) != schema.NumColumns() {
		return nil, errors.RowWidthMismatchError{Expected: schema.NumColumns(), Actual: len(cells)}
	}
	return &rowImpl{cells: cells, schema: schema}, nil
}

// Schema returns the schema for this row. The Schema is immutable once
// finalized, so it is shared rather than copied.
func (r *rowImpl) Schema() tabkit.Schema {
	return r.schema
}

// Width returns the number of cells in this row
func (r *rowImpl) Width() int {
	return len(r.cells)
}

// ToString returns a string representation of this row
func (r *rowImpl) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	r.schema.ForEachColumn(func(name string, col tabkit.Column) error {
		var val string
		if r.cells[col.Index()] == nil {
			val = "nil"
		} else {
			val = col.Type().ToString(r.cells[col.Index()])
		}
		fmt.Fprintf(&res, "\"%s\": %s,", name, val)
		return nil
	})
	fmt.Fprint(&res, "}")
	return res.String()
}

// IsNil returns true iff the given column value is absent in this row.
// If an error occurs, this function will return false.
func (r *rowImpl) IsNil(colName string) bool {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return false
	}
	return r.cells[col.Index()] == nil
}

// SetNil marks the given column value as absent within this row
func (r *rowImpl) SetNil(colName string) error {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return err
	}
	r.cells[col.Index()] = nil
	return nil
}

// Get returns the value of any column as an interface{}, if it exists
func (r *rowImpl) Get(colName string) (col interface{}, err error) {
	c, err := r.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	return r.cells[c.Index()], nil
}

// GetInt retrieves a single int64 from the column with the given name
func (r *rowImpl) GetInt(colName string) (col int64, err error) {
	c, err := r.schema.GetColumn(colName)
	if err != nil {
		return
	}
	v := r.cells[c.Index()]
	if v == nil {
		return 0, errors.NilValueError{Name: colName}
	}
	ival, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("Column %s does not contain an int value", colName)
	}
	return ival, nil
}

// GetFloat retrieves a single float64 from the column with the given name
func (r *rowImpl) GetFloat(colName string) (col float64, err error) {
	c, err := r.schema.GetColumn(colName)
	if err != nil {
		return
	}
	v := r.cells[c.Index()]
	if v == nil {
		return 0, errors.NilValueError{Name: colName}
	}
	fval, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("Column %s does not contain a float value", colName)
	}
	return fval, nil
}

// GetString retrieves a single string from the column with the given name
func (r *rowImpl) GetString(colName string) (col string, err error) {
	c, err := r.schema.GetColumn(colName)
	if err != nil {
		return
	}
	v := r.cells[c.Index()]
	if v == nil {
		return "", errors.NilValueError{Name: colName}
	}
	sval, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("Column %s does not contain a string value", colName)
	}
	return sval, nil
}

// SetInt modifies a single int64 from the column with the given name
func (r *rowImpl) SetInt(colName string, value int64) (err error) {
	c, err := r.schema.GetColumn(colName)
	if err != nil {
		return
	}
	r.cells[c.Index()] = value
	return nil
}

// SetFloat modifies a single float64 from the column with the given name
func (r *rowImpl) SetFloat(colName string, value float64) (err error) {
	c, err := r.schema.GetColumn(colName)
	if err != nil {
		return
	}
	r.cells[c.Index()] = value
	return nil
}

// SetString modifies a single string from the column with the given name
func (r *rowImpl) SetString(colName string, value string) (err error) {
	c, err := r.schema.GetColumn(colName)
	if err != nil {
		return
	}
	r.cells[c.Index()] = value
	return nil
}

// Cells returns the raw cell values of this row, in column order
func (r *rowImpl) Cells() []interface{} {
	return r.cells
}
