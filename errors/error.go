package errors

import (
	"fmt"
)

// EmptySourceError occurs when schema inference is attempted against a data source which yields no rows
type EmptySourceError struct{}

// Error returns a textual representation of this EmptySourceError
func (e EmptySourceError) Error() string {
	return "Cannot infer a schema from an empty data source"
}

// SchemaLengthMismatchError occurs when a supplied column name list disagrees in length with the observed row width
type SchemaLengthMismatchError struct{ Expected, Actual int }

// Error returns a textual representation of this SchemaLengthMismatchError
func (e SchemaLengthMismatchError) Error() string {
	return fmt.Sprintf("Schema length %d does not match row width %d", e.Expected, e.Actual)
}

// RowWidthMismatchError occurs when a row's field count disagrees with the finalized Schema length
type RowWidthMismatchError struct{ Expected, Actual int }

// Error returns a textual representation of this RowWidthMismatchError
func (e RowWidthMismatchError) Error() string {
	return fmt.Sprintf("Row width %d is not compatible with Schema of %d columns", e.Actual, e.Expected)
}

// CellCastError occurs when a single cell value cannot be coerced to its column's declared type
type CellCastError struct {
	Value    string // string form of the offending value
	TypeName string // name of the target DataType
}

// Error returns a textual representation of this CellCastError
func (e CellCastError) Error() string {
	return fmt.Sprintf("Value %s cannot be cast to %s", e.Value, e.TypeName)
}

// MissingContextError occurs when a frame operation is attempted without a Context
type MissingContextError struct{}

// Error returns a textual representation of this MissingContextError
func (e MissingContextError) Error() string {
	return "No Context was provided"
}

// NilValueError occurs when a value in a Row is absent
type NilValueError struct{ Name string }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s is nil", e.Name)
}

// NoMoreRowsError occurs when there are no more rows in a RowIterator
type NoMoreRowsError struct{}

// Error returns a textual representation of this NoMoreRowsError
func (e NoMoreRowsError) Error() string {
	return "No more rows"
}
