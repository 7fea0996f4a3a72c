package tabkit

// Schema is an ordered mapping from column names to column positions and
// DataTypes within a Row. Column names are unique within a Schema, and
// column order is significant: it matches the field order of every Row
// governed by the Schema. A Schema is built up with CreateColumn during
// resolution and treated as immutable once finalized.
type Schema interface {
	Equals(otherSchema Schema) error
	Clone() Schema
	Fingerprint() uint64 // a stable hash of the Schema's column names and types
	NumColumns() int
	GetColumn(colName string) (col Column, err error)
	HasColumn(colName string) bool
	CreateColumn(colName string, columnType DataType) (newSchema Schema, err error)
	ColumnNames() []string
	ColumnTypes() []DataType
	ForEachColumn(fn func(name string, col Column) error) error
}
