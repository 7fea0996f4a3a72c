package schema

import (
	"fmt"
	"reflect"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-tabkit/tabkit"
)

// column records the position and type of a single field in a Row.
type column struct {
	idx     int
	colType tabkit.DataType
}

// Clone returns a copy of this Column
func (c *column) Clone() tabkit.Column {
	return &column{c.idx, c.colType}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// Type returns the DataType of this Column
func (c *column) Type() tabkit.DataType {
	return c.colType
}

// Schema is an ordered mapping from column names to column positions and
// DataTypes. It allows one to obtain columns by name, define new columns,
// list names and types in column order, etc.
type schema struct {
	columns map[string]tabkit.Column
	names   []string // column names in index order
}

// CreateSchema is a factory for Schemas
func CreateSchema() tabkit.Schema {
	return &schema{
		columns: make(map[string]tabkit.Column),
		names:   make([]string, 0),
	}
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema tabkit.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, col tabkit.Column) error {
		otherCol, err := otherSchema.GetColumn(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(col.Type()) != reflect.TypeOf(otherCol.Type()) {
			return fmt.Errorf("Column %s types do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() tabkit.Schema {
	newColumns := make(map[string]tabkit.Column)
	for k, v := range s.columns {
		newColumns[k] = v.Clone()
	}
	newNames := make([]string, len(s.names))
	copy(newNames, s.names)
	return &schema{columns: newColumns, names: newNames}
}

// Fingerprint returns a stable hash of this Schema's column names and
// types, in column order. Two Schemas with equal fingerprints govern
// identically-shaped rows.
func (s *schema) Fingerprint() uint64 {
	hasher := xxhash.New()
	for _, name := range s.names {
		hasher.WriteString(name)
		hasher.Write([]byte{0})
		hasher.WriteString(s.columns[name].Type().Name())
		hasher.Write([]byte{0})
	}
	return hasher.Sum64()
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.names)
}

// GetColumn returns the Column with the given name, if it exists
func (s *schema) GetColumn(colName string) (col tabkit.Column, err error) {
	col, ok := s.columns[colName]
	if !ok {
		err = fmt.Errorf("Schema does not contain column with name %s", colName)
	}
	return
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, err := s.GetColumn(colName)
	return err == nil
}

// CreateColumn defines a new column within the Schema
func (s *schema) CreateColumn(colName string, columnType tabkit.DataType) (newSchema tabkit.Schema, err error) {
	_, containsColumn := s.columns[colName]
	if containsColumn {
		err = fmt.Errorf("Schema already contains column with name %s", colName)
	} else {
		s.columns[colName] = &column{len(s.names), columnType}
		s.names = append(s.names, colName)
		newSchema = s
	}
	return
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *schema) ColumnTypes() []tabkit.DataType {
	types := make([]tabkit.DataType, len(s.names))
	for _, v := range s.columns {
		types[v.Index()] = v.Type()
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema, in index order
func (s *schema) ForEachColumn(fn func(name string, col tabkit.Column) error) error {
	for _, name := range s.names {
		err := fn(name, s.columns[name])
		if err != nil {
			return err
		}
	}
	return nil
}
