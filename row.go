package tabkit

// Row is a representation of a single row of typed columnar data, along
// with a reference to the Schema for that row (a mapping of column names
// to column positions). In practice, users of Row will call its getter and
// setter methods to retrieve, manipulate and store data. A nil cell value
// represents an absent cell: a value which was missing in the source, or
// which could not be cast to its column's type under lenient validation.
type Row interface {
	Schema() Schema                                    // Schema returns the schema for this row
	Width() int                                        // Width returns the number of cells in this row
	ToString() string                                  // ToString returns a string representation of this row
	IsNil(colName string) bool                         // IsNil returns true iff the given column value is absent in this row. If an error occurs, this function will return false.
	SetNil(colName string) error                       // SetNil marks the given column value as absent within this row
	Get(colName string) (col interface{}, err error)   // Get returns the value of any column as an interface{}, if it exists
	GetInt(colName string) (col int64, err error)      // GetInt retrieves a single int64 from the column with the given name
	GetFloat(colName string) (col float64, err error)  // GetFloat retrieves a single float64 from the column with the given name
	GetString(colName string) (col string, err error)  // GetString retrieves a single string from the column with the given name
	SetInt(colName string, value int64) (err error)    // SetInt modifies a single int64 from the column with the given name
	SetFloat(colName string, value float64) (err error) // SetFloat modifies a single float64 from the column with the given name
	SetString(colName string, value string) (err error) // SetString modifies a single string from the column with the given name
	Cells() []interface{}                              // Cells returns the raw cell values of this row, in column order
}
