package tabkit

// Column describes the position and type of a single field in a Row.
type Column interface {
	Clone() Column  // Clone returns a copy of this Column
	Index() int     // Index returns the index of this Column within a Schema
	Type() DataType // Type returns the DataType of this Column
}
