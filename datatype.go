package tabkit

import (
	"fmt"
	"strconv"
	"strings"
)

// DataType is an interface implemented by the scalar column types supported
// by tabkit. The set of DataTypes is closed, and totally ordered by
// generality: a column holding a mix of values is widened to the most
// general type observed (see Generalize).
type DataType interface {
	Generality() int               // returns the position of this type in the widening order
	Name() string                  // returns a short name for this type, used in schema listings
	ToString(v interface{}) string // produces a string representation of a value of this type
}

// IntColumnType is a column type which stores an int64 value
type IntColumnType struct{}

// Generality returns the position of an IntColumnType in the widening order
func (b *IntColumnType) Generality() int {
	return 0
}

// Name returns a short name for an IntColumnType
func (b *IntColumnType) Name() string {
	return "int"
}

// ToString produces a string representation of an IntColumnType value.
// Cells of a pass-through frame may disagree with their column's type, so
// unrecognized kinds fall back to their plain printed form.
func (b *IntColumnType) ToString(v interface{}) string {
	switch t := v.(type) {
	case int64:
		return fmt.Sprintf("%d", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// FloatColumnType is a column type which stores a float64 value
type FloatColumnType struct{}

// Generality returns the position of a FloatColumnType in the widening order
func (b *FloatColumnType) Generality() int {
	return 1
}

// Name returns a short name for a FloatColumnType
func (b *FloatColumnType) Name() string {
	return "float"
}

// ToString produces a string representation of a FloatColumnType value.
// Cells of a pass-through frame may disagree with their column's type, so
// unrecognized kinds fall back to their plain printed form.
func (b *FloatColumnType) ToString(v interface{}) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// StringColumnType is a column type which stores a string value
type StringColumnType struct{}

// Generality returns the position of a StringColumnType in the widening order
func (b *StringColumnType) Generality() int {
	return 2
}

// Name returns a short name for a StringColumnType
func (b *StringColumnType) Name() string {
	return "string"
}

// ToString produces a string representation of a StringColumnType value.
// Cells of a pass-through frame may disagree with their column's type, so
// unrecognized kinds fall back to their plain printed form.
func (b *StringColumnType) ToString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("\"%s\"", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Generalize returns the more general of two DataTypes, per the total
// order int < float < string. Generalize is commutative, and
// Generalize(a, a) is always a.
func Generalize(a DataType, b DataType) DataType {
	if b.Generality() > a.Generality() {
		return b
	}
	return a
}

// InferValueType classifies a raw cell value as the narrowest DataType it
// exactly matches: native integers are ints, native floating-point values
// are floats, and text is classified by attempting an exact literal parse.
// Values which match no narrower type (including booleans and empty or
// whitespace-only text) are classified as strings, so every value has a
// classification and InferValueType cannot fail.
func InferValueType(v interface{}) DataType {
	switch t := v.(type) {
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return &IntColumnType{}
	case float32, float64:
		return &FloatColumnType{}
	case string:
		s := strings.TrimSpace(t)
		if len(s) == 0 {
			return &StringColumnType{}
		}
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			return &IntColumnType{}
		}
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return &FloatColumnType{}
		}
		return &StringColumnType{}
	default:
		// booleans, nil-sentinels and anything unrecognized fall back to
		// string until a dedicated column type covers them
		return &StringColumnType{}
	}
}
