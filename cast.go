package tabkit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-tabkit/tabkit/errors"
)

// Cast attempts to coerce a raw cell value to the target DataType. Values
// already of the target kind are returned unchanged, widening conversions
// (int to float, anything to its string form) always succeed, and narrowing
// conversions attempt an exact literal parse. A failed cast is reported as
// an errors.CellCastError - the caller decides whether that is fatal.
// nil values represent absent cells and pass through untouched.
func Cast(v interface{}, target DataType) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	switch target.(type) {
	case *IntColumnType:
		return castToInt(v)
	case *FloatColumnType:
		return castToFloat(v)
	case *StringColumnType:
		return castToString(v)
	default:
		return nil, fmt.Errorf("casting does not support column type %T", target)
	}
}

func castToInt(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	case string:
		ival, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return nil, castError(v, &IntColumnType{})
		}
		return ival, nil
	default:
		return nil, castError(v, &IntColumnType{})
	}
}

// floatToInt narrows a float to an int only when no information would be
// lost, matching the exact-literal-parse contract of Cast
func floatToInt(f float64) (interface{}, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return nil, castError(f, &IntColumnType{})
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return nil, castError(f, &IntColumnType{})
	}
	return int64(f), nil
}

func castToFloat(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case int:
		return float64(t), nil
	case int8:
		return float64(t), nil
	case int16:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint8:
		return float64(t), nil
	case uint16:
		return float64(t), nil
	case uint32:
		return float64(t), nil
	case float32:
		return float64(t), nil
	case float64:
		return t, nil
	case string:
		fval, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil, castError(v, &FloatColumnType{})
		}
		return fval, nil
	default:
		return nil, castError(v, &FloatColumnType{})
	}
}

func castToString(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		return strconv.FormatInt(int64(t), 10), nil
	case int8:
		return strconv.FormatInt(int64(t), 10), nil
	case int16:
		return strconv.FormatInt(int64(t), 10), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint8:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(t), 10), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return fmt.Sprintf("%v", t), nil
	}
}

func castError(v interface{}, target DataType) error {
	return errors.CellCastError{Value: fmt.Sprintf("%#v", v), TypeName: target.Name()}
}
