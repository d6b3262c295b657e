package casting

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	. "github.com/chetna1726/attribute-type-casting/internal/types"
	"github.com/shopspring/decimal"
)

// String casts any value to its string representation. Booleans take the
// single-letter database convention: true is "t" and false is "f".
type String struct{}

func (String) Cast(raw any) (value any, err error) {
	switch v := raw.(type) {
	case nil:
	case string:
		value = v
	case bool:
		if v {
			value = "t"
		} else {
			value = "f"
		}
	case []byte:
		value = string(v)
	default:
		value = fmt.Sprintf("%v", v)
	}
	return
}

// Integer casts values to int64. Fractional input truncates toward zero, so
// "27.43" casts to 27. Strings that parse as neither integer nor float are
// outside the accepted domain.
type Integer struct{}

func (Integer) Cast(raw any) (value any, err error) {
	switch v := raw.(type) {
	case nil:
	case int64:
		value = v
	case int:
		value = int64(v)
	case int8:
		value = int64(v)
	case int16:
		value = int64(v)
	case int32:
		value = int64(v)
	case uint:
		value = int64(v)
	case uint8:
		value = int64(v)
	case uint16:
		value = int64(v)
	case uint32:
		value = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			err = cannotCoerce("integer", raw)
			return
		}
		value = int64(v)
	case float64:
		value, err = truncateFloat(v)
	case float32:
		value, err = truncateFloat(float64(v))
	case bool:
		if v {
			value = int64(1)
		} else {
			value = int64(0)
		}
	case decimal.Decimal:
		value = v.IntPart()
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return
		}
		i, perr := strconv.ParseInt(trimmed, 10, 64)
		if perr == nil {
			value = i
			return
		}
		f, perr := strconv.ParseFloat(trimmed, 64)
		if perr != nil {
			err = cannotCoerce("integer", raw)
			return
		}
		value, err = truncateFloat(f)
	default:
		err = cannotCoerce("integer", raw)
	}
	return
}

func truncateFloat(f float64) (value any, err error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
		err = cannotCoerce("integer", f)
		return
	}
	value = int64(math.Trunc(f))
	return
}

// Float casts values to float64. The strings "Infinity", "-Infinity", and
// "NaN" cast to their IEEE values.
type Float struct{}

func (Float) Cast(raw any) (value any, err error) {
	switch v := raw.(type) {
	case nil:
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int64:
		value = float64(v)
	case int:
		value = float64(v)
	case int8:
		value = float64(v)
	case int16:
		value = float64(v)
	case int32:
		value = float64(v)
	case uint:
		value = float64(v)
	case uint8:
		value = float64(v)
	case uint16:
		value = float64(v)
	case uint32:
		value = float64(v)
	case uint64:
		value = float64(v)
	case decimal.Decimal:
		value = v.InexactFloat64()
	case string:
		trimmed := strings.TrimSpace(v)
		switch trimmed {
		case "":
		case "Infinity":
			value = math.Inf(1)
		case "-Infinity":
			value = math.Inf(-1)
		case "NaN":
			value = math.NaN()
		default:
			f, perr := strconv.ParseFloat(trimmed, 64)
			if perr != nil {
				err = cannotCoerce("float", raw)
				return
			}
			value = f
		}
	default:
		err = cannotCoerce("float", raw)
	}
	return
}

// falseValues are the inputs Boolean casts to false. Every other non-nil,
// non-blank value casts to true.
var falseValues = map[string]Void{
	"0":     {},
	"f":     {},
	"F":     {},
	"false": {},
	"FALSE": {},
	"off":   {},
	"OFF":   {},
}

// Boolean casts values to bool, accepting the conventional false spellings.
type Boolean struct{}

func (Boolean) Cast(raw any) (value any, err error) {
	switch v := raw.(type) {
	case nil:
	case bool:
		value = v
	case string:
		if v == "" {
			return
		}
		_, isFalse := falseValues[v]
		value = !isFalse
	case int:
		value = v != 0
	case int64:
		value = v != 0
	case int8:
		value = v != 0
	case int16:
		value = v != 0
	case int32:
		value = v != 0
	case uint:
		value = v != 0
	case uint8:
		value = v != 0
	case uint16:
		value = v != 0
	case uint32:
		value = v != 0
	case uint64:
		value = v != 0
	case float64:
		value = v != 0
	case float32:
		value = v != 0
	default:
		value = true
	}
	return
}

// Binary casts strings and byte slices to []byte.
type Binary struct{}

func (Binary) Cast(raw any) (value any, err error) {
	switch v := raw.(type) {
	case nil:
	case []byte:
		value = v
	case string:
		value = []byte(v)
	default:
		err = cannotCoerce("binary", raw)
	}
	return
}
