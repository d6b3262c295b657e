package casting

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal casts values to arbitrary-precision decimals. The storage form is
// the exact decimal string, so round-trips lose nothing to binary floats.
type Decimal struct{}

func (Decimal) Cast(raw any) (value any, err error) {
	switch v := raw.(type) {
	case nil:
	case decimal.Decimal:
		value = v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return
		}
		d, perr := decimal.NewFromString(trimmed)
		if perr != nil {
			err = cannotCoerce("decimal", raw)
			return
		}
		value = d
	case int:
		value = decimal.NewFromInt(int64(v))
	case int32:
		value = decimal.NewFromInt32(v)
	case int64:
		value = decimal.NewFromInt(v)
	case float32:
		value = decimal.NewFromFloat32(v)
	case float64:
		value = decimal.NewFromFloat(v)
	default:
		err = cannotCoerce("decimal", raw)
	}
	return
}

func (d Decimal) Serialize(value any) (stored any, err error) {
	cast, err := d.Cast(value)
	if err != nil || cast == nil {
		return
	}
	stored = cast.(decimal.Decimal).String()
	return
}
