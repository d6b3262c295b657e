package casting

import (
	"strings"

	"github.com/google/uuid"
)

// UUID casts values to google UUIDs. Byte slices of length 16 are taken as
// raw bytes, any other length as encoded text. The storage form is the
// canonical hyphenated string.
type UUID struct{}

func (UUID) Cast(raw any) (value any, err error) {
	switch v := raw.(type) {
	case nil:
	case uuid.UUID:
		value = v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return
		}
		u, perr := uuid.Parse(trimmed)
		if perr != nil {
			err = cannotCoerce("uuid", raw)
			return
		}
		value = u
	case []byte:
		var u uuid.UUID
		var perr error
		if len(v) == 16 {
			u, perr = uuid.FromBytes(v)
		} else {
			u, perr = uuid.ParseBytes(v)
		}
		if perr != nil {
			err = cannotCoerce("uuid", raw)
			return
		}
		value = u
	default:
		err = cannotCoerce("uuid", raw)
	}
	return
}

func (u UUID) Serialize(value any) (stored any, err error) {
	cast, err := u.Cast(value)
	if err != nil || cast == nil {
		return
	}
	stored = cast.(uuid.UUID).String()
	return
}
