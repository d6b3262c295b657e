package casting

import (
	"encoding/json"
	"strings"
)

// JSON casts values to the shapes encoding/json decodes to: maps, slices,
// strings, float64 numbers, bools, and nil. Strings always parse as
// documents, so canonical string values do not survive a re-cast; that
// ambiguity comes with the territory. The storage form is the encoded text.
type JSON struct{}

func (JSON) Cast(raw any) (value any, err error) {
	switch v := raw.(type) {
	case nil:
	case string:
		value, err = decodeJSON(v)
	case []byte:
		value, err = decodeJSON(string(v))
	default:
		data, merr := json.Marshal(v)
		if merr != nil {
			err = cannotCoerce("json", raw)
			return
		}
		value, err = decodeJSON(string(data))
	}
	return
}

func (JSON) Serialize(value any) (stored any, err error) {
	if value == nil {
		return
	}
	data, merr := json.Marshal(value)
	if merr != nil {
		err = cannotCoerce("json", value)
		return
	}
	stored = string(data)
	return
}

func decodeJSON(s string) (value any, err error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return
	}
	derr := json.Unmarshal([]byte(trimmed), &value)
	if derr != nil {
		err = cannotCoerce("json", s)
	}
	return
}
