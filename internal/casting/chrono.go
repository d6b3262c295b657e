package casting

import (
	"strings"
	"time"

	. "github.com/chetna1726/attribute-type-casting/internal/types"
)

// The layouts accepted for chronological strings, tried in order.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var clockLayouts = []string{
	"15:04:05.999999999",
	"15:04",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// DateTime casts values to instants. Instants given as time values are
// preserved as given, location included.
type DateTime struct{}

func (DateTime) Cast(raw any) (value any, err error) {
	switch v := raw.(type) {
	case nil:
	case time.Time:
		value = v
	case string:
		value, err = parseChrono("datetime", v, datetimeLayouts)
	default:
		err = cannotCoerce("datetime", raw)
	}
	return
}

// Date casts values to the midnight UTC instant of the named day. The day of
// a time value is taken in the value's own location.
type Date struct{}

func (Date) Cast(raw any) (value any, err error) {
	switch v := raw.(type) {
	case nil:
	case time.Time:
		value = truncateToDay(v)
	case string:
		var t any
		t, err = parseChrono("date", v, dateLayouts)
		if err != nil || t == nil {
			return
		}
		value = truncateToDay(t.(time.Time))
	default:
		err = cannotCoerce("date", raw)
	}
	return
}

// Time casts values to pure clock times: instants anchored on the dummy date
// 2000-01-01 UTC, keeping only the time of day.
type Time struct{}

func (Time) Cast(raw any) (value any, err error) {
	switch v := raw.(type) {
	case nil:
	case time.Time:
		value = anchorClock(v)
	case string:
		var t any
		t, err = parseChrono("time", v, clockLayouts)
		if err != nil || t == nil {
			return
		}
		value = anchorClock(t.(time.Time))
	default:
		err = cannotCoerce("time", raw)
	}
	return
}

func parseChrono(name Ident, s string, layouts []string) (value any, err error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return
	}
	for _, layout := range layouts {
		t, perr := time.Parse(layout, trimmed)
		if perr == nil {
			value = t
			return
		}
	}
	err = cannotCoerce(name, s)
	return
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func anchorClock(t time.Time) time.Time {
	return time.Date(2000, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
