package converters

import (
	"time"

	"github.com/Station-Manager/errors"
)

// ParseDate accepts YYYYMMDD and YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	const op errors.Op = "converters.ParseDate"
	var (
		retVal time.Time
		err    error
	)
	switch len(s) {
	case 8:
		retVal, err = time.Parse("20060102", s)
	case 10:
		if s[4] != '-' || s[7] != '-' {
			return time.Time{}, errors.New(op).Msg(ErrMsgBadDateFormat)
		}
		retVal, err = time.Parse("2006-01-02", s)
	default:
		return time.Time{}, errors.New(op).Msg(ErrMsgBadDateFormat)
	}
	if err != nil {
		return time.Time{}, errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
	}
	return retVal, nil
}

// ParseClock accepts HH:MM and HHMM and returns the time of day on the zero date in UTC.
func ParseClock(s string) (time.Time, error) {
	const op errors.Op = "converters.ParseClock"
	var layout string
	switch {
	case len(s) == 5 && s[2] == ':':
		layout = "15:04"
	case len(s) == 4:
		layout = "1504"
	default:
		return time.Time{}, errors.New(op).Msg(ErrMsgBadTimeFormat)
	}
	retVal, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err).Msg(ErrMsgBadTimeFormat)
	}
	return retVal, nil
}

// FormatDate renders a date as YYYY-MM-DD, or the empty string for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
