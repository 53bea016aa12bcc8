package converters

import (
	"time"

	"github.com/aarondl/null/v8"
)

// NullString treats the empty string as null.
func NullString(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

// String returns the empty string for null.
func String(s null.String) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func NullInt64(i int64) null.Int64 { return null.Int64From(i) }

func Int64(i null.Int64) int64 {
	if !i.Valid {
		return 0
	}
	return i.Int64
}

func NullBool(b bool) null.Bool { return null.BoolFrom(b) }

func Bool(b null.Bool) bool {
	if !b.Valid {
		return false
	}
	return b.Bool
}

// NullTime treats the zero time as null.
func NullTime(t time.Time) null.Time {
	if t.IsZero() {
		return null.Time{}
	}
	return null.TimeFrom(t)
}

func Time(t null.Time) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T { return &v }

// Deref returns the zero value for a nil pointer.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
