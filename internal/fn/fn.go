// Package fn holds the function combinators the mapping pipelines are assembled from.
//
// The package is internal: the combinators are an implementation detail of the builders in the
// module root and are not part of the public API.
package fn

import (
	"database/sql/driver"
	"reflect"
)

// Identity returns v unchanged.
func Identity[T any](v T) T { return v }

// Compose returns a function equal to g(f(a)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// ComposeBi returns a function equal to g(t, f(t, u)).
// The first argument is handed unchanged to both functions, which is how the original
// input travels alongside the evolving output of a mutable pipeline.
func ComposeBi[T, U, V, R any](f func(T, U) V, g func(T, V) R) func(T, U) R {
	return func(t T, u U) R {
		return g(t, f(t, u))
	}
}

// NullSafe lifts f over a value carrying a null mark. A value that is already marked null, or
// is null itself (see IsNull), short-circuits to the zero value of R, marked null, without
// invoking f. The mark keeps later steps skipped even when the zero value of R is not null.
func NullSafe[T, R any](f func(T) R) func(T, bool) (R, bool) {
	return func(t T, null bool) (R, bool) {
		if null || IsNull(t) {
			var zero R
			return zero, true
		}
		return f(t), false
	}
}

// Setter turns a getter and an in-place setter into a pipeline step that writes
// getter(in) onto out and hands out back unchanged.
func Setter[In, T, Out any](getter func(In) T, set func(Out, T)) func(In, Out) Out {
	return func(in In, out Out) Out {
		set(out, getter(in))
		return out
	}
}

// Replacer turns a getter and a value-returning setter into a pipeline step whose
// result replaces the output.
func Replacer[In, T, Out any](getter func(In) T, set func(Out, T) Out) func(In, Out) Out {
	return func(in In, out Out) Out {
		return set(out, getter(in))
	}
}

// IsNull reports whether v is null: an untyped nil, a nil pointer, map, slice,
// func, chan or interface, or a driver.Valuer (null.String, sql.NullInt64, ...)
// whose Value is nil.
func IsNull[T any](v T) bool {
	x := any(v)
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return true
		}
	}
	if valuer, ok := x.(driver.Valuer); ok {
		val, err := valuer.Value()
		return err == nil && val == nil
	}
	return false
}
