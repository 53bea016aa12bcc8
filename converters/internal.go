package converters

import (
	"math"
	"reflect"

	"github.com/Station-Manager/errors"
)

// Check asserts that src holds a T.
func Check[T any](op errors.Op, src any) (T, error) {
	srcVal, ok := src.(T)
	if !ok {
		var zero T
		return zero, errors.New(op).Errorf("Given parameter not a %T, got %T", zero, src)
	}
	return srcVal, nil
}

// CheckString asserts that src is a non-empty string.
func CheckString(op errors.Op, src any) (string, error) {
	srcVal, err := Check[string](op, src)
	if err != nil {
		return "", err
	}
	if srcVal == "" {
		return "", errors.New(op).Msg(ErrMsgParamEmpty)
	}
	return srcVal, nil
}

// CheckInt64 accepts any integer kind and integral float64 values, the latter being what
// encoding/json produces for numbers decoded into an interface.
func CheckInt64(op errors.Op, src any) (int64, error) {
	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return -1, errors.New(op).Errorf("Given parameter overflows int64: %d", u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) {
			return -1, errors.New(op).Msg(ErrMsgNotIntegral)
		}
		return int64(f), nil
	default:
		return -1, errors.New(op).Errorf("Given parameter not an integer, got %T", src)
	}
}

// Must turns a fallible conversion into a step function. A failure panics with an op-tagged
// error wrapping the cause, which surfaces at the Convert call site.
func Must[T, U any](f func(T) (U, error)) func(T) U {
	return func(v T) U {
		const op errors.Op = "converters.Must"
		res, err := f(v)
		if err != nil {
			panic(errors.New(op).Err(err))
		}
		return res
	}
}

// Lift turns a typed conversion into the untyped form used by field converters of the adapt
// package. A source of the wrong type is reported as an error.
func Lift[T, U any](f func(T) U) func(any) (any, error) {
	return func(src any) (any, error) {
		const op errors.Op = "converters.Lift"
		v, err := Check[T](op, src)
		if err != nil {
			return nil, err
		}
		return f(v), nil
	}
}

// LiftErr is Lift for fallible conversions.
func LiftErr[T, U any](f func(T) (U, error)) func(any) (any, error) {
	return func(src any) (any, error) {
		const op errors.Op = "converters.LiftErr"
		v, err := Check[T](op, src)
		if err != nil {
			return nil, err
		}
		res, err := f(v)
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		return res, nil
	}
}
