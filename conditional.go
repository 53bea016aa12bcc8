package mappers

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mappers/internal/fn"
)

// ConditionalStart holds a step and the predicate probing its value. It is completed either by a
// Then variant, which leads to a ConditionalEnd, or by a Fallback variant, which replaces the
// value on a match and keeps it otherwise.
type ConditionalStart[In, T any] struct {
	origin *Step[In, T]
	pred   func(T) bool
}

// Then replaces a matching value with v.
func (c *ConditionalStart[In, T]) Then(v T) *ConditionalEnd[In, T, T] {
	return c.ThenWith(func(In, T) T { return v })
}

// ThenGet replaces a matching value with the result of supplier.
func (c *ConditionalStart[In, T]) ThenGet(supplier func() T) *ConditionalEnd[In, T, T] {
	requireFunc("mappers.ConditionalStart.ThenGet", supplier == nil, "supplier")
	return c.ThenWith(func(In, T) T { return supplier() })
}

// ThenFunc replaces a matching value with a value derived from the input.
func (c *ConditionalStart[In, T]) ThenFunc(f func(In) T) *ConditionalEnd[In, T, T] {
	requireFunc("mappers.ConditionalStart.ThenFunc", f == nil, "handler")
	return c.ThenWith(func(in In, _ T) T { return f(in) })
}

// ThenWith replaces a matching value with f(in, value).
func (c *ConditionalStart[In, T]) ThenWith(f func(In, T) T) *ConditionalEnd[In, T, T] {
	requireFunc("mappers.ConditionalStart.ThenWith", f == nil, "handler")
	return &ConditionalEnd[In, T, T]{origin: c.origin, pred: c.pred, then: f, keep: fn.Identity[T]}
}

// Fallback yields v when the predicate matches and the probed value otherwise.
func (c *ConditionalStart[In, T]) Fallback(v T) *Step[In, T] {
	return c.Then(v).Proceed()
}

// FallbackGet yields supplier() when the predicate matches and the probed value otherwise.
func (c *ConditionalStart[In, T]) FallbackGet(supplier func() T) *Step[In, T] {
	return c.ThenGet(supplier).Proceed()
}

// FallbackFunc yields f(in) when the predicate matches and the probed value otherwise.
func (c *ConditionalStart[In, T]) FallbackFunc(f func(In) T) *Step[In, T] {
	return c.ThenFunc(f).Proceed()
}

// ConditionalEnd is a conditional branch whose matching handler is known and which awaits the
// handler for the values that do not match. Every completion returns a new Step.
type ConditionalEnd[In, T, U any] struct {
	origin *Step[In, T]
	pred   func(T) bool
	then   func(In, T) U
	keep   func(T) U // nil when the matching handler changes the value type
}

// GivenTo opens a branch whose handlers produce a different type than the probed value.
func GivenTo[In, T, U any](s *Step[In, T], pred func(T) bool, then func(In, T) U) *ConditionalEnd[In, T, U] {
	const op errors.Op = "mappers.GivenTo"
	requireFunc(op, s == nil, "step")
	requireFunc(op, pred == nil, "predicate")
	requireFunc(op, then == nil, "handler")
	return &ConditionalEnd[In, T, U]{origin: s, pred: pred, then: then}
}

// GivenToValue is GivenTo with a constant matching result.
func GivenToValue[In, T, U any](s *Step[In, T], pred func(T) bool, v U) *ConditionalEnd[In, T, U] {
	return GivenTo(s, pred, func(In, T) U { return v })
}

// GivenToFunc is GivenTo with a matching handler of the probed value only.
func GivenToFunc[In, T, U any](s *Step[In, T], pred func(T) bool, f func(T) U) *ConditionalEnd[In, T, U] {
	requireFunc("mappers.GivenToFunc", f == nil, "handler")
	return GivenTo(s, pred, func(_ In, v T) U { return f(v) })
}

// Proceed keeps non-matching values as they are. It panics when the matching handler changed
// the value type, since there is no value of the result type to keep.
func (e *ConditionalEnd[In, T, U]) Proceed() *Step[In, U] {
	if e.keep == nil {
		panic(errors.New("mappers.ConditionalEnd.Proceed").Msg(ErrMsgTypeChange))
	}
	keep := e.keep
	return e.finish(func(_ In, v T) U { return keep(v) })
}

// OrElse yields v for non-matching values.
func (e *ConditionalEnd[In, T, U]) OrElse(v U) *Step[In, U] {
	return e.finish(func(In, T) U { return v })
}

// OrElseGet yields supplier() for non-matching values.
func (e *ConditionalEnd[In, T, U]) OrElseGet(supplier func() U) *Step[In, U] {
	requireFunc("mappers.ConditionalEnd.OrElseGet", supplier == nil, "supplier")
	return e.finish(func(In, T) U { return supplier() })
}

// OrElseFunc yields f(value) for non-matching values.
func (e *ConditionalEnd[In, T, U]) OrElseFunc(f func(T) U) *Step[In, U] {
	requireFunc("mappers.ConditionalEnd.OrElseFunc", f == nil, "handler")
	return e.finish(func(_ In, v T) U { return f(v) })
}

// OrElseWith yields f(in, value) for non-matching values.
func (e *ConditionalEnd[In, T, U]) OrElseWith(f func(In, T) U) *Step[In, U] {
	requireFunc("mappers.ConditionalEnd.OrElseWith", f == nil, "handler")
	return e.finish(f)
}

// OrElseZero yields the zero value of U for non-matching values.
func (e *ConditionalEnd[In, T, U]) OrElseZero() *Step[In, U] {
	return e.finish(func(In, T) U {
		var zero U
		return zero
	})
}

// finish runs exactly one handler per input. A null probed value on a null-safe step runs
// neither the predicate nor a handler.
func (e *ConditionalEnd[In, T, U]) finish(otherwise func(In, T) U) *Step[In, U] {
	probe, pred, then, mode := e.origin.probe, e.pred, e.then, e.origin.mode
	return &Step[In, U]{
		mode: mode,
		probe: func(in In) (U, bool) {
			v, null := probe(in)
			if null || mode == NullSafe && fn.IsNull(v) {
				var zero U
				return zero, true
			}
			if pred(v) {
				return then(in, v), false
			}
			return otherwise(in, v), false
		},
	}
}
