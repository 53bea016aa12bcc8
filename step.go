package mappers

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mappers/internal/fn"
)

// Step describes how to obtain a value of type T from an input of type In.
//
// Steps are persistent: NullSafe, Map, MapTo and the conditional operations never modify the
// receiver, they return a new Step. A Step may therefore be shared between several pipelines.
type Step[In, T any] struct {
	// probe reports the value and whether a null-safe step already short-circuited on a null.
	probe func(In) (T, bool)
	mode  SafetyMode
}

// From starts a step reading a value from the input through getter.
func From[In, T any](getter func(In) T) *Step[In, T] {
	requireFunc("mappers.From", getter == nil, "getter")
	return &Step[In, T]{probe: func(in In) (T, bool) { return getter(in), false }}
}

// NullSafe returns a copy of s whose subsequent Map and Given operations skip null values and
// yield the zero value instead. Once a value was found null, every later operation of the chain
// is skipped, including those after a MapTo onto a type whose zero value is not null.
func (s *Step[In, T]) NullSafe() *Step[In, T] {
	return &Step[In, T]{probe: s.probe, mode: NullSafe}
}

// Mode reports whether the step is null-safe.
func (s *Step[In, T]) Mode() SafetyMode { return s.mode }

// Get evaluates the step for in.
func (s *Step[In, T]) Get(in In) T {
	v, _ := s.probe(in)
	return v
}

// Map composes the step with f. Use MapTo when f changes the value type.
func (s *Step[In, T]) Map(f func(T) T) *Step[In, T] {
	return MapTo(s, f)
}

// Given opens a conditional branch on the probed value.
func (s *Step[In, T]) Given(pred func(T) bool) *ConditionalStart[In, T] {
	requireFunc("mappers.Step.Given", pred == nil, "predicate")
	return &ConditionalStart[In, T]{origin: s, pred: pred}
}

// MapTo composes s with f, producing a step of the result type of f. When s is null-safe a null
// probed value short-circuits to the zero U and f is not invoked.
func MapTo[In, T, U any](s *Step[In, T], f func(T) U) *Step[In, U] {
	const op errors.Op = "mappers.MapTo"
	requireFunc(op, s == nil, "step")
	requireFunc(op, f == nil, "mapping function")

	probe := s.probe
	if s.mode == NullSafe {
		lifted := fn.NullSafe(f)
		return &Step[In, U]{
			probe: func(in In) (U, bool) { return lifted(probe(in)) },
			mode:  NullSafe,
		}
	}
	composed := fn.Compose(s.Get, f)
	return &Step[In, U]{
		probe: func(in In) (U, bool) { return composed(in), false },
		mode:  s.mode,
	}
}
