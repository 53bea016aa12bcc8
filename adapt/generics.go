package adapt

import (
	"reflect"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mappers"
)

// Generic helpers as top-level functions (methods cannot have type parameters yet)

// Make adapts src into a new T.
func Make[T any](a *Adapter, src any) (T, error) {
	var d T
	err := a.Into(&d, src)
	return d, err
}

// AdaptTo adapts src into a new *T.
func AdaptTo[T any](a *Adapter, src any) (*T, error) {
	var d T
	if err := a.Into(&d, src); err != nil {
		return nil, err
	}
	return &d, nil
}

// Step plugs a into a mutable pipeline. The output may be a struct value or a pointer to one; a
// nil pointer output is allocated. An adaptation error panics, surfacing at the Convert call.
func Step[In, Out any](a *Adapter) mappers.StepFunc[In, Out] {
	const op errors.Op = "adapt.Step"
	if a == nil {
		panic(errors.New(op).Msg("adapter must not be nil"))
	}
	return func(in In, out Out) Out {
		if err := a.adaptValues(reflect.ValueOf(&out).Elem(), reflect.ValueOf(in)); err != nil {
			panic(errors.New(op).Err(err))
		}
		return out
	}
}

// NewMapper builds a mapper adapting every input into a zero Out. Pointer outputs are allocated.
func NewMapper[In, Out any](a *Adapter, opts ...mappers.Option) *mappers.Mapper[In, Out] {
	return mappers.Mutable[In](func() Out {
		var zero Out
		return zero
	}, opts...).Bind(Step[In, Out](a)).Build()
}
