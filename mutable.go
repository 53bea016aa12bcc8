package mappers

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mappers/internal/fn"
)

// StepFunc is one step of a mutable pipeline. It receives the original input and the output
// produced so far, and returns the output handed to the next step.
type StepFunc[In, Out any] func(in In, out Out) Out

// MutableBuilder assembles a mapper that starts from a freshly generated output and runs every
// registered step on it in registration order.
//
// A MutableBuilder is meant to be set up by a single goroutine. Build copies the registered
// steps, so later registrations never reach mappers that were already built.
type MutableBuilder[In, Out any] struct {
	gen   func() Out
	steps []func(In, Out) Out
	opts  Options
}

// Mutable starts a mutable mapping whose output is created by gen on every conversion.
func Mutable[In, Out any](gen func() Out, opts ...Option) *MutableBuilder[In, Out] {
	requireFunc("mappers.Mutable", gen == nil, "generator")
	return &MutableBuilder[In, Out]{gen: gen, opts: newOptions(opts)}
}

// Bind appends a field step built by Into or To.
func (b *MutableBuilder[In, Out]) Bind(step StepFunc[In, Out]) *MutableBuilder[In, Out] {
	requireFunc("mappers.MutableBuilder.Bind", step == nil, "step")
	b.steps = append(b.steps, step)
	return b
}

// Process appends a step that may replace the output wholesale.
func (b *MutableBuilder[In, Out]) Process(f func(In, Out) Out) *MutableBuilder[In, Out] {
	requireFunc("mappers.MutableBuilder.Process", f == nil, "processor")
	b.steps = append(b.steps, f)
	return b
}

// Spy appends a step that observes the output without changing it.
func (b *MutableBuilder[In, Out]) Spy(f func(In, Out)) *MutableBuilder[In, Out] {
	requireFunc("mappers.MutableBuilder.Spy", f == nil, "observer")
	b.steps = append(b.steps, spyStep(f))
	return b
}

func (b *MutableBuilder[In, Out]) Build() *Mapper[In, Out] {
	run, gen := compose("mutable", b.steps, b.opts), b.gen
	return New(func(in In) Out {
		return run(in, gen())
	})
}

// Into completes s with a setter writing onto the output in place. The output is handed on
// unchanged, which suits pointer outputs.
func Into[In, T, Out any](s *Step[In, T], setter func(Out, T)) StepFunc[In, Out] {
	const op errors.Op = "mappers.Into"
	requireFunc(op, s == nil, "step")
	requireFunc(op, setter == nil, "setter")
	return fn.Setter(s.Get, setter)
}

// To completes s with a setter returning the output handed to the next step, which suits value
// outputs and wholesale replacement.
func To[In, T, Out any](s *Step[In, T], setter func(Out, T) Out) StepFunc[In, Out] {
	const op errors.Op = "mappers.To"
	requireFunc(op, s == nil, "step")
	requireFunc(op, setter == nil, "setter")
	return fn.Replacer(s.Get, setter)
}
