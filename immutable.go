package mappers

import (
	"slices"

	"github.com/Station-Manager/mappers/internal/fn"
)

// ConstructorBuilder is the last stage of an immutable mapping: every constructor parameter is
// bound and only post-construction steps remain. Each call returns a new stage, so a stage can be
// extended in several directions without interference.
type ConstructorBuilder[In, Out any] struct {
	ctor fn.Fn1[In, Out]
	post []func(In, Out) Out
	opts Options
}

func newConstructorBuilder[In, Out any](ctor fn.Fn1[In, Out], opts Options) *ConstructorBuilder[In, Out] {
	return &ConstructorBuilder[In, Out]{ctor: ctor, opts: opts}
}

// Process appends a post-construction transform; its result replaces the constructed value.
func (b *ConstructorBuilder[In, Out]) Process(f func(In, Out) Out) *ConstructorBuilder[In, Out] {
	requireFunc("mappers.ConstructorBuilder.Process", f == nil, "processor")
	return b.with(f)
}

// Spy appends a post-construction observer.
func (b *ConstructorBuilder[In, Out]) Spy(f func(In, Out)) *ConstructorBuilder[In, Out] {
	requireFunc("mappers.ConstructorBuilder.Spy", f == nil, "observer")
	return b.with(spyStep(f))
}

func (b *ConstructorBuilder[In, Out]) with(step func(In, Out) Out) *ConstructorBuilder[In, Out] {
	post := append(slices.Clip(b.post), step)
	return &ConstructorBuilder[In, Out]{ctor: b.ctor, post: post, opts: b.opts}
}

func (b *ConstructorBuilder[In, Out]) Build() *Mapper[In, Out] {
	ctor, post := b.ctor, compose("immutable", b.post, b.opts)
	return New(func(in In) Out {
		return post(in, ctor(in))
	})
}
