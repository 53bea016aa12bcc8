package mappers

import (
	"reflect"
	"sync/atomic"

	"github.com/Station-Manager/errors"
)

// Proxy forwards conversions to a converter assigned after the proxy itself was created. It lets
// a mapping refer to itself, e.g. a tree node mapping its children:
//
//	proxy := new(mappers.Proxy[*Node, *NodeDTO])
//	m := mappers.Mutable[*Node](newNodeDTO).
//		Bind(mappers.Into(mappers.MapTo(mappers.From(getChild).NullSafe(), proxy.Convert), setChild)).
//		Build()
//	proxy.Set(m)
//
// The zero value is ready to use.
type Proxy[In, Out any] struct {
	target atomic.Pointer[Converter[In, Out]]
}

// NewProxy returns an unset proxy.
func NewProxy[In, Out any]() *Proxy[In, Out] { return &Proxy[In, Out]{} }

// Set assigns the converter calls are forwarded to. A nil converter, including a nil pointer held
// by the interface, panics.
func (p *Proxy[In, Out]) Set(c Converter[In, Out]) {
	requireFunc("mappers.Proxy.Set", isNilConverter(c), "converter")
	p.target.Store(&c)
}

func isNilConverter[In, Out any](c Converter[In, Out]) bool {
	if c == nil {
		return true
	}
	switch rv := reflect.ValueOf(c); rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Convert forwards to the assigned converter. It panics when none was assigned yet.
func (p *Proxy[In, Out]) Convert(in In) Out {
	c := p.target.Load()
	if c == nil {
		panic(errors.New("mappers.Proxy.Convert").Msg(ErrMsgProxyUnset))
	}
	return (*c).Convert(in)
}
