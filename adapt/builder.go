package adapt

// Builder collects options and converters and publishes them in one registry swap.
type Builder struct {
	opts []Option
	reg  *converterRegistry
}

func NewBuilder() *Builder {
	return &Builder{reg: newConverterRegistry()}
}

func (b *Builder) WithOptions(opts ...Option) *Builder { b.opts = append(b.opts, opts...); return b }

// AddConverter registers a converter for field on any struct pair.
func (b *Builder) AddConverter(field string, fn ConverterFunc) *Builder {
	b.reg.addGlobal(field, fn)
	return b
}

// AddConverterFor registers a converter for a destination type and field name.
func (b *Builder) AddConverterFor(dst any, field string, fn ConverterFunc) *Builder {
	b.reg.addDst(structType(dst), field, fn)
	return b
}

// AddConverterForPair registers a converter for a (src, dst) pair and field name.
func (b *Builder) AddConverterForPair(src, dst any, field string, fn ConverterFunc) *Builder {
	b.reg.addPair(typePair{structType(src), structType(dst)}, field, fn)
	return b
}

// Build returns a new Adapter. The builder may be reused; later additions do not reach adapters
// already built.
func (b *Builder) Build() *Adapter {
	a := New(b.opts...)
	a.converters.Store(b.reg.clone())
	return a
}
