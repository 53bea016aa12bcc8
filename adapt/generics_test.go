package adapt

import (
	"strings"
	"testing"

	"github.com/Station-Manager/mappers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeAndAdaptTo(t *testing.T) {
	adapter := New()
	src := &SourceBasic{Name: "n", Age: 1}

	v, err := Make[DestBasic](adapter, src)
	require.NoError(t, err)
	assert.Equal(t, "n", v.Name)

	p, err := AdaptTo[DestBasic](adapter, src)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Age)

	_, err = AdaptTo[DestBasic](adapter, "not a struct")
	assert.Error(t, err)
}

func TestStep_PointerOutputInMutablePipeline(t *testing.T) {
	adapter := NewBuilder().AddConverter("Name", MapString(strings.ToUpper)).Build()

	m := mappers.Mutable[*SourceBasic](func() *DestBasic { return new(DestBasic) }).
		Bind(Step[*SourceBasic, *DestBasic](adapter)).
		Bind(mappers.Into(mappers.From(func(s *SourceBasic) string { return s.Email + "!" }),
			func(d *DestBasic, v string) { d.Email = v })).
		Build()

	got := m.Convert(&SourceBasic{Name: "ann", Age: 40, Email: "a@x"})

	assert.Equal(t, &DestBasic{Name: "ANN", Age: 40, Email: "a@x!"}, got)
}

func TestStep_ValueOutput(t *testing.T) {
	m := NewMapper[SourceBasic, DestBasic](New())

	assert.Equal(t, DestBasic{Name: "v", Age: 2}, m.Convert(SourceBasic{Name: "v", Age: 2}))
}

func TestStep_NilPointerOutputIsAllocated(t *testing.T) {
	m := NewMapper[*SourceBasic, *DestBasic](New())

	got := m.Convert(&SourceBasic{Name: "p"})
	require.NotNil(t, got)
	assert.Equal(t, "p", got.Name)
}

func TestStep_PanicsOnAdaptError(t *testing.T) {
	adapter := New(WithStrictTypes(true))
	type src struct{ Name int }
	type dst struct{ Name []string }

	m := NewMapper[src, dst](adapter)
	assert.Panics(t, func() { m.Convert(src{Name: 1}) })
	assert.Panics(t, func() { Step[src, dst](nil) })
}
