package mappers

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	ID    string
	Child *node
}

type nodeDTO struct {
	ID    string
	Child *nodeDTO
}

func TestProxy_RecursiveMapping(t *testing.T) {
	t.Parallel()
	proxy := NewProxy[*node, *nodeDTO]()

	m := Mutable[*node](func() *nodeDTO { return new(nodeDTO) }).
		Bind(Into(From(func(n *node) string { return n.ID }), func(d *nodeDTO, id string) { d.ID = id })).
		Bind(Into(MapTo(From(func(n *node) *node { return n.Child }).NullSafe(), proxy.Convert),
			func(d *nodeDTO, c *nodeDTO) { d.Child = c })).
		Build()
	proxy.Set(m)

	got := m.Convert(&node{ID: "top", Child: &node{ID: "sub"}})

	require.NotNil(t, got.Child, spew.Sdump(got))
	assert.Equal(t, "top", got.ID)
	assert.Equal(t, "sub", got.Child.ID)
	assert.Nil(t, got.Child.Child)
	assert.Equal(t, got, proxy.Convert(&node{ID: "top", Child: &node{ID: "sub"}}))
}

func TestProxy_ZeroValueUsable(t *testing.T) {
	t.Parallel()
	var p Proxy[int, int]
	p.Set(New(func(i int) int { return i * 2 }))

	assert.Equal(t, 8, p.Convert(4))
}

func TestProxy_ConvertBeforeSetPanics(t *testing.T) {
	t.Parallel()
	p := NewProxy[int, int]()

	assert.Panics(t, func() { p.Convert(1) })
	assert.Panics(t, func() { p.Set(nil) })
}

func TestProxy_SetRejectsTypedNil(t *testing.T) {
	t.Parallel()
	p := NewProxy[int, int]()
	var m *Mapper[int, int]

	assert.Panics(t, func() { p.Set(m) })
	assert.Panics(t, func() { p.Convert(1) })
}

func TestProxy_SetReplacesTarget(t *testing.T) {
	t.Parallel()
	p := NewProxy[int, int]()
	p.Set(New(func(i int) int { return i + 1 }))
	assert.Equal(t, 2, p.Convert(1))

	p.Set(New(func(i int) int { return i - 1 }))
	assert.Equal(t, 0, p.Convert(1))
}
