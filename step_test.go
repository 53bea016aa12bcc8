package mappers

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type person struct {
	Name     string
	Nickname *string
	Age      int
}

func getName(p *person) string      { return p.Name }
func getNickname(p *person) *string { return p.Nickname }
func getAge(p *person) int          { return p.Age }

func TestStep_FromIsRawGetter(t *testing.T) {
	t.Parallel()
	s := From(getName)

	assert.Equal(t, "ann", s.Get(&person{Name: "ann"}))
	assert.Equal(t, None, s.Mode())
}

func TestStep_MapComposition(t *testing.T) {
	t.Parallel()
	f1 := strings.TrimSpace
	f2 := strings.ToUpper

	chained := From(getName).Map(f1).Map(f2)
	fused := From(getName).Map(func(s string) string { return f2(f1(s)) })

	for _, name := range []string{"", " ann ", "Bob", "  c  d "} {
		p := &person{Name: name}
		assert.Equal(t, fused.Get(p), chained.Get(p))
	}
}

func TestStep_MapToChangesType(t *testing.T) {
	t.Parallel()
	s := MapTo(From(getAge), strconv.Itoa)
	s = s.Map(func(v string) string { return v + "y" })

	assert.Equal(t, "42y", s.Get(&person{Age: 42}))
}

func TestStep_IsPersistent(t *testing.T) {
	t.Parallel()
	base := From(getName)
	upper := base.Map(strings.ToUpper)
	safe := base.NullSafe()

	p := &person{Name: "ann"}
	assert.Equal(t, "ann", base.Get(p))
	assert.Equal(t, "ANN", upper.Get(p))
	assert.Equal(t, None, base.Mode())
	assert.Equal(t, NullSafe, safe.Mode())
}

func TestStep_NullSafeSkipsMap(t *testing.T) {
	t.Parallel()
	calls := 0
	s := MapTo(From(getNickname).NullSafe(), func(n *string) string {
		calls++
		return *n
	}).Map(func(v string) string {
		calls++
		return v + "!"
	})

	assert.Equal(t, "", s.Get(&person{}))
	assert.Equal(t, 0, calls)

	nick := "bo"
	assert.Equal(t, "bo!", s.Get(&person{Nickname: &nick}))
	assert.Equal(t, 2, calls)
}

func TestStep_NullSafePropagatesThroughTypeChange(t *testing.T) {
	t.Parallel()
	var maps, preds, handlers int
	s := MapTo(From(getNickname).NullSafe(), func(n *string) int {
		maps++
		return len(*n)
	}).
		Map(func(n int) int { maps++; return n * 10 }).
		Given(func(int) bool { preds++; return true }).
		ThenWith(func(*person, int) int { handlers++; return -1 }).
		OrElseWith(func(*person, int) int { handlers++; return -2 })
	labelled := MapTo(s, func(n int) string { maps++; return "len" }).
		Given(isEmpty).Fallback("none")

	assert.Equal(t, 0, s.Get(&person{}))
	assert.Equal(t, "", labelled.Get(&person{}))
	assert.Equal(t, 0, maps)
	assert.Equal(t, 0, preds)
	assert.Equal(t, 0, handlers)

	nick := "bo"
	assert.Equal(t, -1, s.Get(&person{Nickname: &nick}))
	assert.Equal(t, 2, maps)
	assert.Equal(t, 1, preds)
	assert.Equal(t, 1, handlers)
}

func TestStep_NullSafeLateInChain(t *testing.T) {
	t.Parallel()
	calls := 0
	s := MapTo(From(getNickname), func(n *string) *string { return n }).NullSafe().
		Map(func(n *string) *string { calls++; return n })

	assert.Nil(t, s.Get(&person{}))
	assert.Equal(t, 0, calls)
}

func TestStep_NullFlowsIntoMapWithoutNullSafe(t *testing.T) {
	t.Parallel()
	var seen []*string
	s := MapTo(From(getNickname), func(n *string) bool {
		seen = append(seen, n)
		return n == nil
	})

	assert.True(t, s.Get(&person{}))
	assert.Len(t, seen, 1)
}

func TestStep_Misuse(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { From[*person, string](nil) })
	assert.Panics(t, func() { From(getName).Map(nil) })
	assert.Panics(t, func() { MapTo[*person, string, int](nil, func(string) int { return 0 }) })
	assert.Panics(t, func() { From(getName).Given(nil) })
}

func TestSafetyMode_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "NullSafe", NullSafe.String())
	assert.Equal(t, "SafetyMode(7)", SafetyMode(7).String())
}
