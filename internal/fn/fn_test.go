package fn

import (
	"database/sql"
	"strconv"
	"strings"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	inc := func(i int) int { return i + 1 }
	double := func(i int) int { return i * 2 }
	str := strconv.Itoa

	left := Compose(Compose(inc, double), str)
	right := Compose(inc, Compose(double, str))

	for _, v := range []int{-3, 0, 1, 7, 100} {
		assert.Equal(t, left(v), right(v))
		assert.Equal(t, str(double(inc(v))), left(v))
	}
}

func TestComposeBiThreadsFirstArgument(t *testing.T) {
	f := func(prefix string, s string) string { return s + prefix }
	g := func(prefix string, s string) int { return len(s) + len(prefix) }

	h := ComposeBi(f, g)
	assert.Equal(t, len("abxy")+len("xy"), h("xy", "ab"))
}

func TestComposeBiAssociative(t *testing.T) {
	step := func(tag string) func(string, string) string {
		return func(in, out string) string { return out + tag + in }
	}
	a, b, c := step("a"), step("b"), step("c")

	left := ComposeBi(ComposeBi(a, b), c)
	right := ComposeBi(a, ComposeBi(b, c))

	assert.Equal(t, left("-", ""), right("-", ""))
	assert.Equal(t, "a-b-c-", left("-", ""))
}

func TestNullSafe(t *testing.T) {
	calls := 0
	deref := NullSafe(func(p *string) string {
		calls++
		return *p
	})

	got, null := deref(nil, false)
	assert.Equal(t, "", got)
	assert.True(t, null)
	assert.Equal(t, 0, calls)

	v := "x"
	got, null = deref(&v, false)
	assert.Equal(t, "x", got)
	assert.False(t, null)
	assert.Equal(t, 1, calls)
}

func TestNullSafe_MarkSurvivesNonNullableZero(t *testing.T) {
	calls := 0
	exclaim := NullSafe(func(s string) string {
		calls++
		return s + "!"
	})

	got, null := exclaim("", true)
	assert.Equal(t, "", got)
	assert.True(t, null)
	assert.Equal(t, 0, calls)

	got, null = exclaim("", false)
	assert.Equal(t, "!", got)
	assert.False(t, null)
	assert.Equal(t, 1, calls)
}

func TestIsNull(t *testing.T) {
	var (
		nilPtr   *int
		nilMap   map[string]int
		nilSlice []int
		nilFunc  func()
		nilChan  chan int
		nilErr   error
		one      = 1
	)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{name: "untyped nil", got: IsNull[any](nil), want: true},
		{name: "nil interface", got: IsNull(nilErr), want: true},
		{name: "nil pointer", got: IsNull(nilPtr), want: true},
		{name: "nil map", got: IsNull(nilMap), want: true},
		{name: "nil slice", got: IsNull(nilSlice), want: true},
		{name: "nil func", got: IsNull(nilFunc), want: true},
		{name: "nil chan", got: IsNull(nilChan), want: true},
		{name: "pointer", got: IsNull(&one), want: false},
		{name: "empty slice", got: IsNull([]int{}), want: false},
		{name: "zero int", got: IsNull(0), want: false},
		{name: "empty string", got: IsNull(""), want: false},
		{name: "invalid null.String", got: IsNull(null.String{}), want: true},
		{name: "valid null.String", got: IsNull(null.StringFrom("")), want: false},
		{name: "invalid sql.NullInt64", got: IsNull(sql.NullInt64{}), want: true},
		{name: "valid sql.NullInt64", got: IsNull(sql.NullInt64{Valid: true}), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSetterAndReplacer(t *testing.T) {
	type box struct{ v string }
	getter := func(s string) string { return strings.ToUpper(s) }

	set := Setter(getter, func(b *box, v string) { b.v = v })
	out := &box{}
	assert.Same(t, out, set("abc", out))
	assert.Equal(t, "ABC", out.v)

	replace := Replacer(getter, func(b box, v string) box { b.v = v; return b })
	assert.Equal(t, box{v: "ABC"}, replace("abc", box{}))
}

func TestDependentApply(t *testing.T) {
	join := Fn4[string, int, string, bool, string](func(in string, a int, b string, c bool) string {
		return in + "|" + strconv.Itoa(a) + "|" + b + "|" + strconv.FormatBool(c)
	})

	bound := join.
		DependentApply(func(in string) int { return len(in) }).
		DependentApply(strings.ToUpper).
		DependentApply(func(in string) bool { return in == "" })

	assert.Equal(t, "ab|2|AB|false", bound("ab"))
	assert.Equal(t, "|0||true", bound(""))
}
