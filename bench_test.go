package mappers

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
)

func benchmarkContactMapper(b *testing.B, opts ...Option) {
	m := Mutable[*contact](newContact, opts...).
		Bind(Into(From(func(c *contact) string { return c.First }), (*contact).SetFirst)).
		Bind(Into(From(func(c *contact) string { return c.Last }), (*contact).SetLast)).
		Bind(Into(From(func(c *contact) string { return c.Email }), (*contact).SetEmail)).
		Bind(Into(From(func(c *contact) string { return c.Phone }), (*contact).SetPhone)).
		Build()
	in := &contact{First: "Ada", Last: "Lovelace", Email: "ada@example.com", Phone: "555"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Convert(in)
	}
}

func BenchmarkMutable_Optimized(b *testing.B) { benchmarkContactMapper(b, WithOptimization(true)) }
func BenchmarkMutable_Chained(b *testing.B)   { benchmarkContactMapper(b, WithOptimization(false)) }

func BenchmarkImmutable12(b *testing.B) {
	k := "k"
	src := &wide{A: "a", K: &k}
	m := Immutable12[*wide](newWide).
		Take(func(w *wide) string { return w.A }).
		Take(func(w *wide) int { return w.B }).
		Take(func(w *wide) bool { return w.C }).
		Take(func(w *wide) float64 { return w.D }).
		Take(func(w *wide) int64 { return w.E }).
		Take(func(w *wide) []string { return w.F }).
		Take(func(w *wide) map[string]int { return w.G }).
		Take(func(w *wide) time.Duration { return w.H }).
		Take(func(w *wide) rune { return w.I }).
		Take(func(w *wide) uint8 { return w.J }).
		Take(func(w *wide) *string { return w.K }).
		Take(func(w *wide) null.String { return w.L }).
		Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Convert(src)
	}
}

func BenchmarkMapper_Parallel(b *testing.B) {
	m := New(func(c *contact) string { return c.First + " " + c.Last })
	in := &contact{First: "Ada", Last: "Lovelace"}

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = m.Convert(in)
		}
	})
}
