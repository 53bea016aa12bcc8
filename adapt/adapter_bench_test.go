package adapt

import "testing"

func BenchmarkAdapter_Into(b *testing.B) {
	adapter := New()
	src := &SourceBasic{Name: "John Doe", Age: 30, Email: "john@example.com"}
	adapter.WarmMetadata(src, &DestBasic{})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var dst DestBasic
		_ = adapter.Into(&dst, src)
	}
}

func BenchmarkAdapter_IntoParallel(b *testing.B) {
	adapter := New()
	src := &SourceBasic{Name: "John Doe", Age: 30, Email: "john@example.com"}

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			var dst DestBasic
			_ = adapter.Into(&dst, src)
		}
	})
}
