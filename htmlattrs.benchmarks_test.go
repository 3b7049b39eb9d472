package htmlattrs

import (
	"testing"
)

func benchmarkAttrs() Attributes {
	return NewAttributes(
		"id", "main",
		"class", []string{"btn", "btn-primary"},
		"ariaLabel", `Save "draft"`,
		"disabled", true,
		"tabindex", 0,
		"data", NewAttributes("userId", 42, "mode", "edit"),
	)
}

func BenchmarkFormat(b *testing.B) {
	f := MustNew()
	attrs := benchmarkAttrs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Format(attrs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFormat_Parallel(b *testing.B) {
	f := MustNew()
	attrs := benchmarkAttrs()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := f.Format(attrs); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkParseAttributes(b *testing.B) {
	src := []byte(`{"id": "main", "ariaLabel": "Save", "data": {"userId": 42}}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseAttributes(src); err != nil {
			b.Fatal(err)
		}
	}
}
