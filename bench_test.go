package structview

import (
	"io"
	"testing"
)

// Benchmark rendering of a mixed nested fixture.
func BenchmarkRender_Nested(b *testing.B) {
	value := map[string]interface{}{
		"id":   1,
		"tags": []interface{}{"a", "b", "c"},
		"meta": map[string]interface{}{
			"owner": "ops",
			"dims":  []int{1, 2, 3},
		},
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Render(io.Discard, value); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark struct field traversal through the xunsafe-backed visitor.
func BenchmarkRender_Struct(b *testing.B) {
	type record struct {
		ID    int
		Name  string
		Score float64
	}
	value := record{ID: 1, Name: "n", Score: 0.5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Render(io.Discard, value); err != nil {
			b.Fatal(err)
		}
	}
}
