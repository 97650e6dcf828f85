package clone_test

import (
	"testing"

	"github.com/hasbyte1/go-object-utils/clone"
	"github.com/hasbyte1/go-object-utils/value"
)

func benchValue() value.Value {
	items := make([]any, 0, 100)
	for i := 0; i < 100; i++ {
		items = append(items, map[string]any{
			"id":   i,
			"name": "item",
			"tags": []any{"a", "b", "c"},
			"meta": map[string]any{"depth": map[string]any{"n": i}},
		})
	}
	return value.MustOf(map[string]any{"items": items})
}

func BenchmarkClone(b *testing.B) {
	v := benchValue()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = clone.Clone(v)
	}
}

func BenchmarkCloneNative(b *testing.B) {
	v, _ := benchValue().Native()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = clone.CloneNative(v)
	}
}
