package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-object-utils/arr"
	"github.com/hasbyte1/go-object-utils/value"
)

func benchSeq(n int) *value.Sequence {
	items := make([]value.Value, n)
	for i := range items {
		items[i] = value.Object(value.KV("id", value.Int(i)), value.KV("tags", value.Array(value.String("x"))))
	}
	return value.NewSequence(items...)
}

func BenchmarkMap(b *testing.B) {
	src := benchSeq(1000)
	fn := func(item value.Value, _ int, _ *value.Sequence, _ value.Value) value.Value { return item }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Map(src, fn)
	}
}

func BenchmarkFilter(b *testing.B) {
	src := benchSeq(1000)
	fn := func(_ value.Value, i int, _ *value.Sequence, _ value.Value) bool { return i%2 == 0 }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Filter(src, fn)
	}
}

func BenchmarkEvery(b *testing.B) {
	src := benchSeq(1000)
	fn := func(item value.Value, _ int, _ *value.Sequence, _ value.Value) bool { return !item.IsNull() }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Every(src, fn)
	}
}
