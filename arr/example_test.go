package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-object-utils/arr"
	"github.com/hasbyte1/go-object-utils/value"
)

func ExampleFilter() {
	src := value.Array(value.Int(1), value.Int(2), value.Int(3), value.Int(4), value.Int(5)).Sequence()
	evens, _ := arr.Filter(src, func(item value.Value, _ int, _ *value.Sequence, _ value.Value) bool {
		n, _ := item.AsNumber()
		return int(n)%2 == 0
	})
	fmt.Println(value.FromSequence(evens))
	// Output: [2,4]
}

func ExampleMap() {
	src := value.Array(value.Int(1), value.Int(2), value.Int(3)).Sequence()
	doubled, _ := arr.Map(src, func(item value.Value, _ int, _ *value.Sequence, _ value.Value) value.Value {
		n, _ := item.AsNumber()
		return value.Number(n * 2)
	})
	fmt.Println(value.FromSequence(doubled))
	// Output: [2,4,6]
}

func ExampleReduce() {
	src := value.Array(value.Int(1), value.Int(2), value.Int(3), value.Int(4)).Sequence()
	total, _ := arr.Reduce(src, func(acc, item value.Value, _ int, _ *value.Sequence) value.Value {
		a, _ := acc.AsNumber()
		b, _ := item.AsNumber()
		return value.Number(a + b)
	})
	fmt.Println(total)
	// Output: 10
}

func ExampleSome() {
	words := value.Array(value.String("go"), value.String("rust")).Sequence()
	hasGo := arr.Some(words, func(item value.Value, _ int, _ *value.Sequence, this value.Value) bool {
		return value.Equal(item, this)
	}, value.String("go"))
	fmt.Println(hasGo)
	// Output: true
}
