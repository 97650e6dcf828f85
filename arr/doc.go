// Package arr provides the classic array iteration helpers (forEach, map,
// filter, every, some, reduce) as plain functions over [value.Sequence].
//
// Every callback receives the current item, its index, the source sequence
// and an explicit context value:
//
//	seq := value.Array(value.Int(1), value.Int(2), value.Int(3)).Sequence()
//
//	doubled, _ := arr.Map(seq, func(item value.Value, _ int, _ *value.Sequence, _ value.Value) value.Value {
//	    n, _ := item.AsNumber()
//	    return value.Number(n * 2)
//	})
//
// The context is an optional trailing argument (this ...value.Value) and
// defaults to Undefined; there is no implicit global fallback.
//
// # Copy-on-produce
//
// [Map] and [Filter] deep-clone whatever they store in the result, and
// [Reduce] hands the reducer clones of the items, so the results never alias
// containers owned by the caller. Cloning can fail on cyclic data, which is
// why those helpers return an error.
//
// # Iteration bounds
//
// The number of items is read once, before the first callback. Items
// appended by a callback are not visited; items removed by a callback are
// skipped. A nil *value.Sequence behaves like an empty one.
package arr
