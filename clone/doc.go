// Package clone deep-copies values from the value package.
//
// # Contract
//
// For every acyclic input v, [Clone] returns a value that is structurally
// equal to v and shares no Sequence or Mapping storage with it:
//
//	src := value.MustOf(map[string]any{"a": 1, "b": []any{2, 3}})
//	dst, err := clone.Clone(src)
//	// value.Equal(src, dst) == true
//	// mutating dst's "b" leaves src's "b" untouched
//
// Scalars come back unchanged. Opaque values (funcs, channels, handles)
// are treated as scalars and shared by identity; pass [WithStrict] to reject
// them with [ErrUnsupportedValue] instead.
//
// Mappings are rebuilt as plain mappings: only own enumerable properties
// are copied, inherited and non-enumerable ones are dropped, and the result
// has no prototype and ordinary writable properties even when the source
// was frozen.
//
// # Cycles and depth
//
// The traversal keeps an explicit work stack, so deeply nested input does
// not exhaust the goroutine stack. A node that is reached again while it is
// still being copied is a cycle and fails with a [*CyclicStructureError]
// naming the path of the back-reference. A node shared by two parents
// without a cycle is simply copied twice.
//
// # Events
//
// With [WithSignals], [Cloner.CloneContext] emits [SignalCloneStart] and
// [SignalCloneComplete] through github.com/zoobzio/capitan, carrying the
// node count, maximum depth, duration and error.
package clone
