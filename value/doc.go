// Package value defines the closed, tagged data model that every other
// package in this module operates on.
//
// A [Value] is exactly one of:
//
//   - a scalar: Undefined (the zero Value), Null, Bool, Number, String, or
//     Opaque (a Go value the model does not look inside, such as a func or a
//     channel),
//   - a [Sequence]: an ordered, integer-indexed list of Values,
//   - a [Mapping]: a set of keyed properties with an optional prototype.
//
// Scalars are immutable and are copied by value. Sequences and Mappings are
// reference types: two Values may point at the same storage, which is what
// the clone package exists to undo.
//
// # Building values
//
//	v := value.Object(
//	    value.KV("name", value.String("Alice")),
//	    value.KV("tags", value.Array(value.String("a"), value.String("b"))),
//	)
//
//	w, _ := value.Of(map[string]any{"n": 1, "list": []any{true, nil}})
//
// # Properties
//
// Mapping properties carry a [Descriptor] with writable, enumerable and
// configurable flags. [Mapping.Set] behaves like assignment (it respects
// the flags and the extensible bit) while [Mapping.Define] installs a
// descriptor directly. Own keys enumerate in host order: canonical array
// indices ascending, then every other key in insertion order.
//
// # Equality
//
// [Equal] compares structure, not identity; [Same] compares identity.
// [Fingerprint] digests structure so equal values hash equally.
package value
