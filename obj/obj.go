package obj

import (
	"fmt"

	"github.com/hasbyte1/go-object-utils/value"
)

// Property pairs a key with the descriptor [Create] installs for it.
type Property struct {
	Key        string
	Descriptor value.Descriptor
}

// Prop builds a [Property].
func Prop(key string, d value.Descriptor) Property {
	return Property{Key: key, Descriptor: d}
}

// ─────────────────────────────────────────────────────────────────────────────
// Creation & copying
// ─────────────────────────────────────────────────────────────────────────────

// Create returns a new mapping whose prototype is proto (which may be nil)
// and defines props on it in order. A zero-valued descriptor flag means
// read-only, non-enumerable or non-configurable, as with an explicit
// property definition.
//
//	base := value.Object(value.KV("greet", value.String("hi"))).Mapping()
//	m, _ := obj.Create(base, obj.Prop("id", value.Descriptor{Value: value.Int(1), Enumerable: true}))
//	m.Get("greet") // "hi", inherited
func Create(proto *value.Mapping, props ...Property) (*value.Mapping, error) {
	m := value.NewMapping()
	if err := m.SetProto(proto); err != nil {
		return nil, err
	}
	for _, p := range props {
		if err := m.Define(p.Key, p.Descriptor); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Assign copies every own enumerable property of each source, in order,
// onto target and returns target. The full descriptor is copied, so a
// read-only source property arrives read-only. Nil sources are skipped.
//
// Assign stops at the first property the target refuses (for example a
// non-configurable target property); properties copied before that remain.
func Assign(target *value.Mapping, sources ...*value.Mapping) (*value.Mapping, error) {
	for _, src := range sources {
		if src == nil {
			continue
		}
		for _, k := range src.Keys() {
			d, _ := src.Descriptor(k)
			if err := target.Define(k, d); err != nil {
				return target, fmt.Errorf("obj: assign: %w", err)
			}
		}
	}
	return target, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Integrity
// ─────────────────────────────────────────────────────────────────────────────

// Freeze makes the top-level container of v read-only and returns v.
// Scalars are returned unchanged; nested containers are not touched.
func Freeze(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindMapping:
		v.Mapping().Freeze()
	case value.KindSequence:
		v.Sequence().Freeze()
	}
	return v
}

// Seal stops the top-level container of v from gaining or losing entries
// and returns v. Existing entries stay writable.
func Seal(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindMapping:
		v.Mapping().Seal()
	case value.KindSequence:
		v.Sequence().Seal()
	}
	return v
}

// PreventExtensions stops the top-level container of v from gaining
// entries and returns v.
func PreventExtensions(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindMapping:
		v.Mapping().PreventExtensions()
	case value.KindSequence:
		v.Sequence().PreventExtensions()
	}
	return v
}

// DeepFreeze freezes v and every container reachable through its own
// properties (enumerable or not) and items. Children are frozen before
// their parents. Containers already visited are skipped, so cyclic graphs
// are fine.
func DeepFreeze(v value.Value) value.Value {
	walk(v, make(map[any]bool), func(c value.Value) { Freeze(c) })
	return v
}

// DeepSeal seals v and every container reachable from it. See [DeepFreeze].
func DeepSeal(v value.Value) value.Value {
	walk(v, make(map[any]bool), func(c value.Value) { Seal(c) })
	return v
}

func walk(v value.Value, seen map[any]bool, apply func(value.Value)) {
	var id any
	switch v.Kind() {
	case value.KindMapping:
		id = v.Mapping()
	case value.KindSequence:
		id = v.Sequence()
	default:
		return
	}
	if seen[id] {
		return
	}
	seen[id] = true
	if m := v.Mapping(); m != nil {
		for _, k := range m.OwnPropertyNames() {
			child, _ := m.GetOwn(k)
			walk(child, seen, apply)
		}
	} else {
		for _, child := range v.Sequence().Items() {
			walk(child, seen, apply)
		}
	}
	apply(v)
}

// IsFrozen reports whether v cannot change. Scalars are always frozen.
func IsFrozen(v value.Value) bool {
	switch v.Kind() {
	case value.KindMapping:
		return v.Mapping().IsFrozen()
	case value.KindSequence:
		return v.Sequence().IsFrozen()
	default:
		return true
	}
}

// IsSealed reports whether v cannot gain or lose entries. Scalars are
// always sealed.
func IsSealed(v value.Value) bool {
	switch v.Kind() {
	case value.KindMapping:
		return v.Mapping().IsSealed()
	case value.KindSequence:
		return v.Sequence().IsSealed()
	default:
		return true
	}
}

// IsExtensible reports whether v can gain entries. Scalars never can.
func IsExtensible(v value.Value) bool {
	switch v.Kind() {
	case value.KindMapping:
		return v.Mapping().IsExtensible()
	case value.KindSequence:
		return v.Sequence().IsExtensible()
	default:
		return false
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Entries
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the own enumerable keys of m in enumeration order.
func Keys(m *value.Mapping) []string {
	if m == nil {
		return []string{}
	}
	return m.Keys()
}

// Values returns the own enumerable values of m in enumeration order.
func Values(m *value.Mapping) *value.Sequence {
	keys := Keys(m)
	out := make([]value.Value, 0, len(keys))
	for _, k := range keys {
		v, _ := m.GetOwn(k)
		out = append(out, v)
	}
	return value.NewSequence(out...)
}

// Entries returns a sequence of [key, value] pairs for the own enumerable
// properties of a mapping. Any other kind yields an empty sequence.
//
//	obj.Entries(value.Object(value.KV("a", value.Int(1))))  // [["a",1]]
func Entries(v value.Value) *value.Sequence {
	m := v.Mapping()
	if m == nil {
		return value.NewSequence()
	}
	keys := m.Keys()
	out := make([]value.Value, 0, len(keys))
	for _, k := range keys {
		item, _ := m.GetOwn(k)
		out = append(out, value.Array(value.String(k), item))
	}
	return value.NewSequence(out...)
}

// FromEntries builds a mapping from a sequence of [key, value] pairs. Keys
// are converted with [value.ToKey]; a missing value is Undefined; a repeated
// key keeps the last value. Each entry must itself be a sequence.
func FromEntries(entries *value.Sequence) (*value.Mapping, error) {
	m := value.NewMapping()
	for i, entry := range entries.Items() {
		pair := entry.Sequence()
		if pair == nil {
			return nil, fmt.Errorf("%w: entry %d is %s", ErrInvalidEntry, i, entry.Kind())
		}
		k, _ := pair.At(0)
		key, err := value.ToKey(k)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidEntry, i, err)
		}
		v, _ := pair.At(1)
		if err := m.Set(key, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}
