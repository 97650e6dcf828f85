package value

import (
	"sort"
)

// Descriptor describes one own property of a Mapping.
//
// The zero Descriptor is read-only, hidden from enumeration and
// non-configurable, matching the defaults of an explicit property
// definition. Use [DataDescriptor] for an ordinary assignable property.
type Descriptor struct {
	Value        Value
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// DataDescriptor returns a writable, enumerable, configurable descriptor.
func DataDescriptor(v Value) Descriptor {
	return Descriptor{Value: v, Writable: true, Enumerable: true, Configurable: true}
}

type property struct {
	key string
	Descriptor
}

// Mapping is a keyed collection of properties with an optional prototype.
//
// Properties are data properties only. Reads through [Mapping.Get] follow
// the prototype chain; writes always land on the mapping itself.
//
// The zero Mapping is empty, extensible and has no prototype. A nil *Mapping
// reads as empty and frozen; its mutators fail with [ErrNilContainer].
type Mapping struct {
	props         []property
	index         map[string]int
	proto         *Mapping
	nonExtensible bool
}

// NewMapping returns an empty, extensible Mapping with no prototype.
func NewMapping() *Mapping {
	return &Mapping{}
}

// Len returns the number of own properties, enumerable or not.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.props)
}

// Proto returns the prototype, or nil.
func (m *Mapping) Proto() *Mapping {
	if m == nil {
		return nil
	}
	return m.proto
}

// SetProto replaces the prototype. It fails on non-extensible mappings and
// when p's chain already contains m.
func (m *Mapping) SetProto(p *Mapping) error {
	if m == nil {
		return propErr("setproto", "__proto__", ErrNilContainer)
	}
	if p == m.proto {
		return nil
	}
	if m.nonExtensible {
		return propErr("setproto", "__proto__", ErrNotExtensible)
	}
	for cur := p; cur != nil; cur = cur.proto {
		if cur == m {
			return propErr("setproto", "__proto__", ErrCyclicPrototype)
		}
	}
	m.proto = p
	return nil
}

func (m *Mapping) lookup(key string) (int, bool) {
	if m == nil || m.index == nil {
		return 0, false
	}
	i, ok := m.index[key]
	return i, ok
}

// GetOwn returns the own property value for key.
func (m *Mapping) GetOwn(key string) (Value, bool) {
	i, ok := m.lookup(key)
	if !ok {
		return Value{}, false
	}
	return m.props[i].Value, true
}

// Get returns the value for key, searching the prototype chain when the
// mapping has no own property of that name.
func (m *Mapping) Get(key string) (Value, bool) {
	for cur := m; cur != nil; cur = cur.proto {
		if v, ok := cur.GetOwn(key); ok {
			return v, true
		}
	}
	return Value{}, false
}

// HasOwn reports whether key is an own property.
func (m *Mapping) HasOwn(key string) bool {
	_, ok := m.lookup(key)
	return ok
}

// Has reports whether key is an own or inherited property.
func (m *Mapping) Has(key string) bool {
	for cur := m; cur != nil; cur = cur.proto {
		if cur.HasOwn(key) {
			return true
		}
	}
	return false
}

// Descriptor returns the own property descriptor for key.
func (m *Mapping) Descriptor(key string) (Descriptor, bool) {
	i, ok := m.lookup(key)
	if !ok {
		return Descriptor{}, false
	}
	return m.props[i].Descriptor, true
}

// Set assigns v to key.
//
// An existing own property is updated when writable. Otherwise a read-only
// property of the same name on the prototype chain blocks the assignment;
// failing that, a new ordinary data property is added when the mapping is
// extensible.
func (m *Mapping) Set(key string, v Value) error {
	if m == nil {
		return propErr("set", key, ErrNilContainer)
	}
	if i, ok := m.lookup(key); ok {
		if !m.props[i].Writable {
			return propErr("set", key, ErrNotWritable)
		}
		m.props[i].Value = v
		return nil
	}
	for cur := m.proto; cur != nil; cur = cur.proto {
		if d, ok := cur.Descriptor(key); ok {
			if !d.Writable {
				return propErr("set", key, ErrNotWritable)
			}
			break
		}
	}
	if m.nonExtensible {
		return propErr("set", key, ErrNotExtensible)
	}
	m.put(key, DataDescriptor(v))
	return nil
}

// Define installs d as the own property key.
//
// Redefining a non-configurable property is only allowed when it changes
// nothing but the value of a writable property, or turns writable off.
func (m *Mapping) Define(key string, d Descriptor) error {
	if m == nil {
		return propErr("define", key, ErrNilContainer)
	}
	i, ok := m.lookup(key)
	if !ok {
		if m.nonExtensible {
			return propErr("define", key, ErrNotExtensible)
		}
		m.put(key, d)
		return nil
	}
	cur := m.props[i].Descriptor
	if !cur.Configurable {
		if d.Configurable || d.Enumerable != cur.Enumerable {
			return propErr("define", key, ErrNotConfigurable)
		}
		if !cur.Writable && (d.Writable || !sameValue(cur.Value, d.Value)) {
			return propErr("define", key, ErrNotConfigurable)
		}
	}
	m.props[i].Descriptor = d
	return nil
}

// Delete removes the own property key. Deleting a missing key is a no-op.
func (m *Mapping) Delete(key string) error {
	if m == nil {
		return propErr("delete", key, ErrNilContainer)
	}
	i, ok := m.lookup(key)
	if !ok {
		return nil
	}
	if !m.props[i].Configurable {
		return propErr("delete", key, ErrNotConfigurable)
	}
	m.props = append(m.props[:i], m.props[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.props); j++ {
		m.index[m.props[j].key] = j
	}
	return nil
}

// put appends or replaces a property without any checks.
func (m *Mapping) put(key string, d Descriptor) {
	if i, ok := m.lookup(key); ok {
		m.props[i].Descriptor = d
		return
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[key] = len(m.props)
	m.props = append(m.props, property{key: key, Descriptor: d})
}

// Keys returns the own enumerable keys in host enumeration order:
// canonical array indices ascending, then other keys in insertion order.
// Inherited and non-enumerable keys are not included.
func (m *Mapping) Keys() []string {
	return m.ownKeys(true)
}

// OwnPropertyNames returns every own key, enumerable or not, in the same
// order as [Mapping.Keys].
func (m *Mapping) OwnPropertyNames() []string {
	return m.ownKeys(false)
}

func (m *Mapping) ownKeys(enumerableOnly bool) []string {
	if m == nil {
		return []string{}
	}
	type indexed struct {
		key string
		n   uint32
	}
	var ints []indexed
	strs := make([]string, 0, len(m.props))
	for _, p := range m.props {
		if enumerableOnly && !p.Enumerable {
			continue
		}
		if n, ok := arrayIndex(p.key); ok {
			ints = append(ints, indexed{p.key, n})
			continue
		}
		strs = append(strs, p.key)
	}
	if len(ints) == 0 {
		return strs
	}
	sort.Slice(ints, func(i, j int) bool { return ints[i].n < ints[j].n })
	out := make([]string, 0, len(ints)+len(strs))
	for _, ik := range ints {
		out = append(out, ik.key)
	}
	return append(out, strs...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Integrity
// ─────────────────────────────────────────────────────────────────────────────

// PreventExtensions stops new properties from being added.
func (m *Mapping) PreventExtensions() {
	if m != nil {
		m.nonExtensible = true
	}
}

// IsExtensible reports whether new properties may be added.
func (m *Mapping) IsExtensible() bool { return m != nil && !m.nonExtensible }

// Seal prevents extensions and marks every own property non-configurable.
func (m *Mapping) Seal() {
	if m == nil {
		return
	}
	m.nonExtensible = true
	for i := range m.props {
		m.props[i].Configurable = false
	}
}

// Freeze seals the mapping and marks every own property read-only.
func (m *Mapping) Freeze() {
	if m == nil {
		return
	}
	m.nonExtensible = true
	for i := range m.props {
		m.props[i].Configurable = false
		m.props[i].Writable = false
	}
}

// IsSealed reports whether the mapping is non-extensible and all own
// properties are non-configurable.
func (m *Mapping) IsSealed() bool {
	if m == nil {
		return true
	}
	if !m.nonExtensible {
		return false
	}
	for _, p := range m.props {
		if p.Configurable {
			return false
		}
	}
	return true
}

// IsFrozen reports whether the mapping is sealed and all own properties are
// read-only.
func (m *Mapping) IsFrozen() bool {
	if !m.IsSealed() {
		return false
	}
	if m == nil {
		return true
	}
	for _, p := range m.props {
		if p.Writable {
			return false
		}
	}
	return true
}
