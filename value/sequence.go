package value

import "strconv"

// Integrity is the mutability level of a container. Levels only ever
// increase.
type Integrity uint8

const (
	// Open containers accept new, changed and removed entries.
	Open Integrity = iota
	// NonExtensible containers reject new entries.
	NonExtensible
	// Sealed containers reject new and removed entries.
	Sealed
	// Frozen containers reject every change.
	Frozen
)

func (i Integrity) String() string {
	switch i {
	case Open:
		return "open"
	case NonExtensible:
		return "non-extensible"
	case Sealed:
		return "sealed"
	case Frozen:
		return "frozen"
	default:
		return "integrity(" + strconv.Itoa(int(i)) + ")"
	}
}

// Sequence is an ordered, integer-indexed list of Values.
// The zero Sequence is empty and open. A nil *Sequence reads as empty and
// frozen; its mutators fail with [ErrNilContainer].
type Sequence struct {
	items []Value
	level Integrity
}

// NewSequence returns an open Sequence holding a copy of items.
func NewSequence(items ...Value) *Sequence {
	dst := make([]Value, len(items))
	copy(dst, items)
	return &Sequence{items: dst}
}

// Len returns the number of items.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// At returns the item at i and whether i is in range.
func (s *Sequence) At(i int) (Value, bool) {
	if s == nil || i < 0 || i >= len(s.items) {
		return Value{}, false
	}
	return s.items[i], true
}

// Items returns a copy of the item slice. The items themselves are not
// cloned: composite items still share storage with s.
func (s *Sequence) Items() []Value {
	if s == nil {
		return []Value{}
	}
	out := make([]Value, len(s.items))
	copy(out, s.items)
	return out
}

// Set stores v at index i. Setting i == Len() appends.
func (s *Sequence) Set(i int, v Value) error {
	key := strconv.Itoa(i)
	switch {
	case s == nil:
		return propErr("set", key, ErrNilContainer)
	case i < 0 || i > len(s.items):
		return propErr("set", key, ErrIndexOutOfRange)
	case i == len(s.items):
		if s.level >= NonExtensible {
			return propErr("set", key, ErrNotExtensible)
		}
		s.items = append(s.items, v)
	default:
		if s.level == Frozen {
			return propErr("set", key, ErrNotWritable)
		}
		s.items[i] = v
	}
	return nil
}

// Append adds vs to the end of the sequence.
func (s *Sequence) Append(vs ...Value) error {
	if s == nil {
		return propErr("append", "", ErrNilContainer)
	}
	if len(vs) == 0 {
		return nil
	}
	if s.level >= NonExtensible {
		return propErr("append", strconv.Itoa(len(s.items)), ErrNotExtensible)
	}
	s.items = append(s.items, vs...)
	return nil
}

// Pop removes and returns the last item.
func (s *Sequence) Pop() (Value, error) {
	if s == nil {
		return Value{}, propErr("delete", "", ErrNilContainer)
	}
	if len(s.items) == 0 {
		return Value{}, nil
	}
	last := len(s.items) - 1
	if s.level >= Sealed {
		return Value{}, propErr("delete", strconv.Itoa(last), ErrNotConfigurable)
	}
	v := s.items[last]
	s.items[last] = Value{}
	s.items = s.items[:last]
	return v, nil
}

// Integrity returns the current mutability level.
func (s *Sequence) Integrity() Integrity {
	if s == nil {
		return Frozen
	}
	return s.level
}

// PreventExtensions stops the sequence from growing.
func (s *Sequence) PreventExtensions() { s.raise(NonExtensible) }

// Seal stops the sequence from growing or shrinking.
func (s *Sequence) Seal() { s.raise(Sealed) }

// Freeze makes the sequence read-only.
func (s *Sequence) Freeze() { s.raise(Frozen) }

// IsExtensible reports whether items may be appended.
func (s *Sequence) IsExtensible() bool { return s.Integrity() == Open }

// IsSealed reports whether the sequence is sealed or frozen. An empty
// non-extensible sequence is also sealed.
func (s *Sequence) IsSealed() bool {
	level := s.Integrity()
	return level >= Sealed || (level == NonExtensible && s.Len() == 0)
}

// IsFrozen reports whether the sequence is frozen. An empty non-extensible
// sequence is also frozen.
func (s *Sequence) IsFrozen() bool {
	level := s.Integrity()
	return level == Frozen || (level >= NonExtensible && s.Len() == 0)
}

func (s *Sequence) raise(to Integrity) {
	if s != nil && s.level < to {
		s.level = to
	}
}
