package value

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Kind is the type tag of a [Value].
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindOpaque
	KindSequence
	KindMapping
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBool:      "bool",
	KindNumber:    "number",
	KindString:    "string",
	KindOpaque:    "opaque",
	KindSequence:  "sequence",
	KindMapping:   "mapping",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// IsScalar reports whether values of this kind have no internal structure.
// Opaque values count as scalars: they are never looked inside.
func (k Kind) IsScalar() bool {
	return k != KindSequence && k != KindMapping
}

// Value is a tagged union over the kinds listed in [Kind].
// The zero Value is Undefined.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	x    any
	seq  *Sequence
	m    *Mapping
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Undefined returns the absent-value sentinel.
func Undefined() Value { return Value{} }

// Null returns the null scalar.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Int wraps an int as a Number.
func Int(n int) Value { return Value{kind: KindNumber, n: float64(n)} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Opaque wraps an arbitrary Go value that the model treats as an
// indivisible scalar. A nil x yields Null.
func Opaque(x any) Value {
	if x == nil {
		return Null()
	}
	return Value{kind: KindOpaque, x: x}
}

// FromSequence wraps s. A nil s yields Null.
func FromSequence(s *Sequence) Value {
	if s == nil {
		return Null()
	}
	return Value{kind: KindSequence, seq: s}
}

// FromMapping wraps m. A nil m yields Null.
func FromMapping(m *Mapping) Value {
	if m == nil {
		return Null()
	}
	return Value{kind: KindMapping, m: m}
}

// Array builds a new open Sequence holding items.
func Array(items ...Value) Value {
	return FromSequence(NewSequence(items...))
}

// Entry is a key/value pair used by [Object].
type Entry struct {
	Key   string
	Value Value
}

// KV builds an [Entry].
func KV(key string, v Value) Entry {
	return Entry{Key: key, Value: v}
}

// Object builds a new Mapping with one ordinary data property per entry.
// Later entries overwrite earlier ones with the same key.
func Object(entries ...Entry) Value {
	m := NewMapping()
	for _, e := range entries {
		m.put(e.Key, DataDescriptor(e.Value))
	}
	return FromMapping(m)
}

// Of converts native Go data into a Value.
//
//	nil                      → Null
//	bool                     → Bool
//	ints, uints, floats      → Number
//	string                   → String
//	[]any                    → Sequence
//	map[string]any           → Mapping (keys inserted in sorted order)
//	Value, *Sequence, *Mapping pass through
//
// Anything else becomes Opaque. Native maps and slices are copied, so the
// result shares no storage with v. A native structure that contains itself
// yields a [*CyclicStructureError].
func Of(v any) (Value, error) {
	return of(v, "$", make(map[any]bool))
}

// MustOf is like [Of] but panics on error. Intended for literals in tests and
// examples.
func MustOf(v any) Value {
	out, err := Of(v)
	if err != nil {
		panic(err)
	}
	return out
}

func of(v any, path string, active map[any]bool) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case *Sequence:
		return FromSequence(x), nil
	case *Mapping:
		return FromMapping(x), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case float32:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	case []any:
		if x == nil {
			return Null(), nil
		}
		id := sliceView{reflect.ValueOf(x).Pointer(), len(x), cap(x)}
		if len(x) > 0 {
			if active[id] {
				return Value{}, &CyclicStructureError{Path: path}
			}
			active[id] = true
			defer delete(active, id)
		}
		items := make([]Value, len(x))
		for i, item := range x {
			cv, err := of(item, path+"["+strconv.Itoa(i)+"]", active)
			if err != nil {
				return Value{}, err
			}
			items[i] = cv
		}
		return FromSequence(&Sequence{items: items}), nil
	case map[string]any:
		if x == nil {
			return Null(), nil
		}
		id := reflect.ValueOf(x).Pointer()
		if active[id] {
			return Value{}, &CyclicStructureError{Path: path}
		}
		active[id] = true
		defer delete(active, id)
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, k := range keys {
			cv, err := of(x[k], path+"."+k, active)
			if err != nil {
				return Value{}, err
			}
			m.put(k, DataDescriptor(cv))
		}
		return FromMapping(m), nil
	default:
		return Opaque(x), nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Kind returns the type tag.
func (v Value) Kind() Kind { return v.kind }

// IsScalar reports whether v has no internal structure.
func (v Value) IsScalar() bool { return v.kind.IsScalar() }

// IsUndefined reports whether v is the absent-value sentinel.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsNullish reports whether v is null or undefined.
func (v Value) IsNullish() bool { return v.kind == KindNull || v.kind == KindUndefined }

// AsBool returns the boolean payload and whether v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the numeric payload and whether v is a Number.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string payload and whether v is a String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsOpaque returns the wrapped Go value and whether v is Opaque.
func (v Value) AsOpaque() (any, bool) { return v.x, v.kind == KindOpaque }

// Sequence returns the underlying Sequence, or nil when v is not one.
func (v Value) Sequence() *Sequence { return v.seq }

// Mapping returns the underlying Mapping, or nil when v is not one.
func (v Value) Mapping() *Mapping { return v.m }

// Truthy applies the host truthiness rules: false, 0, NaN, "", null and
// undefined are falsy; everything else, including empty containers, is
// truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindUndefined, KindNull:
		return false
	case KindBool:
		return v.b
	case KindNumber:
		return v.n != 0 && !math.IsNaN(v.n)
	case KindString:
		return v.s != ""
	default:
		return true
	}
}

// Native converts v back into plain Go data: nil, bool, float64, string,
// []any and map[string]any. Undefined becomes nil, Opaque values are
// returned as wrapped, and cyclic input yields a [*CyclicStructureError].
func (v Value) Native() (any, error) {
	return v.native("$", make(map[any]bool))
}

func (v Value) native(path string, active map[any]bool) (any, error) {
	switch v.kind {
	case KindUndefined, KindNull:
		return nil, nil
	case KindBool:
		return v.b, nil
	case KindNumber:
		return v.n, nil
	case KindString:
		return v.s, nil
	case KindOpaque:
		return v.x, nil
	case KindSequence:
		if active[v.seq] {
			return nil, &CyclicStructureError{Path: path}
		}
		active[v.seq] = true
		defer delete(active, v.seq)
		out := make([]any, len(v.seq.items))
		for i, item := range v.seq.items {
			n, err := item.native(path+"["+strconv.Itoa(i)+"]", active)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		if active[v.m] {
			return nil, &CyclicStructureError{Path: path}
		}
		active[v.m] = true
		defer delete(active, v.m)
		out := make(map[string]any, len(v.m.props))
		for _, k := range v.m.Keys() {
			d, _ := v.m.Descriptor(k)
			n, err := d.Value.native(path+"."+k, active)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	}
}

// String renders v in a compact, JSON-like form for debugging. Strings are
// quoted; a back-reference to an enclosing container prints as [Circular].
// It implements [fmt.Stringer].
func (v Value) String() string {
	var sb strings.Builder
	v.format(&sb, make(map[any]bool))
	return sb.String()
}

func (v Value) format(sb *strings.Builder, active map[any]bool) {
	switch v.kind {
	case KindUndefined:
		sb.WriteString("undefined")
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		sb.WriteString(formatNumber(v.n))
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindOpaque:
		fmt.Fprintf(sb, "<%T>", v.x)
	case KindSequence:
		if active[v.seq] {
			sb.WriteString("[Circular]")
			return
		}
		active[v.seq] = true
		defer delete(active, v.seq)
		sb.WriteByte('[')
		for i, item := range v.seq.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.format(sb, active)
		}
		sb.WriteByte(']')
	case KindMapping:
		if active[v.m] {
			sb.WriteString("[Circular]")
			return
		}
		active[v.m] = true
		defer delete(active, v.m)
		sb.WriteByte('{')
		for i, k := range v.m.Keys() {
			if i > 0 {
				sb.WriteByte(',')
			}
			d, _ := v.m.Descriptor(k)
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			d.Value.format(sb, active)
		}
		sb.WriteByte('}')
	}
}

// sliceView identifies a []any by its backing array and bounds, so that two
// different windows onto one array are distinct nodes.
type sliceView struct {
	ptr      uintptr
	len, cap int
}
