package value

import (
	"math"
	"reflect"
)

// Equal reports whether a and b are structurally equal: the same kind at
// every path, equal scalar leaves, sequences of equal length with equal
// items, and mappings with the same own enumerable key set and equal values
// per key. Key order, prototypes and descriptor flags are ignored. NaN is
// equal to NaN; Opaque values are equal only when they are the same Go
// value.
//
// Equal terminates on cyclic input.
func Equal(a, b Value) bool {
	return equal(a, b, make(map[[2]any]bool))
}

// Equal reports whether v and o are structurally equal. See [Equal].
func (v Value) Equal(o Value) bool { return Equal(v, o) }

func equal(a, b Value, seen map[[2]any]bool) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindSequence:
		if a.seq == b.seq {
			return true
		}
		pair := [2]any{a.seq, b.seq}
		if seen[pair] {
			return true
		}
		seen[pair] = true
		if len(a.seq.items) != len(b.seq.items) {
			return false
		}
		for i := range a.seq.items {
			if !equal(a.seq.items[i], b.seq.items[i], seen) {
				return false
			}
		}
		return true
	case KindMapping:
		if a.m == b.m {
			return true
		}
		pair := [2]any{a.m, b.m}
		if seen[pair] {
			return true
		}
		seen[pair] = true
		keys := a.m.Keys()
		if len(keys) != len(b.m.Keys()) {
			return false
		}
		for _, k := range keys {
			bd, ok := b.m.Descriptor(k)
			if !ok || !bd.Enumerable {
				return false
			}
			ad, _ := a.m.Descriptor(k)
			if !equal(ad.Value, bd.Value, seen) {
				return false
			}
		}
		return true
	case KindNumber:
		return a.n == b.n || (math.IsNaN(a.n) && math.IsNaN(b.n))
	default:
		return sameScalar(a, b)
	}
}

// Same reports whether a and b are the same value: identical storage for
// Sequences and Mappings, equal payloads for scalars.
func Same(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindSequence:
		return a.seq == b.seq
	case KindMapping:
		return a.m == b.m
	default:
		return sameValue(a, b)
	}
}

// sameValue follows the host SameValue rule for numbers: NaN equals NaN and
// +0 differs from -0.
func sameValue(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNumber:
		if math.IsNaN(a.n) && math.IsNaN(b.n) {
			return true
		}
		return a.n == b.n && math.Signbit(a.n) == math.Signbit(b.n)
	case KindSequence:
		return a.seq == b.seq
	case KindMapping:
		return a.m == b.m
	default:
		return sameScalar(a, b)
	}
}

func sameScalar(a, b Value) bool {
	switch a.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindOpaque:
		return sameOpaque(a.x, b.x)
	default:
		return false
	}
}

// sameOpaque compares wrapped Go values by identity without panicking on
// uncomparable dynamic types.
func sameOpaque(x, y any) bool {
	tx, ty := reflect.TypeOf(x), reflect.TypeOf(y)
	if tx != ty {
		return false
	}
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	switch vx.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		if vx.Kind() == reflect.Slice && vx.Len() != vy.Len() {
			return false
		}
		return vx.Pointer() == vy.Pointer()
	}
	if tx.Comparable() {
		return x == y
	}
	return false
}
