package obj

import (
	"strconv"
	"strings"

	"github.com/hasbyte1/go-object-utils/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers
//
// These functions read, write and test values in nested mappings and
// sequences using dot-separated key paths. A segment addresses a mapping
// key, or a sequence index when the container at that point is a sequence.
//
//	v := value.MustOf(map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "tags": []any{"admin", "ops"},
//	    },
//	})
//
//	Get(v, "user.name")    → "Alice"
//	Get(v, "user.tags.1")  → "ops"
//	Set(v, "user.age", value.Int(30))
//	Has(v, "user.name")    → true
//	Forget(v, "user.tags")
// ─────────────────────────────────────────────────────────────────────────────

func child(v value.Value, seg string) (value.Value, bool) {
	switch v.Kind() {
	case value.KindMapping:
		return v.Mapping().Get(seg)
	case value.KindSequence:
		i, err := strconv.Atoi(seg)
		if err != nil {
			return value.Value{}, false
		}
		return v.Sequence().At(i)
	default:
		return value.Value{}, false
	}
}

// Get returns the value at path, or def[0] (or Undefined) when any segment
// is missing. Mapping reads follow the prototype chain.
func Get(v value.Value, path string, def ...value.Value) value.Value {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		next, ok := child(cur, seg)
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return value.Undefined()
		}
		cur = next
	}
	return cur
}

// Has reports whether every segment of path exists.
func Has(v value.Value, path string) bool {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		next, ok := child(cur, seg)
		if !ok {
			return false
		}
		cur = next
	}
	return true
}

// HasAll reports whether all paths exist in v.
func HasAll(v value.Value, paths ...string) bool {
	for _, p := range paths {
		if !Has(v, p) {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the paths exist in v.
func HasAny(v value.Value, paths ...string) bool {
	for _, p := range paths {
		if Has(v, p) {
			return true
		}
	}
	return false
}

// Set writes x at path, creating intermediate mappings where a segment is
// missing or holds a scalar. v itself must be a mapping or sequence.
//
//	Set(v, "user.address.postcode", value.String("EC1"))
func Set(v value.Value, path string, x value.Value) error {
	if path == "" || v.IsScalar() {
		return ErrInvalidPath
	}
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		return setChild(v, seg, x)
	}
	next, ok := child(v, seg)
	if !ok || next.IsScalar() {
		next = value.FromMapping(value.NewMapping())
		if err := setChild(v, seg, next); err != nil {
			return err
		}
	}
	return Set(next, rest, x)
}

func setChild(v value.Value, seg string, x value.Value) error {
	if s := v.Sequence(); s != nil {
		i, err := strconv.Atoi(seg)
		if err != nil {
			return ErrInvalidPath
		}
		return s.Set(i, x)
	}
	return v.Mapping().Set(seg, x)
}

// Forget removes the own property at path. Missing segments are ignored;
// sequence items cannot be forgotten.
func Forget(v value.Value, path string) error {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		if m := v.Mapping(); m != nil {
			return m.Delete(seg)
		}
		return nil
	}
	next, ok := child(v, seg)
	if !ok {
		return nil
	}
	return Forget(next, rest)
}

// Dot flattens nested mappings into a single-level mapping keyed by dot
// paths. Sequences and scalars are leaves and are stored as-is.
//
//	Dot({"a": {"b": 1}, "c": [1, 2]})  → {"a.b": 1, "c": [1, 2]}
func Dot(m *value.Mapping) *value.Mapping {
	out := value.NewMapping()
	dotFlatten("", m, out, map[*value.Mapping]bool{})
	return out
}

// A mapping that refers back to one of its ancestors is stored as a leaf.
func dotFlatten(prefix string, m *value.Mapping, out *value.Mapping, seen map[*value.Mapping]bool) {
	seen[m] = true
	defer delete(seen, m)
	for _, k := range m.Keys() {
		v, _ := m.GetOwn(k)
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested := v.Mapping(); nested != nil && !seen[nested] && len(nested.Keys()) > 0 {
			dotFlatten(key, nested, out, seen)
			continue
		}
		_ = out.Set(key, v)
	}
}

// Undot expands a flat dot-path mapping into nested mappings.
//
//	Undot({"a.b": 1, "a.c": 2})  → {"a": {"b": 1, "c": 2}}
func Undot(m *value.Mapping) (*value.Mapping, error) {
	out := value.FromMapping(value.NewMapping())
	for _, k := range m.Keys() {
		v, _ := m.GetOwn(k)
		if err := Set(out, k, v); err != nil {
			return nil, err
		}
	}
	return out.Mapping(), nil
}
