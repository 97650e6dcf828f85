package arr

import (
	"fmt"

	"github.com/hasbyte1/go-object-utils/clone"
	"github.com/hasbyte1/go-object-utils/value"
)

// Visitor is the callback type of [ForEach].
type Visitor func(item value.Value, index int, src *value.Sequence, this value.Value)

// Mapper is the callback type of [Map].
type Mapper func(item value.Value, index int, src *value.Sequence, this value.Value) value.Value

// Predicate is the callback type of [Filter], [Every], [Some], [Find] and
// [FindIndex].
type Predicate func(item value.Value, index int, src *value.Sequence, this value.Value) bool

// Reducer is the callback type of [Reduce]. There is no context argument;
// the accumulator plays that role.
type Reducer func(acc, item value.Value, index int, src *value.Sequence) value.Value

func contextOf(this []value.Value) value.Value {
	if len(this) > 0 {
		return this[0]
	}
	return value.Undefined()
}

// ─────────────────────────────────────────────────────────────────────────────
// Enumeration
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn(item, index, src, this) for every item.
func ForEach(src *value.Sequence, fn Visitor, this ...value.Value) {
	ctx := contextOf(this)
	n := src.Len()
	for i := 0; i < n; i++ {
		item, ok := src.At(i)
		if !ok {
			return
		}
		fn(item, i, src, ctx)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new sequence holding a deep clone of fn's result for every
// item, in source order.
func Map(src *value.Sequence, fn Mapper, this ...value.Value) (*value.Sequence, error) {
	ctx := contextOf(this)
	n := src.Len()
	out := make([]value.Value, 0, n)
	for i := 0; i < n; i++ {
		item, ok := src.At(i)
		if !ok {
			break
		}
		cv, err := clone.Clone(fn(item, i, src, ctx))
		if err != nil {
			return nil, fmt.Errorf("arr: map index %d: %w", i, err)
		}
		out = append(out, cv)
	}
	return value.NewSequence(out...), nil
}

// Filter returns a new sequence holding deep clones of the items for which
// pred returns true.
func Filter(src *value.Sequence, pred Predicate, this ...value.Value) (*value.Sequence, error) {
	ctx := contextOf(this)
	n := src.Len()
	out := make([]value.Value, 0, n)
	for i := 0; i < n; i++ {
		item, ok := src.At(i)
		if !ok {
			break
		}
		if !pred(item, i, src, ctx) {
			continue
		}
		cv, err := clone.Clone(item)
		if err != nil {
			return nil, fmt.Errorf("arr: filter index %d: %w", i, err)
		}
		out = append(out, cv)
	}
	return value.NewSequence(out...), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Quantification & search
// ─────────────────────────────────────────────────────────────────────────────

// Every reports whether pred holds for every item. It stops at the first
// failure and returns true for an empty sequence.
func Every(src *value.Sequence, pred Predicate, this ...value.Value) bool {
	return FindIndex(src, func(item value.Value, i int, s *value.Sequence, ctx value.Value) bool {
		return !pred(item, i, s, ctx)
	}, this...) < 0
}

// Some reports whether pred holds for at least one item. It stops at the
// first match and returns false for an empty sequence.
func Some(src *value.Sequence, pred Predicate, this ...value.Value) bool {
	return FindIndex(src, pred, this...) >= 0
}

// FindIndex returns the index of the first item satisfying pred, or -1.
func FindIndex(src *value.Sequence, pred Predicate, this ...value.Value) int {
	ctx := contextOf(this)
	n := src.Len()
	for i := 0; i < n; i++ {
		item, ok := src.At(i)
		if !ok {
			break
		}
		if pred(item, i, src, ctx) {
			return i
		}
	}
	return -1
}

// Find returns the first item satisfying pred. The item is returned as
// stored, not cloned.
func Find(src *value.Sequence, pred Predicate, this ...value.Value) (value.Value, bool) {
	i := FindIndex(src, pred, this...)
	if i < 0 {
		return value.Undefined(), false
	}
	return src.At(i)
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds src into a single value. Each item is deep-cloned before it
// is passed to fn, so the reducer may keep or mutate it freely.
//
// When initial is given, folding starts at index 0 with initial[0] as the
// accumulator. Otherwise the first item seeds the accumulator and folding
// starts at index 1; an empty sequence then fails with [ErrEmptySequence].
func Reduce(src *value.Sequence, fn Reducer, initial ...value.Value) (value.Value, error) {
	n := src.Len()
	start := 0
	var acc value.Value
	if len(initial) > 0 {
		acc = initial[0]
	} else {
		first, ok := src.At(0)
		if !ok {
			return value.Undefined(), ErrEmptySequence
		}
		cv, err := clone.Clone(first)
		if err != nil {
			return value.Undefined(), fmt.Errorf("arr: reduce index 0: %w", err)
		}
		acc, start = cv, 1
	}
	for i := start; i < n; i++ {
		item, ok := src.At(i)
		if !ok {
			break
		}
		cv, err := clone.Clone(item)
		if err != nil {
			return value.Undefined(), fmt.Errorf("arr: reduce index %d: %w", i, err)
		}
		acc = fn(acc, cv, i, src)
	}
	return acc, nil
}
