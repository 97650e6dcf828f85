package clone

import (
	"fmt"
	"reflect"
	"strconv"
)

// CloneNative deep-copies plain Go data built from map[string]any and
// []any, the shape produced by encoding/json and yaml decoders. Typed slices
// of scalars ([]string, []int, []float64, []bool) are copied too. Any other
// value is returned as-is, or rejected with [ErrUnsupportedValue] under
// [WithStrict] unless it is a bool, number or string.
//
// Cycles are detected by map and slice identity and fail with a
// [*CyclicStructureError].
func CloneNative(x any, opts ...Option) (any, error) {
	c := New(opts...)
	return c.native(x, "$", 1, make(map[any]bool))
}

func (c *Cloner) native(x any, path string, depth int, active map[any]bool) (any, error) {
	switch v := x.(type) {
	case nil, bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v, nil
	case []string:
		return copyOf(v), nil
	case []int:
		return copyOf(v), nil
	case []float64:
		return copyOf(v), nil
	case []bool:
		return copyOf(v), nil
	case []any:
		if v == nil {
			return v, nil
		}
		if err := c.enter(path, depth); err != nil {
			return nil, err
		}
		id := sliceView{reflect.ValueOf(v).Pointer(), len(v), cap(v)}
		if len(v) > 0 {
			if active[id] {
				return nil, &CyclicStructureError{Path: path}
			}
			active[id] = true
			defer delete(active, id)
		}
		out := make([]any, len(v))
		for i, item := range v {
			cv, err := c.native(item, path+"["+strconv.Itoa(i)+"]", depth+1, active)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	case map[string]any:
		if v == nil {
			return v, nil
		}
		if err := c.enter(path, depth); err != nil {
			return nil, err
		}
		id := reflect.ValueOf(v).Pointer()
		if active[id] {
			return nil, &CyclicStructureError{Path: path}
		}
		active[id] = true
		defer delete(active, id)
		out := make(map[string]any, len(v))
		for k, item := range v {
			cv, err := c.native(item, path+"."+k, depth+1, active)
			if err != nil {
				return nil, err
			}
			out[k] = cv
		}
		return out, nil
	default:
		if c.cfg.strict {
			return nil, &UnsupportedValueError{Path: path, Type: fmt.Sprintf("%T", x)}
		}
		return v, nil
	}
}

func (c *Cloner) enter(path string, depth int) error {
	if c.cfg.maxDepth > 0 && depth > c.cfg.maxDepth {
		return fmt.Errorf("%w (%d) at %s", ErrMaxDepth, c.cfg.maxDepth, path)
	}
	return nil
}

func copyOf[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// sliceView identifies a []any by its backing array and bounds, so that two
// different windows onto one array are distinct nodes.
type sliceView struct {
	ptr      uintptr
	len, cap int
}
