package clone

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-object-utils/value"
)

// Sentinel errors returned by the cloner.
//
// Use [errors.Is] for comparisons:
//
//	out, err := clone.Clone(v)
//	if errors.Is(err, clone.ErrCyclicStructure) {
//	    // v references itself
//	}
var (
	// ErrCyclicStructure is returned when the input graph contains a cycle.
	// It is the same sentinel as [value.ErrCyclicStructure].
	ErrCyclicStructure = value.ErrCyclicStructure

	// ErrUnsupportedValue is returned in strict mode when the input holds an
	// Opaque value (func, channel, handle) that cannot be deep-copied.
	ErrUnsupportedValue = errors.New("clone: unsupported value")

	// ErrMaxDepth is returned when nesting exceeds the limit set with
	// [WithMaxDepth].
	ErrMaxDepth = errors.New("clone: maximum depth exceeded")
)

// CyclicStructureError carries the path of the back-reference that closed
// the cycle. It matches [ErrCyclicStructure].
type CyclicStructureError = value.CyclicStructureError

// UnsupportedValueError reports where a strict clone met an Opaque value.
// It matches [ErrUnsupportedValue].
type UnsupportedValueError struct {
	Path string // e.g. "$.handlers[2]"
	Type string // Go type of the wrapped value
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("%s %s at %s", ErrUnsupportedValue.Error(), e.Type, e.Path)
}

func (e *UnsupportedValueError) Unwrap() error {
	return ErrUnsupportedValue
}
