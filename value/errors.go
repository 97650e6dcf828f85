package value

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Sequence and Mapping operations.
//
// Use [errors.Is] for comparisons:
//
//	if err := m.Set("id", value.Int(7)); errors.Is(err, value.ErrNotWritable) {
//	    // the property is read-only
//	}
var (
	// ErrNotWritable is returned when assigning to a read-only property or
	// to an item of a frozen Sequence.
	ErrNotWritable = errors.New("value: property is not writable")

	// ErrNotExtensible is returned when adding a property or item to a
	// container whose extensible bit has been cleared.
	ErrNotExtensible = errors.New("value: container is not extensible")

	// ErrNotConfigurable is returned when deleting or redefining a
	// non-configurable property.
	ErrNotConfigurable = errors.New("value: property is not configurable")

	// ErrIndexOutOfRange is returned when a Sequence index is negative or
	// past the append position.
	ErrIndexOutOfRange = errors.New("value: index out of range")

	// ErrCyclicPrototype is returned by [Mapping.SetProto] when the new
	// prototype chain would reach the mapping itself.
	ErrCyclicPrototype = errors.New("value: cyclic prototype chain")

	// ErrNilContainer is returned by mutators called on a nil *Sequence or
	// *Mapping.
	ErrNilContainer = errors.New("value: nil container")

	// ErrCyclicStructure is returned when a traversal reaches a node that is
	// still being processed, i.e. the value graph contains a cycle.
	ErrCyclicStructure = errors.New("value: cyclic structure")
)

// CyclicStructureError reports the path at which a traversal revisited a
// node that was still in progress. It matches [ErrCyclicStructure].
type CyclicStructureError struct {
	Path string // location of the back-reference, e.g. "$.a.self"
}

func (e *CyclicStructureError) Error() string {
	return fmt.Sprintf("%s at %s", ErrCyclicStructure.Error(), e.Path)
}

func (e *CyclicStructureError) Unwrap() error {
	return ErrCyclicStructure
}

// PropertyError wraps a sentinel with the operation and key that failed.
type PropertyError struct {
	Op  string // "set", "define", "delete", "append"
	Key string
	Err error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

func propErr(op, key string, err error) error {
	return &PropertyError{Op: op, Key: key, Err: err}
}
