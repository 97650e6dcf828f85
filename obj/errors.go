package obj

import "errors"

// Sentinel errors returned by object helpers.
var (
	// ErrInvalidEntry is returned by [FromEntries] when an entry is not a
	// [key, value] sequence or its key cannot be converted.
	ErrInvalidEntry = errors.New("obj: invalid entry")

	// ErrInvalidPath is returned by [Set] for an empty path, a scalar root,
	// or a non-numeric segment addressing a sequence.
	ErrInvalidPath = errors.New("obj: invalid path")
)
