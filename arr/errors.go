package arr

import "errors"

// ErrEmptySequence is returned by [Reduce] when the sequence is empty and no
// initial accumulator was supplied.
var ErrEmptySequence = errors.New("arr: reduce of empty sequence with no initial value")
