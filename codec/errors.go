package codec

import "errors"

// Sentinel errors returned by codecs.
var (
	// ErrUnsupportedValue is returned when encoding an Opaque value.
	ErrUnsupportedValue = errors.New("codec: unsupported value")

	// ErrInvalidDocument is returned when input bytes are not a single
	// well-formed document of the codec's format.
	ErrInvalidDocument = errors.New("codec: invalid document")
)
