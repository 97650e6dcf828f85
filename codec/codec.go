// Package codec converts documents to and from [value.Value], keeping
// mapping key order intact.
//
// Three formats are supported through one interface:
//
//	v, err := codec.JSON().Unmarshal([]byte(`{"b":1,"a":[true,null]}`))
//	out, err := codec.YAML().Marshal(v)
//
// Encoding follows the host serializer: Undefined mapping properties are
// omitted and Undefined sequence items become null. Opaque values cannot be
// encoded, and cyclic values fail with [value.ErrCyclicStructure].
package codec

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-object-utils/value"
)

// Codec provides content-type aware conversion between bytes and Values.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v value.Value) ([]byte, error)

	// Unmarshal decodes a single document.
	Unmarshal(data []byte) (value.Value, error)
}

// ByContentType returns the codec registered for a MIME type.
func ByContentType(contentType string) (Codec, bool) {
	for _, c := range []Codec{JSON(), YAML(), Msgpack()} {
		if c.ContentType() == contentType {
			return c, true
		}
	}
	return nil, false
}

// maxNesting bounds container nesting while decoding. It matches the limit
// of encoding/json.
const maxNesting = 10000

// tracker detects cycles during encoding.
type tracker map[any]bool

func (t tracker) enter(v value.Value, path string) (func(), error) {
	var id any
	if s := v.Sequence(); s != nil {
		id = s
	} else {
		id = v.Mapping()
	}
	if t[id] {
		return nil, &value.CyclicStructureError{Path: path}
	}
	t[id] = true
	return func() { delete(t, id) }, nil
}

func unsupported(v value.Value, path string) error {
	x, _ := v.AsOpaque()
	return fmt.Errorf("%w: %T at %s", ErrUnsupportedValue, x, path)
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
