package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/hasbyte1/go-object-utils/value"
)

type jsonCodec struct{}

// JSON returns the JSON codec.
func JSON() Codec { return jsonCodec{} }

// ContentType returns the MIME type for JSON.
func (jsonCodec) ContentType() string { return "application/json" }

// Unmarshal decodes a JSON document. Objects keep their key order; numbers
// become float64.
func (jsonCodec) Unmarshal(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSON(dec, 0)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return value.Value{}, fmt.Errorf("%w: trailing data after document", ErrInvalidDocument)
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder, depth int) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Value{}, err
	}
	switch t := tok.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(t), nil
	case string:
		return value.String(t), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return value.Value{}, err
		}
		return value.Number(n), nil
	case json.Delim:
		if depth >= maxNesting {
			return value.Value{}, fmt.Errorf("exceeded max depth of %d", maxNesting)
		}
		if t == '[' {
			s := value.NewSequence()
			for dec.More() {
				item, err := decodeJSON(dec, depth+1)
				if err != nil {
					return value.Value{}, err
				}
				_ = s.Append(item)
			}
			if _, err := dec.Token(); err != nil {
				return value.Value{}, err
			}
			return value.FromSequence(s), nil
		}
		m := value.NewMapping()
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return value.Value{}, err
			}
			key, _ := kt.(string)
			item, err := decodeJSON(dec, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			_ = m.Set(key, item)
		}
		if _, err := dec.Token(); err != nil {
			return value.Value{}, err
		}
		return value.FromMapping(m), nil
	}
	return value.Value{}, fmt.Errorf("unexpected token %v", tok)
}

// Marshal encodes v as compact JSON. Non-finite numbers encode as null.
// A top-level Undefined encodes as null.
func (jsonCodec) Marshal(v value.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, v, "$", tracker{}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSON(buf *bytes.Buffer, v value.Value, path string, t tracker) error {
	switch v.Kind() {
	case value.KindUndefined, value.KindNull:
		buf.WriteString("null")
	case value.KindBool:
		b, _ := v.AsBool()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case value.KindNumber:
		n, _ := v.AsNumber()
		if math.IsNaN(n) || math.IsInf(n, 0) {
			buf.WriteString("null")
			return nil
		}
		b, err := json.Marshal(n)
		if err != nil {
			return err
		}
		buf.Write(b)
	case value.KindString:
		s, _ := v.AsString()
		b, err := json.Marshal(s)
		if err != nil {
			return err
		}
		buf.Write(b)
	case value.KindOpaque:
		return unsupported(v, path)
	case value.KindSequence:
		leave, err := t.enter(v, path)
		if err != nil {
			return err
		}
		defer leave()
		buf.WriteByte('[')
		for i, item := range v.Sequence().Items() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(buf, item, indexPath(path, i), t); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case value.KindMapping:
		leave, err := t.enter(v, path)
		if err != nil {
			return err
		}
		defer leave()
		m := v.Mapping()
		buf.WriteByte('{')
		first := true
		for _, k := range m.Keys() {
			item, _ := m.GetOwn(k)
			if item.IsUndefined() {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := encodeJSON(buf, item, path+"."+k, t); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
