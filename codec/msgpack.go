package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/hasbyte1/go-object-utils/value"
)

type msgpackCodec struct{}

// Msgpack returns the MessagePack codec.
func Msgpack() Codec { return msgpackCodec{} }

// ContentType returns the MIME type for MessagePack.
func (msgpackCodec) ContentType() string { return "application/msgpack" }

// Unmarshal decodes one MessagePack object. Map keys may be any scalar and
// are converted with [value.ToKey]; extension types such as timestamps are
// wrapped as Opaque values.
func (msgpackCodec) Unmarshal(data []byte) (value.Value, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	v, err := decodeMsgpack(dec, 0)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if _, err := dec.PeekCode(); !errors.Is(err, io.EOF) {
		return value.Value{}, fmt.Errorf("%w: trailing data after document", ErrInvalidDocument)
	}
	return v, nil
}

func decodeMsgpack(dec *msgpack.Decoder, depth int) (value.Value, error) {
	code, err := dec.PeekCode()
	if err != nil {
		return value.Value{}, err
	}
	switch {
	case code == msgpcode.Nil:
		return value.Null(), dec.DecodeNil()
	case code == msgpcode.True || code == msgpcode.False:
		b, err := dec.DecodeBool()
		return value.Bool(b), err
	case msgpcode.IsString(code) || msgpcode.IsBin(code):
		s, err := dec.DecodeString()
		return value.String(s), err
	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		if depth >= maxNesting {
			return value.Value{}, fmt.Errorf("exceeded max depth of %d", maxNesting)
		}
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return value.Value{}, err
		}
		s := value.NewSequence()
		for i := 0; i < n; i++ {
			item, err := decodeMsgpack(dec, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			_ = s.Append(item)
		}
		return value.FromSequence(s), nil
	case msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32:
		if depth >= maxNesting {
			return value.Value{}, fmt.Errorf("exceeded max depth of %d", maxNesting)
		}
		n, err := dec.DecodeMapLen()
		if err != nil {
			return value.Value{}, err
		}
		m := value.NewMapping()
		for i := 0; i < n; i++ {
			kv, err := decodeMsgpack(dec, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			key, err := value.ToKey(kv)
			if err != nil {
				return value.Value{}, err
			}
			item, err := decodeMsgpack(dec, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			_ = m.Set(key, item)
		}
		return value.FromMapping(m), nil
	default:
		x, err := dec.DecodeInterfaceLoose()
		if err != nil {
			return value.Value{}, err
		}
		return value.Of(x)
	}
}

// Marshal encodes v as MessagePack. Integral numbers within the int64
// range are written as integers, everything else as float64.
func (msgpackCodec) Marshal(v value.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeMsgpack(enc, v, "$", tracker{}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeMsgpack(enc *msgpack.Encoder, v value.Value, path string, t tracker) error {
	switch v.Kind() {
	case value.KindUndefined, value.KindNull:
		return enc.EncodeNil()
	case value.KindBool:
		b, _ := v.AsBool()
		return enc.EncodeBool(b)
	case value.KindNumber:
		f, _ := v.AsNumber()
		if f == math.Trunc(f) && math.Abs(f) < 1<<63 && !(f == 0 && math.Signbit(f)) {
			return enc.EncodeInt(int64(f))
		}
		return enc.EncodeFloat64(f)
	case value.KindString:
		s, _ := v.AsString()
		return enc.EncodeString(s)
	case value.KindOpaque:
		return unsupported(v, path)
	case value.KindSequence:
		leave, err := t.enter(v, path)
		if err != nil {
			return err
		}
		defer leave()
		items := v.Sequence().Items()
		if err := enc.EncodeArrayLen(len(items)); err != nil {
			return err
		}
		for i, item := range items {
			if err := encodeMsgpack(enc, item, indexPath(path, i), t); err != nil {
				return err
			}
		}
		return nil
	default:
		leave, err := t.enter(v, path)
		if err != nil {
			return err
		}
		defer leave()
		m := v.Mapping()
		keys := make([]string, 0, m.Len())
		for _, k := range m.Keys() {
			if item, _ := m.GetOwn(k); !item.IsUndefined() {
				keys = append(keys, k)
			}
		}
		if err := enc.EncodeMapLen(len(keys)); err != nil {
			return err
		}
		for _, k := range keys {
			item, _ := m.GetOwn(k)
			if err := enc.EncodeString(k); err != nil {
				return err
			}
			if err := encodeMsgpack(enc, item, path+"."+k, t); err != nil {
				return err
			}
		}
		return nil
	}
}
