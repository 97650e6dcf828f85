package codec_test

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/hasbyte1/go-object-utils/codec"
	"github.com/hasbyte1/go-object-utils/value"
)

func sample() value.Value {
	return value.Object(
		value.KV("z", value.Int(1)),
		value.KV("a", value.Array(value.String("s"), value.Bool(false), value.Null(), value.Number(1.5), value.Int(-3))),
		value.KV("m", value.Object(value.KV("k", value.String("v")))),
	)
}

func allCodecs() []codec.Codec {
	return []codec.Codec{codec.JSON(), codec.YAML(), codec.Msgpack()}
}

func TestByContentType(t *testing.T) {
	for _, c := range allCodecs() {
		got, ok := codec.ByContentType(c.ContentType())
		require.True(t, ok, c.ContentType())
		assert.Equal(t, c.ContentType(), got.ContentType())
	}
	_, ok := codec.ByContentType("text/plain")
	assert.False(t, ok)
}

func TestRoundTripPreservesOrder(t *testing.T) {
	for _, c := range allCodecs() {
		t.Run(c.ContentType(), func(t *testing.T) {
			data, err := c.Marshal(sample())
			require.NoError(t, err)

			got, err := c.Unmarshal(data)
			require.NoError(t, err)
			assert.True(t, value.Equal(sample(), got), "got %s", got)
			assert.Equal(t, []string{"z", "a", "m"}, got.Mapping().Keys())
		})
	}
}

func TestUndefinedHandling(t *testing.T) {
	v := value.Object(
		value.KV("gone", value.Undefined()),
		value.KV("list", value.Array(value.Undefined(), value.Int(1))),
	)
	want := value.Object(value.KV("list", value.Array(value.Null(), value.Int(1))))

	for _, c := range allCodecs() {
		t.Run(c.ContentType(), func(t *testing.T) {
			data, err := c.Marshal(v)
			require.NoError(t, err)
			got, err := c.Unmarshal(data)
			require.NoError(t, err)
			assert.True(t, value.Equal(want, got), "got %s", got)
		})
	}
}

func TestOpaqueIsUnsupported(t *testing.T) {
	v := value.Object(value.KV("fn", value.Array(value.Int(1), value.Opaque(func() {}))))
	for _, c := range allCodecs() {
		t.Run(c.ContentType(), func(t *testing.T) {
			_, err := c.Marshal(v)
			require.ErrorIs(t, err, codec.ErrUnsupportedValue)
			assert.Contains(t, err.Error(), "$.fn[1]")
		})
	}
}

func TestCyclicValueFails(t *testing.T) {
	m := value.NewMapping()
	require.NoError(t, m.Set("self", value.FromMapping(m)))

	for _, c := range allCodecs() {
		t.Run(c.ContentType(), func(t *testing.T) {
			_, err := c.Marshal(value.FromMapping(m))
			require.ErrorIs(t, err, value.ErrCyclicStructure)
			assert.Contains(t, err.Error(), "$.self")
		})
	}
}

func TestSharedNodeEncodesTwice(t *testing.T) {
	shared := value.Array(value.Int(1))
	v := value.Object(value.KV("a", shared), value.KV("b", shared))
	for _, c := range allCodecs() {
		t.Run(c.ContentType(), func(t *testing.T) {
			data, err := c.Marshal(v)
			require.NoError(t, err)
			got, err := c.Unmarshal(data)
			require.NoError(t, err)
			assert.True(t, value.Equal(v, got))
		})
	}
}

// ─── JSON ─────────────────────────────────────────────────────────────────────

func TestJSONMarshal(t *testing.T) {
	data, err := codec.JSON().Marshal(sample())
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":["s",false,null,1.5,-3],"m":{"k":"v"}}`, string(data))
}

func TestJSONIndexKeysComeFirst(t *testing.T) {
	v, err := codec.JSON().Unmarshal([]byte(`{"b":1,"2":2,"a":3,"1":4}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "b", "a"}, v.Mapping().Keys())

	data, err := codec.JSON().Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"1":4,"2":2,"b":1,"a":3}`, string(data))
}

func TestJSONNonFiniteNumbers(t *testing.T) {
	v := value.Array(value.Number(math.NaN()), value.Number(math.Inf(-1)), value.Number(1e21))
	data, err := codec.JSON().Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `[null,null,1e+21]`, string(data))
}

func TestJSONUnmarshalInvalid(t *testing.T) {
	for _, in := range []string{``, `{"a":`, `[1,]`, `{} {}`, `1 2`} {
		_, err := codec.JSON().Unmarshal([]byte(in))
		assert.ErrorIs(t, err, codec.ErrInvalidDocument, "input %q", in)
	}
}

func TestJSONUnmarshalScalars(t *testing.T) {
	cases := map[string]value.Value{
		`null`:     value.Null(),
		`true`:     value.Bool(true),
		`"x"`:      value.String("x"),
		` 12.5 `:   value.Number(12.5),
		`[]`:       value.Array(),
		`{}`:       value.Object(),
		`"\u00e9"`: value.String("é"),
	}
	for in, want := range cases {
		got, err := codec.JSON().Unmarshal([]byte(in))
		require.NoError(t, err, in)
		assert.True(t, value.Equal(want, got), "input %q got %s", in, got)
	}
}

func TestJSONNestingLimit(t *testing.T) {
	nested := func(n int) []byte {
		return []byte(strings.Repeat("[", n) + strings.Repeat("]", n))
	}

	v, err := codec.JSON().Unmarshal(nested(10000))
	require.NoError(t, err)
	assert.Equal(t, value.KindSequence, v.Kind())

	_, err = codec.JSON().Unmarshal(nested(10001))
	assert.ErrorIs(t, err, codec.ErrInvalidDocument)

	_, err = codec.JSON().Unmarshal(nested(1_000_000))
	assert.ErrorIs(t, err, codec.ErrInvalidDocument)
}

// ─── YAML ─────────────────────────────────────────────────────────────────────

func TestYAMLUnmarshal(t *testing.T) {
	doc := "b: 1\na: [x, 2.5, ~, true]\n\"10\": ten\n"
	v, err := codec.YAML().Unmarshal([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"10", "b", "a"}, v.Mapping().Keys())
	want := value.Object(
		value.KV("b", value.Int(1)),
		value.KV("a", value.Array(value.String("x"), value.Number(2.5), value.Null(), value.Bool(true))),
		value.KV("10", value.String("ten")),
	)
	assert.True(t, value.Equal(want, v), "got %s", v)
}

func TestYAMLAliasesAreCopied(t *testing.T) {
	v, err := codec.YAML().Unmarshal([]byte("base: &b {k: 1}\ncopy: *b\n"))
	require.NoError(t, err)

	base, _ := v.Mapping().Get("base")
	cp, _ := v.Mapping().Get("copy")
	assert.True(t, value.Equal(base, cp))
	assert.False(t, value.Same(base, cp))
}

func TestYAMLSelfReferentialAnchor(t *testing.T) {
	for _, doc := range []string{"&a [*a]", "&m {k: *m}", "a: &x [1, {b: *x}]\n"} {
		_, err := codec.YAML().Unmarshal([]byte(doc))
		require.ErrorIs(t, err, codec.ErrInvalidDocument, doc)
		assert.ErrorIs(t, err, value.ErrCyclicStructure, doc)
	}
}

func TestYAMLAliasExpansionLimit(t *testing.T) {
	var doc strings.Builder
	doc.WriteString(`l0: &l0 ["x","x","x","x","x","x","x","x","x","x"]` + "\n")
	for i := 1; i < 7; i++ {
		ref := fmt.Sprintf("*l%d", i-1)
		fmt.Fprintf(&doc, "l%d: &l%d [%s]\n", i, i, strings.TrimSuffix(strings.Repeat(ref+",", 10), ","))
	}

	_, err := codec.YAML().Unmarshal([]byte(doc.String()))
	assert.ErrorIs(t, err, codec.ErrInvalidDocument)
	assert.Contains(t, err.Error(), "alias expansion")
}

func TestYAMLModestAliasReuse(t *testing.T) {
	doc := "defaults: &d {retries: 3, timeout: 5}\n" +
		"a: *d\nb: *d\nc: *d\nd: *d\n"
	v, err := codec.YAML().Unmarshal([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"defaults", "a", "b", "c", "d"}, v.Mapping().Keys())
}

func TestYAMLQuotesAmbiguousStrings(t *testing.T) {
	v := value.Object(value.KV("flag", value.String("true")), value.KV("n", value.String("12")))
	data, err := codec.YAML().Marshal(v)
	require.NoError(t, err)

	got, err := codec.YAML().Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, value.Equal(v, got), "yaml was %s", data)
}

func TestYAMLMarshal(t *testing.T) {
	data, err := codec.YAML().Marshal(value.Object(value.KV("name", value.String("x")), value.KV("none", value.Null())))
	require.NoError(t, err)
	assert.Equal(t, "name: x\nnone: null\n", string(data))
}

func TestYAMLNonFiniteNumbers(t *testing.T) {
	v := value.Array(value.Number(math.NaN()), value.Number(math.Inf(1)), value.Number(0.25))
	data, err := codec.YAML().Marshal(v)
	require.NoError(t, err)

	got, err := codec.YAML().Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, value.Equal(v, got), "yaml was %s", data)
}

func TestYAMLUnmarshalErrors(t *testing.T) {
	_, err := codec.YAML().Unmarshal([]byte("? [a]\n: 1\n"))
	assert.ErrorIs(t, err, codec.ErrInvalidDocument)

	_, err = codec.YAML().Unmarshal([]byte("a: [1, 2"))
	assert.ErrorIs(t, err, codec.ErrInvalidDocument)

	v, err := codec.YAML().Unmarshal(nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

// ─── MessagePack ──────────────────────────────────────────────────────────────

func TestMsgpackNumbers(t *testing.T) {
	v := value.Array(value.Int(7), value.Int(-300), value.Number(1e300), value.Number(0.1), value.Int(1<<40))
	data, err := codec.Msgpack().Marshal(v)
	require.NoError(t, err)

	var native []any
	require.NoError(t, msgpack.Unmarshal(data, &native))
	assert.Equal(t, 0.1, native[3])

	got, err := codec.Msgpack().Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, value.Equal(v, got), "got %s", got)
}

func TestMsgpackScalarKeys(t *testing.T) {
	data, err := msgpack.Marshal(map[int]string{1: "one"})
	require.NoError(t, err)

	v, err := codec.Msgpack().Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, `{"1":"one"}`, v.String())
}

func TestMsgpackBinaryAsString(t *testing.T) {
	data, err := msgpack.Marshal([]byte("raw"))
	require.NoError(t, err)

	v, err := codec.Msgpack().Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, value.Equal(value.String("raw"), v))
}

func TestMsgpackExtensionIsOpaque(t *testing.T) {
	ts := time.Unix(1700000000, 0).UTC()
	data, err := msgpack.Marshal([]any{ts})
	require.NoError(t, err)

	v, err := codec.Msgpack().Unmarshal(data)
	require.NoError(t, err)
	item, _ := v.Sequence().At(0)
	x, ok := item.AsOpaque()
	require.True(t, ok, "got %s", item)
	got, ok := x.(time.Time)
	require.True(t, ok)
	assert.True(t, ts.Equal(got))
}

func TestMsgpackNestingLimit(t *testing.T) {
	nested := func(n int) []byte {
		return append(bytes.Repeat([]byte{0x91}, n), 0xc0)
	}

	_, err := codec.Msgpack().Unmarshal(nested(10000))
	require.NoError(t, err)

	_, err = codec.Msgpack().Unmarshal(nested(10001))
	assert.ErrorIs(t, err, codec.ErrInvalidDocument)
}

func TestMsgpackTrailingData(t *testing.T) {
	data, err := codec.Msgpack().Marshal(value.Int(1))
	require.NoError(t, err)

	_, err = codec.Msgpack().Unmarshal(append(data, 0xc0))
	assert.ErrorIs(t, err, codec.ErrInvalidDocument)

	_, err = codec.Msgpack().Unmarshal(nil)
	assert.ErrorIs(t, err, codec.ErrInvalidDocument)
}

func TestMsgpackRejectsCompositeKeys(t *testing.T) {
	data, err := msgpack.Marshal(map[string]any{"k": 1})
	require.NoError(t, err)
	// Replace the fixstr key header (0xa1 'k') with a one-item array ([1]).
	patched := strings.Replace(string(data), "\xa1k", "\x91\x01", 1)

	_, err = codec.Msgpack().Unmarshal([]byte(patched))
	assert.ErrorIs(t, err, codec.ErrInvalidDocument)
}
