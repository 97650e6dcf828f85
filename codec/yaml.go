package codec

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-object-utils/value"
)

type yamlCodec struct{}

// YAML returns the YAML codec.
func YAML() Codec { return yamlCodec{} }

// ContentType returns the MIME type for YAML.
func (yamlCodec) ContentType() string { return "application/yaml" }

// Unmarshal decodes the first YAML document in data. Mapping keys must be
// scalars; aliases are expanded into independent copies.
//
// An alias that refers to an enclosing anchor is rejected with a
// [*value.CyclicStructureError]. Alias expansion is bounded: a document may
// not expand to more than 10000 values plus 64 per input byte.
func (yamlCodec) Unmarshal(data []byte) (value.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return value.Value{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return value.Null(), nil
	}
	d := &yamlDecoder{
		active: make(map[*yaml.Node]bool),
		limit:  yamlBaseNodes + yamlNodesPerByte*len(data),
	}
	return d.decode(doc.Content[0], "$")
}

// Expansion budget for [yamlCodec.Unmarshal].
const (
	yamlBaseNodes    = 10000
	yamlNodesPerByte = 64
)

type yamlDecoder struct {
	active map[*yaml.Node]bool
	nodes  int
	limit  int
}

func (d *yamlDecoder) decode(n *yaml.Node, path string) (value.Value, error) {
	d.nodes++
	if d.nodes > d.limit {
		return value.Value{}, fmt.Errorf("%w: alias expansion exceeds %d values", ErrInvalidDocument, d.limit)
	}
	if d.active[n] {
		return value.Value{}, fmt.Errorf("%w: %w", ErrInvalidDocument, &value.CyclicStructureError{Path: path})
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null(), nil
		}
		return d.decode(n.Content[0], path)
	case yaml.AliasNode:
		return d.decode(n.Alias, path)
	case yaml.SequenceNode:
		d.active[n] = true
		defer delete(d.active, n)
		s := value.NewSequence()
		for i, c := range n.Content {
			item, err := d.decode(c, indexPath(path, i))
			if err != nil {
				return value.Value{}, err
			}
			_ = s.Append(item)
		}
		return value.FromSequence(s), nil
	case yaml.MappingNode:
		d.active[n] = true
		defer delete(d.active, n)
		m := value.NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			kn, vn := n.Content[i], n.Content[i+1]
			if kn.Kind == yaml.AliasNode {
				kn = kn.Alias
			}
			if kn.Kind != yaml.ScalarNode {
				return value.Value{}, fmt.Errorf("%w: non-scalar mapping key at line %d", ErrInvalidDocument, kn.Line)
			}
			item, err := d.decode(vn, path+"."+kn.Value)
			if err != nil {
				return value.Value{}, err
			}
			_ = m.Set(kn.Value, item)
		}
		return value.FromMapping(m), nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return value.Value{}, fmt.Errorf("%w: unknown node kind %d", ErrInvalidDocument, n.Kind)
}

func yamlScalar(n *yaml.Node) (value.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return value.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return value.Value{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return value.Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return value.Value{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return value.Number(f), nil
	default:
		return value.String(n.Value), nil
	}
}

// Marshal encodes v as a YAML document.
func (yamlCodec) Marshal(v value.Value) ([]byte, error) {
	n, err := toYAML(v, "$", tracker{})
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(n)
}

func toYAML(v value.Value, path string, t tracker) (*yaml.Node, error) {
	switch v.Kind() {
	case value.KindUndefined, value.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case value.KindBool:
		b, _ := v.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}, nil
	case value.KindNumber:
		f, _ := v.AsNumber()
		return yamlNumber(f), nil
	case value.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}, nil
	case value.KindOpaque:
		return nil, unsupported(v, path)
	case value.KindSequence:
		leave, err := t.enter(v, path)
		if err != nil {
			return nil, err
		}
		defer leave()
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, item := range v.Sequence().Items() {
			c, err := toYAML(item, indexPath(path, i), t)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, c)
		}
		return out, nil
	default:
		leave, err := t.enter(v, path)
		if err != nil {
			return nil, err
		}
		defer leave()
		m := v.Mapping()
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range m.Keys() {
			item, _ := m.GetOwn(k)
			if item.IsUndefined() {
				continue
			}
			c, err := toYAML(item, path+"."+k, t)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				c,
			)
		}
		return out, nil
	}
}

func yamlNumber(f float64) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float"}
	switch {
	case math.IsNaN(f):
		n.Value = ".nan"
	case math.IsInf(f, 1):
		n.Value = ".inf"
	case math.IsInf(f, -1):
		n.Value = "-.inf"
	case f == math.Trunc(f) && math.Abs(f) < 1<<53:
		n.Tag = "!!int"
		n.Value = strconv.FormatInt(int64(f), 10)
	default:
		n.Value = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return n
}
