package morph

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the strategy output as a YAML node tree.
func (w Wrap[T, S]) MarshalYAML() (any, error) {
	n, err := w.Node()
	if err != nil {
		return nil, err
	}
	return renderYAML(n)
}

// MarshalYAML renders the strategy output as a YAML node tree.
func (a As[T, S]) MarshalYAML() (any, error) {
	return WrapOf[S](&a.Value).MarshalYAML()
}

// UnmarshalYAML decodes the strategy's YAML shape into the carried value.
func (a *As[T, S]) UnmarshalYAML(node *yaml.Node) error {
	return a.decode(newYAMLValue(node))
}

func renderYAML(n Node) (*yaml.Node, error) {
	switch n.Kind() {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case KindBytes:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!binary", Value: base64.StdEncoding.EncodeToString(n.Bytes())}, nil
	case KindSeq:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if n.Fixed() {
			out.Style = yaml.FlowStyle
		}
		for i, e := range n.Elems() {
			c, err := renderYAML(e)
			if err != nil {
				return nil, atIndex(err, i)
			}
			out.Content = append(out.Content, c)
		}
		return out, nil
	case KindMap:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range n.Entries() {
			k, err := renderYAML(e.Key)
			if err != nil {
				return nil, err
			}
			if k.Kind != yaml.ScalarNode {
				return nil, &EncodeError{Err: ErrInvalidKey, Type: e.Key.Kind().String()}
			}
			v, err := renderYAML(e.Value)
			if err != nil {
				return nil, atKey(err, k.Value)
			}
			out.Content = append(out.Content, k, v)
		}
		return out, nil
	}
	leaf, err := n.plain(nil)
	if err != nil {
		return nil, err
	}
	out := new(yaml.Node)
	if err := out.Encode(leaf); err != nil {
		return nil, &EncodeError{Err: ErrMarshal, Type: fmt.Sprintf("%T", leaf), Cause: err}
	}
	return out, nil
}

// yamlValue reads a decoded YAML node by its resolved tag.
type yamlValue struct {
	scalar
	node *yaml.Node
}

func newYAMLValue(node *yaml.Node) *yamlValue {
	for node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	v := &yamlValue{node: node}
	switch node.Kind {
	case yaml.SequenceNode:
		v.scalar = containerScalar(KindSeq)
		return v
	case yaml.MappingNode:
		v.scalar = containerScalar(KindMap)
		return v
	}
	switch node.ShortTag() {
	case "!!null":
		v.scalar = nullScalar()
	case "!!bool":
		var b bool
		if node.Decode(&b) == nil {
			v.scalar = boolScalar(b)
		} else {
			v.scalar = stringScalar(node.Value)
		}
	case "!!int":
		var i int64
		var u uint64
		switch {
		case node.Decode(&i) == nil && i < 0:
			v.scalar = intScalar(i)
		case node.Decode(&u) == nil:
			v.scalar = uintScalar(u)
		default:
			v.scalar = yamlFloat(node)
		}
	case "!!float":
		v.scalar = yamlFloat(node)
	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(node.Value)
		if err != nil {
			v.scalar = stringScalar(node.Value)
		} else {
			v.scalar = bytesScalar(b)
		}
	case "!!str":
		v.scalar = stringScalar(node.Value)
	default:
		v.scalar = scalar{kind: KindNative, lit: node.Value}
	}
	if v.kind != KindString && v.kind != KindBytes {
		v.lit = node.Value
	}
	return v
}

func yamlFloat(node *yaml.Node) scalar {
	var f float64
	if err := node.Decode(&f); err != nil {
		if pf, perr := strconv.ParseFloat(node.Value, 64); perr == nil {
			return floatScalar(pf)
		}
		return stringScalar(node.Value)
	}
	return floatScalar(f)
}

func (v *yamlValue) Elems() ([]Value, error) {
	if v.kind != KindSeq {
		return notSeq(v)
	}
	out := make([]Value, len(v.node.Content))
	for i, c := range v.node.Content {
		out[i] = newYAMLValue(c)
	}
	return out, nil
}

func (v *yamlValue) Entries() ([]Entry, error) {
	if v.kind != KindMap {
		return notMap(v)
	}
	if len(v.node.Content)%2 != 0 {
		return nil, newCodecError(ErrUnmarshal, fmt.Errorf("mapping has %d nodes", len(v.node.Content)))
	}
	out := make([]Entry, 0, len(v.node.Content)/2)
	for i := 0; i < len(v.node.Content); i += 2 {
		out = append(out, Entry{
			Key:   newYAMLValue(v.node.Content[i]),
			Value: newYAMLValue(v.node.Content[i+1]),
		})
	}
	return out, nil
}

func (v *yamlValue) Decode(dst any) error {
	if err := v.node.Decode(dst); err != nil {
		return newCodecError(ErrUnmarshal, err)
	}
	return nil
}
