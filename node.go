package morph

import "fmt"

// Kind classifies both encode nodes and decoded wire tokens.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindBytes
	KindSeq
	KindMap
	// KindNative marks a node carrying a Go value the host encodes by reflection,
	// or a decoded token the host models with no neutral counterpart (a BSON
	// datetime, a CBOR tag).
	KindNative
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindUint:   "uint",
	KindFloat:  "float",
	KindString: "string",
	KindBytes:  "bytes",
	KindSeq:    "sequence",
	KindMap:    "map",
	KindNative: "native",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Node is the host-neutral output of a strategy's encode step.
// Hosts walk the tree and emit the matching tokens of their own format.
// A Node is immutable once built.
type Node struct {
	kind    Kind
	fixed   bool
	b       bool
	i       int64
	u       uint64
	f       float64
	s       string
	raw     []byte
	native  any
	elems   []Node
	entries []NodeEntry
}

// NodeEntry is one key/value pair of a map node, kept in emission order.
type NodeEntry struct {
	Key   Node
	Value Node
}

// NullNode returns the null/none token.
func NullNode() Node { return Node{kind: KindNull} }

// BoolNode returns a boolean token.
func BoolNode(b bool) Node { return Node{kind: KindBool, b: b} }

// IntNode returns a signed integer token.
func IntNode(i int64) Node { return Node{kind: KindInt, i: i} }

// UintNode returns an unsigned integer token.
func UintNode(u uint64) Node { return Node{kind: KindUint, u: u} }

// FloatNode returns a floating point token.
func FloatNode(f float64) Node { return Node{kind: KindFloat, f: f} }

// StringNode returns a text token.
func StringNode(s string) Node { return Node{kind: KindString, s: s} }

// BytesNode returns a binary token.
func BytesNode(b []byte) Node { return Node{kind: KindBytes, raw: b} }

// NativeNode defers to the host's own encoding of v.
func NativeNode(v any) Node { return Node{kind: KindNative, native: v} }

// SeqNode returns a variable-length sequence.
func SeqNode(elems []Node) Node { return Node{kind: KindSeq, elems: elems} }

// TupleNode returns a fixed-length sequence. Formats that distinguish tuples
// from sequences see the difference; the others emit a plain sequence.
func TupleNode(elems []Node) Node { return Node{kind: KindSeq, elems: elems, fixed: true} }

// MapNode returns a map whose entries are emitted in the given order.
func MapNode(entries []NodeEntry) Node { return Node{kind: KindMap, entries: entries} }

// Kind reports the node's kind.
func (n Node) Kind() Kind { return n.kind }

// Fixed reports whether a sequence node has a fixed arity.
func (n Node) Fixed() bool { return n.fixed }

// Bool returns the boolean payload.
func (n Node) Bool() bool { return n.b }

// Int returns the signed payload.
func (n Node) Int() int64 { return n.i }

// Uint returns the unsigned payload.
func (n Node) Uint() uint64 { return n.u }

// Float returns the float payload.
func (n Node) Float() float64 { return n.f }

// Text returns the string payload.
func (n Node) Text() string { return n.s }

// Bytes returns the binary payload.
func (n Node) Bytes() []byte { return n.raw }

// Native returns the value the host should encode by itself.
func (n Node) Native() any { return n.native }

// Elems returns the elements of a sequence node.
func (n Node) Elems() []Node { return n.elems }

// Entries returns the entries of a map node in emission order.
func (n Node) Entries() []NodeEntry { return n.entries }

// plain converts the node into ordinary Go values: nil, bool, int64, uint64,
// float64, string, []byte, []any, and the native payload as is.
// Map nodes are handed to mapFn so each host controls key representation.
func (n Node) plain(mapFn func([]NodeEntry) (any, error)) (any, error) {
	switch n.kind {
	case KindNull:
		return nil, nil
	case KindBool:
		return n.b, nil
	case KindInt:
		return n.i, nil
	case KindUint:
		return n.u, nil
	case KindFloat:
		return n.f, nil
	case KindString:
		return n.s, nil
	case KindBytes:
		return n.raw, nil
	case KindNative:
		return n.native, nil
	case KindSeq:
		out := make([]any, len(n.elems))
		for i, e := range n.elems {
			v, err := e.plain(mapFn)
			if err != nil {
				return nil, atIndex(err, i)
			}
			out[i] = v
		}
		return out, nil
	case KindMap:
		return mapFn(n.entries)
	default:
		return nil, fmt.Errorf("unknown node kind %d", n.kind)
	}
}
