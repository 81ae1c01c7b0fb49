package morph

import (
	"fmt"
	"reflect"
	"strconv"
)

// Value is one decoded wire token as seen by a strategy.
//
// Scalar accessors return the payload for the matching Kind and the zero value
// otherwise; strategies switch on Kind first. Sequences and maps are split
// lazily by Elems and Entries, which keep wire order. Decode hands the token
// back to the host engine for its natural decoding into dst.
type Value interface {
	Kind() Kind
	Bool() bool
	Int() int64
	Uint() uint64
	Float() float64
	Text() string
	Bytes() []byte

	Elems() ([]Value, error)
	Entries() ([]Entry, error)

	// Decode decodes the token into dst, which must be a non-nil pointer.
	Decode(dst any) error

	// Literal renders the token for error messages.
	Literal() string
}

// Entry is one key/value pair of a decoded map token.
type Entry struct {
	Key   Value
	Value Value
}

// scalar carries the classified payload shared by every host's Value.
type scalar struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	raw  []byte
	lit  string
}

func (s scalar) Kind() Kind      { return s.kind }
func (s scalar) Bool() bool      { return s.kind == KindBool && s.b }
func (s scalar) Int() int64      { return s.i }
func (s scalar) Uint() uint64    { return s.u }
func (s scalar) Float() float64  { return s.f }
func (s scalar) Text() string    { return s.s }
func (s scalar) Bytes() []byte   { return s.raw }
func (s scalar) Literal() string { return s.lit }

func nullScalar() scalar { return scalar{kind: KindNull, lit: "null"} }

func boolScalar(b bool) scalar {
	return scalar{kind: KindBool, b: b, lit: strconv.FormatBool(b)}
}

// intScalar classifies signed integers; non-negative values are also readable
// through Uint so strategies that want unsigned input can accept either kind.
func intScalar(i int64) scalar {
	s := scalar{kind: KindInt, i: i, lit: strconv.FormatInt(i, 10)}
	if i >= 0 {
		s.u = uint64(i)
	}
	return s
}

func uintScalar(u uint64) scalar {
	s := scalar{kind: KindUint, u: u, lit: strconv.FormatUint(u, 10)}
	if u <= 1<<63-1 {
		s.i = int64(u)
	}
	return s
}

func floatScalar(f float64) scalar {
	return scalar{kind: KindFloat, f: f, lit: strconv.FormatFloat(f, 'g', -1, 64)}
}

func stringScalar(str string) scalar {
	return scalar{kind: KindString, s: str, lit: str}
}

func bytesScalar(b []byte) scalar {
	return scalar{kind: KindBytes, raw: b, lit: fmt.Sprintf("bytes[%d]", len(b))}
}

func containerScalar(k Kind) scalar {
	return scalar{kind: k, lit: k.String()}
}

// notSeq and notMap back the container accessors of scalar tokens.
func notSeq(v Value) ([]Value, error) {
	return nil, invalidShape(v, "sequence")
}

func notMap(v Value) ([]Entry, error) {
	return nil, invalidShape(v, "map")
}

// NodeValue exposes an encode tree as a decode token, so strategies can be
// exercised without a host engine.
func NodeValue(n Node) Value {
	return &nodeValue{n: n, scalar: nodeScalar(n)}
}

type nodeValue struct {
	scalar
	n Node
}

func nodeScalar(n Node) scalar {
	switch n.kind {
	case KindNull:
		return nullScalar()
	case KindBool:
		return boolScalar(n.b)
	case KindInt:
		return intScalar(n.i)
	case KindUint:
		return uintScalar(n.u)
	case KindFloat:
		return floatScalar(n.f)
	case KindString:
		return stringScalar(n.s)
	case KindBytes:
		return bytesScalar(n.raw)
	case KindNative:
		return scalar{kind: KindNative, lit: fmt.Sprintf("%v", n.native)}
	default:
		return containerScalar(n.kind)
	}
}

func (v *nodeValue) Elems() ([]Value, error) {
	if v.n.kind != KindSeq {
		return notSeq(v)
	}
	out := make([]Value, len(v.n.elems))
	for i, e := range v.n.elems {
		out[i] = NodeValue(e)
	}
	return out, nil
}

func (v *nodeValue) Entries() ([]Entry, error) {
	if v.n.kind != KindMap {
		return notMap(v)
	}
	out := make([]Entry, len(v.n.entries))
	for i, e := range v.n.entries {
		out[i] = Entry{Key: NodeValue(e.Key), Value: NodeValue(e.Value)}
	}
	return out, nil
}

// Decode assigns the node's payload to dst using reflection, converting
// between numeric kinds when the value fits.
func (v *nodeValue) Decode(dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: decode target must be a non-nil pointer, got %T", ErrUnmarshal, dst)
	}
	src, err := v.n.plain(plainMap)
	if err != nil {
		return err
	}
	return assign(rv.Elem(), src, v)
}

// plainMap renders map nodes for host-free decoding with stringified keys.
func plainMap(entries []NodeEntry) (any, error) {
	m := make(map[string]any, len(entries))
	for _, e := range entries {
		k, err := e.Key.plain(plainMap)
		if err != nil {
			return nil, err
		}
		key := fmt.Sprint(k)
		val, err := e.Value.plain(plainMap)
		if err != nil {
			return nil, atKey(err, key)
		}
		m[key] = val
	}
	return m, nil
}

// assign stores src into target, converting numbers within range.
func assign(target reflect.Value, src any, v Value) error {
	if src == nil {
		target.SetZero()
		return nil
	}
	sv := reflect.ValueOf(src)
	if sv.Type().AssignableTo(target.Type()) {
		target.Set(sv)
		return nil
	}
	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		switch x := src.(type) {
		case int64:
			i = x
		case uint64:
			if x > 1<<63-1 {
				return &DecodeError{Err: ErrOutOfRange, Input: v.Literal(), Expected: target.Type().String()}
			}
			i = int64(x)
		default:
			return invalidShape(v, target.Type().String())
		}
		if target.OverflowInt(i) {
			return &DecodeError{Err: ErrOutOfRange, Input: v.Literal(), Expected: target.Type().String()}
		}
		target.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var u uint64
		switch x := src.(type) {
		case uint64:
			u = x
		case int64:
			if x < 0 {
				return &DecodeError{Err: ErrOutOfRange, Input: v.Literal(), Expected: target.Type().String()}
			}
			u = uint64(x)
		default:
			return invalidShape(v, target.Type().String())
		}
		if target.OverflowUint(u) {
			return &DecodeError{Err: ErrOutOfRange, Input: v.Literal(), Expected: target.Type().String()}
		}
		target.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		switch x := src.(type) {
		case float64:
			target.SetFloat(x)
		case int64:
			target.SetFloat(float64(x))
		case uint64:
			target.SetFloat(float64(x))
		default:
			return invalidShape(v, target.Type().String())
		}
		return nil
	}
	if sv.Type().ConvertibleTo(target.Type()) && sv.Kind() == target.Kind() {
		target.Set(sv.Convert(target.Type()))
		return nil
	}
	return invalidShape(v, target.Type().String())
}
