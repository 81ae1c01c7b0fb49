package morph

import (
	"fmt"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// MarshalBSONValue renders the strategy output as a BSON element value.
func (w Wrap[T, S]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	n, err := w.Node()
	if err != nil {
		return 0, nil, err
	}
	if n.Kind() == KindNull {
		return bson.TypeNull, nil, nil
	}
	v, err := bsonNative(n)
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(v)
}

// MarshalBSONValue renders the strategy output as a BSON element value.
func (a As[T, S]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return WrapOf[S](&a.Value).MarshalBSONValue()
}

// UnmarshalBSONValue decodes the strategy's BSON shape into the carried value.
func (a *As[T, S]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return a.decode(newBSONValue(bson.RawValue{Type: t, Value: data}))
}

// bsonNative converts a node into values the bson encoder writes directly.
// Documents keep entry order; BSON has no unsigned type, so unsigned values
// beyond int64 cannot be represented.
func bsonNative(n Node) (any, error) {
	switch n.Kind() {
	case KindUint:
		if n.Uint() > math.MaxInt64 {
			return nil, &EncodeError{Err: ErrOutOfRange, Type: "uint64", Cause: fmt.Errorf("%d exceeds BSON int64", n.Uint())}
		}
		return int64(n.Uint()), nil
	case KindSeq:
		out := make(bson.A, len(n.Elems()))
		for i, e := range n.Elems() {
			v, err := bsonNative(e)
			if err != nil {
				return nil, atIndex(err, i)
			}
			out[i] = v
		}
		return out, nil
	case KindMap:
		out := make(bson.D, 0, len(n.Entries()))
		for _, e := range n.Entries() {
			key, err := bsonKey(e.Key)
			if err != nil {
				return nil, err
			}
			v, err := bsonNative(e.Value)
			if err != nil {
				return nil, atKey(err, key)
			}
			out = append(out, bson.E{Key: key, Value: v})
		}
		return out, nil
	}
	return n.plain(nil)
}

// bsonKey renders a key node as a document field name.
func bsonKey(n Node) (string, error) {
	switch n.Kind() {
	case KindString:
		return n.Text(), nil
	case KindBool:
		return strconv.FormatBool(n.Bool()), nil
	case KindInt:
		return strconv.FormatInt(n.Int(), 10), nil
	case KindUint:
		return strconv.FormatUint(n.Uint(), 10), nil
	case KindFloat:
		return strconv.FormatFloat(n.Float(), 'g', -1, 64), nil
	case KindNative:
		if s, ok := n.Native().(fmt.Stringer); ok {
			return s.String(), nil
		}
		switch k := n.Native().(type) {
		case string:
			return k, nil
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return fmt.Sprint(k), nil
		}
	}
	return "", &EncodeError{Err: ErrInvalidKey, Type: n.Kind().String()}
}

// bsonValue wraps one raw BSON element value.
type bsonValue struct {
	scalar
	rv bson.RawValue
}

// bsonKeyValue is a document field name.
type bsonKeyValue struct {
	scalar
}

func (v *bsonKeyValue) Elems() ([]Value, error)   { return notSeq(v) }
func (v *bsonKeyValue) Entries() ([]Entry, error) { return notMap(v) }

// Decode accepts the field name as a string or, for numeric targets, as the
// number it spells.
func (v *bsonKeyValue) Decode(dst any) error {
	if p, ok := dst.(*string); ok {
		*p = v.s
		return nil
	}
	if err := NodeValue(StringNode(v.s)).Decode(dst); err == nil {
		return nil
	}
	if i, err := strconv.ParseInt(v.s, 10, 64); err == nil {
		return NodeValue(IntNode(i)).Decode(dst)
	}
	if u, err := strconv.ParseUint(v.s, 10, 64); err == nil {
		return NodeValue(UintNode(u)).Decode(dst)
	}
	return invalidShape(v, fmt.Sprintf("%T", dst))
}

func newBSONValue(rv bson.RawValue) *bsonValue {
	v := &bsonValue{rv: rv}
	switch rv.Type {
	case bson.TypeNull, bson.TypeUndefined, 0:
		v.scalar = nullScalar()
	case bson.TypeBoolean:
		v.scalar = boolScalar(rv.Boolean())
	case bson.TypeInt32:
		v.scalar = bsonInt(int64(rv.Int32()))
	case bson.TypeInt64:
		v.scalar = bsonInt(rv.Int64())
	case bson.TypeDouble:
		v.scalar = floatScalar(rv.Double())
	case bson.TypeString:
		v.scalar = stringScalar(rv.StringValue())
	case bson.TypeBinary:
		_, data := rv.Binary()
		v.scalar = bytesScalar(data)
	case bson.TypeArray:
		v.scalar = containerScalar(KindSeq)
	case bson.TypeEmbeddedDocument:
		v.scalar = containerScalar(KindMap)
	default:
		v.scalar = scalar{kind: KindNative, lit: rv.String()}
	}
	return v
}

func bsonInt(i int64) scalar {
	if i < 0 {
		return intScalar(i)
	}
	return uintScalar(uint64(i))
}

func (v *bsonValue) Elems() ([]Value, error) {
	if v.kind != KindSeq {
		return notSeq(v)
	}
	vals, err := v.rv.Array().Values()
	if err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	out := make([]Value, len(vals))
	for i, rv := range vals {
		out[i] = newBSONValue(rv)
	}
	return out, nil
}

func (v *bsonValue) Entries() ([]Entry, error) {
	if v.kind != KindMap {
		return notMap(v)
	}
	elems, err := v.rv.Document().Elements()
	if err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	out := make([]Entry, len(elems))
	for i, el := range elems {
		out[i] = Entry{
			Key:   &bsonKeyValue{scalar: stringScalar(el.Key())},
			Value: newBSONValue(el.Value()),
		}
	}
	return out, nil
}

func (v *bsonValue) Decode(dst any) error {
	if v.kind == KindNull {
		return NodeValue(NullNode()).Decode(dst)
	}
	if err := v.rv.Unmarshal(dst); err != nil {
		return newCodecError(ErrUnmarshal, err)
	}
	return nil
}
