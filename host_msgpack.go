package morph

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// EncodeMsgpack writes the strategy output as MessagePack.
func (w Wrap[T, S]) EncodeMsgpack(enc *msgpack.Encoder) error {
	n, err := w.Node()
	if err != nil {
		return err
	}
	return encodeMsgpack(enc, n)
}

// EncodeMsgpack writes the strategy output as MessagePack.
func (a As[T, S]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return WrapOf[S](&a.Value).EncodeMsgpack(enc)
}

// DecodeMsgpack reads the strategy's MessagePack shape into the carried value.
func (a *As[T, S]) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeRaw()
	if err != nil {
		return newCodecError(ErrUnmarshal, err)
	}
	v, err := newMsgpackValue(raw)
	if err != nil {
		return err
	}
	return a.decode(v)
}

func encodeMsgpack(enc *msgpack.Encoder, n Node) error {
	switch n.Kind() {
	case KindNull:
		return enc.EncodeNil()
	case KindBool:
		return enc.EncodeBool(n.Bool())
	case KindInt:
		return enc.EncodeInt(n.Int())
	case KindUint:
		return enc.EncodeUint(n.Uint())
	case KindFloat:
		return enc.EncodeFloat64(n.Float())
	case KindString:
		return enc.EncodeString(n.Text())
	case KindBytes:
		b := n.Bytes()
		if b == nil {
			b = []byte{}
		}
		return enc.EncodeBytes(b)
	case KindNative:
		return enc.Encode(n.Native())
	case KindSeq:
		if err := enc.EncodeArrayLen(len(n.Elems())); err != nil {
			return err
		}
		for i, e := range n.Elems() {
			if err := encodeMsgpack(enc, e); err != nil {
				return atIndex(err, i)
			}
		}
		return nil
	case KindMap:
		if err := enc.EncodeMapLen(len(n.Entries())); err != nil {
			return err
		}
		for _, e := range n.Entries() {
			if err := encodeMsgpack(enc, e.Key); err != nil {
				return err
			}
			if err := encodeMsgpack(enc, e.Value); err != nil {
				return atKey(err, e.Key.Text())
			}
		}
		return nil
	}
	return fmt.Errorf("unknown node kind %d", n.Kind())
}

// msgpackValue is one raw MessagePack item, classified by its leading code.
type msgpackValue struct {
	scalar
	raw msgpack.RawMessage
}

func newMsgpackValue(raw msgpack.RawMessage) (*msgpackValue, error) {
	if len(raw) == 0 {
		return nil, newCodecError(ErrUnmarshal, fmt.Errorf("empty MessagePack item"))
	}
	v := &msgpackValue{raw: raw}
	c := raw[0]
	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	var err error
	switch {
	case c == msgpcode.Nil:
		v.scalar = nullScalar()
	case c == msgpcode.True || c == msgpcode.False:
		var b bool
		b, err = dec.DecodeBool()
		v.scalar = boolScalar(b)
	case c == msgpcode.Float || c == msgpcode.Double:
		var f float64
		f, err = dec.DecodeFloat64()
		v.scalar = floatScalar(f)
	case c <= msgpcode.PosFixedNumHigh ||
		c == msgpcode.Uint8 || c == msgpcode.Uint16 || c == msgpcode.Uint32 || c == msgpcode.Uint64:
		var u uint64
		u, err = dec.DecodeUint64()
		v.scalar = uintScalar(u)
	case msgpcode.IsFixedNum(c) ||
		c == msgpcode.Int8 || c == msgpcode.Int16 || c == msgpcode.Int32 || c == msgpcode.Int64:
		var i int64
		i, err = dec.DecodeInt64()
		if i >= 0 {
			v.scalar = uintScalar(uint64(i))
		} else {
			v.scalar = intScalar(i)
		}
	case msgpcode.IsString(c):
		var s string
		s, err = dec.DecodeString()
		v.scalar = stringScalar(s)
	case msgpcode.IsBin(c):
		var b []byte
		b, err = dec.DecodeBytes()
		v.scalar = bytesScalar(b)
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		v.scalar = containerScalar(KindSeq)
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		v.scalar = containerScalar(KindMap)
	default:
		v.scalar = scalar{kind: KindNative, lit: fmt.Sprintf("msgpack(0x%02x)", c)}
	}
	if err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	return v, nil
}

func (v *msgpackValue) Elems() ([]Value, error) {
	if v.kind != KindSeq {
		return notSeq(v)
	}
	dec := msgpack.NewDecoder(bytes.NewReader(v.raw))
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	out := make([]Value, 0, max(n, 0))
	for i := 0; i < n; i++ {
		e, err := nextMsgpackValue(dec)
		if err != nil {
			return nil, atIndex(err, i)
		}
		out = append(out, e)
	}
	return out, nil
}

func (v *msgpackValue) Entries() ([]Entry, error) {
	if v.kind != KindMap {
		return notMap(v)
	}
	dec := msgpack.NewDecoder(bytes.NewReader(v.raw))
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	out := make([]Entry, 0, max(n, 0))
	for i := 0; i < n; i++ {
		k, err := nextMsgpackValue(dec)
		if err != nil {
			return nil, err
		}
		val, err := nextMsgpackValue(dec)
		if err != nil {
			return nil, atKey(err, k.Literal())
		}
		out = append(out, Entry{Key: k, Value: val})
	}
	return out, nil
}

func nextMsgpackValue(dec *msgpack.Decoder) (*msgpackValue, error) {
	raw, err := dec.DecodeRaw()
	if err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	return newMsgpackValue(raw)
}

func (v *msgpackValue) Decode(dst any) error {
	if err := msgpack.Unmarshal(v.raw, dst); err != nil {
		return newCodecError(ErrUnmarshal, err)
	}
	return nil
}
