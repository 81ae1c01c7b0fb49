package morph

import (
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// CBOR major types.
const (
	cborUint   byte = 0
	cborNegInt byte = 1
	cborBytes  byte = 2
	cborText   byte = 3
	cborArray  byte = 4
	cborMap    byte = 5
	cborTag    byte = 6
	cborSimple byte = 7

	cborBreak byte = 0xff
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	if cborEnc, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(fmt.Sprintf("morph: cbor encode mode: %v", err))
	}
	if cborDec, err = (cbor.DecOptions{}).DecMode(); err != nil {
		panic(fmt.Sprintf("morph: cbor decode mode: %v", err))
	}
}

// MarshalCBOR renders the strategy output as a CBOR data item.
func (w Wrap[T, S]) MarshalCBOR() ([]byte, error) {
	n, err := w.Node()
	if err != nil {
		return nil, err
	}
	return appendCBOR(nil, n)
}

// MarshalCBOR renders the strategy output as a CBOR data item.
func (a As[T, S]) MarshalCBOR() ([]byte, error) {
	return WrapOf[S](&a.Value).MarshalCBOR()
}

// UnmarshalCBOR decodes the strategy's CBOR shape into the carried value.
func (a *As[T, S]) UnmarshalCBOR(data []byte) error {
	v, err := newCBORValue(data)
	if err != nil {
		return err
	}
	return a.decode(v)
}

// appendCBOR writes container heads itself so entries keep strategy order;
// leaves go through the core deterministic encoder.
func appendCBOR(buf []byte, n Node) ([]byte, error) {
	switch n.Kind() {
	case KindSeq:
		buf = appendCBORHead(buf, cborArray, uint64(len(n.Elems())))
		for i, e := range n.Elems() {
			var err error
			if buf, err = appendCBOR(buf, e); err != nil {
				return nil, atIndex(err, i)
			}
		}
		return buf, nil
	case KindMap:
		buf = appendCBORHead(buf, cborMap, uint64(len(n.Entries())))
		for _, e := range n.Entries() {
			var err error
			if buf, err = appendCBOR(buf, e.Key); err != nil {
				return nil, err
			}
			if buf, err = appendCBOR(buf, e.Value); err != nil {
				return nil, atKey(err, e.Key.Text())
			}
		}
		return buf, nil
	case KindBytes:
		b := n.Bytes()
		buf = appendCBORHead(buf, cborBytes, uint64(len(b)))
		return append(buf, b...), nil
	}
	leaf, err := n.plain(nil)
	if err != nil {
		return nil, err
	}
	b, err := cborEnc.Marshal(leaf)
	if err != nil {
		return nil, &EncodeError{Err: ErrMarshal, Type: fmt.Sprintf("%T", leaf), Cause: err}
	}
	return append(buf, b...), nil
}

func appendCBORHead(buf []byte, major byte, n uint64) []byte {
	m := major << 5
	switch {
	case n < 24:
		return append(buf, m|byte(n))
	case n <= 0xff:
		return append(buf, m|24, byte(n))
	case n <= 0xffff:
		return binary.BigEndian.AppendUint16(append(buf, m|25), uint16(n))
	case n <= 0xffffffff:
		return binary.BigEndian.AppendUint32(append(buf, m|26), uint32(n))
	default:
		return binary.BigEndian.AppendUint64(append(buf, m|27), n)
	}
}

// readCBORHead parses an item head; definite is false for indefinite lengths.
func readCBORHead(data []byte) (major byte, n uint64, definite bool, size int, err error) {
	if len(data) == 0 {
		return 0, 0, false, 0, fmt.Errorf("unexpected end of CBOR data")
	}
	major = data[0] >> 5
	ai := data[0] & 0x1f
	switch {
	case ai < 24:
		return major, uint64(ai), true, 1, nil
	case ai == 31:
		return major, 0, false, 1, nil
	case ai > 27:
		return 0, 0, false, 0, fmt.Errorf("malformed CBOR head 0x%02x", data[0])
	}
	width := 1 << (ai - 24)
	if len(data) < 1+width {
		return 0, 0, false, 0, fmt.Errorf("unexpected end of CBOR data")
	}
	switch width {
	case 1:
		n = uint64(data[1])
	case 2:
		n = uint64(binary.BigEndian.Uint16(data[1:]))
	case 4:
		n = uint64(binary.BigEndian.Uint32(data[1:]))
	default:
		n = binary.BigEndian.Uint64(data[1:])
	}
	return major, n, true, 1 + width, nil
}

// cborValue is one raw CBOR data item, classified by its major type.
type cborValue struct {
	scalar
	raw cbor.RawMessage
}

func newCBORValue(data []byte) (*cborValue, error) {
	if len(data) == 0 {
		return nil, newCodecError(ErrUnmarshal, fmt.Errorf("empty CBOR item"))
	}
	v := &cborValue{raw: data}
	major := data[0] >> 5
	ai := data[0] & 0x1f
	var err error
	switch major {
	case cborUint:
		var u uint64
		err = cborDec.Unmarshal(data, &u)
		v.scalar = uintScalar(u)
	case cborNegInt:
		var i int64
		if cborDec.Unmarshal(data, &i) == nil {
			v.scalar = intScalar(i)
		} else {
			v.scalar = scalar{kind: KindNative, lit: "cbor negative bignum"}
		}
	case cborBytes:
		var b []byte
		err = cborDec.Unmarshal(data, &b)
		v.scalar = bytesScalar(b)
	case cborText:
		var s string
		err = cborDec.Unmarshal(data, &s)
		v.scalar = stringScalar(s)
	case cborArray:
		v.scalar = containerScalar(KindSeq)
	case cborMap:
		v.scalar = containerScalar(KindMap)
	case cborTag:
		var t cbor.RawTag
		err = cborDec.Unmarshal(data, &t)
		v.scalar = scalar{kind: KindNative, lit: fmt.Sprintf("cbor tag %d", t.Number)}
	case cborSimple:
		switch ai {
		case 20, 21:
			v.scalar = boolScalar(ai == 21)
		case 22, 23:
			v.scalar = nullScalar()
		case 25, 26, 27:
			var f float64
			err = cborDec.Unmarshal(data, &f)
			v.scalar = floatScalar(f)
		default:
			v.scalar = scalar{kind: KindNative, lit: fmt.Sprintf("cbor simple %d", ai)}
		}
	}
	if err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	return v, nil
}

func (v *cborValue) Elems() ([]Value, error) {
	if v.kind != KindSeq {
		return notSeq(v)
	}
	var items []cbor.RawMessage
	if err := cborDec.Unmarshal(v.raw, &items); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	out := make([]Value, len(items))
	for i, it := range items {
		e, err := newCBORValue(it)
		if err != nil {
			return nil, atIndex(err, i)
		}
		out[i] = e
	}
	return out, nil
}

func (v *cborValue) Entries() ([]Entry, error) {
	if v.kind != KindMap {
		return notMap(v)
	}
	items, err := splitCBORMap(v.raw)
	if err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	out := make([]Entry, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		k, err := newCBORValue(items[i])
		if err != nil {
			return nil, err
		}
		val, err := newCBORValue(items[i+1])
		if err != nil {
			return nil, atKey(err, k.Literal())
		}
		out = append(out, Entry{Key: k, Value: val})
	}
	return out, nil
}

// splitCBORMap returns the raw keys and values of a map, alternating, in wire
// order, for both definite and indefinite lengths. Decoding into a Go map
// would lose that order.
func splitCBORMap(data []byte) ([]cbor.RawMessage, error) {
	_, n, definite, size, err := readCBORHead(data)
	if err != nil {
		return nil, err
	}
	rest := data[size:]
	var items []cbor.RawMessage
	for i := uint64(0); !definite || i < 2*n; i++ {
		if !definite && len(rest) > 0 && rest[0] == cborBreak {
			break
		}
		var item cbor.RawMessage
		if rest, err = cborDec.UnmarshalFirst(rest, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items)%2 != 0 {
		return nil, fmt.Errorf("odd number of map items")
	}
	return items, nil
}

func (v *cborValue) Decode(dst any) error {
	if err := cborDec.Unmarshal(v.raw, dst); err != nil {
		return newCodecError(ErrUnmarshal, err)
	}
	return nil
}
