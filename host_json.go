package morph

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// MarshalJSON renders the strategy output as JSON.
func (w Wrap[T, S]) MarshalJSON() ([]byte, error) {
	n, err := w.Node()
	if err != nil {
		return nil, err
	}
	return appendJSON(nil, n)
}

// MarshalJSON renders the strategy output as JSON.
func (a As[T, S]) MarshalJSON() ([]byte, error) {
	return WrapOf[S](&a.Value).MarshalJSON()
}

// UnmarshalJSON decodes the strategy's JSON shape into the carried value.
func (a *As[T, S]) UnmarshalJSON(data []byte) error {
	v, err := newJSONValue(data)
	if err != nil {
		return err
	}
	return a.decode(v)
}

func appendJSON(buf []byte, n Node) ([]byte, error) {
	switch n.Kind() {
	case KindNull:
		return append(buf, "null"...), nil
	case KindSeq:
		buf = append(buf, '[')
		for i, e := range n.Elems() {
			if i > 0 {
				buf = append(buf, ',')
			}
			var err error
			if buf, err = appendJSON(buf, e); err != nil {
				return nil, atIndex(err, i)
			}
		}
		return append(buf, ']'), nil
	case KindMap:
		buf = append(buf, '{')
		for i, e := range n.Entries() {
			if i > 0 {
				buf = append(buf, ',')
			}
			key, err := jsonKey(e.Key)
			if err != nil {
				return nil, err
			}
			buf = append(buf, key...)
			buf = append(buf, ':')
			if buf, err = appendJSON(buf, e.Value); err != nil {
				return nil, atKey(err, strings.Trim(string(key), `"`))
			}
		}
		return append(buf, '}'), nil
	case KindBytes:
		// JSON has no binary token; bytes go out as a sequence of octets.
		buf = append(buf, '[')
		for i, b := range n.Bytes() {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendUint(buf, uint64(b), 10)
		}
		return append(buf, ']'), nil
	}
	leaf, err := n.plain(nil)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(leaf)
	if err != nil {
		return nil, &EncodeError{Err: ErrMarshal, Type: fmt.Sprintf("%T", leaf), Cause: err}
	}
	return append(buf, b...), nil
}

// jsonKey renders a map key node as a JSON object key. Strings pass through;
// numbers and booleans are quoted; anything else has no JSON key form.
func jsonKey(n Node) ([]byte, error) {
	switch n.Kind() {
	case KindString:
		return json.Marshal(n.Text())
	case KindBool:
		return json.Marshal(strconv.FormatBool(n.Bool()))
	case KindInt:
		return json.Marshal(strconv.FormatInt(n.Int(), 10))
	case KindUint:
		return json.Marshal(strconv.FormatUint(n.Uint(), 10))
	case KindFloat:
		return json.Marshal(strconv.FormatFloat(n.Float(), 'g', -1, 64))
	case KindNative:
		b, err := json.Marshal(n.Native())
		if err != nil {
			return nil, &EncodeError{Err: ErrInvalidKey, Type: fmt.Sprintf("%T", n.Native()), Cause: err}
		}
		switch {
		case len(b) > 0 && b[0] == '"':
			return b, nil
		case len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')):
			return json.Marshal(string(b))
		}
		return nil, &EncodeError{Err: ErrInvalidKey, Type: fmt.Sprintf("%T", n.Native())}
	}
	return nil, &EncodeError{Err: ErrInvalidKey, Type: n.Kind().String()}
}

// jsonValue is a lazily split JSON token.
type jsonValue struct {
	scalar
	raw json.RawMessage
}

func newJSONValue(data []byte) (*jsonValue, error) {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 {
		return nil, newCodecError(ErrUnmarshal, fmt.Errorf("empty JSON value"))
	}
	v := &jsonValue{raw: raw}
	switch raw[0] {
	case 'n':
		v.scalar = nullScalar()
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, newCodecError(ErrUnmarshal, err)
		}
		v.scalar = boolScalar(b)
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, newCodecError(ErrUnmarshal, err)
		}
		v.scalar = stringScalar(s)
	case '[':
		v.scalar = containerScalar(KindSeq)
	case '{':
		v.scalar = containerScalar(KindMap)
	default:
		sc, err := jsonNumber(string(raw))
		if err != nil {
			return nil, err
		}
		v.scalar = sc
	}
	return v, nil
}

// jsonNumber classifies a number literal: fractions and exponents are floats,
// a leading minus is signed, everything else unsigned. Integers too wide for
// 64 bits fall back to float.
func jsonNumber(text string) (scalar, error) {
	var sc scalar
	switch {
	case strings.ContainsAny(text, ".eE"):
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return sc, newCodecError(ErrUnmarshal, err)
		}
		sc = floatScalar(f)
	case strings.HasPrefix(text, "-"):
		i, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			sc = intScalar(i)
			break
		}
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return sc, newCodecError(ErrUnmarshal, err)
		}
		sc = floatScalar(f)
	default:
		u, err := strconv.ParseUint(text, 10, 64)
		if err == nil {
			sc = uintScalar(u)
			break
		}
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return sc, newCodecError(ErrUnmarshal, err)
		}
		sc = floatScalar(f)
	}
	sc.lit = text
	return sc, nil
}

func (v *jsonValue) Elems() ([]Value, error) {
	if v.kind != KindSeq {
		return notSeq(v)
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(v.raw, &raws); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	out := make([]Value, len(raws))
	for i, r := range raws {
		e, err := newJSONValue(r)
		if err != nil {
			return nil, atIndex(err, i)
		}
		out[i] = e
	}
	return out, nil
}

// Entries reads object members in wire order with the decoder's token
// stream, keeping each value raw until a strategy asks for it.
func (v *jsonValue) Entries() ([]Entry, error) {
	if v.kind != KindMap {
		return notMap(v)
	}
	dec := json.NewDecoder(bytes.NewReader(v.raw))
	if _, err := dec.Token(); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	var out []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, newCodecError(ErrUnmarshal, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, newCodecError(ErrUnmarshal, fmt.Errorf("object key is %T", tok))
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, atKey(newCodecError(ErrUnmarshal, err), key)
		}
		val, err := newJSONValue(raw)
		if err != nil {
			return nil, atKey(err, key)
		}
		quoted, err := json.Marshal(key)
		if err != nil {
			return nil, newCodecError(ErrUnmarshal, err)
		}
		out = append(out, Entry{Key: &jsonKeyValue{scalar: stringScalar(key), raw: quoted}, Value: val})
	}
	if _, err := dec.Token(); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	return out, nil
}

func (v *jsonValue) Decode(dst any) error {
	if err := json.Unmarshal(v.raw, dst); err != nil {
		return newCodecError(ErrUnmarshal, err)
	}
	return nil
}

// jsonKeyValue is an object key. JSON keys are always strings; natural
// decoding also accepts the unquoted content so numeric keys round-trip.
type jsonKeyValue struct {
	scalar
	raw json.RawMessage
}

func (v *jsonKeyValue) Elems() ([]Value, error)   { return notSeq(v) }
func (v *jsonKeyValue) Entries() ([]Entry, error) { return notMap(v) }

func (v *jsonKeyValue) Decode(dst any) error {
	err := json.Unmarshal(v.raw, dst)
	if err == nil {
		return nil
	}
	if json.Unmarshal([]byte(v.s), dst) == nil {
		return nil
	}
	return newCodecError(ErrUnmarshal, err)
}
