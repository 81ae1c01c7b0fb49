package morph

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Text writes T as its textual form and parses it back from a string.
//
// Encoding prefers encoding.TextMarshaler, then fmt.Stringer, then %v.
// Decoding prefers encoding.TextUnmarshaler and otherwise converts the text
// to T's underlying string, bool, integer, or float kind.
type Text[T any] struct{}

func (Text[T]) EncodeAs(v T) (Node, error) {
	switch x := any(v).(type) {
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		if err != nil {
			return Node{}, &EncodeError{Err: ErrMarshal, Type: fmt.Sprintf("%T", v), Cause: err}
		}
		return StringNode(string(b)), nil
	case fmt.Stringer:
		return StringNode(x.String()), nil
	}
	return StringNode(fmt.Sprint(v)), nil
}

func (Text[T]) DecodeAs(v Value) (T, error) {
	var out T
	if v.Kind() != KindString {
		return out, invalidShape(v, "string")
	}
	s := v.Text()
	if u, ok := any(&out).(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(s)); err != nil {
			return out, &DecodeError{Err: ErrInvalidValue, Input: s, Expected: fmt.Sprintf("%T text", out), Cause: err}
		}
		return out, nil
	}
	if err := parseText(reflect.ValueOf(&out).Elem(), v); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// parseText converts text into target by its reflect kind.
func parseText(target reflect.Value, v Value) error {
	s := v.Text()
	expected := target.Type().String()
	fail := func(err error) error {
		return &DecodeError{Err: ErrInvalidValue, Input: s, Expected: expected, Cause: err}
	}
	switch target.Kind() {
	case reflect.String:
		target.SetString(s)
	case reflect.Bool:
		b, err := cast.ToBoolE(s)
		if err != nil {
			return fail(err)
		}
		target.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := cast.ToInt64E(decimalText(s))
		if err != nil {
			return fail(err)
		}
		if target.OverflowInt(i) {
			return &DecodeError{Err: ErrOutOfRange, Input: s, Expected: expected}
		}
		target.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := cast.ToUint64E(decimalText(s))
		if err != nil {
			return fail(err)
		}
		if target.OverflowUint(u) {
			return &DecodeError{Err: ErrOutOfRange, Input: s, Expected: expected}
		}
		target.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return fail(err)
		}
		if target.OverflowFloat(f) {
			return &DecodeError{Err: ErrOutOfRange, Input: s, Expected: expected}
		}
		target.SetFloat(f)
	default:
		return invalidShape(v, expected+" implementing encoding.TextUnmarshaler")
	}
	return nil
}

// decimalText strips leading zeros after an optional sign so cast reads the
// digits as base 10 instead of taking "010" for octal. Radix prefixes lose
// their leading zero and fail to parse.
func decimalText(s string) string {
	sign := ""
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	digits := strings.TrimLeft(s, "0")
	if digits == "" && s != "" {
		digits = "0"
	}
	return sign + digits
}

// NilAsEmptyString maps a nil pointer to "" and back; any other string is
// the pointee.
type NilAsEmptyString[T ~string] struct{}

func (NilAsEmptyString[T]) EncodeAs(v *T) (Node, error) {
	if v == nil {
		return StringNode(""), nil
	}
	return StringNode(string(*v)), nil
}

func (NilAsEmptyString[T]) DecodeAs(v Value) (*T, error) {
	if v.Kind() != KindString {
		return nil, invalidShape(v, "string")
	}
	if v.Text() == "" {
		return nil, nil
	}
	out := T(v.Text())
	return &out, nil
}

// BytesOrString writes bytes as a binary token and reads bytes, strings, or
// sequences of octets.
type BytesOrString struct{}

func (BytesOrString) EncodeAs(v []byte) (Node, error) {
	return BytesNode(v), nil
}

func (BytesOrString) DecodeAs(v Value) ([]byte, error) {
	switch v.Kind() {
	case KindBytes:
		return append([]byte{}, v.Bytes()...), nil
	case KindString:
		return []byte(v.Text()), nil
	case KindSeq:
		elems, err := v.Elems()
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(elems))
		for i, e := range elems {
			if e.Kind() != KindUint && e.Kind() != KindInt {
				return nil, atIndex(invalidShape(e, "octet"), i)
			}
			if e.Kind() == KindInt && e.Int() < 0 || e.Uint() > 0xff {
				return nil, atIndex(&DecodeError{Err: ErrOutOfRange, Input: e.Literal(), Expected: "octet"}, i)
			}
			out[i] = byte(e.Uint())
		}
		return out, nil
	}
	return nil, invalidShape(v, "bytes, string, or sequence of octets")
}
