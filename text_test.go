package morph

import (
	"errors"
	"net/netip"
	"reflect"
	"testing"
	"time"
)

type color int

func (c color) String() string {
	return [...]string{"red", "green", "blue"}[c]
}

func TestText_Encode(t *testing.T) {
	tests := []struct {
		name string
		node func() (Node, error)
		want string
	}{
		{"text marshaler", func() (Node, error) { return EncodeNode[Text[netip.Addr]](netip.MustParseAddr("10.0.0.1")) }, "10.0.0.1"},
		{"stringer", func() (Node, error) { return EncodeNode[Text[color]](color(2)) }, "blue"},
		{"int", func() (Node, error) { return EncodeNode[Text[int]](-7) }, "-7"},
		{"bool", func() (Node, error) { return EncodeNode[Text[bool]](true) }, "true"},
		{"float", func() (Node, error) { return EncodeNode[Text[float64]](2.5) }, "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.node()
			if err != nil {
				t.Fatalf("EncodeAs() error: %v", err)
			}
			if n.Kind() != KindString || n.Text() != tt.want {
				t.Errorf("EncodeAs() = %v %q, want string %q", n.Kind(), n.Text(), tt.want)
			}
		})
	}
}

func TestText_Decode(t *testing.T) {
	addr, err := DecodeNode[netip.Addr, Text[netip.Addr]](StringNode("192.168.1.1"))
	if err != nil || addr != netip.MustParseAddr("192.168.1.1") {
		t.Errorf("DecodeAs(addr) = %v, %v", addr, err)
	}

	i, err := DecodeNode[int16, Text[int16]](StringNode("-300"))
	if err != nil || i != -300 {
		t.Errorf("DecodeAs(-300) = %d, %v", i, err)
	}

	u, err := DecodeNode[uint, Text[uint]](StringNode("42"))
	if err != nil || u != 42 {
		t.Errorf("DecodeAs(42) = %d, %v", u, err)
	}

	b, err := DecodeNode[bool, Text[bool]](StringNode("true"))
	if err != nil || !b {
		t.Errorf("DecodeAs(true) = %v, %v", b, err)
	}

	f, err := DecodeNode[float64, Text[float64]](StringNode("2.5"))
	if err != nil || f != 2.5 {
		t.Errorf("DecodeAs(2.5) = %v, %v", f, err)
	}

	type name string
	s, err := DecodeNode[name, Text[name]](StringNode("ops"))
	if err != nil || s != "ops" {
		t.Errorf("DecodeAs(ops) = %q, %v", s, err)
	}
}

func TestText_DecodeDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"010", 10},
		{"08", 8},
		{"-007", -7},
		{"+09", 9},
		{"000", 0},
		{"0", 0},
	}
	for _, tt := range tests {
		got, err := DecodeNode[int, Text[int]](StringNode(tt.in))
		if err != nil {
			t.Errorf("DecodeAs(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeAs(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	u, err := DecodeNode[uint8, Text[uint8]](StringNode("0255"))
	if err != nil || u != 255 {
		t.Errorf("DecodeAs(0255) into uint8 = %d, %v, want 255", u, err)
	}

	for _, radix := range []string{"0x1f", "0o17", "0b101"} {
		if _, err := DecodeNode[int, Text[int]](StringNode(radix)); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("DecodeAs(%q) error = %v, want ErrInvalidValue", radix, err)
		}
	}
}

func TestText_DecodeErrors(t *testing.T) {
	if _, err := DecodeNode[int, Text[int]](UintNode(1)); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("DecodeAs(number) error = %v, want ErrInvalidShape", err)
	}
	if _, err := DecodeNode[int, Text[int]](StringNode("one")); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("DecodeAs(one) error = %v, want ErrInvalidValue", err)
	}
	if _, err := DecodeNode[int8, Text[int8]](StringNode("1000")); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("DecodeAs(1000) into int8 error = %v, want ErrOutOfRange", err)
	}
	if _, err := DecodeNode[netip.Addr, Text[netip.Addr]](StringNode("not-an-ip")); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("DecodeAs(not-an-ip) error = %v, want ErrInvalidValue", err)
	}
	if _, err := DecodeNode[[]int, Text[[]int]](StringNode("[1]")); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("DecodeAs() into slice error = %v, want ErrInvalidShape", err)
	}
}

func TestText_TimeRoundTrip(t *testing.T) {
	ts := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	n, err := EncodeNode[Text[time.Time]](ts)
	if err != nil || n.Text() != "2024-02-29T12:00:00Z" {
		t.Fatalf("EncodeAs() = %q, %v", n.Text(), err)
	}
	got, err := DecodeNode[time.Time, Text[time.Time]](n)
	if err != nil || !got.Equal(ts) {
		t.Errorf("DecodeAs() = %v, %v, want %v", got, err, ts)
	}
}

func TestNilAsEmptyString(t *testing.T) {
	type s = NilAsEmptyString[string]

	n, err := EncodeNode[s]((*string)(nil))
	if err != nil || n.Kind() != KindString || n.Text() != "" {
		t.Errorf("EncodeAs(nil) = %v %q, %v, want empty string", n.Kind(), n.Text(), err)
	}

	v := "x"
	n, err = EncodeNode[s](&v)
	if err != nil || n.Text() != "x" {
		t.Errorf("EncodeAs(&x) = %q, %v", n.Text(), err)
	}

	got, err := DecodeNode[*string, s](StringNode(""))
	if err != nil || got != nil {
		t.Errorf("DecodeAs(\"\") = %v, %v, want nil", got, err)
	}

	got, err = DecodeNode[*string, s](StringNode("y"))
	if err != nil || got == nil || *got != "y" {
		t.Errorf("DecodeAs(y) = %v, %v, want y", got, err)
	}

	if _, err := DecodeNode[*string, s](NullNode()); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("DecodeAs(null) error = %v, want ErrInvalidShape", err)
	}
}

func TestBytesOrString(t *testing.T) {
	n, err := EncodeNode[BytesOrString]([]byte("hi"))
	if err != nil || n.Kind() != KindBytes || string(n.Bytes()) != "hi" {
		t.Fatalf("EncodeAs() = %v %q, %v, want bytes hi", n.Kind(), n.Bytes(), err)
	}

	tests := []struct {
		name string
		in   Node
		want []byte
	}{
		{"bytes", BytesNode([]byte{1, 2}), []byte{1, 2}},
		{"string", StringNode("abc"), []byte("abc")},
		{"octets", SeqNode([]Node{UintNode(104), IntNode(105)}), []byte("hi")},
		{"empty", SeqNode(nil), []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeNode[[]byte, BytesOrString](tt.in)
			if err != nil {
				t.Fatalf("DecodeAs() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeAs() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := DecodeNode[[]byte, BytesOrString](SeqNode([]Node{UintNode(256)})); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("DecodeAs(256) error = %v, want ErrOutOfRange", err)
	}
	if _, err := DecodeNode[[]byte, BytesOrString](SeqNode([]Node{IntNode(-1)})); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("DecodeAs(-1) error = %v, want ErrOutOfRange", err)
	}
	if _, err := DecodeNode[[]byte, BytesOrString](BoolNode(true)); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("DecodeAs(bool) error = %v, want ErrInvalidShape", err)
	}
}

func TestBytesOrString_Copies(t *testing.T) {
	src := []byte{1, 2, 3}
	got, err := DecodeNode[[]byte, BytesOrString](BytesNode(src))
	if err != nil {
		t.Fatalf("DecodeAs() error: %v", err)
	}
	got[0] = 9
	if src[0] != 1 {
		t.Error("DecodeAs() should not alias the token's bytes")
	}
}
