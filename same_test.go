package morph

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSame_Native(t *testing.T) {
	n, err := EncodeNode[Same[int]](42)
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	if n.Kind() != KindNative || n.Native() != 42 {
		t.Errorf("EncodeAs(42) = %v %v, want native 42", n.Kind(), n.Native())
	}

	got, err := DecodeNode[int, Same[int]](UintNode(42))
	if err != nil || got != 42 {
		t.Errorf("DecodeAs(42) = %d, %v, want 42", got, err)
	}

	_, err = DecodeNode[int8, Same[int8]](UintNode(300))
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("DecodeAs(300) into int8 error = %v, want ErrOutOfRange", err)
	}

	_, err = DecodeNode[int, Same[int]](StringNode("42"))
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("DecodeAs(string) into int error = %v, want ErrInvalidShape", err)
	}
}

func TestSameAs(t *testing.T) {
	got, err := DecodeNode[string, SameAs[string]](StringNode("x"))
	if err != nil || got != "x" {
		t.Errorf("DecodeAs() = %q, %v, want x", got, err)
	}
}

// level implements the node override interfaces with a textual form.
type level int

func (l level) MarshalNode() (Node, error) {
	return StringNode(strings.Repeat("*", int(l))), nil
}

func (l *level) UnmarshalNode(v Value) error {
	if v.Kind() != KindString {
		return invalidShape(v, "stars")
	}
	*l = level(len(v.Text()))
	return nil
}

func TestSame_NodeOverride(t *testing.T) {
	n, err := EncodeNode[Same[level]](level(3))
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	if n.Kind() != KindString || n.Text() != "***" {
		t.Errorf("EncodeAs(3) = %v %q, want string ***", n.Kind(), n.Text())
	}

	got, err := DecodeNode[level, Same[level]](StringNode("**"))
	if err != nil || got != 2 {
		t.Errorf("DecodeAs(**) = %d, %v, want 2", got, err)
	}

	levels, err := DecodeNode[[]level, Slice[level, Same[level]]](SeqNode([]Node{StringNode("*"), StringNode("****")}))
	if err != nil || len(levels) != 2 || levels[1] != 4 {
		t.Errorf("DecodeAs() = %v, %v, want [1 4]", levels, err)
	}
}

func TestDefaultOnError(t *testing.T) {
	type lenient = DefaultOnError[time.Duration, DurationSecondsInt]

	got, err := DecodeNode[time.Duration, lenient](StringNode("soon"))
	if err != nil || got != 0 {
		t.Errorf("DecodeAs(soon) = %v, %v, want 0", got, err)
	}

	got, err = DecodeNode[time.Duration, lenient](UintNode(4))
	if err != nil || got != 4*time.Second {
		t.Errorf("DecodeAs(4) = %v, %v, want 4s", got, err)
	}

	if _, err := EncodeNode[lenient](-time.Second); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("EncodeAs(-1s) error = %v, want ErrOutOfRange", err)
	}
}

func TestWrap_Nil(t *testing.T) {
	n, err := WrapOf[DurationSecondsInt, time.Duration](nil).Node()
	if err != nil || n.Kind() != KindNull {
		t.Errorf("Node() = %v, %v, want null", n.Kind(), err)
	}
}

func TestAs_Node(t *testing.T) {
	a := AsOf[DurationSecondsString](90 * time.Second)
	n, err := a.Node()
	if err != nil || n.Text() != "90" {
		t.Errorf("Node() = %q, %v, want 90", n.Text(), err)
	}

	var back As[time.Duration, DurationSecondsString]
	if err := back.decode(NodeValue(n)); err != nil || back.Value != a.Value {
		t.Errorf("decode() = %v, %v, want %v", back.Value, err, a.Value)
	}
}
