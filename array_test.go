package morph

import (
	"errors"
	"testing"
	"time"
)

func TestArray_RoundTrip(t *testing.T) {
	type window = Array[[3]time.Duration, time.Duration, DurationSecondsInt]

	in := [3]time.Duration{time.Second, 2 * time.Second, 3 * time.Second}
	n, err := EncodeNode[window](in)
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	if !n.Fixed() || len(n.Elems()) != 3 {
		t.Fatalf("EncodeAs() fixed = %v len = %d, want fixed sequence of 3", n.Fixed(), len(n.Elems()))
	}

	got, err := DecodeNode[[3]time.Duration, window](n)
	if err != nil {
		t.Fatalf("DecodeAs() error: %v", err)
	}
	if got != in {
		t.Errorf("DecodeAs() = %v, want %v", got, in)
	}
}

func TestArray_Empty(t *testing.T) {
	type none = Array[[0]int, int, Same[int]]

	n, err := EncodeNode[none]([0]int{})
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	if n.Kind() != KindSeq || len(n.Elems()) != 0 {
		t.Errorf("EncodeAs() = %v with %d elems, want empty sequence", n.Kind(), len(n.Elems()))
	}

	if _, err := DecodeNode[[0]int, none](SeqNode(nil)); err != nil {
		t.Errorf("DecodeAs(empty) error: %v", err)
	}
	if _, err := DecodeNode[[0]int, none](SeqNode([]Node{IntNode(1)})); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("DecodeAs(one) error = %v, want ErrInvalidValue", err)
	}
}

func TestArray_WrongArity(t *testing.T) {
	type pair = Array[[2]int, int, Same[int]]

	_, err := DecodeNode[[2]int, pair](SeqNode([]Node{NativeNode(1), NativeNode(2), NativeNode(3)}))
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("DecodeAs() error = %v, want ErrInvalidValue", err)
	}
	if got, want := err.Error(), "invalid value: sequence of 3, expected sequence of 2"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	_, err = DecodeNode[[2]int, pair](MapNode(nil))
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("DecodeAs(map) error = %v, want ErrInvalidShape", err)
	}
}

func TestArray_ElementErrorPath(t *testing.T) {
	type pair = Array[[2]time.Duration, time.Duration, DurationSecondsInt]

	_, err := DecodeNode[[2]time.Duration, pair](SeqNode([]Node{UintNode(1), IntNode(-1)}))
	var de *DecodeError
	if !errors.As(err, &de) || de.Path != "[1]" {
		t.Errorf("DecodeAs() error = %v, want DecodeError at [1]", err)
	}
}
