package morph

import (
	"errors"
	"testing"
	"time"
)

func TestTuple1As(t *testing.T) {
	type single = Tuple1As[time.Duration, DurationSecondsInt]

	n, err := EncodeNode[single](Tuple1[time.Duration]{V0: time.Minute})
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	if !n.Fixed() || len(n.Elems()) != 1 || n.Elems()[0].Uint() != 60 {
		t.Errorf("EncodeAs() = %+v, want fixed [60]", n)
	}

	got, err := DecodeNode[Tuple1[time.Duration], single](n)
	if err != nil || got.V0 != time.Minute {
		t.Errorf("DecodeAs() = %v, %v, want {1m}", got, err)
	}
}

func TestTuple3As(t *testing.T) {
	type triple = Tuple3As[string, time.Duration, *int, Same[string], DurationSecondsFloat, Option[int, Same[int]]]

	in := Tuple3[string, time.Duration, *int]{V0: "retry", V1: 1500 * time.Millisecond}
	n, err := EncodeNode[triple](in)
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	elems := n.Elems()
	if len(elems) != 3 || elems[1].Float() != 2 || elems[2].Kind() != KindNull {
		t.Fatalf("EncodeAs() elems = %+v, want [retry 2.0 null]", elems)
	}

	got, err := DecodeNode[Tuple3[string, time.Duration, *int], triple](n)
	if err != nil {
		t.Fatalf("DecodeAs() error: %v", err)
	}
	if got.V0 != "retry" || got.V1 != 2*time.Second || got.V2 != nil {
		t.Errorf("DecodeAs() = %+v, want {retry 2s nil}", got)
	}
}

func TestTuple_Arity(t *testing.T) {
	type pair = Tuple2As[int, int, Same[int], Same[int]]

	for _, n := range []Node{
		SeqNode([]Node{NativeNode(1)}),
		SeqNode([]Node{NativeNode(1), NativeNode(2), NativeNode(3)}),
	} {
		if _, err := DecodeNode[Tuple2[int, int], pair](n); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("DecodeAs(%d elems) error = %v, want ErrInvalidValue", len(n.Elems()), err)
		}
	}

	if _, err := DecodeNode[Tuple2[int, int], pair](StringNode("1,2")); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("DecodeAs(string) error = %v, want ErrInvalidShape", err)
	}
}

func TestTuple_PositionError(t *testing.T) {
	type pair = Tuple2As[time.Duration, time.Duration, DurationSecondsInt, DurationSecondsInt]

	_, err := DecodeNode[Tuple2[time.Duration, time.Duration], pair](SeqNode([]Node{UintNode(1), StringNode("2")}))
	var de *DecodeError
	if !errors.As(err, &de) || de.Path != "[1]" {
		t.Errorf("DecodeAs() error = %v, want DecodeError at [1]", err)
	}
}

func TestTuple16As(t *testing.T) {
	type s = Same[int]
	type wide = Tuple16As[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int,
		s, s, s, s, s, s, s, s, s, s, s, s, s, s, s, s]
	type values = Tuple16[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int]

	in := values{V0: 0, V1: 1, V7: 7, V15: 15}
	n, err := EncodeNode[wide](in)
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	if len(n.Elems()) != 16 {
		t.Fatalf("EncodeAs() len = %d, want 16", len(n.Elems()))
	}

	got, err := DecodeNode[values, wide](n)
	if err != nil {
		t.Fatalf("DecodeAs() error: %v", err)
	}
	if got != in {
		t.Errorf("DecodeAs() = %+v, want %+v", got, in)
	}
}
