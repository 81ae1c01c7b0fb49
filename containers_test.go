package morph

import (
	"errors"
	"reflect"
	"sort"
	"testing"
	"time"
)

type secondsSlice = Slice[time.Duration, DurationSecondsInt]

func TestSlice_Encode(t *testing.T) {
	n, err := EncodeNode[secondsSlice]([]time.Duration{time.Second, 1500 * time.Millisecond})
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	if n.Kind() != KindSeq || n.Fixed() {
		t.Fatalf("EncodeAs() kind = %v fixed = %v, want variable sequence", n.Kind(), n.Fixed())
	}
	elems := n.Elems()
	if len(elems) != 2 || elems[0].Uint() != 1 || elems[1].Uint() != 2 {
		t.Errorf("EncodeAs() elems = %+v, want [1 2]", elems)
	}
}

func TestSlice_EncodeNil(t *testing.T) {
	n, err := EncodeNode[secondsSlice]([]time.Duration(nil))
	if err != nil {
		t.Fatalf("EncodeAs(nil) error: %v", err)
	}
	if n.Kind() != KindSeq || len(n.Elems()) != 0 {
		t.Errorf("EncodeAs(nil) = %v with %d elems, want empty sequence", n.Kind(), len(n.Elems()))
	}
}

func TestSlice_Decode(t *testing.T) {
	got, err := DecodeNode[[]time.Duration, secondsSlice](SeqNode([]Node{UintNode(3), IntNode(4)}))
	if err != nil {
		t.Fatalf("DecodeAs() error: %v", err)
	}
	want := []time.Duration{3 * time.Second, 4 * time.Second}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeAs() = %v, want %v", got, want)
	}
}

func TestSlice_DecodeErrors(t *testing.T) {
	_, err := DecodeNode[[]time.Duration, secondsSlice](StringNode("1"))
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("DecodeAs(string) error = %v, want ErrInvalidShape", err)
	}

	_, err = DecodeNode[[]time.Duration, secondsSlice](SeqNode([]Node{UintNode(1), BoolNode(true)}))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("DecodeAs() error = %v, want DecodeError", err)
	}
	if de.Path != "[1]" || !errors.Is(err, ErrInvalidShape) {
		t.Errorf("DecodeAs() error path = %q err = %v, want [1] invalid shape", de.Path, err)
	}
}

func TestOption(t *testing.T) {
	type opt = Option[time.Duration, DurationSecondsInt]

	n, err := EncodeNode[opt]((*time.Duration)(nil))
	if err != nil || n.Kind() != KindNull {
		t.Fatalf("EncodeAs(nil) = %v, %v, want null", n.Kind(), err)
	}

	d := 2 * time.Second
	n, err = EncodeNode[opt](&d)
	if err != nil || n.Kind() != KindUint || n.Uint() != 2 {
		t.Fatalf("EncodeAs(&2s) = %v %d, %v, want uint 2", n.Kind(), n.Uint(), err)
	}

	got, err := DecodeNode[*time.Duration, opt](NullNode())
	if err != nil || got != nil {
		t.Errorf("DecodeAs(null) = %v, %v, want nil", got, err)
	}

	got, err = DecodeNode[*time.Duration, opt](UintNode(5))
	if err != nil || got == nil || *got != 5*time.Second {
		t.Errorf("DecodeAs(5) = %v, %v, want 5s", got, err)
	}

	_, err = DecodeNode[*time.Duration, opt](StringNode("5"))
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("DecodeAs(string) error = %v, want ErrInvalidShape", err)
	}
}

func TestSet(t *testing.T) {
	type set = Set[time.Duration, DurationSecondsInt]

	in := map[time.Duration]struct{}{time.Second: {}, time.Minute: {}}
	n, err := EncodeNode[set](in)
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	var secs []uint64
	for _, e := range n.Elems() {
		secs = append(secs, e.Uint())
	}
	sort.Slice(secs, func(i, j int) bool { return secs[i] < secs[j] })
	if !reflect.DeepEqual(secs, []uint64{1, 60}) {
		t.Errorf("EncodeAs() members = %v, want [1 60]", secs)
	}

	got, err := DecodeNode[map[time.Duration]struct{}, set](n)
	if err != nil {
		t.Fatalf("DecodeAs() error: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("DecodeAs() = %v, want %v", got, in)
	}

	dup, err := DecodeNode[map[time.Duration]struct{}, set](SeqNode([]Node{UintNode(1), UintNode(1)}))
	if err != nil || len(dup) != 1 {
		t.Errorf("DecodeAs(duplicates) = %v, %v, want one member", dup, err)
	}
}

func TestMap(t *testing.T) {
	type m = Map[string, time.Duration, Same[string], DurationSecondsString]

	in := map[string]time.Duration{"fetch": 5 * time.Second, "store": time.Minute}
	n, err := EncodeNode[m](in)
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	if n.Kind() != KindMap || len(n.Entries()) != 2 {
		t.Fatalf("EncodeAs() = %v with %d entries, want map of 2", n.Kind(), len(n.Entries()))
	}
	for _, e := range n.Entries() {
		if e.Value.Kind() != KindString {
			t.Errorf("entry %v value kind = %v, want string", e.Key.Native(), e.Value.Kind())
		}
	}

	got, err := DecodeNode[map[string]time.Duration, m](n)
	if err != nil {
		t.Fatalf("DecodeAs() error: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("DecodeAs() = %v, want %v", got, in)
	}
}

func TestMap_DecodeErrorPath(t *testing.T) {
	type m = Map[string, time.Duration, Same[string], DurationSecondsInt]

	_, err := DecodeNode[map[string]time.Duration, m](MapNode([]NodeEntry{
		{Key: StringNode("ok"), Value: UintNode(1)},
		{Key: StringNode("bad"), Value: StringNode("x")},
	}))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("DecodeAs() error = %v, want DecodeError", err)
	}
	if de.Path != `["bad"]` {
		t.Errorf("DecodeAs() path = %q, want %q", de.Path, `["bad"]`)
	}

	_, err = DecodeNode[map[string]time.Duration, m](SeqNode(nil))
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("DecodeAs(sequence) error = %v, want ErrInvalidShape", err)
	}
}

func TestMapAsPairs(t *testing.T) {
	type pairs = MapAsPairs[int, time.Duration, Same[int], DurationSecondsInt]

	in := map[int]time.Duration{1: time.Second, 2: 2 * time.Second}
	n, err := EncodeNode[pairs](in)
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	if n.Kind() != KindSeq || len(n.Elems()) != 2 {
		t.Fatalf("EncodeAs() = %v with %d elems, want sequence of 2", n.Kind(), len(n.Elems()))
	}
	for _, pair := range n.Elems() {
		if !pair.Fixed() || len(pair.Elems()) != 2 {
			t.Errorf("pair = %+v, want fixed sequence of 2", pair)
		}
	}

	got, err := DecodeNode[map[int]time.Duration, pairs](n)
	if err != nil {
		t.Fatalf("DecodeAs() error: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("DecodeAs() = %v, want %v", got, in)
	}

	_, err = DecodeNode[map[int]time.Duration, pairs](SeqNode([]Node{SeqNode([]Node{UintNode(1)})}))
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("DecodeAs(short pair) error = %v, want ErrInvalidValue", err)
	}
}

func TestPairsAsMap(t *testing.T) {
	type assoc = PairsAsMap[string, time.Duration, Same[string], DurationSecondsInt]

	in := []Pair[string, time.Duration]{
		{Key: "z", Value: time.Second},
		{Key: "a", Value: 2 * time.Second},
		{Key: "m", Value: 3 * time.Second},
	}
	n, err := EncodeNode[assoc](in)
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	var keys []any
	for _, e := range n.Entries() {
		keys = append(keys, e.Key.Native())
	}
	if !reflect.DeepEqual(keys, []any{"z", "a", "m"}) {
		t.Errorf("EncodeAs() key order = %v, want [z a m]", keys)
	}

	got, err := DecodeNode[[]Pair[string, time.Duration], assoc](n)
	if err != nil {
		t.Fatalf("DecodeAs() error: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("DecodeAs() = %v, want %v", got, in)
	}
}

func TestNestedContainers(t *testing.T) {
	type nested = Map[string, []*time.Duration, Same[string], Slice[*time.Duration, Option[time.Duration, DurationSecondsFloat]]]

	d := 1500 * time.Millisecond
	in := map[string][]*time.Duration{"steps": {&d, nil}}

	n, err := EncodeNode[nested](in)
	if err != nil {
		t.Fatalf("EncodeAs() error: %v", err)
	}
	steps := n.Entries()[0].Value.Elems()
	if steps[0].Kind() != KindFloat || steps[0].Float() != 2 || steps[1].Kind() != KindNull {
		t.Errorf("EncodeAs() steps = %+v, want [2.0 null]", steps)
	}

	got, err := DecodeNode[map[string][]*time.Duration, nested](n)
	if err != nil {
		t.Fatalf("DecodeAs() error: %v", err)
	}
	if len(got["steps"]) != 2 || *got["steps"][0] != 2*time.Second || got["steps"][1] != nil {
		t.Errorf("DecodeAs() = %v, want [2s nil]", got)
	}
}
