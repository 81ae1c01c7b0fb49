package morph

import (
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestAppendJSON(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"null", NullNode(), "null"},
		{"bool", BoolNode(true), "true"},
		{"int", IntNode(-3), "-3"},
		{"uint", UintNode(3), "3"},
		{"float", FloatNode(2.5), "2.5"},
		{"string", StringNode(`a"b`), `"a\"b"`},
		{"bytes", BytesNode([]byte{0, 255}), "[0,255]"},
		{"native", NativeNode(map[string]int{"a": 1}), `{"a":1}`},
		{"sequence", SeqNode([]Node{UintNode(1), NullNode()}), "[1,null]"},
		{"tuple", TupleNode([]Node{StringNode("x"), BoolNode(false)}), `["x",false]`},
		{"ordered map", MapNode([]NodeEntry{
			{Key: StringNode("z"), Value: UintNode(1)},
			{Key: StringNode("a"), Value: UintNode(2)},
		}), `{"z":1,"a":2}`},
		{"number keys", MapNode([]NodeEntry{
			{Key: IntNode(-1), Value: NullNode()},
			{Key: UintNode(2), Value: NullNode()},
			{Key: BoolNode(true), Value: NullNode()},
			{Key: NativeNode(7), Value: NullNode()},
		}), `{"-1":null,"2":null,"true":null,"7":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := appendJSON(nil, tt.node)
			if err != nil {
				t.Fatalf("appendJSON() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("appendJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAppendJSON_InvalidKey(t *testing.T) {
	_, err := appendJSON(nil, MapNode([]NodeEntry{
		{Key: SeqNode(nil), Value: NullNode()},
	}))
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("appendJSON() error = %v, want ErrInvalidKey", err)
	}
}

func TestJSONNumber(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
	}{
		{"0", KindUint},
		{"18446744073709551615", KindUint},
		{"-1", KindInt},
		{"1.0", KindFloat},
		{"1e3", KindFloat},
		{"18446744073709551616", KindFloat},
		{"-9223372036854775809", KindFloat},
	}

	for _, tt := range tests {
		sc, err := jsonNumber(tt.text)
		if err != nil {
			t.Fatalf("jsonNumber(%s) error: %v", tt.text, err)
		}
		if sc.kind != tt.kind {
			t.Errorf("jsonNumber(%s) kind = %v, want %v", tt.text, sc.kind, tt.kind)
		}
		if sc.lit != tt.text {
			t.Errorf("jsonNumber(%s) literal = %q", tt.text, sc.lit)
		}
	}
}

func TestJSONValue_EntriesRaw(t *testing.T) {
	v, err := newJSONValue([]byte(` { "z" : 1, "b" : [1, {"x": "}"}] , "a\"q":"v\\" , "c":{} } `))
	if err != nil {
		t.Fatalf("newJSONValue() error: %v", err)
	}
	entries, err := v.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	want := []struct {
		key  string
		kind Kind
	}{
		{"z", KindUint},
		{"b", KindSeq},
		{`a"q`, KindString},
		{"c", KindMap},
	}
	if len(entries) != len(want) {
		t.Fatalf("Entries() = %d members, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Key.Text() != w.key || entries[i].Value.Kind() != w.kind {
			t.Errorf("member %d = %q (%v), want %q (%v)", i, entries[i].Key.Text(), entries[i].Value.Kind(), w.key, w.kind)
		}
	}
	if got := entries[2].Value.Text(); got != `v\` {
		t.Errorf("member a\"q = %q, want %q", got, `v\`)
	}

	elems, err := entries[1].Value.Elems()
	if err != nil || len(elems) != 2 {
		t.Fatalf("Elems() = %v, %v", elems, err)
	}
	inner, err := elems[1].Entries()
	if err != nil || len(inner) != 1 || inner[0].Value.Text() != "}" {
		t.Errorf("nested Entries() = %v, %v", inner, err)
	}

	empty, err := newJSONValue([]byte("{}"))
	if err != nil {
		t.Fatalf("newJSONValue({}) error: %v", err)
	}
	if got, err := empty.Entries(); err != nil || len(got) != 0 {
		t.Errorf("Entries({}) = %v, %v", got, err)
	}
}

func TestJSONValue_Entries(t *testing.T) {
	v, err := newJSONValue([]byte(`{"2":"b","1":"a"}`))
	if err != nil {
		t.Fatalf("newJSONValue() error: %v", err)
	}
	entries, err := v.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	if entries[0].Key.Text() != "2" || entries[1].Key.Text() != "1" {
		t.Errorf("Entries() should keep wire order")
	}

	var k int
	if err := entries[0].Key.Decode(&k); err != nil || k != 2 {
		t.Errorf("key Decode(&int) = %d, %v, want 2", k, err)
	}
}

func TestJSONValue_MapIntKeys(t *testing.T) {
	type m = Map[int, string, Same[int], Same[string]]

	var carrier As[map[int]string, m]
	if err := json.Unmarshal([]byte(`{"1":"a","20":"b"}`), &carrier); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if carrier.Value[1] != "a" || carrier.Value[20] != "b" {
		t.Errorf("Unmarshal() = %v", carrier.Value)
	}
}

func TestJSON_AsInStruct(t *testing.T) {
	type job struct {
		Timeout As[time.Duration, DurationSecondsInt]                         `json:"timeout"`
		Backoff As[*time.Duration, Option[time.Duration, DurationSecondsInt]] `json:"backoff"`
	}

	data, err := json.Marshal(job{Timeout: AsOf[DurationSecondsInt](2 * time.Second)})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `{"timeout":2,"backoff":null}` {
		t.Errorf("Marshal() = %s", data)
	}

	var got job
	if err := json.Unmarshal([]byte(`{"timeout":7,"backoff":3}`), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.Timeout.Value != 7*time.Second || got.Backoff.Value == nil || *got.Backoff.Value != 3*time.Second {
		t.Errorf("Unmarshal() = %+v", got)
	}
}

func TestJSON_ErrorPath(t *testing.T) {
	var carrier As[[]time.Duration, Slice[time.Duration, DurationSecondsInt]]
	err := json.Unmarshal([]byte(`[1, 2, "three"]`), &carrier)

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Unmarshal() error = %v, want DecodeError", err)
	}
	if de.Path != "[2]" || de.Input != "three" {
		t.Errorf("DecodeError path = %q input = %q, want [2] three", de.Path, de.Input)
	}
}
