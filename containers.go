package morph

import "fmt"

// Option applies ES to the pointee of *E. A nil pointer encodes as null and
// null decodes to nil.
type Option[E any, ES Strategy[E]] struct{}

func (Option[E, ES]) EncodeAs(v *E) (Node, error) {
	if v == nil {
		return NullNode(), nil
	}
	return WrapOf[ES](v).Node()
}

func (Option[E, ES]) DecodeAs(v Value) (*E, error) {
	if v.Kind() == KindNull {
		return nil, nil
	}
	var es ES
	out, err := es.DecodeAs(v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Slice applies ES to every element of []E. A nil slice encodes as an empty
// sequence.
type Slice[E any, ES Strategy[E]] struct{}

func (Slice[E, ES]) EncodeAs(v []E) (Node, error) {
	elems, err := encodeElems[E, ES](v)
	if err != nil {
		return Node{}, err
	}
	return SeqNode(elems), nil
}

func (Slice[E, ES]) DecodeAs(v Value) ([]E, error) {
	if v.Kind() != KindSeq {
		return nil, invalidShape(v, "sequence")
	}
	elems, err := v.Elems()
	if err != nil {
		return nil, err
	}
	return decodeElems[E, ES](elems)
}

// Set applies ES to every member of a set represented as map[E]struct{}.
// Members are emitted in the map's range order.
type Set[E comparable, ES Strategy[E]] struct{}

func (Set[E, ES]) EncodeAs(v map[E]struct{}) (Node, error) {
	elems := make([]Node, 0, len(v))
	i := 0
	for e := range v {
		n, err := WrapOf[ES](&e).Node()
		if err != nil {
			return Node{}, atIndex(err, i)
		}
		elems = append(elems, n)
		i++
	}
	return SeqNode(elems), nil
}

func (Set[E, ES]) DecodeAs(v Value) (map[E]struct{}, error) {
	if v.Kind() != KindSeq {
		return nil, invalidShape(v, "sequence")
	}
	elems, err := v.Elems()
	if err != nil {
		return nil, err
	}
	var es ES
	out := make(map[E]struct{}, len(elems))
	for i, ev := range elems {
		e, err := es.DecodeAs(ev)
		if err != nil {
			return nil, atIndex(err, i)
		}
		out[e] = struct{}{}
	}
	return out, nil
}

// Map applies KS to keys and VS to values independently.
type Map[K comparable, V any, KS Strategy[K], VS Strategy[V]] struct{}

func (Map[K, V, KS, VS]) EncodeAs(v map[K]V) (Node, error) {
	entries := make([]NodeEntry, 0, len(v))
	for k, val := range v {
		kn, err := WrapOf[KS](&k).Node()
		if err != nil {
			return Node{}, atKey(err, fmt.Sprint(k))
		}
		vn, err := WrapOf[VS](&val).Node()
		if err != nil {
			return Node{}, atKey(err, fmt.Sprint(k))
		}
		entries = append(entries, NodeEntry{Key: kn, Value: vn})
	}
	return MapNode(entries), nil
}

func (Map[K, V, KS, VS]) DecodeAs(v Value) (map[K]V, error) {
	if v.Kind() != KindMap {
		return nil, invalidShape(v, "map")
	}
	entries, err := v.Entries()
	if err != nil {
		return nil, err
	}
	var ks KS
	var vs VS
	out := make(map[K]V, len(entries))
	for _, e := range entries {
		k, err := ks.DecodeAs(e.Key)
		if err != nil {
			return nil, atKey(err, e.Key.Literal())
		}
		val, err := vs.DecodeAs(e.Value)
		if err != nil {
			return nil, atKey(err, e.Key.Literal())
		}
		out[k] = val
	}
	return out, nil
}

// Pair is one key/value couple of an ordered association list.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MapAsPairs encodes a map as a sequence of two-element tuples, for formats
// whose maps cannot carry the key type.
type MapAsPairs[K comparable, V any, KS Strategy[K], VS Strategy[V]] struct{}

func (MapAsPairs[K, V, KS, VS]) EncodeAs(v map[K]V) (Node, error) {
	elems := make([]Node, 0, len(v))
	for k, val := range v {
		pair, err := encodePair[K, V, KS, VS](&k, &val)
		if err != nil {
			return Node{}, atKey(err, fmt.Sprint(k))
		}
		elems = append(elems, pair)
	}
	return SeqNode(elems), nil
}

func (MapAsPairs[K, V, KS, VS]) DecodeAs(v Value) (map[K]V, error) {
	if v.Kind() != KindSeq {
		return nil, invalidShape(v, "sequence of pairs")
	}
	elems, err := v.Elems()
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, len(elems))
	for i, ev := range elems {
		k, val, err := decodePair[K, V, KS, VS](ev)
		if err != nil {
			return nil, atIndex(err, i)
		}
		out[k] = val
	}
	return out, nil
}

// PairsAsMap encodes an association list as a map, in slice order, and
// decodes a map back into wire order.
type PairsAsMap[K, V any, KS Strategy[K], VS Strategy[V]] struct{}

func (PairsAsMap[K, V, KS, VS]) EncodeAs(v []Pair[K, V]) (Node, error) {
	entries := make([]NodeEntry, len(v))
	for i := range v {
		kn, err := WrapOf[KS](&v[i].Key).Node()
		if err != nil {
			return Node{}, atIndex(err, i)
		}
		vn, err := WrapOf[VS](&v[i].Value).Node()
		if err != nil {
			return Node{}, atIndex(err, i)
		}
		entries[i] = NodeEntry{Key: kn, Value: vn}
	}
	return MapNode(entries), nil
}

func (PairsAsMap[K, V, KS, VS]) DecodeAs(v Value) ([]Pair[K, V], error) {
	if v.Kind() != KindMap {
		return nil, invalidShape(v, "map")
	}
	entries, err := v.Entries()
	if err != nil {
		return nil, err
	}
	var ks KS
	var vs VS
	out := make([]Pair[K, V], len(entries))
	for i, e := range entries {
		if out[i].Key, err = ks.DecodeAs(e.Key); err != nil {
			return nil, atKey(err, e.Key.Literal())
		}
		if out[i].Value, err = vs.DecodeAs(e.Value); err != nil {
			return nil, atKey(err, e.Key.Literal())
		}
	}
	return out, nil
}

func encodePair[K, V any, KS Strategy[K], VS Strategy[V]](k *K, v *V) (Node, error) {
	kn, err := WrapOf[KS](k).Node()
	if err != nil {
		return Node{}, err
	}
	vn, err := WrapOf[VS](v).Node()
	if err != nil {
		return Node{}, err
	}
	return TupleNode([]Node{kn, vn}), nil
}

func decodePair[K, V any, KS Strategy[K], VS Strategy[V]](v Value) (K, V, error) {
	var k K
	var val V
	elems, err := fixedElems(v, 2)
	if err != nil {
		return k, val, err
	}
	var ks KS
	var vs VS
	if k, err = ks.DecodeAs(elems[0]); err != nil {
		return k, val, atIndex(err, 0)
	}
	if val, err = vs.DecodeAs(elems[1]); err != nil {
		return k, val, atIndex(err, 1)
	}
	return k, val, nil
}

// encodeElems runs ES over each element in index order.
func encodeElems[E any, ES Strategy[E]](v []E) ([]Node, error) {
	elems := make([]Node, len(v))
	for i := range v {
		n, err := WrapOf[ES](&v[i]).Node()
		if err != nil {
			return nil, atIndex(err, i)
		}
		elems[i] = n
	}
	return elems, nil
}

// decodeElems decodes every element or none; the first failure aborts.
func decodeElems[E any, ES Strategy[E]](elems []Value) ([]E, error) {
	var es ES
	out := make([]E, len(elems))
	for i, ev := range elems {
		e, err := es.DecodeAs(ev)
		if err != nil {
			return nil, atIndex(err, i)
		}
		out[i] = e
	}
	return out, nil
}

// fixedElems splits a sequence token and checks its arity.
func fixedElems(v Value, arity int) ([]Value, error) {
	if v.Kind() != KindSeq {
		return nil, invalidShape(v, fmt.Sprintf("sequence of %d", arity))
	}
	elems, err := v.Elems()
	if err != nil {
		return nil, err
	}
	if len(elems) != arity {
		return nil, &DecodeError{
			Err:      ErrInvalidValue,
			Input:    fmt.Sprintf("sequence of %d", len(elems)),
			Expected: fmt.Sprintf("sequence of %d", arity),
		}
	}
	return elems, nil
}
