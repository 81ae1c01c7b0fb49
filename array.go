package morph

// FixedArray is the set of array types Array accepts: [0]E through [32]E.
type FixedArray[E any] interface {
	~[0]E | ~[1]E | ~[2]E | ~[3]E | ~[4]E | ~[5]E | ~[6]E | ~[7]E | ~[8]E |
		~[9]E | ~[10]E | ~[11]E | ~[12]E | ~[13]E | ~[14]E | ~[15]E | ~[16]E |
		~[17]E | ~[18]E | ~[19]E | ~[20]E | ~[21]E | ~[22]E | ~[23]E | ~[24]E |
		~[25]E | ~[26]E | ~[27]E | ~[28]E | ~[29]E | ~[30]E | ~[31]E | ~[32]E
}

// Array applies ES to each element of a fixed-size array and emits a fixed
// sequence. Decoding requires exactly len(A) elements.
//
//	morph.Array[[4]time.Duration, time.Duration, morph.DurationSecondsInt]
type Array[A FixedArray[E], E any, ES Strategy[E]] struct{}

func (Array[A, E, ES]) EncodeAs(v A) (Node, error) {
	elems := make([]Node, len(v))
	for i := 0; i < len(v); i++ {
		e := v[i]
		n, err := WrapOf[ES](&e).Node()
		if err != nil {
			return Node{}, atIndex(err, i)
		}
		elems[i] = n
	}
	return TupleNode(elems), nil
}

func (Array[A, E, ES]) DecodeAs(v Value) (A, error) {
	var out A
	elems, err := fixedElems(v, len(out))
	if err != nil {
		return out, err
	}
	var es ES
	for i, ev := range elems {
		e, err := es.DecodeAs(ev)
		if err != nil {
			var zero A
			return zero, atIndex(err, i)
		}
		out[i] = e
	}
	return out, nil
}
