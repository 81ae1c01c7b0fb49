package morph

// Tuples stand in for fixed-size heterogeneous sequences. TupleNAs applies one
// strategy per position and emits a fixed sequence of exactly N elements;
// decoding rejects any other arity. Callers needing more than 16 positions
// nest tuples.

// decodeAt decodes position i of an already arity-checked sequence.
func decodeAt[T any, S Strategy[T]](elems []Value, i int) (T, error) {
	var s S
	v, err := s.DecodeAs(elems[i])
	if err != nil {
		var zero T
		return zero, atIndex(err, i)
	}
	return v, nil
}

// Tuple1 holds 1 value by position.
type Tuple1[T0 any] struct {
	V0 T0
}

// Tuple1As encodes a Tuple1 as a fixed sequence of 1.
type Tuple1As[T0 any, S0 Strategy[T0]] struct{}

func (Tuple1As[T0, S0]) EncodeAs(v Tuple1[T0]) (Node, error) {
	elems := make([]Node, 1)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	return TupleNode(elems), nil
}

func (Tuple1As[T0, S0]) DecodeAs(v Value) (Tuple1[T0], error) {
	var out Tuple1[T0]
	elems, err := fixedElems(v, 1)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple1[T0]{}, err
	}
	return out, nil
}

// Tuple2 holds 2 values by position.
type Tuple2[T0, T1 any] struct {
	V0 T0
	V1 T1
}

// Tuple2As encodes a Tuple2 as a fixed sequence of 2.
type Tuple2As[T0, T1 any, S0 Strategy[T0], S1 Strategy[T1]] struct{}

func (Tuple2As[T0, T1, S0, S1]) EncodeAs(v Tuple2[T0, T1]) (Node, error) {
	elems := make([]Node, 2)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	return TupleNode(elems), nil
}

func (Tuple2As[T0, T1, S0, S1]) DecodeAs(v Value) (Tuple2[T0, T1], error) {
	var out Tuple2[T0, T1]
	elems, err := fixedElems(v, 2)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple2[T0, T1]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple2[T0, T1]{}, err
	}
	return out, nil
}

// Tuple3 holds 3 values by position.
type Tuple3[T0, T1, T2 any] struct {
	V0 T0
	V1 T1
	V2 T2
}

// Tuple3As encodes a Tuple3 as a fixed sequence of 3.
type Tuple3As[T0, T1, T2 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2]] struct{}

func (Tuple3As[T0, T1, T2, S0, S1, S2]) EncodeAs(v Tuple3[T0, T1, T2]) (Node, error) {
	elems := make([]Node, 3)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	return TupleNode(elems), nil
}

func (Tuple3As[T0, T1, T2, S0, S1, S2]) DecodeAs(v Value) (Tuple3[T0, T1, T2], error) {
	var out Tuple3[T0, T1, T2]
	elems, err := fixedElems(v, 3)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple3[T0, T1, T2]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple3[T0, T1, T2]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple3[T0, T1, T2]{}, err
	}
	return out, nil
}

// Tuple4 holds 4 values by position.
type Tuple4[T0, T1, T2, T3 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
}

// Tuple4As encodes a Tuple4 as a fixed sequence of 4.
type Tuple4As[T0, T1, T2, T3 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3]] struct{}

func (Tuple4As[T0, T1, T2, T3, S0, S1, S2, S3]) EncodeAs(v Tuple4[T0, T1, T2, T3]) (Node, error) {
	elems := make([]Node, 4)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	return TupleNode(elems), nil
}

func (Tuple4As[T0, T1, T2, T3, S0, S1, S2, S3]) DecodeAs(v Value) (Tuple4[T0, T1, T2, T3], error) {
	var out Tuple4[T0, T1, T2, T3]
	elems, err := fixedElems(v, 4)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple4[T0, T1, T2, T3]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple4[T0, T1, T2, T3]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple4[T0, T1, T2, T3]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple4[T0, T1, T2, T3]{}, err
	}
	return out, nil
}

// Tuple5 holds 5 values by position.
type Tuple5[T0, T1, T2, T3, T4 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// Tuple5As encodes a Tuple5 as a fixed sequence of 5.
type Tuple5As[T0, T1, T2, T3, T4 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3], S4 Strategy[T4]] struct{}

func (Tuple5As[T0, T1, T2, T3, T4, S0, S1, S2, S3, S4]) EncodeAs(v Tuple5[T0, T1, T2, T3, T4]) (Node, error) {
	elems := make([]Node, 5)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	if elems[4], err = WrapOf[S4](&v.V4).Node(); err != nil {
		return Node{}, atIndex(err, 4)
	}
	return TupleNode(elems), nil
}

func (Tuple5As[T0, T1, T2, T3, T4, S0, S1, S2, S3, S4]) DecodeAs(v Value) (Tuple5[T0, T1, T2, T3, T4], error) {
	var out Tuple5[T0, T1, T2, T3, T4]
	elems, err := fixedElems(v, 5)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple5[T0, T1, T2, T3, T4]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple5[T0, T1, T2, T3, T4]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple5[T0, T1, T2, T3, T4]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple5[T0, T1, T2, T3, T4]{}, err
	}
	if out.V4, err = decodeAt[T4, S4](elems, 4); err != nil {
		return Tuple5[T0, T1, T2, T3, T4]{}, err
	}
	return out, nil
}

// Tuple6 holds 6 values by position.
type Tuple6[T0, T1, T2, T3, T4, T5 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

// Tuple6As encodes a Tuple6 as a fixed sequence of 6.
type Tuple6As[T0, T1, T2, T3, T4, T5 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3], S4 Strategy[T4], S5 Strategy[T5]] struct{}

func (Tuple6As[T0, T1, T2, T3, T4, T5, S0, S1, S2, S3, S4, S5]) EncodeAs(v Tuple6[T0, T1, T2, T3, T4, T5]) (Node, error) {
	elems := make([]Node, 6)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	if elems[4], err = WrapOf[S4](&v.V4).Node(); err != nil {
		return Node{}, atIndex(err, 4)
	}
	if elems[5], err = WrapOf[S5](&v.V5).Node(); err != nil {
		return Node{}, atIndex(err, 5)
	}
	return TupleNode(elems), nil
}

func (Tuple6As[T0, T1, T2, T3, T4, T5, S0, S1, S2, S3, S4, S5]) DecodeAs(v Value) (Tuple6[T0, T1, T2, T3, T4, T5], error) {
	var out Tuple6[T0, T1, T2, T3, T4, T5]
	elems, err := fixedElems(v, 6)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple6[T0, T1, T2, T3, T4, T5]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple6[T0, T1, T2, T3, T4, T5]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple6[T0, T1, T2, T3, T4, T5]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple6[T0, T1, T2, T3, T4, T5]{}, err
	}
	if out.V4, err = decodeAt[T4, S4](elems, 4); err != nil {
		return Tuple6[T0, T1, T2, T3, T4, T5]{}, err
	}
	if out.V5, err = decodeAt[T5, S5](elems, 5); err != nil {
		return Tuple6[T0, T1, T2, T3, T4, T5]{}, err
	}
	return out, nil
}

// Tuple7 holds 7 values by position.
type Tuple7[T0, T1, T2, T3, T4, T5, T6 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

// Tuple7As encodes a Tuple7 as a fixed sequence of 7.
type Tuple7As[T0, T1, T2, T3, T4, T5, T6 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3], S4 Strategy[T4], S5 Strategy[T5], S6 Strategy[T6]] struct{}

func (Tuple7As[T0, T1, T2, T3, T4, T5, T6, S0, S1, S2, S3, S4, S5, S6]) EncodeAs(v Tuple7[T0, T1, T2, T3, T4, T5, T6]) (Node, error) {
	elems := make([]Node, 7)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	if elems[4], err = WrapOf[S4](&v.V4).Node(); err != nil {
		return Node{}, atIndex(err, 4)
	}
	if elems[5], err = WrapOf[S5](&v.V5).Node(); err != nil {
		return Node{}, atIndex(err, 5)
	}
	if elems[6], err = WrapOf[S6](&v.V6).Node(); err != nil {
		return Node{}, atIndex(err, 6)
	}
	return TupleNode(elems), nil
}

func (Tuple7As[T0, T1, T2, T3, T4, T5, T6, S0, S1, S2, S3, S4, S5, S6]) DecodeAs(v Value) (Tuple7[T0, T1, T2, T3, T4, T5, T6], error) {
	var out Tuple7[T0, T1, T2, T3, T4, T5, T6]
	elems, err := fixedElems(v, 7)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple7[T0, T1, T2, T3, T4, T5, T6]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple7[T0, T1, T2, T3, T4, T5, T6]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple7[T0, T1, T2, T3, T4, T5, T6]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple7[T0, T1, T2, T3, T4, T5, T6]{}, err
	}
	if out.V4, err = decodeAt[T4, S4](elems, 4); err != nil {
		return Tuple7[T0, T1, T2, T3, T4, T5, T6]{}, err
	}
	if out.V5, err = decodeAt[T5, S5](elems, 5); err != nil {
		return Tuple7[T0, T1, T2, T3, T4, T5, T6]{}, err
	}
	if out.V6, err = decodeAt[T6, S6](elems, 6); err != nil {
		return Tuple7[T0, T1, T2, T3, T4, T5, T6]{}, err
	}
	return out, nil
}

// Tuple8 holds 8 values by position.
type Tuple8[T0, T1, T2, T3, T4, T5, T6, T7 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

// Tuple8As encodes a Tuple8 as a fixed sequence of 8.
type Tuple8As[T0, T1, T2, T3, T4, T5, T6, T7 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3], S4 Strategy[T4], S5 Strategy[T5], S6 Strategy[T6], S7 Strategy[T7]] struct{}

func (Tuple8As[T0, T1, T2, T3, T4, T5, T6, T7, S0, S1, S2, S3, S4, S5, S6, S7]) EncodeAs(v Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) (Node, error) {
	elems := make([]Node, 8)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	if elems[4], err = WrapOf[S4](&v.V4).Node(); err != nil {
		return Node{}, atIndex(err, 4)
	}
	if elems[5], err = WrapOf[S5](&v.V5).Node(); err != nil {
		return Node{}, atIndex(err, 5)
	}
	if elems[6], err = WrapOf[S6](&v.V6).Node(); err != nil {
		return Node{}, atIndex(err, 6)
	}
	if elems[7], err = WrapOf[S7](&v.V7).Node(); err != nil {
		return Node{}, atIndex(err, 7)
	}
	return TupleNode(elems), nil
}

func (Tuple8As[T0, T1, T2, T3, T4, T5, T6, T7, S0, S1, S2, S3, S4, S5, S6, S7]) DecodeAs(v Value) (Tuple8[T0, T1, T2, T3, T4, T5, T6, T7], error) {
	var out Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]
	elems, err := fixedElems(v, 8)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]{}, err
	}
	if out.V4, err = decodeAt[T4, S4](elems, 4); err != nil {
		return Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]{}, err
	}
	if out.V5, err = decodeAt[T5, S5](elems, 5); err != nil {
		return Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]{}, err
	}
	if out.V6, err = decodeAt[T6, S6](elems, 6); err != nil {
		return Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]{}, err
	}
	if out.V7, err = decodeAt[T7, S7](elems, 7); err != nil {
		return Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]{}, err
	}
	return out, nil
}

// Tuple9 holds 9 values by position.
type Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

// Tuple9As encodes a Tuple9 as a fixed sequence of 9.
type Tuple9As[T0, T1, T2, T3, T4, T5, T6, T7, T8 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3], S4 Strategy[T4], S5 Strategy[T5], S6 Strategy[T6], S7 Strategy[T7], S8 Strategy[T8]] struct{}

func (Tuple9As[T0, T1, T2, T3, T4, T5, T6, T7, T8, S0, S1, S2, S3, S4, S5, S6, S7, S8]) EncodeAs(v Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) (Node, error) {
	elems := make([]Node, 9)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	if elems[4], err = WrapOf[S4](&v.V4).Node(); err != nil {
		return Node{}, atIndex(err, 4)
	}
	if elems[5], err = WrapOf[S5](&v.V5).Node(); err != nil {
		return Node{}, atIndex(err, 5)
	}
	if elems[6], err = WrapOf[S6](&v.V6).Node(); err != nil {
		return Node{}, atIndex(err, 6)
	}
	if elems[7], err = WrapOf[S7](&v.V7).Node(); err != nil {
		return Node{}, atIndex(err, 7)
	}
	if elems[8], err = WrapOf[S8](&v.V8).Node(); err != nil {
		return Node{}, atIndex(err, 8)
	}
	return TupleNode(elems), nil
}

func (Tuple9As[T0, T1, T2, T3, T4, T5, T6, T7, T8, S0, S1, S2, S3, S4, S5, S6, S7, S8]) DecodeAs(v Value) (Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8], error) {
	var out Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]
	elems, err := fixedElems(v, 9)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{}, err
	}
	if out.V4, err = decodeAt[T4, S4](elems, 4); err != nil {
		return Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{}, err
	}
	if out.V5, err = decodeAt[T5, S5](elems, 5); err != nil {
		return Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{}, err
	}
	if out.V6, err = decodeAt[T6, S6](elems, 6); err != nil {
		return Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{}, err
	}
	if out.V7, err = decodeAt[T7, S7](elems, 7); err != nil {
		return Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{}, err
	}
	if out.V8, err = decodeAt[T8, S8](elems, 8); err != nil {
		return Tuple9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{}, err
	}
	return out, nil
}

// Tuple10 holds 10 values by position.
type Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
}

// Tuple10As encodes a Tuple10 as a fixed sequence of 10.
type Tuple10As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3], S4 Strategy[T4], S5 Strategy[T5], S6 Strategy[T6], S7 Strategy[T7], S8 Strategy[T8], S9 Strategy[T9]] struct{}

func (Tuple10As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9]) EncodeAs(v Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]) (Node, error) {
	elems := make([]Node, 10)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	if elems[4], err = WrapOf[S4](&v.V4).Node(); err != nil {
		return Node{}, atIndex(err, 4)
	}
	if elems[5], err = WrapOf[S5](&v.V5).Node(); err != nil {
		return Node{}, atIndex(err, 5)
	}
	if elems[6], err = WrapOf[S6](&v.V6).Node(); err != nil {
		return Node{}, atIndex(err, 6)
	}
	if elems[7], err = WrapOf[S7](&v.V7).Node(); err != nil {
		return Node{}, atIndex(err, 7)
	}
	if elems[8], err = WrapOf[S8](&v.V8).Node(); err != nil {
		return Node{}, atIndex(err, 8)
	}
	if elems[9], err = WrapOf[S9](&v.V9).Node(); err != nil {
		return Node{}, atIndex(err, 9)
	}
	return TupleNode(elems), nil
}

func (Tuple10As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9]) DecodeAs(v Value) (Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9], error) {
	var out Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]
	elems, err := fixedElems(v, 10)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{}, err
	}
	if out.V4, err = decodeAt[T4, S4](elems, 4); err != nil {
		return Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{}, err
	}
	if out.V5, err = decodeAt[T5, S5](elems, 5); err != nil {
		return Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{}, err
	}
	if out.V6, err = decodeAt[T6, S6](elems, 6); err != nil {
		return Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{}, err
	}
	if out.V7, err = decodeAt[T7, S7](elems, 7); err != nil {
		return Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{}, err
	}
	if out.V8, err = decodeAt[T8, S8](elems, 8); err != nil {
		return Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{}, err
	}
	if out.V9, err = decodeAt[T9, S9](elems, 9); err != nil {
		return Tuple10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{}, err
	}
	return out, nil
}

// Tuple11 holds 11 values by position.
type Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
	V10 T10
}

// Tuple11As encodes a Tuple11 as a fixed sequence of 11.
type Tuple11As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3], S4 Strategy[T4], S5 Strategy[T5], S6 Strategy[T6], S7 Strategy[T7], S8 Strategy[T8], S9 Strategy[T9], S10 Strategy[T10]] struct{}

func (Tuple11As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10]) EncodeAs(v Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) (Node, error) {
	elems := make([]Node, 11)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	if elems[4], err = WrapOf[S4](&v.V4).Node(); err != nil {
		return Node{}, atIndex(err, 4)
	}
	if elems[5], err = WrapOf[S5](&v.V5).Node(); err != nil {
		return Node{}, atIndex(err, 5)
	}
	if elems[6], err = WrapOf[S6](&v.V6).Node(); err != nil {
		return Node{}, atIndex(err, 6)
	}
	if elems[7], err = WrapOf[S7](&v.V7).Node(); err != nil {
		return Node{}, atIndex(err, 7)
	}
	if elems[8], err = WrapOf[S8](&v.V8).Node(); err != nil {
		return Node{}, atIndex(err, 8)
	}
	if elems[9], err = WrapOf[S9](&v.V9).Node(); err != nil {
		return Node{}, atIndex(err, 9)
	}
	if elems[10], err = WrapOf[S10](&v.V10).Node(); err != nil {
		return Node{}, atIndex(err, 10)
	}
	return TupleNode(elems), nil
}

func (Tuple11As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10]) DecodeAs(v Value) (Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10], error) {
	var out Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]
	elems, err := fixedElems(v, 11)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{}, err
	}
	if out.V4, err = decodeAt[T4, S4](elems, 4); err != nil {
		return Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{}, err
	}
	if out.V5, err = decodeAt[T5, S5](elems, 5); err != nil {
		return Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{}, err
	}
	if out.V6, err = decodeAt[T6, S6](elems, 6); err != nil {
		return Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{}, err
	}
	if out.V7, err = decodeAt[T7, S7](elems, 7); err != nil {
		return Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{}, err
	}
	if out.V8, err = decodeAt[T8, S8](elems, 8); err != nil {
		return Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{}, err
	}
	if out.V9, err = decodeAt[T9, S9](elems, 9); err != nil {
		return Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{}, err
	}
	if out.V10, err = decodeAt[T10, S10](elems, 10); err != nil {
		return Tuple11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{}, err
	}
	return out, nil
}

// Tuple12 holds 12 values by position.
type Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
	V10 T10
	V11 T11
}

// Tuple12As encodes a Tuple12 as a fixed sequence of 12.
type Tuple12As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3], S4 Strategy[T4], S5 Strategy[T5], S6 Strategy[T6], S7 Strategy[T7], S8 Strategy[T8], S9 Strategy[T9], S10 Strategy[T10], S11 Strategy[T11]] struct{}

func (Tuple12As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10, S11]) EncodeAs(v Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) (Node, error) {
	elems := make([]Node, 12)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	if elems[4], err = WrapOf[S4](&v.V4).Node(); err != nil {
		return Node{}, atIndex(err, 4)
	}
	if elems[5], err = WrapOf[S5](&v.V5).Node(); err != nil {
		return Node{}, atIndex(err, 5)
	}
	if elems[6], err = WrapOf[S6](&v.V6).Node(); err != nil {
		return Node{}, atIndex(err, 6)
	}
	if elems[7], err = WrapOf[S7](&v.V7).Node(); err != nil {
		return Node{}, atIndex(err, 7)
	}
	if elems[8], err = WrapOf[S8](&v.V8).Node(); err != nil {
		return Node{}, atIndex(err, 8)
	}
	if elems[9], err = WrapOf[S9](&v.V9).Node(); err != nil {
		return Node{}, atIndex(err, 9)
	}
	if elems[10], err = WrapOf[S10](&v.V10).Node(); err != nil {
		return Node{}, atIndex(err, 10)
	}
	if elems[11], err = WrapOf[S11](&v.V11).Node(); err != nil {
		return Node{}, atIndex(err, 11)
	}
	return TupleNode(elems), nil
}

func (Tuple12As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10, S11]) DecodeAs(v Value) (Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11], error) {
	var out Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]
	elems, err := fixedElems(v, 12)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{}, err
	}
	if out.V4, err = decodeAt[T4, S4](elems, 4); err != nil {
		return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{}, err
	}
	if out.V5, err = decodeAt[T5, S5](elems, 5); err != nil {
		return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{}, err
	}
	if out.V6, err = decodeAt[T6, S6](elems, 6); err != nil {
		return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{}, err
	}
	if out.V7, err = decodeAt[T7, S7](elems, 7); err != nil {
		return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{}, err
	}
	if out.V8, err = decodeAt[T8, S8](elems, 8); err != nil {
		return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{}, err
	}
	if out.V9, err = decodeAt[T9, S9](elems, 9); err != nil {
		return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{}, err
	}
	if out.V10, err = decodeAt[T10, S10](elems, 10); err != nil {
		return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{}, err
	}
	if out.V11, err = decodeAt[T11, S11](elems, 11); err != nil {
		return Tuple12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{}, err
	}
	return out, nil
}

// Tuple13 holds 13 values by position.
type Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
	V10 T10
	V11 T11
	V12 T12
}

// Tuple13As encodes a Tuple13 as a fixed sequence of 13.
type Tuple13As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3], S4 Strategy[T4], S5 Strategy[T5], S6 Strategy[T6], S7 Strategy[T7], S8 Strategy[T8], S9 Strategy[T9], S10 Strategy[T10], S11 Strategy[T11], S12 Strategy[T12]] struct{}

func (Tuple13As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10, S11, S12]) EncodeAs(v Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]) (Node, error) {
	elems := make([]Node, 13)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	if elems[4], err = WrapOf[S4](&v.V4).Node(); err != nil {
		return Node{}, atIndex(err, 4)
	}
	if elems[5], err = WrapOf[S5](&v.V5).Node(); err != nil {
		return Node{}, atIndex(err, 5)
	}
	if elems[6], err = WrapOf[S6](&v.V6).Node(); err != nil {
		return Node{}, atIndex(err, 6)
	}
	if elems[7], err = WrapOf[S7](&v.V7).Node(); err != nil {
		return Node{}, atIndex(err, 7)
	}
	if elems[8], err = WrapOf[S8](&v.V8).Node(); err != nil {
		return Node{}, atIndex(err, 8)
	}
	if elems[9], err = WrapOf[S9](&v.V9).Node(); err != nil {
		return Node{}, atIndex(err, 9)
	}
	if elems[10], err = WrapOf[S10](&v.V10).Node(); err != nil {
		return Node{}, atIndex(err, 10)
	}
	if elems[11], err = WrapOf[S11](&v.V11).Node(); err != nil {
		return Node{}, atIndex(err, 11)
	}
	if elems[12], err = WrapOf[S12](&v.V12).Node(); err != nil {
		return Node{}, atIndex(err, 12)
	}
	return TupleNode(elems), nil
}

func (Tuple13As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10, S11, S12]) DecodeAs(v Value) (Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12], error) {
	var out Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]
	elems, err := fixedElems(v, 13)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	if out.V4, err = decodeAt[T4, S4](elems, 4); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	if out.V5, err = decodeAt[T5, S5](elems, 5); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	if out.V6, err = decodeAt[T6, S6](elems, 6); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	if out.V7, err = decodeAt[T7, S7](elems, 7); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	if out.V8, err = decodeAt[T8, S8](elems, 8); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	if out.V9, err = decodeAt[T9, S9](elems, 9); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	if out.V10, err = decodeAt[T10, S10](elems, 10); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	if out.V11, err = decodeAt[T11, S11](elems, 11); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	if out.V12, err = decodeAt[T12, S12](elems, 12); err != nil {
		return Tuple13[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{}, err
	}
	return out, nil
}

// Tuple14 holds 14 values by position.
type Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
	V10 T10
	V11 T11
	V12 T12
	V13 T13
}

// Tuple14As encodes a Tuple14 as a fixed sequence of 14.
type Tuple14As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3], S4 Strategy[T4], S5 Strategy[T5], S6 Strategy[T6], S7 Strategy[T7], S8 Strategy[T8], S9 Strategy[T9], S10 Strategy[T10], S11 Strategy[T11], S12 Strategy[T12], S13 Strategy[T13]] struct{}

func (Tuple14As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10, S11, S12, S13]) EncodeAs(v Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]) (Node, error) {
	elems := make([]Node, 14)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	if elems[4], err = WrapOf[S4](&v.V4).Node(); err != nil {
		return Node{}, atIndex(err, 4)
	}
	if elems[5], err = WrapOf[S5](&v.V5).Node(); err != nil {
		return Node{}, atIndex(err, 5)
	}
	if elems[6], err = WrapOf[S6](&v.V6).Node(); err != nil {
		return Node{}, atIndex(err, 6)
	}
	if elems[7], err = WrapOf[S7](&v.V7).Node(); err != nil {
		return Node{}, atIndex(err, 7)
	}
	if elems[8], err = WrapOf[S8](&v.V8).Node(); err != nil {
		return Node{}, atIndex(err, 8)
	}
	if elems[9], err = WrapOf[S9](&v.V9).Node(); err != nil {
		return Node{}, atIndex(err, 9)
	}
	if elems[10], err = WrapOf[S10](&v.V10).Node(); err != nil {
		return Node{}, atIndex(err, 10)
	}
	if elems[11], err = WrapOf[S11](&v.V11).Node(); err != nil {
		return Node{}, atIndex(err, 11)
	}
	if elems[12], err = WrapOf[S12](&v.V12).Node(); err != nil {
		return Node{}, atIndex(err, 12)
	}
	if elems[13], err = WrapOf[S13](&v.V13).Node(); err != nil {
		return Node{}, atIndex(err, 13)
	}
	return TupleNode(elems), nil
}

func (Tuple14As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10, S11, S12, S13]) DecodeAs(v Value) (Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13], error) {
	var out Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]
	elems, err := fixedElems(v, 14)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V4, err = decodeAt[T4, S4](elems, 4); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V5, err = decodeAt[T5, S5](elems, 5); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V6, err = decodeAt[T6, S6](elems, 6); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V7, err = decodeAt[T7, S7](elems, 7); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V8, err = decodeAt[T8, S8](elems, 8); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V9, err = decodeAt[T9, S9](elems, 9); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V10, err = decodeAt[T10, S10](elems, 10); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V11, err = decodeAt[T11, S11](elems, 11); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V12, err = decodeAt[T12, S12](elems, 12); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	if out.V13, err = decodeAt[T13, S13](elems, 13); err != nil {
		return Tuple14[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{}, err
	}
	return out, nil
}

// Tuple15 holds 15 values by position.
type Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
	V10 T10
	V11 T11
	V12 T12
	V13 T13
	V14 T14
}

// Tuple15As encodes a Tuple15 as a fixed sequence of 15.
type Tuple15As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3], S4 Strategy[T4], S5 Strategy[T5], S6 Strategy[T6], S7 Strategy[T7], S8 Strategy[T8], S9 Strategy[T9], S10 Strategy[T10], S11 Strategy[T11], S12 Strategy[T12], S13 Strategy[T13], S14 Strategy[T14]] struct{}

func (Tuple15As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10, S11, S12, S13, S14]) EncodeAs(v Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]) (Node, error) {
	elems := make([]Node, 15)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	if elems[4], err = WrapOf[S4](&v.V4).Node(); err != nil {
		return Node{}, atIndex(err, 4)
	}
	if elems[5], err = WrapOf[S5](&v.V5).Node(); err != nil {
		return Node{}, atIndex(err, 5)
	}
	if elems[6], err = WrapOf[S6](&v.V6).Node(); err != nil {
		return Node{}, atIndex(err, 6)
	}
	if elems[7], err = WrapOf[S7](&v.V7).Node(); err != nil {
		return Node{}, atIndex(err, 7)
	}
	if elems[8], err = WrapOf[S8](&v.V8).Node(); err != nil {
		return Node{}, atIndex(err, 8)
	}
	if elems[9], err = WrapOf[S9](&v.V9).Node(); err != nil {
		return Node{}, atIndex(err, 9)
	}
	if elems[10], err = WrapOf[S10](&v.V10).Node(); err != nil {
		return Node{}, atIndex(err, 10)
	}
	if elems[11], err = WrapOf[S11](&v.V11).Node(); err != nil {
		return Node{}, atIndex(err, 11)
	}
	if elems[12], err = WrapOf[S12](&v.V12).Node(); err != nil {
		return Node{}, atIndex(err, 12)
	}
	if elems[13], err = WrapOf[S13](&v.V13).Node(); err != nil {
		return Node{}, atIndex(err, 13)
	}
	if elems[14], err = WrapOf[S14](&v.V14).Node(); err != nil {
		return Node{}, atIndex(err, 14)
	}
	return TupleNode(elems), nil
}

func (Tuple15As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10, S11, S12, S13, S14]) DecodeAs(v Value) (Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14], error) {
	var out Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]
	elems, err := fixedElems(v, 15)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V4, err = decodeAt[T4, S4](elems, 4); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V5, err = decodeAt[T5, S5](elems, 5); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V6, err = decodeAt[T6, S6](elems, 6); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V7, err = decodeAt[T7, S7](elems, 7); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V8, err = decodeAt[T8, S8](elems, 8); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V9, err = decodeAt[T9, S9](elems, 9); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V10, err = decodeAt[T10, S10](elems, 10); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V11, err = decodeAt[T11, S11](elems, 11); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V12, err = decodeAt[T12, S12](elems, 12); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V13, err = decodeAt[T13, S13](elems, 13); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	if out.V14, err = decodeAt[T14, S14](elems, 14); err != nil {
		return Tuple15[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{}, err
	}
	return out, nil
}

// Tuple16 holds 16 values by position.
type Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
	V10 T10
	V11 T11
	V12 T12
	V13 T13
	V14 T14
	V15 T15
}

// Tuple16As encodes a Tuple16 as a fixed sequence of 16.
type Tuple16As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15 any, S0 Strategy[T0], S1 Strategy[T1], S2 Strategy[T2], S3 Strategy[T3], S4 Strategy[T4], S5 Strategy[T5], S6 Strategy[T6], S7 Strategy[T7], S8 Strategy[T8], S9 Strategy[T9], S10 Strategy[T10], S11 Strategy[T11], S12 Strategy[T12], S13 Strategy[T13], S14 Strategy[T14], S15 Strategy[T15]] struct{}

func (Tuple16As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10, S11, S12, S13, S14, S15]) EncodeAs(v Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]) (Node, error) {
	elems := make([]Node, 16)
	var err error
	if elems[0], err = WrapOf[S0](&v.V0).Node(); err != nil {
		return Node{}, atIndex(err, 0)
	}
	if elems[1], err = WrapOf[S1](&v.V1).Node(); err != nil {
		return Node{}, atIndex(err, 1)
	}
	if elems[2], err = WrapOf[S2](&v.V2).Node(); err != nil {
		return Node{}, atIndex(err, 2)
	}
	if elems[3], err = WrapOf[S3](&v.V3).Node(); err != nil {
		return Node{}, atIndex(err, 3)
	}
	if elems[4], err = WrapOf[S4](&v.V4).Node(); err != nil {
		return Node{}, atIndex(err, 4)
	}
	if elems[5], err = WrapOf[S5](&v.V5).Node(); err != nil {
		return Node{}, atIndex(err, 5)
	}
	if elems[6], err = WrapOf[S6](&v.V6).Node(); err != nil {
		return Node{}, atIndex(err, 6)
	}
	if elems[7], err = WrapOf[S7](&v.V7).Node(); err != nil {
		return Node{}, atIndex(err, 7)
	}
	if elems[8], err = WrapOf[S8](&v.V8).Node(); err != nil {
		return Node{}, atIndex(err, 8)
	}
	if elems[9], err = WrapOf[S9](&v.V9).Node(); err != nil {
		return Node{}, atIndex(err, 9)
	}
	if elems[10], err = WrapOf[S10](&v.V10).Node(); err != nil {
		return Node{}, atIndex(err, 10)
	}
	if elems[11], err = WrapOf[S11](&v.V11).Node(); err != nil {
		return Node{}, atIndex(err, 11)
	}
	if elems[12], err = WrapOf[S12](&v.V12).Node(); err != nil {
		return Node{}, atIndex(err, 12)
	}
	if elems[13], err = WrapOf[S13](&v.V13).Node(); err != nil {
		return Node{}, atIndex(err, 13)
	}
	if elems[14], err = WrapOf[S14](&v.V14).Node(); err != nil {
		return Node{}, atIndex(err, 14)
	}
	if elems[15], err = WrapOf[S15](&v.V15).Node(); err != nil {
		return Node{}, atIndex(err, 15)
	}
	return TupleNode(elems), nil
}

func (Tuple16As[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10, S11, S12, S13, S14, S15]) DecodeAs(v Value) (Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15], error) {
	var out Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]
	elems, err := fixedElems(v, 16)
	if err != nil {
		return out, err
	}
	if out.V0, err = decodeAt[T0, S0](elems, 0); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V1, err = decodeAt[T1, S1](elems, 1); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V2, err = decodeAt[T2, S2](elems, 2); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V3, err = decodeAt[T3, S3](elems, 3); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V4, err = decodeAt[T4, S4](elems, 4); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V5, err = decodeAt[T5, S5](elems, 5); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V6, err = decodeAt[T6, S6](elems, 6); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V7, err = decodeAt[T7, S7](elems, 7); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V8, err = decodeAt[T8, S8](elems, 8); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V9, err = decodeAt[T9, S9](elems, 9); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V10, err = decodeAt[T10, S10](elems, 10); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V11, err = decodeAt[T11, S11](elems, 11); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V12, err = decodeAt[T12, S12](elems, 12); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V13, err = decodeAt[T13, S13](elems, 13); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V14, err = decodeAt[T14, S14](elems, 14); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	if out.V15, err = decodeAt[T15, S15](elems, 15); err != nil {
		return Tuple16[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{}, err
	}
	return out, nil
}
