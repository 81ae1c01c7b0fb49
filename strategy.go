package morph

// EncoderAs converts a T into the wire shape chosen by the implementing strategy.
// EncodeAs must not mutate v.
type EncoderAs[T any] interface {
	EncodeAs(v T) (Node, error)
}

// DecoderAs rebuilds a T from a wire token in the strategy's shape.
type DecoderAs[T any] interface {
	DecodeAs(v Value) (T, error)
}

// Strategy is a conversion policy between T and a wire shape.
//
// Strategies are stateless, zero-size types selected at compile time as type
// arguments; their zero value is always usable. A type with only one half of
// the contract still works in the matching direction (Wrap needs only an
// EncoderAs).
type Strategy[T any] interface {
	EncoderAs[T]
	DecoderAs[T]
}

// EncodeNode runs strategy S over v and returns the resulting tree.
func EncodeNode[S EncoderAs[T], T any](v T) (Node, error) {
	var s S
	return s.EncodeAs(v)
}

// DecodeNode rebuilds a T from an encode tree using strategy S, without a host.
//
//	d, err := morph.DecodeNode[time.Duration, morph.DurationSecondsInt](n)
func DecodeNode[T any, S DecoderAs[T]](n Node) (T, error) {
	var s S
	return s.DecodeAs(NodeValue(n))
}
