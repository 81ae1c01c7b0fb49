package morph

// Wrap borrows a value and a strategy so any host can encode the value in the
// strategy's shape. It implements the marshal hook of every supported host and
// is never decoded.
//
//	data, err := json.Marshal(morph.WrapOf[morph.DurationSecondsInt](&timeout))
type Wrap[T any, S EncoderAs[T]] struct {
	v *T
}

// WrapOf wraps v with strategy S. The value is read, never copied or modified.
func WrapOf[S EncoderAs[T], T any](v *T) Wrap[T, S] {
	return Wrap[T, S]{v: v}
}

// Node runs the strategy over the wrapped value.
func (w Wrap[T, S]) Node() (Node, error) {
	if w.v == nil {
		return NullNode(), nil
	}
	var s S
	return s.EncodeAs(*w.v)
}

// As owns a value and declares its strategy in its type, so struct fields
// carry their wire shape into every host in both directions.
//
//	type Job struct {
//	    Timeout morph.As[time.Duration, morph.DurationSecondsInt] `json:"timeout"`
//	}
type As[T any, S Strategy[T]] struct {
	Value T
}

// AsOf returns a carrier holding v.
func AsOf[S Strategy[T], T any](v T) As[T, S] {
	return As[T, S]{Value: v}
}

// Node runs the strategy over the carried value.
func (a As[T, S]) Node() (Node, error) {
	var s S
	return s.EncodeAs(a.Value)
}

// decode replaces the carried value with one decoded from v.
func (a *As[T, S]) decode(v Value) error {
	var s S
	out, err := s.DecodeAs(v)
	if err != nil {
		return err
	}
	a.Value = out
	return nil
}
