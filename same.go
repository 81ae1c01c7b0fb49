package morph

// Same encodes and decodes T exactly as the host would without a strategy.
// It is the element strategy to use inside containers when only the outer
// shape changes, e.g. Slice[int, Same[int]].
//
// Types implementing NodeMarshaler or NodeUnmarshaler supply their own node
// form instead.
type Same[T any] struct{}

func (Same[T]) EncodeAs(v T) (Node, error) {
	if m, ok := any(v).(NodeMarshaler); ok {
		return m.MarshalNode()
	}
	if m, ok := any(&v).(NodeMarshaler); ok {
		return m.MarshalNode()
	}
	return NativeNode(v), nil
}

func (Same[T]) DecodeAs(v Value) (T, error) {
	var out T
	if u, ok := any(&out).(NodeUnmarshaler); ok {
		err := u.UnmarshalNode(v)
		return out, err
	}
	err := v.Decode(&out)
	return out, err
}

// SameAs is a synonym of Same for call sites that read better with it.
type SameAs[T any] struct {
	Same[T]
}

// DefaultOnError decodes with S and yields the zero T when S rejects the
// token. Encoding always goes through S.
type DefaultOnError[T any, S Strategy[T]] struct{}

func (DefaultOnError[T, S]) EncodeAs(v T) (Node, error) {
	var s S
	return s.EncodeAs(v)
}

func (DefaultOnError[T, S]) DecodeAs(v Value) (T, error) {
	var s S
	out, err := s.DecodeAs(v)
	if err != nil {
		var zero T
		return zero, nil
	}
	return out, nil
}
