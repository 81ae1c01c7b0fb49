package morph

// Override interfaces let a type supply its own node form in place of the
// host's natural encoding. Same, and every container element using Same,
// checks for them before deferring to the host.
//
// These interfaces are designed for codegen: a generator can emit both
// methods from a type's declaration and keep the host engines out of the
// type's hot path entirely.

// NodeMarshaler produces the wire tree for the receiver.
type NodeMarshaler interface {
	// MarshalNode returns the receiver's encode tree. It must not mutate the receiver.
	MarshalNode() (Node, error)
}

// NodeUnmarshaler rebuilds the receiver from a decoded token.
type NodeUnmarshaler interface {
	// UnmarshalNode replaces the receiver's contents with the decoded token.
	// Called on a fresh zero value.
	UnmarshalNode(v Value) error
}
