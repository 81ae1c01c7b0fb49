// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/morph"
)

// msgpackCodec implements morph.Codec for MessagePack.
type msgpackCodec struct {
	compactInts bool
	sortMapKeys bool
}

// Option configures the MessagePack codec.
type Option func(*msgpackCodec)

// WithCompactInts writes natively encoded integers in their smallest form.
func WithCompactInts(on bool) Option {
	return func(c *msgpackCodec) {
		c.compactInts = on
	}
}

// WithSortMapKeys sorts the keys of natively encoded Go maps. Maps produced by
// strategies keep the strategy's order regardless.
func WithSortMapKeys(on bool) Option {
	return func(c *msgpackCodec) {
		c.sortMapKeys = on
	}
}

// New returns a MessagePack codec.
func New(opts ...Option) morph.Codec {
	c := &msgpackCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(c.compactInts)
	enc.SetSortMapKeys(c.sortMapKeys)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
