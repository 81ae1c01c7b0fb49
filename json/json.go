// Package json provides a JSON codec implementation backed by goccy/go-json.
package json

import (
	"github.com/goccy/go-json"

	"github.com/zoobzio/morph"
)

// jsonCodec implements morph.Codec for JSON.
type jsonCodec struct {
	escapeHTML bool
	prefix     string
	indent     string
}

// Option configures the JSON codec.
type Option func(*jsonCodec)

// WithEscapeHTML controls whether <, >, and & are escaped in strings. Default true.
func WithEscapeHTML(escape bool) Option {
	return func(c *jsonCodec) {
		c.escapeHTML = escape
	}
}

// WithIndent pretty-prints output with the given prefix and indent.
func WithIndent(prefix, indent string) Option {
	return func(c *jsonCodec) {
		c.prefix = prefix
		c.indent = indent
	}
}

// New returns a JSON codec.
func New(opts ...Option) morph.Codec {
	c := &jsonCodec{escapeHTML: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	if c.indent != "" || c.prefix != "" {
		return json.MarshalIndent(v, c.prefix, c.indent)
	}
	if !c.escapeHTML {
		return json.MarshalNoEscape(v)
	}
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
