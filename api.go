// Package morph converts values to and from wire shapes that differ from
// their in-memory types, without touching the types themselves.
//
// A strategy is a zero-size type chosen at compile time. It turns a T into a
// host-neutral Node tree on encode and rebuilds a T from a host-provided
// Value on decode. Strategies compose: container strategies take an element
// strategy as a type argument and apply it at any depth.
//
// # Basic Usage
//
// Declare the wire shape in a field's type with As:
//
//	type Job struct {
//	    Name    string                                              `json:"name"`
//	    Timeout morph.As[time.Duration, morph.DurationSecondsInt] `json:"timeout"`
//	    Retries morph.As[[]time.Duration, morph.Slice[time.Duration, morph.DurationSecondsFloat]] `json:"retries"`
//	}
//
// Or apply a strategy to a whole value at the call site:
//
//	data, err := morph.Marshal[morph.TimestampSecondsFromAny](ctx, json.New(), ts)
//	ts, err := morph.Unmarshal[time.Time, morph.TimestampSecondsFromAny](ctx, json.New(), data)
//
// Or bind named strategies through struct tags with Tagged:
//
//	type Job struct {
//	    Timeout time.Duration `json:"timeout" morph:"duration_seconds"`
//	}
//
//	data, err := morph.Marshal[morph.Tagged[Job]](ctx, yaml.New(), job)
//
// # Strategies
//
//   - Same, SameAs: the host's natural encoding
//   - DefaultOnError: zero value when the inner strategy rejects input
//   - Option, Slice, Set, Map, MapAsPairs, PairsAsMap, Array, Tuple1As..Tuple16As: containers
//   - TimestampSecondsFromAny: time.Time from integer, float, or string seconds
//   - DurationSeconds: time.Duration as integer, float, or string seconds
//   - Text, NilAsEmptyString, BytesOrString: textual and binary forms
//   - Sealed: XChaCha20-Poly1305 sealed payloads
//   - Tagged: per-field strategies from struct tags
//
// # Hosts
//
// Wrap and As implement the marshal hooks of every supported engine, so they
// work inside plain structs handed to the engine directly. The following
// codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - cbor - CBOR encoding (application/cbor)
//   - bson - BSON encoding (application/bson)
package morph

import (
	"context"
	"reflect"
	"time"
)

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Marshal encodes v in the shape chosen by S using codec c.
func Marshal[S EncoderAs[T], T any](ctx context.Context, c Codec, v T) ([]byte, error) {
	typeName := reflect.TypeFor[T]().String()
	start := time.Now()
	emitMarshalStart(ctx, c.ContentType(), typeName)

	data, err := c.Marshal(WrapOf[S](&v))
	if err != nil {
		err = newCodecError(ErrMarshal, err)
	}

	emitMarshalComplete(ctx, c.ContentType(), typeName, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Unmarshal decodes data written in the shape chosen by S using codec c.
func Unmarshal[T any, S Strategy[T]](ctx context.Context, c Codec, data []byte) (T, error) {
	typeName := reflect.TypeFor[T]().String()
	start := time.Now()
	emitUnmarshalStart(ctx, c.ContentType(), typeName, len(data))

	var carrier As[T, S]
	err := c.Unmarshal(data, &carrier)
	if err != nil {
		err = newCodecError(ErrUnmarshal, err)
	}

	emitUnmarshalComplete(ctx, c.ContentType(), typeName, time.Since(start), err)
	if err != nil {
		var zero T
		return zero, err
	}
	return carrier.Value, nil
}
