package cbor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/morph"
)

func TestNew(t *testing.T) {
	require.NotNil(t, New())
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/cbor", New().ContentType())
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `cbor:"name"`
		Value int    `cbor:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	require.NoError(t, err)

	var restored TestStruct
	require.NoError(t, c.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestMarshalDeterministic(t *testing.T) {
	c := New()

	first, err := c.Marshal(map[string]int{"b": 2, "a": 1, "aa": 3})
	require.NoError(t, err)
	// Core deterministic ordering sorts keys by their encoded bytes.
	assert.Equal(t, []byte{0xa3, 0x61, 'a', 0x01, 0x61, 'b', 0x02, 0x62, 'a', 'a', 0x03}, first)
}

func TestUnmarshalInvalid(t *testing.T) {
	var v struct{ Name string }
	assert.Error(t, New().Unmarshal([]byte{0xff}, &v))
}

type ports = morph.MapAsPairs[int, string, morph.Same[int], morph.Same[string]]

type limits = morph.Tuple3As[time.Duration, *int, string,
	morph.DurationSecondsInt, morph.Option[int, morph.Same[int]], morph.Text[string]]

type limitSet = morph.Tuple3[time.Duration, *int, string]

type service struct {
	Ports  morph.As[map[int]string, ports]       `cbor:"ports"`
	Limits morph.As[limitSet, limits]            `cbor:"limits"`
	Raw    morph.As[[]byte, morph.BytesOrString] `cbor:"raw"`
}

func TestStrategyFields(t *testing.T) {
	c := New()

	burst := 10
	original := service{
		Ports:  morph.AsOf[ports](map[int]string{80: "http", 443: "https"}),
		Limits: morph.AsOf[limits](limitSet{V0: 2 * time.Second, V1: &burst, V2: "strict"}),
		Raw:    morph.AsOf[morph.BytesOrString]([]byte("payload")),
	}

	data, err := c.Marshal(original)
	require.NoError(t, err)

	var restored service
	require.NoError(t, c.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestTaggedThroughAPI(t *testing.T) {
	type job struct {
		Name    string        `json:"name"`
		Timeout time.Duration `json:"timeout" morph:"duration_seconds"`
	}

	ctx := context.Background()
	c := New()

	data, err := morph.Marshal[morph.Tagged[job]](ctx, c, job{Name: "sync", Timeout: 90 * time.Second})
	require.NoError(t, err)

	restored, err := morph.Unmarshal[job, morph.Tagged[job]](ctx, c, data)
	require.NoError(t, err)
	assert.Equal(t, job{Name: "sync", Timeout: 90 * time.Second}, restored)
}

func TestStrategyFieldRejects(t *testing.T) {
	type wrongShape struct {
		Raw bool `cbor:"raw"`
	}
	data, err := New().Marshal(wrongShape{Raw: true})
	require.NoError(t, err)

	var restored service
	err = New().Unmarshal(data, &restored)
	require.Error(t, err)
	assert.True(t, errors.Is(err, morph.ErrInvalidShape), "got %v", err)
}
