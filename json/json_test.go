package json

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/morph"
)

func TestNew(t *testing.T) {
	c := New()
	require.NotNil(t, c)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", New().ContentType())
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	require.NoError(t, err)

	var restored TestStruct
	require.NoError(t, c.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestMarshalNil(t *testing.T) {
	data, err := New().Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestUnmarshalInvalid(t *testing.T) {
	var v struct{}
	assert.Error(t, New().Unmarshal([]byte("invalid json"), &v))
}

func TestWithIndent(t *testing.T) {
	c := New(WithIndent("", "  "))

	data, err := c.Marshal(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}

func TestWithEscapeHTML(t *testing.T) {
	escaped, err := New().Marshal("<b>")
	require.NoError(t, err)
	assert.Equal(t, `"\u003cb\u003e"`, string(escaped))

	raw, err := New(WithEscapeHTML(false)).Marshal("<b>")
	require.NoError(t, err)
	assert.Equal(t, `"<b>"`, string(raw))
}

type retrySchedule = morph.Slice[time.Duration, morph.DurationSecondsFloat]

type job struct {
	Name    string                                            `json:"name"`
	Timeout morph.As[time.Duration, morph.DurationSecondsInt] `json:"timeout"`
	Retries morph.As[[]time.Duration, retrySchedule]          `json:"retries"`
}

func TestStrategyFields(t *testing.T) {
	c := New()

	original := job{
		Name:    "backup",
		Timeout: morph.AsOf[morph.DurationSecondsInt](90 * time.Second),
		Retries: morph.AsOf[retrySchedule]([]time.Duration{time.Second, 2 * time.Second}),
	}

	data, err := c.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"backup","timeout":90,"retries":[1,2]}`, string(data))

	var restored job
	require.NoError(t, c.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestStrategyFieldRejects(t *testing.T) {
	var restored job
	err := New().Unmarshal([]byte(`{"name":"x","timeout":true,"retries":[]}`), &restored)
	require.Error(t, err)
	assert.True(t, errors.Is(err, morph.ErrInvalidShape), "got %v", err)
}

func TestMarshalThroughAPI(t *testing.T) {
	ctx := context.Background()
	c := New()

	data, err := morph.Marshal[morph.TimestampSecondsFromAny](ctx, c, time.Unix(1700000000, 500000000))
	require.NoError(t, err)
	assert.Equal(t, `"1700000000.5"`, string(data))

	ts, err := morph.Unmarshal[time.Time, morph.TimestampSecondsFromAny](ctx, c, []byte("1700000000.25"))
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), ts.Unix())
	assert.Equal(t, 250000000, ts.Nanosecond())

	_, err = morph.Unmarshal[time.Time, morph.TimestampSecondsFromAny](ctx, c, []byte(`"1.1234567891"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, morph.ErrPrecision))
	assert.True(t, strings.Contains(err.Error(), "has more than 9 digits"))
}
