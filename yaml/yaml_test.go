package yaml

import (
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
	assert.Equal(t, "application/yaml", New().ContentType())
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `yaml:"name"`
		Value int    `yaml:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	require.NoError(t, err)

	var restored TestStruct
	require.NoError(t, c.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestUnmarshalInvalid(t *testing.T) {
	var v struct{}
	assert.Error(t, New().Unmarshal([]byte("invalid: yaml: content:"), &v))
}

func TestWithIndent(t *testing.T) {
	c := New(WithIndent(2))

	data, err := c.Marshal(map[string]map[string]int{"a": {"b": 1}})
	require.NoError(t, err)
	assert.Equal(t, "a:\n  b: 1\n", string(data))
}

type point = morph.Tuple2As[string, int, morph.Same[string], morph.Same[int]]

type schedule struct {
	Every morph.As[time.Duration, morph.DurationSecondsString] `yaml:"every"`
	At    morph.As[time.Time, morph.TimestampSecondsFromAny]   `yaml:"at"`
	Label morph.As[morph.Tuple2[string, int], point]           `yaml:"label"`
	Note  morph.As[*string, morph.NilAsEmptyString[string]]    `yaml:"note"`
}

func TestStrategyFields(t *testing.T) {
	c := New()

	original := schedule{
		Every: morph.AsOf[morph.DurationSecondsString](30 * time.Second),
		At:    morph.AsOf[morph.TimestampSecondsFromAny](time.Unix(1700000000, 0).UTC()),
		Label: morph.AsOf[point](morph.Tuple2[string, int]{V0: "nightly", V1: 3}),
	}

	data, err := c.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, "every: \"30\"\nat: 1700000000\nlabel: [nightly, 3]\nnote: \"\"\n", string(data))

	var restored schedule
	require.NoError(t, c.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestStrategyFieldRejects(t *testing.T) {
	var restored schedule
	err := New().Unmarshal([]byte("every: 30\n"), &restored)
	require.Error(t, err)
	assert.True(t, errors.Is(err, morph.ErrInvalidShape), "got %v", err)
}
