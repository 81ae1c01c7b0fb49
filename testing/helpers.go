// Package testing provides test utilities for morph.
package testing

import (
	"bytes"
	"testing"
	"time"

	"github.com/zoobzio/morph"
	"github.com/zoobzio/morph/bson"
	"github.com/zoobzio/morph/cbor"
	"github.com/zoobzio/morph/json"
	"github.com/zoobzio/morph/msgpack"
	"github.com/zoobzio/morph/yaml"
)

// SealKey returns a valid 32-byte key for Sealed strategies.
func SealKey(tb testing.TB) []byte {
	tb.Helper()
	return bytes.Repeat([]byte("morph-seal-key!!"), 2)
}

// InstallSealKey sets SealKey as the process seal key and removes it when
// the test ends.
func InstallSealKey(tb testing.TB) {
	tb.Helper()
	if err := morph.SetSealKey(SealKey(tb)); err != nil {
		tb.Fatalf("SetSealKey: %v", err)
	}
	tb.Cleanup(morph.ResetSealKey)
}

// IsolateRegistry restores the builtin named strategies when the test ends.
func IsolateRegistry(tb testing.TB) {
	tb.Helper()
	tb.Cleanup(morph.ResetRegistry)
}

// Codecs returns one codec per supported host, keyed by name.
func Codecs() map[string]morph.Codec {
	return map[string]morph.Codec{
		"json":    json.New(),
		"yaml":    yaml.New(),
		"msgpack": msgpack.New(),
		"cbor":    cbor.New(),
		"bson":    bson.New(),
	}
}

// Strategy shorthands used by the fixtures.
type (
	Retries = morph.Slice[time.Duration, morph.DurationSecondsFloat]
	Labels  = morph.Map[string, string, morph.Same[string], morph.Same[string]]
	Window  = morph.Array[[2]int, int, morph.Same[int]]
	Secret  = morph.Sealed[string, morph.Same[string]]
)

// Job is a fixture carrying strategy-typed fields that every host can encode.
type Job struct {
	Name    string                                             `json:"name" yaml:"name" msgpack:"name" cbor:"name" bson:"name"`
	Timeout morph.As[time.Duration, morph.DurationSecondsInt]  `json:"timeout" yaml:"timeout" msgpack:"timeout" cbor:"timeout" bson:"timeout"`
	Retries morph.As[[]time.Duration, Retries]                 `json:"retries" yaml:"retries" msgpack:"retries" cbor:"retries" bson:"retries"`
	Started morph.As[time.Time, morph.TimestampSecondsFromAny] `json:"started" yaml:"started" msgpack:"started" cbor:"started" bson:"started"`
	Labels  morph.As[map[string]string, Labels]                `json:"labels" yaml:"labels" msgpack:"labels" cbor:"labels" bson:"labels"`
	Window  morph.As[[2]int, Window]                           `json:"window" yaml:"window" msgpack:"window" cbor:"window" bson:"window"`
	Note    morph.As[*string, morph.NilAsEmptyString[string]]  `json:"note" yaml:"note" msgpack:"note" cbor:"note" bson:"note"`
	Blob    morph.As[[]byte, morph.BytesOrString]              `json:"blob" yaml:"blob" msgpack:"blob" cbor:"blob" bson:"blob"`
}

// NewJob returns a fully populated Job.
func NewJob() Job {
	return Job{
		Name:    "nightly-backup",
		Timeout: morph.AsOf[morph.DurationSecondsInt](90 * time.Second),
		Retries: morph.AsOf[Retries]([]time.Duration{time.Second, 5 * time.Second, 30 * time.Second}),
		Started: morph.AsOf[morph.TimestampSecondsFromAny](time.Unix(1700000000, 250000000).UTC()),
		Labels:  morph.AsOf[Labels](map[string]string{"env": "prod", "team": "storage"}),
		Window:  morph.AsOf[Window]([2]int{1, 5}),
		Blob:    morph.AsOf[morph.BytesOrString]([]byte{0xde, 0xad, 0xbe, 0xef}),
	}
}

// TaggedJob is a fixture binding named strategies through struct tags.
type TaggedJob struct {
	Name     string        `json:"name"`
	Timeout  time.Duration `json:"timeout" morph:"duration_seconds"`
	Interval time.Duration `json:"interval" morph:"duration_seconds_str"`
	Started  time.Time     `json:"started" morph:"timestamp_from_any"`
	Payload  []byte        `json:"payload" morph:"bytes_or_string"`
}

// NewTaggedJob returns a fully populated TaggedJob.
func NewTaggedJob() TaggedJob {
	return TaggedJob{
		Name:     "hourly-sync",
		Timeout:  2 * time.Minute,
		Interval: time.Hour,
		Started:  time.Unix(1700000000, 0).UTC(),
		Payload:  []byte("payload"),
	}
}

// Account is a fixture with a sealed field. Install a seal key before use.
type Account struct {
	User  string                   `json:"user" yaml:"user" msgpack:"user" cbor:"user" bson:"user"`
	Token morph.As[string, Secret] `json:"token" yaml:"token" msgpack:"token" cbor:"token" bson:"token"`
}

// Container strategy shorthands for the Shapes fixture.
type (
	MaybeTimeout = morph.Option[time.Duration, morph.DurationSecondsInt]
	Ports        = morph.Set[int, morph.Same[int]]
	Endpoint     = morph.Tuple2As[string, time.Duration, morph.Same[string], morph.DurationSecondsInt]
	PortNames    = morph.MapAsPairs[int, string, morph.Same[int], morph.Same[string]]
	Steps        = morph.PairsAsMap[string, int, morph.Same[string], morph.Same[int]]
	Empty        = morph.Array[[0]int, int, morph.Same[int]]
)

// Shapes is a fixture exercising every container strategy on every host.
type Shapes struct {
	Present   morph.As[*time.Duration, MaybeTimeout]                  `json:"present" yaml:"present" msgpack:"present" cbor:"present" bson:"present"`
	Missing   morph.As[*time.Duration, MaybeTimeout]                  `json:"missing" yaml:"missing" msgpack:"missing" cbor:"missing" bson:"missing"`
	Ports     morph.As[map[int]struct{}, Ports]                       `json:"ports" yaml:"ports" msgpack:"ports" cbor:"ports" bson:"ports"`
	Endpoint  morph.As[morph.Tuple2[string, time.Duration], Endpoint] `json:"endpoint" yaml:"endpoint" msgpack:"endpoint" cbor:"endpoint" bson:"endpoint"`
	PortNames morph.As[map[int]string, PortNames]                     `json:"port_names" yaml:"port_names" msgpack:"port_names" cbor:"port_names" bson:"port_names"`
	Steps     morph.As[[]morph.Pair[string, int], Steps]              `json:"steps" yaml:"steps" msgpack:"steps" cbor:"steps" bson:"steps"`
	Empty     morph.As[[0]int, Empty]                                 `json:"empty" yaml:"empty" msgpack:"empty" cbor:"empty" bson:"empty"`
}

// NewShapes returns a Shapes with every field set except Missing.
func NewShapes() Shapes {
	timeout := 45 * time.Second
	return Shapes{
		Present:   morph.AsOf[MaybeTimeout](&timeout),
		Ports:     morph.AsOf[Ports](map[int]struct{}{443: {}, 80: {}, 8080: {}}),
		Endpoint:  morph.AsOf[Endpoint](morph.Tuple2[string, time.Duration]{V0: "api", V1: 10 * time.Second}),
		PortNames: morph.AsOf[PortNames](map[int]string{80: "http", 443: "https"}),
		Steps: morph.AsOf[Steps]([]morph.Pair[string, int]{
			{Key: "fetch", Value: 3},
			{Key: "build", Value: 1},
			{Key: "deploy", Value: 2},
		}),
	}
}
