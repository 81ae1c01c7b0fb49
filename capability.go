package morph

import (
	"time"
)

// StrategyName names a strategy bound through struct tags: `morph:"duration_seconds"`.
type StrategyName string

const (
	// StrategyDurationSeconds binds DurationSecondsInt to a time.Duration field.
	StrategyDurationSeconds StrategyName = "duration_seconds"

	// StrategyDurationSecondsFloat binds DurationSecondsFloat to a time.Duration field.
	StrategyDurationSecondsFloat StrategyName = "duration_seconds_f64"

	// StrategyDurationSecondsString binds DurationSecondsString to a time.Duration field.
	StrategyDurationSecondsString StrategyName = "duration_seconds_str"

	// StrategyDurationSecondsFlexible binds the flexible integer form to a time.Duration field.
	StrategyDurationSecondsFlexible StrategyName = "duration_seconds_flex"

	// StrategyTimestampFromAny binds TimestampSecondsFromAny to a time.Time field.
	StrategyTimestampFromAny StrategyName = "timestamp_from_any"

	// StrategyBytesOrString binds BytesOrString to a []byte field.
	StrategyBytesOrString StrategyName = "bytes_or_string"
)

// builtinStrategies contains every name registered at init and after ResetRegistry.
var builtinStrategies = map[StrategyName]bool{
	StrategyDurationSeconds:         true,
	StrategyDurationSecondsFloat:    true,
	StrategyDurationSecondsString:   true,
	StrategyDurationSecondsFlexible: true,
	StrategyTimestampFromAny:        true,
	StrategyBytesOrString:           true,
}

// IsBuiltin returns true if the name is one of the strategies morph registers itself.
func IsBuiltin(name StrategyName) bool {
	return builtinStrategies[name]
}

// registerBuiltins installs the builtin named strategies.
func registerBuiltins() {
	register[time.Duration, DurationSecondsInt](StrategyDurationSeconds, false)
	register[time.Duration, DurationSecondsFloat](StrategyDurationSecondsFloat, false)
	register[time.Duration, DurationSecondsString](StrategyDurationSecondsString, false)
	register[time.Duration, DurationSeconds[Integer, Flexible]](StrategyDurationSecondsFlexible, false)
	register[time.Time, TimestampSecondsFromAny](StrategyTimestampFromAny, false)
	register[[]byte, BytesOrString](StrategyBytesOrString, false)
}
