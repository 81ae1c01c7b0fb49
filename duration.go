package morph

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// maxDurationSeconds is the largest whole second count a time.Duration holds.
const maxDurationSeconds = uint64(math.MaxInt64 / int64(time.Second))

// Format selects the wire form of DurationSeconds.
type Format interface {
	encodeSeconds(d time.Duration) (Node, error)
	decodeStrict(v Value) (time.Duration, error)
}

// Strictness selects which wire forms DurationSeconds accepts on decode.
type Strictness interface {
	flexible() bool
}

// Integer writes whole seconds as an unsigned integer, rounding half up.
type Integer struct{}

// Float writes seconds as a float rounded to a whole number, ties away from zero.
type Float struct{}

// String writes the Integer form as decimal text.
type String struct{}

// Strict accepts only the wire form the format writes.
type Strict struct{}

// Flexible accepts integers, floats, and numeric strings for every format.
type Flexible struct{}

func (Strict) flexible() bool   { return false }
func (Flexible) flexible() bool { return true }

// DurationSeconds encodes a time.Duration as a count of seconds.
//
// Integer and String round to the nearest second with halves going up and
// reject negative durations. Float rounds with math.Round and keeps the sign,
// so -2.5s encodes as -3 even though negative input is rejected on decode.
type DurationSeconds[F Format, M Strictness] struct{}

// Strict aliases for the common forms.
type (
	DurationSecondsInt    = DurationSeconds[Integer, Strict]
	DurationSecondsFloat  = DurationSeconds[Float, Strict]
	DurationSecondsString = DurationSeconds[String, Strict]
)

func (DurationSeconds[F, M]) EncodeAs(d time.Duration) (Node, error) {
	var f F
	return f.encodeSeconds(d)
}

func (DurationSeconds[F, M]) DecodeAs(v Value) (time.Duration, error) {
	var m M
	if m.flexible() {
		return durationFlexible(v)
	}
	var f F
	return f.decodeStrict(v)
}

// roundedSeconds counts whole seconds, adding one when the remainder is at
// least half a second.
func roundedSeconds(d time.Duration) (uint64, error) {
	if d < 0 {
		return 0, &EncodeError{Err: ErrOutOfRange, Type: "time.Duration", Cause: fmt.Errorf("negative duration %s", d)}
	}
	secs := uint64(d / time.Second)
	if d%time.Second >= 500*time.Millisecond {
		secs++
	}
	return secs, nil
}

func (Integer) encodeSeconds(d time.Duration) (Node, error) {
	secs, err := roundedSeconds(d)
	if err != nil {
		return Node{}, err
	}
	return UintNode(secs), nil
}

func (Integer) decodeStrict(v Value) (time.Duration, error) {
	switch v.Kind() {
	case KindUint:
		return durationFromUint(v, v.Uint())
	case KindInt:
		if v.Int() < 0 {
			return 0, durationOutOfRange(v)
		}
		return durationFromUint(v, uint64(v.Int()))
	}
	return 0, invalidShape(v, "unsigned integer seconds")
}

func (Float) encodeSeconds(d time.Duration) (Node, error) {
	return FloatNode(math.Round(d.Seconds())), nil
}

// Hosts may print whole floats as integers, so every numeric token is accepted.
func (Float) decodeStrict(v Value) (time.Duration, error) {
	switch v.Kind() {
	case KindFloat:
		return durationFromFloat(v, v.Float())
	case KindUint:
		return durationFromUint(v, v.Uint())
	case KindInt:
		return durationFromFloat(v, float64(v.Int()))
	}
	return 0, invalidShape(v, "float seconds")
}

func (String) encodeSeconds(d time.Duration) (Node, error) {
	secs, err := roundedSeconds(d)
	if err != nil {
		return Node{}, err
	}
	return StringNode(strconv.FormatUint(secs, 10)), nil
}

func (String) decodeStrict(v Value) (time.Duration, error) {
	if v.Kind() != KindString {
		return 0, invalidShape(v, "seconds as a string of digits")
	}
	s := v.Text()
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, invalidValue(v, "seconds as a string of digits")
	}
	secs, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, durationOutOfRange(v)
	}
	return durationFromUint(v, secs)
}

// durationFlexible accepts any numeric token or numeric string.
func durationFlexible(v Value) (time.Duration, error) {
	switch v.Kind() {
	case KindUint:
		return durationFromUint(v, v.Uint())
	case KindInt:
		if v.Int() < 0 {
			return 0, durationOutOfRange(v)
		}
		return durationFromUint(v, uint64(v.Int()))
	case KindFloat:
		return durationFromFloat(v, v.Float())
	case KindString:
		s := strings.TrimSpace(v.Text())
		if secs, err := strconv.ParseUint(s, 10, 64); err == nil {
			return durationFromUint(v, secs)
		}
		if strings.HasPrefix(s, "-") {
			if _, err := cast.ToFloat64E(s); err == nil {
				return 0, durationOutOfRange(v)
			}
		}
		if strings.ContainsAny(s, "xXpP_") {
			return 0, invalidValue(v, "numeric seconds")
		}
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return 0, &DecodeError{Err: ErrInvalidValue, Input: v.Literal(), Expected: "numeric seconds", Cause: err}
		}
		return durationFromFloat(v, f)
	}
	return 0, invalidShape(v, "seconds as integer, float, or string")
}

func durationFromUint(v Value, secs uint64) (time.Duration, error) {
	if secs > maxDurationSeconds {
		return 0, durationOutOfRange(v)
	}
	return time.Duration(secs) * time.Second, nil
}

func durationFromFloat(v Value, secs float64) (time.Duration, error) {
	if math.IsNaN(secs) || math.IsInf(secs, 0) || secs < 0 {
		return 0, durationOutOfRange(v)
	}
	nanos := math.Round(secs * float64(time.Second))
	if nanos >= math.MaxInt64 {
		return 0, durationOutOfRange(v)
	}
	return time.Duration(nanos), nil
}

func durationOutOfRange(v Value) error {
	return &DecodeError{Err: ErrOutOfRange, Input: v.Literal(), Expected: "a non-negative duration in seconds"}
}
