package morph

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Representable instants: years -262144 through 262143, UTC.
const (
	minTimestampSeconds int64 = -8334632937600
	maxTimestampSeconds int64 = 8210298412799
)

// TimestampSecondsFromAny reads a UTC instant from seconds since the Unix
// epoch given as an integer, a float, or a decimal string.
//
// Strings are "<seconds>" or "<seconds>.<fraction>" with at most nine
// fraction digits. Fractions always add to the instant, so "-1.5" is half a
// second before the epoch and "-0.5" half a second after it. Floats keep
// their fraction at nanosecond precision, truncated.
//
// Instants encode as integer seconds when they have no sub-second part and
// as a decimal string otherwise, both of which decode back unchanged.
type TimestampSecondsFromAny struct{}

func (TimestampSecondsFromAny) EncodeAs(t time.Time) (Node, error) {
	secs, nanos := t.Unix(), t.Nanosecond()
	if secs < minTimestampSeconds || secs > maxTimestampSeconds {
		return Node{}, &EncodeError{Err: ErrOutOfRange, Type: "time.Time", Cause: fmt.Errorf("%s outside supported years", t.UTC())}
	}
	if nanos == 0 {
		return IntNode(secs), nil
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", nanos), "0")
	return StringNode(strconv.FormatInt(secs, 10) + "." + frac), nil
}

func (TimestampSecondsFromAny) DecodeAs(v Value) (time.Time, error) {
	switch v.Kind() {
	case KindInt:
		return timestampAt(v, v.Int(), 0)
	case KindUint:
		if v.Uint() > math.MaxInt64 {
			return time.Time{}, timestampOutOfRange(v)
		}
		return timestampAt(v, int64(v.Uint()), 0)
	case KindFloat:
		return timestampFromFloat(v)
	case KindString:
		return timestampFromString(v)
	}
	return time.Time{}, invalidShape(v, "a unix timestamp as integer, float, or string")
}

func timestampFromFloat(v Value) (time.Time, error) {
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, timestampOutOfRange(v)
	}
	secs := math.Trunc(f)
	if secs < float64(minTimestampSeconds) || secs > float64(maxTimestampSeconds) {
		return time.Time{}, timestampOutOfRange(v)
	}
	nanos := int64(math.Abs((f - secs) * 1e9))
	return timestampAt(v, int64(secs), nanos)
}

func timestampFromString(v Value) (time.Time, error) {
	s := v.Text()
	parts := strings.Split(s, ".")
	switch len(parts) {
	case 1:
		secs, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return time.Time{}, timestampNotNumeric(v, err)
		}
		return timestampAt(v, secs, 0)
	case 2:
		secs, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return time.Time{}, timestampNotNumeric(v, err)
		}
		digits := utf8.RuneCountInString(parts[1])
		if digits > 9 {
			return time.Time{}, &DecodeError{
				Err:   ErrPrecision,
				Input: s,
				msg:   fmt.Sprintf("DateTimes only support nanosecond precision but '%s' has more than 9 digits.", s),
			}
		}
		frac, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return time.Time{}, timestampNotNumeric(v, err)
		}
		for i := digits; i < 9; i++ {
			frac *= 10
		}
		return timestampAt(v, secs, int64(frac))
	}
	return time.Time{}, invalidValue(v, "a unix timestamp with at most one '.'")
}

// timestampAt builds the instant after checking the supported range.
func timestampAt(v Value, secs, nanos int64) (time.Time, error) {
	if secs < minTimestampSeconds || secs > maxTimestampSeconds {
		return time.Time{}, timestampOutOfRange(v)
	}
	return time.Unix(secs, nanos).UTC(), nil
}

func timestampOutOfRange(v Value) error {
	return &DecodeError{
		Err:   ErrOutOfRange,
		Input: v.Literal(),
		msg:   fmt.Sprintf("Invalid or out of range value '%s' for DateTime", v.Literal()),
	}
}

func timestampNotNumeric(v Value, cause error) error {
	return &DecodeError{
		Err:      ErrInvalidValue,
		Input:    v.Literal(),
		Expected: "a unix timestamp as integer, float, or string",
		Cause:    cause,
	}
}
