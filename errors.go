package morph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidShape indicates the wire token's kind is not accepted by the strategy
	// (e.g. a boolean where a number was expected).
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidValue indicates the token has an accepted kind but breaks the
	// strategy's rules (e.g. a non-numeric timestamp string).
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange indicates the token is numerically plausible but maps to no
	// representable value.
	ErrOutOfRange = errors.New("out of range")

	// ErrPrecision indicates the token carries more precision than the target supports.
	ErrPrecision = errors.New("precision overflow")

	// ErrInvalidKey indicates a map key cannot be represented by the host format.
	ErrInvalidKey = errors.New("invalid map key")

	// ErrUnknownStrategy indicates a struct tag names a strategy that was never registered.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrStrategyType indicates a named strategy was bound to a field of the wrong type.
	ErrStrategyType = errors.New("strategy type mismatch")

	// ErrMissingKey indicates a sealed value was encoded or decoded without a seal key.
	ErrMissingKey = errors.New("missing seal key")

	// ErrSeal indicates sealing a value failed.
	ErrSeal = errors.New("seal failed")

	// ErrUnseal indicates opening a sealed value failed.
	ErrUnseal = errors.New("unseal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// DecodeError reports a token a strategy could not accept.
// It wraps a sentinel error with the offending literal and what was expected instead.
type DecodeError struct {
	Err      error  // Underlying sentinel error (ErrInvalidShape, ErrOutOfRange, etc.)
	Input    string // Literal form of the offending token
	Expected string // What the strategy accepts
	Path     string // Location inside nested containers, e.g. [2]["name"]
	Cause    error  // Original error from a nested strategy or parser
	msg      string // Overrides the generated message when set
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	switch {
	case e.msg != "":
		b.WriteString(e.msg)
	case e.Expected != "":
		fmt.Fprintf(&b, "%s: %s, expected %s", e.Err.Error(), e.Input, e.Expected)
	default:
		fmt.Fprintf(&b, "%s: %s", e.Err.Error(), e.Input)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a value a strategy could not represent.
type EncodeError struct {
	Err   error  // Underlying sentinel error
	Type  string // Go type of the offending value
	Path  string // Location inside nested containers
	Cause error  // Original error from a nested strategy or the host
}

func (e *EncodeError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s encoding %s", e.Err.Error(), e.Type)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// ConfigError represents a strategy binding error.
// It wraps a sentinel error with additional context about the field and strategy.
type ConfigError struct {
	Err      error  // Underlying sentinel error (ErrUnknownStrategy, ErrStrategyType)
	Field    string // Field name that triggered the error
	Strategy string // Strategy name that was missing or mismatched
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Strategy != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Strategy, e.Field)
	}
	if e.Strategy != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Strategy)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

// Unwrap exposes both the sentinel and the cause, so errors.Is matches
// either a codec failure or the strategy error behind it.
func (e *CodecError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// invalidShape reports a token whose kind the strategy does not accept.
func invalidShape(v Value, expected string) error {
	return &DecodeError{Err: ErrInvalidShape, Input: v.Literal(), Expected: expected}
}

// invalidValue reports a token of the right kind that breaks the strategy's rules.
func invalidValue(v Value, expected string) error {
	return &DecodeError{Err: ErrInvalidValue, Input: v.Literal(), Expected: expected}
}

// newConfigError creates a ConfigError for binding failures.
func newConfigError(sentinel error, strategy, field string) error {
	return &ConfigError{
		Err:      sentinel,
		Strategy: strategy,
		Field:    field,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}

// atIndex prefixes a nested strategy error with a sequence position.
func atIndex(err error, i int) error {
	return withPath(err, fmt.Sprintf("[%d]", i))
}

// atKey prefixes a nested strategy error with a map key.
func atKey(err error, key string) error {
	return withPath(err, fmt.Sprintf("[%q]", key))
}

// withPath prepends a path segment to decode/encode errors, wrapping anything else.
func withPath(err error, segment string) error {
	var de *DecodeError
	if errors.As(err, &de) {
		clone := *de
		clone.Path = segment + de.Path
		return &clone
	}
	var ee *EncodeError
	if errors.As(err, &ee) {
		clone := *ee
		clone.Path = segment + ee.Path
		return &clone
	}
	return fmt.Errorf("%s: %w", segment, err)
}
