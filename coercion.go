package reqparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Coercer converts one raw input value into a typed value.
//
// A Coercer must be pure: it may not touch shared mutable state, because a
// single instance is shared by every parse of every request. Bad input is
// reported with a *ValidationError (see Invalid); returning any other error
// is a programming error and makes the parse panic.
type Coercer interface {
	Coerce(raw string) (any, error)
}

// CoerceFunc adapts an ordinary function to the Coercer interface.
type CoerceFunc func(raw string) (any, error)

// Coerce calls f(raw).
func (f CoerceFunc) Coerce(raw string) (any, error) {
	return f(raw)
}

// Built-in coercers.
var (
	// String passes the raw value through unchanged.
	String Coercer = CoerceFunc(coerceString)
	// Int parses a base 10 integer into an int.
	Int Coercer = CoerceFunc(coerceInt)
	// NonNegativeInt is Int that also rejects values below zero.
	NonNegativeInt Coercer = CoerceFunc(coerceNonNegativeInt)
	// Bool accepts true/1/yes/on and false/0/no/off, case insensitive.
	Bool Coercer = CoerceFunc(coerceBool)
	// Float parses a finite float64.
	Float Coercer = CoerceFunc(coerceFloat)
	// UUID parses a uuid.UUID in any form accepted by uuid.Parse.
	UUID Coercer = CoerceFunc(coerceUUID)
)

func coerceString(raw string) (any, error) {
	return raw, nil
}

func coerceInt(raw string) (any, error) {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, Invalid(MsgIntegerExpected)
	}
	return i, nil
}

func coerceNonNegativeInt(raw string) (any, error) {
	v, err := coerceInt(raw)
	if err != nil {
		return nil, err
	}
	if v.(int) < 0 {
		return nil, Invalid(MsgIntegerExpected)
	}
	return v, nil
}

func coerceBool(raw string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return nil, Invalid(MsgBooleanExpected)
	}
}

func coerceFloat(raw string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, Invalid(MsgFloatExpected)
	}
	return f, nil
}

func coerceUUID(raw string) (any, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, Invalid(MsgUUIDExpected)
	}
	return id, nil
}

// Pattern returns a Coercer that accepts raw values matched by re and
// returns them unchanged. Anchor re yourself if the whole value must match.
func Pattern(re *regexp.Regexp, message string) Coercer {
	return CoerceFunc(func(raw string) (any, error) {
		if re.MatchString(raw) {
			return raw, nil
		}
		return nil, Invalid(message)
	})
}

// Trimmed strips leading and trailing whitespace before delegating to c.
func Trimmed(c Coercer) Coercer {
	return CoerceFunc(func(raw string) (any, error) {
		return c.Coerce(strings.TrimSpace(raw))
	})
}

// Choices converts a typed list of allowed values into the form expected by
// Argument.Choices.
func Choices[T any](values ...T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
