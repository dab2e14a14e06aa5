package onlyargs

import (
	"strconv"
	"unicode/utf8"
)

// Path is a filesystem path argument. Path values are accepted verbatim,
// with no validation or normalization.
type Path string

func (p Path) String() string { return string(p) }

// RawString is a text argument accepted without UTF-8 validation, for
// values that must round-trip platform input byte for byte.
type RawString string

func (s RawString) String() string { return string(s) }

// ParseIntValue converts token into a signed integer of the target width.
// A bits value of 0 means the platform int size. Overflow and malformed
// input surface as a ParseIntError wrapping the strconv failure; values
// are never truncated or clamped.
func ParseIntValue[T int | int8 | int16 | int32 | int64](arg, token string, bits int) (T, error) {
	n, err := strconv.ParseInt(token, 10, bits)
	if err != nil {
		return 0, NewParseIntError(arg, token, err)
	}
	return T(n), nil
}

// ParseUintValue is ParseIntValue for the unsigned integer widths.
func ParseUintValue[T uint | uint8 | uint16 | uint32 | uint64](arg, token string, bits int) (T, error) {
	n, err := strconv.ParseUint(token, 10, bits)
	if err != nil {
		return 0, NewParseIntError(arg, token, err)
	}
	return T(n), nil
}

// ParseFloatValue converts token into a floating-point number of the
// target width, reporting failures as a ParseFloatError.
func ParseFloatValue[T float32 | float64](arg, token string, bits int) (T, error) {
	f, err := strconv.ParseFloat(token, bits)
	if err != nil {
		return 0, NewParseFloatError(arg, token, err)
	}
	return T(f), nil
}

// ParseStringValue validates token as UTF-8 text. Invalid input is
// reported as a ParseStrError; valid input passes through unchanged.
func ParseStringValue(arg, token string) (string, error) {
	if !utf8.ValidString(token) {
		return "", NewParseStrError(arg, token)
	}
	return token, nil
}

// ParseBoolValue converts token with strconv.ParseBool semantics. It is
// not used by generated parsers, which treat bool fields as flags, but is
// available to hand-written ones.
func ParseBoolValue(arg, token string) (bool, error) {
	b, err := strconv.ParseBool(token)
	if err != nil {
		return false, NewParseBoolError(arg, token, err)
	}
	return b, nil
}
