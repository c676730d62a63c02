package pvl

import (
	"strconv"
	"strings"

	"github.com/grafana/regexp"
	"github.com/pkg/errors"
)

// ValueType is the semantic type derived from a value's raw text.
type ValueType int

// Value types. Flag is a bare identifier not wrapped in quotes, distinct
// from String. BitMask is a based-integer literal such as 2#0101#.
const (
	TypeUndetermined ValueType = iota
	TypeArray
	TypeString
	TypeFloat
	TypeInteger
	TypeBool
	TypeFlag
	TypeBitMask
)

// String returns the type name for diagnostics.
func (t ValueType) String() string {
	switch t {
	case TypeUndetermined:
		return "Undetermined"
	case TypeArray:
		return "Array"
	case TypeString:
		return "String"
	case TypeFloat:
		return "Float"
	case TypeInteger:
		return "Integer"
	case TypeBool:
		return "Bool"
	case TypeFlag:
		return "Flag"
	case TypeBitMask:
		return "BitMask"
	}
	return "Unknown"
}

// Classification patterns, compiled once and shared read-only across all
// scans. classify tries them in declaration order.
//
// Ordering is critical:
//  1. Quoted TRUE/FALSE before generic quoted strings, so a quoted boolean
//     is never a plain String.
//  2. Quoted strings before anything numeric-looking.
//  3. Parenthesized arrays before element types.
//  4. Floats before integers (a fractional part wins).
//  5. Integers reject a digit run followed by '#', so a bit mask is never
//     misread as Integer.
//  6. Flags (bare identifiers) before bit masks.
//  7. Bit masks last among the determinate types.
var (
	boolPattern    = regexp.MustCompile(`^"(TRUE|FALSE)"$`)
	stringPattern  = regexp.MustCompile(`^".*"$`)
	arrayPattern   = regexp.MustCompile(`^\(.*\)$`)
	floatPattern   = regexp.MustCompile(`^-*[0-9]+\.[0-9]`)
	integerPattern = regexp.MustCompile(`^-*[0-9]+([^#]|$)`)
	flagPattern    = regexp.MustCompile(`^[a-zA-Z_]+[a-zA-Z0-9]+$`)
	bitMaskPattern = regexp.MustCompile(`^[1-8]*#[0-1]+#$`)
)

// classify maps raw value text to its semantic type, first match wins.
// Classification is pure and idempotent: reclassifying a value's raw text
// always yields the same type.
func classify(raw string) ValueType {
	switch {
	case boolPattern.MatchString(raw):
		return TypeBool
	case stringPattern.MatchString(raw):
		return TypeString
	case arrayPattern.MatchString(raw):
		return TypeArray
	case floatPattern.MatchString(raw):
		return TypeFloat
	case integerPattern.MatchString(raw):
		return TypeInteger
	case flagPattern.MatchString(raw):
		return TypeFlag
	case bitMaskPattern.MatchString(raw):
		return TypeBitMask
	}
	return TypeUndetermined
}

// Value is one raw value fragment with its derived type. The type is
// computed once at construction and never changes. Quoted values keep their
// quotes in raw form.
type Value struct {
	raw string
	typ ValueType
}

// NewValue classifies raw text into a Value.
func NewValue(raw string) Value {
	return Value{raw: raw, typ: classify(raw)}
}

// Raw returns the raw text backing the value.
func (v Value) Raw() string {
	return v.raw
}

// Type returns the value's classified type.
func (v Value) Type() ValueType {
	return v.typ
}

// float converts the raw text of a Float value with the given precision.
func (v Value) float(bits int) (float64, error) {
	if v.typ != TypeFloat {
		return 0, errors.Wrapf(ErrInvalidType, "%s value is not a Float", v.typ)
	}
	f, err := strconv.ParseFloat(v.raw, bits)
	if err != nil {
		return 0, errors.Wrapf(ErrValueParse, "%q as float: %v", v.raw, err)
	}
	return f, nil
}

// signed converts the raw text of an Integer value into bits-wide signed
// form.
func (v Value) signed(bits int) (int64, error) {
	if v.typ != TypeInteger {
		return 0, errors.Wrapf(ErrInvalidType, "%s value is not an Integer", v.typ)
	}
	n, err := strconv.ParseInt(v.raw, 10, bits)
	if err != nil {
		return 0, errors.Wrapf(ErrValueParse, "%q as int%d: %v", v.raw, bits, err)
	}
	return n, nil
}

// unsigned converts the raw text of an Integer value into bits-wide
// unsigned form.
func (v Value) unsigned(bits int) (uint64, error) {
	if v.typ != TypeInteger {
		return 0, errors.Wrapf(ErrInvalidType, "%s value is not an Integer", v.typ)
	}
	n, err := strconv.ParseUint(v.raw, 10, bits)
	if err != nil {
		return 0, errors.Wrapf(ErrValueParse, "%q as uint%d: %v", v.raw, bits, err)
	}
	return n, nil
}

// Float32 converts a Float value to float32.
func (v Value) Float32() (float32, error) {
	f, err := v.float(32)
	return float32(f), err
}

// Float64 converts a Float value to float64.
func (v Value) Float64() (float64, error) {
	return v.float(64)
}

// Int8 converts an Integer value to int8.
func (v Value) Int8() (int8, error) {
	n, err := v.signed(8)
	return int8(n), err
}

// Int16 converts an Integer value to int16.
func (v Value) Int16() (int16, error) {
	n, err := v.signed(16)
	return int16(n), err
}

// Int32 converts an Integer value to int32.
func (v Value) Int32() (int32, error) {
	n, err := v.signed(32)
	return int32(n), err
}

// Int64 converts an Integer value to int64.
func (v Value) Int64() (int64, error) {
	return v.signed(64)
}

// Uint8 converts an Integer value to uint8.
func (v Value) Uint8() (uint8, error) {
	n, err := v.unsigned(8)
	return uint8(n), err
}

// Uint16 converts an Integer value to uint16.
func (v Value) Uint16() (uint16, error) {
	n, err := v.unsigned(16)
	return uint16(n), err
}

// Uint32 converts an Integer value to uint32.
func (v Value) Uint32() (uint32, error) {
	n, err := v.unsigned(32)
	return uint32(n), err
}

// Uint64 converts an Integer value to uint64.
func (v Value) Uint64() (uint64, error) {
	return v.unsigned(64)
}

// Bool converts a Bool value. The raw form of a Bool is a quoted TRUE or
// FALSE, so the quotes are stripped before conversion.
func (v Value) Bool() (bool, error) {
	if v.typ != TypeBool {
		return false, errors.Wrapf(ErrInvalidType, "%s value is not a Bool", v.typ)
	}
	switch strings.Trim(v.raw, `"`) {
	case "TRUE":
		return true, nil
	case "FALSE":
		return false, nil
	}
	return false, errors.Wrapf(ErrValueParse, "%q as bool", v.raw)
}

// Text returns the raw text of a String value, quotes retained.
func (v Value) Text() (string, error) {
	if v.typ != TypeString {
		return "", errors.Wrapf(ErrInvalidType, "%s value is not a String", v.typ)
	}
	return v.raw, nil
}

// Flag returns the identifier text of a Flag value.
func (v Value) Flag() (string, error) {
	if v.typ != TypeFlag {
		return "", errors.Wrapf(ErrInvalidType, "%s value is not a Flag", v.typ)
	}
	return v.raw, nil
}

// Array splits an Array value into its elements, each trimmed and
// classified as its own Value.
//
// The interior is split on every comma with no quoting or nesting
// awareness, matching the label grammar: a comma inside a quoted element or
// a nested parenthesized span splits there too. This is a known limitation.
func (v Value) Array() ([]Value, error) {
	if v.typ != TypeArray {
		return nil, errors.Wrapf(ErrInvalidType, "%s value is not an Array", v.typ)
	}
	inner := v.raw[1 : len(v.raw)-1]
	parts := strings.Split(inner, ",")
	elems := make([]Value, 0, len(parts))
	for _, part := range parts {
		elems = append(elems, NewValue(strings.TrimSpace(part)))
	}
	return elems, nil
}
