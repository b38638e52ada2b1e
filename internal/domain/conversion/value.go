package conversion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLiteral is returned when a literal cannot be read as the requested kind.
var ErrInvalidLiteral = errors.New("invalid literal")

// Value is a primitive value tagged with its kind.
//
// Integral kinds are stored sign-extended (zero-extended for Char) in i;
// floating kinds are stored in f. A Float value always holds a number that
// is exactly representable as float32.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// IntValue returns an int value.
func IntValue(v int32) Value { return Value{kind: Int, i: int64(v)} }

// LongValue returns a long value.
func LongValue(v int64) Value { return Value{kind: Long, i: v} }

// FloatValue returns a float value.
func FloatValue(v float32) Value { return Value{kind: Float, f: float64(v)} }

// DoubleValue returns a double value.
func DoubleValue(v float64) Value { return Value{kind: Double, f: v} }

// ByteValue returns a byte value.
func ByteValue(v int8) Value { return Value{kind: Byte, i: int64(v)} }

// CharValue returns a char value.
func CharValue(v uint16) Value { return Value{kind: Char, i: int64(v)} }

// ShortValue returns a short value.
func ShortValue(v int16) Value { return Value{kind: Short, i: int64(v)} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Int64 returns the integral content of the value. Floating values are
// converted as a long conversion would.
func (v Value) Int64() int64 {
	if v.kind.IsFloating() {
		return floatToInt64(v.f)
	}

	return v.i
}

// Float64 returns the numeric content of the value as a float64.
func (v Value) Float64() float64 {
	if v.kind.IsFloating() {
		return v.f
	}

	return float64(v.i)
}

// String renders the value the way the demo programs print it.
func (v Value) String() string {
	return FormatValue(v)
}

// ParseValue reads a literal as a value of the given kind. Integral kinds
// accept any base prefix understood by strconv; Char accepts its numeric
// code unit.
func ParseValue(kind Kind, text string) (Value, error) {
	literal := strings.TrimSpace(text)

	switch kind {
	case Int, Long, Byte, Short:
		n, err := strconv.ParseInt(literal, 0, kind.Bits())
		if err != nil {
			return Value{}, invalidLiteral(kind, text, err)
		}

		return Value{kind: kind, i: n}, nil
	case Char:
		n, err := strconv.ParseUint(literal, 0, kind.Bits())
		if err != nil {
			return Value{}, invalidLiteral(kind, text, err)
		}

		return CharValue(uint16(n)), nil
	case Float:
		f, err := strconv.ParseFloat(literal, 32)
		if err != nil {
			return Value{}, invalidLiteral(kind, text, err)
		}

		return FloatValue(float32(f)), nil
	case Double:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return Value{}, invalidLiteral(kind, text, err)
		}

		return DoubleValue(f), nil
	}

	return Value{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

func invalidLiteral(kind Kind, text string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}

	return fmt.Errorf("%w: %s %q: %w", ErrInvalidLiteral, kind, text, err)
}
