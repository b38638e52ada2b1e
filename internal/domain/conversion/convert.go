package conversion

import "math"

// Convert applies the cast from v's kind to the target kind.
//
// Integral targets keep the low-order bits of the source. Floating sources
// are truncated toward zero and saturated at the int or long range first,
// with NaN becoming zero; byte, short and char then narrow from int.
// Conversions between numeric kinds never fail.
func Convert(v Value, to Kind) Value {
	if v.kind.IsFloating() {
		return convertFloating(v.f, to)
	}

	return convertIntegral(v.i, to)
}

func convertIntegral(n int64, to Kind) Value {
	switch to {
	case Int:
		return IntValue(int32(n))
	case Long:
		return LongValue(n)
	case Float:
		return FloatValue(float32(n))
	case Double:
		return DoubleValue(float64(n))
	case Byte:
		return ByteValue(int8(n))
	case Char:
		return CharValue(uint16(n))
	case Short:
		return ShortValue(int16(n))
	}

	return Value{kind: to}
}

func convertFloating(f float64, to Kind) Value {
	switch to {
	case Int:
		return IntValue(floatToInt32(f))
	case Long:
		return LongValue(floatToInt64(f))
	case Float:
		return FloatValue(float32(f))
	case Double:
		return DoubleValue(f)
	case Byte, Char, Short:
		return convertIntegral(int64(floatToInt32(f)), to)
	}

	return Value{kind: to}
}

func floatToInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}

	return int32(f)
}

func floatToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}

	return int64(f)
}
