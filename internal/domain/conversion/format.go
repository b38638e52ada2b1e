package conversion

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Decimal notation is used for magnitudes in [decimalMin, decimalMax).
const (
	decimalMin = 1e-3
	decimalMax = 1e7
)

const unmappableChar = "?"

// FormatValue renders v as text.
//
// Integers print in decimal and chars print as the character itself.
// Floating values print the shortest digits that round-trip at their own
// width and always carry a fractional part.
func FormatValue(v Value) string {
	switch v.kind {
	case Float:
		return formatFloating(v.f, 32)
	case Double:
		return formatFloating(v.f, 64)
	case Char:
		return formatChar(uint16(v.i))
	}

	return strconv.FormatInt(v.i, 10)
}

func formatChar(c uint16) string {
	r := rune(c)
	if utf16.IsSurrogate(r) {
		return unmappableChar
	}

	return string(r)
}

func formatFloating(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	magnitude := math.Abs(f)
	if magnitude == 0 || (magnitude >= decimalMin && magnitude < decimalMax) {
		return withFraction(strconv.FormatFloat(f, 'f', -1, bitSize))
	}

	// strconv yields "1.5E+10"; the printed form is "1.5E10".
	s := strconv.FormatFloat(f, 'E', -1, bitSize)

	mantissa, exponent, _ := strings.Cut(s, "E")

	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return s
	}

	return withFraction(mantissa) + "E" + strconv.Itoa(exp)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}

	return s + ".0"
}
