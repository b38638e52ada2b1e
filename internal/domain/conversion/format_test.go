package conversion

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"int", IntValue(1), "1"},
		{"negative int", IntValue(-5), "-5"},
		{"long", LongValue(math.MaxInt64), "9223372036854775807"},
		{"byte", ByteValue(-56), "-56"},
		{"short", ShortValue(-25536), "-25536"},
		{"char control", CharValue(1), "\u0001"},
		{"char letter", CharValue(65), "A"},
		{"char lone surrogate", CharValue(0xD800), "?"},
		{"double whole", DoubleValue(1), "1.0"},
		{"double fraction", DoubleValue(1.1), "1.1"},
		{"double zero", DoubleValue(0), "0.0"},
		{"double negative zero", DoubleValue(math.Copysign(0, -1)), "-0.0"},
		{"double lower decimal bound", DoubleValue(0.001), "0.001"},
		{"double below decimal range", DoubleValue(1.5e-4), "1.5E-4"},
		{"double upper decimal range", DoubleValue(9999999), "9999999.0"},
		{"double at scientific bound", DoubleValue(1e7), "1.0E7"},
		{"double large", DoubleValue(1.2345e10), "1.2345E10"},
		{"double max", DoubleValue(math.MaxFloat64), "1.7976931348623157E308"},
		{"float whole", FloatValue(1), "1.0"},
		{"float fraction", FloatValue(1.1), "1.1"},
		{"float scientific", FloatValue(1e10), "1.0E10"},
		{"nan", DoubleValue(math.NaN()), "NaN"},
		{"positive infinity", DoubleValue(math.Inf(1)), "Infinity"},
		{"negative infinity", FloatValue(float32(math.Inf(-1))), "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value))
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		text string
		want Value
	}{
		{"int", Int, "42", IntValue(42)},
		{"int hex", Int, "0x10", IntValue(16)},
		{"long", Long, "-9000000000", LongValue(-9000000000)},
		{"byte", Byte, "-128", ByteValue(-128)},
		{"short", Short, " 300 ", ShortValue(300)},
		{"char", Char, "65", CharValue(65)},
		{"float", Float, "1.1", FloatValue(1.1)},
		{"double", Double, "1e20", DoubleValue(1e20)},
		{"double infinity", Double, "-Infinity", DoubleValue(math.Inf(-1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.kind, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue_Invalid(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		text string
	}{
		{"byte out of range", Byte, "200"},
		{"char negative", Char, "-1"},
		{"int not a number", Int, "one"},
		{"int fraction", Int, "1.5"},
		{"float garbage", Float, "1.1.1"},
		{"double empty", Double, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseValue(tt.kind, tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLiteral))
		})
	}
}

func TestParseValue_UnknownKind(t *testing.T) {
	_, err := ParseValue(Kind(42), "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" DOUBLE ")
	require.NoError(t, err)
	assert.Equal(t, Double, got)

	_, err = ParseKind("boolean")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestKind_StringAndBits(t *testing.T) {
	assert.Equal(t, "Char", Char.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, 8, Byte.Bits())
	assert.Equal(t, 16, Char.Bits())
	assert.Equal(t, 16, Short.Bits())
	assert.Equal(t, 32, Float.Bits())
	assert.Equal(t, 64, Double.Bits())
	assert.True(t, Float.IsFloating())
	assert.False(t, Long.IsFloating())
}
