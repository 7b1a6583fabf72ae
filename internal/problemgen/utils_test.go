package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidP2Number(t *testing.T) {
	assert.True(t, IsValidP2Number(0))
	assert.True(t, IsValidP2Number(999))
	assert.False(t, IsValidP2Number(-1))
	assert.False(t, IsValidP2Number(1000))
}

func TestFormatRwf(t *testing.T) {
	assert.Equal(t, "350 Rwf", FormatRwf(350))
}

func TestShapeProperties(t *testing.T) {
	sq, ok := ShapeProperties(ShapeSquare)
	assert.True(t, ok)
	assert.Equal(t, ShapeInfo{Sides: 4, Angles: 4, EqualSides: true}, sq)

	circle, ok := ShapeProperties(ShapeCircle)
	assert.True(t, ok)
	assert.Zero(t, circle.Sides)

	_, ok = ShapeProperties("hexagon")
	assert.False(t, ok)
}

func TestConversionFactor(t *testing.T) {
	assert.Equal(t, 100.0, ConversionFactor("m", "cm"))
	assert.Equal(t, 1000.0, ConversionFactor("kg", "g"))
	assert.InDelta(t, 0.001, ConversionFactor("ml", "l"), 1e-12)
	assert.Equal(t, 1.0, ConversionFactor("km", "m"))
}

func TestAnswer_String(t *testing.T) {
	assert.Equal(t, "42", Numeric(42).String())
	assert.Equal(t, "2.5", Numeric(2.5).String())
	assert.Equal(t, "cm", Text("cm").String())
	assert.True(t, Numeric(1).IsNumeric())
	assert.Equal(t, AnswerText, Text("x").Kind())
}
