package problemgen

import (
	"fmt"

	"github.com/abhisek/p2tutor/internal/numwords"
)

// IsValidP2Number reports whether n lies in the P2 number range 0-999.
func IsValidP2Number(n int) bool {
	return n >= 0 && n <= numwords.Max
}

// FormatRwf formats an amount of Rwandan francs, e.g. "350 Rwf".
func FormatRwf(amount int) string {
	return fmt.Sprintf("%d Rwf", amount)
}

// Shape is a P2 geometric figure.
type Shape string

const (
	ShapeSquare    Shape = "square"
	ShapeRectangle Shape = "rectangle"
	ShapeTriangle  Shape = "triangle"
	ShapeCircle    Shape = "circle"
)

// Shapes lists the figures in the P2 geometry curriculum.
var Shapes = []Shape{ShapeSquare, ShapeRectangle, ShapeTriangle, ShapeCircle}

// ShapeInfo holds the countable properties of a shape.
type ShapeInfo struct {
	Sides      int
	Angles     int
	EqualSides bool
}

var shapeProperties = map[Shape]ShapeInfo{
	ShapeSquare:    {Sides: 4, Angles: 4, EqualSides: true},
	ShapeRectangle: {Sides: 4, Angles: 4},
	ShapeTriangle:  {Sides: 3, Angles: 3},
	ShapeCircle:    {},
}

// ShapeProperties returns the properties of s. The second result is false
// for shapes outside the curriculum.
func ShapeProperties(s Shape) (ShapeInfo, bool) {
	info, ok := shapeProperties[s]
	return info, ok
}

type unitPair struct{ from, to string }

var conversionFactors = map[unitPair]float64{
	{"m", "cm"}: 100,
	{"cm", "m"}: 0.01,
	{"l", "ml"}: 1000,
	{"ml", "l"}: 0.001,
	{"kg", "g"}: 1000,
	{"g", "kg"}: 0.001,
}

// ConversionFactor returns the multiplier that converts an amount in from
// units to to units. Unknown pairs return 1.
func ConversionFactor(from, to string) float64 {
	if f, ok := conversionFactors[unitPair{from, to}]; ok {
		return f
	}
	return 1
}
