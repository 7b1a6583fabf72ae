package problemgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/p2tutor/internal/difficulty"
)

var shapeDescriptions = map[Shape]string{
	ShapeSquare:    "has 4 equal sides and 4 right angles",
	ShapeRectangle: "has 4 sides with opposite sides equal and 4 right angles",
	ShapeTriangle:  "has 3 sides and 3 angles",
	ShapeCircle:    "is round with no corners",
}

func geometry(rng *rand.Rand, _ difficulty.Level) Problem {
	shape := pick(rng, Shapes)
	info, _ := ShapeProperties(shape)

	var prompt string
	var answer Answer
	switch pick(rng, []string{"identify", "properties", "count_sides"}) {
	case "identify":
		prompt = fmt.Sprintf("What shape %s?", shapeDescriptions[shape])
		answer = Text(string(shape))
	case "properties":
		switch shape {
		case ShapeRectangle:
			prompt = "How many right angles does a rectangle have?"
			answer = num(info.Angles)
		case ShapeCircle:
			prompt = "How many corners does a circle have?"
			answer = num(info.Angles)
		default:
			prompt = fmt.Sprintf("How many sides does a %s have?", shape)
			answer = num(info.Sides)
		}
	default:
		prompt = fmt.Sprintf("How many sides does a %s have?", shape)
		answer = num(info.Sides)
	}

	return Problem{
		Topic:  TopicGeometry,
		Prompt: prompt,
		Answer: answer,
		Hints: []string{
			fmt.Sprintf("Let's think about the properties of a %s", shape),
			describeShape(shape, info),
			fmt.Sprintf("The answer is: %s", answer),
		},
	}
}

func describeShape(s Shape, info ShapeInfo) string {
	if info.Sides == 0 {
		return fmt.Sprintf("A %s is round: it has no sides and no corners", s)
	}
	equal := "not all equal"
	if info.EqualSides {
		equal = "all equal"
	}
	return fmt.Sprintf("A %s has %d sides (%s) and %d corners", s, info.Sides, equal, info.Angles)
}

func perimeter(rng *rand.Rand, _ difficulty.Level) Problem {
	switch pick(rng, []Shape{ShapeSquare, ShapeRectangle, ShapeTriangle}) {
	case ShapeSquare:
		side := intIn(rng, 3, 15)
		p := 4 * side
		return Problem{
			Topic:  TopicPerimeter,
			Prompt: fmt.Sprintf("Find the perimeter of a square with side length %d cm", side),
			Answer: num(p),
			Hints: []string{
				fmt.Sprintf("A square has 4 equal sides of length %d cm", side),
				"Perimeter = side + side + side + side",
				fmt.Sprintf("Perimeter = 4 × %d = %d cm", side, p),
			},
		}
	case ShapeRectangle:
		length := intIn(rng, 5, 20)
		width := intIn(rng, 3, length-1)
		p := 2 * (length + width)
		return Problem{
			Topic:  TopicPerimeter,
			Prompt: fmt.Sprintf("Find the perimeter of a rectangle with length %d cm and width %d cm", length, width),
			Answer: num(p),
			Hints: []string{
				fmt.Sprintf("A rectangle has length %d cm and width %d cm", length, width),
				"Perimeter = length + width + length + width",
				"Perimeter = 2 × (length + width)",
				fmt.Sprintf("Perimeter = 2 × (%d + %d) = 2 × %d = %d cm", length, width, length+width, p),
			},
		}
	default:
		s1, s2, s3 := intIn(rng, 3, 12), intIn(rng, 3, 12), intIn(rng, 3, 12)
		p := s1 + s2 + s3
		return Problem{
			Topic:  TopicPerimeter,
			Prompt: fmt.Sprintf("Find the perimeter of a triangle with sides %d cm, %d cm, and %d cm", s1, s2, s3),
			Answer: num(p),
			Hints: []string{
				fmt.Sprintf("A triangle has three sides: %d cm, %d cm, and %d cm", s1, s2, s3),
				"Perimeter = side1 + side2 + side3",
				fmt.Sprintf("Perimeter = %d + %d + %d = %d cm", s1, s2, s3, p),
			},
		}
	}
}
