package problemgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/p2tutor/internal/difficulty"
)

// unitChoice pairs an everyday object with the unit best suited to it.
type unitChoice struct {
	object string
	unit   string
}

var lengthObjects = []unitChoice{
	{"pencil", "cm"},
	{"book", "cm"},
	{"desk", "cm"},
	{"classroom", "m"},
	{"playground", "m"},
}

var capacityContainers = []unitChoice{
	{"spoon", "ml"},
	{"cup", "ml"},
	{"bottle", "ml"},
	{"bucket", "l"},
	{"tank", "l"},
}

var massObjects = []unitChoice{
	{"coin", "g"},
	{"feather", "g"},
	{"apple", "g"},
	{"book", "g"},
	{"person", "kg"},
	{"car", "kg"},
}

func length(rng *rand.Rand, _ difficulty.Level) Problem {
	// One time in three the learner picks a unit; otherwise two lengths
	// are compared.
	if rng.IntN(3) == 0 {
		c := pick(rng, lengthObjects)
		return Problem{
			Topic:  TopicLength,
			Prompt: fmt.Sprintf("What is the most appropriate unit to measure a %s? (cm, m, or km)", c.object),
			Answer: Text(c.unit),
			Hints: []string{
				fmt.Sprintf("We need to choose the best unit for measuring a %s", c.object),
				"Centimeters (cm) for small objects",
				"Meters (m) for medium objects",
				"Kilometers (km) for long distances",
				fmt.Sprintf("Best unit for %s: %s", c.object, c.unit),
			},
		}
	}

	l1 := intIn(rng, 10, 100)
	l2 := intIn(rng, 10, 100)
	for l2 == l1 {
		l2 = intIn(rng, 10, 100)
	}
	longer := fmt.Sprintf("%d cm", max(l1, l2))
	return Problem{
		Topic:  TopicLength,
		Prompt: fmt.Sprintf("Which is longer: %d cm or %d cm? (write the unit too, e.g. 12 cm)", l1, l2),
		Answer: Text(longer),
		Hints: []string{
			fmt.Sprintf("Compare %d cm and %d cm", l1, l2),
			"The larger number represents the longer length",
			fmt.Sprintf("Answer: %s is longer", longer),
		},
	}
}

func capacity(rng *rand.Rand, _ difficulty.Level) Problem {
	c := pick(rng, capacityContainers)
	return Problem{
		Topic:  TopicCapacity,
		Prompt: fmt.Sprintf("What is the most appropriate unit to measure the capacity of a %s? (ml or l)", c.object),
		Answer: Text(c.unit),
		Hints: []string{
			fmt.Sprintf("We need to choose the best unit for measuring a %s's capacity", c.object),
			"Milliliters (ml) for small amounts",
			"Liters (l) for larger amounts",
			fmt.Sprintf("Best unit for %s: %s", c.object, c.unit),
		},
	}
}

func mass(rng *rand.Rand, _ difficulty.Level) Problem {
	c := pick(rng, massObjects)
	return Problem{
		Topic:  TopicMass,
		Prompt: fmt.Sprintf("What is the most appropriate unit to measure the mass of a %s? (g or kg)", c.object),
		Answer: Text(c.unit),
		Hints: []string{
			fmt.Sprintf("We need to choose the best unit for measuring a %s's mass", c.object),
			"Grams (g) for light objects",
			"Kilograms (kg) for heavy objects",
			fmt.Sprintf("Best unit for %s: %s", c.object, c.unit),
		},
	}
}

// metricPair is a large unit and the small unit it splits into.
type metricPair struct {
	big, small         string // unit symbols
	bigName, smallName string
}

var (
	lengthPair   = metricPair{"m", "cm", "meters", "centimeters"}
	capacityPair = metricPair{"l", "ml", "liters", "milliliters"}
	massPair     = metricPair{"kg", "g", "kilograms", "grams"}
)

// thousands are the round small-unit amounts used for ml->l and g->kg.
var thousands = []int{1000, 2000, 3000, 4000, 5000}

// fallbackCentimeters replaces centimeter samples that are not whole meters.
const fallbackCentimeters = 500

// conversion only samples values that convert to whole numbers.
func conversion(rng *rand.Rand, _ difficulty.Level) Problem {
	toSmall := coin(rng)
	switch pick(rng, []string{"length", "capacity", "mass"}) {
	case "length":
		if toSmall {
			return convertDown(lengthPair, intIn(rng, 1, 10))
		}
		cm := intIn(rng, 100, 1000)
		if cm%100 != 0 {
			cm = fallbackCentimeters
		}
		return convertUp(lengthPair, cm)
	case "capacity":
		if toSmall {
			return convertDown(capacityPair, intIn(rng, 1, 5))
		}
		return convertUp(capacityPair, pick(rng, thousands))
	default:
		if toSmall {
			return convertDown(massPair, intIn(rng, 1, 5))
		}
		return convertUp(massPair, pick(rng, thousands))
	}
}

// convertDown converts an amount of the big unit to the small unit.
func convertDown(p metricPair, amount int) Problem {
	factor := int(ConversionFactor(p.big, p.small))
	result := amount * factor
	return Problem{
		Topic:  TopicConversion,
		Prompt: fmt.Sprintf("Convert %d %s to %s", amount, p.bigName, p.smallName),
		Answer: num(result),
		Hints: []string{
			fmt.Sprintf("We need to convert %d %s to %s", amount, p.bigName, p.smallName),
			fmt.Sprintf("1 %s = %d %s", singular(p.bigName), factor, p.smallName),
			fmt.Sprintf("%d %s = %d × %d = %d %s", amount, p.bigName, amount, factor, result, p.smallName),
		},
	}
}

// convertUp converts an amount of the small unit to the big unit.
// amount must be a multiple of the factor.
func convertUp(p metricPair, amount int) Problem {
	factor := int(ConversionFactor(p.big, p.small))
	result := amount / factor
	return Problem{
		Topic:  TopicConversion,
		Prompt: fmt.Sprintf("Convert %d %s to %s", amount, p.smallName, p.bigName),
		Answer: num(result),
		Hints: []string{
			fmt.Sprintf("We need to convert %d %s to %s", amount, p.smallName, p.bigName),
			fmt.Sprintf("%d %s = 1 %s", factor, p.smallName, singular(p.bigName)),
			fmt.Sprintf("%d %s = %d ÷ %d = %d %s", amount, p.smallName, amount, factor, result, p.bigName),
		},
	}
}

func singular(unitName string) string {
	if len(unitName) > 1 && unitName[len(unitName)-1] == 's' {
		return unitName[:len(unitName)-1]
	}
	return unitName
}
