package problemgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/p2tutor/internal/difficulty"
)

var (
	fruits   = []string{"apples", "bananas", "oranges", "mangoes"}
	supplies = []string{"notebooks", "pencils", "erasers", "rulers"}
)

// measureContext is a word-problem setting for one kind of measurement.
type measureContext struct {
	unit    string
	lo, hi  int
	prompt  string // format args: value1, unit, value2, unit
	whole   string
	removed string
	left    string
}

var measureContexts = []measureContext{
	{
		unit:    "meters",
		lo:      1,
		hi:      3,
		prompt:  "A rope is %d %s long. If we cut off %d %s, how long is the remaining rope?",
		whole:   "Original rope length",
		removed: "Length cut off",
		left:    "Remaining length",
	},
	{
		unit:    "centimeters",
		lo:      20,
		hi:      200,
		prompt:  "A ribbon is %d %s long. If we cut off %d %s, how long is the remaining ribbon?",
		whole:   "Original ribbon length",
		removed: "Length cut off",
		left:    "Remaining length",
	},
	{
		unit:    "kilograms",
		lo:      5,
		hi:      50,
		prompt:  "A bag of beans weighs %d %s. If we sell %d %s, how many kilograms are left?",
		whole:   "Beans at the start",
		removed: "Beans sold",
		left:    "Beans left",
	},
	{
		unit:    "liters",
		lo:      2,
		hi:      20,
		prompt:  "A jerrycan holds %d %s of water. If we pour out %d %s, how much water is left?",
		whole:   "Water at the start",
		removed: "Water poured out",
		left:    "Water left",
	},
}

func wordProblem(rng *rand.Rand, _ difficulty.Level) Problem {
	var p Problem
	switch pick(rng, []string{"shopping", "measurement", "school", "geometry"}) {
	case "shopping":
		p = shoppingProblem(rng)
	case "measurement":
		p = measurementWordProblem(rng)
	case "school":
		p = schoolProblem(rng)
	default:
		p = gardenProblem(rng)
	}
	p.Topic = TopicWord
	return p
}

func shoppingProblem(rng *rand.Rand) Problem {
	item1 := pick(rng, fruits)
	item2 := pick(rng, supplies)
	price1 := intIn(rng, 100, 800)
	price2 := intIn(rng, 50, 500)

	if coin(rng) {
		total := price1 + price2
		return Problem{
			Prompt: fmt.Sprintf("Marie bought %s for %s and %s for %s. How much did she spend in total?",
				item1, FormatRwf(price1), item2, FormatRwf(price2)),
			Answer: num(total),
			Hints: []string{
				fmt.Sprintf("Marie spent %s on %s", FormatRwf(price1), item1),
				fmt.Sprintf("She spent %s on %s", FormatRwf(price2), item2),
				fmt.Sprintf("Total = %d + %d = %s", price1, price2, FormatRwf(total)),
			},
		}
	}

	had, spent := max(price1, price2), min(price1, price2)
	left := had - spent
	return Problem{
		Prompt: fmt.Sprintf("Jean had %s. He bought something for %s. How much money does he have left?",
			FormatRwf(had), FormatRwf(spent)),
		Answer: num(left),
		Hints: []string{
			fmt.Sprintf("Jean started with %s", FormatRwf(had)),
			fmt.Sprintf("He spent %s", FormatRwf(spent)),
			fmt.Sprintf("Money left = %d - %d = %s", had, spent, FormatRwf(left)),
		},
	}
}

func measurementWordProblem(rng *rand.Rand) Problem {
	c := pick(rng, measureContexts)
	v1 := intIn(rng, c.lo, c.hi)
	v2 := intIn(rng, 1, v1)
	rest := v1 - v2
	return Problem{
		Prompt: fmt.Sprintf(c.prompt, v1, c.unit, v2, c.unit),
		Answer: num(rest),
		Hints: []string{
			fmt.Sprintf("%s: %d %s", c.whole, v1, c.unit),
			fmt.Sprintf("%s: %d %s", c.removed, v2, c.unit),
			fmt.Sprintf("%s = %d - %d = %d %s", c.left, v1, v2, rest, c.unit),
		},
	}
}

func schoolProblem(rng *rand.Rand) Problem {
	students := intIn(rng, 20, 40)
	groups := intIn(rng, 2, 8)
	if students%groups != 0 {
		students = groups * intIn(rng, 3, 8)
	}
	each := students / groups
	return Problem{
		Prompt: fmt.Sprintf("There are %d students in Primary 2. The teacher wants to divide them into %d equal groups. "+
			"How many students will be in each group?", students, groups),
		Answer: num(each),
		Hints: []string{
			fmt.Sprintf("Total students: %d", students),
			fmt.Sprintf("Number of groups: %d", groups),
			fmt.Sprintf("Students per group = %d ÷ %d = %d", students, groups, each),
		},
	}
}

func gardenProblem(rng *rand.Rand) Problem {
	if coin(rng) {
		side := intIn(rng, 4, 12)
		p := 4 * side
		return Problem{
			Prompt: fmt.Sprintf("A square garden has sides of %d meters each. What is the perimeter of the garden?", side),
			Answer: num(p),
			Hints: []string{
				fmt.Sprintf("Square garden with side = %d meters", side),
				"Perimeter of square = 4 × side",
				fmt.Sprintf("Perimeter = 4 × %d = %d meters", side, p),
			},
		}
	}

	length := intIn(rng, 8, 20)
	width := intIn(rng, 4, length-1)
	p := 2 * (length + width)
	return Problem{
		Prompt: fmt.Sprintf("A rectangular field is %d meters long and %d meters wide. What is the perimeter of the field?", length, width),
		Answer: num(p),
		Hints: []string{
			fmt.Sprintf("Rectangular field: length = %dm, width = %dm", length, width),
			"Perimeter = 2 × (length + width)",
			fmt.Sprintf("Perimeter = 2 × (%d + %d) = %d meters", length, width, p),
		},
	}
}
