package difficulty

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Level is one of the three static difficulty tiers.
type Level string

const (
	Easy   Level = "Easy"
	Medium Level = "Medium"
	Hard   Level = "Hard"
)

// Default is the level a new learner starts on.
const Default = Easy

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("unknown difficulty level")

// Levels returns all levels in display order.
func Levels() []Level {
	return []Level{Easy, Medium, Hard}
}

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels() {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Next returns the following level, wrapping from Hard back to Easy.
func (l Level) Next() Level {
	switch l {
	case Easy:
		return Medium
	case Medium:
		return Hard
	default:
		return Easy
	}
}

func (l Level) String() string {
	return string(l)
}

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

// Sample draws a uniform integer from the range. A range with Max < Min
// always yields Min.
func (r Range) Sample(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// RangeFor returns the generic operand range for a level. Unrecognized
// levels fall back to the Hard range.
func RangeFor(l Level) Range {
	switch l {
	case Easy:
		return Range{Min: 1, Max: 50}
	case Medium:
		return Range{Min: 10, Max: 200}
	default:
		return Range{Min: 50, Max: 999}
	}
}

// MultiplicationOperands returns the ranges for the two factors.
func MultiplicationOperands(l Level) (a, b Range) {
	switch l {
	case Easy:
		return Range{1, 5}, Range{1, 10}
	case Medium:
		return Range{2, 10}, Range{2, 12}
	default:
		return Range{5, 15}, Range{2, 20}
	}
}

// DivisionOperands returns the ranges for the divisor and the quotient.
// Dividends are always built as divisor * quotient.
func DivisionOperands(l Level) (divisor, quotient Range) {
	switch l {
	case Easy:
		return Range{2, 5}, Range{1, 10}
	case Medium:
		return Range{2, 10}, Range{2, 15}
	default:
		return Range{3, 12}, Range{3, 20}
	}
}
