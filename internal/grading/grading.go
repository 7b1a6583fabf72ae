// Package grading compares a learner's typed answer with a problem's
// expected answer.
package grading

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/abhisek/p2tutor/internal/problemgen"
)

// Outcome is the result of grading one submission.
type Outcome int

const (
	// Invalid means the input could not be read as an answer of the
	// expected kind. It is not counted as an attempt.
	Invalid Outcome = iota
	Correct
	Incorrect
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "invalid"
	}
}

// Counted reports whether the outcome updates the learner's statistics.
func (o Outcome) Counted() bool {
	return o == Correct || o == Incorrect
}

// Grade checks input against expected. Text answers match ignoring case and
// surrounding whitespace. Numeric answers are parsed and compared by value,
// so "42", "42.0" and " 42 " all match 42.
func Grade(expected problemgen.Answer, input string) Outcome {
	input = strings.TrimSpace(input)
	if input == "" {
		return Invalid
	}

	if !expected.IsNumeric() {
		if strings.EqualFold(input, strings.TrimSpace(expected.TextValue())) {
			return Correct
		}
		return Incorrect
	}

	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return Invalid
	}
	if v == expected.Value() {
		return Correct
	}
	return Incorrect
}

var encouragements = []string{
	"🎉 Byiza cyane! (Very good!)",
	"👏 Ni ukuri! (That's correct!)",
	"⭐ Wakoze neza! (Well done!)",
	"🌟 Excellent work!",
	"🎊 Urakoze! (Thank you!) Perfect answer!",
}

// Encouragement returns a random bilingual word of praise.
func Encouragement(rng *rand.Rand) string {
	return encouragements[rng.IntN(len(encouragements))]
}
