package problemgen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/p2tutor/internal/difficulty"
)

// ErrUnknownTopic is returned when a topic ID is not in the catalog.
var ErrUnknownTopic = errors.New("unknown topic")

// TopicInfo describes a practice topic and the generator behind it.
type TopicInfo struct {
	ID Topic

	// Label is the menu entry, e.g. "Addition (up to 999)".
	Label string

	// StatsLabel is recorded in the learner's practiced-topics set.
	StatsLabel string

	// Title heads the tutor message that presents a new problem.
	Title string

	// Icon prefixes the problem title.
	Icon string

	Generator Generator
}

var catalog = []TopicInfo{
	{TopicNumeration, "Numbers 0-999", "Numeration 0-999", "Numeration Problem (0-999)", "📊", GeneratorFunc(numeration)},
	{TopicComparison, "Comparing Numbers", "Comparing Numbers", "Number Comparison Problem", "⚖️", GeneratorFunc(comparison)},
	{TopicAddition, "Addition (up to 999)", "Addition up to 999", "Addition Problem (up to 999)", "➕", GeneratorFunc(addition)},
	{TopicSubtraction, "Subtraction (up to 999)", "Subtraction up to 999", "Subtraction Problem (up to 999)", "➖", GeneratorFunc(subtraction)},
	{TopicMultiplication, "Multiplication", "Multiplication", "Multiplication Problem", "✖️", GeneratorFunc(multiplication)},
	{TopicDivision, "Division", "Division", "Division Problem", "➗", GeneratorFunc(division)},
	{TopicLength, "Measuring Lengths", "Length Measurement", "Length Measurement Problem", "📏", GeneratorFunc(length)},
	{TopicCapacity, "Measuring Capacity", "Capacity Measurement", "Capacity Measurement Problem", "🥤", GeneratorFunc(capacity)},
	{TopicMass, "Measuring Mass", "Mass Measurement", "Mass Measurement Problem", "⚖️", GeneratorFunc(mass)},
	{TopicConversion, "Unit Conversion", "Unit Conversion", "Unit Conversion Problem", "🔄", GeneratorFunc(conversion)},
	{TopicGeometry, "Geometric Shapes", "Geometric Shapes", "Geometry Problem", "🔺", GeneratorFunc(geometry)},
	{TopicPerimeter, "Perimeter", "Perimeter", "Perimeter Problem", "📐", GeneratorFunc(perimeter)},
	{TopicProbability, "Probability", "Probability", "Probability Problem", "🎲", GeneratorFunc(probability)},
	{TopicWord, "Word Problems", "Word Problems", "Word Problem", "📚", GeneratorFunc(wordProblem)},
}

// Topics returns the catalog in menu order.
func Topics() []TopicInfo {
	out := make([]TopicInfo, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a topic by ID.
func Lookup(id Topic) (TopicInfo, error) {
	for _, t := range catalog {
		if t.ID == id {
			return t, nil
		}
	}
	return TopicInfo{}, fmt.Errorf("%w: %q", ErrUnknownTopic, id)
}

// Generate produces a problem for the topic with the given ID.
func Generate(rng *rand.Rand, level difficulty.Level, id Topic) (Problem, error) {
	info, err := Lookup(id)
	if err != nil {
		return Problem{}, err
	}
	return info.Generator.Generate(rng, level), nil
}
