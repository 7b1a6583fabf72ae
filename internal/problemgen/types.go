package problemgen

import (
	"strconv"
)

// Topic identifies one of the fourteen curriculum practice categories.
type Topic string

const (
	TopicNumeration     Topic = "numeration"
	TopicComparison     Topic = "comparison"
	TopicAddition       Topic = "addition"
	TopicSubtraction    Topic = "subtraction"
	TopicMultiplication Topic = "multiplication"
	TopicDivision       Topic = "division"
	TopicLength         Topic = "length"
	TopicCapacity       Topic = "capacity"
	TopicMass           Topic = "mass"
	TopicConversion     Topic = "conversion"
	TopicGeometry       Topic = "geometry"
	TopicPerimeter      Topic = "perimeter"
	TopicProbability    Topic = "probability"
	TopicWord           Topic = "word"
)

// AnswerKind tags the variant held by an Answer.
type AnswerKind int

const (
	AnswerNumeric AnswerKind = iota // compared by value after parsing
	AnswerText                      // compared case-insensitively
)

// Answer is the expected answer of a problem: either a number or a word
// (unit names, shape names, comparison symbols, probability words).
type Answer struct {
	kind AnswerKind
	num  float64
	text string
}

// Numeric returns a numeric answer.
func Numeric(v float64) Answer {
	return Answer{kind: AnswerNumeric, num: v}
}

// Text returns a textual answer.
func Text(s string) Answer {
	return Answer{kind: AnswerText, text: s}
}

// num is shorthand for integer-valued numeric answers.
func num(v int) Answer {
	return Numeric(float64(v))
}

// Kind returns the variant tag.
func (a Answer) Kind() AnswerKind { return a.kind }

// IsNumeric reports whether the answer is compared numerically.
func (a Answer) IsNumeric() bool { return a.kind == AnswerNumeric }

// Value returns the numeric value. Zero for text answers.
func (a Answer) Value() float64 { return a.num }

// TextValue returns the text value. Empty for numeric answers.
func (a Answer) TextValue() string { return a.text }

// String renders the answer for display. Whole numbers carry no
// fractional part.
func (a Answer) String() string {
	if a.kind == AnswerText {
		return a.text
	}
	return strconv.FormatFloat(a.num, 'f', -1, 64)
}

// Problem is a single generated practice problem. A Problem is never
// modified after its generator returns it.
type Problem struct {
	// Topic is the category that produced the problem.
	Topic Topic

	// Prompt is the question shown to the learner,
	// e.g. "45 + 23 = ?" or "How many sides does a triangle have?"
	Prompt string

	// Answer is the exact expected answer.
	Answer Answer

	// Hints narrate the solution from general to specific.
	// The last hint always states the final answer.
	Hints []string
}
