package problemgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/p2tutor/internal/difficulty"
)

// maxSum is the largest result addition problems may produce.
const maxSum = 999

func comparison(rng *rand.Rand, level difficulty.Level) Problem {
	r := difficulty.RangeFor(level)
	a := r.Sample(rng)
	b := r.Sample(rng)
	for a == b {
		b = r.Sample(rng)
	}

	symbol := "<"
	if a > b {
		symbol = ">"
	}

	p := Problem{
		Topic: TopicComparison,
		Hints: []string{
			fmt.Sprintf("We need to compare %d and %d", a, b),
			"Let's look at the place values",
			"Comparing digit by digit from left to right",
			fmt.Sprintf("Result: %d %s %d", a, symbol, b),
		},
	}

	// The symbol prompt is drawn half the time.
	switch pick(rng, []string{"greater", "less", "symbol", "symbol"}) {
	case "greater":
		p.Prompt = fmt.Sprintf("Which number is greater: %d or %d?", a, b)
		p.Answer = num(max(a, b))
	case "less":
		p.Prompt = fmt.Sprintf("Which number is less: %d or %d?", a, b)
		p.Answer = num(min(a, b))
	default:
		p.Prompt = fmt.Sprintf("Compare these numbers using >, < or =: %d __ %d", a, b)
		p.Answer = Text(symbol)
	}
	return p
}

// addition keeps a + b <= 999. The first operand is capped so the second
// operand's range is never empty.
func addition(rng *rand.Rand, level difficulty.Level) Problem {
	r := difficulty.RangeFor(level)
	a := intIn(rng, r.Min, min(r.Max, maxSum-r.Min))
	b := intIn(rng, r.Min, min(r.Max, maxSum-a))
	sum := a + b

	return Problem{
		Topic:  TopicAddition,
		Prompt: fmt.Sprintf("%d + %d = ?", a, b),
		Answer: num(sum),
		Hints: []string{
			fmt.Sprintf("We need to add %d + %d", a, b),
			"Let's use column addition:",
			fmt.Sprintf("Start with the ones place: %d + %d", a%10, b%10),
			fmt.Sprintf("Then the tens place: %d + %d", (a/10)%10, (b/10)%10),
			fmt.Sprintf("Finally the hundreds place: %d + %d, plus anything carried", a/100, b/100),
			fmt.Sprintf("Result: %d + %d = %d", a, b, sum),
		},
	}
}

func subtraction(rng *rand.Rand, level difficulty.Level) Problem {
	r := difficulty.RangeFor(level)
	a := r.Sample(rng)
	b := intIn(rng, r.Min, a)
	diff := a - b

	return Problem{
		Topic:  TopicSubtraction,
		Prompt: fmt.Sprintf("%d - %d = ?", a, b),
		Answer: num(diff),
		Hints: []string{
			fmt.Sprintf("We need to subtract %d from %d", b, a),
			"Let's use column subtraction:",
			fmt.Sprintf("Start with the ones place: %d - %d", a%10, b%10),
			fmt.Sprintf("Then the tens place: %d - %d", (a/10)%10, (b/10)%10),
			"Check if we need to borrow",
			fmt.Sprintf("Result: %d - %d = %d", a, b, diff),
		},
	}
}

func multiplication(rng *rand.Rand, level difficulty.Level) Problem {
	ra, rb := difficulty.MultiplicationOperands(level)
	a := ra.Sample(rng)
	b := rb.Sample(rng)
	product := a * b

	return Problem{
		Topic:  TopicMultiplication,
		Prompt: fmt.Sprintf("%d × %d = ?", a, b),
		Answer: num(product),
		Hints: []string{
			fmt.Sprintf("We need to multiply %d × %d", a, b),
			fmt.Sprintf("This means adding %d exactly %d times", a, b),
			"Or we can use the multiplication table",
			fmt.Sprintf("%d × %d = %d", a, b, product),
		},
	}
}

// division only produces exact quotients: the dividend is built from the
// divisor and quotient.
func division(rng *rand.Rand, level difficulty.Level) Problem {
	rd, rq := difficulty.DivisionOperands(level)
	divisor := rd.Sample(rng)
	quotient := rq.Sample(rng)
	dividend := divisor * quotient

	return Problem{
		Topic:  TopicDivision,
		Prompt: fmt.Sprintf("%d ÷ %d = ?", dividend, divisor),
		Answer: num(quotient),
		Hints: []string{
			fmt.Sprintf("We need to divide %d by %d", dividend, divisor),
			fmt.Sprintf("How many times does %d go into %d?", divisor, dividend),
			fmt.Sprintf("We can think: %d × ? = %d", divisor, dividend),
			fmt.Sprintf("Since %d × %d = %d", divisor, quotient, dividend),
			fmt.Sprintf("Result: %d ÷ %d = %d", dividend, divisor, quotient),
		},
	}
}
