package problemgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/p2tutor/internal/difficulty"
	"github.com/abhisek/p2tutor/internal/numwords"
)

// numeration covers reading, writing, counting and place value for 0-999.
// The number range is the whole P2 range at every level.
func numeration(rng *rand.Rand, _ difficulty.Level) Problem {
	variants := []func(*rand.Rand) Problem{
		writeNumber,
		readNumber,
		countSequence,
		placeValue,
	}
	return pick(rng, variants)(rng)
}

func writeNumber(rng *rand.Rand) Problem {
	n := intIn(rng, 1, 999)
	words := numwords.ToWords(n)
	return Problem{
		Topic:  TopicNumeration,
		Prompt: fmt.Sprintf("Write this number in digits: %s", words),
		Answer: num(n),
		Hints: []string{
			fmt.Sprintf("We need to write '%s' in digits", words),
			"Let's break down the number word by word",
			fmt.Sprintf("Hundreds: %d, Tens: %d, Ones: %d", n/100, (n/10)%10, n%10),
			fmt.Sprintf("The answer is: %d", n),
		},
	}
}

func readNumber(rng *rand.Rand) Problem {
	n := intIn(rng, 1, 999)
	words := numwords.ToWords(n)
	return Problem{
		Topic:  TopicNumeration,
		Prompt: fmt.Sprintf("Write this number in words: %d", n),
		Answer: Text(words),
		Hints: []string{
			fmt.Sprintf("We need to write %d in words", n),
			"Let's break it down by place value",
			"Join the tens and ones with a hyphen, like twenty-one",
			fmt.Sprintf("The answer is: %s", words),
		},
	}
}

func countSequence(rng *rand.Rand) Problem {
	start := intIn(rng, 1, 980)
	pattern := fmt.Sprintf("%d, %d, %d, ?, %d", start, start+1, start+2, start+4)
	return Problem{
		Topic:  TopicNumeration,
		Prompt: fmt.Sprintf("Continue this counting pattern: %s", pattern),
		Answer: num(start + 3),
		Hints: []string{
			fmt.Sprintf("Look at the pattern: %s", pattern),
			"Each number increases by 1",
			fmt.Sprintf("The missing number is: %d", start+3),
		},
	}
}

func placeValue(rng *rand.Rand) Problem {
	n := intIn(rng, 100, 999)
	place := pick(rng, []string{"hundreds", "tens", "ones"})

	var digit int
	switch place {
	case "hundreds":
		digit = n / 100
	case "tens":
		digit = (n / 10) % 10
	default:
		digit = n % 10
	}

	return Problem{
		Topic:  TopicNumeration,
		Prompt: fmt.Sprintf("What digit is in the %s place in the number %d?", place, n),
		Answer: num(digit),
		Hints: []string{
			fmt.Sprintf("In the number %d:", n),
			fmt.Sprintf("Hundreds place: %d", n/100),
			fmt.Sprintf("Tens place: %d", (n/10)%10),
			fmt.Sprintf("Ones place: %d", n%10),
			fmt.Sprintf("The digit in the %s place is: %d", place, digit),
		},
	}
}
