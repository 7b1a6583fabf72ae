package problemgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/p2tutor/internal/difficulty"
)

// Likelihood is a P2 probability word.
type Likelihood string

const (
	Impossible Likelihood = "impossible"
	Unlikely   Likelihood = "unlikely"
	Likely     Likelihood = "likely"
	Certain    Likelihood = "certain"
)

// Classify names the chance of drawing one of favorable items out of total.
// Exactly half of an even total counts as unlikely.
func Classify(favorable, total int) Likelihood {
	switch {
	case favorable <= 0:
		return Impossible
	case favorable >= total:
		return Certain
	case favorable > total/2:
		return Likely
	default:
		return Unlikely
	}
}

type scenario struct {
	event  string
	answer Likelihood
}

var certainImpossibleScenarios = []scenario{
	{"The sun will rise tomorrow", Certain},
	{"You will grow wings and fly", Impossible},
	{"It will rain sometime this year", Likely},
	{"You will meet a dinosaur today", Impossible},
	{"You will breathe air today", Certain},
}

var likelyUnlikelyScenarios = []scenario{
	{"It will rain in the desert", Unlikely},
	{"A coin will land on heads or tails", Certain},
	{"You will eat food today", Likely},
	{"You will win the lottery", Unlikely},
	{"The sun will set tonight", Certain},
}

var ballColors = []string{"red", "blue", "green", "yellow"}

func probability(rng *rand.Rand, _ difficulty.Level) Problem {
	switch pick(rng, []string{"basic", "certain_impossible", "likely_unlikely"}) {
	case "basic":
		color := pick(rng, ballColors)
		total := intIn(rng, 5, 10)
		target := intIn(rng, 1, total-1)
		answer := Classify(target, total)
		return Problem{
			Topic: TopicProbability,
			Prompt: fmt.Sprintf("In a bag, there are %d %s balls and %d other colored balls. "+
				"What is the chance of picking a %s ball? (likely, unlikely, certain, impossible)",
				target, color, total-target, color),
			Answer: Text(string(answer)),
			Hints: []string{
				fmt.Sprintf("There are %d %s balls out of %d total balls", target, color, total),
				fmt.Sprintf("If more than half are %s, it's likely", color),
				fmt.Sprintf("If half or fewer are %s, it's unlikely", color),
				fmt.Sprintf("Answer: %s", answer),
			},
		}
	case "certain_impossible":
		s := pick(rng, certainImpossibleScenarios)
		return Problem{
			Topic:  TopicProbability,
			Prompt: fmt.Sprintf("Is this certain, impossible, likely, or unlikely: '%s'?", s.event),
			Answer: Text(string(s.answer)),
			Hints: []string{
				fmt.Sprintf("Let's think about: %s", s.event),
				"Certain = will definitely happen",
				"Impossible = will never happen",
				"Likely = probably will happen",
				"Unlikely = probably won't happen",
				fmt.Sprintf("Answer: %s", s.answer),
			},
		}
	default:
		s := pick(rng, likelyUnlikelyScenarios)
		return Problem{
			Topic:  TopicProbability,
			Prompt: fmt.Sprintf("Is this likely, unlikely, certain, or impossible: '%s'?", s.event),
			Answer: Text(string(s.answer)),
			Hints: []string{
				fmt.Sprintf("Let's analyze: %s", s.event),
				"Think about how often this happens",
				fmt.Sprintf("Answer: %s", s.answer),
			},
		}
	}
}
