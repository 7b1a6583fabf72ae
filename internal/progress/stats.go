// Package progress holds the learner's cumulative statistics and persists
// them as a small JSON document.
package progress

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/abhisek/p2tutor/internal/difficulty"
)

// Stats are the learner's durable counters.
type Stats struct {
	// Attempted counts graded answers, right or wrong. The JSON key keeps
	// its historical name.
	Attempted int `json:"problems_solved"`

	// Correct counts answers graded correct.
	Correct int `json:"correct_answers"`

	// TopicsSeen holds the stats labels of every topic a problem was
	// generated for.
	TopicsSeen TopicSet `json:"topics_practiced"`

	// Difficulty is the learner's current level.
	Difficulty difficulty.Level `json:"difficulty_level"`
}

// Defaults returns the statistics of a brand-new learner.
func Defaults() Stats {
	return Stats{
		TopicsSeen: TopicSet{},
		Difficulty: difficulty.Default,
	}
}

// Accuracy returns the percentage of attempts answered correctly, or 0
// before the first attempt.
func (s Stats) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted) * 100
}

// Clone returns a deep copy of s.
func (s Stats) Clone() Stats {
	s.TopicsSeen = maps.Clone(s.TopicsSeen)
	if s.TopicsSeen == nil {
		s.TopicsSeen = TopicSet{}
	}
	return s
}

// TopicSet is a set of topic labels. It is encoded as a sorted JSON array.
type TopicSet map[string]struct{}

// Add inserts label into the set.
func (t TopicSet) Add(label string) {
	t[label] = struct{}{}
}

// Has reports whether label is in the set.
func (t TopicSet) Has(label string) bool {
	_, ok := t[label]
	return ok
}

// Sorted returns the labels in lexical order.
func (t TopicSet) Sorted() []string {
	return slices.Sorted(maps.Keys(t))
}

func (t TopicSet) MarshalJSON() ([]byte, error) {
	labels := t.Sorted()
	if labels == nil {
		labels = []string{}
	}
	return json.Marshal(labels)
}

func (t *TopicSet) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	set := make(TopicSet, len(labels))
	for _, l := range labels {
		set.Add(l)
	}
	*t = set
	return nil
}
