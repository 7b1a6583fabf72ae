package problemgen

import (
	"errors"
	"testing"

	"github.com/abhisek/p2tutor/internal/difficulty"
)

func TestTopics_MenuOrder(t *testing.T) {
	want := []Topic{
		TopicNumeration, TopicComparison, TopicAddition, TopicSubtraction,
		TopicMultiplication, TopicDivision, TopicLength, TopicCapacity,
		TopicMass, TopicConversion, TopicGeometry, TopicPerimeter,
		TopicProbability, TopicWord,
	}
	got := Topics()
	if len(got) != len(want) {
		t.Fatalf("len(Topics()) = %d, want %d", len(got), len(want))
	}
	for i, info := range got {
		if info.ID != want[i] {
			t.Errorf("Topics()[%d] = %q, want %q", i, info.ID, want[i])
		}
		if info.Label == "" || info.StatsLabel == "" || info.Title == "" || info.Generator == nil {
			t.Errorf("%q has incomplete metadata", info.ID)
		}
	}
}

func TestTopics_ReturnsCopy(t *testing.T) {
	got := Topics()
	got[0].Label = "changed"
	if Topics()[0].Label == "changed" {
		t.Fatal("Topics() exposed the catalog")
	}
}

func TestLookup_StatsLabels(t *testing.T) {
	tests := []struct {
		id   Topic
		want string
	}{
		{TopicNumeration, "Numeration 0-999"},
		{TopicAddition, "Addition up to 999"},
		{TopicLength, "Length Measurement"},
		{TopicWord, "Word Problems"},
	}
	for _, tt := range tests {
		info, err := Lookup(tt.id)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.id, err)
		}
		if info.StatsLabel != tt.want {
			t.Errorf("StatsLabel(%q) = %q, want %q", tt.id, info.StatsLabel, tt.want)
		}
	}
}

func TestGenerate_UnknownTopic(t *testing.T) {
	_, err := Generate(NewRand(1), difficulty.Easy, Topic("algebra"))
	if !errors.Is(err, ErrUnknownTopic) {
		t.Fatalf("err = %v, want ErrUnknownTopic", err)
	}
}
