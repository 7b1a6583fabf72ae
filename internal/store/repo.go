package store

import (
	"context"
	"time"
)

// AnswerEventData captures one graded submission.
type AnswerEventData struct {
	SessionID  string
	Topic      string
	Difficulty string
	Prompt     string
	Expected   string
	Given      string
	Outcome    string
	Timestamp  time.Time
}

// HintEventData captures one hint served to the learner.
type HintEventData struct {
	SessionID string
	Topic     string
	HintIndex int
	Timestamp time.Time
}

// AnswerEvent is a stored answer event.
type AnswerEvent struct {
	ID int64
	AnswerEventData
}

// TopicSummary aggregates graded answers for one topic.
type TopicSummary struct {
	Topic     string
	Attempted int
	Correct   int
	Hints     int
}

// Accuracy returns the percentage of correct answers, or 0 when nothing
// was attempted.
func (t TopicSummary) Accuracy() float64 {
	if t.Attempted == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Attempted) * 100
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	Topic string    // exact topic match ("" = any)
	From  time.Time // timestamp >= From
}

// EventRepo provides append and query access to practice events.
type EventRepo interface {
	// AppendAnswer records a graded submission.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendHint records a hint request.
	AppendHint(ctx context.Context, data HintEventData) error

	// RecentAnswers returns answer events, newest first.
	RecentAnswers(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error)

	// TopicSummaries returns per-topic totals ordered by topic name.
	TopicSummaries(ctx context.Context) ([]TopicSummary, error)
}
