package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type eventRepo struct {
	db *sql.DB
}

func stamp(t time.Time) int64 {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UnixMilli()
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO answer_events
			(session_id, topic, difficulty, prompt, expected, given, outcome, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Topic, data.Difficulty, data.Prompt,
		data.Expected, data.Given, data.Outcome, stamp(data.Timestamp))
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendHint(ctx context.Context, data HintEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO hint_events (session_id, topic, hint_index, created_at)
		VALUES (?, ?, ?, ?)`,
		data.SessionID, data.Topic, data.HintIndex, stamp(data.Timestamp))
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error) {
	var (
		where []string
		args  []any
	)
	if opts.Topic != "" {
		where = append(where, "topic = ?")
		args = append(args, opts.Topic)
	}
	if !opts.From.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, opts.From.UnixMilli())
	}

	q := `SELECT id, session_id, topic, difficulty, prompt, expected, given, outcome, created_at
		FROM answer_events`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var (
			ev AnswerEvent
			ms int64
		)
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.Topic, &ev.Difficulty, &ev.Prompt,
			&ev.Expected, &ev.Given, &ev.Outcome, &ms); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		ev.Timestamp = time.UnixMilli(ms)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answer events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) TopicSummaries(ctx context.Context) ([]TopicSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT topic,
			SUM(attempted),
			SUM(correct),
			SUM(hints)
		FROM (
			SELECT topic,
				COUNT(*) AS attempted,
				SUM(CASE WHEN outcome = 'correct' THEN 1 ELSE 0 END) AS correct,
				0 AS hints
			FROM answer_events
			GROUP BY topic
			UNION ALL
			SELECT topic, 0, 0, COUNT(*)
			FROM hint_events
			GROUP BY topic
		)
		GROUP BY topic
		ORDER BY topic`)
	if err != nil {
		return nil, fmt.Errorf("query topic summaries: %w", err)
	}
	defer rows.Close()

	var out []TopicSummary
	for rows.Next() {
		var s TopicSummary
		if err := rows.Scan(&s.Topic, &s.Attempted, &s.Correct, &s.Hints); err != nil {
			return nil, fmt.Errorf("scan topic summary: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topic summaries: %w", err)
	}
	return out, nil
}
