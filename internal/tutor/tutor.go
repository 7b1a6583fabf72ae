// Package tutor runs a practice conversation: it hands out problems, grades
// answers, dispenses hints and keeps the learner's statistics up to date.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/p2tutor/internal/difficulty"
	"github.com/abhisek/p2tutor/internal/grading"
	"github.com/abhisek/p2tutor/internal/logger"
	"github.com/abhisek/p2tutor/internal/metrics"
	"github.com/abhisek/p2tutor/internal/problemgen"
	"github.com/abhisek/p2tutor/internal/progress"
	"github.com/abhisek/p2tutor/internal/store"
)

var (
	// ErrNoActiveProblem is returned when an answer or hint is requested
	// before a topic was chosen.
	ErrNoActiveProblem = errors.New("no active problem")

	// ErrEmptyAnswer is returned for blank submissions.
	ErrEmptyAnswer = errors.New("empty answer")

	// ErrNoMoreHints is returned once every hint of the problem was shown.
	ErrNoMoreHints = errors.New("no more hints")
)

// eventTimeout bounds each best-effort event log write.
const eventTimeout = 2 * time.Second

// Options configures a Tutor. Only Store and Presenter are required.
type Options struct {
	Store     progress.Store
	Presenter Presenter

	// Rand drives problem generation. Nil selects a randomly seeded source.
	Rand *rand.Rand

	// Events, when set, receives an entry for every graded answer and hint.
	Events store.EventRepo

	Metrics *metrics.Metrics
	Logger  *zap.Logger

	// Now returns the current time. Nil means time.Now.
	Now func() time.Time

	// SessionID tags event log entries. Empty generates a fresh UUID.
	SessionID string
}

// Tutor holds the state of one practice session. It is not safe for
// concurrent use; the UI drives it from a single goroutine.
type Tutor struct {
	store     progress.Store
	presenter Presenter
	rng       *rand.Rand
	events    store.EventRepo
	metrics   *metrics.Metrics
	log       *zap.Logger
	now       func() time.Time
	sessionID string

	stats progress.Stats

	// problem is the live, ungraded problem, if any.
	problem *problemgen.Problem
	topic   problemgen.TopicInfo
	shownAt time.Time

	// hintCursor indexes the next hint to reveal.
	hintCursor int
}

// New creates a Tutor and loads the saved statistics. An unreadable
// progress file is logged and replaced by defaults.
func New(opts Options) *Tutor {
	t := &Tutor{
		store:     opts.Store,
		presenter: opts.Presenter,
		rng:       opts.Rand,
		events:    opts.Events,
		metrics:   opts.Metrics,
		log:       logger.OrNop(opts.Logger),
		now:       opts.Now,
		sessionID: opts.SessionID,
	}
	if t.rng == nil {
		t.rng = problemgen.NewRand(0)
	}
	if t.now == nil {
		t.now = time.Now
	}
	if t.sessionID == "" {
		t.sessionID = uuid.NewString()
	}
	if t.presenter == nil {
		t.presenter = PresenterFunc(func(Message) {})
	}

	t.stats = progress.Defaults()
	if t.store != nil {
		s, err := t.store.Load()
		if err != nil {
			t.log.Warn("load progress, using defaults", zap.Error(err))
		}
		t.stats = s.Clone()
	}
	if !t.stats.Difficulty.Valid() {
		t.stats.Difficulty = difficulty.Default
	}
	return t
}

// SessionID returns the identifier attached to this session's events.
func (t *Tutor) SessionID() string { return t.sessionID }

// Welcome greets the learner.
func (t *Tutor) Welcome() {
	t.say(RoleTutor, msgWelcome)
}

// ChooseTopic generates a new problem for the topic, replacing any live
// problem, and presents it.
func (t *Tutor) ChooseTopic(id problemgen.Topic) error {
	info, err := problemgen.Lookup(id)
	if err != nil {
		return err
	}

	p := info.Generator.Generate(t.rng, t.stats.Difficulty)
	t.problem = &p
	t.topic = info
	t.hintCursor = 0
	t.shownAt = t.now()

	t.stats.TopicsSeen.Add(info.StatsLabel)
	t.persist()
	t.metrics.ProblemGenerated(string(info.ID))
	t.log.Debug("problem generated",
		zap.String("topic", string(info.ID)),
		zap.String("difficulty", string(t.stats.Difficulty)),
		zap.String("prompt", p.Prompt))

	t.say(RoleTutor, fmt.Sprintf("%s %s:\n%s", info.Icon, info.Title, p.Prompt))
	return nil
}

// Submit grades the learner's answer to the live problem. Blank input and
// input that cannot be read as an answer leave all state untouched. After a
// correct or incorrect answer the full worked solution is shown and the
// problem is retired.
func (t *Tutor) Submit(input string) (grading.Outcome, error) {
	if t.problem == nil {
		t.say(RoleTutor, msgNoProblem)
		return grading.Invalid, ErrNoActiveProblem
	}

	answer := strings.TrimSpace(input)
	if answer == "" {
		t.say(RoleTutor, msgEmptyAnswer)
		return grading.Invalid, ErrEmptyAnswer
	}

	t.say(RoleStudent, answer)

	p := *t.problem
	outcome := grading.Grade(p.Answer, answer)
	if !outcome.Counted() {
		t.say(RoleTutor, msgInvalidAnswer)
		return outcome, nil
	}

	t.stats.Attempted++
	if outcome == grading.Correct {
		t.stats.Correct++
		t.say(RoleTutor, correctFeedback(grading.Encouragement(t.rng)))
	} else {
		t.say(RoleTutor, incorrectFeedback(p.Answer.String()))
	}
	for i, step := range p.Hints {
		t.say(RoleTutor, stepText(i+1, step))
	}

	elapsed := t.now().Sub(t.shownAt)
	topic := t.topic
	t.problem = nil
	t.hintCursor = 0

	t.persist()
	t.metrics.AnswerGraded(string(topic.ID), outcome.String(), elapsed)
	t.recordAnswer(topic, p, answer, outcome)

	t.say(RoleTutor, msgNextProblem)
	return outcome, nil
}

// RequestHint reveals the next hint of the live problem.
func (t *Tutor) RequestHint() error {
	if t.problem == nil {
		t.say(RoleTutor, msgNoProblem)
		return ErrNoActiveProblem
	}
	if t.hintCursor >= len(t.problem.Hints) {
		t.say(RoleTutor, msgNoMoreHints)
		return ErrNoMoreHints
	}

	idx := t.hintCursor
	t.say(RoleTutor, hintText(idx+1, t.problem.Hints[idx]))
	t.hintCursor++

	t.metrics.HintServed(string(t.topic.ID))
	t.recordHint(idx)
	return nil
}

// SetDifficulty changes the level used for subsequent problems and saves it.
// The live problem, if any, keeps its numbers.
func (t *Tutor) SetDifficulty(level difficulty.Level) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %q", difficulty.ErrUnknownLevel, level)
	}
	if level == t.stats.Difficulty {
		return nil
	}
	t.stats.Difficulty = level
	t.persist()
	t.log.Info("difficulty changed", zap.String("difficulty", string(level)))
	t.say(RoleTutor, levelText(string(level)))
	return nil
}

// Difficulty returns the current level.
func (t *Tutor) Difficulty() difficulty.Level { return t.stats.Difficulty }

// Stats returns a copy of the learner's statistics.
func (t *Tutor) Stats() progress.Stats { return t.stats.Clone() }

// StatusLine renders the stats bar for the current statistics.
func (t *Tutor) StatusLine() string { return StatusLine(t.stats) }

// Current returns the live problem, if any.
func (t *Tutor) Current() (problemgen.Problem, bool) {
	if t.problem == nil {
		return problemgen.Problem{}, false
	}
	return *t.problem, true
}

// HintsRemaining returns how many hints of the live problem are unseen.
func (t *Tutor) HintsRemaining() int {
	if t.problem == nil {
		return 0
	}
	return len(t.problem.Hints) - t.hintCursor
}

func (t *Tutor) say(role Role, text string) {
	t.presenter.Display(Message{Role: role, Text: text, Time: t.now()})
}

// persist saves the statistics. Failures are logged; the session carries
// on with its in-memory state.
func (t *Tutor) persist() {
	if t.store == nil {
		return
	}
	if err := t.store.Save(t.stats); err != nil {
		t.log.Error("save progress", zap.Error(err))
	}
}

func (t *Tutor) recordAnswer(topic problemgen.TopicInfo, p problemgen.Problem, given string, outcome grading.Outcome) {
	if t.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	err := t.events.AppendAnswer(ctx, store.AnswerEventData{
		SessionID:  t.sessionID,
		Topic:      string(topic.ID),
		Difficulty: string(t.stats.Difficulty),
		Prompt:     p.Prompt,
		Expected:   p.Answer.String(),
		Given:      given,
		Outcome:    outcome.String(),
		Timestamp:  t.now(),
	})
	if err != nil {
		t.log.Warn("record answer event", zap.Error(err))
	}
}

func (t *Tutor) recordHint(idx int) {
	if t.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	err := t.events.AppendHint(ctx, store.HintEventData{
		SessionID: t.sessionID,
		Topic:     string(t.topic.ID),
		HintIndex: idx,
		Timestamp: t.now(),
	})
	if err != nil {
		t.log.Warn("record hint event", zap.Error(err))
	}
}
