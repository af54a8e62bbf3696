// Package quiz implements the quiz session state machine: category choice,
// question progression with deferred feedback, scoring and high-score
// recording.
package quiz

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/smartkids/internal/bank"
	"github.com/abhisek/smartkids/internal/highscore"
)

// DefaultFeedbackDelay is how long answer feedback stays up before the
// machine moves on.
const DefaultFeedbackDelay = time.Second

// Options configures a Machine. Only Bank is required.
type Options struct {
	Bank *bank.Bank

	// HighScores persists best scores. Nil keeps them in memory only.
	HighScores *highscore.Store

	Logger *zap.Logger

	// FeedbackDelay defaults to DefaultFeedbackDelay.
	FeedbackDelay time.Duration

	// Rand drives question shuffling. Nil uses the global source.
	Rand *rand.Rand

	// Now defaults to time.Now.
	Now func() time.Time

	// NewID generates session IDs. Defaults to random UUIDs.
	NewID func() string
}

// Deferred is a pending post-answer transition returned by SubmitAnswer.
// It only applies to the session and question it was issued for.
type Deferred struct {
	generation uint64
	index      int

	// Delay is how long the caller should wait before completing it.
	Delay time.Duration
}

type session struct {
	id        string
	category  *bank.Category
	questions []bank.Question
	index     int
	score     int
	selected  string
	answered  bool
	pending   bool
	feedback  Feedback
	celebrate bool
	newBest   bool
}

// Machine is the quiz session state machine. It is safe for concurrent use;
// deferred transitions may complete from a timer goroutine.
type Machine struct {
	mu sync.Mutex

	bank       *bank.Bank
	highScores *highscore.Store
	logger     *zap.Logger
	delay      time.Duration
	rng        *rand.Rand
	now        func() time.Time
	newID      func() string

	screen Screen
	// generation changes whenever a session starts or is abandoned so
	// stale Deferred values can be recognised.
	generation uint64
	session    *session
	scores     highscore.Scores
}

// New creates a Machine on the home screen, loading persisted high scores.
func New(ctx context.Context, opts Options) *Machine {
	m := &Machine{
		bank:       opts.Bank,
		highScores: opts.HighScores,
		logger:     opts.Logger,
		delay:      opts.FeedbackDelay,
		rng:        opts.Rand,
		now:        opts.Now,
		newID:      opts.NewID,
		screen:     ScreenHome,
	}
	if m.bank == nil {
		m.bank = bank.Default()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	m.logger = m.logger.Named("quiz")
	if m.delay <= 0 {
		m.delay = DefaultFeedbackDelay
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.newID == nil {
		m.newID = func() string { return uuid.New().String() }
	}

	if m.highScores != nil {
		m.scores = m.highScores.Load(ctx)
	} else {
		m.scores = highscore.Scores{}
	}
	return m
}

// Bank returns the question bank the machine draws from.
func (m *Machine) Bank() *bank.Bank {
	return m.bank
}

// State returns a snapshot of the machine.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.guard()
	st := State{
		Screen:     m.screen,
		HighScores: m.scores.Clone(),
	}
	if s := m.session; s != nil {
		st.SessionID = s.id
		st.Category = s.category
		st.Questions = append([]bank.Question(nil), s.questions...)
		st.Index = s.index
		st.Score = s.score
		st.Selected = s.selected
		st.Answered = s.answered
		st.Feedback = s.feedback
		st.Celebrate = s.celebrate
		st.NewBest = s.newBest
	}
	return st
}

// GoToCategories moves from the home screen to category selection.
func (m *Machine) GoToCategories() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.screen != ScreenHome {
		return false
	}
	m.screen = ScreenCategorySelect
	m.logger.Debug("screen changed", zap.Stringer("screen", m.screen))
	return true
}

// SelectCategory starts a fresh session for the category with the given ID.
// Unknown IDs are ignored.
func (m *Machine) SelectCategory(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.screen != ScreenCategorySelect {
		return false
	}
	c, ok := m.bank.Category(id)
	if !ok {
		m.logger.Debug("ignoring unknown category", zap.String("category", id))
		return false
	}
	m.start(c)
	return true
}

// SelectOption highlights option on the current question. It has no effect
// once the question is answered or if option does not belong to it.
func (m *Machine) SelectOption(option string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, q, ok := m.current()
	if !ok || s.answered || !q.HasOption(option) {
		return false
	}
	s.selected = option
	return true
}

// SubmitAnswer commits option as the answer to the current question and
// returns the transition the caller must complete after Deferred.Delay.
// Repeat submissions for the same question are ignored.
func (m *Machine) SubmitAnswer(option string) (Deferred, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, q, ok := m.current()
	if !ok || s.answered || option == "" || !q.HasOption(option) {
		return Deferred{}, false
	}

	s.selected = option
	s.answered = true
	s.pending = true
	correct := q.IsCorrect(option)
	if correct {
		s.score++
		s.feedback = FeedbackCorrect
		if s.index == len(s.questions)-1 {
			s.celebrate = true
		}
	} else {
		s.feedback = FeedbackWrong
	}

	m.logger.Debug("answer submitted",
		zap.String("session_id", s.id),
		zap.Int("question", s.index+1),
		zap.Bool("correct", correct),
		zap.Int("score", s.score))

	return Deferred{generation: m.generation, index: s.index, Delay: m.delay}, true
}

// Complete applies a deferred transition: the next question, or the results
// screen after the last one. Stale or already-applied transitions are
// ignored and report false.
func (m *Machine) Complete(ctx context.Context, d Deferred) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session
	if s == nil || m.screen != ScreenInProgress || d.generation != m.generation ||
		d.index != s.index || !s.pending {
		return false
	}

	s.pending = false
	s.feedback = FeedbackNone
	if s.index+1 < len(s.questions) {
		s.index++
		s.selected = ""
		s.answered = false
		return true
	}
	m.finish(ctx, s)
	return true
}

// Schedule completes d on a timer after d.Delay and then calls onDone,
// if set, with the outcome. The returned function cancels the timer.
func (m *Machine) Schedule(ctx context.Context, d Deferred, onDone func(applied bool)) (cancel func() bool) {
	t := time.AfterFunc(d.Delay, func() {
		applied := m.Complete(ctx, d)
		if onDone != nil {
			onDone(applied)
		}
	})
	return t.Stop
}

// RetryQuiz restarts the finished category with a new shuffle.
func (m *Machine) RetryQuiz() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.guard()
	if m.screen != ScreenResults || m.session == nil {
		return false
	}
	m.start(m.session.category)
	return true
}

// ChangeCategory abandons any session and returns to category selection.
// Pending transitions for the abandoned session become stale.
func (m *Machine) ChangeCategory() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.screen {
	case ScreenInProgress, ScreenResults, ScreenCategorySelect:
	default:
		return false
	}
	if m.session != nil && m.screen == ScreenInProgress {
		m.logger.Info("quiz abandoned",
			zap.String("session_id", m.session.id),
			zap.String("category", m.session.category.ID),
			zap.Int("question", m.session.index+1))
	}
	m.generation++
	m.session = nil
	m.screen = ScreenCategorySelect
	return true
}

// AckCelebration clears the celebration flag once it has been shown.
func (m *Machine) AckCelebration() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil || !m.session.celebrate {
		return false
	}
	m.session.celebrate = false
	return true
}

// start begins a new session for c. Callers hold m.mu.
func (m *Machine) start(c *bank.Category) {
	m.generation++
	m.session = &session{
		id:        m.newID(),
		category:  c,
		questions: shuffle(c.Questions, m.rng),
	}
	m.screen = ScreenInProgress
	m.logger.Info("quiz started",
		zap.String("session_id", m.session.id),
		zap.String("category", c.ID),
		zap.Int("questions", len(m.session.questions)))
}

// finish moves s to the results screen and records its score. Callers hold
// m.mu.
func (m *Machine) finish(ctx context.Context, s *session) {
	final := s.score
	total := len(s.questions)
	m.screen = ScreenResults
	if final == total {
		s.celebrate = true
	}

	updated, changed := highscore.RecordIfBetter(m.scores, s.category.ID, final, total, m.now())
	if changed {
		m.scores = updated
		s.newBest = final > 0
		if m.highScores != nil {
			m.highScores.Save(ctx, updated)
		}
	}

	m.logger.Info("quiz finished",
		zap.String("session_id", s.id),
		zap.String("category", s.category.ID),
		zap.Int("score", final),
		zap.Int("total", total),
		zap.Bool("new_best", s.newBest))
}

// current returns the active session and question while a quiz is running.
// Callers hold m.mu.
func (m *Machine) current() (*session, bank.Question, bool) {
	m.guard()
	s := m.session
	if m.screen != ScreenInProgress || s == nil || s.index >= len(s.questions) {
		return nil, bank.Question{}, false
	}
	return s, s.questions[s.index], true
}

// guard sends the machine back to category selection if a quiz screen is
// active without a session. Callers hold m.mu.
func (m *Machine) guard() {
	if (m.screen == ScreenInProgress || m.screen == ScreenResults) && m.session == nil {
		m.logger.Warn("quiz screen without a session, returning to categories",
			zap.Stringer("screen", m.screen))
		m.screen = ScreenCategorySelect
	}
}
