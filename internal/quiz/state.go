package quiz

import (
	"github.com/abhisek/smartkids/internal/bank"
	"github.com/abhisek/smartkids/internal/highscore"
)

// Screen is the current state of the quiz state machine.
type Screen int

const (
	ScreenHome           Screen = iota // Title screen
	ScreenCategorySelect               // Choosing a category
	ScreenInProgress                   // Answering questions
	ScreenResults                      // Showing the final score
)

var screenNames = [...]string{
	ScreenHome:           "home",
	ScreenCategorySelect: "category_select",
	ScreenInProgress:     "in_progress",
	ScreenResults:        "results",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// Feedback is the transient verdict shown after an answer.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "correct"
	case FeedbackWrong:
		return "wrong"
	default:
		return "none"
	}
}

// State is a read-only projection of the machine. Slices and maps are
// copies; Category points at immutable bank data.
type State struct {
	Screen Screen

	// SessionID identifies the running quiz; empty outside a quiz.
	SessionID string

	// Category is the active category, nil when not in a quiz.
	Category *bank.Category

	// Questions is this session's shuffled question order.
	Questions []bank.Question

	// Index is the position of the current question in Questions.
	Index int

	// Score is the number of correct answers so far.
	Score int

	// Selected is the option the user has highlighted, empty for none.
	Selected string

	// Answered is true once the current question has been submitted.
	Answered bool

	// Feedback is set between a submit and its deferred transition.
	Feedback Feedback

	// Celebrate asks the renderer to play a celebration. The renderer
	// clears it with Machine.AckCelebration.
	Celebrate bool

	// NewBest is true on Results when this session set a new high score.
	NewBest bool

	// HighScores is the current best score per category.
	HighScores highscore.Scores
}

// Total returns the number of questions in the session.
func (s State) Total() int {
	return len(s.Questions)
}

// Current returns the question being answered.
func (s State) Current() (bank.Question, bool) {
	if s.Screen != ScreenInProgress || s.Index < 0 || s.Index >= len(s.Questions) {
		return bank.Question{}, false
	}
	return s.Questions[s.Index], true
}

// IsLast reports whether the current question is the final one.
func (s State) IsLast() bool {
	return s.Index == len(s.Questions)-1
}

// Best returns the stored high score for the active category.
func (s State) Best() int {
	if s.Category == nil {
		return 0
	}
	return s.HighScores.Best(s.Category.ID)
}

// Message returns the tier message for the current score.
func (s State) Message() Message {
	return MessageFor(s.Score, s.Total())
}
