package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabquiz/internal/quizgen"
	"github.com/abhisek/vocabquiz/internal/router"
	"github.com/abhisek/vocabquiz/internal/screen"
	"github.com/abhisek/vocabquiz/internal/screens/summary"
	sess "github.com/abhisek/vocabquiz/internal/session"
	"github.com/abhisek/vocabquiz/internal/store"
	"github.com/abhisek/vocabquiz/internal/ui/components"
	"github.com/abhisek/vocabquiz/internal/ui/layout"
)

// Options carries what the quiz screen needs beyond the session.
type Options struct {
	// FeedbackDelay is how long feedback stays up before the next question.
	FeedbackDelay time.Duration

	// Results receives the finished quiz. Nil disables the result log.
	Results store.ResultRepo

	Logger *slog.Logger

	// Retry builds the screen the summary opens on "r". Optional.
	Retry func() screen.Screen
}

// QuizScreen implements screen.Screen for a started session.
type QuizScreen struct {
	state *sess.Session
	opts  Options

	question     *quizgen.Question
	choices      components.MultiChoice
	lastResult   sess.AnswerResult
	showFeedback bool
	showQuit     bool
	ended        bool
	errMsg       string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)

// New creates a QuizScreen for a session that has already begun.
func New(state *sess.Session, opts Options) *QuizScreen {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &QuizScreen{state: state, opts: opts}
}

func (s *QuizScreen) Init() tea.Cmd {
	_, total := s.state.Progress()
	s.opts.Logger.Info("quiz started",
		"session", s.state.ID(),
		"pairs", len(s.state.Vocabulary()),
		"questions", total,
		"direction", string(s.state.Config().Direction))
	return s.nextQuestion()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// HandlesEscape claims Esc while a question is open so it can ask before
// quitting.
func (s *QuizScreen) HandlesEscape() bool {
	return s.errMsg == "" && !s.ended
}

func (s *QuizScreen) HeaderStatus() string {
	answered, total := s.state.Progress()
	return fmt.Sprintf("✓ %d  %d/%d", s.lastResult.CorrectCount, answered, total)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.showQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: fmt.Sprintf("1-%d", len(s.choices.Options)), Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.showQuit {
		return renderQuitConfirm(width, height)
	}
	if s.question == nil {
		return renderLoading(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if !s.showFeedback || s.question == nil || msg.number != s.question.Number {
			return s, nil
		}
		return s.handleFeedbackDone()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// nextQuestion asks the session for the next question, or ends the quiz
// when the pass is complete.
func (s *QuizScreen) nextQuestion() tea.Cmd {
	if s.state.Status() == sess.StatusComplete {
		return s.end()
	}

	q, err := s.state.NextQuestion()
	if err != nil {
		s.opts.Logger.Warn("quiz aborted", "session", s.state.ID(), "error", err)
		s.errMsg = err.Error()
		return nil
	}

	s.question = q
	s.choices = components.NewMultiChoice(q.Choices, q.CorrectIndex())
	s.showFeedback = false
	return nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back to the input screen.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.ended {
		return s, nil
	}

	if s.showQuit {
		switch key {
		case "y", "Y":
			s.showQuit = false
			return s, s.end()
		case "n", "N", "esc":
			s.showQuit = false
		}
		return s, nil
	}

	// Feedback: any key skips the wait.
	if s.showFeedback {
		return s.handleFeedbackDone()
	}

	if key == "esc" {
		s.showQuit = true
		return s, nil
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	if selected, ok := s.choices.Chosen(); ok {
		return s, s.submit(selected)
	}
	return s, cmd
}

// submit records the answer and starts the feedback timer.
func (s *QuizScreen) submit(selected string) tea.Cmd {
	res, err := s.state.SubmitAnswer(selected)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.lastResult = res
	s.showFeedback = true

	s.opts.Logger.Debug("answer",
		"session", s.state.ID(),
		"question", s.question.Number,
		"correct", res.Correct)

	number := s.question.Number
	if s.opts.FeedbackDelay <= 0 {
		return func() tea.Msg { return feedbackDoneMsg{number: number} }
	}
	return tea.Tick(s.opts.FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{number: number}
	})
}

func (s *QuizScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showFeedback = false
	return s, s.nextQuestion()
}

// end builds the summary and returns a command that logs the result and
// swaps this screen for the summary.
func (s *QuizScreen) end() tea.Cmd {
	if s.ended {
		return nil
	}
	s.ended = true

	sum := s.state.Summary()
	s.opts.Logger.Info("quiz finished",
		"session", sum.SessionID,
		"complete", sum.Complete,
		"answered", sum.Answered,
		"correct", sum.Correct,
		"accuracy", sum.Accuracy)

	results, logger, retry := s.opts.Results, s.opts.Logger, s.opts.Retry
	return func() tea.Msg {
		sopts := summary.Options{Retry: retry}
		if results != nil && sum.Answered > 0 {
			rec, answers := store.FromSummary(sum, time.Now())
			if err := results.SaveSession(context.Background(), rec, answers); err != nil {
				// Log the failure but don't fail the quiz.
				logger.Error("save result", "session", sum.SessionID, "error", err)
				sopts.SaveErr = err
			} else {
				sopts.Saved = true
			}
		}
		return router.ReplaceScreenMsg{Screen: summary.New(sum, sopts)}
	}
}
