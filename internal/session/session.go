package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/vocabquiz/internal/quizgen"
	"github.com/abhisek/vocabquiz/internal/vocab"
)

var (
	// ErrSessionComplete signals the normal end of a pass. It is not a failure.
	ErrSessionComplete = errors.New("quiz complete")

	// ErrNotComplete is returned by FinalAccuracy before the pass is finished.
	ErrNotComplete = errors.New("quiz not complete")

	// ErrNotStarted is returned by NextQuestion before Begin.
	ErrNotStarted = errors.New("quiz not started")

	// ErrAlreadyStarted is returned by Begin once a pass is running or done.
	// Construct a new Session to play again.
	ErrAlreadyStarted = errors.New("quiz already started")

	// ErrQuestionPending is returned by NextQuestion while a question is unanswered.
	ErrQuestionPending = errors.New("previous question not answered")

	// ErrNoPendingQuestion is returned by SubmitAnswer with no question outstanding.
	ErrNoPendingQuestion = errors.New("no question to answer")

	// ErrInsufficientVocabulary means there are fewer distinct pairs than choices.
	ErrInsufficientVocabulary = quizgen.ErrInsufficientVocabulary

	// ErrInvalidChoiceCount means fewer than MinChoices choices were requested.
	ErrInvalidChoiceCount = quizgen.ErrInvalidChoiceCount
)

// CheckAnswer reports whether selected is the expected answer. Matching is
// exact: a merged definition such as "고양이, 냥이" only matches in full.
func CheckAnswer(selected, expected string) bool {
	return selected == expected
}

// Begin parses raw text into the session vocabulary and starts the pass.
// On error the session is left untouched in StatusInput.
func (s *Session) Begin(raw string) error {
	if s.status != StatusInput {
		return ErrAlreadyStarted
	}
	if s.cfg.ChoicesPerQuestion < MinChoices {
		return fmt.Errorf("%w: need at least %d, got %d",
			ErrInvalidChoiceCount, MinChoices, s.cfg.ChoicesPerQuestion)
	}
	if s.cfg.Limit < 0 {
		return fmt.Errorf("question limit must not be negative, got %d", s.cfg.Limit)
	}

	v, err := vocab.Parse(raw)
	if err != nil {
		return err
	}
	if s.cfg.ChoicesPerQuestion > len(v) {
		return fmt.Errorf("%w: %d choices requested, %d pairs available",
			ErrInsufficientVocabulary, s.cfg.ChoicesPerQuestion, len(v))
	}
	for _, side := range s.cfg.Direction.AnswerSides() {
		if n := v.Distinct(side); n < s.cfg.ChoicesPerQuestion {
			return fmt.Errorf("%w: %d choices requested, only %d distinct %ss",
				ErrInsufficientVocabulary, s.cfg.ChoicesPerQuestion, n, side)
		}
	}

	total := len(v)
	if s.cfg.Limit > 0 && s.cfg.Limit < total {
		total = s.cfg.Limit
	}

	remaining := make([]int, len(v))
	for i := range remaining {
		remaining[i] = i
	}

	s.id = s.newID()
	s.vocab = v
	s.generator = quizgen.New(s.rng, s.cfg.ChoicesPerQuestion, s.cfg.Direction)
	s.asked = make(map[int]bool, total)
	s.remaining = remaining
	s.total = total
	s.correct = 0
	s.answered = 0
	s.current = nil
	s.answers = nil
	s.startedAt = s.now()
	s.finishedAt = s.startedAt
	s.status = StatusInProgress
	return nil
}

// NextQuestion picks an unused pair and returns its question.
//
// It returns ErrSessionComplete once every question of the pass has been
// asked. If a choice set cannot be built the quiz is aborted: the session
// returns to StatusInput and ErrInsufficientVocabulary is returned.
func (s *Session) NextQuestion() (*quizgen.Question, error) {
	switch s.status {
	case StatusInput:
		return nil, ErrNotStarted
	case StatusComplete:
		return nil, ErrSessionComplete
	}
	if s.current != nil {
		return nil, ErrQuestionPending
	}
	if len(s.asked) >= s.total {
		s.complete()
		return nil, ErrSessionComplete
	}

	slot := s.pick()
	index := s.remaining[slot]

	q, err := s.generator.Generate(s.vocab, index, len(s.asked)+1)
	if err != nil {
		s.abort()
		return nil, fmt.Errorf("question %d: %w", len(s.asked)+1, err)
	}

	if s.cfg.Order == OrderSequential {
		s.remaining = s.remaining[1:]
	} else {
		// Swap-remove keeps selection O(1); the pool shrinks by one every call.
		last := len(s.remaining) - 1
		s.remaining[slot] = s.remaining[last]
		s.remaining = s.remaining[:last]
	}

	s.asked[index] = true
	s.current = q
	return q, nil
}

// pick returns the slot in remaining to ask next.
func (s *Session) pick() int {
	if s.cfg.Order == OrderSequential {
		return 0
	}
	return s.rng.IntN(len(s.remaining))
}

// SubmitAnswer scores selected against the pending question.
func (s *Session) SubmitAnswer(selected string) (AnswerResult, error) {
	q := s.current
	if q == nil {
		return AnswerResult{}, ErrNoPendingQuestion
	}

	correct := CheckAnswer(selected, q.Answer)
	s.answered++
	if correct {
		s.correct++
	}
	s.answers = append(s.answers, AnswerRecord{
		Question:   *q,
		Selected:   selected,
		Correct:    correct,
		AnsweredAt: s.now(),
	})
	s.current = nil

	if len(s.asked) >= s.total {
		s.complete()
	}

	return AnswerResult{
		Correct:         correct,
		Selected:        selected,
		CorrectAnswer:   q.Answer,
		RunningAccuracy: float64(s.correct) / float64(s.answered),
		Answered:        s.answered,
		CorrectCount:    s.correct,
		Remaining:       s.total - s.answered,
	}, nil
}

// FinalAccuracy returns correct answers over questions in the pass.
func (s *Session) FinalAccuracy() (float64, error) {
	if s.status != StatusComplete {
		return 0, ErrNotComplete
	}
	return float64(s.correct) / float64(s.total), nil
}

func (s *Session) complete() {
	if s.status == StatusComplete {
		return
	}
	s.status = StatusComplete
	s.finishedAt = s.now()
}

// abort drops the running pass and returns to StatusInput.
func (s *Session) abort() {
	s.status = StatusInput
	s.vocab = nil
	s.generator = nil
	s.asked = nil
	s.remaining = nil
	s.total = 0
	s.correct = 0
	s.answered = 0
	s.current = nil
	s.answers = nil
}
