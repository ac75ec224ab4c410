package session

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/vocabquiz/internal/quizgen"
	"github.com/abhisek/vocabquiz/internal/vocab"
)

// Status is the lifecycle state of a quiz session.
type Status int

const (
	StatusInput      Status = iota // Waiting for vocabulary text
	StatusInProgress               // Serving questions
	StatusComplete                 // Every question of the pass answered
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	case StatusComplete:
		return "complete"
	default:
		return "input"
	}
}

// Direction re-exports quizgen.Direction for callers configuring a session.
type Direction = quizgen.Direction

const (
	TermToDefinition = quizgen.TermToDefinition
	DefinitionToTerm = quizgen.DefinitionToTerm
	Random           = quizgen.Random
)

// Order controls the order in which pairs are asked.
type Order string

const (
	// OrderRandom asks pairs in a uniformly random order.
	OrderRandom Order = "random"

	// OrderSequential asks pairs in input order.
	OrderSequential Order = "sequential"
)

// ParseOrder parses an order name. Empty input yields OrderRandom.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderRandom:
		return OrderRandom, nil
	case OrderSequential:
		return OrderSequential, nil
	}
	return "", fmt.Errorf("unknown order %q (want random or sequential)", s)
}

// MinChoices is the smallest useful choice set.
const MinChoices = 2

// Config holds the per-session quiz settings.
type Config struct {
	// ChoicesPerQuestion is the size of every choice set, answer included.
	ChoicesPerQuestion int

	// Direction selects which half of each pair is asked for.
	Direction Direction

	// Order controls question order.
	Order Order

	// Limit caps the number of questions in the pass. Zero asks every pair.
	Limit int
}

// DefaultConfig returns a Config with four choices, term → definition, in
// random order over the whole vocabulary.
func DefaultConfig() Config {
	return Config{
		ChoicesPerQuestion: 4,
		Direction:          quizgen.DefaultDirection,
		Order:              OrderRandom,
	}
}

// AnswerRecord is an answered question.
type AnswerRecord struct {
	Question   quizgen.Question
	Selected   string
	Correct    bool
	AnsweredAt time.Time
}

// AnswerResult is returned to the renderer after each answer.
type AnswerResult struct {
	Correct         bool
	Selected        string
	CorrectAnswer   string
	RunningAccuracy float64
	Answered        int
	CorrectCount    int
	Remaining       int
}

// Session is the quiz state machine. It is not safe for concurrent use;
// one renderer owns it and calls Begin, NextQuestion and SubmitAnswer in
// sequence.
type Session struct {
	cfg   Config
	rng   *rand.Rand
	now   func() time.Time
	newID func() string

	id        string
	status    Status
	vocab     vocab.Vocabulary
	generator *quizgen.Generator

	// asked holds the pair indices already used this pass.
	asked map[int]bool

	// remaining holds the pair indices not yet asked.
	remaining []int

	// total is the number of questions in the pass.
	total int

	correct  int
	answered int
	current  *quizgen.Question
	answers  []AnswerRecord

	startedAt  time.Time
	finishedAt time.Time
}

// Option customizes a Session.
type Option func(*Session)

// WithRand sets the random source used for question order, choices and
// direction. Tests use it for deterministic runs.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDFunc overrides session ID generation.
func WithIDFunc(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

// New creates a session in StatusInput.
func New(cfg Config, opts ...Option) *Session {
	if cfg.Direction == "" {
		cfg.Direction = quizgen.DefaultDirection
	}
	if cfg.Order == "" {
		cfg.Order = OrderRandom
	}

	s := &Session{
		cfg:    cfg,
		now:    time.Now,
		newID:  uuid.NewString,
		status: StatusInput,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// ID returns the session ID assigned by Begin.
func (s *Session) ID() string { return s.id }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Config returns the session settings.
func (s *Session) Config() Config { return s.cfg }

// Vocabulary returns the parsed vocabulary, nil before Begin.
func (s *Session) Vocabulary() vocab.Vocabulary { return s.vocab }

// Current returns the question awaiting an answer, or nil.
func (s *Session) Current() *quizgen.Question { return s.current }

// Progress returns how many questions were answered and how many the pass holds.
func (s *Session) Progress() (answered, total int) {
	return s.answered, s.total
}

