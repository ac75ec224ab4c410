package config

import (
	"fmt"
	"strings"

	"github.com/abhisek/vocabquiz/internal/quizgen"
	"github.com/abhisek/vocabquiz/internal/session"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if _, err := c.Quiz.Session(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	if c.Quiz.FeedbackDelay < 0 {
		return fmt.Errorf("quiz: feedback_delay must not be negative (got %s)", c.Quiz.FeedbackDelay)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: unknown level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log: unknown format %q", c.Log.Format)
	}
	return nil
}

// Session converts the quiz settings into a session.Config.
func (q QuizConfig) Session() (session.Config, error) {
	if q.Choices < session.MinChoices {
		return session.Config{}, fmt.Errorf("choices must be at least %d (got %d)", session.MinChoices, q.Choices)
	}
	if q.Limit < 0 {
		return session.Config{}, fmt.Errorf("limit must not be negative (got %d)", q.Limit)
	}

	dir, err := quizgen.ParseDirection(q.Direction)
	if err != nil {
		return session.Config{}, err
	}
	order, err := session.ParseOrder(q.Order)
	if err != nil {
		return session.Config{}, err
	}

	return session.Config{
		ChoicesPerQuestion: q.Choices,
		Direction:          dir,
		Order:              order,
		Limit:              q.Limit,
	}, nil
}
