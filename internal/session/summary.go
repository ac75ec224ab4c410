package session

import (
	"strconv"
	"time"

	"github.com/abhisek/vocabquiz/internal/quizgen"
)

// Summary holds the data displayed once a quiz ends.
type Summary struct {
	SessionID string
	Complete  bool
	Pairs     int
	Total     int
	Answered  int
	Correct   int
	Accuracy  float64
	Duration  time.Duration
	Direction quizgen.Direction
	Choices   int
	Missed    []AnswerRecord
	Answers   []AnswerRecord
	StartedAt time.Time
}

// BuildSummary creates a Summary from the session. For a finished pass
// Accuracy is the final accuracy; for a quiz cut short it is the running
// accuracy over answered questions.
func BuildSummary(s *Session) *Summary {
	var missed []AnswerRecord
	for _, a := range s.answers {
		if !a.Correct {
			missed = append(missed, a)
		}
	}

	var accuracy float64
	if acc, err := s.FinalAccuracy(); err == nil {
		accuracy = acc
	} else if s.answered > 0 {
		accuracy = float64(s.correct) / float64(s.answered)
	}

	end := s.finishedAt
	if s.status != StatusComplete {
		end = s.now()
	}

	return &Summary{
		SessionID: s.id,
		Complete:  s.status == StatusComplete,
		Pairs:     len(s.vocab),
		Total:     s.total,
		Answered:  s.answered,
		Correct:   s.correct,
		Accuracy:  accuracy,
		Duration:  end.Sub(s.startedAt),
		Direction: s.cfg.Direction,
		Choices:   s.cfg.ChoicesPerQuestion,
		Missed:    missed,
		Answers:   s.answers,
		StartedAt: s.startedAt,
	}
}

// Summary is shorthand for BuildSummary(s).
func (s *Session) Summary() *Summary {
	return BuildSummary(s)
}

// FormatAccuracy formats a 0..1 ratio as a percentage with one decimal
// place, e.g. "66.7%".
func FormatAccuracy(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', 1, 64) + "%"
}
