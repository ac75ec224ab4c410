package store

import (
	"time"

	"github.com/samber/lo"

	"github.com/abhisek/vocabquiz/internal/session"
)

// FromSummary converts an ended quiz into result log records.
func FromSummary(sum *session.Summary, finishedAt time.Time) (SessionRecord, []AnswerRecord) {
	rec := SessionRecord{
		ID:         sum.SessionID,
		StartedAt:  sum.StartedAt,
		FinishedAt: finishedAt,
		Pairs:      sum.Pairs,
		Questions:  sum.Total,
		Answered:   sum.Answered,
		Correct:    sum.Correct,
		Direction:  string(sum.Direction),
		Choices:    sum.Choices,
		Complete:   sum.Complete,
	}

	answers := lo.Map(sum.Answers, func(a session.AnswerRecord, _ int) AnswerRecord {
		return AnswerRecord{
			SessionID:  sum.SessionID,
			Seq:        a.Question.Number,
			Prompt:     a.Question.Prompt,
			Expected:   a.Question.Answer,
			Selected:   a.Selected,
			Correct:    a.Correct,
			AnsweredAt: a.AnsweredAt,
		}
	})
	return rec, answers
}
