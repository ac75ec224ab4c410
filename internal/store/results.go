package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// ErrMissingSessionID is returned when a record without an ID is saved.
var ErrMissingSessionID = errors.New("session record has no id")

// SessionRecord is one finished or abandoned quiz in the result log.
type SessionRecord struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Pairs      int
	Questions  int // questions in the pass
	Answered   int
	Correct    int
	Direction  string
	Choices    int
	Complete   bool
}

// Accuracy returns correct over questions for a complete pass and correct
// over answered questions otherwise. It is 0 when nothing was answered.
func (r SessionRecord) Accuracy() float64 {
	denom := r.Answered
	if r.Complete {
		denom = r.Questions
	}
	if denom == 0 {
		return 0
	}
	return float64(r.Correct) / float64(denom)
}

// AnswerRecord is one answered question of a logged quiz.
type AnswerRecord struct {
	SessionID  string
	Seq        int
	Prompt     string
	Expected   string
	Selected   string
	Correct    bool
	AnsweredAt time.Time
}

// Totals aggregates the whole result log.
type Totals struct {
	Sessions  int
	Questions int
	Answered  int
	Correct   int
}

// Accuracy returns correct over answered questions across all sessions.
func (t Totals) Accuracy() float64 {
	if t.Answered == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Answered)
}

// MissedWord is a prompt that was answered wrong at least once.
type MissedWord struct {
	Prompt   string
	Expected string
	Misses   int
}

// ResultRepo appends quiz results and reads them back for reporting.
// Nothing in it is used to restore a quiz.
type ResultRepo interface {
	// SaveSession writes a session and its answers in one transaction.
	SaveSession(ctx context.Context, rec SessionRecord, answers []AnswerRecord) error

	// Recent returns up to limit sessions, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]SessionRecord, error)

	// Answers returns the answers of one session in question order.
	Answers(ctx context.Context, sessionID string) ([]AnswerRecord, error)

	// Totals aggregates every logged session.
	Totals(ctx context.Context) (Totals, error)

	// MostMissed returns the prompts answered wrong most often.
	MostMissed(ctx context.Context, limit int) ([]MissedWord, error)
}

// resultRepo implements ResultRepo with ent's SQL builders.
type resultRepo struct {
	drv *entsql.Driver
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *resultRepo) SaveSession(ctx context.Context, rec SessionRecord, answers []AnswerRecord) (err error) {
	if rec.ID == "" {
		return ErrMissingSessionID
	}

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query, args := builder().Insert(sessionsTable).
		Columns(colID, colStartedAt, colFinishedAt, colPairs, colQuestions,
			colAnswered, colCorrect, colDirection, colChoices, colComplete).
		Values(rec.ID, rec.StartedAt.UnixMilli(), rec.FinishedAt.UnixMilli(), rec.Pairs, rec.Questions,
			rec.Answered, rec.Correct, rec.Direction, rec.Choices, rec.Complete).
		Query()
	if err = tx.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	if len(answers) > 0 {
		ins := builder().Insert(answersTable).
			Columns(colSessionID, colSeq, colPrompt, colExpected, colSelected, colCorrect, colAnsweredAt)
		for _, a := range answers {
			ins.Values(rec.ID, a.Seq, a.Prompt, a.Expected, a.Selected, a.Correct, a.AnsweredAt.UnixMilli())
		}
		query, args = ins.Query()
		if err = tx.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("insert answers: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	t := entsql.Table(sessionsTable)
	sel := builder().Select(
		t.C(colID), t.C(colStartedAt), t.C(colFinishedAt), t.C(colPairs), t.C(colQuestions),
		t.C(colAnswered), t.C(colCorrect), t.C(colDirection), t.C(colChoices), t.C(colComplete),
	).From(t).OrderBy(entsql.Desc(t.C(colStartedAt)))
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec               SessionRecord
			started, finished int64
		)
		if err := rows.Scan(&rec.ID, &started, &finished, &rec.Pairs, &rec.Questions,
			&rec.Answered, &rec.Correct, &rec.Direction, &rec.Choices, &rec.Complete); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.StartedAt = time.UnixMilli(started)
		rec.FinishedAt = time.UnixMilli(finished)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *resultRepo) Answers(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	t := entsql.Table(answersTable)
	query, args := builder().Select(
		t.C(colSeq), t.C(colPrompt), t.C(colExpected), t.C(colSelected), t.C(colCorrect), t.C(colAnsweredAt),
	).From(t).
		Where(entsql.EQ(t.C(colSessionID), sessionID)).
		OrderBy(t.C(colSeq)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		a := AnswerRecord{SessionID: sessionID}
		var at int64
		if err := rows.Scan(&a.Seq, &a.Prompt, &a.Expected, &a.Selected, &a.Correct, &at); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		a.AnsweredAt = time.UnixMilli(at)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *resultRepo) Totals(ctx context.Context) (Totals, error) {
	t := entsql.Table(sessionsTable)
	query, args := builder().Select(
		entsql.Count("*"), entsql.Sum(t.C(colQuestions)), entsql.Sum(t.C(colAnswered)), entsql.Sum(t.C(colCorrect)),
	).From(t).Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return Totals{}, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	var totals Totals
	if rows.Next() {
		// SUM is NULL over an empty table.
		var questions, answered, correct sql.NullInt64
		if err := rows.Scan(&totals.Sessions, &questions, &answered, &correct); err != nil {
			return Totals{}, fmt.Errorf("scan totals: %w", err)
		}
		totals.Questions = int(questions.Int64)
		totals.Answered = int(answered.Int64)
		totals.Correct = int(correct.Int64)
	}
	return totals, rows.Err()
}

func (r *resultRepo) MostMissed(ctx context.Context, limit int) ([]MissedWord, error) {
	t := entsql.Table(answersTable)
	sel := builder().Select(
		t.C(colPrompt), t.C(colExpected), entsql.As(entsql.Count("*"), "misses"),
	).From(t).
		Where(entsql.EQ(t.C(colCorrect), false)).
		GroupBy(t.C(colPrompt), t.C(colExpected)).
		OrderBy(entsql.Desc("misses"), t.C(colPrompt))
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query missed words: %w", err)
	}
	defer rows.Close()

	var out []MissedWord
	for rows.Next() {
		var w MissedWord
		if err := rows.Scan(&w.Prompt, &w.Expected, &w.Misses); err != nil {
			return nil, fmt.Errorf("scan missed word: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
