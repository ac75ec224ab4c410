package store

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabquiz/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "vocabquiz.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabquiz.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.ResultRepo().SaveSession(ctx, SessionRecord{ID: "a", Questions: 2}, nil))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	recent, err := s.ResultRepo().Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "a", recent[0].ID)
}

func TestSaveSession_RoundTrip(t *testing.T) {
	repo := openTestStore(t).ResultRepo()
	ctx := context.Background()

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := SessionRecord{
		ID:         "s1",
		StartedAt:  start,
		FinishedAt: start.Add(90 * time.Second),
		Pairs:      3,
		Questions:  3,
		Answered:   3,
		Correct:    2,
		Direction:  "term",
		Choices:    3,
		Complete:   true,
	}
	answers := []AnswerRecord{
		{Seq: 1, Prompt: "cat", Expected: "고양이", Selected: "고양이", Correct: true, AnsweredAt: start.Add(10 * time.Second)},
		{Seq: 2, Prompt: "dog", Expected: "개", Selected: "새", Correct: false, AnsweredAt: start.Add(20 * time.Second)},
		{Seq: 3, Prompt: "bird", Expected: "새", Selected: "새", Correct: true, AnsweredAt: start.Add(30 * time.Second)},
	}
	require.NoError(t, repo.SaveSession(ctx, rec, answers))

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	got := recent[0]
	assert.True(t, got.StartedAt.Equal(rec.StartedAt))
	assert.True(t, got.FinishedAt.Equal(rec.FinishedAt))
	got.StartedAt, got.FinishedAt = rec.StartedAt, rec.FinishedAt
	assert.Equal(t, rec, got)
	assert.InDelta(t, 2.0/3.0, got.Accuracy(), 1e-9)

	gotAnswers, err := repo.Answers(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, gotAnswers, 3)
	assert.Equal(t, "dog", gotAnswers[1].Prompt)
	assert.Equal(t, "새", gotAnswers[1].Selected)
	assert.False(t, gotAnswers[1].Correct)
	assert.Equal(t, "s1", gotAnswers[0].SessionID)
	assert.True(t, gotAnswers[2].AnsweredAt.Equal(answers[2].AnsweredAt))
}

func TestSaveSession_Errors(t *testing.T) {
	repo := openTestStore(t).ResultRepo()
	ctx := context.Background()

	assert.ErrorIs(t, repo.SaveSession(ctx, SessionRecord{}, nil), ErrMissingSessionID)

	require.NoError(t, repo.SaveSession(ctx, SessionRecord{ID: "dup"}, nil))
	assert.Error(t, repo.SaveSession(ctx, SessionRecord{ID: "dup"}, nil))

	// Duplicate answer seq rolls back the whole session.
	err := repo.SaveSession(ctx, SessionRecord{ID: "bad"}, []AnswerRecord{
		{Seq: 1, Prompt: "a", Expected: "b", Selected: "b", Correct: true},
		{Seq: 1, Prompt: "c", Expected: "d", Selected: "d", Correct: true},
	})
	require.Error(t, err)

	recent, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestRecent_NewestFirstWithLimit(t *testing.T) {
	repo := openTestStore(t).ResultRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		at := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.SaveSession(ctx, SessionRecord{ID: id, StartedAt: at, FinishedAt: at}, nil))
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].ID)
	assert.Equal(t, "second", recent[1].ID)
}

func TestTotalsAndMostMissed(t *testing.T) {
	repo := openTestStore(t).ResultRepo()
	ctx := context.Background()

	totals, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, Totals{}, totals)
	assert.Zero(t, totals.Accuracy())

	miss := func(seq int, prompt, expected string) AnswerRecord {
		return AnswerRecord{Seq: seq, Prompt: prompt, Expected: expected, Selected: "x"}
	}
	hit := func(seq int, prompt, expected string) AnswerRecord {
		return AnswerRecord{Seq: seq, Prompt: prompt, Expected: expected, Selected: expected, Correct: true}
	}

	require.NoError(t, repo.SaveSession(ctx,
		SessionRecord{ID: "a", Questions: 3, Answered: 3, Correct: 1, Complete: true},
		[]AnswerRecord{miss(1, "dog", "개"), hit(2, "cat", "고양이"), miss(3, "bird", "새")}))
	require.NoError(t, repo.SaveSession(ctx,
		SessionRecord{ID: "b", Questions: 3, Answered: 2, Correct: 1},
		[]AnswerRecord{miss(1, "dog", "개"), hit(2, "bird", "새")}))

	totals, err = repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, Totals{Sessions: 2, Questions: 6, Answered: 5, Correct: 2}, totals)
	assert.InDelta(t, 0.4, totals.Accuracy(), 1e-9)

	missed, err := repo.MostMissed(ctx, 5)
	require.NoError(t, err)
	require.Len(t, missed, 2)
	assert.Equal(t, MissedWord{Prompt: "dog", Expected: "개", Misses: 2}, missed[0])
	assert.Equal(t, MissedWord{Prompt: "bird", Expected: "새", Misses: 1}, missed[1])
}

func TestSessionRecord_Accuracy(t *testing.T) {
	tests := []struct {
		name string
		rec  SessionRecord
		want float64
	}{
		{"nothing answered", SessionRecord{Questions: 4}, 0},
		{"complete uses questions", SessionRecord{Questions: 4, Answered: 4, Correct: 3, Complete: true}, 0.75},
		{"cut short uses answered", SessionRecord{Questions: 4, Answered: 2, Correct: 1}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.rec.Accuracy(), 1e-9)
		})
	}
}

func TestFromSummary(t *testing.T) {
	s := session.New(session.Config{ChoicesPerQuestion: 2, Direction: session.TermToDefinition, Order: session.OrderSequential},
		session.WithRand(rand.New(rand.NewPCG(1, 2))),
		session.WithIDFunc(func() string { return "sum-id" }),
	)
	require.NoError(t, s.Begin("cat 고양이\ndog 개"))

	q, err := s.NextQuestion()
	require.NoError(t, err)
	_, err = s.SubmitAnswer(q.Answer)
	require.NoError(t, err)

	finished := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rec, answers := FromSummary(session.BuildSummary(s), finished)

	assert.Equal(t, "sum-id", rec.ID)
	assert.Equal(t, 2, rec.Pairs)
	assert.Equal(t, 2, rec.Questions)
	assert.Equal(t, 1, rec.Answered)
	assert.Equal(t, 1, rec.Correct)
	assert.Equal(t, "term", rec.Direction)
	assert.False(t, rec.Complete)
	assert.Equal(t, finished, rec.FinishedAt)

	require.Len(t, answers, 1)
	assert.Equal(t, AnswerRecord{
		SessionID:  "sum-id",
		Seq:        1,
		Prompt:     "cat",
		Expected:   "고양이",
		Selected:   "고양이",
		Correct:    true,
		AnsweredAt: answers[0].AnsweredAt,
	}, answers[0])
}
