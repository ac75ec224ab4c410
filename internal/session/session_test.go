package session

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabquiz/internal/vocab"
)

const fivePairs = "cat 고양이\ndog 개\nbird 새\nfish 물고기\nhorse 말"

func testSession(cfg Config) *Session {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	return New(cfg,
		WithRand(rand.New(rand.NewPCG(7, 11))),
		WithIDFunc(func() string { return "test-session-id" }),
		WithClock(func() time.Time {
			tick++
			return start.Add(time.Duration(tick) * time.Second)
		}),
	)
}

func choices(n int) Config {
	cfg := DefaultConfig()
	cfg.ChoicesPerQuestion = n
	return cfg
}

func TestBegin_StartsPass(t *testing.T) {
	s := testSession(choices(3))
	require.NoError(t, s.Begin(fivePairs))

	if s.Status() != StatusInProgress {
		t.Errorf("Status = %v, want in-progress", s.Status())
	}
	if s.ID() != "test-session-id" {
		t.Errorf("ID = %q, want test-session-id", s.ID())
	}
	answered, total := s.Progress()
	if answered != 0 || total != 5 {
		t.Errorf("Progress = %d/%d, want 0/5", answered, total)
	}
	assert.Len(t, s.Vocabulary(), 5)
}

func TestBegin_Failures(t *testing.T) {
	tests := []struct {
		name    string
		choices int
		raw     string
		want    error
	}{
		{"empty", 2, "   ", vocab.ErrEmptyInput},
		{"one pair", 2, "cat 고양이", vocab.ErrInsufficientPairs},
		{"too many choices", 5, "cat 고양이\ndog 개\nbird 새", ErrInsufficientVocabulary},
		{"single choice", 1, fivePairs, ErrInvalidChoiceCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSession(choices(tt.choices))
			err := s.Begin(tt.raw)
			require.ErrorIs(t, err, tt.want)

			assert.Equal(t, StatusInput, s.Status())
			assert.Nil(t, s.Vocabulary())
			assert.Empty(t, s.ID())
		})
	}
}

func TestBegin_Twice(t *testing.T) {
	s := testSession(choices(2))
	require.NoError(t, s.Begin(fivePairs))

	err := s.Begin(fivePairs)
	if !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Begin error = %v, want ErrAlreadyStarted", err)
	}
}

func TestNextQuestion_WithoutReplacement(t *testing.T) {
	s := testSession(choices(4))
	require.NoError(t, s.Begin(fivePairs))

	seen := make(map[int]bool)
	for i := 1; i <= 5; i++ {
		q, err := s.NextQuestion()
		require.NoError(t, err, "question %d", i)

		if seen[q.PairIndex] {
			t.Fatalf("pair %d asked twice", q.PairIndex)
		}
		seen[q.PairIndex] = true

		assert.Equal(t, i, q.Number)
		assert.Equal(t, s.Vocabulary()[q.PairIndex].Term, q.Prompt)
		assert.Equal(t, s.Vocabulary()[q.PairIndex].Definition, q.Answer)
		assert.Len(t, q.Choices, 4)
		assert.Contains(t, q.Choices, q.Answer)

		_, err = s.SubmitAnswer(q.Answer)
		require.NoError(t, err)
	}

	_, err := s.NextQuestion()
	require.ErrorIs(t, err, ErrSessionComplete)
	assert.Equal(t, StatusComplete, s.Status())
	assert.Len(t, seen, 5)
}

func TestSubmitAnswer_RunningAndFinalAccuracy(t *testing.T) {
	s := testSession(choices(2))
	require.NoError(t, s.Begin("cat 고양이\ndog 개"))

	var running []float64

	q, err := s.NextQuestion()
	require.NoError(t, err)
	res, err := s.SubmitAnswer(q.Answer)
	require.NoError(t, err)
	assert.True(t, res.Correct)
	running = append(running, res.RunningAccuracy)

	_, err = s.FinalAccuracy()
	require.ErrorIs(t, err, ErrNotComplete)

	q, err = s.NextQuestion()
	require.NoError(t, err)
	wrong := q.Choices[0]
	if wrong == q.Answer {
		wrong = q.Choices[1]
	}
	res, err = s.SubmitAnswer(wrong)
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, q.Answer, res.CorrectAnswer)
	assert.Equal(t, 0, res.Remaining)
	running = append(running, res.RunningAccuracy)

	assert.Equal(t, []float64{1.0, 0.5}, running)

	_, err = s.NextQuestion()
	require.ErrorIs(t, err, ErrSessionComplete)

	final, err := s.FinalAccuracy()
	require.NoError(t, err)
	assert.Equal(t, 0.5, final)
}

func TestFinalAccuracy_BeforeBegin(t *testing.T) {
	s := testSession(choices(2))
	_, err := s.FinalAccuracy()
	if !errors.Is(err, ErrNotComplete) {
		t.Errorf("FinalAccuracy error = %v, want ErrNotComplete", err)
	}
}

func TestNextQuestion_Sequencing(t *testing.T) {
	s := testSession(choices(2))

	_, err := s.NextQuestion()
	require.ErrorIs(t, err, ErrNotStarted)

	_, err = s.SubmitAnswer("x")
	require.ErrorIs(t, err, ErrNoPendingQuestion)

	require.NoError(t, s.Begin(fivePairs))
	q, err := s.NextQuestion()
	require.NoError(t, err)

	_, err = s.NextQuestion()
	require.ErrorIs(t, err, ErrQuestionPending)
	assert.Same(t, q, s.Current())

	_, err = s.SubmitAnswer(q.Answer)
	require.NoError(t, err)
	assert.Nil(t, s.Current())

	_, err = s.SubmitAnswer(q.Answer)
	require.ErrorIs(t, err, ErrNoPendingQuestion)

	answered, _ := s.Progress()
	assert.Equal(t, 1, answered)
}

func TestBegin_CollidingDefinitions(t *testing.T) {
	const merged = "big 큰\nlarge 큰\nsmall 작은"

	tests := []struct {
		direction Direction
		wantErr   bool
	}{
		{TermToDefinition, true},
		{DefinitionToTerm, false},
		{Random, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.direction), func(t *testing.T) {
			cfg := choices(3)
			cfg.Direction = tt.direction
			s := testSession(cfg)

			err := s.Begin(merged)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInsufficientVocabulary)
			assert.Contains(t, err.Error(), "only 2 distinct definitions")
			assert.Equal(t, StatusInput, s.Status())

			// Still in input, a corrected list can start a pass.
			require.NoError(t, s.Begin("big 큰\nlarge 커다란\nsmall 작은"))
			_, err = s.NextQuestion()
			require.NoError(t, err)
		})
	}
}

func TestBegin_TooFewChoicesMessage(t *testing.T) {
	s := testSession(choices(1))
	err := s.Begin(fivePairs)
	require.ErrorIs(t, err, ErrInvalidChoiceCount)
	assert.EqualError(t, err, "too few choices: need at least 2, got 1")
}

func TestNextQuestion_SequentialOrder(t *testing.T) {
	cfg := choices(2)
	cfg.Order = OrderSequential
	s := testSession(cfg)
	require.NoError(t, s.Begin(fivePairs))

	var prompts []string
	for {
		q, err := s.NextQuestion()
		if errors.Is(err, ErrSessionComplete) {
			break
		}
		require.NoError(t, err)
		prompts = append(prompts, q.Prompt)
		_, err = s.SubmitAnswer(q.Answer)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"cat", "dog", "bird", "fish", "horse"}, prompts)
}

func TestNextQuestion_DefinitionToTerm(t *testing.T) {
	cfg := choices(3)
	cfg.Direction = DefinitionToTerm
	s := testSession(cfg)
	require.NoError(t, s.Begin(fivePairs))

	q, err := s.NextQuestion()
	require.NoError(t, err)

	pair := s.Vocabulary()[q.PairIndex]
	assert.Equal(t, pair.Definition, q.Prompt)
	assert.Equal(t, pair.Term, q.Answer)
	assert.Equal(t, DefinitionToTerm, q.Direction)
}

func TestLimit_EndsPassEarly(t *testing.T) {
	cfg := choices(2)
	cfg.Limit = 2
	s := testSession(cfg)
	require.NoError(t, s.Begin(fivePairs))

	for i := 0; i < 2; i++ {
		q, err := s.NextQuestion()
		require.NoError(t, err)
		_, err = s.SubmitAnswer(q.Answer)
		require.NoError(t, err)
	}

	assert.Equal(t, StatusComplete, s.Status())
	_, err := s.NextQuestion()
	require.ErrorIs(t, err, ErrSessionComplete)

	final, err := s.FinalAccuracy()
	require.NoError(t, err)
	assert.Equal(t, 1.0, final)
}

func TestBuildSummary(t *testing.T) {
	s := testSession(choices(2))
	require.NoError(t, s.Begin("cat 고양이\ndog 개\nbird 새"))

	for i := 0; i < 3; i++ {
		q, err := s.NextQuestion()
		require.NoError(t, err)
		answer := q.Answer
		if i == 1 {
			answer = "wrong"
		}
		_, err = s.SubmitAnswer(answer)
		require.NoError(t, err)
	}

	sum := BuildSummary(s)
	assert.True(t, sum.Complete)
	assert.Equal(t, "test-session-id", sum.SessionID)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 2, sum.Correct)
	assert.InDelta(t, 2.0/3.0, sum.Accuracy, 1e-9)
	require.Len(t, sum.Missed, 1)
	assert.Equal(t, "wrong", sum.Missed[0].Selected)
	assert.Len(t, sum.Answers, 3)
	assert.Positive(t, sum.Duration)
}

func TestBuildSummary_Unfinished(t *testing.T) {
	s := testSession(choices(2))
	require.NoError(t, s.Begin(fivePairs))

	q, err := s.NextQuestion()
	require.NoError(t, err)
	_, err = s.SubmitAnswer(q.Answer)
	require.NoError(t, err)

	sum := BuildSummary(s)
	assert.False(t, sum.Complete)
	assert.Equal(t, 1, sum.Answered)
	assert.Equal(t, 1.0, sum.Accuracy)
}

func TestParseOrder(t *testing.T) {
	got, err := ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, OrderRandom, got)

	got, err = ParseOrder("Sequential")
	require.NoError(t, err)
	assert.Equal(t, OrderSequential, got)

	_, err = ParseOrder("backwards")
	assert.Error(t, err)
}

func TestFormatAccuracy(t *testing.T) {
	assert.Equal(t, "66.7%", FormatAccuracy(2.0/3.0))
	assert.Equal(t, "100.0%", FormatAccuracy(1))
	assert.Equal(t, "0.0%", FormatAccuracy(0))
}
