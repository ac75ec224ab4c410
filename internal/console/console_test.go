package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabquiz/internal/session"
	"github.com/abhisek/vocabquiz/internal/vocab"
)

const twoPairs = "cat 고양이\ndog 개"

func testRunner(t *testing.T, script string, cfg session.Config) (*Runner, *bytes.Buffer) {
	t.Helper()
	sess := session.New(cfg,
		session.WithRand(rand.New(rand.NewPCG(3, 5))),
		session.WithIDFunc(func() string { return "console-test" }),
	)
	var out bytes.Buffer
	r := New(sess, Options{
		In:      strings.NewReader(script),
		Out:     &out,
		NoColor: true,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return r, &out
}

func sequential(choices int) session.Config {
	cfg := session.DefaultConfig()
	cfg.ChoicesPerQuestion = choices
	cfg.Order = session.OrderSequential
	return cfg
}

func TestRun_ScriptedAccuracy(t *testing.T) {
	// Sequential order asks cat then dog; both definitions are always shown.
	r, out := testRunner(t, "고양이\n고양이\n", sequential(2))

	sum, err := r.Run(context.Background(), twoPairs)
	require.NoError(t, err)

	assert.True(t, sum.Complete)
	assert.Equal(t, 1, sum.Correct)
	assert.InDelta(t, 0.5, sum.Accuracy, 1e-9)

	text := out.String()
	assert.Contains(t, text, "Question 1/2: cat")
	assert.Contains(t, text, "Correct!")
	assert.Contains(t, text, "Score: 1/1 (100.0%)")
	assert.Contains(t, text, "Wrong! The answer is: 개")
	assert.Contains(t, text, "Score: 1/2 (50.0%)")
	assert.Contains(t, text, "Quiz complete! Accuracy: 50.0% (1/2)")
	assert.Contains(t, text, "missed: dog → 개")
}

func TestRun_NumbersAndReprompt(t *testing.T) {
	r, out := testRunner(t, "\n9\nzebra\n1\n2\n", sequential(2))

	sum, err := r.Run(context.Background(), twoPairs)
	require.NoError(t, err)

	assert.True(t, sum.Complete)
	assert.Equal(t, 2, sum.Answered)
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a number from 1 to 2."))
	for _, a := range sum.Answers {
		assert.Contains(t, a.Question.Choices, a.Selected)
	}
}

func TestRun_QuitEarly(t *testing.T) {
	r, out := testRunner(t, "고양이\nq\n", sequential(2))

	sum, err := r.Run(context.Background(), twoPairs)
	require.NoError(t, err)

	assert.False(t, sum.Complete)
	assert.Equal(t, 1, sum.Answered)
	assert.Contains(t, out.String(), "Quiz stopped after 1 of 2. Accuracy so far: 100.0%")
}

func TestRun_EndOfInput(t *testing.T) {
	r, _ := testRunner(t, "", sequential(2))

	sum, err := r.Run(context.Background(), twoPairs)
	require.NoError(t, err)
	assert.False(t, sum.Complete)
	assert.Zero(t, sum.Answered)
}

func TestRun_BeginErrors(t *testing.T) {
	r, _ := testRunner(t, "", sequential(2))

	_, err := r.Run(context.Background(), "cat")
	assert.ErrorIs(t, err, vocab.ErrInsufficientPairs)
}

func TestRun_CancelDuringFeedback(t *testing.T) {
	sess := session.New(sequential(2), session.WithRand(rand.New(rand.NewPCG(1, 1))))
	r := New(sess, Options{
		In:            strings.NewReader("고양이\n개\n"),
		Out:           io.Discard,
		FeedbackDelay: time.Hour,
		NoColor:       true,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(50*time.Millisecond, cancel)

	sum, err := r.Run(ctx, twoPairs)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, sum)
	assert.Equal(t, 1, sum.Answered)
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	sess := session.New(sequential(2), session.WithRand(rand.New(rand.NewPCG(1, 1))))
	var out bytes.Buffer
	r := New(sess, Options{
		In:      pr,
		Out:     &out,
		NoColor: true,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type result struct {
		sum *session.Summary
		err error
	}
	done := make(chan result, 1)
	go func() {
		sum, err := r.Run(ctx, twoPairs)
		done <- result{sum, err}
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case res := <-done:
		assert.ErrorIs(t, res.err, context.Canceled)
		require.NotNil(t, res.sum)
		assert.False(t, res.sum.Complete)
		assert.Zero(t, res.sum.Answered)
		assert.Contains(t, out.String(), "Interrupted.")
	case <-time.After(time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
}
