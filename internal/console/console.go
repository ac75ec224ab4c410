// Package console runs a quiz on plain line-oriented input and output, for
// pipes, scripts and terminals where the full-screen UI is unwanted.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/abhisek/vocabquiz/internal/quizgen"
	"github.com/abhisek/vocabquiz/internal/session"
)

// Options configures a Runner.
type Options struct {
	In  io.Reader
	Out io.Writer

	// FeedbackDelay is the pause after each answer. Zero disables it.
	FeedbackDelay time.Duration

	// NoColor disables ANSI colours regardless of the terminal.
	NoColor bool

	Logger *slog.Logger
}

// Runner drives one session through a reader and a writer.
type Runner struct {
	sess    *session.Session
	in      *bufio.Scanner
	lines   <-chan string
	done    chan struct{}
	out     io.Writer
	delay   time.Duration
	logger  *slog.Logger
	good    *color.Color
	bad     *color.Color
	heading *color.Color
	dim     *color.Color
}

// New creates a Runner for sess.
func New(sess *session.Session, opts Options) *Runner {
	r := &Runner{
		sess:    sess,
		in:      bufio.NewScanner(opts.In),
		out:     opts.Out,
		delay:   opts.FeedbackDelay,
		logger:  opts.Logger,
		good:    color.New(color.FgGreen, color.Bold),
		bad:     color.New(color.FgRed, color.Bold),
		heading: color.New(color.FgCyan, color.Bold),
		dim:     color.New(color.FgHiBlack),
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if opts.NoColor {
		for _, c := range []*color.Color{r.good, r.bad, r.heading, r.dim} {
			c.DisableColor()
		}
	}
	return r
}

// Run starts the session on raw and asks questions until the pass is
// complete, the user quits, or input ends. It returns the summary of
// whatever was answered. Parse and vocabulary errors from Begin are
// returned unchanged. Cancelling ctx stops the quiz even while a prompt
// is waiting for input; the partial summary is returned with ctx.Err().
func (r *Runner) Run(ctx context.Context, raw string) (*session.Summary, error) {
	if err := r.sess.Begin(raw); err != nil {
		return nil, err
	}

	r.done = make(chan struct{})
	defer close(r.done)
	r.lines = r.readLines()

	cfg := r.sess.Config()
	_, total := r.sess.Progress()
	r.heading.Fprintf(r.out, "%d words, %d questions, %s\n", len(r.sess.Vocabulary()), total, cfg.Direction.Label())
	r.dim.Fprintln(r.out, "Answer with a number or the exact text. Type q to stop.")
	r.logger.Info("quiz started", "session", r.sess.ID(), "pairs", len(r.sess.Vocabulary()), "questions", total)

	for {
		q, err := r.sess.NextQuestion()
		if errors.Is(err, session.ErrSessionComplete) {
			break
		}
		if err != nil {
			return r.sess.Summary(), err
		}

		r.printQuestion(q, total)

		selected, ok, err := r.readChoice(ctx, q)
		if err != nil {
			fmt.Fprintln(r.out)
			r.dim.Fprintln(r.out, "Interrupted.")
			return r.finish(), err
		}
		if !ok {
			r.dim.Fprintln(r.out, "Stopped.")
			return r.finish(), nil
		}

		res, err := r.sess.SubmitAnswer(selected)
		if err != nil {
			return r.sess.Summary(), err
		}
		r.printResult(res)

		if r.sess.Status() != session.StatusComplete {
			if err := r.wait(ctx); err != nil {
				return r.finish(), err
			}
		}
	}

	return r.finish(), nil
}

func (r *Runner) printQuestion(q *quizgen.Question, total int) {
	fmt.Fprintln(r.out)
	r.heading.Fprintf(r.out, "Question %d/%d: ", q.Number, total)
	fmt.Fprintln(r.out, q.Prompt)
	for i, c := range q.Choices {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, c)
	}
}

// readLines scans input on its own goroutine so a blocked read never holds
// up cancellation. The channel closes at end of input.
func (r *Runner) readLines() <-chan string {
	lines := make(chan string)
	done := r.done
	go func() {
		defer close(lines)
		for r.in.Scan() {
			select {
			case lines <- r.in.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

// readChoice reads lines until one names a choice. ok is false when the
// user quits or input ends. err is set when ctx is cancelled first.
func (r *Runner) readChoice(ctx context.Context, q *quizgen.Question) (selected string, ok bool, err error) {
	for {
		fmt.Fprint(r.out, "> ")

		var raw string
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		case l, open := <-r.lines:
			if !open {
				fmt.Fprintln(r.out)
				return "", false, nil
			}
			raw = l
		}

		line := strings.TrimSpace(raw)
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			return "", false, nil
		}

		if n, err := strconv.Atoi(line); err == nil {
			if n >= 1 && n <= len(q.Choices) {
				return q.Choices[n-1], true, nil
			}
		} else {
			for _, c := range q.Choices {
				if c == line {
					return c, true, nil
				}
			}
		}
		r.dim.Fprintf(r.out, "Enter a number from 1 to %d.\n", len(q.Choices))
	}
}

func (r *Runner) printResult(res session.AnswerResult) {
	if res.Correct {
		r.good.Fprintln(r.out, "Correct!")
	} else {
		r.bad.Fprint(r.out, "Wrong! ")
		fmt.Fprintf(r.out, "The answer is: %s\n", res.CorrectAnswer)
	}
	r.dim.Fprintf(r.out, "Score: %d/%d (%s)\n", res.CorrectCount, res.Answered, session.FormatAccuracy(res.RunningAccuracy))
}

func (r *Runner) wait(ctx context.Context) error {
	if r.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(r.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *Runner) finish() *session.Summary {
	sum := r.sess.Summary()
	fmt.Fprintln(r.out)
	if sum.Complete {
		r.heading.Fprintf(r.out, "Quiz complete! Accuracy: %s (%d/%d)\n", session.FormatAccuracy(sum.Accuracy), sum.Correct, sum.Total)
	} else {
		r.heading.Fprintf(r.out, "Quiz stopped after %d of %d. Accuracy so far: %s\n", sum.Answered, sum.Total, session.FormatAccuracy(sum.Accuracy))
	}
	for _, m := range sum.Missed {
		r.dim.Fprintf(r.out, "  missed: %s → %s\n", m.Question.Prompt, m.Question.Answer)
	}
	r.logger.Info("quiz finished",
		"session", sum.SessionID,
		"complete", sum.Complete,
		"answered", sum.Answered,
		"correct", sum.Correct,
		"accuracy", sum.Accuracy)
	return sum
}
