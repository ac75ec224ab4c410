package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabquiz/internal/app"
	"github.com/abhisek/vocabquiz/internal/config"
	"github.com/abhisek/vocabquiz/internal/console"
	"github.com/abhisek/vocabquiz/internal/screens/input"
	"github.com/abhisek/vocabquiz/internal/session"
	"github.com/abhisek/vocabquiz/internal/store"
	"github.com/abhisek/vocabquiz/internal/wordlist"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start a quiz on a word list",
	Long: `Start a quiz straight from a word list file or a bundled example.

Word list files may be plain text (one pair per line, or a flat list of
alternating terms and definitions), JSON or YAML. With --plain the quiz
runs on stdin/stdout instead of the full-screen UI: type the number of a
choice, or q to stop.`,
	Example: `  vocabquiz quiz --example korean-animals
  vocabquiz quiz --file words.yaml --choices 3 --direction random
  vocabquiz quiz --file words.txt --plain`,
	RunE: runQuiz,
}

func init() {
	addQuizFlags(quizCmd)
}

func addQuizFlags(c *cobra.Command) {
	c.Flags().String("file", "", "Word list file (.txt, .json, .yaml)")
	c.Flags().String("example", "", "Bundled example list name (see 'vocabquiz examples')")
	c.Flags().Int("choices", 0, "Choices per question (default from config)")
	c.Flags().String("direction", "", "Prompt side: term, definition or random")
	c.Flags().String("order", "", "Question order: random or sequential")
	c.Flags().Int("limit", 0, "Ask at most N questions (0 asks every pair)")
	c.Flags().Bool("plain", false, "Run on stdin/stdout without the full-screen UI")
	c.Flags().Bool("no-color", false, "Disable colours in --plain mode")

	c.MarkFlagsMutuallyExclusive("file", "example")
	c.MarkFlagsOneRequired("file", "example")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	plain, _ := cmd.Flags().GetBool("plain")

	raw, err := loadWords(cmd)
	if err != nil {
		return err
	}

	env, err := setup(cmd, !plain)
	if err != nil {
		return err
	}
	defer env.Close()

	scfg, err := quizConfig(cmd, env.cfg.Quiz)
	if err != nil {
		return err
	}

	if plain {
		return runPlain(cmd, env, scfg, raw)
	}

	qopts := env.quizOptions()
	start, err := input.Launch(scfg, qopts, raw)
	if err != nil {
		return fmt.Errorf("start quiz: %w", err)
	}
	return app.Run(app.Options{Config: scfg, Quiz: qopts, Start: start})
}

// loadWords reads the raw word list named by --file or --example.
func loadWords(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		return wordlist.LoadFile(path)
	}
	name, _ := cmd.Flags().GetString("example")
	return wordlist.ExampleText(name)
}

// quizConfig applies the flags the user set on top of the configured
// quiz defaults.
func quizConfig(cmd *cobra.Command, q config.QuizConfig) (session.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("choices") {
		q.Choices, _ = flags.GetInt("choices")
	}
	if flags.Changed("direction") {
		q.Direction, _ = flags.GetString("direction")
	}
	if flags.Changed("order") {
		q.Order, _ = flags.GetString("order")
	}
	if flags.Changed("limit") {
		q.Limit, _ = flags.GetInt("limit")
	}
	return q.Session()
}

func runPlain(cmd *cobra.Command, env *environment, scfg session.Config, raw string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")

	runner := console.New(session.New(scfg), console.Options{
		In:            cmd.InOrStdin(),
		Out:           cmd.OutOrStdout(),
		FeedbackDelay: env.cfg.Quiz.FeedbackDelay,
		NoColor:       noColor,
		Logger:        env.logger,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	sum, err := runner.Run(ctx, raw)
	saveResult(ctx, cmd, env, sum)
	if err != nil {
		return fmt.Errorf("run quiz: %w", err)
	}
	return nil
}

// saveResult appends a finished console quiz to the result log. Failures
// are logged and reported but never fail the command.
func saveResult(ctx context.Context, cmd *cobra.Command, env *environment, sum *session.Summary) {
	results := env.results()
	if results == nil || sum == nil || sum.Answered == 0 {
		return
	}

	rec, answers := store.FromSummary(sum, time.Now())
	// The quiz context may already be cancelled by Ctrl+C.
	if err := results.SaveSession(context.WithoutCancel(ctx), rec, answers); err != nil {
		env.logger.Error("save result", "session", sum.SessionID, "error", err)
		warn(cmd.ErrOrStderr(), "result not saved: %v", err)
		return
	}
	env.logger.Info("result saved",
		"session", sum.SessionID,
		"direction", rec.Direction,
		"accuracy", sum.Accuracy)
}
