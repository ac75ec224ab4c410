package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocabquiz/internal/app"
	"github.com/abhisek/vocabquiz/internal/config"
	"github.com/abhisek/vocabquiz/internal/screens/quiz"
	"github.com/abhisek/vocabquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vocabquiz",
	Short: "Multiple-choice vocabulary quizzes in the terminal",
	Long: `Vocabquiz turns a list of word pairs into a multiple-choice quiz.

Paste pairs into the home screen, pick a bundled example list, or start
directly with "vocabquiz quiz --file words.txt".`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command. Ctrl+C outside the TUI cancels the
// command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides VOCABQUIZ_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VOCABQUIZ_DB env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// environment is what a command needs: configuration, a logger and the
// result log when it is enabled.
type environment struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *store.Store
	closers []func() error
}

// setup loads config, builds the logger and opens the result log.
// interactive routes logs away from the terminal unless log.file is set.
func setup(cmd *cobra.Command, interactive bool) (*environment, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	w, closeLog, err := app.OpenLogOutput(cfg.Log, interactive)
	if err != nil {
		return nil, err
	}
	env := &environment{
		cfg:     cfg,
		logger:  app.NewLogger(app.TerminalLogConfig(cfg.Log, interactive), w),
		closers: []func() error{closeLog},
	}

	if cfg.Store.Disabled {
		env.logger.Debug("result log disabled")
		return env, nil
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	env.logger.Debug("result log opened", "path", dbPath)
	env.store = st
	env.closers = append([]func() error{st.Close}, env.closers...)
	return env, nil
}

// results returns the result repository, or nil when the log is disabled.
func (e *environment) results() store.ResultRepo {
	if e.store == nil {
		return nil
	}
	return e.store.ResultRepo()
}

func (e *environment) quizOptions() quiz.Options {
	return quiz.Options{
		FeedbackDelay: e.cfg.Quiz.FeedbackDelay,
		Results:       e.results(),
		Logger:        e.logger,
	}
}

// Close releases the store and the log file, in that order.
func (e *environment) Close() {
	for _, c := range e.closers {
		if err := c(); err != nil && e.logger != nil {
			e.logger.Warn("close", "error", err)
		}
	}
	e.closers = nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then store.path from config or VOCABQUIZ_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Store.Path != "" {
		return cfg.Store.Path, store.EnsureDir(cfg.Store.Path)
	}
	return store.DefaultDBPath()
}

// warn prints a one-line warning to the command's error stream.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "warning: "+format+"\n", args...)
}
