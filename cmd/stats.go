package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/vocabquiz/internal/session"
	"github.com/abhisek/vocabquiz/internal/store"
)

// errStoreDisabled is returned by commands that need the result log.
var errStoreDisabled = errors.New("result log is disabled (store.disabled in config)")

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz results from the result log",
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, _ := cmd.Flags().GetInt("recent")
		missed, _ := cmd.Flags().GetInt("missed")

		env, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer env.Close()

		results := env.results()
		if results == nil {
			return errStoreDisabled
		}
		return printStats(cmd, results, recent, missed)
	},
}

func init() {
	statsCmd.Flags().Int("recent", 10, "Number of recent quizzes to list (0 lists all)")
	statsCmd.Flags().Int("missed", 5, "Number of most-missed words to list (0 hides them)")
}

func printStats(cmd *cobra.Command, results store.ResultRepo, recent, missed int) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	heading := color.New(color.FgHiCyan, color.Bold)
	good := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	dim := color.New(color.FgHiBlack)

	totals, err := results.Totals(ctx)
	if err != nil {
		return fmt.Errorf("read totals: %w", err)
	}
	if totals.Sessions == 0 {
		dim.Fprintln(out, "No quizzes yet.")
		return nil
	}

	heading.Fprintln(out, "Overall")
	fmt.Fprintf(out, "  %d quizzes, %d of %d questions answered, %s correct\n\n",
		totals.Sessions, totals.Answered, totals.Questions,
		session.FormatAccuracy(totals.Accuracy()))

	sessions, err := results.Recent(ctx, recent)
	if err != nil {
		return fmt.Errorf("read recent: %w", err)
	}
	heading.Fprintln(out, "Recent quizzes")
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, rec := range sessions {
		status := "complete"
		if !rec.Complete {
			status = "ended early"
		}
		fmt.Fprintf(tw, "  %s\t%d/%d\t%s\t%s\t%s\n",
			rec.StartedAt.Local().Format("2006-01-02 15:04"),
			rec.Correct, rec.Questions,
			session.FormatAccuracy(rec.Accuracy()),
			rec.Direction, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if missed <= 0 {
		return nil
	}
	words, err := results.MostMissed(ctx, missed)
	if err != nil {
		return fmt.Errorf("read missed words: %w", err)
	}
	fmt.Fprintln(out)
	heading.Fprintln(out, "Most missed")
	if len(words) == 0 {
		good.Fprintln(out, "  Nothing missed yet.")
		return nil
	}
	printMissed(out, bad, words)
	return nil
}

func printMissed(out io.Writer, bad *color.Color, words []store.MissedWord) {
	for _, w := range words {
		bad.Fprintf(out, "  %s", w.Prompt)
		fmt.Fprintf(out, " → %s  (%d×)\n", w.Expected, w.Misses)
	}
}
