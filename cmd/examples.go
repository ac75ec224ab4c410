package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/vocabquiz/internal/wordlist"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [NAME]",
	Short: "List bundled word lists, or print one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			raw, err := wordlist.ExampleText(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(out, raw)
			return nil
		}

		name := color.New(color.FgHiCyan, color.Bold)
		dim := color.New(color.FgHiBlack)
		for _, ex := range wordlist.Examples() {
			name.Fprintf(out, "%-16s", ex.Name)
			fmt.Fprintf(out, " %s ", ex.Title)
			dim.Fprintf(out, "(%d pairs)\n", ex.Pairs)
		}
		return nil
	},
}
