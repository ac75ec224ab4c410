package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/vocabquiz/internal/app"
)

// runApp loads the environment and launches the TUI on the home screen.
func runApp(cmd *cobra.Command) error {
	env, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer env.Close()

	scfg, err := env.cfg.Quiz.Session()
	if err != nil {
		return err
	}

	env.logger.Info("starting tui", "store", env.store != nil)
	return app.Run(app.Options{
		Config: scfg,
		Quiz:   env.quizOptions(),
	})
}
