package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/smartkids/internal/app"
	"github.com/abhisek/smartkids/internal/bank"
	"github.com/abhisek/smartkids/internal/quiz"
)

// runApp opens the backend, builds the quiz machine, and launches the TUI.
// A non-empty categoryID skips straight into that quiz.
func runApp(cmd *cobra.Command, categoryID string) error {
	if categoryID != "" {
		if _, ok := bank.Default().Category(categoryID); !ok {
			return fmt.Errorf("unknown category %q (see 'smartkids categories')", categoryID)
		}
	}

	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	ctx := cmd.Context()
	machine := quiz.New(ctx, quiz.Options{
		Bank:          bank.Default(),
		HighScores:    e.scores,
		Logger:        e.logger,
		FeedbackDelay: e.cfg.FeedbackDelay,
	})
	if categoryID != "" {
		machine.GoToCategories()
		machine.SelectCategory(categoryID)
	}

	e.logger.Info("starting", zap.String("version", version), zap.String("store", e.cfg.Store))
	return app.Run(ctx, app.Options{Machine: machine, Logger: e.logger})
}
