package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/smartkids/internal/bank"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [category]",
		Short: "Clear high scores for one category or all of them",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return categoryIDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) == 1 {
				category = args[0]
				if _, ok := bank.Default().Category(category); !ok {
					return fmt.Errorf("unknown category %q (see 'smartkids categories')", category)
				}
			}

			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.scores.Reset(cmd.Context(), category); err != nil {
				return fmt.Errorf("reset high scores: %w", err)
			}
			e.logger.Info("high scores reset", zap.String("category", category))

			if category == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "All high scores cleared.")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "High score for %s cleared.\n", category)
			}
			return nil
		},
	}
}
