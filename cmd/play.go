package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/smartkids/internal/bank"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play [category]",
		Short: "Start the quiz, optionally in a category",
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
			}
			return runApp(cmd, category)
		},
	}
}

func categoryIDs() []string {
	cats := bank.Default().Categories()
	ids := make([]string, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	return ids
}
