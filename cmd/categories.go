package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/smartkids/internal/bank"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List quiz categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cats := bank.Default().Categories()

			// Header.
			fmt.Fprintf(out, "%-18s  %-22s  %s\n", "ID", "Name", "Questions")
			fmt.Fprintln(out, strings.Repeat("─", 54))

			for _, c := range cats {
				fmt.Fprintf(out, "%-18s  %-22s  %9d\n", c.ID, c.Name, len(c.Questions))
			}

			fmt.Fprintf(out, "\n%d categories\n", len(cats))
			return nil
		},
	}
}
