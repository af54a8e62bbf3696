package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/smartkids/internal/bank"
	"github.com/abhisek/smartkids/internal/highscore"
	"github.com/abhisek/smartkids/internal/ui/theme"
)

func newScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Show high scores per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			scores := e.scores.Load(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), renderScores(bank.Default(), scores))
			return nil
		},
	}
}

// renderScores builds the high score table in bank order.
func renderScores(b *bank.Bank, scores highscore.Scores) string {
	headerStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Category", "ID", "Best", "Date").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, c := range b.Categories() {
		best, date := "-", "-"
		if entry, ok := scores[c.ID]; ok {
			best = fmt.Sprintf("%d / %d", entry.Score, len(c.Questions))
			date = entry.AchievedOn
		}
		t.Row(c.Icon+" "+c.Name, c.ID, best, date)
	}
	return t.String()
}
