// Package cli provides the command-line interface for the strategist.
package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved strategy evaluations",
		Long:  "Show evaluations persisted with 'analyze --save', newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			limit, _ := cmd.Flags().GetInt("limit")

			s, err := app.openStore()
			if err != nil {
				output.Error("Cannot open store: %v", err)
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			evals, err := s.GetEvaluations(ctx, limit)
			if err != nil {
				output.Error("Query failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(evals)
			}

			if len(evals) == 0 {
				output.Warning("No saved evaluations")
				return nil
			}

			output.Printf("%-20s %-8s %-18s %-10s %-10s %-10s %s\n",
				"When", "Ticker", "Strategy", "Spot", "MaxProfit", "MaxLoss", "Breakevens")
			output.Println(strings.Repeat("-", 96))
			for _, e := range evals {
				ticker := e.Ticker
				if ticker == "" {
					ticker = "-"
				}
				output.Printf("%-20s %-8s %-18s %-10s %-10s %-10s [%s]\n",
					e.Timestamp.Local().Format("2006-01-02 15:04"),
					ticker,
					e.Strategy,
					FormatPrice(e.Spot),
					FormatPnL(e.MaxProfit),
					FormatPnL(e.MaxLoss),
					FormatBreakevens(e.Breakevens),
				)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum evaluations to show")

	return cmd
}
