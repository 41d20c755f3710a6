package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/centsible/internal/analytics"
	"github.com/Veraticus/centsible/internal/cli"
	"github.com/Veraticus/centsible/internal/report"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var frameFlag string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the spending report and wellness score",
		Long: `Aggregate spending over a time frame, compare it against the budget,
and compute the financial wellness score.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			frame, err := parseFrameFlag(frameFlag)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := loadExpenses(ctx, store)
			if err != nil {
				return err
			}

			conv := loadConverter(ctx, store)
			settings := loadBudget(ctx, store)
			display := displayCurrency()
			now := time.Now()

			if !conv.Ready() {
				fmt.Println(cli.WarningStyle.Render(
					"Exchange rates not loaded; amounts shown unconverted. Run 'centsible rates refresh'."))
			}

			summary := analytics.NewSummary(expenses, conv, display, frame, now)
			result := analytics.Score(expenses, conv, display, settings, frame, now)
			comparison := summary.ComparePrevious(expenses, conv)

			formatter := report.NewFormatter()
			fmt.Println(formatter.FormatWellness(summary, result, settings, conv, comparison))
			return nil
		},
	}

	cmd.Flags().StringVarP(&frameFlag, "frame", "f", "month", "time frame (all, today, week, month, quarter, halfyear, year)")

	return cmd
}
