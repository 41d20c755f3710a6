package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/centsible/internal/analytics"
	"github.com/Veraticus/centsible/internal/report"
	"github.com/spf13/cobra"
)

func insightsCmd() *cobra.Command {
	var frameFlag string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Detect spending patterns and get recommendations",
		Long: `Analyze spending in a time frame for patterns (peak times, category
pairs, impulse clusters) and generate recommendations with estimated savings.`,
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
			display := displayCurrency()
			now := time.Now()

			summary := analytics.NewSummary(expenses, conv, display, frame, now)
			insights := analytics.Analyze(summary, expenses, conv, now)

			formatter := report.NewFormatter()
			fmt.Println(formatter.FormatInsights(insights, display))
			return nil
		},
	}

	cmd.Flags().StringVarP(&frameFlag, "frame", "f", "month", "time frame (all, today, week, month, quarter, halfyear, year)")

	return cmd
}
