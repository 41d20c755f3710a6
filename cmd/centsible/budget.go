package main

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/centsible/internal/cli"
	"github.com/Veraticus/centsible/internal/model"
	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage the monthly budget",
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(showBudgetCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	var currencyFlag string

	cmd := &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly budget",
		Long:  `Set the monthly budget amount and currency. The previous setting is replaced.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			settings := model.BudgetSettings{
				MonthlyBudget: amount,
				Currency:      currencyFlag,
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveBudgetSettings(ctx, settings); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"✓ Monthly budget set to %.2f %s", settings.MonthlyBudget, settings.Currency)))
			return nil
		},
	}

	cmd.Flags().StringVar(&currencyFlag, "currency", model.BaseCurrency, "budget currency")

	return cmd
}

func showBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings := loadBudget(ctx, store)
			if settings.MonthlyBudget <= 0 {
				fmt.Println(cli.InfoStyle.Render(
					"No budget set. Use 'centsible budget set <amount>' to create one."))
				return nil
			}

			fmt.Printf("Monthly budget: %s\n",
				cli.BoldStyle.Render(fmt.Sprintf("%.2f %s", settings.MonthlyBudget, settings.Currency)))
			return nil
		},
	}
}
