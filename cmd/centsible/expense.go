package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/centsible/internal/cli"
	"github.com/Veraticus/centsible/internal/model"
	"github.com/Veraticus/centsible/internal/timewindow"
	"github.com/spf13/cobra"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and manage expenses",
		Long:  `Add, list, and delete expense records.`,
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		categoryFlag string
		currencyFlag string
		dateFlag     string
		noteFlag     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a new expense",
		Long:  `Record an expense with amount, category, currency, and optional note.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			cur := currencyFlag
			if cur == "" {
				cur = displayCurrency()
			}

			expense, err := model.NewExpense(amount, model.Category(categoryFlag), cur, date, noteFlag)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveExpense(ctx, expense); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"✓ Recorded %.2f %s for %s (%s)",
				expense.Amount, expense.Currency, expense.Category.Meta().Label, expense.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", string(model.CategoryOther), "expense category")
	cmd.Flags().StringVar(&currencyFlag, "currency", "", "expense currency (default: display currency)")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "expense date (YYYY-MM-DD or YYYY-MM-DD HH:MM, default: now)")
	cmd.Flags().StringVarP(&noteFlag, "note", "n", "", "free-text note")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var frameFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses in a time frame",
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
			window := timewindow.Resolve(frame, time.Now())

			if !conv.Ready() {
				fmt.Println(cli.WarningStyle.Render(
					"Exchange rates not loaded; amounts shown unconverted. Run 'centsible rates refresh'."))
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := cli.BoldStyle
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Date"),
				headerStyle.Render("Category"),
				headerStyle.Render("Amount"),
				headerStyle.Render(display),
				headerStyle.Render("Note"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 16), strings.Repeat("-", 10), strings.Repeat("-", 14),
				strings.Repeat("-", 12), strings.Repeat("-", 10), strings.Repeat("-", 20))

			count := 0
			for _, e := range expenses {
				if !window.Contains(e.Date) {
					continue
				}
				count++
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f %s\t%.2f\t%s\n",
					e.ID,
					e.Date.Format("2006-01-02"),
					e.Category.Meta().Label,
					e.Amount, e.Currency,
					conv.ConvertedAmount(e, display),
					e.Note)
			}

			if count == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses in this time frame."))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&frameFlag, "frame", "f", string(model.FrameMonth), "time frame (all, today, week, month, quarter, halfyear, year)")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Long:  `Delete an expense by ID. Expenses are immutable; to edit one, delete and re-add it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteExpense(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Deleted expense " + args[0]))
			return nil
		},
	}
}
