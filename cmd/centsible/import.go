package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Veraticus/centsible/internal/cli"
	"github.com/Veraticus/centsible/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import expenses from a CSV file",
		Long: `Import expenses from a CSV file with columns:
date,amount,currency,category,note

The date column accepts YYYY-MM-DD or YYYY-MM-DD HH:MM. Rows that fail
validation are reported and skipped; duplicates are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer func() { _ = f.Close() }()

			reader := csv.NewReader(f)
			records, err := reader.ReadAll()
			if err != nil {
				return fmt.Errorf("failed to parse CSV: %w", err)
			}
			if len(records) == 0 {
				return fmt.Errorf("empty CSV file")
			}

			// Skip a header row if present
			if strings.EqualFold(strings.TrimSpace(records[0][0]), "date") {
				records = records[1:]
			}
			if len(records) == 0 {
				fmt.Println(cli.InfoStyle.Render("No rows to import."))
				return nil
			}

			bar := progressbar.NewOptions(len(records),
				progressbar.OptionSetDescription("Importing expenses"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			var expenses []model.Expense
			var skipped int
			for i, row := range records {
				_ = bar.Add(1)
				expense, err := parseCSVRow(row)
				if err != nil {
					skipped++
					fmt.Println(cli.WarningStyle.Render(
						fmt.Sprintf("Skipping row %d: %v", i+1, err)))
					continue
				}
				expenses = append(expenses, expense)
			}
			_ = bar.Finish()

			if len(expenses) == 0 {
				return fmt.Errorf("no valid rows in %s", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveExpenses(ctx, expenses); err != nil {
				return err
			}

			msg := fmt.Sprintf("✓ Imported %d expenses", len(expenses))
			if skipped > 0 {
				msg += fmt.Sprintf(" (%d rows skipped)", skipped)
			}
			fmt.Println(cli.SuccessStyle.Render(msg))
			return nil
		},
	}
}

// parseCSVRow converts a date,amount,currency,category,note row into an
// expense.
func parseCSVRow(row []string) (model.Expense, error) {
	if len(row) < 4 {
		return model.Expense{}, fmt.Errorf("expected at least 4 columns, got %d", len(row))
	}

	date, err := parseDateFlag(strings.TrimSpace(row[0]))
	if err != nil {
		return model.Expense{}, err
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return model.Expense{}, fmt.Errorf("invalid amount %q", row[1])
	}

	note := ""
	if len(row) > 4 {
		note = strings.TrimSpace(row[4])
	}

	return model.NewExpense(
		amount,
		model.Category(strings.TrimSpace(strings.ToLower(row[3]))),
		strings.ToUpper(strings.TrimSpace(row[2])),
		date,
		note)
}
