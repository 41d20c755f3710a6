package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/centsible/internal/cli"
	"github.com/Veraticus/centsible/internal/common"
	"github.com/Veraticus/centsible/internal/currency"
	"github.com/Veraticus/centsible/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func ratesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Manage the exchange-rate table",
	}

	cmd.AddCommand(refreshRatesCmd())
	cmd.AddCommand(showRatesCmd())

	return cmd
}

func refreshRatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch fresh exchange rates",
		Long: `Fetch the latest exchange rates and replace the cached table. On any
failure the previous table is kept.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rateURL := viper.GetString("currency.rate_url")
			fetcher := currency.NewFetcher(rateURL, nil)
			table, err := fetcher.FetchLatest(ctx)
			if err != nil {
				// Keep whatever table we have; this is "no update", not a crash.
				common.LogError(err, "Rate refresh failed", common.Fields{"url": rateURL})
				return common.NewUserError("could not fetch exchange rates; the cached table is unchanged", err)
			}

			if err := store.SaveRateTable(ctx, table); err != nil {
				return err
			}

			common.LogInfo("Refreshed exchange rates", common.Fields{
				"rates": len(table.Rates),
				"base":  table.Base,
			})
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"✓ Refreshed %d rates (base %s)", len(table.Rates), table.Base)))
			return nil
		},
	}
}

func showRatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cached exchange rates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			table, err := store.GetRateTable(ctx)
			if err != nil {
				return err
			}
			if table.IsEmpty() {
				fmt.Println(cli.InfoStyle.Render(
					"No rates cached yet. Run 'centsible rates refresh'."))
				return nil
			}

			fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf(
				"Base %s, fetched %s", table.Base, table.FetchedAt.Format("2006-01-02 15:04"))))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\n", cli.BoldStyle.Render("Code"), cli.BoldStyle.Render("Rate"))
			fmt.Fprintf(w, "%s\t%s\n", strings.Repeat("-", 4), strings.Repeat("-", 10))
			for _, code := range model.SupportedCurrencies() {
				if !table.Has(code) {
					continue
				}
				fmt.Fprintf(w, "%s\t%.4f\n", code, table.Rate(code))
			}
			return nil
		},
	}
}
