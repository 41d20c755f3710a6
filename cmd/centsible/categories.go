package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/centsible/internal/cli"
	"github.com/Veraticus/centsible/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List expense categories",
		Long:  `Display the fixed set of expense categories and their groups.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			var buf bytes.Buffer
			w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Group"),
				cli.BoldStyle.Render("Essential"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 18), strings.Repeat("-", 14), strings.Repeat("-", 9))

			for _, cat := range model.Categories() {
				essential := ""
				if cat.IsEssential() {
					essential = "yes"
				}
				fmt.Fprintf(w, "%s %s (%s)\t%s\t%s\n",
					cat.Meta().Icon, cat.Meta().Label, cat, cat.Group(), essential)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println(cli.BoxStyle.Render(strings.TrimRight(buf.String(), "\n")))
			return nil
		},
	}
}
