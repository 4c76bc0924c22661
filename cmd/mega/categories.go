package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the taxonomy categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tROUTING\tDESCRIPTION")
			for _, cat := range reg.Categories() {
				routing := "keywords + AI"
				switch cat.ID {
				case reg.CatchAll():
					routing = "fallback only"
				case reg.Opportunity():
					routing = "pre-filter only"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", cat.ID, routing, firstSentence(cat.Description))
			}
			return w.Flush()
		},
	}
}

func firstSentence(s string) string {
	if i := strings.Index(s, ". "); i > 0 {
		return s[:i+1]
	}
	return s
}
