package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how many lots landed in each category table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			store, err := openStorage(reg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			counts, err := store.CountByCategory(ctx)
			if err != nil {
				return fmt.Errorf("failed to count classifications: %w", err)
			}

			ids := make([]model.CategoryID, 0, len(counts))
			total := 0
			for id, n := range counts {
				ids = append(ids, id)
				total += n
			}
			sort.Slice(ids, func(i, j int) bool {
				return counts[ids[i]] > counts[ids[j]] ||
					(counts[ids[i]] == counts[ids[j]] && ids[i] < ids[j])
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tLOTS")
			for _, id := range ids {
				fmt.Fprintf(w, "%s\t%d\n", id, counts[id])
			}
			fmt.Fprintf(w, "total\t%d\n", total)
			return w.Flush()
		},
	}
}
