package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meguinhazeromiseria/scraper-mega/internal/common"
	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <lots.json>",
		Short: "Import scraped lots into the staging table",
		Long: `Import reads a JSON array of scraped lots and upserts them into the
staging table. Re-importing a lot that was already classified does not
reset its classified flag, so repeated scraper exports are safe.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("source", "", "override the source field on every imported lot")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read lots file: %w", err)
	}

	var lots []model.Lot
	if err := json.Unmarshal(data, &lots); err != nil {
		return fmt.Errorf("failed to parse lots file: %w", err)
	}
	if len(lots) == 0 {
		return fmt.Errorf("no lots found in %s", args[0])
	}

	if source, _ := cmd.Flags().GetString("source"); source != "" {
		for i := range lots {
			lots[i].Source = source
		}
	}

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

	if err := store.SaveLots(ctx, lots); err != nil {
		return fmt.Errorf("failed to save lots: %w", err)
	}

	common.LogInfo("lots imported", common.Fields{"count": len(lots), "file": args[0]})
	return nil
}
