package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meguinhazeromiseria/scraper-mega/internal/common"
	"github.com/meguinhazeromiseria/scraper-mega/internal/config"
	"github.com/meguinhazeromiseria/scraper-mega/internal/engine"
	"github.com/meguinhazeromiseria/scraper-mega/internal/keyword"
	"github.com/meguinhazeromiseria/scraper-mega/internal/llm"
	"github.com/meguinhazeromiseria/scraper-mega/internal/prefilter"
	"github.com/meguinhazeromiseria/scraper-mega/internal/stats"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify pending lots into category tables",
		Long: `Classify drains the staging table: every lot not yet classified runs
through the pre-filter, keyword scorer and AI stages, then lands in its
category table. Interrupting with Ctrl-C finishes the current lot and
stops cleanly; the next run picks up where this one left off.`,
		RunE: runClassify,
	}

	cmd.Flags().String("source", "", "only classify lots scraped from this marketplace")
	cmd.Flags().Int("limit", 0, "maximum number of lots to classify (0 = all)")
	cmd.Flags().Duration("delay", 2*time.Second, "pause after each AI call")
	cmd.Flags().Bool("no-ai", false, "skip the AI stage (pre-filter and keywords only)")

	_ = viper.BindPFlag("classify.source", cmd.Flags().Lookup("source"))
	_ = viper.BindPFlag("classify.limit", cmd.Flags().Lookup("limit"))
	_ = viper.BindPFlag("classify.delay", cmd.Flags().Lookup("delay"))
	_ = viper.BindPFlag("classify.no_ai", cmd.Flags().Lookup("no-ai"))

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

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

	var ai engine.AIClassifier
	if !viper.GetBool("classify.no_ai") {
		classifier, err := llm.NewClassifier(config.LoadGroqConfig(), reg, logger)
		if err != nil {
			return fmt.Errorf("failed to create AI classifier: %w", err)
		}
		defer classifier.Close()
		ai = classifier
	}

	eng := engine.New(reg, prefilter.New(reg, prefilter.DefaultConfig()),
		keyword.New(reg, keyword.DefaultConfig()), ai, logger)

	runner := engine.NewRunner(eng, store, engine.RunnerConfig{
		Delay:  viper.GetDuration("classify.delay"),
		Source: viper.GetString("classify.source"),
		Limit:  viper.GetInt("classify.limit"),
	}, logger)

	var bar *progressbar.ProgressBar
	summary, err := runner.Run(ctx, func(processed, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Classifying lots"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(30))
		}
		_ = bar.Set(processed)
	})
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}
	if err != nil {
		return fmt.Errorf("classification run failed: %w", err)
	}

	fmt.Print(eng.Stats().Summary(reg.CatchAll(), stats.DefaultCatchAllWarnShare))

	common.LogInfo("run complete", common.Fields{
		"processed": summary.TotalLots,
		"duration":  summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond),
	})
	return nil
}
