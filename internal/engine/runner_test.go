package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meguinhazeromiseria/scraper-mega/internal/keyword"
	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/prefilter"
	"github.com/meguinhazeromiseria/scraper-mega/internal/service"
	"github.com/meguinhazeromiseria/scraper-mega/internal/testutil"
)

func testRunner(t *testing.T, db *testutil.TestDB, ai AIClassifier, cfg RunnerConfig) *Runner {
	t.Helper()
	if cfg.Delay == 0 {
		cfg.Delay = time.Millisecond
	}
	eng := New(db.Registry,
		prefilter.New(db.Registry, prefilter.DefaultConfig()),
		keyword.New(db.Registry, keyword.DefaultConfig()),
		ai, nil)
	return NewRunner(eng, db.Storage, cfg, nil)
}

func TestRunnerDrainsStagingTable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	lots := testutil.Lots(
		"notebook dell com monitor full hd",
		"corolla 2018 prata",
		"cotas sociais da empresa XYZ",
	)
	require.NoError(t, db.Storage.SaveLots(ctx, lots))

	runner := testRunner(t, db, &stubAI{category: model.CategoryTecnologia, raw: "tecnologia"}, RunnerConfig{})

	var progressCalls int
	summary, err := runner.Run(ctx, func(processed, total int) {
		progressCalls++
		assert.Equal(t, 3, total)
		assert.Equal(t, progressCalls, processed)
	})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalLots)
	assert.Equal(t, 3, progressCalls)

	// Everything classified: a second run finds nothing to do.
	again, err := runner.Run(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, again.TotalLots)

	counts, err := db.Storage.CountByCategory(ctx)
	require.NoError(t, err)
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 3, total)
}

func TestRunnerHonorsSourceFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	lotA := testutil.Lot("a-1", "corolla 2018 prata")
	lotA.Source = "leilao-a"
	lotB := testutil.Lot("b-1", "novilho nelore")
	lotB.Source = "leilao-b"
	require.NoError(t, db.Storage.SaveLots(ctx, []model.Lot{lotA, lotB}))

	runner := testRunner(t, db, nil, RunnerConfig{Source: "leilao-a"})
	summary, err := runner.Run(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalLots)
	assert.Equal(t, "leilao-a", summary.Source)

	// The other source's lot is still pending.
	pending, err := db.Storage.GetLotsToClassify(ctx, service.LotFilter{})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b-1", pending[0].ID)
}

func TestRunnerSkipsEmptyTitleLots(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	bad := testutil.Lot("bad-1", "placeholder")
	bad.Title = " "
	good := testutil.Lot("good-1", "corolla 2018 prata")
	require.NoError(t, db.Storage.SaveLots(ctx, []model.Lot{bad, good}))

	runner := testRunner(t, db, nil, RunnerConfig{})
	summary, err := runner.Run(ctx, nil)
	require.NoError(t, err, "a malformed lot must not abort the batch")
	assert.Equal(t, 2, summary.TotalLots)

	// The bad lot landed in the catch-all instead of vanishing.
	lot, err := db.Storage.GetLotByID(ctx, "bad-1")
	require.NoError(t, err)
	assert.Equal(t, "bad-1", lot.ID)

	counts, err := db.Storage.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[model.CategoryDiversos])
	assert.Equal(t, 1, counts[model.CategoryVeiculos])
}

func TestRunnerStopsOnCanceledContext(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Storage.SaveLots(ctx, testutil.Lots("corolla 2018", "novilho nelore")))

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	runner := testRunner(t, db, nil, RunnerConfig{})
	_, err := runner.Run(canceled, nil)
	require.ErrorIs(t, err, context.Canceled)

	pending, err := db.Storage.GetLotsToClassify(ctx, service.LotFilter{})
	require.NoError(t, err)
	assert.Len(t, pending, 2, "nothing should be classified after immediate cancel")
}

func TestRunnerLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Storage.SaveLots(ctx, testutil.Lots(
		"corolla 2018", "novilho nelore", "apartamento 502 andar alto")))

	runner := testRunner(t, db, nil, RunnerConfig{Limit: 2})
	summary, err := runner.Run(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalLots)

	pending, err := db.Storage.GetLotsToClassify(ctx, service.LotFilter{})
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
