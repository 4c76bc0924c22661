package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meguinhazeromiseria/scraper-mega/internal/common"
	"github.com/meguinhazeromiseria/scraper-mega/internal/keyword"
	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/prefilter"
	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"
)

// stubAI is a canned AIClassifier for engine tests.
type stubAI struct {
	category model.CategoryID
	raw      string
	err      error
	calls    int
}

func (s *stubAI) ClassifyLot(_ context.Context, _ *model.Lot) (model.CategoryID, string, error) {
	s.calls++
	if s.err != nil {
		return "", "", s.err
	}
	return s.category, s.raw, nil
}

func testEngine(t *testing.T, ai AIClassifier) *Engine {
	t.Helper()
	reg, err := taxonomy.Default()
	require.NoError(t, err)
	return New(reg,
		prefilter.New(reg, prefilter.DefaultConfig()),
		keyword.New(reg, keyword.DefaultConfig()),
		ai, nil)
}

func TestClassifyStagePriority(t *testing.T) {
	// The AI stub always answers tecnologia; earlier stages must win anyway.
	tests := []struct {
		name         string
		lot          model.Lot
		wantStage    model.Stage
		wantCategory model.CategoryID
	}{
		{
			name:         "pre-filter wins over everything",
			lot:          model.Lot{ID: "a", Title: "geladeira e fogao usados", TotalBids: 2},
			wantStage:    model.StagePreFilter,
			wantCategory: model.CategoryOportunidades,
		},
		{
			name:         "keyword scorer wins over AI",
			lot:          model.Lot{ID: "b", Title: "geladeira e fogao usados"},
			wantStage:    model.StageKeyword,
			wantCategory: model.CategoryEletrodomesticos,
		},
		{
			name:         "undecided lot reaches the AI",
			lot:          model.Lot{ID: "c", Title: "lote de equipamentos do patio"},
			wantStage:    model.StageAI,
			wantCategory: model.CategoryTecnologia,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := testEngine(t, &stubAI{category: model.CategoryTecnologia, raw: "tecnologia"})

			classification, err := eng.Classify(context.Background(), &tt.lot)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStage, classification.Stage)
			assert.Equal(t, tt.wantCategory, classification.Category)
		})
	}
}

func TestClassifyFallbackOnAIError(t *testing.T) {
	ai := &stubAI{err: fmt.Errorf("%w: boom", common.ErrServiceUnavailable)}
	eng := testEngine(t, ai)

	lot := model.Lot{ID: "x", Title: "conteudo do deposito sem descricao"}
	classification, err := eng.Classify(context.Background(), &lot)
	require.NoError(t, err, "an AI failure must not surface to the caller")
	assert.Equal(t, model.StageFallback, classification.Stage)
	assert.Equal(t, model.CategoryDiversos, classification.Category)
	assert.Equal(t, 1, ai.calls)
}

func TestClassifyWithoutAI(t *testing.T) {
	eng := testEngine(t, nil)

	lot := model.Lot{ID: "x", Title: "conteudo do deposito sem descricao"}
	classification, err := eng.Classify(context.Background(), &lot)
	require.NoError(t, err)
	assert.Equal(t, model.StageFallback, classification.Stage)
	assert.Equal(t, model.CategoryDiversos, classification.Category)
}

func TestClassifyEmptyTitle(t *testing.T) {
	ai := &stubAI{category: model.CategoryTecnologia}
	eng := testEngine(t, ai)

	lot := model.Lot{ID: "empty-1", Description: "alguma descricao"}
	classification, err := eng.Classify(context.Background(), &lot)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyTitle)
	require.NotNil(t, classification, "even a failed input gets a terminal outcome")
	assert.Equal(t, model.CategoryDiversos, classification.Category)
	assert.Equal(t, model.StageFallback, classification.Stage)
	assert.Equal(t, ReasonEmptyInput, classification.Reason)
	assert.Zero(t, ai.calls)

	snap := eng.Stats().Snapshot()
	assert.Equal(t, 1, snap.Total)
	assert.Equal(t, 1, snap.Failed)
}

func TestClassifyAlwaysReturnsTaxonomyMember(t *testing.T) {
	eng := testEngine(t, &stubAI{err: errors.New("down")})

	titles := []string{
		"notebook dell com monitor",
		"corolla 2018",
		"tv, geladeira, sofa e telefone",
		"cotas sociais da empresa",
		"coisa completamente desconhecida",
		"lote com 200 unidades de itens",
	}

	for _, title := range titles {
		lot := model.Lot{ID: title, Title: title}
		classification, err := eng.Classify(context.Background(), &lot)
		require.NoError(t, err)
		assert.True(t, eng.reg.IsMember(classification.Category),
			"category %q for %q must be a taxonomy member", classification.Category, title)
	}

	snap := eng.Stats().Snapshot()
	assert.Equal(t, len(titles), snap.Total)

	stageSum := 0
	for _, count := range snap.ByStage {
		stageSum += count
	}
	assert.Equal(t, snap.Total, stageSum)
}

func TestClassifyScenarios(t *testing.T) {
	// End-to-end expectations for listing shapes seen in production.
	tests := []struct {
		name         string
		lot          model.Lot
		aiAnswer     model.CategoryID
		wantCategory model.CategoryID
		wantStage    model.Stage
	}{
		{
			name:         "contested sedan goes to opportunities before vehicle scoring",
			lot:          model.Lot{Title: "sedan honda civic 2015", TotalBids: 4},
			wantCategory: model.CategoryOportunidades,
			wantStage:    model.StagePreFilter,
		},
		{
			name:         "preferred shares never reach the AI",
			lot:          model.Lot{Title: "acoes preferenciais da companhia"},
			wantCategory: model.CategoryDiversos,
			wantStage:    model.StagePreFilter,
		},
		{
			name:         "professional stove scores as specialized equipment",
			lot:          model.Lot{Title: "fogao industrial 6 bocas inox para restaurante"},
			wantCategory: model.CategoryNichados,
			wantStage:    model.StageKeyword,
		},
		{
			name:         "professional stove disambiguated by the AI",
			lot:          model.Lot{Title: "equipamento com 6 bocas para restaurante"},
			aiAnswer:     model.CategoryNichados,
			wantCategory: model.CategoryNichados,
			wantStage:    model.StageAI,
		},
		{
			name:         "cross-category enumeration is a mixed lot",
			lot:          model.Lot{Title: "tv, geladeira, sofa e telefone"},
			wantCategory: model.CategoryDiversos,
			wantStage:    model.StagePreFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := testEngine(t, &stubAI{category: tt.aiAnswer, raw: string(tt.aiAnswer)})

			classification, err := eng.Classify(context.Background(), &tt.lot)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, classification.Category)
			assert.Equal(t, tt.wantStage, classification.Stage)
		})
	}
}
