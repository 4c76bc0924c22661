package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"
)

func TestBuildPrompt(t *testing.T) {
	reg, err := taxonomy.Default()
	require.NoError(t, err)

	lot := model.Lot{
		ID:          "lot-1",
		Title:       "Fogao industrial 6 bocas inox",
		Description: "Equipamento para cozinha profissional, pouco uso.",
	}

	prompt := buildPrompt(reg, &lot)

	assert.Contains(t, prompt, lot.Title)
	assert.Contains(t, prompt, lot.Description)
	assert.Contains(t, prompt, "- tecnologia:")
	assert.Contains(t, prompt, "- nichados:")

	// Restricted categories are never offered as choices.
	assert.NotContains(t, prompt, "- diversos:")
	assert.NotContains(t, prompt, "- oportunidades:")
}

func TestBuildPromptTruncatesDescription(t *testing.T) {
	reg, err := taxonomy.Default()
	require.NoError(t, err)

	lot := model.Lot{
		Title:       "Lote de pecas",
		Description: strings.Repeat("pecas automotivas variadas ", 100),
	}

	prompt := buildPrompt(reg, &lot)
	assert.NotContains(t, prompt, lot.Description)
	assert.Contains(t, prompt, lot.Description[:model.DescriptionExcerptLen])
}

func TestBuildPromptMissingDescription(t *testing.T) {
	reg, err := taxonomy.Default()
	require.NoError(t, err)

	lot := model.Lot{Title: "Corolla 2018"}
	prompt := buildPrompt(reg, &lot)
	assert.Contains(t, prompt, "Nao disponivel")
}
