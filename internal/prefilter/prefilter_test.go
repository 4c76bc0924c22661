package prefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"
)

func testFilter(t *testing.T) *PreFilter {
	t.Helper()
	reg, err := taxonomy.Default()
	require.NoError(t, err)
	return New(reg, DefaultConfig())
}

func TestEvaluateOpportunity(t *testing.T) {
	filter := testFilter(t)

	tests := []struct {
		name       string
		lot        model.Lot
		wantReason string
	}{
		{
			name:       "existing bids",
			lot:        model.Lot{Title: "sedan honda civic 2015", TotalBids: 1},
			wantReason: "has_bids (1)",
		},
		{
			name:       "contested lot",
			lot:        model.Lot{Title: "notebook dell usado", TotalBidders: 3},
			wantReason: "many_bidders (3)",
		},
		{
			name:       "bids outrank bidder count",
			lot:        model.Lot{Title: "fogao industrial", TotalBids: 7, TotalBidders: 12},
			wantReason: "has_bids (7)",
		},
		{
			name:       "bulk quantity in title",
			lot:        model.Lot{Title: "lote com 50 cadeiras de escritorio"},
			wantReason: "many_units (50)",
		},
		{
			name:       "unit suffix form",
			lot:        model.Lot{Title: "250 unidades de copos descartaveis"},
			wantReason: "many_units (250)",
		},
		{
			name:       "quantity in description",
			lot:        model.Lot{Title: "pecas automotivas", Description: "Quantidade: 35 no total"},
			wantReason: "many_units (35)",
		},
		{
			name:       "second auction",
			lot:        model.Lot{Title: "apartamento centro - segunda praca"},
			wantReason: "second_auction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, ok := filter.Evaluate(&tt.lot)
			require.True(t, ok)
			assert.Equal(t, model.CategoryOportunidades, outcome.Category)
			assert.Equal(t, tt.wantReason, outcome.Reason)
		})
	}
}

func TestEvaluateOpportunityDeclines(t *testing.T) {
	filter := testFilter(t)

	tests := []struct {
		name string
		lot  model.Lot
	}{
		{name: "no signals", lot: model.Lot{Title: "geladeira brastemp frost free"}},
		{name: "bidders below threshold", lot: model.Lot{Title: "geladeira brastemp", TotalBidders: 2}},
		{name: "quantity below threshold", lot: model.Lot{Title: "lote com 5 panelas"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, ok := filter.Evaluate(&tt.lot)
			if ok {
				assert.NotEqual(t, model.CategoryOportunidades, outcome.Category)
			}
		})
	}
}

func TestEvaluateFinancial(t *testing.T) {
	filter := testFilter(t)

	tests := []struct {
		name  string
		title string
	}{
		{name: "company shares", title: "cotas sociais da empresa XYZ Ltda"},
		{name: "credit rights", title: "direito creditorio oriundo de processo"},
		{name: "registered trademark", title: "marca registrada no INPI - setor alimenticio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lot := model.Lot{Title: tt.title}
			outcome, ok := filter.Evaluate(&lot)
			require.True(t, ok)
			assert.Equal(t, model.CategoryDiversos, outcome.Category)
			assert.Equal(t, ReasonFinancial, outcome.Reason)
		})
	}
}

func TestFinancialOutranksMixedLot(t *testing.T) {
	filter := testFilter(t)

	// Matches both the financial lexicon and the enumeration shape. The
	// rule order makes financial_abstract win.
	lot := model.Lot{Title: "acoes preferenciais, cotas sociais, titulo patrimonial e carro"}
	outcome, ok := filter.Evaluate(&lot)
	require.True(t, ok)
	assert.Equal(t, ReasonFinancial, outcome.Reason)
}

func TestEvaluateMixedLot(t *testing.T) {
	filter := testFilter(t)

	tests := []struct {
		name      string
		lot       model.Lot
		wantMixed bool
	}{
		{
			name:      "enumeration across categories",
			lot:       model.Lot{Title: "tv, geladeira, sofa e telefone"},
			wantMixed: true,
		},
		{
			name:      "explicit mixed phrase with two categories",
			lot:       model.Lot{Title: "lote misto", Description: "contem geladeira e sofa usados"},
			wantMixed: true,
		},
		{
			name:      "single category enumeration",
			lot:       model.Lot{Title: "mesa, cadeira, armario e cama"},
			wantMixed: false,
		},
		{
			name:      "mixed phrase but one category only",
			lot:       model.Lot{Title: "itens diversos de informatica", Description: "notebook e monitor"},
			wantMixed: false,
		},
		{
			name:      "accessory variety is not mixed",
			lot:       model.Lot{Title: "acessorios variados para notebook"},
			wantMixed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, ok := filter.Evaluate(&tt.lot)
			if !tt.wantMixed {
				if ok {
					assert.NotEqual(t, ReasonMixedLot, outcome.Reason)
				}
				return
			}
			require.True(t, ok)
			assert.Equal(t, model.CategoryDiversos, outcome.Category)
			assert.Equal(t, ReasonMixedLot, outcome.Reason)
		})
	}
}

func TestRuleOrder(t *testing.T) {
	filter := testFilter(t)

	names := make([]string, 0, len(filter.Rules()))
	for _, rule := range filter.Rules() {
		names = append(names, rule.Name())
	}
	assert.Equal(t, []string{"opportunity", "financial", "mixed_lot"}, names)
}

func TestNoOpportunityCategoryDisablesRule(t *testing.T) {
	reg, err := taxonomy.New(taxonomy.Spec{
		CatchAll: "outros",
		Categories: []model.Category{
			{ID: "ferramentas", Description: "Ferramentas"},
			{ID: "outros", Restricted: true},
		},
		Lexicons: map[model.CategoryID][]string{
			"ferramentas": {"furadeira"},
		},
	})
	require.NoError(t, err)

	filter := New(reg, DefaultConfig())
	assert.Len(t, filter.Rules(), 2)

	// A contested lot falls through when no high-interest category exists.
	lot := model.Lot{Title: "furadeira bosch", TotalBids: 9}
	_, ok := filter.Evaluate(&lot)
	assert.False(t, ok)
}
