package llm

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"
)

// disambiguationRules is the prioritized rule block for category pairs the
// model tends to confuse. Worked examples matter more than abstract rules
// here; prompt tweaks go through this constant, not through code forks.
var disambiguationRules = dedent.Dedent(`
	====================================
	REGRAS DE CLASSIFICACAO (DETALHADAS)
	====================================

	PRIORIDADE 1 - NICHADOS (equipamentos profissionais especializados):

	A) SAUDE/FARMACIA:
	   - Medicamentos, vitaminas, produtos de higiene HOSPITALAR -> "nichados"
	   - Equipamentos medicos, odontologicos, veterinarios -> "nichados"

	   Exemplos:
	   - "Medicamentos, produtos de higiene, vitaminas" -> nichados
	   - "Cadeira odontologica Kavo" -> nichados

	B) COZINHA INDUSTRIAL:
	   - Fogao INDUSTRIAL, geladeira INDUSTRIAL -> "nichados"
	   - Equipamento com "6 bocas", "inox profissional" -> "nichados"
	   - Fogao domestico comum -> "eletrodomesticos"

	   Exemplos:
	   - "Fogao industrial 6 bocas inox" -> nichados
	   - "Fogao 4 bocas Brastemp" -> eletrodomesticos

	PRIORIDADE 2 - CONSTRUCAO vs INDUSTRIAL:

	A) MATERIAIS_CONSTRUCAO: maquinas para CORTAR/CONSTRUIR materiais.
	   - "Cortadeira de piso de bancada" -> materiais_construcao
	   - "Serra marmore" -> materiais_construcao

	B) INDUSTRIAL_EQUIPAMENTOS: maquinas de PRODUCAO em serie.
	   - "Torno mecanico industrial" -> industrial_equipamentos
	   - "Prensa hidraulica" -> industrial_equipamentos

	PRIORIDADE 3 - TECNOLOGIA vs ELETRODOMESTICOS:

	A) TECNOLOGIA: informatica, comunicacao, impressao.
	   - "19 impressoras portateis Tekpix" -> tecnologia
	   - "Notebook, celular, tablet, servidor" -> tecnologia

	B) ELETRODOMESTICOS: linha branca domestica, TV, microondas.
	   - "Geladeira Brastemp" -> eletrodomesticos
	   - "TV LED 50 polegadas" -> eletrodomesticos

	PRIORIDADE 4 - VEICULOS vs PARTES_PECAS:

	A) VEICULOS: o meio de transporte inteiro, motorizado ou nao.
	   - "Honda Civic 2018" -> veiculos
	   - "Bicicleta aro 29" -> veiculos

	B) PARTES_PECAS: pecas e componentes avulsos.
	   - "Motor de arranque Honda Civic" -> partes_pecas
	   - "Jogo de pneus aro 15" -> partes_pecas

	PRIORIDADE 5 - MOVEIS vs UTILIDADES:

	A) MOVEIS_DECORACAO: movel = voce SENTA, GUARDA coisas, DECORA.
	   - "Sofa, mesa, cadeira, armario" -> moveis_decoracao

	B) CASA_UTILIDADES: utensilio = voce USA para cozinhar/comer/limpar.
	   - "Panela, prato, copo, talher" -> casa_utilidades

	====================================
`)

// buildPrompt assembles the classification prompt for one lot: the taxonomy
// with one-line descriptions, the disambiguation rules, and the lot's title
// plus a bounded description excerpt.
func buildPrompt(reg *taxonomy.Registry, lot *model.Lot) string {
	var categoryList strings.Builder
	for _, cat := range reg.Categories() {
		if cat.Restricted {
			continue
		}
		categoryList.WriteString(fmt.Sprintf("- %s: %s (ex: %s)\n", cat.ID, cat.Description, cat.Examples))
	}

	title := lot.Title
	if title == "" {
		title = lot.NormalizedTitle
	}

	description := lot.DescriptionExcerpt()
	if description == "" {
		description = "Nao disponivel"
	}

	return fmt.Sprintf(`Voce e um especialista em classificacao de leiloes. Analise o item abaixo e escolha a categoria MAIS ESPECIFICA baseando-se no CONTEXTO e USO REAL do item.

CATEGORIAS DISPONIVEIS:
%s
ITEM PARA CLASSIFICAR:
Titulo: %s
Descricao: %s
%s
RESPONDA APENAS O NOME DA CATEGORIA (ex: "tecnologia", "nichados", "veiculos"):`,
		categoryList.String(),
		title,
		description,
		disambiguationRules)
}
