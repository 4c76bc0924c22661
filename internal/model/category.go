// Package model defines the core domain models used throughout the application.
package model

// CategoryID is the stable string key of a taxonomy category. It doubles as
// the destination table name when routing classified lots to storage.
type CategoryID string

// Canonical category ids of the built-in taxonomy.
const (
	CategoryBensConsumo           CategoryID = "bens_consumo"
	CategoryEletrodomesticos      CategoryID = "eletrodomesticos"
	CategoryTecnologia            CategoryID = "tecnologia"
	CategoryVeiculos              CategoryID = "veiculos"
	CategoryMoveisDecoracao       CategoryID = "moveis_decoracao"
	CategoryCasaUtilidades        CategoryID = "casa_utilidades"
	CategoryArtesColecionismo     CategoryID = "artes_colecionismo"
	CategoryAlimentosBebidas      CategoryID = "alimentos_bebidas"
	CategoryImoveis               CategoryID = "imoveis"
	CategoryMateriaisConstrucao   CategoryID = "materiais_construcao"
	CategoryIndustrialEquipamento CategoryID = "industrial_equipamentos"
	CategoryMaquinasPesadas       CategoryID = "maquinas_pesadas_agricolas"
	CategoryNichados              CategoryID = "nichados"
	CategoryPartesPecas           CategoryID = "partes_pecas"
	CategoryAnimais               CategoryID = "animais"
	CategorySucatasResiduos       CategoryID = "sucatas_residuos"
	CategoryOportunidades         CategoryID = "oportunidades"
	CategoryDiversos              CategoryID = "diversos"
)

// Category represents one member of the closed taxonomy.
type Category struct {
	ID          CategoryID
	Description string
	Examples    string
	// Restricted categories are never offered to or accepted from the
	// classification service; they are reachable only through pre-filter
	// rules or the fallback.
	Restricted bool
}
