package taxonomy

import "github.com/meguinhazeromiseria/scraper-mega/internal/model"

// builtinSpec returns the default taxonomy. Marketplace text is Brazilian
// Portuguese, already accent-stripped by the upstream normalizer, so the
// lexicons are accent-free too.
func builtinSpec() Spec {
	return Spec{
		CatchAll:    model.CategoryDiversos,
		Opportunity: model.CategoryOportunidades,
		Categories: []model.Category{
			{
				ID:          model.CategoryBensConsumo,
				Description: "Bens de consumo diversos e artigos pessoais",
				Examples:    "roupas, calcados, bolsas, acessorios, cosmeticos, perfumes, joias, relogios",
			},
			{
				ID:          model.CategoryEletrodomesticos,
				Description: "Eletrodomesticos e linha branca para uso residencial",
				Examples:    "geladeiras, fogoes, micro-ondas, lavadoras, ar condicionado, cafeteiras, liquidificadores",
			},
			{
				ID:          model.CategoryTecnologia,
				Description: "Produtos eletronicos e de informatica",
				Examples:    "notebooks, smartphones, tablets, monitores, impressoras, cameras, drones, consoles, perifericos",
			},
			{
				ID:          model.CategoryVeiculos,
				Description: "QUALQUER meio de transporte ou locomocao, motorizado ou nao",
				Examples:    "carros, motos, caminhoes, tratores, bicicletas, patinetes, jet ski, lanchas, aeronaves",
			},
			{
				ID:          model.CategoryMoveisDecoracao,
				Description: "Moveis e itens de decoracao",
				Examples:    "sofas, mesas, cadeiras, armarios, estantes, camas, lustres, quadros, tapetes",
			},
			{
				ID:          model.CategoryCasaUtilidades,
				Description: "Utilidades domesticas e itens de casa pequenos",
				Examples:    "panelas, loucas, talheres, copos, utensilios de cozinha, organizadores",
			},
			{
				ID:          model.CategoryArtesColecionismo,
				Description: "Arte, antiguidades e colecionaveis",
				Examples:    "quadros, esculturas, antiguidades, moedas, selos, obras de arte, objetos raros",
			},
			{
				ID:          model.CategoryAlimentosBebidas,
				Description: "Alimentos e bebidas",
				Examples:    "alimentos nao pereciveis, bebidas, vinhos, cafes, suplementos alimentares",
			},
			{
				ID:          model.CategoryImoveis,
				Description: "Imoveis e propriedades",
				Examples:    "casas, apartamentos, terrenos, galpoes, salas comerciais, fazendas, chacaras, lotes",
			},
			{
				ID:          model.CategoryMateriaisConstrucao,
				Description: "Materiais de construcao e acabamento",
				Examples:    "cimento, tijolos, telhas, pisos, portas, janelas, ferragens, tintas, tubos, madeiras",
			},
			{
				ID:          model.CategoryIndustrialEquipamento,
				Description: "Equipamentos e maquinas industriais para manufatura",
				Examples:    "tornos, fresadoras, prensas, compressores, geradores, maquinas CNC, injetoras, extrusoras",
			},
			{
				ID:          model.CategoryMaquinasPesadas,
				Description: "Maquinas pesadas e equipamentos agricolas",
				Examples:    "retroescavadeiras, escavadeiras, tratores agricolas, colheitadeiras, pas carregadeiras",
			},
			{
				ID:          model.CategoryNichados,
				Description: "Equipamentos e produtos especializados: saude, odontologia, veterinaria, cozinha profissional, laboratorios, estetica",
				Examples:    "cadeira odontologica, autoclave, equipamentos medicos, fogoes industriais, camaras frias, centrifugas",
			},
			{
				ID:          model.CategoryPartesPecas,
				Description: "Pecas, componentes e acessorios avulsos",
				Examples:    "pecas automotivas, pecas de maquinas, componentes eletronicos, pecas de reposicao",
			},
			{
				ID:          model.CategoryAnimais,
				Description: "Animais vivos",
				Examples:    "gado, cavalos, aves, animais de estimacao, animais de producao",
			},
			{
				ID:          model.CategorySucatasResiduos,
				Description: "Sucatas, residuos e materiais para reciclagem",
				Examples:    "sucata de metal, materiais reciclaveis, residuos industriais, ferro velho",
			},
			{
				ID:          model.CategoryOportunidades,
				Description: "Lotes de alto interesse: lances existentes, muitos compradores ou grandes quantidades",
				Restricted:  true,
			},
			{
				ID:          model.CategoryDiversos,
				Description: "APENAS lotes explicitamente mistos com 2+ categorias diferentes, itens financeiros/abstratos e fallback",
				Restricted:  true,
			},
		},
		Lexicons: map[model.CategoryID][]string{
			model.CategoryTecnologia: {
				"notebook", "smartphone", "tablet", "computador", "monitor",
				"impressora", "impressoras", "camera", "drone", "console",
				"videogame", "xbox", "playstation", "nintendo", "smartwatch",
				"fone", "headphone", "caixa de som", "roteador", "switch",
				"mouse", "teclado", "webcam", "microfone", "ssd", "hd externo",
				"pendrive", "iphone", "ipad", "macbook", "samsung galaxy",
				"dell", "lenovo", "asus", "acer", "gopro", "dji", "canon",
				"nikon", "servidor", "celular", "moto g", "galaxy", "xiaomi",
				"motorola", "telefone celular", "tekpix", "zink", "leitor de cartoes",
			},
			model.CategoryEletrodomesticos: {
				"geladeira", "refrigerador", "fogao", "cooktop", "microondas",
				"micro-ondas", "lavadora", "secadora", "lava e seca",
				"ar condicionado", "ventilador", "purificador", "aspirador",
				"ferro de passar", "cafeteira", "liquidificador", "batedeira",
				"smart tv", "televisao", "tv led", "tv oled", "air fryer",
				"fritadeira", "chaleira", "torradeira", "sanduicheira",
				"espremedor", "panela eletrica", "brastemp", "consul",
				"electrolux", "britania", "mondial", "arno",
			},
			model.CategoryBensConsumo: {
				"roupa", "calcado", "sapato", "tenis", "bolsa", "mochila",
				"carteira", "oculos", "relogio", "joia", "colar", "anel",
				"brinco", "pulseira", "perfume", "cosmetico", "maquiagem",
				"mala", "acessorio", "bone", "chapeu", "cinto", "gravata",
			},
			model.CategoryVeiculos: {
				"carro", "automovel", "veiculo", "moto", "motocicleta",
				"caminhao", "onibus", "van", "pickup", "kombi", "trator",
				"bicicleta", "bike", "patinete", "scooter", "patins", "skate",
				"hoverboard", "jet ski", "lancha", "barco", "aeronave",
				"aviao", "helicoptero", "sedan", "fiat", "volkswagen", "vw",
				"ford", "chevrolet", "honda", "toyota", "hyundai", "nissan",
				"renault", "peugeot", "jeep", "mitsubishi", "suzuki", "yamaha",
				"kawasaki", "bmw", "mercedes", "audi", "volvo", "scania",
				"iveco", "civic", "corolla", "gol", "uno", "palio", "onix",
				"hb20", "sandero", "cg 150", "cg 160", "fan", "titan", "biz", "bros",
			},
			model.CategoryAlimentosBebidas: {
				"alimento", "comida", "bebida", "vinho", "whisky", "cerveja",
				"cafe", "cha", "suco", "refrigerante", "suplemento",
				"vitamina", "proteina", "whey", "chocolate", "doce",
			},
			model.CategoryMoveisDecoracao: {
				"sofa", "mesa", "cadeira", "poltrona", "armario",
				"guarda-roupa", "estante", "rack", "cama", "colchao",
				"comoda", "aparador", "buffet", "cristaleira", "escrivaninha",
				"pufe", "banqueta", "lustre", "luminaria", "abajur", "quadro",
				"espelho", "tapete", "cortina", "persiana", "movel", "moveis",
				"cadeira escritorio", "mesa escritorio", "gaveteiro",
				"mesa reuniao", "cadeira giratoria", "longarina",
			},
			model.CategoryCasaUtilidades: {
				"panela", "frigideira", "assadeira", "louca", "prato",
				"tigela", "talher", "garfo", "faca", "colher", "copo",
				"xicara", "caneca", "jarra", "garrafa termica", "marmita",
				"pote", "organizador", "cesto", "vassoura", "balde",
				"escada", "varal", "kit churrasco",
			},
			model.CategoryArtesColecionismo: {
				"pintura", "escultura", "estatua", "obra de arte",
				"antiguidade", "moeda antiga", "selo", "colecao",
				"colecionavel", "raridade", "vintage", "reliquia",
				"porcelana antiga", "cristal antigo",
			},
			model.CategoryImoveis: {
				"imovel", "casa", "apartamento", "apto", "terreno", "lote urbano",
				"galpao", "barracao", "sala comercial", "loja", "ponto comercial",
				"fazenda", "sitio", "chacara", "edificio", "cobertura",
				"kitnet", "flat", "propriedade", "metro quadrado", "suite",
				"vaga de garagem", "condominio",
			},
			model.CategoryMateriaisConstrucao: {
				"cimento", "tijolo", "bloco", "telha", "piso", "porcelanato",
				"ceramica", "azulejo", "revestimento", "porta", "janela",
				"ferragem", "fechadura", "tinta", "verniz", "tubo", "cano",
				"torneira", "valvula", "madeira", "viga", "areia", "brita",
				"vergalhao", "serra marmore", "cortadeira de piso", "disco de corte",
			},
			model.CategoryIndustrialEquipamento: {
				"torno", "fresadora", "prensa", "compressor", "gerador",
				"solda", "transformador", "motor industrial", "bomba industrial",
				"maquina cnc", "serra industrial", "esmerilhadeira",
				"injetora", "extrusora", "caldeira", "forno industrial",
				"linha de producao", "esteira", "compactador", "compactador de lixo",
			},
			model.CategoryMaquinasPesadas: {
				"retroescavadeira", "escavadeira", "pa carregadeira",
				"motoniveladora", "rolo compactador", "trator agricola",
				"colheitadeira", "plantadeira", "pulverizador", "arado",
				"semeadeira", "rocadeira", "enfardadeira", "guincho",
				"empilhadeira", "bobcat", "minicarregadeira", "terraplenagem",
			},
			model.CategoryNichados: {
				"odontologico", "odontologica", "cadeira odontologica",
				"raio x odontologico", "autoclave", "dentista", "amalgamador",
				"fotopolimerizador", "kavo", "gnatus", "dabi atlante",
				"hospitalar", "clinica", "maca", "mesa cirurgica",
				"equipamento medico", "desfibrilador", "oximetro",
				"medicamento", "medicamentos", "farmacia", "farmaceutico",
				"veterinario", "clinica veterinaria", "estetica",
				"depilacao laser", "radiofrequencia", "cozinha profissional",
				"cozinha industrial", "fogao industrial", "coifa industrial",
				"chapa industrial", "fritadeira industrial", "balcao refrigerado",
				"camara fria", "freezer industrial", "geladeira industrial",
				"mesa inox", "pia inox", "bancada inox", "fogao 6 bocas",
				"6 bocas", "forno combinado", "equipamento gastronomico",
				"laboratorio", "centrifuga", "microscopio", "balanca analitica",
			},
			model.CategoryPartesPecas: {
				"peca", "componente", "reposicao", "sobressalente",
				"engrenagem", "rolamento", "correia", "filtro", "vela",
				"alternador", "radiador", "pneu", "aro", "disco de freio",
				"pastilha", "amortecedor", "suspensao", "embreagem",
				"carburador", "injetor", "sensor", "modulo", "chicote",
			},
			model.CategoryAnimais: {
				"gado", "boi", "vaca", "novilho", "bezerra", "touro",
				"cavalo", "egua", "potro", "mula", "porco", "suino",
				"galinha", "frango", "ovelha", "carneiro", "cabra",
				"caprino", "ovino", "passaro", "alevino", "animal vivo", "plantel",
			},
			model.CategorySucatasResiduos: {
				"sucata", "residuo", "reciclavel", "descarte", "ferro velho",
				"aluminio sucata", "cobre sucata", "papelao", "aparas",
				"retalho", "refugo", "bateria usada", "desmontagem",
			},
		},
		Aliases: map[string]model.CategoryID{
			"eletrodomestico":          model.CategoryEletrodomesticos,
			"eletro":                   model.CategoryEletrodomesticos,
			"tecnologias":              model.CategoryTecnologia,
			"eletronicos":              model.CategoryTecnologia,
			"informatica":              model.CategoryTecnologia,
			"veiculo":                  model.CategoryVeiculos,
			"automoveis":               model.CategoryVeiculos,
			"moveis":                   model.CategoryMoveisDecoracao,
			"movel":                    model.CategoryMoveisDecoracao,
			"moveis e decoracao":       model.CategoryMoveisDecoracao,
			"decoracao":                model.CategoryMoveisDecoracao,
			"utilidades domesticas":    model.CategoryCasaUtilidades,
			"utilidades":               model.CategoryCasaUtilidades,
			"artes":                    model.CategoryArtesColecionismo,
			"colecionismo":             model.CategoryArtesColecionismo,
			"alimentos":                model.CategoryAlimentosBebidas,
			"bebidas":                  model.CategoryAlimentosBebidas,
			"imovel":                   model.CategoryImoveis,
			"construcao":               model.CategoryMateriaisConstrucao,
			"materiais de construcao":  model.CategoryMateriaisConstrucao,
			"industrial":               model.CategoryIndustrialEquipamento,
			"equipamentos industriais": model.CategoryIndustrialEquipamento,
			"maquinas pesadas":         model.CategoryMaquinasPesadas,
			"maquinas agricolas":       model.CategoryMaquinasPesadas,
			"nichado":                  model.CategoryNichados,
			"pecas":                    model.CategoryPartesPecas,
			"partes e pecas":           model.CategoryPartesPecas,
			"animal":                   model.CategoryAnimais,
			"sucata":                   model.CategorySucatasResiduos,
			"sucatas":                  model.CategorySucatasResiduos,
			"bens de consumo":          model.CategoryBensConsumo,
		},
		// Coarse on purpose. The mixed-lot rule only needs to tell very
		// different kinds of items apart, not score them.
		MixedIndicator: map[model.CategoryID][]string{
			model.CategoryTecnologia: {
				"notebook", "tablet", "smartphone", "impressora", "monitor",
				"telefone", "celular",
			},
			model.CategoryEletrodomesticos: {
				"geladeira", "fogao", "microondas", "micro-ondas", "tv",
				"televisao", "lavadora", "bebedouro",
			},
			model.CategoryMoveisDecoracao: {
				"sofa", "mesa", "cadeira", "armario", "cama",
			},
			model.CategoryCasaUtilidades: {
				"panela", "prato", "copo", "talher",
			},
			model.CategoryVeiculos: {
				"carro", "moto", "caminhao", "bicicleta",
			},
			model.CategoryImoveis: {
				"casa", "apartamento", "terreno",
			},
		},
		Financial: []string{
			"cotas sociais", "acoes", "expectativa de direito",
			"direito creditorio", "direitos creditorios", "credito de",
			"emprestimo compulsorio", "marca registrada", "registro de marca",
			"marca devidamente registrada", "inpi", "titulo patrimonial",
			"titulo de clube", "propriedade intelectual", "patente",
			"acoes preferenciais",
		},
		// Brand-level vocabularies where a single hit is near-unambiguous.
		HighPrecision: []model.CategoryID{
			model.CategoryVeiculos,
			model.CategoryImoveis,
			model.CategoryAnimais,
		},
	}
}
