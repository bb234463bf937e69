// Package catalog resolves free-text product descriptions from the sales
// feed to canonical product names. The alias catalog and the known-typo
// correction table are static, loaded once and shared read-only.
package catalog

// Entry registers one canonical product name with its known free-text
// aliases. Entry order inside the catalog is significant: matcher tiers
// break ties by first match in declaration order.
type Entry struct {
	Canonical string
	Aliases   []string
}

// Catalog is the ordered alias catalog. It is immutable after construction
// and safe to share across the whole run.
type Catalog struct {
	entries []Entry
}

// New builds a catalog from the given entries, preserving order.
func New(entries []Entry) *Catalog {
	return &Catalog{entries: entries}
}

// Entries returns the catalog entries in declaration order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Canonicals returns every canonical name in declaration order.
func (c *Catalog) Canonicals() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Canonical
	}
	return names
}

// Default returns the MegaSuper product catalog. The entries are grouped by
// category (hygiene, dairy, cleaning, beverages, staples, condiments,
// produce, other) purely for maintainability; category has no runtime
// effect.
func Default() *Catalog {
	return New([]Entry{
		// Higiene pessoal
		{"pasta de dente", []string{
			"pasta dental", "creme dental", "pasta", "colgate", "sensodyne",
			"oral-b", "creme de dente", "gel dental", "dentifrício", "pasta oral",
			"close up", "sorriso", "oral b", "escova e pasta", "pasta dentes",
		}},
		{"sabonete", []string{
			"sabão", "sabonete líquido", "sabonete em barra", "sabonete antibacteriano",
			"sabonete íntimo", "sabão em barra", "dove", "lux", "protex", "palmolive",
			"nivea", "sabonete hidratante", "sabonete perfumado", "soap",
		}},
		{"condicionador", []string{
			"condicionador capilar", "creme de pentear", "máscara de tratamento",
			"creme de cabelo", "condicionador antiqueda", "condicionador hidratante",
			"conditioner", "acondicionador", "creme rinse", "condicionador cabelos",
		}},
		{"shampoo", []string{
			"xampu", "shampoo anticaspa", "shampoo hidratante", "shampoo antiqueda",
			"shampoo para cabelos", "shampoo especializado", "xampu", "shampo",
			"champô", "shampoo cabelo", "pantene", "head shoulders", "h s",
			"head and shoulders", "elseve", "seda", "clear men", "clear",
		}},
		{"desodorante", []string{
			"desodorante roll on", "desodorante aerosol", "antitranspirante",
			"desodorante spray", "deo", "rexona", "nivea men", "axe", "dove deo",
		}},
		{"papel higiênico", []string{
			"papel higienico", "papel sanitário", "rolo de papel", "papel de banheiro",
			"paper higienico", "neve", "personal", "papel wc", "papel de toilet",
		}},

		// Laticínios
		{"queijo mussarela", []string{
			"mussarela", "queijo", "queijo muçarela", "queijo muzzarela",
			"queijo mozarela", "queijo fatiado", "queijo para lanche", "queijo musarela",
			"queijo muzarela", "mozzarella", "queijo branco", "queijo para pizza",
		}},
		{"manteiga", []string{
			"margarina", "manteiga sem sal", "manteiga com sal", "manteiga light",
			"manteiga vegetal", "creme vegetal", "margarina light", "qualy",
			"doriana", "delícia", "becel", "manteiga extra", "butter", "margarine",
		}},
		{"leite", []string{
			"leite integral", "leite desnatado", "leite semidesnatado",
			"leite em pó", "leite condensado", "leite zero lactose", "leite uht",
			"leite caixinha", "leite garrafa", "leite pasteurizado", "milk",
			"leite longa vida", "leite fresco", "ninho", "molico", "itambé", "parmalat",
		}},
		{"iogurte", []string{
			"yogurt", "iogurte natural", "iogurte grego", "iogurte light",
			"iogurte desnatado", "iogurte integral", "danone", "yakult",
			"iogurte de frutas", "activia", "yoghurt", "coalhada", "danoninho",
			"iogurte liquido", "iogurte batido", "iogurte de morango",
		}},
		{"requeijão", []string{
			"requeijao", "requeijão cremoso", "requeijão light", "cream cheese",
			"catupiry", "philadelphia", "requeijão tradicional", "queijo cremoso",
		}},

		// Limpeza
		{"papel toalha", []string{
			"toalha de papel", "papel absorvente", "papel toalha interfolhado",
			"guardanapo", "papel multiuso", "papel de cozinha", "snob",
			"kitchen paper", "papel descartavel", "toalha papel",
		}},
		{"desinfetante", []string{
			"desinfetante líquido", "desinfetante em pó", "desinfetante concentrado",
			"desinfetante spray", "água sanitária", "cloro", "pinho sol", "kalipto",
			"lysoform", "veja", "ajax", "casa e perfume", "alvejante", "sanitizer",
		}},
		{"detergente", []string{
			"detergente líquido", "detergente em pó", "detergente concentrado",
			"sabão em pó", "lava louças", "detergente neutro", "ypê", "limpol",
			"minuano", "omo", "ariel", "brilhante", "ace", "washing powder",
			"detergente para pratos", "sabão para louça", "dish soap",
		}},
		{"amaciante", []string{
			"amaciante de roupas", "amaciante concentrado", "comfort", "downy",
			"mon bijou", "baby soft", "fofo", "softener", "amaciador",
			"amaciante de tecidos", "suavizante",
		}},

		// Bebidas
		{"cerveja", []string{
			"cerveja lata", "cerveja garrafa", "cerveja long neck",
			"cerveja artesanal", "chopp", "cerveja pilsen", "cerveja puro malte",
			"skol", "brahma", "antarctica", "heineken", "budweiser", "stella artois",
			"beer", "cerveja 600ml", "cerveja pack", "cerveja latinha",
		}},
		{"refrigerante", []string{
			"refri", "coca", "guaraná", "fanta", "sprite", "soda",
			"bebida gaseificada", "refrigerante cola", "refrigerante zero",
			"coca cola", "coca-cola", "zero", "pepsi", "kuat", "guarana antarctica",
			"sukita", "soda limonada", "soft drink", "coke", "tonica", "h2oh",
		}},
		{"café", []string{
			"café em pó", "café solúvel", "café torrado", "café moído",
			"café expresso", "café instantâneo", "cápsula de café", "nespresso",
			"pilão", "melitta", "3 corações", "café forte", "café tradicional",
			"coffee", "café especial", "café gourmet", "café prima", "nescafé",
		}},
		{"suco", []string{
			"suco de fruta", "suco natural", "suco de caixinha", "suco em pó",
			"tang", "del valle", "juice", "néctar", "suco integral",
			"suco concentrado", "refresco", "suco de laranja", "suco de uva",
		}},
		{"água", []string{
			"agua", "água mineral", "água com gás", "água sem gás", "água de coco",
			"crystal", "indaiá", "bonafont", "mineral water", "h2o",
			"água garrafa", "água galão", "água 500ml", "água natural",
		}},
		{"vinho", []string{
			"vinho tinto", "vinho branco", "vinho rose", "vinho suave", "vinho seco",
			"vinho de mesa", "vinho fino", "wine", "vinhos", "espumante", "champagne",
			"prosecco",
		}},

		// Alimentos básicos
		{"arroz", []string{
			"arroz branco", "arroz integral", "arroz parboilizado",
			"arroz arbório", "arroz basmati", "arroz japonês", "tio joão",
			"camil", "prato fino", "arroz agulhinha", "rice", "arroz solto",
		}},
		{"feijão", []string{
			"feijão carioca", "feijão preto", "feijão branco",
			"feijão fradinho", "feijão verde", "feijão vermelho", "feijao",
			"beans", "feijão kilo", "feijão pacote", "feijão camil", "kicaldo",
		}},
		{"macarrão", []string{
			"massa", "espaguete", "penne", "parafuso", "nhoque",
			"talharim", "fettuccine", "massa para lasanha", "spaghetti",
			"pasta", "adria", "barilla", "renata", "galo", "macarrão instantâneo",
			"miojo", "cup noodles", "nissin", "macarrão integral",
		}},
		{"molho de tomate", []string{
			"molho", "extrato de tomate", "polpa de tomate",
			"molho pronto", "molho de pizza", "passata", "pomarola", "quero",
			"heinz", "tomato sauce", "molho de macarrão", "sauce", "ketchup",
		}},
		{"farinha", []string{
			"farinha de trigo", "farinha de milho", "farinha de mandioca",
			"farinha de rosca", "fubá", "polvilho", "maizena", "farinha panko",
			"flour", "amido de milho", "farinha lactea", "farinha integral",
		}},
		{"carvão", []string{
			"carvão vegetal", "briquete", "carvão para churrasco", "carvão especial",
			"carvão ecológico",
		}},

		// Temperos e condimentos
		{"óleo", []string{
			"óleo de soja", "óleo de girassol", "óleo de canola",
			"óleo vegetal", "azeite", "óleo de milho", "óleo de coco",
			"soya", "oil", "óleo de oliva", "lisa", "liza", "sadia",
			"gordura", "azeite extra virgem", "azeite gallo", "azeite andorinha",
		}},
		{"açúcar", []string{
			"açúcar refinado", "açúcar cristal", "açúcar mascavo",
			"açúcar demerara", "adoçante", "açúcar orgânico", "açucar",
			"sugar", "união", "guarani", "stevia", "sucralose", "açúcar light",
			"açúcar confeiteiro", "açúcar de confeiteiro", "açúcar em pó",
		}},
		{"sal", []string{
			"sal refinado", "sal grosso", "sal marinho",
			"sal light", "sal iodado", "sal rosa", "sal do himalaia",
			"salt", "sal de cozinha", "saleiro", "sal cisne", "sal temperado",
		}},
		{"tempero", []string{
			"tempero pronto", "mix de temperos", "tempero sazon", "knorr", "ajinomoto",
			"tempero completo", "caldo", "caldo em pó", "caldo em cubos", "seasoning",
			"pimenta", "cominho", "orégano", "manjericão", "alecrim", "louro",
		}},

		// Frutas e vegetais
		{"banana", []string{
			"banana prata", "banana nanica", "banana da terra", "banana maçã",
			"cacho de banana", "banana ouro", "banana verde", "bananas",
		}},
		{"maçã", []string{
			"maça", "maça fuji", "maça gala", "maça verde", "maça argentina",
			"apple", "maças", "maçãs", "maçãs vermelhas",
		}},
		{"batata", []string{
			"batata inglesa", "batata doce", "batata baroa", "batata asterix",
			"batatas", "potato", "potatoes", "batata kg", "batata lavada",
		}},
		{"tomate", []string{
			"tomate italiano", "tomate cereja", "tomate salada", "tomate longa vida",
			"tomates", "tomato", "tomate kg", "tomate para molho",
		}},
		{"cebola", []string{
			"cebola branca", "cebola roxa", "cebola amarela", "cebola nacional",
			"onion", "cebolas", "cebola kg", "cebola média",
		}},

		// Outros
		{"fralda", []string{
			"fralda descartável", "fralda geriátrica", "fralda infantil",
			"fralda pampers", "fralda noturna", "fralda premium", "pampers",
			"huggies", "mamy poko", "diapers", "fralda tamanho", "fralda pacote",
		}},
		{"chocolate", []string{
			"chocolate ao leite", "chocolate amargo", "chocolate branco",
			"barra de chocolate", "bombom", "chocolate em pó", "cacau em pó",
			"garoto", "nestlé", "lacta", "milka", "lindt", "hershey", "chocolates",
		}},
		{"pão", []string{
			"pão francês", "pão de forma", "pão integral", "pão de centeio",
			"pão sírio", "pão de hambúrguer", "pão de hot dog", "bread",
			"pão pullman", "bisnaguinha", "pão caseiro", "pão light",
		}},
		{"biscoito", []string{
			"bolacha", "cookie", "biscoito doce", "biscoito salgado", "biscoito recheado",
			"wafer", "cracker", "rosquinha", "cookies", "oreo", "passatempo",
			"trakinas", "club social", "água e sal", "cream cracker",
		}},
		{"presunto", []string{
			"presunto cozido", "presunto parma", "presunto royale", "presunto defumado",
			"apresuntado", "ham", "presunto fatiado", "presunto magro",
		}},
	})
}
