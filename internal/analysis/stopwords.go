package analysis

// stopwords are Portuguese function words excluded from the index.
// Entries are stored in normalised form. Single letters are omitted
// because the length filter already drops them.
var stopwords = buildStopwordSet([]string{
	// articles and contractions
	"os", "as", "um", "uma", "uns", "umas",
	"ao", "aos", "do", "da", "dos", "das",
	"no", "na", "nos", "nas", "num", "numa",
	"pelo", "pela", "pelos", "pelas",
	"dum", "duma", "dele", "dela", "deles", "delas",
	"neste", "nesta", "nesse", "nessa", "naquele", "naquela",
	// prepositions
	"de", "em", "por", "para", "pra", "com", "sem", "sob", "sobre",
	"ate", "apos", "entre", "contra", "desde", "perante",
	// conjunctions
	"mas", "ou", "nem", "que", "se", "porque", "pois", "como",
	"quando", "porem", "entao", "tambem",
	// short pronouns and determiners
	"eu", "tu", "ele", "ela", "nos", "vos", "eles", "elas",
	"me", "te", "lhe", "lhes", "mim", "ti", "si",
	"meu", "minha", "teu", "tua", "seu", "sua", "seus", "suas",
	"este", "esta", "esse", "essa", "isto", "isso", "aquilo",
	"aquele", "aquela", "lo", "la", "los", "las",
	// copula and auxiliaries
	"ja", "foi", "ser", "sao", "era", "ha",
})

func buildStopwordSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[Normalize(w)] = struct{}{}
	}
	return m
}

// IsStopword reports whether a normalised word is excluded from the index.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
