package catalog

// Correction maps one known misspelling from the feed to its corrected
// string. These are pre-verified 1:1 mappings, checked before any catalog
// matching; a hit short-circuits the fuzzy tiers entirely.
type Correction struct {
	Misspelling string
	Corrected   string
}

// Corrections is the ordered known-typo table. Order matters only for the
// bounded-distance tier, which scans corrected values after canonical names.
type Corrections struct {
	entries []Correction
	byTypo  map[string]string
}

// NewCorrections builds a correction table, preserving entry order.
func NewCorrections(entries []Correction) *Corrections {
	byTypo := make(map[string]string, len(entries))
	for _, e := range entries {
		byTypo[e.Misspelling] = e.Corrected
	}
	return &Corrections{entries: entries, byTypo: byTypo}
}

// Lookup returns the corrected string for a known misspelling.
func (c *Corrections) Lookup(text string) (string, bool) {
	corrected, ok := c.byTypo[text]
	return corrected, ok
}

// Values returns every corrected value in declaration order.
func (c *Corrections) Values() []string {
	values := make([]string, len(c.entries))
	for i, e := range c.entries {
		values[i] = e.Corrected
	}
	return values
}

// DefaultCorrections returns the typo corrections observed in the feed.
func DefaultCorrections() *Corrections {
	return NewCorrections([]Correction{
		{"amaciayte", "amaciante"},
		{"arroc", "arroz"},
		{"açúcaz", "açúcar"},
		{"cafc", "café"},
		{"caff", "café"},
		{"caft", "café"},
		{"clfé", "café"},
		{"cnfé", "café"},
		{"condibionador", "condicionador"},
		{"condicioiador", "condicionador"},
		{"deqergente", "detergente"},
		{"desinfekante", "desinfetante"},
		{"desinfetanue", "desinfetante"},
		{"deterwente", "detergente"},
		{"ieijão", "feijão"},
		{"macawrão", "macarrão"},
		{"macirrão", "macarrão"},
		{"majarrão", "macarrão"},
		{"manteigt", "manteiga"},
		{"mqcarrão", "macarrão"},
		{"presuntd", "presunto"},
		{"sabonepe", "sabonete"},
		{"scl", "sal"},
		{"tal", "sal"},
		{"zabonete", "sabonete"},
	})
}
