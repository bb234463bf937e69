package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTiers(t *testing.T) {
	cz := NewDefaultCanonicalizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "known typo correction", input: "condibionador", want: "condicionador"},
		{name: "typo beats fuzzy tiers", input: "tal", want: "sal"},
		{name: "exact canonical", input: "arroz", want: "arroz"},
		{name: "exact alias", input: "xampu", want: "shampoo"},
		{name: "substring containment", input: "Queijo Mussarela Fatiado 200g", want: "queijo mussarela"},
		{name: "token overlap on alias words", input: "integral desnatado", want: "leite"},
		{name: "bounded distance near miss", input: "arros", want: "arroz"},
		{name: "noise words stripped", input: "Produto: Arroz!!!", want: "arroz"},
		{name: "unknown input kept as residual", input: "xxxxyyyzzz", want: "xxxxyyyzzz"},
		{name: "empty input stays empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cz.Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	cz := NewDefaultCanonicalizer()

	inputs := []string{
		"condibionador",
		"Queijo Mussarela Fatiado 200g",
		"arroz",
		"xxxxyyyzzz",
		"!!!",
	}
	for _, input := range inputs {
		once := cz.Normalize(input)
		assert.Equal(t, once, cz.Normalize(once), "input %q", input)
	}
}

func TestNormalizeShortInputSkipsDistanceTier(t *testing.T) {
	cz := NewDefaultCanonicalizer()

	// Three characters or fewer never reach the distance tier, so an
	// unknown short string stays a residual instead of matching a nearby
	// canonical name.
	assert.Equal(t, "sil", cz.Normalize("sil"))
}

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()

	assert.Len(t, c.Entries(), 41)
	assert.Len(t, c.Canonicals(), 41)

	seen := make(map[string]struct{})
	for _, name := range c.Canonicals() {
		_, dup := seen[name]
		assert.False(t, dup, "duplicate canonical %q", name)
		seen[name] = struct{}{}
	}
}

func TestDefaultCorrectionsResolveToCatalog(t *testing.T) {
	c := Default()
	canonicals := make(map[string]struct{})
	for _, name := range c.Canonicals() {
		canonicals[name] = struct{}{}
	}

	for _, value := range DefaultCorrections().Values() {
		_, ok := canonicals[value]
		assert.True(t, ok, "correction value %q is not a canonical product", value)
	}
}
