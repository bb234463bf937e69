package geocode

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megasuper/pkg/contracts/domain"
)

func saleAt(city, state, code string) domain.SaleRecord {
	return domain.SaleRecord{City: city, State: state, PostalCode: code}
}

func TestImputePrefersCityModal(t *testing.T) {
	records := []domain.SaleRecord{
		saleAt("são paulo", "sp", "01310-100"),
		saleAt("são paulo", "sp", "01310-100"),
		saleAt("campinas", "sp", "13010-000"),
		saleAt("são paulo", "sp", ""),
	}

	imputed := NewImputer(nil).Impute(records)

	assert.Equal(t, 1, imputed)
	assert.Equal(t, "01310-100", records[3].PostalCode)
}

func TestImputeFallsBackToStateModal(t *testing.T) {
	records := []domain.SaleRecord{
		saleAt("campinas", "sp", "13010-000"),
		saleAt("santos", "sp", ""),
	}

	imputed := NewImputer(nil).Impute(records)

	assert.Equal(t, 1, imputed)
	assert.Equal(t, "13010-000", records[1].PostalCode)
}

func TestImputeMissingCityFormsNoModalGroup(t *testing.T) {
	records := []domain.SaleRecord{
		saleAt("", "pr", "80010-000"),
		saleAt("curitiba", "pr", "82000-000"),
		saleAt("curitiba", "pr", "82000-000"),
		saleAt("", "pr", ""),
	}

	NewImputer(nil).Impute(records)

	assert.Equal(t, "82000-000", records[3].PostalCode)
}

func TestImputeMissingStateFormsNoModalGroup(t *testing.T) {
	records := []domain.SaleRecord{
		saleAt("santos", "", "11111-111"),
		saleAt("guarujá", "", ""),
		saleAt("curitiba", "pr", "80010-000"),
		saleAt("curitiba", "pr", "80010-000"),
	}

	NewImputer(nil).Impute(records)

	assert.Equal(t, "80010-000", records[1].PostalCode)
}

func TestImputeFallsBackToGlobalModal(t *testing.T) {
	records := []domain.SaleRecord{
		saleAt("curitiba", "pr", "80010-000"),
		saleAt("santos", "sp", ""),
	}

	imputed := NewImputer(nil).Impute(records)

	assert.Equal(t, 1, imputed)
	assert.Equal(t, "80010-000", records[1].PostalCode)
}

func TestImputeSynthesizesFromStatePrefix(t *testing.T) {
	records := []domain.SaleRecord{
		saleAt("são paulo", "sp", ""),
	}

	imputed := NewImputer(rand.New(rand.NewSource(42))).Impute(records)

	assert.Equal(t, 1, imputed)
	assert.Regexp(t, `^01000-\d{3}$`, records[0].PostalCode)
}

func TestImputeSyntheticIsReproducible(t *testing.T) {
	first := []domain.SaleRecord{saleAt("manaus", "am", "")}
	second := []domain.SaleRecord{saleAt("manaus", "am", "")}

	NewImputer(rand.New(rand.NewSource(7))).Impute(first)
	NewImputer(rand.New(rand.NewSource(7))).Impute(second)

	assert.Equal(t, first[0].PostalCode, second[0].PostalCode)
}

func TestImputeUnknownStateGetsFallback(t *testing.T) {
	records := []domain.SaleRecord{
		saleAt("atlantis", "zz", ""),
	}

	NewImputer(nil).Impute(records)

	assert.Equal(t, FallbackCode, records[0].PostalCode)
}

func TestImputeModalTieBreaksLexicographically(t *testing.T) {
	records := []domain.SaleRecord{
		saleAt("são paulo", "sp", "02000-000"),
		saleAt("são paulo", "sp", "01000-000"),
		saleAt("são paulo", "sp", ""),
	}

	NewImputer(nil).Impute(records)

	assert.Equal(t, "01000-000", records[2].PostalCode)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already formatted", input: "01310-100", want: "01310-100"},
		{name: "digits only", input: "01310100", want: "01310-100"},
		{name: "extra punctuation", input: "01.310-100", want: "01310-100"},
		{name: "too short", input: "123", want: ""},
		{name: "too long", input: "013101001", want: ""},
		{name: "letters only", input: "abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input))
		})
	}
}

func TestFormatAllAndForceFallback(t *testing.T) {
	records := []domain.SaleRecord{
		saleAt("são paulo", "sp", "01310100"),
		saleAt("são paulo", "sp", "abc"),
		saleAt("são paulo", "sp", ""),
	}

	malformed := FormatAll(records)
	assert.Equal(t, 1, malformed)
	assert.Equal(t, "01310-100", records[0].PostalCode)
	assert.Empty(t, records[1].PostalCode)

	forced := ForceFallback(records)
	assert.Equal(t, 2, forced)
	for _, r := range records {
		assert.NotEmpty(t, r.PostalCode)
	}
}

func TestStatePrefixCoversKnownStates(t *testing.T) {
	prefix, ok := StatePrefix("sp")
	require.True(t, ok)
	assert.Equal(t, "01000", prefix)

	_, ok = StatePrefix("zz")
	assert.False(t, ok)
}
