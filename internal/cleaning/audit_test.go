package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"megasuper/pkg/contracts/domain"
)

func TestRankFrequencies(t *testing.T) {
	counts := map[string]int{"arroz": 10, "feijão": 10, "café": 3}

	freqs := rankFrequencies(counts)

	assert.Equal(t, []domain.ProductFrequency{
		{Product: "arroz", Count: 10},
		{Product: "feijão", Count: 10},
		{Product: "café", Count: 3},
	}, freqs)
}

func TestFindNearMisses(t *testing.T) {
	freqs := []domain.ProductFrequency{
		{Product: "arroz", Count: 10},
		{Product: "arros", Count: 2},
		{Product: "detergente", Count: 5},
		{Product: "sal", Count: 4}, // too short for the audit
	}

	pairs := findNearMisses(freqs)

	assert.Equal(t, []domain.NearMissPair{
		{First: "arros", Second: "arroz", Distance: 1},
	}, pairs)
}

func TestFilterRare(t *testing.T) {
	freqs := []domain.ProductFrequency{
		{Product: "arroz", Count: 10},
		{Product: "carvão", Count: 5},
		{Product: "fralda", Count: 1},
	}

	rare := filterRare(freqs)

	assert.Equal(t, []domain.ProductFrequency{
		{Product: "carvão", Count: 5},
		{Product: "fralda", Count: 1},
	}, rare)
}

func TestVerifyFlagsBrokenTotals(t *testing.T) {
	good := domain.SaleRecord{
		PurchaseID:  "c-001",
		Product:     "arroz",
		Value:       domain.Float64Ptr(10),
		Quantity:    2,
		Total:       domain.Float64Ptr(25),
		ShippingFee: domain.Float64Ptr(5),
		PostalCode:  "01310-100",
	}
	assert.NoError(t, Verify([]domain.SaleRecord{good}))

	bad := good
	bad.Total = domain.Float64Ptr(99)
	assert.Error(t, Verify([]domain.SaleRecord{bad}))

	missingCEP := good
	missingCEP.PostalCode = ""
	assert.Error(t, Verify([]domain.SaleRecord{missingCEP}))

	malformedCEP := good
	malformedCEP.PostalCode = "1310100"
	assert.Error(t, Verify([]domain.SaleRecord{malformedCEP}))
}
