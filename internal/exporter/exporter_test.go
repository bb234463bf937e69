package exporter

import (
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megasuper/pkg/contracts/domain"
)

func sampleRecords() []domain.SaleRecord {
	return []domain.SaleRecord{
		{
			PurchaseID:  "c-001",
			Date:        "2024-03-15",
			Time:        "14:30:00",
			Customer:    "maria",
			Product:     "arroz",
			Value:       domain.Float64Ptr(25),
			Quantity:    2,
			Total:       domain.Float64Ptr(55),
			ShippingFee: domain.Float64Ptr(5),
			Seller:      "carlos",
			Brand:       "camil",
			City:        "são paulo",
			State:       "sp",
			PostalCode:  "01310-100",
		},
		{
			PurchaseID:  "c-002",
			Product:     "café",
			Value:       domain.Float64Ptr(10),
			Quantity:    1,
			Total:       domain.Float64Ptr(10),
			ShippingFee: domain.Float64Ptr(0),
			PostalCode:  "00000-000",
		},
	}
}

func sampleRules() []domain.AssociationRule {
	return []domain.AssociationRule{
		{
			Antecedents: []string{"arroz"},
			Consequents: []string{"feijão"},
			Support:     0.5,
			Confidence:  0.6667,
			Lift:        1.3333,
		},
	}
}

func TestWriteCleanedCSV(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir)

	require.NoError(t, w.WriteCleanedCSV("vendas_limpo.csv", sampleRecords()))

	data, err := os.ReadFile(filepath.Join(dir, "vendas_limpo.csv"))
	require.NoError(t, err)

	content := strings.TrimPrefix(string(data), "\xef\xbb\xbf")
	rows, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, domain.Columns(), rows[0])
	assert.Equal(t, "c-001", rows[1][0])
	assert.Equal(t, "25.00", rows[1][5])
	assert.Equal(t, "2", rows[1][6])
	assert.Equal(t, "55.00", rows[1][7])
}

func TestWriteRulesCSV(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir)

	require.NoError(t, w.WriteRulesCSV("regras.csv", sampleRules()))

	data, err := os.ReadFile(filepath.Join(dir, "regras.csv"))
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"antecedentes", "consequentes", "suporte", "confianca", "lift"}, rows[0])
	assert.Equal(t, []string{"arroz", "feijão", "0.5000", "0.6667", "1.3333"}, rows[1])
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendas.sqlite")

	store, err := OpenStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveCleanedBatch(sampleRecords()))
	require.NoError(t, store.SaveRules(sampleRules()))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var sales int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sales_clean`).Scan(&sales))
	assert.Equal(t, 2, sales)

	var produto string
	var valor float64
	require.NoError(t, db.QueryRow(
		`SELECT produto, valor FROM sales_clean WHERE id_da_compra = 'c-001'`).Scan(&produto, &valor))
	assert.Equal(t, "arroz", produto)
	assert.InDelta(t, 25.0, valor, 1e-9)

	var lift float64
	require.NoError(t, db.QueryRow(`SELECT lift FROM association_rules`).Scan(&lift))
	assert.InDelta(t, 1.3333, lift, 1e-9)
}

func TestStoreSaveReplacesPreviousBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendas.sqlite")

	store, err := OpenStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveCleanedBatch(sampleRecords()))
	require.NoError(t, store.SaveCleanedBatch(sampleRecords()[:1]))

	var count int
	require.NoError(t, store.db.QueryRow(`SELECT COUNT(*) FROM sales_clean`).Scan(&count))
	assert.Equal(t, 1, count)
}
