package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megasuper/pkg/contracts/domain"
)

func sampleStats() *domain.CleaningStats {
	return &domain.CleaningStats{
		RunID:             "run-1",
		InputRecords:      100,
		OutputRecords:     95,
		DuplicatesRemoved: 5,
		MissingByColumn:   map[string]int{"valor": 3, "cep": 7},
		Actions: []domain.CorrectiveAction{
			domain.ActionDuplicatesRemoved,
			domain.ActionTotalsReconciled,
		},
		ProductFrequencies: []domain.ProductFrequency{
			{Product: "arroz", Count: 40},
			{Product: "feijão", Count: 30},
		},
		NearMisses: []domain.NearMissPair{
			{First: "arroz", Second: "arros", Distance: 1},
		},
		RareProducts: []domain.ProductFrequency{
			{Product: "carvão", Count: 2},
		},
	}
}

func TestWriteCleaningReport(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil)

	require.NoError(t, w.WriteCleaningReport("limpeza.md", sampleStats()))

	data, err := os.ReadFile(filepath.Join(dir, "limpeza.md"))
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Relatório de Limpeza de Dados")
	assert.Contains(t, content, "Registros de entrada: 100")
	assert.Contains(t, content, "Duplicatas removidas: 5")
	assert.Contains(t, content, "| valor | float64 | 3 |")
	assert.Contains(t, content, "Registros duplicados removidos")
	assert.Contains(t, content, "| arroz | 40 |")
	assert.Contains(t, content, "| arroz | arros | 1 |")
	assert.Contains(t, content, "carvão (2 ocorrências)")
}

func TestWriteAssociationReport(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil)

	set := &domain.RuleSet{
		MinSupport:    0.01,
		MinConfidence: 0.3,
		Rules: []domain.AssociationRule{
			{
				Antecedents: []string{"arroz"},
				Consequents: []string{"feijão"},
				Support:     0.5,
				Confidence:  0.8,
				Lift:        1.6,
			},
			{
				Antecedents: []string{"café"},
				Consequents: []string{"açúcar"},
				Support:     0.2,
				Confidence:  0.4,
				Lift:        0.9,
			},
		},
	}

	require.NoError(t, w.WriteAssociationReport("associacao.md", set, 10))

	data, err := os.ReadFile(filepath.Join(dir, "associacao.md"))
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "Regras encontradas: 2")
	assert.Contains(t, content, "| arroz | feijão | 0.5000 | 0.8000 | 1.6000 |")
	assert.Contains(t, content, "Quem compra **arroz** tende a comprar **feijão**")
	// lift below 1 never becomes a recommendation
	assert.NotContains(t, content, "Quem compra **café**")
}

func TestWriteAssociationReportNoRules(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil)

	set := &domain.RuleSet{MinSupport: 0.005, MinConfidence: 0.3, Relaxed: true}

	require.NoError(t, w.WriteAssociationReport("associacao.md", set, 10))

	data, err := os.ReadFile(filepath.Join(dir, "associacao.md"))
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "Nenhuma regra de associação foi encontrada")
	assert.Contains(t, content, "reduzido pela metade")
}
