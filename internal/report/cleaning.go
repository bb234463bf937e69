// Package report renders the markdown diagnostics produced at the end of a
// run: the cleaning summary and the association-rule analysis.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"megasuper/pkg/contracts/domain"
)

// actionDescriptions maps each corrective action to the line rendered in
// the cleaning report.
var actionDescriptions = map[domain.CorrectiveAction]string{
	domain.ActionTextNormalized:    "Textos normalizados (espaços e capitalização)",
	domain.ActionProductCanonical:  "Nomes de produtos padronizados pelo catálogo",
	domain.ActionDateNormalized:    "Datas convertidas para o formato AAAA-MM-DD",
	domain.ActionTimeNormalized:    "Horários convertidos para o formato HH:MM:SS",
	domain.ActionMonetaryValidated: "Valores monetários validados e limitados",
	domain.ActionQuantityDefaulted: "Quantidades fora do intervalo ajustadas para 1",
	domain.ActionPostalImputed:     "CEPs ausentes ou inválidos imputados",
	domain.ActionDuplicatesRemoved: "Registros duplicados removidos",
	domain.ActionMissingImputed:    "Valores ausentes imputados",
	domain.ActionTotalsReconciled:  "Totais recalculados (valor × quantidade + frete)",
}

// Writer renders markdown reports into a reports directory.
type Writer struct {
	reportsDir string
	logger     *slog.Logger
}

// NewWriter creates a report writer. A nil logger falls back to
// slog.Default.
func NewWriter(reportsDir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{reportsDir: reportsDir, logger: logger}
}

// WriteCleaningReport renders the cleaning summary for one pipeline run.
func (w *Writer) WriteCleaningReport(fileName string, stats *domain.CleaningStats) error {
	var b strings.Builder

	b.WriteString("# Relatório de Limpeza de Dados\n\n")
	fmt.Fprintf(&b, "Execução: `%s`\n\n", stats.RunID)

	b.WriteString("## Resumo\n\n")
	fmt.Fprintf(&b, "- Registros de entrada: %d\n", stats.InputRecords)
	fmt.Fprintf(&b, "- Registros após limpeza: %d\n", stats.OutputRecords)
	fmt.Fprintf(&b, "- Duplicatas removidas: %d\n", stats.DuplicatesRemoved)
	b.WriteString("\n")

	b.WriteString("## Valores ausentes por coluna\n\n")
	b.WriteString("Contagem antes da imputação.\n\n")
	b.WriteString("| Coluna | Tipo | Ausentes |\n")
	b.WriteString("|--------|------|----------|\n")
	kinds := domain.ColumnKinds()
	for _, col := range domain.Columns() {
		fmt.Fprintf(&b, "| %s | %s | %d |\n", col, kinds[col], stats.MissingByColumn[col])
	}
	b.WriteString("\n")

	b.WriteString("## Ações corretivas aplicadas\n\n")
	if len(stats.Actions) == 0 {
		b.WriteString("Nenhuma correção foi necessária.\n\n")
	} else {
		for _, action := range stats.Actions {
			desc, ok := actionDescriptions[action]
			if !ok {
				desc = string(action)
			}
			fmt.Fprintf(&b, "- %s\n", desc)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Produtos mais vendidos\n\n")
	b.WriteString("| Produto | Ocorrências |\n")
	b.WriteString("|---------|-------------|\n")
	for _, p := range stats.TopProducts(5) {
		fmt.Fprintf(&b, "| %s | %d |\n", p.Product, p.Count)
	}
	b.WriteString("\n")

	writeAuditSection(&b, stats)

	return w.writeFile(fileName, b.String())
}

// writeAuditSection renders the standardization audit findings: product
// name pairs that remain suspiciously close after canonicalization, and
// products too rare to trust.
func writeAuditSection(b *strings.Builder, stats *domain.CleaningStats) {
	b.WriteString("## Auditoria de padronização\n\n")

	if len(stats.NearMisses) == 0 {
		b.WriteString("Nenhum par de nomes próximos encontrado.\n\n")
	} else {
		b.WriteString("Pares de produtos com nomes muito próximos:\n\n")
		b.WriteString("| Produto A | Produto B | Distância |\n")
		b.WriteString("|-----------|-----------|------------|\n")
		for _, pair := range stats.NearMisses {
			fmt.Fprintf(b, "| %s | %s | %d |\n", pair.First, pair.Second, pair.Distance)
		}
		b.WriteString("\n")
	}

	if len(stats.RareProducts) > 0 {
		b.WriteString("Produtos raros (possíveis erros de padronização):\n\n")
		rare := make([]domain.ProductFrequency, len(stats.RareProducts))
		copy(rare, stats.RareProducts)
		sort.Slice(rare, func(i, j int) bool {
			if rare[i].Count != rare[j].Count {
				return rare[i].Count < rare[j].Count
			}
			return rare[i].Product < rare[j].Product
		})
		for _, p := range rare {
			fmt.Fprintf(b, "- %s (%d ocorrências)\n", p.Product, p.Count)
		}
		b.WriteString("\n")
	}
}

func (w *Writer) writeFile(fileName, content string) error {
	if err := os.MkdirAll(w.reportsDir, 0755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}
	fullPath := filepath.Join(w.reportsDir, fileName)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	w.logger.Info("Report written", slog.String("path", fullPath))
	return nil
}
