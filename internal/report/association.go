package report

import (
	"fmt"
	"strings"

	"megasuper/internal/mining"
	"megasuper/pkg/contracts/domain"
)

// WriteAssociationReport renders the market-basket analysis: rule counts,
// mean metrics and the top rules by lift and by confidence, with a plain
// recommendation per leading rule.
func (w *Writer) WriteAssociationReport(fileName string, set *domain.RuleSet, topN int) error {
	var b strings.Builder

	b.WriteString("# Relatório de Análise de Associação\n\n")

	b.WriteString("## Parâmetros\n\n")
	fmt.Fprintf(&b, "- Suporte mínimo: %.4f\n", set.MinSupport)
	fmt.Fprintf(&b, "- Confiança mínima: %.2f\n", set.MinConfidence)
	if set.Relaxed {
		b.WriteString("- O suporte mínimo foi reduzido pela metade por falta de conjuntos frequentes.\n")
	}
	b.WriteString("\n")

	if len(set.Rules) == 0 {
		b.WriteString("Nenhuma regra de associação foi encontrada com os parâmetros configurados.\n")
		return w.writeFile(fileName, b.String())
	}

	b.WriteString("## Resumo\n\n")
	fmt.Fprintf(&b, "- Conjuntos frequentes: %d\n", len(set.FrequentItemsets))
	fmt.Fprintf(&b, "- Regras encontradas: %d\n", len(set.Rules))
	fmt.Fprintf(&b, "- Lift médio: %.4f\n", set.MeanLift())
	fmt.Fprintf(&b, "- Confiança média: %.4f\n", set.MeanConfidence())
	b.WriteString("\n")

	b.WriteString("## Principais regras por lift\n\n")
	writeRuleTable(&b, mining.ByLift(set.Rules), topN)

	b.WriteString("## Principais regras por confiança\n\n")
	writeRuleTable(&b, mining.ByConfidence(set.Rules), topN)

	b.WriteString("## Recomendações\n\n")
	writeRecommendations(&b, mining.ByLift(set.Rules), topN)

	return w.writeFile(fileName, b.String())
}

func writeRuleTable(b *strings.Builder, rules []domain.AssociationRule, topN int) {
	if topN > len(rules) {
		topN = len(rules)
	}
	b.WriteString("| Antecedentes | Consequentes | Suporte | Confiança | Lift |\n")
	b.WriteString("|--------------|--------------|---------|-----------|------|\n")
	for _, rule := range rules[:topN] {
		fmt.Fprintf(b, "| %s | %s | %.4f | %.4f | %.4f |\n",
			strings.Join(rule.Antecedents, ", "),
			strings.Join(rule.Consequents, ", "),
			rule.Support, rule.Confidence, rule.Lift)
	}
	b.WriteString("\n")
}

// writeRecommendations turns the strongest rules into one-line marketing
// suggestions. Rules with lift at or below 1 carry no signal and are
// skipped.
func writeRecommendations(b *strings.Builder, rules []domain.AssociationRule, topN int) {
	written := 0
	for _, rule := range rules {
		if written >= topN {
			break
		}
		if rule.Lift <= 1 {
			continue
		}
		fmt.Fprintf(b, "- Quem compra **%s** tende a comprar **%s** (%.0f%% das vezes, lift %.2f): considere posicionar os produtos próximos ou criar uma promoção conjunta.\n",
			strings.Join(rule.Antecedents, ", "),
			strings.Join(rule.Consequents, ", "),
			rule.Confidence*100, rule.Lift)
		written++
	}
	if written == 0 {
		b.WriteString("Nenhuma regra apresentou lift acima de 1; não há associações positivas a explorar.\n")
	}
	b.WriteString("\n")
}
